package wl

// Callback is a wl_callback. The Done callback fires once, after
// which the object is dead.
type Callback struct {
	Done func(data uint32)

	obj callbackObject
}

type callbackEvents struct {
	callback *Callback
}

func (lis callbackEvents) Done(data uint32) {
	if lis.callback.Done != nil {
		lis.callback.Done(data)
	}
}
