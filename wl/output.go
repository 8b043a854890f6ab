package wl

import "github.com/phisch/phrame/wire"

// OutputMode describes one video mode of an output.
type OutputMode struct {
	Flags   uint32
	Width   int32
	Height  int32
	Refresh int32
}

const OutputModeCurrent uint32 = 1

// Output is a wl_output global, one per connected display. The
// compositor sends a burst of property events followed by Done.
type Output struct {
	Geometry    func(x, y, physicalWidth, physicalHeight int32)
	Mode        func(mode OutputMode)
	Done        func()
	Scale       func(factor int32)
	Name        func(name string)
	Description func(description string)

	obj     outputObject
	display *Display
}

func IsOutput(i Interface) bool {
	return i.Is(outputInterface, outputVersion)
}

func BindOutput(display *Display, name uint32) *Output {
	output := Output{display: display}
	output.obj.listener = outputEvents{output: &output}
	display.AddObject(&output.obj)

	registry := display.GetRegistry()
	registry.Bind(name, outputInterface, outputVersion, output.obj.id)

	return &output
}

func (output *Output) Object() wire.Object {
	return &output.obj
}

func (output *Output) Release() {
	output.display.Enqueue(output.obj.Release())
	output.display.DeleteObject(output.obj.id)
}

type outputEvents struct {
	output *Output
}

func (lis outputEvents) Geometry(x, y, physicalWidth, physicalHeight, subpixel int32, make, model string, transform int32) {
	if lis.output.Geometry != nil {
		lis.output.Geometry(x, y, physicalWidth, physicalHeight)
	}
}

func (lis outputEvents) Mode(flags uint32, width, height, refresh int32) {
	if lis.output.Mode != nil {
		lis.output.Mode(OutputMode{
			Flags:   flags,
			Width:   width,
			Height:  height,
			Refresh: refresh,
		})
	}
}

func (lis outputEvents) Done() {
	if lis.output.Done != nil {
		lis.output.Done()
	}
}

func (lis outputEvents) Scale(factor int32) {
	if lis.output.Scale != nil {
		lis.output.Scale(factor)
	}
}

func (lis outputEvents) Name(name string) {
	if lis.output.Name != nil {
		lis.output.Name(name)
	}
}

func (lis outputEvents) Description(description string) {
	if lis.output.Description != nil {
		lis.output.Description(description)
	}
}
