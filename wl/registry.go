package wl

import "golang.org/x/exp/maps"

// Interface identifies a global advertised by the compositor.
type Interface struct {
	Name    string
	Version uint32
}

// Is reports whether the global can be bound as version v of the
// named interface.
func (i Interface) Is(name string, version uint32) bool {
	return (i.Name == name) && (i.Version >= version)
}

// Registry tracks the compositor's global objects. Globals present at
// startup and globals hotplugged later both arrive through the Global
// callback; removals arrive through GlobalRemove.
type Registry struct {
	Global       func(name uint32, inter Interface)
	GlobalRemove func(name uint32)

	obj     registryObject
	display *Display

	globals map[uint32]Interface
}

// Globals returns a snapshot of the currently known globals, keyed by
// registry name.
func (registry *Registry) Globals() map[uint32]Interface {
	return maps.Clone(registry.globals)
}

// Bind binds the named global as a new protocol object with the given
// ID. It is intended for use by protocol binding packages, not
// directly by clients.
func (registry *Registry) Bind(name uint32, inter string, version, id uint32) {
	registry.display.Enqueue(registry.obj.Bind(name, inter, version, id))
}

type registryEvents struct {
	registry *Registry
}

func (lis registryEvents) Global(name uint32, inter string, version uint32) {
	i := Interface{Name: inter, Version: version}
	lis.registry.globals[name] = i
	if lis.registry.Global != nil {
		lis.registry.Global(name, i)
	}
}

func (lis registryEvents) GlobalRemove(name uint32) {
	delete(lis.registry.globals, name)
	if lis.registry.GlobalRemove != nil {
		lis.registry.GlobalRemove(name)
	}
}
