package tui

import "fmt"

// ScreenFunc creates a fresh screen.
type ScreenFunc[ID comparable, S any] func() Screen[ID, S]

// Registry is a ScreenSet backed by a table of constructors.
// Screens are registered with their constructors, and the initial screen is
// chosen by id.
//
//	screens := tui.NewRegistry[ScreenID, State](ScreenHome).
//	    Register(ScreenHome, func() tui.Screen[ScreenID, State] { return &HomeScreen{} }).
//	    Register(ScreenList, func() tui.Screen[ScreenID, State] { return &ListScreen{} })
type Registry[ID comparable, S any] struct {
	initial   ID
	factories map[ID]ScreenFunc[ID, S]
}

// NewRegistry creates an empty registry whose Default screen is initial.
func NewRegistry[ID comparable, S any](initial ID) *Registry[ID, S] {
	return &Registry[ID, S]{
		initial:   initial,
		factories: make(map[ID]ScreenFunc[ID, S]),
	}
}

// Register adds a constructor for id, replacing any previous one.
func (r *Registry[ID, S]) Register(id ID, fn ScreenFunc[ID, S]) *Registry[ID, S] {
	if fn == nil {
		panic(fmt.Sprintf("tui: nil constructor registered for screen %v", id))
	}
	r.factories[id] = fn
	return r
}

// Has reports whether id has a constructor.
func (r *Registry[ID, S]) Has(id ID) bool {
	_, ok := r.factories[id]
	return ok
}

// Default creates the initial screen.
func (r *Registry[ID, S]) Default() Screen[ID, S] {
	return r.New(r.initial)
}

// New creates a fresh screen for id. It panics if id was never registered.
func (r *Registry[ID, S]) New(id ID) Screen[ID, S] {
	fn, ok := r.factories[id]
	if !ok {
		panic(fmt.Sprintf("tui: screen %v not registered", id))
	}
	s := fn()
	if s == nil {
		panic(fmt.Sprintf("tui: constructor for screen %v returned nil", id))
	}
	return s
}
