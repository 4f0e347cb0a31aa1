package tui

import "sync"

// State is a handle to a value shared between a screen and the goroutines it
// starts. Copies of a State, and handles made with Clone, all refer to the
// same value, which is guarded by a mutex.
//
// Typical use is a screen that starts a ticker in OnEnter:
//
//	frame := tui.NewState(0)
//	go func() {
//	    for range ticker.C {
//	        frame.Update(func(n int) int { return n + 1 })
//	        nav.Redraw()
//	    }
//	}()
//
// The zero State is not usable; create one with NewState.
type State[T any] struct {
	cell *stateCell[T]
}

type stateCell[T any] struct {
	mu    sync.Mutex
	value T
}

// NewState creates a State holding initial.
func NewState[T any](initial T) State[T] {
	return State[T]{cell: &stateCell[T]{value: initial}}
}

// Clone returns another handle to the same value.
func (s State[T]) Clone() State[T] {
	return s
}

// Get returns a copy of the current value.
func (s State[T]) Get() T {
	s.cell.mu.Lock()
	defer s.cell.mu.Unlock()
	return s.cell.value
}

// Set replaces the value.
func (s State[T]) Set(v T) {
	s.cell.mu.Lock()
	defer s.cell.mu.Unlock()
	s.cell.value = v
}

// Update replaces the value with fn applied to it, atomically.
func (s State[T]) Update(fn func(T) T) {
	s.cell.mu.Lock()
	defer s.cell.mu.Unlock()
	s.cell.value = fn(s.cell.value)
}

// Lock acquires exclusive access to the value until the returned guard is
// unlocked. Keep the critical section short: Draw may be waiting on it.
func (s State[T]) Lock() *Guard[T] {
	s.cell.mu.Lock()
	return &Guard[T]{cell: s.cell}
}

// Guard is exclusive access to a State's value.
type Guard[T any] struct {
	cell *stateCell[T]
	once sync.Once
}

// Value returns a pointer to the guarded value. It must not be used after Unlock.
func (g *Guard[T]) Value() *T {
	return &g.cell.value
}

// Unlock releases the guard. Extra calls do nothing.
func (g *Guard[T]) Unlock() {
	g.once.Do(g.cell.mu.Unlock)
}
