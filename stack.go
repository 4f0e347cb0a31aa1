package tui

import (
	"context"
	"fmt"

	"github.com/grindlemire/go-tuistack/internal/debug"
)

// Hook names a lifecycle callback, as reported to a ScreenTracer.
type Hook int

const (
	HookEnter Hook = iota
	HookExit
	HookPause
	HookResume
)

func (h Hook) String() string {
	switch h {
	case HookEnter:
		return "enter"
	case HookExit:
		return "exit"
	case HookPause:
		return "pause"
	case HookResume:
		return "resume"
	default:
		return fmt.Sprintf("Hook(%d)", int(h))
	}
}

// ScreenTracer observes lifecycle transitions. It is called on the event loop
// goroutine right before the hook runs, whether or not the screen implements it.
type ScreenTracer func(hook Hook, screen any)

// screenStack owns the live screens. The last element is the active screen.
// It is only touched from the event loop goroutine.
type screenStack[ID comparable, S any] struct {
	screens []Screen[ID, S]
	set     ScreenSet[ID, S]
	nav     Navigator[ID]
	state   *S
	trace   ScreenTracer
}

func newScreenStack[ID comparable, S any](set ScreenSet[ID, S], nav Navigator[ID], state *S, trace ScreenTracer) *screenStack[ID, S] {
	return &screenStack[ID, S]{
		set:   set,
		nav:   nav,
		state: state,
		trace: trace,
	}
}

// Len returns the number of screens on the stack.
func (st *screenStack[ID, S]) Len() int {
	return len(st.screens)
}

// Top returns the active screen. The stack is never empty while the app runs,
// so an empty stack is a bug.
func (st *screenStack[ID, S]) Top() Screen[ID, S] {
	if len(st.screens) == 0 {
		panic("tui: empty screen stack")
	}
	return st.screens[len(st.screens)-1]
}

// start enters and pushes the default screen.
func (st *screenStack[ID, S]) start(ctx context.Context) {
	st.open(ctx, st.set.Default())
}

// apply performs one navigation action. dirty reports whether the top screen
// must be drawn again; stop reports that the app should shut down.
func (st *screenStack[ID, S]) apply(ctx context.Context, a action[ID]) (dirty, stop bool) {
	debug.Log("stack: apply %s (depth %d)", a, len(st.screens))

	switch a.kind {
	case actionPush:
		st.hook(ctx, HookPause, st.Top())
		st.open(ctx, st.set.New(a.id))
		return true, false

	case actionReplace:
		st.pop(ctx)
		st.open(ctx, st.set.New(a.id))
		return true, false

	case actionBack:
		if len(st.screens) <= 1 {
			return false, false
		}
		st.pop(ctx)
		st.hook(ctx, HookResume, st.Top())
		return true, false

	case actionClear:
		for len(st.screens) > 1 {
			i := len(st.screens) - 2
			s := st.screens[i]
			st.screens = append(st.screens[:i], st.screens[i+1:]...)
			st.hook(ctx, HookExit, s)
		}
		return false, false

	case actionRestart:
		st.popAll(ctx)
		st.start(ctx)
		return true, false

	case actionExit:
		st.popAll(ctx)
		return false, true

	case actionRedraw:
		return true, false

	default:
		panic(fmt.Sprintf("tui: unknown action %s", a))
	}
}

// open enters s and makes it the active screen.
func (st *screenStack[ID, S]) open(ctx context.Context, s Screen[ID, S]) {
	if s == nil {
		panic("tui: screen set returned a nil screen")
	}
	st.hook(ctx, HookEnter, s)
	st.screens = append(st.screens, s)
}

// pop removes the active screen and exits it.
func (st *screenStack[ID, S]) pop(ctx context.Context) {
	s := st.Top()
	st.screens[len(st.screens)-1] = nil
	st.screens = st.screens[:len(st.screens)-1]
	st.hook(ctx, HookExit, s)
}

// popAll exits every screen, top first.
func (st *screenStack[ID, S]) popAll(ctx context.Context) {
	for len(st.screens) > 0 {
		st.pop(ctx)
	}
}

func (st *screenStack[ID, S]) hook(ctx context.Context, h Hook, s Screen[ID, S]) {
	if st.trace != nil {
		st.trace(h, s)
	}
	switch h {
	case HookEnter:
		enterScreen(ctx, s, st.nav, st.state)
	case HookExit:
		exitScreen(ctx, s, st.nav, st.state)
	case HookPause:
		pauseScreen(ctx, s, st.nav, st.state)
	case HookResume:
		resumeScreen(ctx, s, st.nav, st.state)
	}
}
