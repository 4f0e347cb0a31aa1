package tui

import "context"

// NoState is the application state of apps created with New.
type NoState = struct{}

// Screen is one unit of UI with its own state. Only the screen on top of the
// stack is active: it is the only one drawn, the only one receiving events and
// the only one whose background work runs.
//
// All methods run on the event loop goroutine, never concurrently with each
// other. state is the application state; it is shared by every screen.
type Screen[ID comparable, S any] interface {
	// Draw renders the screen. It must not block and should treat both the
	// screen and state as read-only.
	Draw(f *Frame, state *S)

	// OnEvent handles one terminal event.
	OnEvent(ctx context.Context, ev Event, nav Navigator[ID], state *S)
}

// Enterer is implemented by screens that need setup. OnEnter runs exactly once,
// after the screen is created and before it is first drawn.
type Enterer[ID comparable, S any] interface {
	OnEnter(ctx context.Context, nav Navigator[ID], state *S)
}

// Exiter is implemented by screens that need teardown. OnExit runs exactly once,
// right before the screen is dropped from the stack.
type Exiter[ID comparable, S any] interface {
	OnExit(ctx context.Context, nav Navigator[ID], state *S)
}

// Pauser is implemented by screens that react to another screen being pushed
// on top of them.
type Pauser[ID comparable, S any] interface {
	OnPause(ctx context.Context, nav Navigator[ID], state *S)
}

// Resumer is implemented by screens that react to becoming the top screen again
// after the screen above them went back.
type Resumer[ID comparable, S any] interface {
	OnResume(ctx context.Context, nav Navigator[ID], state *S)
}

// Backgrounder is implemented by screens with background work.
//
// Background is started each loop iteration while the screen is on top. When
// it returns on its own the screen is redrawn and Background is started again.
// When the loop has something else to do it cancels ctx and waits for
// Background to return, so it must return promptly once ctx is done and must
// leave the screen consistent at every point where it can be cancelled.
//
// Screens without background work simply don't implement this interface.
type Backgrounder[ID comparable, S any] interface {
	Background(ctx context.Context, nav Navigator[ID], state *S)
}

// ScreenSet creates the screens of an application.
//
// It is usually generated by stackgen from a struct listing every screen kind,
// or built by hand with Registry.
type ScreenSet[ID comparable, S any] interface {
	// Default creates the first screen, used at startup and on Restart.
	Default() Screen[ID, S]

	// New creates a fresh screen for id.
	New(id ID) Screen[ID, S]
}

func enterScreen[ID comparable, S any](ctx context.Context, s Screen[ID, S], nav Navigator[ID], state *S) {
	if e, ok := s.(Enterer[ID, S]); ok {
		e.OnEnter(ctx, nav, state)
	}
}

func exitScreen[ID comparable, S any](ctx context.Context, s Screen[ID, S], nav Navigator[ID], state *S) {
	if e, ok := s.(Exiter[ID, S]); ok {
		e.OnExit(ctx, nav, state)
	}
}

func pauseScreen[ID comparable, S any](ctx context.Context, s Screen[ID, S], nav Navigator[ID], state *S) {
	if p, ok := s.(Pauser[ID, S]); ok {
		p.OnPause(ctx, nav, state)
	}
}

func resumeScreen[ID comparable, S any](ctx context.Context, s Screen[ID, S], nav Navigator[ID], state *S) {
	if r, ok := s.(Resumer[ID, S]); ok {
		r.OnResume(ctx, nav, state)
	}
}
