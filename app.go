package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/grindlemire/go-tuistack/internal/debug"
)

// App runs a stack of screens on a terminal.
//
// ID identifies screen kinds and S is the application state shared by every
// screen. The App owns the state; screens get a pointer to it in each callback.
type App[ID comparable, S any] struct {
	backend Backend
	cfg     appConfig
	state   S

	running     atomic.Bool
	restoreOnce *sync.Once
	restoreMu   sync.Mutex
	restoreErr  error
}

// New creates an app without application state.
func New[ID comparable](opts ...AppOption) (*App[ID, NoState], error) {
	return NewWithState[ID](NoState{}, opts...)
}

// NewWithState creates an app owning state. Screens receive a pointer to it.
//
//	app, err := tui.NewWithState[ScreenID](State{Counter: 1})
func NewWithState[ID comparable, S any](state S, opts ...AppOption) (*App[ID, S], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if cfg.backend == nil {
		cfg.backend = NewTcellBackend()
	}

	return &App[ID, S]{
		backend:     cfg.backend,
		cfg:         cfg,
		state:       state,
		restoreOnce: new(sync.Once),
	}, nil
}

// State returns the application state. It must not be used from other
// goroutines while Run is executing.
func (a *App[ID, S]) State() *S {
	return &a.state
}

// Backend returns the terminal backend the app draws to.
func (a *App[ID, S]) Backend() Backend {
	return a.backend
}

// Run initializes the terminal, opens set's default screen and runs the event
// loop until a screen calls Exit or ctx is cancelled.
//
// Run returns nil after Exit and ctx.Err() after cancellation. In both cases
// every screen still on the stack gets OnExit. If drawing fails Run restores
// the terminal and returns the error without calling OnExit.
//
// A panic in any screen callback restores the terminal before it propagates.
func (a *App[ID, S]) Run(ctx context.Context, set ScreenSet[ID, S]) error {
	if set == nil {
		return errors.New("tui: nil screen set")
	}
	if !a.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer a.running.Store(false)

	a.restoreMu.Lock()
	a.restoreOnce = new(sync.Once)
	a.restoreErr = nil
	a.restoreMu.Unlock()

	if err := a.backend.Init(); err != nil {
		_ = a.restore()
		return fmt.Errorf("tui: init: %w", err)
	}
	defer a.restoreOnPanic()

	debug.Log("app: started")
	return a.loop(ctx, set)
}

// restore returns the terminal to its original state. Only the first call
// per Run reaches the backend.
func (a *App[ID, S]) restore() error {
	a.restoreMu.Lock()
	once := a.restoreOnce
	a.restoreMu.Unlock()

	once.Do(func() {
		err := a.backend.Restore()
		a.restoreMu.Lock()
		a.restoreErr = err
		a.restoreMu.Unlock()
		debug.Log("app: terminal restored (err=%v)", err)
	})

	a.restoreMu.Lock()
	defer a.restoreMu.Unlock()
	return a.restoreErr
}
