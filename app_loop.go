package tui

import (
	"context"
	"fmt"

	"github.com/grindlemire/go-tuistack/internal/debug"
)

// wake says why the loop woke up from its wait.
type wake int

const (
	wakeEvent wake = iota
	wakeAction
	wakeBackground
	wakeCancel
)

// loop is the event loop. It owns the screen stack and the state for its
// whole duration; screens only run on this goroutine or, for Background, while
// this goroutine is parked waiting for it.
func (a *App[ID, S]) loop(ctx context.Context, set ScreenSet[ID, S]) error {
	events := newQueue[Event](a.cfg.queueHint)
	actions := newQueue[action[ID]](a.cfg.queueHint)
	defer events.Close()
	defer actions.Close()

	nav := newNavigator(actions)
	stack := newScreenStack(set, nav, &a.state, a.cfg.tracer)
	stack.start(ctx)
	dirty := true

	go readEvents(a.backend, events)

	for {
		if dirty {
			if err := a.backend.Draw(func(f *Frame) {
				stack.Top().Draw(f, &a.state)
			}); err != nil {
				debug.Log("app: draw failed: %v", err)
				_ = a.restore()
				return fmt.Errorf("tui: draw: %w", err)
			}
			dirty = false
		}

		// Actions queued by the previous callback run before anything else.
		if act, ok := actions.Pop(); ok {
			redraw, stop := stack.apply(ctx, act)
			if stop {
				return a.shutdown(events, actions)
			}
			dirty = dirty || redraw
			continue
		}

		why := a.wait(ctx, stack.Top(), nav, events, actions)

		switch why {
		case wakeEvent:
			ev, ok := events.Pop()
			if !ok {
				continue
			}
			if isResize(ev) {
				dirty = true
			}
			stack.Top().OnEvent(ctx, ev, nav, &a.state)

		case wakeAction:
			// Popped at the top of the next iteration.

		case wakeBackground:
			dirty = true

		case wakeCancel:
			debug.Log("app: context cancelled: %v", ctx.Err())
			stack.popAll(context.WithoutCancel(ctx))
			if err := a.shutdown(events, actions); err != nil {
				return err
			}
			return ctx.Err()
		}
	}
}

// wait parks the loop until an event, an action, the top screen's background
// work or cancellation of ctx. The background work, if any, is cancelled and
// has returned by the time wait does.
func (a *App[ID, S]) wait(ctx context.Context, top Screen[ID, S], nav Navigator[ID], events *queue[Event], actions *queue[action[ID]]) wake {
	var (
		bgDone  chan struct{}
		bgPanic any
		cancel  context.CancelFunc = func() {}
	)
	if bg, ok := top.(Backgrounder[ID, S]); ok {
		var bgCtx context.Context
		bgCtx, cancel = context.WithCancel(ctx)
		bgDone = make(chan struct{})
		go func() {
			defer close(bgDone)
			defer func() { bgPanic = recover() }()
			bg.Background(bgCtx, nav, &a.state)
		}()
	}

	var why wake
	select {
	case <-events.Ready():
		why = wakeEvent
	case <-actions.Ready():
		why = wakeAction
	case <-bgDone:
		why = wakeBackground
	case <-ctx.Done():
		why = wakeCancel
	}

	cancel()
	if bgDone != nil {
		<-bgDone
		if bgPanic != nil {
			panic(bgPanic)
		}
	}
	return why
}

// shutdown stops accepting actions and events and restores the terminal.
// The stack must already be empty.
func (a *App[ID, S]) shutdown(events *queue[Event], actions *queue[action[ID]]) error {
	debug.Log("app: shutting down")
	actions.Close()
	events.Close()
	if err := a.restore(); err != nil {
		return fmt.Errorf("tui: restore: %w", err)
	}
	return nil
}
