package tui

import "fmt"

// AppOption is a functional option for configuring an App.
type AppOption func(*appConfig) error

type appConfig struct {
	backend   Backend
	queueHint int
	tracer    ScreenTracer
}

func defaultConfig() appConfig {
	return appConfig{queueHint: 64}
}

// WithBackend sets the terminal backend. The default is a TcellBackend on the
// process's terminal; tests usually pass a MockBackend.
func WithBackend(b Backend) AppOption {
	return func(c *appConfig) error {
		if b == nil {
			return fmt.Errorf("backend must not be nil")
		}
		c.backend = b
		return nil
	}
}

// WithEventQueueHint sets the initial capacity of the event and action queues.
// The queues grow as needed; this only avoids early reallocations.
// Default is 64. Must not be negative.
func WithEventQueueHint(n int) AppOption {
	return func(c *appConfig) error {
		if n < 0 {
			return fmt.Errorf("event queue hint must not be negative")
		}
		c.queueHint = n
		return nil
	}
}

// WithScreenTracer registers fn to observe every lifecycle transition.
func WithScreenTracer(fn ScreenTracer) AppOption {
	return func(c *appConfig) error {
		c.tracer = fn
		return nil
	}
}
