package tui

// Go runs fn on a new goroutine. If fn panics the terminal is restored before
// the panic continues, so the stack trace lands on a usable terminal.
//
// Use it instead of the go keyword for goroutines started by screens.
func (a *App[ID, S]) Go(fn func()) {
	go func() {
		defer a.restoreOnPanic()
		fn()
	}()
}

// restoreOnPanic must be deferred directly.
func (a *App[ID, S]) restoreOnPanic() {
	if r := recover(); r != nil {
		_ = a.restore()
		panic(r)
	}
}
