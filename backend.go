package tui

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// Event is a terminal input event: a key press, a resize, a mouse action, ...
type Event = tcell.Event

var (
	// ErrBackendClosed is returned by Backend.ReadEvent once the backend has
	// been restored. The event reader stops when it sees it.
	ErrBackendClosed = errors.New("tui: backend closed")

	// ErrNotTerminal is returned when the app is started without a terminal attached.
	ErrNotTerminal = errors.New("tui: a terminal is required")

	// ErrAlreadyRunning is returned when Run is called on an App that is already running.
	ErrAlreadyRunning = errors.New("tui: app is already running")
)

// Backend is the terminal the App draws to and reads events from.
//
// Init, Draw and Restore are only called from the event loop goroutine.
// ReadEvent is called from a dedicated reader goroutine and may block.
type Backend interface {
	// Init puts the terminal into the mode needed for the app.
	Init() error

	// Draw calls render with a frame covering the whole terminal and then
	// shows the result.
	Draw(render func(*Frame)) error

	// ReadEvent blocks until the next input event. It returns
	// ErrBackendClosed once Restore has been called; other errors are
	// treated as recoverable.
	ReadEvent() (Event, error)

	// Restore returns the terminal to its state before Init. It must be
	// safe to call more than once and from any cleanup path.
	Restore() error
}

// isResize reports whether ev changes the terminal size.
func isResize(ev Event) bool {
	_, ok := ev.(*tcell.EventResize)
	return ok
}
