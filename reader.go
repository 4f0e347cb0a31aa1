package tui

import (
	"errors"

	"github.com/grindlemire/go-tuistack/internal/debug"
)

// readEvents forwards backend events to out until the backend is closed or
// out stops accepting events. It runs on its own goroutine.
func readEvents(b Backend, out *queue[Event]) {
	for {
		ev, err := b.ReadEvent()
		if err != nil {
			if errors.Is(err, ErrBackendClosed) {
				debug.Log("reader: backend closed")
				return
			}
			debug.Log("reader: read error: %v", err)
			continue
		}
		if ev == nil {
			continue
		}
		if !out.Push(ev) {
			debug.Log("reader: event queue closed")
			return
		}
	}
}
