package tui

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
)

// TcellBackend is the default Backend, drawing through a tcell screen.
type TcellBackend struct {
	screen    tcell.Screen
	newScreen func() (tcell.Screen, error)
	checkTTY  bool

	// needsSync is set by the reader after a resize so the next Draw does a
	// full repaint instead of a diff.
	needsSync   atomic.Bool
	restoreOnce sync.Once
	restoreErr  error
}

var _ Backend = (*TcellBackend)(nil)

// NewTcellBackend creates a backend for the process's terminal.
// The tcell screen is allocated in Init.
func NewTcellBackend() *TcellBackend {
	return &TcellBackend{
		newScreen: tcell.NewScreen,
		checkTTY:  true,
	}
}

// NewTcellBackendWithScreen creates a backend around an existing tcell screen,
// for instance a tcell.SimulationScreen. Init still calls screen.Init.
func NewTcellBackendWithScreen(screen tcell.Screen) *TcellBackend {
	return &TcellBackend{screen: screen}
}

// Screen returns the underlying tcell screen. It is nil before Init for
// backends created by NewTcellBackend.
func (b *TcellBackend) Screen() tcell.Screen {
	return b.screen
}

// Init allocates and initializes the tcell screen.
func (b *TcellBackend) Init() error {
	if b.checkTTY && !isTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}

	if b.screen == nil {
		screen, err := b.newScreen()
		if err != nil {
			return fmt.Errorf("tui: creating screen: %w", err)
		}
		b.screen = screen
	}

	if err := b.screen.Init(); err != nil {
		return fmt.Errorf("tui: initializing screen: %w", err)
	}
	b.screen.HideCursor()
	b.screen.Clear()
	return nil
}

// Draw clears the screen, renders a frame and shows it.
func (b *TcellBackend) Draw(render func(*Frame)) error {
	if b.screen == nil {
		return fmt.Errorf("tui: draw before init")
	}
	b.screen.Clear()
	render(newFrame(b.screen))

	if b.needsSync.Swap(false) {
		b.screen.Sync()
	} else {
		b.screen.Show()
	}
	return nil
}

// ReadEvent blocks for the next tcell event.
func (b *TcellBackend) ReadEvent() (Event, error) {
	if b.screen == nil {
		return nil, ErrBackendClosed
	}
	ev := b.screen.PollEvent()
	if ev == nil {
		// PollEvent returns nil once the screen is finalized.
		return nil, ErrBackendClosed
	}
	if isResize(ev) {
		b.needsSync.Store(true)
	}
	return ev, nil
}

// Restore finalizes the tcell screen. Only the first call has an effect.
func (b *TcellBackend) Restore() error {
	b.restoreOnce.Do(func() {
		if b.screen == nil {
			return
		}
		defer func() {
			if r := recover(); r != nil {
				b.restoreErr = fmt.Errorf("tui: restoring terminal: %v", r)
			}
		}()
		b.screen.Fini()
	})
	return b.restoreErr
}
