package tui

import (
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/atomic"
)

// MockBackend is a Backend for tests. It draws into a tcell simulation screen
// and reads events from a queue fed by Send.
type MockBackend struct {
	screen tcell.SimulationScreen
	width  int
	height int

	events    chan Event
	closed    chan struct{}
	closeOnce sync.Once

	drawErr  atomic.Error
	inits    atomic.Int64
	draws    atomic.Int64
	restores atomic.Int64
	restored atomic.Bool

	mu       sync.Mutex
	onDraw   []func(*Frame)
	snapshot string
}

// Ensure MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// NewMockBackend creates a mock backend with the given terminal size.
func NewMockBackend(width, height int) *MockBackend {
	return &MockBackend{
		screen: tcell.NewSimulationScreen("UTF-8"),
		width:  width,
		height: height,
		events: make(chan Event, 1024),
		closed: make(chan struct{}),
	}
}

// Init initializes the simulation screen.
func (m *MockBackend) Init() error {
	if err := m.screen.Init(); err != nil {
		return err
	}
	m.screen.SetSize(m.width, m.height)
	m.inits.Inc()
	return nil
}

// Draw renders into the simulation screen, or fails with the error set by FailDraws.
func (m *MockBackend) Draw(render func(*Frame)) error {
	if err := m.drawErr.Load(); err != nil {
		return err
	}

	m.screen.Clear()
	frame := newFrame(m.screen)
	render(frame)
	m.screen.Show()

	m.mu.Lock()
	m.snapshot = m.contents()
	hooks := m.onDraw
	m.mu.Unlock()
	for _, fn := range hooks {
		fn(frame)
	}

	m.draws.Inc()
	return nil
}

// ReadEvent returns the next event passed to Send. It returns
// ErrBackendClosed once Restore has been called.
func (m *MockBackend) ReadEvent() (Event, error) {
	select {
	case ev := <-m.events:
		return ev, nil
	case <-m.closed:
		return nil, ErrBackendClosed
	}
}

// Restore marks the backend as restored and unblocks ReadEvent.
func (m *MockBackend) Restore() error {
	m.restores.Inc()
	m.closeOnce.Do(func() {
		m.restored.Store(true)
		close(m.closed)
		if m.inits.Load() > 0 {
			m.screen.Fini()
		}
	})
	return nil
}

// Send queues events for ReadEvent, in order.
func (m *MockBackend) Send(events ...Event) {
	for _, ev := range events {
		m.events <- ev
	}
}

// SendRune queues a key press of r.
func (m *MockBackend) SendRune(r rune) {
	m.Send(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
}

// SendKey queues a press of a special key such as tcell.KeyEnter.
func (m *MockBackend) SendKey(k tcell.Key) {
	m.Send(tcell.NewEventKey(k, 0, tcell.ModNone))
}

// SendResize changes the simulated terminal size and queues a resize event.
func (m *MockBackend) SendResize(width, height int) {
	m.screen.SetSize(width, height)
	m.Send(tcell.NewEventResize(width, height))
}

// FailDraws makes every following Draw return err. A nil err restores normal drawing.
func (m *MockBackend) FailDraws(err error) {
	m.drawErr.Store(err)
}

// OnDraw registers fn to be called with the frame after each successful draw.
func (m *MockBackend) OnDraw(fn func(*Frame)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onDraw = append(m.onDraw, fn)
}

// Inits returns how many times Init was called.
func (m *MockBackend) Inits() int {
	return int(m.inits.Load())
}

// Draws returns how many frames were drawn successfully.
func (m *MockBackend) Draws() int {
	return int(m.draws.Load())
}

// Restores returns how many times Restore was called.
func (m *MockBackend) Restores() int {
	return int(m.restores.Load())
}

// Restored reports whether Restore has been called.
func (m *MockBackend) Restored() bool {
	return m.restored.Load()
}

// Snapshot returns the last drawn frame as text, one line per row with
// trailing spaces trimmed.
func (m *MockBackend) Snapshot() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot
}

func (m *MockBackend) contents() string {
	cells, width, height := m.screen.GetContents()
	var sb strings.Builder
	for y := 0; y < height; y++ {
		var line strings.Builder
		for x := 0; x < width; x++ {
			cell := cells[y*width+x]
			if len(cell.Runes) == 0 {
				line.WriteRune(' ')
				continue
			}
			line.WriteString(string(cell.Runes))
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		if y < height-1 {
			sb.WriteByte('\n')
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}
