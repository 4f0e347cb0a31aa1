package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

type testState struct {
	counter int
}

// traceLog records callbacks in the order they happen.
type traceLog struct {
	mu      sync.Mutex
	entries []string
}

func (tr *traceLog) add(format string, args ...any) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	tr.entries = append(tr.entries, fmt.Sprintf(format, args...))
}

func (tr *traceLog) all() []string {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return slices.Clone(tr.entries)
}

// calls returns the trace without draws and background activity.
func (tr *traceLog) calls() []string {
	var out []string
	for _, e := range tr.all() {
		if strings.HasPrefix(e, "draw ") || strings.HasPrefix(e, "background ") {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (tr *traceLog) count(entry string) int {
	n := 0
	for _, e := range tr.all() {
		if e == entry {
			n++
		}
	}
	return n
}

func (tr *traceLog) reset() {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	tr.entries = nil
}

// testSet builds testScreens named "<id>#<n>", n counting instances per id.
type testSet struct {
	tr      *traceLog
	initial string
	bg      map[string]time.Duration // ids with background work; 0 waits for cancellation
	cancel  context.CancelFunc
	made    map[string]int
	lastNav Navigator[string]
}

func newTestSet(initial string) *testSet {
	return &testSet{
		tr:      &traceLog{},
		initial: initial,
		bg:      map[string]time.Duration{},
		made:    map[string]int{},
	}
}

func (set *testSet) Default() Screen[string, testState] {
	set.tr.add("default")
	return set.build(set.initial)
}

func (set *testSet) New(id string) Screen[string, testState] {
	set.tr.add("new %s", id)
	return set.build(id)
}

func (set *testSet) build(id string) Screen[string, testState] {
	set.made[id]++
	s := &testScreen{id: id, name: fmt.Sprintf("%s#%d", id, set.made[id]), set: set}
	if d, ok := set.bg[id]; ok {
		return &bgTestScreen{testScreen: s, delay: d}
	}
	return s
}

type testScreen struct {
	id   string
	name string
	set  *testSet
	hits int
}

func (s *testScreen) Draw(f *Frame, state *testState) {
	s.set.tr.add("draw %s", s.name)
	f.Print(0, 0, fmt.Sprintf("%s hits=%d counter=%d", s.name, s.hits, state.counter), StyleDefault)
}

// OnEvent maps keys to navigation:
//
//	Up      count a hit and redraw
//	Enter   home pushes list, anything else goes back
//	1 2 3   push a, b, c
//	r       replace with b
//	b c R   back, clear, restart
//	d q     redraw, exit
//	z       cancel the run context
//	!       panic
func (s *testScreen) OnEvent(_ context.Context, ev Event, nav Navigator[string], state *testState) {
	s.set.tr.add("event %s", s.name)
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}

	switch key.Key() {
	case tcell.KeyUp:
		s.hits++
		state.counter++
		nav.Redraw()
		return
	case tcell.KeyEnter:
		if s.id == "home" {
			nav.Push("list")
		} else {
			nav.Back()
		}
		return
	}

	switch key.Rune() {
	case '1':
		nav.Push("a")
	case '2':
		nav.Push("b")
	case '3':
		nav.Push("c")
	case 'm':
		nav.Push("a")
		nav.Push("b")
	case 'r':
		nav.Replace("b")
	case 'b':
		nav.Back()
	case 'c':
		nav.Clear()
	case 'R':
		nav.Restart()
	case 'd':
		nav.Redraw()
	case 'q':
		nav.Exit()
	case 'z':
		s.set.cancel()
	case '!':
		panic("boom")
	}
}

func (s *testScreen) OnEnter(_ context.Context, nav Navigator[string], _ *testState) {
	s.set.lastNav = nav
	s.set.tr.add("enter %s", s.name)
}

func (s *testScreen) OnExit(context.Context, Navigator[string], *testState) {
	s.set.tr.add("exit %s", s.name)
}

func (s *testScreen) OnPause(context.Context, Navigator[string], *testState) {
	s.set.tr.add("pause %s", s.name)
}

func (s *testScreen) OnResume(context.Context, Navigator[string], *testState) {
	s.set.tr.add("resume %s", s.name)
}

type bgTestScreen struct {
	*testScreen
	delay time.Duration
}

func (s *bgTestScreen) Background(ctx context.Context, _ Navigator[string], _ *testState) {
	s.set.tr.add("background start %s", s.name)
	var done <-chan time.Time
	if s.delay > 0 {
		done = time.After(s.delay)
	}
	select {
	case <-done:
		s.set.tr.add("background done %s", s.name)
	case <-ctx.Done():
		s.set.tr.add("background cancelled %s", s.name)
	}
}

func newTestApp(t *testing.T, opts ...AppOption) (*App[string, testState], *MockBackend) {
	t.Helper()
	backend := NewMockBackend(40, 5)
	app, err := NewWithState[string](testState{}, append([]AppOption{WithBackend(backend)}, opts...)...)
	if err != nil {
		t.Fatalf("NewWithState: %v", err)
	}
	return app, backend
}

// runApp runs app until it returns, failing the test if that takes too long.
func runApp(t *testing.T, ctx context.Context, app *App[string, testState], set *testSet) error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx, set) }()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
		return nil
	}
}

func keys(runes string) []Event {
	var evs []Event
	for _, r := range runes {
		evs = append(evs, tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
	return evs
}

func assertTrace(t *testing.T, got, want []string) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Errorf("trace mismatch\n got: %q\nwant: %q", got, want)
	}
}
