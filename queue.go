package tui

import "sync"

// queue is an unbounded multi-producer, single-consumer FIFO.
//
// Producers never block. The consumer waits on Ready() and then calls Pop.
// The ready channel holds at most one pending signal; Pop re-arms it while
// items remain so a single consumer never misses work.
type queue[T any] struct {
	mu     sync.Mutex
	items  []T
	ready  chan struct{}
	closed bool
}

func newQueue[T any](capacity int) *queue[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &queue[T]{
		items: make([]T, 0, capacity),
		ready: make(chan struct{}, 1),
	}
}

// Push appends v. It returns false if the queue has been closed.
func (q *queue[T]) Push(v T) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.items = append(q.items, v)
	q.mu.Unlock()

	q.signal()
	return true
}

// Pop removes the oldest item. Returns false if the queue is empty.
func (q *queue[T]) Pop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	var zero T
	if len(q.items) == 0 {
		return zero, false
	}
	v := q.items[0]
	q.items[0] = zero
	q.items = q.items[1:]

	if len(q.items) > 0 {
		q.signal()
	} else {
		// Reuse the backing array once drained, and drop the signal left
		// by the push that was just consumed.
		q.items = q.items[:0:cap(q.items)]
		select {
		case <-q.ready:
		default:
		}
	}
	return v, true
}

// Ready returns a channel that receives when at least one item may be queued.
// A receive is a hint: Pop can still report empty.
func (q *queue[T]) Ready() <-chan struct{} {
	return q.ready
}

// Len returns the number of queued items.
func (q *queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Close rejects further pushes and drops any queued items.
// Close is idempotent.
func (q *queue[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	q.items = nil
}

// Closed reports whether Close has been called.
func (q *queue[T]) Closed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}

func (q *queue[T]) signal() {
	select {
	case q.ready <- struct{}{}:
	default:
	}
}
