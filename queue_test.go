package tui

import (
	"sync"
	"testing"
)

func TestQueue_FIFO(t *testing.T) {
	type tc struct {
		push []int
		want []int
	}

	tests := map[string]tc{
		"empty": {
			push: nil,
			want: nil,
		},
		"single": {
			push: []int{1},
			want: []int{1},
		},
		"ordered": {
			push: []int{3, 1, 2, 5},
			want: []int{3, 1, 2, 5},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			q := newQueue[int](0)
			for _, v := range tt.push {
				if !q.Push(v) {
					t.Fatalf("Push(%d) = false on open queue", v)
				}
			}
			if q.Len() != len(tt.push) {
				t.Errorf("Len() = %d, want %d", q.Len(), len(tt.push))
			}

			var got []int
			for {
				v, ok := q.Pop()
				if !ok {
					break
				}
				got = append(got, v)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("popped %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("pop %d = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestQueue_ReadySignal(t *testing.T) {
	q := newQueue[string](1)

	select {
	case <-q.Ready():
		t.Fatal("Ready fired on empty queue")
	default:
	}

	q.Push("a")
	q.Push("b")

	select {
	case <-q.Ready():
	default:
		t.Fatal("Ready did not fire after Push")
	}

	if v, _ := q.Pop(); v != "a" {
		t.Fatalf("Pop() = %q, want a", v)
	}
	// One item left, so Pop must have re-armed the signal.
	select {
	case <-q.Ready():
	default:
		t.Fatal("Ready not re-armed while items remain")
	}

	q.Pop()
	select {
	case <-q.Ready():
		t.Fatal("Ready fired on drained queue")
	default:
	}
}

func TestQueue_Close(t *testing.T) {
	q := newQueue[int](0)
	q.Push(1)
	q.Close()
	q.Close()

	if !q.Closed() {
		t.Error("Closed() = false after Close")
	}
	if q.Push(2) {
		t.Error("Push after Close = true, want false")
	}
	if _, ok := q.Pop(); ok {
		t.Error("Pop after Close returned an item")
	}
}

func TestQueue_ProducerOrder(t *testing.T) {
	const producers, perProducer = 8, 200
	q := newQueue[[2]int](0)

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push([2]int{p, i})
			}
		}(p)
	}
	wg.Wait()

	next := make([]int, producers)
	for {
		v, ok := q.Pop()
		if !ok {
			break
		}
		if v[1] != next[v[0]] {
			t.Fatalf("producer %d: got item %d, want %d", v[0], v[1], next[v[0]])
		}
		next[v[0]]++
	}
	for p, n := range next {
		if n != perProducer {
			t.Errorf("producer %d: popped %d items, want %d", p, n, perProducer)
		}
	}
}
