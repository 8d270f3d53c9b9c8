// Package taskqueue provides a fixed-capacity ring buffer of named tasks
// and read-only snapshots of it for display.
package taskqueue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
	"unsafe"
)

var (
	// ErrFull is returned by Push when every slot is taken.
	ErrFull = errors.New("taskqueue: queue is full")
	// ErrIdle is returned by Work for a non-positive idle interval.
	ErrIdle = errors.New("taskqueue: idle interval must be positive")
)

// Task is one unit of queued work.
type Task struct {
	Name string
	Run  func(ctx context.Context) error
}

// Queue is a ring buffer of tasks. One slot always stays empty so that
// head == tail means the queue is empty. Safe for concurrent use.
type Queue struct {
	mu    sync.Mutex
	slots []Task
	head  int // next slot to write
	tail  int // next slot to read
}

// New creates a queue holding up to capacity tasks.
func New(capacity int) *Queue {
	if capacity < 1 {
		capacity = 1
	}
	return &Queue{slots: make([]Task, capacity+1)}
}

// Cap returns the number of tasks the queue can hold.
func (q *Queue) Cap() int {
	return len(q.slots) - 1
}

// Len returns the number of queued tasks.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return distance(q.tail, q.head, len(q.slots))
}

// Push appends a task at the head.
func (q *Queue) Push(t Task) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	next := (q.head + 1) % len(q.slots)
	if next == q.tail {
		return ErrFull
	}
	q.slots[q.head] = t
	q.head = next
	return nil
}

// Pop removes and returns the task at the tail.
func (q *Queue) Pop() (Task, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.head == q.tail {
		return Task{}, false
	}
	t := q.slots[q.tail]
	q.slots[q.tail] = Task{}
	q.tail = (q.tail + 1) % len(q.slots)
	return t, true
}

// Cursors returns the current head and tail slot indices.
func (q *Queue) Cursors() (head, tail int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.head, q.tail
}

// Snapshot copies the queue state. The copy shares nothing with the queue.
func (q *Queue) Snapshot() Snapshot {
	q.mu.Lock()
	defer q.mu.Unlock()

	slots := make([]Task, len(q.slots))
	copy(slots, q.slots)
	return Snapshot{
		Head:   q.head,
		Tail:   q.tail,
		Extent: len(q.slots),
		Stride: unsafe.Sizeof(Task{}),
		slots:  slots,
	}
}

// Snapshot is a point-in-time view of a Queue.
type Snapshot struct {
	Head   int
	Tail   int
	Extent int     // number of backing slots
	Stride uintptr // size of one slot in bytes
	slots  []Task
}

// Capacity returns the number of tasks the queue could hold.
func (s *Snapshot) Capacity() int {
	if s.Extent == 0 {
		return 0
	}
	return s.Extent - 1
}

// Len returns the number of live tasks in the snapshot.
func (s *Snapshot) Len() int {
	return distance(s.Tail, s.Head, s.Extent)
}

// Walk calls fn for every live task from tail to head, wrapping at the
// backing extent. It walks a local cursor and leaves Head and Tail as they are.
func (s *Snapshot) Walk(fn func(slot int, t Task)) {
	if s.Extent == 0 {
		return
	}
	for cur := s.Tail; cur != s.Head; cur = (cur + 1) % s.Extent {
		fn(cur, s.slots[cur])
	}
}

func distance(from, to, extent int) int {
	if extent == 0 {
		return 0
	}
	return (to - from + extent) % extent
}

// Work pops and runs tasks until ctx is done, sleeping for idle whenever the
// queue is empty. Task errors are passed to onError when it is not nil.
func Work(ctx context.Context, q *Queue, idle time.Duration, onError func(Task, error)) error {
	if idle <= 0 {
		return fmt.Errorf("%w, got %v", ErrIdle, idle)
	}
	ticker := time.NewTicker(idle)
	defer ticker.Stop()

	for {
		if t, ok := q.Pop(); ok {
			if t.Run != nil {
				if err := t.Run(ctx); err != nil && onError != nil {
					onError(t, err)
				}
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
