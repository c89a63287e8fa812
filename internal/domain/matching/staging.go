package matching

import (
	"errors"
	"fmt"
	"strings"

	"grad-match/internal/domain/posting"
)

const (
	StagingStack = "stack"
	StagingQueue = "queue"
)

var ErrUnknownStaging = errors.New("unknown staging discipline")

// Stager passes an already sorted ranking through a container. Both
// disciplines are order preserving; the output always equals the input order.
type Stager interface {
	Name() string
	Stage(sorted []posting.Scored) []posting.Scored
}

func NewStager(name string) (Stager, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", StagingStack:
		return StackStager{}, nil
	case StagingQueue:
		return QueueStager{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStaging, name)
	}
}

// StackStager pushes the ranking in reverse and pops it back out.
type StackStager struct{}

func (StackStager) Name() string { return StagingStack }

func (StackStager) Stage(sorted []posting.Scored) []posting.Scored {
	var st stack[posting.Scored]
	for i := len(sorted) - 1; i >= 0; i-- {
		st.push(sorted[i])
	}
	out := make([]posting.Scored, 0, st.len())
	for !st.empty() {
		out = append(out, st.pop())
	}
	return out
}

// QueueStager enqueues the ranking in order and dequeues it.
type QueueStager struct{}

func (QueueStager) Name() string { return StagingQueue }

func (QueueStager) Stage(sorted []posting.Scored) []posting.Scored {
	var q queue[posting.Scored]
	for _, it := range sorted {
		q.enqueue(it)
	}
	out := make([]posting.Scored, 0, q.len())
	for !q.empty() {
		out = append(out, q.dequeue())
	}
	return out
}

type stack[T any] struct {
	items []T
}

func (s *stack[T]) push(v T) { s.items = append(s.items, v) }

func (s *stack[T]) pop() T {
	last := len(s.items) - 1
	v := s.items[last]
	s.items = s.items[:last]
	return v
}

func (s *stack[T]) len() int    { return len(s.items) }
func (s *stack[T]) empty() bool { return len(s.items) == 0 }

type queue[T any] struct {
	items []T
	head  int
}

func (q *queue[T]) enqueue(v T) { q.items = append(q.items, v) }

func (q *queue[T]) dequeue() T {
	v := q.items[q.head]
	q.head++
	return v
}

func (q *queue[T]) len() int    { return len(q.items) - q.head }
func (q *queue[T]) empty() bool { return q.len() == 0 }
