package stream

import (
	"sync"

	"github.com/pulse-ui/pulse/pkg/scope"
)

// Subject is a hot stream fed by Emit. Unlike Source it holds no current
// value and performs no equality filtering: every emitted value reaches
// every live subscriber, and a new subscriber sees nothing until the next
// Emit. Used for occurrence streams like DOM events.
type Subject[T any] struct {
	mu   sync.Mutex
	subs []*subscription[T]
}

// NewSubject creates an empty subject.
func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{}
}

// Emit delivers a value to all current subscribers in attachment order.
func (s *Subject[T]) Emit(v T) {
	s.mu.Lock()
	subs := make([]*subscription[T], len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.d.push(v)
	}
}

// Subscribe implements Stream.
func (s *Subject[T]) Subscribe(sc *scope.Scope, fn func(T)) error {
	sub := &subscription[T]{
		id: idCounter.Add(1),
		d:  newDeliverer(fn),
	}

	if err := sc.Defer(func() { s.unsubscribe(sub) }); err != nil {
		return err
	}

	s.mu.Lock()
	s.subs = append(s.subs, sub)
	s.mu.Unlock()
	return nil
}

func (s *Subject[T]) unsubscribe(sub *subscription[T]) {
	sub.d.stop()

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.subs {
		if existing.id == sub.id {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}
