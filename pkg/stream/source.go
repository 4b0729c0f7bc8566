package stream

import (
	"sync"
	"sync/atomic"

	"github.com/pulse-ui/pulse/pkg/scope"
)

// idCounter generates unique subscription IDs.
var idCounter atomic.Uint64

// Source is a live value holder that is also a Stream of its changes.
//
// A subscriber receives the current value synchronously on subscribe and
// every changed value afterwards. Setting an equal value (per the source's
// equality function) notifies nobody.
//
// Reads are safe from any goroutine. Writes are delivered to subscribers in
// call order as long as the writers themselves are serialized; concurrent
// writers need their own serialization, which is outside this package.
type Source[T any] struct {
	mu    sync.RWMutex
	value T
	subs  []*subscription[T]

	// equal decides whether a new value counts as a change.
	// Nil means Equal.
	equal func(T, T) bool
}

type subscription[T any] struct {
	id uint64
	d  *deliverer[T]
}

// NewSource creates a source holding the given initial value.
func NewSource[T any](initial T) *Source[T] {
	return &Source[T]{value: initial}
}

// WithEquals configures a custom equality function and returns the source.
// Useful when reflect.DeepEqual is too expensive or has wrong semantics for
// the value type.
func (s *Source[T]) WithEquals(fn func(T, T) bool) *Source[T] {
	s.equal = fn
	return s
}

// Get returns the current value.
func (s *Source[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set updates the value and notifies subscribers if it changed.
func (s *Source[T]) Set(value T) {
	s.mu.Lock()
	changed := !s.equals(s.value, value)
	if changed {
		s.value = value
	}
	subs := s.snapshotLocked()
	s.mu.Unlock()

	if changed {
		for _, sub := range subs {
			sub.d.push(value)
		}
	}
}

// Update atomically reads and updates the value.
func (s *Source[T]) Update(fn func(T) T) {
	s.mu.Lock()
	next := fn(s.value)
	changed := !s.equals(s.value, next)
	if changed {
		s.value = next
	}
	subs := s.snapshotLocked()
	s.mu.Unlock()

	if changed {
		for _, sub := range subs {
			sub.d.push(next)
		}
	}
}

// Subscribe implements Stream. The consumer receives the current value
// before Subscribe returns, then each changed value in emission order, until
// the scope closes.
func (s *Source[T]) Subscribe(sc *scope.Scope, fn func(T)) error {
	sub := &subscription[T]{
		id: idCounter.Add(1),
		d:  newDeliverer(fn),
	}

	if err := sc.Defer(func() { s.unsubscribe(sub) }); err != nil {
		return err
	}

	s.mu.Lock()
	s.subs = append(s.subs, sub)
	current := s.value
	s.mu.Unlock()

	sub.d.push(current)
	return nil
}

func (s *Source[T]) unsubscribe(sub *subscription[T]) {
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

// snapshotLocked copies the subscriber list so notification happens without
// holding the value lock. Callers must hold s.mu.
func (s *Source[T]) snapshotLocked() []*subscription[T] {
	subs := make([]*subscription[T], len(s.subs))
	copy(subs, s.subs)
	return subs
}

func (s *Source[T]) equals(a, b T) bool {
	if s.equal != nil {
		return s.equal(a, b)
	}
	return Equal(a, b)
}
