package mount

import (
	"context"
	"sync"

	"github.com/pulse-ui/pulse/pkg/dom"
	"github.com/pulse-ui/pulse/pkg/scope"
	"github.com/pulse-ui/pulse/pkg/stream"
)

// MountOne binds a single rendering slot to a stream: whenever the stream
// produces a changed value (by stream.Equal), the previous rendering is
// torn down and render(value) is mounted in its place, synchronously; the
// emitter is blocked until the new mount completes.
//
// Invariants: at any observable instant the slot has zero or one rendered
// subtree attached; an unchanged value causes no re-render and no scope
// churn; closing the slot's enclosing scope tears down the current
// rendering.
func MountOne[T any](src stream.Stream[T], render func(T) Modifier) Modifier {
	return mountOne(src, render, false)
}

// MountOneForked is MountOne with forked replacement: each render runs as a
// unit of concurrent work owned by its scope, and the emitter is not
// blocked. A newer value cancels an in-flight render at its next mutation
// checkpoint and rolls back whatever it had already applied, by closing its
// scope. Under rapid updates the slot may transiently show the last
// completed rendering while a newer one is in flight; responsiveness is
// deliberately preferred over latest-value display here.
func MountOneForked[T any](src stream.Stream[T], render func(T) Modifier) Modifier {
	return mountOne(src, render, true)
}

func mountOne[T any](src stream.Stream[T], render func(T) Modifier, forked bool) Modifier {
	return Func(func(m *Mount) error {
		s := &slot[T]{
			doc:    m.Doc,
			point:  m.point,
			render: render,
			forked: forked,
		}
		// The subscription scope also owns every render scope, so slot
		// teardown is just this scope closing.
		s.owner = m.Scope.Fork()
		return src.Subscribe(s.owner, s.update)
	})
}

// slot holds the Alternative state: the last-seen value and the scope of
// the current rendering.
type slot[T any] struct {
	doc    dom.Document
	point  Point
	render func(T) Modifier
	forked bool
	owner  *scope.Scope

	mu   sync.Mutex
	has  bool
	last T
	cur  *scope.Scope
}

// update handles one stream value. Values of one subscription arrive
// serialized, so updates never race each other; the mutex only guards
// against the owner closing concurrently.
func (s *slot[T]) update(t T) {
	s.mu.Lock()
	if s.has && stream.Equal(s.last, t) {
		s.mu.Unlock()
		return
	}
	prev := s.cur
	next := s.owner.Fork()
	s.has = true
	s.last = t
	s.cur = next
	s.mu.Unlock()

	// Closing the previous render's scope rolls back its DOM and, for a
	// forked render still in flight, cancels it and waits until it has
	// stopped. Only after that does the new rendering begin, so two
	// subtrees are never attached at once.
	if prev != nil {
		report(prev.Close())
	}

	mod := s.render(t)
	m := &Mount{Doc: s.doc, Scope: next, point: s.point}

	if s.forked {
		next.Go(func(ctx context.Context) {
			report(mod.Apply(m))
		})
		return
	}
	report(mod.Apply(m))
}
