package stream

import (
	"sync"

	"github.com/pulse-ui/pulse/pkg/scope"
)

// Stream is a lazy, push-based sequence of values. Subscribing attaches a
// consumer for the lifetime of the given scope: when the scope closes, the
// subscription is cancelled and no further values are delivered.
//
// Delivery contract: values of one subscription arrive in emission order. If
// a value is emitted while the previous delivery is still in flight (for
// example, when a consumer emits back into its own stream), the new value is
// queued behind it, never reordered and never delivered re-entrantly.
type Stream[T any] interface {
	Subscribe(sc *scope.Scope, fn func(T)) error
}

// Func adapts a subscribe function to the Stream interface.
type Func[T any] func(sc *scope.Scope, fn func(T)) error

// Subscribe implements Stream.
func (f Func[T]) Subscribe(sc *scope.Scope, fn func(T)) error {
	return f(sc, fn)
}

// deliverer serializes delivery of values to a single subscriber. It is the
// queueing described in the Stream contract: push from any goroutine, the
// consumer function observes values one at a time, in order.
type deliverer[T any] struct {
	mu      sync.Mutex
	queue   []T
	busy    bool
	stopped bool
	fn      func(T)
}

func newDeliverer[T any](fn func(T)) *deliverer[T] {
	return &deliverer[T]{fn: fn}
}

// push enqueues a value and, unless another push is already draining the
// queue, drains it. The draining goroutine delivers everything queued behind
// it, so a blocked consumer never loses ordering.
func (d *deliverer[T]) push(v T) {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.queue = append(d.queue, v)
	if d.busy {
		d.mu.Unlock()
		return
	}
	d.busy = true
	for len(d.queue) > 0 && !d.stopped {
		next := d.queue[0]
		d.queue = d.queue[1:]
		d.mu.Unlock()
		d.fn(next)
		d.mu.Lock()
	}
	d.busy = false
	d.mu.Unlock()
}

// stop drops any queued values and suppresses future deliveries.
// A delivery already in flight is allowed to finish.
func (d *deliverer[T]) stop() {
	d.mu.Lock()
	d.stopped = true
	d.queue = nil
	d.mu.Unlock()
}
