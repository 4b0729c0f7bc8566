package stream

import (
	"context"

	"github.com/pulse-ui/pulse/pkg/scope"
)

// Of returns a finite stream that replays the given values, in order, to
// each subscriber at subscription time.
func Of[T any](values ...T) Stream[T] {
	return Func[T](func(sc *scope.Scope, fn func(T)) error {
		d := newDeliverer(fn)
		if err := sc.Defer(d.stop); err != nil {
			return err
		}
		for _, v := range values {
			d.push(v)
		}
		return nil
	})
}

// FromChannel returns a stream backed by a channel. Each subscription owns a
// unit of work on the subscriber's scope that forwards values until the
// channel is closed or the scope closes.
func FromChannel[T any](ch <-chan T) Stream[T] {
	return Func[T](func(sc *scope.Scope, fn func(T)) error {
		d := newDeliverer(fn)
		if err := sc.Defer(d.stop); err != nil {
			return err
		}
		sc.Go(func(ctx context.Context) {
			for {
				select {
				case <-ctx.Done():
					return
				case v, ok := <-ch:
					if !ok {
						return
					}
					d.push(v)
				}
			}
		})
		return nil
	})
}

// Map returns a stream of f applied to each value of s.
func Map[T, U any](s Stream[T], f func(T) U) Stream[U] {
	return Func[U](func(sc *scope.Scope, fn func(U)) error {
		return s.Subscribe(sc, func(v T) {
			fn(f(v))
		})
	})
}

// Filter returns a stream of the values of s for which pred is true.
func Filter[T any](s Stream[T], pred func(T) bool) Stream[T] {
	return Func[T](func(sc *scope.Scope, fn func(T)) error {
		return s.Subscribe(sc, func(v T) {
			if pred(v) {
				fn(v)
			}
		})
	})
}

// Merge combines several streams into one. Subscription happens in argument
// order, which is the documented ordering policy for values that race:
// values replayed at subscription time arrive grouped by source, in argument
// order; values emitted afterwards interleave in emission order.
func Merge[T any](streams ...Stream[T]) Stream[T] {
	return Func[T](func(sc *scope.Scope, fn func(T)) error {
		d := newDeliverer(fn)
		if err := sc.Defer(d.stop); err != nil {
			return err
		}
		for _, s := range streams {
			if err := s.Subscribe(sc, d.push); err != nil {
				return err
			}
		}
		return nil
	})
}
