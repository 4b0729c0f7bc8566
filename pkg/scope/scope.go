package scope

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	pulseerr "github.com/pulse-ui/pulse/internal/errors"
)

// ErrClosed is returned when a finalizer is registered against a scope that
// has finished closing. The caller must release the resource itself.
var ErrClosed = pulseerr.New("E001")

// Finalizer is a cleanup action registered against a scope. A non-nil error
// is a defect: it is collected during close and reported to the closer, and
// it does not stop other finalizers from running.
type Finalizer func() error

// idCounter generates unique scope IDs.
var idCounter atomic.Uint64

const (
	stateOpen uint8 = iota
	stateClosing
	stateClosed
)

// Scope is a lifecycle container that guarantees ordered, exactly-once
// release of every resource registered against it.
//
// Scopes form a tree: closing a parent closes all of its still-open children
// in reverse creation order before running the parent's own finalizers, which
// themselves run in reverse registration order. Close is idempotent.
//
// Each scope carries a context.Context that is cancelled at the start of
// close. Concurrent units launched with Go observe cancellation through that
// context; Close does not return before every owned unit has stopped.
type Scope struct {
	id     uint64
	parent *Scope

	ctx    context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	state      uint8
	children   []*Scope
	finalizers []Finalizer

	// units counts goroutines launched via Go.
	units sync.WaitGroup
}

// New creates a new, independent root scope.
func New() *Scope {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scope{
		id:     idCounter.Add(1),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Fork creates a child scope. The child is closed automatically when the
// parent closes, if not already closed. Forking from a scope that is closing
// or closed returns a scope that is itself already closed, so resource
// acquisition against it fails fast.
func (s *Scope) Fork() *Scope {
	ctx, cancel := context.WithCancel(s.ctx)
	child := &Scope{
		id:     idCounter.Add(1),
		parent: s,
		ctx:    ctx,
		cancel: cancel,
	}

	s.mu.Lock()
	if s.state != stateOpen {
		s.mu.Unlock()
		cancel()
		child.state = stateClosed
		return child
	}
	s.children = append(s.children, child)
	s.mu.Unlock()

	return child
}

// ID returns the unique identifier for this scope.
func (s *Scope) ID() uint64 {
	return s.id
}

// Parent returns the parent scope, or nil for a root scope.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Context returns the scope's context. It is cancelled when close begins.
func (s *Scope) Context() context.Context {
	return s.ctx
}

// Done returns a channel closed when the scope's context is cancelled.
func (s *Scope) Done() <-chan struct{} {
	return s.ctx.Done()
}

// Err returns a non-nil error once cancellation has been requested.
// It is the cooperative cancellation checkpoint for in-flight work.
func (s *Scope) Err() error {
	return s.ctx.Err()
}

// Closed reports whether the scope has finished closing.
func (s *Scope) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == stateClosed
}

// OnClose registers a finalizer to run when the scope closes. Finalizers run
// in reverse registration order. Returns ErrClosed if the scope has already
// finished closing; the caller must then run the corresponding release
// itself.
//
// Registration stays open while a close is in progress so that cancelled
// units can still hand over resources they acquired before observing
// cancellation.
func (s *Scope) OnClose(fn Finalizer) error {
	if fn == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == stateClosed {
		return ErrClosed
	}
	s.finalizers = append(s.finalizers, fn)
	return nil
}

// Defer registers a finalizer that cannot fail.
func (s *Scope) Defer(fn func()) error {
	return s.OnClose(func() error {
		fn()
		return nil
	})
}

// Go launches a unit of concurrent work owned by this scope. The unit's
// context is cancelled when the scope begins closing, and Close blocks until
// the unit has returned. If the scope is already closing, fn does not run.
func (s *Scope) Go(fn func(ctx context.Context)) {
	s.mu.Lock()
	if s.state != stateOpen {
		s.mu.Unlock()
		return
	}
	s.units.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.units.Done()
		fn(s.ctx)
	}()
}

// Close tears the scope down. Running it a second time is a no-op.
//
// Order: cancel the scope context (requesting cancellation of every owned
// unit, transitively through child scopes), wait for owned units to stop,
// close children in reverse creation order, then run this scope's finalizers
// in reverse registration order. Finalizer errors and recovered panics are
// joined and returned to the closer; they never stop remaining finalizers.
func (s *Scope) Close() error {
	s.mu.Lock()
	if s.state != stateOpen {
		s.mu.Unlock()
		return nil
	}
	s.state = stateClosing
	s.mu.Unlock()

	s.cancel()
	s.units.Wait()

	s.mu.Lock()
	children := make([]*Scope, len(s.children))
	copy(children, s.children)
	s.children = nil
	s.mu.Unlock()

	var errs []error
	for i := len(children) - 1; i >= 0; i-- {
		if err := children[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}

	s.mu.Lock()
	s.state = stateClosed
	finalizers := s.finalizers
	s.finalizers = nil
	s.mu.Unlock()

	for i := len(finalizers) - 1; i >= 0; i-- {
		if err := runFinalizer(finalizers[i]); err != nil {
			errs = append(errs, err)
		}
	}

	if s.parent != nil {
		s.parent.removeChild(s)
	}

	if len(errs) > 0 {
		return pulseerr.New("E003").Wrap(errors.Join(errs...))
	}
	return nil
}

// removeChild unlinks a closed child from this scope's children list.
func (s *Scope) removeChild(child *Scope) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.children {
		if c == child {
			s.children = append(s.children[:i], s.children[i+1:]...)
			return
		}
	}
}

// runFinalizer runs one finalizer, converting a panic into an error so the
// close loop can keep going.
func runFinalizer(fn Finalizer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("finalizer panic: %v", r)
		}
	}()
	return fn()
}
