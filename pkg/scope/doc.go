// Package scope provides the lifecycle containers that own every resource
// the mounting engine acquires.
//
// A Scope guarantees ordered, exactly-once release: finalizers registered
// with OnClose run in reverse registration order when the scope closes, and
// child scopes created with Fork are closed (deepest-created first) before
// the parent's own finalizers run. Close is idempotent.
//
//	sc := scope.New()
//	sc.OnClose(func() error { return conn.Close() })
//
//	child := sc.Fork()
//	child.Defer(func() { listener.detach() })
//
//	err := sc.Close() // detaches the listener, then closes the connection
//
// Concurrent units of work are launched with Go and observe cancellation
// through the scope's context:
//
//	sc.Go(func(ctx context.Context) {
//	    for {
//	        if ctx.Err() != nil {
//	            return
//	        }
//	        // ... one cancellable step ...
//	    }
//	})
//
// Close cancels the context first and does not return until every unit has
// stopped, so anything a unit registered against the scope is released by
// the time Close returns.
package scope
