package mount

import (
	"context"

	"github.com/pulse-ui/pulse/pkg/scope"
)

// Ctl is the control surface a component receives: its own scope, cleanup
// registration, and imperative self-removal.
type Ctl struct {
	sc *scope.Scope
}

// Scope returns the component's scope. State created against it (sources,
// subscriptions, child mounts) lives exactly as long as the component.
func (c *Ctl) Scope() *scope.Scope {
	return c.sc
}

// Context returns the component scope's context.
func (c *Ctl) Context() context.Context {
	return c.sc.Context()
}

// OnCleanup registers a cleanup to run when the component unmounts.
// Registration after unmount runs the cleanup immediately.
func (c *Ctl) OnCleanup(fn func()) {
	if err := c.sc.Defer(fn); err != nil {
		fn()
	}
}

// Remove unmounts the component: it closes the component's scope, which
// removes its DOM subtree and releases everything it owns. Calling it again
// is a no-op. Typically invoked from one of the component's own event
// handlers. Must not be called from a unit launched with the component
// scope's Go; the close would wait for that unit to stop.
func (c *Ctl) Remove() {
	report(c.sc.Close())
}

// Component mounts a user-defined composite component. The build function
// runs once, receives the component's Ctl, and returns the modifier tree to
// mount. Everything mounts under a scope forked from the caller's, so the
// component's internal state and DOM share one lifecycle.
func Component(build func(ctl *Ctl) Modifier) Modifier {
	return Func(func(m *Mount) error {
		sc := m.Scope.Fork()
		ctl := &Ctl{sc: sc}

		mod := build(ctl)
		if mod == nil {
			return nil
		}

		if err := mod.Apply(m.with(m.point, sc)); err != nil {
			report(sc.Close())
			return err
		}
		return nil
	})
}
