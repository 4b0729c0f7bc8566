package mount

import (
	"github.com/pulse-ui/pulse/pkg/dom"
	"github.com/pulse-ui/pulse/pkg/stream"
)

// On attaches a native event listener to the enclosing element. The
// listener is detached when the modifier's scope closes.
//
// Multiple On modifiers for the same element and event form one logical
// stream of occurrences; they fire in attachment order.
func On(event string, handler func(dom.Event)) Modifier {
	return Func(func(m *Mount) error {
		if err := m.cancelled(); err != nil {
			return err
		}

		remove := m.point.Parent.AddListener(event, handler)
		if err := m.Scope.Defer(remove); err != nil {
			remove()
			return ErrCancelled
		}
		return nil
	})
}

// Events returns a subject carrying the element's occurrences of the given
// event, plus the modifier that attaches the listener. The subject delivers
// every occurrence; consecutive identical events are not deduplicated.
//
//	clicks, listen := mount.Events("click")
//	// ... El("button", listen, ...) ...
//	clicks.Subscribe(sc, func(ev dom.Event) { ... })
func Events(event string) (*stream.Subject[dom.Event], Modifier) {
	subject := stream.NewSubject[dom.Event]()
	return subject, On(event, subject.Emit)
}

// EmitTo forwards the element's events into an existing subject. Useful for
// merging events from several elements into one stream; merged sources
// deliver in attachment order.
func EmitTo(event string, subject *stream.Subject[dom.Event]) Modifier {
	return On(event, subject.Emit)
}
