package mount

import (
	"github.com/pulse-ui/pulse/pkg/stream"
)

// Attr sets an attribute on the enclosing element once, imperatively.
func Attr(name, value string) Modifier {
	return Func(func(m *Mount) error {
		if err := m.cancelled(); err != nil {
			return err
		}
		m.point.Parent.SetAttribute(name, value)
		return nil
	})
}

// RemoveAttr clears an attribute on the enclosing element.
func RemoveAttr(name string) Modifier {
	return Func(func(m *Mount) error {
		if err := m.cancelled(); err != nil {
			return err
		}
		m.point.Parent.RemoveAttribute(name)
		return nil
	})
}

// BindAttr binds an attribute to a stream. The subscription lives on a
// scope forked from the modifier's scope; each emitted value is applied in
// emission order (last write wins), and the subscription ends when that
// scope closes. The cancellation check before each application makes every
// update a cancellation point.
func BindAttr(name string, s stream.Stream[string]) Modifier {
	return Func(func(m *Mount) error {
		target := m.point.Parent
		sub := m.Scope.Fork()
		return s.Subscribe(sub, func(v string) {
			if sub.Err() != nil {
				return
			}
			target.SetAttribute(name, v)
		})
	})
}
