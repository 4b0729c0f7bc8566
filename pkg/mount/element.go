package mount

import (
	"github.com/pulse-ui/pulse/pkg/dom"
	"github.com/pulse-ui/pulse/pkg/stream"
)

// ElementMod mounts a new element. On apply it creates the element, inserts
// it at the mount point, and mounts each child modifier with the element as
// their point under a scope forked from the caller's. The scope owns the
// element: closing it removes the element from its parent.
type ElementMod struct {
	tag  string
	mods []Modifier
	ref  *dom.Node
}

// El creates an element modifier for the given tag.
func El(tag string, mods ...Modifier) *ElementMod {
	return &ElementMod{tag: tag, mods: mods}
}

// Ref arranges for the created node to be stored in target during apply,
// before any child modifier runs. This is how callers obtain the element
// value an element mount produces.
func (e *ElementMod) Ref(target *dom.Node) *ElementMod {
	e.ref = target
	return e
}

// Apply implements Modifier.
func (e *ElementMod) Apply(m *Mount) error {
	node := m.Doc.CreateElement(e.tag)
	if err := m.insert(node); err != nil {
		return err
	}
	if e.ref != nil {
		*e.ref = node
	}

	child := m.Scope.Fork()
	cm := &Mount{Doc: m.Doc, Scope: child, point: Point{Parent: node}}
	return applyAll(cm, e.mods)
}

// Text mounts a static text node.
func Text(text string) Modifier {
	return Func(func(m *Mount) error {
		return m.insert(m.Doc.CreateText(text))
	})
}

// BindText mounts a text node driven by a stream. Each emitted value
// replaces the node's content, in emission order, until the scope closes.
func BindText(s stream.Stream[string]) Modifier {
	return Func(func(m *Mount) error {
		node := m.Doc.CreateText("")
		if err := m.insert(node); err != nil {
			return err
		}

		sub := m.Scope.Fork()
		return s.Subscribe(sub, func(v string) {
			if sub.Err() != nil {
				return
			}
			node.SetText(v)
		})
	})
}
