package mount

import (
	"log"

	pulseerr "github.com/pulse-ui/pulse/internal/errors"
	"github.com/pulse-ui/pulse/pkg/dom"
	"github.com/pulse-ui/pulse/pkg/scope"
)

// Errors surfaced by the mounting engine. Cancellation (ErrCancelled) is a
// distinct outcome, not a defect: it still runs finalizers and is not
// reported through DefectHandler.
var (
	ErrCancelled     = pulseerr.New("E002")
	ErrNotRendered   = pulseerr.New("E100")
	ErrRenderedTwice = pulseerr.New("E101")
	ErrIndexRange    = pulseerr.New("E102")
)

// DefectHandler receives render errors that have no caller left to return
// to (stream-driven updates, forked renders). Modifiers are typed as
// non-failing, so anything landing here is a defect; it is never dropped
// silently. Replaceable for tests and embedding runtimes.
var DefectHandler = func(err error) {
	log.Printf("pulse: render defect: %v", err)
}

// Point is a DOM insertion target: a parent node plus an optional ordering
// anchor. A nil Before means append.
type Point struct {
	Parent dom.Node
	Before dom.Node
}

// Mount is the execution context a Modifier runs against: the document, the
// scope that owns everything the modifier acquires, and the point where it
// inserts its output.
type Mount struct {
	Doc   dom.Document
	Scope *scope.Scope

	point Point

	// onInsert observes nodes placed directly at this mount's point.
	// Children uses it to track each entry's top-level nodes.
	onInsert func(dom.Node)
}

// Point returns the mount's insertion target.
func (m *Mount) Point() Point {
	return m.point
}

// with derives a mount at a different point and scope, keeping the insert
// hook. Used when the point stays logically "the same slot" (components).
func (m *Mount) with(point Point, sc *scope.Scope) *Mount {
	return &Mount{Doc: m.Doc, Scope: sc, point: point, onInsert: m.onInsert}
}

// cancelled reports the scope's cancellation as ErrCancelled. It is the
// checkpoint called before every DOM mutation, which makes each mutation
// site a cancellation point for forked renders.
func (m *Mount) cancelled() error {
	if m.Scope.Err() != nil {
		return ErrCancelled
	}
	return nil
}

// insert places node at the mount point and hands its removal to the scope.
// If the scope finished closing before the removal could be registered, the
// insert is undone synchronously and the mount reports cancellation.
func (m *Mount) insert(node dom.Node) error {
	if err := m.cancelled(); err != nil {
		return err
	}

	m.point.Parent.InsertBefore(node, m.point.Before)
	if m.onInsert != nil {
		m.onInsert(node)
	}

	err := m.Scope.Defer(func() {
		if p := node.Parent(); p != nil {
			p.RemoveChild(node)
		}
	})
	if err != nil {
		m.point.Parent.RemoveChild(node)
		return ErrCancelled
	}
	return nil
}

// Modifier is an effect that mutates the DOM under a mount point, owning
// everything it acquires through the mount's scope. Modifiers never fail
// with expected errors: a non-nil, non-cancellation error is a defect.
type Modifier interface {
	Apply(m *Mount) error
}

// Func adapts a function to the Modifier interface.
type Func func(*Mount) error

// Apply implements Modifier.
func (f Func) Apply(m *Mount) error {
	return f(m)
}

// Nop is a modifier that does nothing.
var Nop Modifier = Func(func(*Mount) error { return nil })

// Group applies modifiers in order, stopping at the first error.
func Group(mods ...Modifier) Modifier {
	return Func(func(m *Mount) error {
		return applyAll(m, mods)
	})
}

// Run mounts modifiers under parent, owned by sc. Closing sc afterwards
// restores parent's child list to its state before Run.
func Run(doc dom.Document, parent dom.Node, sc *scope.Scope, mods ...Modifier) error {
	m := &Mount{Doc: doc, Scope: sc, point: Point{Parent: parent}}
	return applyAll(m, mods)
}

func applyAll(m *Mount, mods []Modifier) error {
	for _, mod := range mods {
		if mod == nil {
			continue
		}
		if err := mod.Apply(m); err != nil {
			return err
		}
	}
	return nil
}

// report escalates a defect through DefectHandler, filtering cancellation.
func report(err error) {
	if err == nil || pulseerr.HasCode(err, "E002") {
		return
	}
	DefectHandler(err)
}
