package mount

import (
	"sync"

	"github.com/pulse-ui/pulse/pkg/dom"
	"github.com/pulse-ui/pulse/pkg/scope"
)

// Children is an ordered, dynamically growable collection of independently
// scoped child mounts sharing one mount point.
//
// Lifecycle: create with NewChildren, mount its Render modifier exactly
// once to establish the point, then Append or InsertAt children. Each child
// gets a destroy callback that removes exactly that child; closing the
// scope Render ran under removes every child that is still present.
//
// All insertion and removal against the collection's point is linearized by
// the collection mutex, so concurrent calls never interleave their DOM
// mutations.
type Children struct {
	mu       sync.Mutex
	rendered bool
	doc      dom.Document
	point    Point
	sc       *scope.Scope
	entries  []*childEntry
}

type childEntry struct {
	sc *scope.Scope

	// nodes are the entry's top-level nodes at the collection point, in
	// insertion order. Used as ordering anchors for InsertAt.
	nodes []dom.Node
}

// NewChildren creates an empty, unmounted collection.
func NewChildren() *Children {
	return &Children{}
}

// Render returns the modifier that mounts the collection: it captures the
// mount point for subsequent Append/InsertAt calls and forks the scope that
// owns every child. Mounting it a second time fails with ErrRenderedTwice.
func (c *Children) Render() Modifier {
	return Func(func(m *Mount) error {
		c.mu.Lock()
		defer c.mu.Unlock()

		if c.rendered {
			return ErrRenderedTwice
		}
		if err := m.cancelled(); err != nil {
			return err
		}
		c.rendered = true
		c.doc = m.Doc
		c.point = m.point
		c.sc = m.Scope.Fork()
		return nil
	})
}

// Append mounts a new child after the current entries. The build function
// receives the child's destroy callback; invoking it closes exactly that
// child's scope and removes its entry, and is a no-op once the child is
// already gone. Append itself never removes the child; removal happens
// only through the destroy callback or the render scope closing.
//
// Calling Append before Render has mounted fails with ErrNotRendered.
//
// The destroy callback must not be invoked from inside build itself: the
// child has not finished mounting yet.
func (c *Children) Append(build func(destroy func()) Modifier) error {
	return c.insert(-1, build)
}

// InsertAt mounts a new child at the given ordinal position, shifting later
// entries. InsertAt(0, ...) prepends; InsertAt(Len(), ...) appends.
func (c *Children) InsertAt(idx int, build func(destroy func()) Modifier) error {
	if idx < 0 {
		return ErrIndexRange
	}
	return c.insert(idx, build)
}

// Len returns the number of currently mounted children.
func (c *Children) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// insert mounts a child at position idx (-1 means append). The collection
// mutex is held across the whole mount, which is what linearizes all DOM
// mutation at the collection's point. The child scope is only ever closed
// outside the lock: its unlink finalizer takes the same mutex.
func (c *Children) insert(idx int, build func(destroy func()) Modifier) error {
	c.mu.Lock()

	if !c.rendered {
		c.mu.Unlock()
		return ErrNotRendered
	}
	if idx == -1 {
		idx = len(c.entries)
	}
	if idx > len(c.entries) {
		c.mu.Unlock()
		return ErrIndexRange
	}

	child := c.sc.Fork()
	entry := &childEntry{sc: child}

	// Destroying is closing the child's scope; entry unlinking rides along
	// as a finalizer so the render scope closing takes the same path.
	destroy := func() { entry.sc.Close() }
	if err := child.Defer(func() { c.unlink(entry) }); err != nil {
		c.mu.Unlock()
		return ErrCancelled
	}

	m := &Mount{
		Doc:      c.doc,
		Scope:    child,
		point:    Point{Parent: c.point.Parent, Before: c.anchorLocked(idx)},
		onInsert: func(n dom.Node) { entry.nodes = append(entry.nodes, n) },
	}

	c.entries = append(c.entries, nil)
	copy(c.entries[idx+1:], c.entries[idx:])
	c.entries[idx] = entry

	err := build(destroy).Apply(m)
	c.mu.Unlock()

	if err != nil {
		child.Close()
		return err
	}
	return nil
}

// anchorLocked finds the DOM node a child at position idx must be inserted
// before: the first top-level node of the first entry at or after idx, or
// the collection point's own anchor when inserting at the end.
func (c *Children) anchorLocked(idx int) dom.Node {
	for _, entry := range c.entries[idx:] {
		if len(entry.nodes) > 0 {
			return entry.nodes[0]
		}
	}
	return c.point.Before
}

// unlink removes a destroyed child's entry. Runs as the child scope's
// finalizer, so it fires exactly once regardless of who closed the child.
func (c *Children) unlink(entry *childEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, existing := range c.entries {
		if existing == entry {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return
		}
	}
}
