package dom

import (
	"sync"
)

// memDocument is the in-memory Document used by tests and by the
// server-driven runtime. One mutex guards the whole tree: the engine
// promises that DOM mutation is confined to one logical context, the mutex
// keeps stray goroutines honest.
type memDocument struct {
	mu         sync.Mutex
	listenerID uint64
}

// NewDocument creates an empty in-memory document.
func NewDocument() Document {
	return &memDocument{}
}

// CreateElement implements Document.
func (d *memDocument) CreateElement(tag string) Node {
	return &memNode{doc: d, kind: KindElement, tag: tag}
}

// CreateText implements Document.
func (d *memDocument) CreateText(text string) Node {
	return &memNode{doc: d, kind: KindText, text: text}
}

// NewRoot creates a detached element usable as a mount root.
func NewRoot(doc Document, tag string) Node {
	return doc.CreateElement(tag)
}

type attrEntry struct {
	name  string
	value string
}

type listenerEntry struct {
	id uint64
	fn func(Event)
}

type memNode struct {
	doc  *memDocument
	kind Kind
	tag  string
	text string

	parent   *memNode
	children []*memNode

	// attrs keeps first-set order for deterministic serialization.
	attrs []attrEntry

	listeners map[string][]listenerEntry
}

func (n *memNode) Kind() Kind { return n.kind }
func (n *memNode) Tag() string { return n.tag }

func (n *memNode) Text() string {
	n.doc.mu.Lock()
	defer n.doc.mu.Unlock()
	return n.text
}

func (n *memNode) SetText(text string) {
	if n.kind != KindText {
		return
	}
	n.doc.mu.Lock()
	n.text = text
	n.doc.mu.Unlock()
}

func (n *memNode) Parent() Node {
	n.doc.mu.Lock()
	defer n.doc.mu.Unlock()
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *memNode) Children() []Node {
	n.doc.mu.Lock()
	defer n.doc.mu.Unlock()
	out := make([]Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *memNode) InsertBefore(child, ref Node) {
	c, ok := child.(*memNode)
	if !ok || c == n {
		return
	}

	n.doc.mu.Lock()
	defer n.doc.mu.Unlock()

	// Detach from previous parent first (move semantics).
	if c.parent != nil {
		c.parent.removeLocked(c)
	}

	idx := len(n.children)
	if r, ok := ref.(*memNode); ok && r != nil {
		for i, existing := range n.children {
			if existing == r {
				idx = i
				break
			}
		}
	}

	n.children = append(n.children, nil)
	copy(n.children[idx+1:], n.children[idx:])
	n.children[idx] = c
	c.parent = n
}

func (n *memNode) RemoveChild(child Node) {
	c, ok := child.(*memNode)
	if !ok {
		return
	}
	n.doc.mu.Lock()
	defer n.doc.mu.Unlock()
	if c.parent != n {
		return
	}
	n.removeLocked(c)
}

func (n *memNode) removeLocked(c *memNode) {
	for i, existing := range n.children {
		if existing == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			c.parent = nil
			return
		}
	}
}

func (n *memNode) SetAttribute(name, value string) {
	if n.kind != KindElement {
		return
	}
	n.doc.mu.Lock()
	defer n.doc.mu.Unlock()
	for i, a := range n.attrs {
		if a.name == name {
			n.attrs[i].value = value
			return
		}
	}
	n.attrs = append(n.attrs, attrEntry{name: name, value: value})
}

func (n *memNode) RemoveAttribute(name string) {
	n.doc.mu.Lock()
	defer n.doc.mu.Unlock()
	for i, a := range n.attrs {
		if a.name == name {
			n.attrs = append(n.attrs[:i], n.attrs[i+1:]...)
			return
		}
	}
}

func (n *memNode) Attribute(name string) (string, bool) {
	n.doc.mu.Lock()
	defer n.doc.mu.Unlock()
	for _, a := range n.attrs {
		if a.name == name {
			return a.value, true
		}
	}
	return "", false
}

func (n *memNode) AttributeNames() []string {
	n.doc.mu.Lock()
	defer n.doc.mu.Unlock()
	names := make([]string, len(n.attrs))
	for i, a := range n.attrs {
		names[i] = a.name
	}
	return names
}

func (n *memNode) AddListener(event string, fn func(Event)) func() {
	n.doc.mu.Lock()
	if n.listeners == nil {
		n.listeners = make(map[string][]listenerEntry)
	}
	n.doc.listenerID++
	id := n.doc.listenerID
	n.listeners[event] = append(n.listeners[event], listenerEntry{id: id, fn: fn})
	n.doc.mu.Unlock()

	return func() {
		n.doc.mu.Lock()
		defer n.doc.mu.Unlock()
		entries := n.listeners[event]
		for i, e := range entries {
			if e.id == id {
				n.listeners[event] = append(entries[:i], entries[i+1:]...)
				return
			}
		}
	}
}

func (n *memNode) Dispatch(ev Event) {
	n.doc.mu.Lock()
	entries := make([]listenerEntry, len(n.listeners[ev.Type]))
	copy(entries, n.listeners[ev.Type])
	n.doc.mu.Unlock()

	if ev.Target == nil {
		ev.Target = n
	}
	for _, e := range entries {
		e.fn(ev)
	}
}
