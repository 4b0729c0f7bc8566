package dom

import (
	"sync"

	"github.com/pulse-ui/pulse/pkg/protocol"
)

// Recorder is a Document that mirrors every mutation into protocol ops.
// A server session mounts against a Recorder; Flush drains the ops that
// accumulated since the last flush so they can be framed to the client.
//
// The recorder also assigns the node IDs the wire protocol speaks, and can
// resolve an ID back to its node for client event dispatch.
type Recorder struct {
	inner Document

	mu     sync.Mutex
	nextID uint64
	nodes  map[Node]*recNode
	byID   map[uint64]*recNode
	ops    []protocol.Op
}

// NewRecorder wraps a document.
func NewRecorder(inner Document) *Recorder {
	return &Recorder{
		inner: inner,
		nodes: make(map[Node]*recNode),
		byID:  make(map[uint64]*recNode),
	}
}

// CreateElement implements Document.
func (r *Recorder) CreateElement(tag string) Node {
	n := r.register(r.inner.CreateElement(tag))
	r.record(protocol.Op{Code: protocol.OpCreateElement, Node: n.id, Name: tag})
	return n
}

// CreateText implements Document.
func (r *Recorder) CreateText(text string) Node {
	n := r.register(r.inner.CreateText(text))
	r.record(protocol.Op{Code: protocol.OpCreateText, Node: n.id, Value: text})
	return n
}

// Adopt registers an existing node of the inner document (typically the
// mount root) without emitting a create op. The client is expected to
// already have a node under the returned ID.
func (r *Recorder) Adopt(inner Node) Node {
	return r.register(inner)
}

// Flush returns the ops recorded since the previous flush.
func (r *Recorder) Flush() []protocol.Op {
	r.mu.Lock()
	defer r.mu.Unlock()
	ops := r.ops
	r.ops = nil
	return ops
}

// NodeByID resolves a wire node ID, for routing client events.
func (r *Recorder) NodeByID(id uint64) (Node, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	return n, true
}

// ID returns the wire ID of a node created or adopted by this recorder.
func (r *Recorder) ID(n Node) (uint64, bool) {
	rn, ok := n.(*recNode)
	if !ok || rn.rec != r {
		return 0, false
	}
	return rn.id, true
}

func (r *Recorder) register(inner Node) *recNode {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.nodes[inner]; ok {
		return existing
	}
	r.nextID++
	n := &recNode{rec: r, id: r.nextID, inner: inner, events: make(map[string]int)}
	r.nodes[inner] = n
	r.byID[n.id] = n
	return n
}

// unregister drops the mappings for a removed subtree so a long-lived
// session does not accumulate an entry for every node it ever created, and
// so NodeByID stops resolving nodes the client no longer has.
func (r *Recorder) unregister(inner Node) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unregisterLocked(inner)
}

func (r *Recorder) unregisterLocked(inner Node) {
	if n, ok := r.nodes[inner]; ok {
		delete(r.nodes, inner)
		delete(r.byID, n.id)
	}
	for _, c := range inner.Children() {
		r.unregisterLocked(c)
	}
}

// reregister restores a wrapper's mappings when a previously removed node
// is inserted again. The wrapper keeps its wire ID; unseen descendants are
// re-wrapped lazily on traversal.
func (r *Recorder) reregister(n *recNode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nodes[n.inner] = n
	r.byID[n.id] = n
}

// wrap maps an inner node back to its recorder wrapper. Nodes that were
// never seen by this recorder are registered silently so traversal works on
// pre-existing subtrees.
func (r *Recorder) wrap(inner Node) Node {
	if inner == nil {
		return nil
	}
	return r.register(inner)
}

func (r *Recorder) record(op protocol.Op) {
	r.mu.Lock()
	r.ops = append(r.ops, op)
	r.mu.Unlock()
}

// recNode wraps a Node, forwarding every call and recording mutations.
type recNode struct {
	rec   *Recorder
	id    uint64
	inner Node

	// events counts live listeners per event type so Listen/Unlisten ops
	// fire only on the 0→1 and 1→0 transitions.
	eventsMu sync.Mutex
	events   map[string]int
}

func unwrap(n Node) Node {
	if rn, ok := n.(*recNode); ok {
		return rn.inner
	}
	return n
}

func (n *recNode) Kind() Kind { return n.inner.Kind() }
func (n *recNode) Tag() string { return n.inner.Tag() }
func (n *recNode) Text() string { return n.inner.Text() }
func (n *recNode) Parent() Node { return n.rec.wrap(n.inner.Parent()) }
func (n *recNode) AttributeNames() []string { return n.inner.AttributeNames() }

func (n *recNode) Attribute(name string) (string, bool) {
	return n.inner.Attribute(name)
}

func (n *recNode) Children() []Node {
	inner := n.inner.Children()
	out := make([]Node, len(inner))
	for i, c := range inner {
		out[i] = n.rec.wrap(c)
	}
	return out
}

func (n *recNode) SetText(text string) {
	n.inner.SetText(text)
	n.rec.record(protocol.Op{Code: protocol.OpSetText, Node: n.id, Value: text})
}

func (n *recNode) InsertBefore(child, ref Node) {
	c, ok := child.(*recNode)
	if !ok {
		return
	}
	var refID uint64
	var innerRef Node
	if ref != nil {
		refID, _ = n.rec.ID(ref)
		innerRef = unwrap(ref)
	}
	n.rec.reregister(c)
	n.inner.InsertBefore(c.inner, innerRef)
	n.rec.record(protocol.Op{Code: protocol.OpInsert, Node: c.id, Parent: n.id, Ref: refID})
}

func (n *recNode) RemoveChild(child Node) {
	c, ok := child.(*recNode)
	if !ok {
		return
	}
	n.inner.RemoveChild(c.inner)
	n.rec.record(protocol.Op{Code: protocol.OpRemove, Node: c.id})
	n.rec.unregister(c.inner)
}

func (n *recNode) SetAttribute(name, value string) {
	n.inner.SetAttribute(name, value)
	n.rec.record(protocol.Op{Code: protocol.OpSetAttr, Node: n.id, Name: name, Value: value})
}

func (n *recNode) RemoveAttribute(name string) {
	n.inner.RemoveAttribute(name)
	n.rec.record(protocol.Op{Code: protocol.OpRemoveAttr, Node: n.id, Name: name})
}

func (n *recNode) AddListener(event string, fn func(Event)) func() {
	remove := n.inner.AddListener(event, fn)

	n.eventsMu.Lock()
	n.events[event]++
	first := n.events[event] == 1
	n.eventsMu.Unlock()
	if first {
		n.rec.record(protocol.Op{Code: protocol.OpListen, Node: n.id, Name: event})
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			remove()
			n.eventsMu.Lock()
			n.events[event]--
			last := n.events[event] == 0
			n.eventsMu.Unlock()
			if last {
				n.rec.record(protocol.Op{Code: protocol.OpUnlisten, Node: n.id, Name: event})
			}
		})
	}
}

func (n *recNode) Dispatch(ev Event) {
	if ev.Target == nil {
		ev.Target = n
	}
	n.inner.Dispatch(ev)
}
