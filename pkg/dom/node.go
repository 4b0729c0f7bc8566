package dom

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement Kind = iota // <div>, <button>, etc.
	KindText                // Plain text node
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Document is the factory half of the platform boundary. All native node
// creation goes through a Document; all mutation goes through the Node it
// returns. The engine never touches a platform API anywhere else.
type Document interface {
	// CreateElement creates a detached element node.
	CreateElement(tag string) Node

	// CreateText creates a detached text node.
	CreateText(text string) Node
}

// Node is the mutation half of the platform boundary. Implementations must
// serialize all mutation internally: the engine treats the tree as confined
// to one logical execution context.
type Node interface {
	// Kind reports whether this is an element or a text node.
	Kind() Kind

	// Tag returns the element tag name ("" for text nodes).
	Tag() string

	// Text returns the text content of a text node ("" for elements).
	Text() string

	// SetText replaces the content of a text node. No-op on elements.
	SetText(text string)

	// Parent returns the parent node, or nil when detached.
	Parent() Node

	// Children returns a snapshot of the child list in document order.
	Children() []Node

	// InsertBefore inserts child before ref. A nil ref appends. If child is
	// already attached elsewhere it is moved.
	InsertBefore(child, ref Node)

	// RemoveChild detaches child from this node. Removing a node that is not
	// currently a child is a no-op.
	RemoveChild(child Node)

	// SetAttribute sets an attribute value (elements only).
	SetAttribute(name, value string)

	// RemoveAttribute removes an attribute if present.
	RemoveAttribute(name string)

	// Attribute returns an attribute value and whether it is set.
	Attribute(name string) (string, bool)

	// AttributeNames returns the attribute names in the order they were
	// first set. Serialization depends on this order being stable.
	AttributeNames() []string

	// AddListener attaches an event listener and returns its detach
	// function. Detaching twice is a no-op. Listeners for one event fire in
	// attachment order; that order is the documented policy for merged
	// listeners, not an accident of implementation.
	AddListener(event string, fn func(Event)) (remove func())

	// Dispatch delivers an event to this node's listeners.
	Dispatch(ev Event)
}

// Event is a platform event delivered to listeners.
type Event struct {
	// Type is the event name, e.g. "click".
	Type string

	// Target is the node the event was dispatched on.
	Target Node

	// Data carries event payload fields (input value, key, coordinates).
	Data map[string]string
}

// Value returns a payload field, or "" when absent.
func (e Event) Value(key string) string {
	return e.Data[key]
}
