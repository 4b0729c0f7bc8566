package protocol

// OpCode is the type of DOM operation.
type OpCode uint8

// DOM operation constants. These are the complete mutation vocabulary the
// thin client understands; there is no tree diffing on the wire, only the
// mutations the engine actually performed.
const (
	OpCreateElement OpCode = 0x01 // Create element node
	OpCreateText    OpCode = 0x02 // Create text node
	OpSetText       OpCode = 0x03 // Update text content
	OpSetAttr       OpCode = 0x04 // Set attribute
	OpRemoveAttr    OpCode = 0x05 // Remove attribute
	OpInsert        OpCode = 0x06 // Insert node under parent (before ref)
	OpRemove        OpCode = 0x07 // Remove node from its parent
	OpListen        OpCode = 0x08 // Start forwarding an event type
	OpUnlisten      OpCode = 0x09 // Stop forwarding an event type
)

// String returns the string representation of the op code.
func (op OpCode) String() string {
	switch op {
	case OpCreateElement:
		return "CreateElement"
	case OpCreateText:
		return "CreateText"
	case OpSetText:
		return "SetText"
	case OpSetAttr:
		return "SetAttr"
	case OpRemoveAttr:
		return "RemoveAttr"
	case OpInsert:
		return "Insert"
	case OpRemove:
		return "Remove"
	case OpListen:
		return "Listen"
	case OpUnlisten:
		return "Unlisten"
	default:
		return "Unknown"
	}
}

// Op represents a single DOM operation.
//
// Field usage by op code:
//   - CreateElement: Node, Name (tag)
//   - CreateText:    Node, Value (text)
//   - SetText:       Node, Value
//   - SetAttr:       Node, Name, Value
//   - RemoveAttr:    Node, Name
//   - Insert:        Node, Parent, Ref (0 means append)
//   - Remove:        Node
//   - Listen:        Node, Name (event type)
//   - Unlisten:      Node, Name
type Op struct {
	Code   OpCode
	Node   uint64
	Parent uint64
	Ref    uint64
	Name   string
	Value  string
}

// encodeTo appends the op to the encoder.
func (op Op) encodeTo(e *Encoder) {
	e.WriteByte(byte(op.Code))
	e.WriteUvarint(op.Node)

	switch op.Code {
	case OpCreateElement, OpRemoveAttr, OpListen, OpUnlisten:
		e.WriteString(op.Name)
	case OpCreateText, OpSetText:
		e.WriteString(op.Value)
	case OpSetAttr:
		e.WriteString(op.Name)
		e.WriteString(op.Value)
	case OpInsert:
		e.WriteUvarint(op.Parent)
		e.WriteUvarint(op.Ref)
	case OpRemove:
		// Node only.
	}
}

// decodeOp reads one op from the decoder.
func decodeOp(d *Decoder) (Op, error) {
	var op Op

	code, err := d.ReadByte()
	if err != nil {
		return op, err
	}
	op.Code = OpCode(code)

	op.Node, err = d.ReadUvarint()
	if err != nil {
		return op, err
	}

	switch op.Code {
	case OpCreateElement, OpRemoveAttr, OpListen, OpUnlisten:
		op.Name, err = d.ReadString()
	case OpCreateText, OpSetText:
		op.Value, err = d.ReadString()
	case OpSetAttr:
		if op.Name, err = d.ReadString(); err != nil {
			return op, err
		}
		op.Value, err = d.ReadString()
	case OpInsert:
		if op.Parent, err = d.ReadUvarint(); err != nil {
			return op, err
		}
		op.Ref, err = d.ReadUvarint()
	case OpRemove:
		// Node only.
	default:
		return op, ErrUnknownOp
	}

	return op, err
}
