package protocol

import (
	pulseerr "github.com/pulse-ui/pulse/internal/errors"
)

// MaxFrameSize is the maximum encoded frame size accepted by DecodeFrame.
// Frames larger than this are rejected before any allocation proportional
// to their claimed contents.
const MaxFrameSize = 1 << 20

// Protocol errors.
var (
	ErrInvalidFrame  = pulseerr.New("E200")
	ErrFrameTooLarge = pulseerr.New("E201")
	ErrUnknownOp     = pulseerr.New("E202")
)

// FrameType identifies the type of frame.
type FrameType uint8

const (
	FrameHello FrameType = 0x00 // Connection setup (server → client)
	FrameEvent FrameType = 0x01 // Client → server DOM events
	FrameOps   FrameType = 0x02 // Server → client DOM operations
	FramePing  FrameType = 0x03 // Keepalive
	FrameError FrameType = 0x04 // Error message
)

// String returns the string representation of the frame type.
func (ft FrameType) String() string {
	switch ft {
	case FrameHello:
		return "Hello"
	case FrameEvent:
		return "Event"
	case FrameOps:
		return "Ops"
	case FramePing:
		return "Ping"
	case FrameError:
		return "Error"
	default:
		return "Unknown"
	}
}

// OpsFrame is a batch of DOM operations with a sequence number.
// The client applies the ops in order; Seq lets it detect gaps.
type OpsFrame struct {
	Seq uint64
	Ops []Op
}

// EventFrame is a DOM event forwarded by the client.
type EventFrame struct {
	Node uint64
	Name string
	Data map[string]string
}

// HelloFrame is the first frame of a session.
type HelloFrame struct {
	SessionID string
	Version   uint64
}

// Version is the current protocol version.
const Version = 1

// EncodeOps encodes an ops frame.
func EncodeOps(f *OpsFrame) []byte {
	e := NewEncoder()
	e.WriteByte(byte(FrameOps))
	e.WriteUvarint(f.Seq)
	e.WriteUvarint(uint64(len(f.Ops)))
	for _, op := range f.Ops {
		op.encodeTo(e)
	}
	return e.Bytes()
}

// EncodeEvent encodes an event frame.
func EncodeEvent(f *EventFrame) []byte {
	e := NewEncoder()
	e.WriteByte(byte(FrameEvent))
	e.WriteUvarint(f.Node)
	e.WriteString(f.Name)
	e.WriteUvarint(uint64(len(f.Data)))
	for k, v := range f.Data {
		e.WriteString(k)
		e.WriteString(v)
	}
	return e.Bytes()
}

// EncodeHello encodes a hello frame.
func EncodeHello(f *HelloFrame) []byte {
	e := NewEncoder()
	e.WriteByte(byte(FrameHello))
	e.WriteUvarint(f.Version)
	e.WriteString(f.SessionID)
	return e.Bytes()
}

// Type peeks at the frame type of an encoded frame.
func Type(buf []byte) (FrameType, error) {
	if len(buf) == 0 {
		return 0, ErrInvalidFrame
	}
	return FrameType(buf[0]), nil
}

// DecodeOps decodes an ops frame.
func DecodeOps(buf []byte) (*OpsFrame, error) {
	if len(buf) > MaxFrameSize {
		return nil, ErrFrameTooLarge
	}
	d := NewDecoder(buf)

	ft, err := d.ReadByte()
	if err != nil {
		return nil, err
	}
	if FrameType(ft) != FrameOps {
		return nil, ErrInvalidFrame
	}

	f := &OpsFrame{}
	if f.Seq, err = d.ReadUvarint(); err != nil {
		return nil, err
	}

	count, err := d.ReadUvarint()
	if err != nil {
		return nil, err
	}
	if count > uint64(d.Remaining()) {
		// Each op takes at least one byte; a bigger count is a lie.
		return nil, ErrInvalidFrame
	}

	f.Ops = make([]Op, 0, count)
	for i := uint64(0); i < count; i++ {
		op, err := decodeOp(d)
		if err != nil {
			return nil, err
		}
		f.Ops = append(f.Ops, op)
	}
	return f, nil
}

// DecodeEvent decodes an event frame.
func DecodeEvent(buf []byte) (*EventFrame, error) {
	if len(buf) > MaxFrameSize {
		return nil, ErrFrameTooLarge
	}
	d := NewDecoder(buf)

	ft, err := d.ReadByte()
	if err != nil {
		return nil, err
	}
	if FrameType(ft) != FrameEvent {
		return nil, ErrInvalidFrame
	}

	f := &EventFrame{}
	if f.Node, err = d.ReadUvarint(); err != nil {
		return nil, err
	}
	if f.Name, err = d.ReadString(); err != nil {
		return nil, err
	}

	count, err := d.ReadUvarint()
	if err != nil {
		return nil, err
	}
	if count > uint64(d.Remaining()) {
		return nil, ErrInvalidFrame
	}
	if count > 0 {
		f.Data = make(map[string]string, count)
		for i := uint64(0); i < count; i++ {
			k, err := d.ReadString()
			if err != nil {
				return nil, err
			}
			v, err := d.ReadString()
			if err != nil {
				return nil, err
			}
			f.Data[k] = v
		}
	}
	return f, nil
}

// DecodeHello decodes a hello frame.
func DecodeHello(buf []byte) (*HelloFrame, error) {
	d := NewDecoder(buf)

	ft, err := d.ReadByte()
	if err != nil {
		return nil, err
	}
	if FrameType(ft) != FrameHello {
		return nil, ErrInvalidFrame
	}

	f := &HelloFrame{}
	if f.Version, err = d.ReadUvarint(); err != nil {
		return nil, err
	}
	if f.SessionID, err = d.ReadString(); err != nil {
		return nil, err
	}
	return f, nil
}
