// Package protocol implements the binary wire format between a Pulse server
// session and the thin browser client.
//
// The format is deliberately dumb: the server streams the exact DOM
// mutations the engine performed (OpsFrame), and the client streams back the
// DOM events the server subscribed to (EventFrame). There is no tree state
// on the wire and nothing to reconcile.
//
// All integers are protobuf-style unsigned varints; strings are
// length-prefixed UTF-8. The first byte of every frame is its FrameType.
package protocol
