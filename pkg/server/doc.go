// Package server hosts Pulse applications over HTTP and WebSocket.
//
// Each connected client gets a Session: a server-side document the view is
// mounted into, a scope owning everything the view created, and a
// connection over which recorded DOM operations stream to the thin browser
// client. Client events flow the other way and are dispatched into the
// document, where the bindings set up by the view react to them.
//
// Pages are served as plain HTML renders of the same view; the live
// session replaces the static render once the WebSocket connects.
package server
