// Package dom is the platform boundary of the mounting engine.
//
// Every native call the engine can make (create a node, set an attribute,
// attach a listener, insert or remove a subtree) goes through the Document
// and Node interfaces defined here. Nothing above this package knows what a
// real DOM looks like.
//
// Two implementations ship with the engine: NewDocument builds the
// in-memory tree used by tests and server-side rendering, and NewRecorder
// wraps any Document to mirror its mutations into wire ops for a thin
// browser client.
package dom
