// Package pulse provides the public API for the Pulse UI engine.
//
// This is the recommended import for most applications:
//
//	import "github.com/pulse-ui/pulse"
//
// Usage:
//
//	func TaskList(ctl *pulse.Ctl) pulse.Modifier {
//	    title := pulse.NewSource("inbox")
//	    return pulse.El("section",
//	        pulse.El("h1", pulse.BindText(title)),
//	    )
//	}
//
//	srv := server.New(cfg, TaskList)
package pulse

import (
	"github.com/pulse-ui/pulse/pkg/dom"
	"github.com/pulse-ui/pulse/pkg/mount"
	"github.com/pulse-ui/pulse/pkg/scope"
	"github.com/pulse-ui/pulse/pkg/stream"
)

// Lifecycle primitives (re-export from pkg/scope).

// Scope owns resources with a strict teardown order. See pkg/scope.
type Scope = scope.Scope

// NewScope creates a root scope.
func NewScope() *Scope {
	return scope.New()
}

// ErrClosed is returned when registering against a closed scope.
var ErrClosed = scope.ErrClosed

// Reactive primitives (re-export from pkg/stream).

// Stream is a push-based value stream. See pkg/stream.
type Stream[T any] interface {
	Subscribe(sc *scope.Scope, fn func(T)) error
}

// Source holds a current value and streams updates.
type Source[T any] = stream.Source[T]

// Subject is a hot stream without a current value.
type Subject[T any] = stream.Subject[T]

// NewSource creates a source with an initial value.
func NewSource[T any](initial T) *Source[T] {
	return stream.NewSource(initial)
}

// NewSubject creates a subject.
func NewSubject[T any]() *Subject[T] {
	return stream.NewSubject[T]()
}

// Mounting primitives (re-export from pkg/mount and pkg/dom).

// Modifier mutates a mount target. See pkg/mount.
type Modifier = mount.Modifier

// Ctl is the control surface handed to components.
type Ctl = mount.Ctl

// Children is an ordered collection of independently removable mounts.
type Children = mount.Children

// Event is a DOM event.
type Event = dom.Event

// Node is a DOM node.
type Node = dom.Node

var (
	El        = mount.El
	Text      = mount.Text
	BindText  = mount.BindText
	Attr      = mount.Attr
	BindAttr  = mount.BindAttr
	On        = mount.On
	Group     = mount.Group
	Run       = mount.Run
	Component = mount.Component

	NewChildren = mount.NewChildren
)

// MountOne binds a rendering slot to a stream with blocking replacement.
func MountOne[T any](src stream.Stream[T], render func(T) Modifier) Modifier {
	return mount.MountOne(src, render)
}

// MountOneForked is MountOne with forked, cancellable replacement.
func MountOneForked[T any](src stream.Stream[T], render func(T) Modifier) Modifier {
	return mount.MountOneForked(src, render)
}
