// Package el provides the UI DSL for Pulse.
//
// It re-exports HTML element constructors, attribute helpers, event helpers,
// and common mounting utilities from github.com/pulse-ui/pulse/pkg/mount.
//
// Typical usage:
//
//	import (
//	    "github.com/pulse-ui/pulse/pkg/mount"
//	    . "github.com/pulse-ui/pulse/el"
//	)
//
// This keeps the DSL in a dedicated package while the lifecycle APIs live in
// mount and the reactive APIs live in stream.
package el
