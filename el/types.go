package el

import (
	"github.com/pulse-ui/pulse/pkg/dom"
	"github.com/pulse-ui/pulse/pkg/mount"
)

// Type aliases for the mounting primitives used by the DSL.
type Modifier = mount.Modifier
type Element = mount.ElementMod
type Ctl = mount.Ctl
type Event = dom.Event
type Node = dom.Node
