// This file provides mounting helpers for the el package.
package el

import (
	"fmt"

	"github.com/pulse-ui/pulse/pkg/mount"
	"github.com/pulse-ui/pulse/pkg/stream"
)

func Text(content string) Modifier {
	return mount.Text(content)
}
func Textf(format string, args ...any) Modifier {
	return mount.Text(fmt.Sprintf(format, args...))
}
func BindText(s stream.Stream[string]) Modifier {
	return mount.BindText(s)
}
func Group(mods ...Modifier) Modifier {
	return mount.Group(mods...)
}
func Nothing() Modifier {
	return mount.Nop
}
func If(condition bool, mod Modifier) Modifier {
	if !condition {
		return mount.Nop
	}
	return mod
}
func IfElse(condition bool, ifTrue, ifFalse Modifier) Modifier {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When defers construction of the modifier until the condition is known to
// hold, for branches that are expensive or invalid to build eagerly.
func When(condition bool, fn func() Modifier) Modifier {
	if !condition {
		return mount.Nop
	}
	return fn()
}

// Range mounts one modifier per item, in slice order.
func Range[T any](items []T, fn func(item T, index int) Modifier) Modifier {
	mods := make([]Modifier, len(items))
	for i, item := range items {
		mods[i] = fn(item, i)
	}
	return mount.Group(mods...)
}

// Repeat mounts fn(0) through fn(n-1) in order.
func Repeat(n int, fn func(i int) Modifier) Modifier {
	mods := make([]Modifier, n)
	for i := range mods {
		mods[i] = fn(i)
	}
	return mount.Group(mods...)
}

// Component re-exports mount.Component for DSL-only imports.
func Component(build func(ctl *Ctl) Modifier) Modifier {
	return mount.Component(build)
}
