// Package mount is the core of the Pulse engine: it turns modifier trees
// into incremental, scope-bounded DOM mutations. There is no virtual tree
// and no diffing: a modifier performs exactly the mutations it describes,
// and the scope it ran under undoes them, in reverse, when it closes.
//
// A minimal mount:
//
//	sc := scope.New()
//	doc := dom.NewDocument()
//	body := doc.CreateElement("body")
//
//	count := stream.NewSource(0)
//	err := mount.Run(doc, body, sc,
//	    mount.El("button",
//	        mount.BindText(stream.Map[int, string](count, strconv.Itoa)),
//	        mount.On("click", func(dom.Event) { count.Update(func(n int) int { return n + 1 }) }),
//	    ),
//	)
//
//	sc.Close() // body's child list is back to its pre-mount state
//
// Dynamic structure comes from two primitives. Children is an ordered
// collection of independently removable child mounts. MountOne and
// MountOneForked bind a single slot to a stream, replacing its content
// whenever the value changes, synchronously or on a cancellable unit of
// concurrent work.
//
// Modifiers are typed as non-failing: expected-failure channels are unused
// at this layer. Cancellation is a distinct outcome (ErrCancelled) that
// still runs finalizers; anything else is a defect and escalates to the
// mount caller or, when no caller remains, to DefectHandler.
package mount
