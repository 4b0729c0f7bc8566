package dom

import (
	"testing"
)

func TestInsertAndRemove(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("ul")
	a := doc.CreateElement("li")
	b := doc.CreateElement("li")

	parent.InsertBefore(a, nil)
	parent.InsertBefore(b, nil)

	kids := parent.Children()
	if len(kids) != 2 || kids[0] != a || kids[1] != b {
		t.Fatalf("append order wrong: %v", kids)
	}

	// Insert before an existing reference.
	c := doc.CreateElement("li")
	parent.InsertBefore(c, b)
	kids = parent.Children()
	if len(kids) != 3 || kids[1] != c {
		t.Fatalf("insert-before order wrong")
	}

	parent.RemoveChild(c)
	if len(parent.Children()) != 2 {
		t.Error("remove failed")
	}
	if c.Parent() != nil {
		t.Error("removed node should be detached")
	}

	// Removing a non-child is a no-op.
	parent.RemoveChild(c)
	if len(parent.Children()) != 2 {
		t.Error("double remove should be a no-op")
	}
}

func TestInsertMovesAttachedNode(t *testing.T) {
	doc := NewDocument()
	first := doc.CreateElement("div")
	second := doc.CreateElement("div")
	child := doc.CreateElement("span")

	first.InsertBefore(child, nil)
	second.InsertBefore(child, nil)

	if len(first.Children()) != 0 {
		t.Error("moved node should leave its old parent")
	}
	if child.Parent() != second {
		t.Error("moved node should have the new parent")
	}
}

func TestAttributes(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("input")

	el.SetAttribute("type", "text")
	el.SetAttribute("value", "a")
	el.SetAttribute("value", "b") // overwrite keeps position

	if v, ok := el.Attribute("value"); !ok || v != "b" {
		t.Errorf("value = %q, %v", v, ok)
	}

	names := el.AttributeNames()
	if len(names) != 2 || names[0] != "type" || names[1] != "value" {
		t.Errorf("attribute order %v", names)
	}

	el.RemoveAttribute("type")
	if _, ok := el.Attribute("type"); ok {
		t.Error("attribute should be removed")
	}
	el.RemoveAttribute("type") // no-op
}

func TestTextNodes(t *testing.T) {
	doc := NewDocument()
	txt := doc.CreateText("hi")

	if txt.Kind() != KindText || txt.Text() != "hi" {
		t.Errorf("text node wrong: %v %q", txt.Kind(), txt.Text())
	}

	txt.SetText("bye")
	if txt.Text() != "bye" {
		t.Errorf("SetText failed: %q", txt.Text())
	}

	// SetText on an element is a no-op.
	el := doc.CreateElement("div")
	el.SetText("nope")
	if el.Text() != "" {
		t.Error("element should ignore SetText")
	}
}

func TestListenersAttachmentOrder(t *testing.T) {
	doc := NewDocument()
	btn := doc.CreateElement("button")

	var order []int
	btn.AddListener("click", func(Event) { order = append(order, 1) })
	btn.AddListener("click", func(Event) { order = append(order, 2) })
	btn.AddListener("keydown", func(Event) { order = append(order, 99) })

	btn.Dispatch(Event{Type: "click"})

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("listeners fired %v, want [1 2]", order)
	}
}

func TestListenerRemoveIdempotent(t *testing.T) {
	doc := NewDocument()
	btn := doc.CreateElement("button")

	fired := 0
	remove := btn.AddListener("click", func(Event) { fired++ })

	btn.Dispatch(Event{Type: "click"})
	remove()
	remove()
	btn.Dispatch(Event{Type: "click"})

	if fired != 1 {
		t.Errorf("fired %d times, want 1", fired)
	}
}

func TestDispatchSetsTarget(t *testing.T) {
	doc := NewDocument()
	btn := doc.CreateElement("button")

	var target Node
	btn.AddListener("click", func(ev Event) { target = ev.Target })
	btn.Dispatch(Event{Type: "click"})

	if target != btn {
		t.Error("dispatch should default the target to the node")
	}
}
