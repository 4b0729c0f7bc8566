package mount

import (
	"testing"
	"time"

	"github.com/pulse-ui/pulse/pkg/dom"
	"github.com/pulse-ui/pulse/pkg/protocol"
	"github.com/pulse-ui/pulse/pkg/scope"
	"github.com/pulse-ui/pulse/pkg/stream"
)

// waitUntil polls cond until it is true or the deadline passes.
func waitUntil(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestMountOneRendersLastValue(t *testing.T) {
	doc := dom.NewDocument()
	body := doc.CreateElement("body")
	sc := scope.New()
	defer sc.Close()

	values := stream.NewSubject[string]()
	err := Run(doc, body, sc, MountOne[string](values, func(v string) Modifier {
		return El("div", Text(v))
	}))
	if err != nil {
		t.Fatalf("mount failed: %v", err)
	}

	if got := dom.InnerHTML(body); got != "" {
		t.Fatalf("slot should start empty, got %s", got)
	}

	for _, v := range []string{"a", "b", "c"} {
		values.Emit(v)
		// Exactly one subtree after each completed transition.
		if got := len(body.Children()); got != 1 {
			t.Fatalf("after %q: %d subtrees attached", v, got)
		}
	}
	if got := dom.InnerHTML(body); got != "<div>c</div>" {
		t.Errorf("final content = %s, want the last pushed value", got)
	}
}

func TestMountOneSameValueNoRerender(t *testing.T) {
	rec := dom.NewRecorder(dom.NewDocument())
	body := rec.CreateElement("body")
	sc := scope.New()
	defer sc.Close()

	values := stream.NewSubject[string]()
	err := Run(rec, body, sc, MountOne[string](values, func(v string) Modifier {
		return El("div", Text(v))
	}))
	if err != nil {
		t.Fatalf("mount failed: %v", err)
	}

	values.Emit("same")
	rec.Flush()

	values.Emit("same")
	if ops := rec.Flush(); len(ops) != 0 {
		t.Errorf("unchanged value caused %d DOM ops: %+v", len(ops), ops)
	}
}

func TestMountOneSlotTeardown(t *testing.T) {
	doc := dom.NewDocument()
	body := doc.CreateElement("body")
	sc := scope.New()

	values := stream.NewSubject[int]()
	err := Run(doc, body, sc, MountOne[int](values, func(int) Modifier {
		return El("div")
	}))
	if err != nil {
		t.Fatalf("mount failed: %v", err)
	}
	values.Emit(1)

	sc.Close()
	if got := dom.InnerHTML(body); got != "" {
		t.Errorf("slot teardown left %s attached", got)
	}
}

func TestMountOneWithSource(t *testing.T) {
	doc := dom.NewDocument()
	body := doc.CreateElement("body")
	sc := scope.New()
	defer sc.Close()

	mode := stream.NewSource("read")
	err := Run(doc, body, sc, El("section", MountOne[string](mode, func(v string) Modifier {
		return El("span", Attr("mode", v))
	})))
	if err != nil {
		t.Fatalf("mount failed: %v", err)
	}

	// The source's current value renders at subscribe time.
	if got := dom.InnerHTML(body); got != `<section><span mode="read"></span></section>` {
		t.Fatalf("initial render: %s", got)
	}

	mode.Set("edit")
	if got := dom.InnerHTML(body); got != `<section><span mode="edit"></span></section>` {
		t.Errorf("after update: %s", got)
	}
}

// gate is a modifier that parks the render until released, observing
// cancellation. It stands in for any slow effect inside a forked render.
type gate struct {
	reached chan struct{}
	release chan struct{}
}

func newGate() *gate {
	return &gate{reached: make(chan struct{}, 8), release: make(chan struct{})}
}

func (g *gate) Apply(m *Mount) error {
	g.reached <- struct{}{}
	select {
	case <-g.release:
		return nil
	case <-m.Scope.Done():
		return ErrCancelled
	}
}

func TestMountOneForkedSupersededRenderRollsBack(t *testing.T) {
	doc := dom.NewDocument()
	body := doc.CreateElement("body")
	sc := scope.New()
	defer sc.Close()

	g := newGate()
	values := stream.NewSubject[string]()
	err := Run(doc, body, sc, MountOneForked[string](values, func(v string) Modifier {
		return Group(
			El("div", Attr("v", v)), // partial mutation before the gate
			g,
			El("span", Attr("v", v)),
		)
	}))
	if err != nil {
		t.Fatalf("mount failed: %v", err)
	}

	values.Emit("t1")
	<-g.reached // t1 applied its div and parked

	// Superseding t1 cancels it; Emit returns only after t1's partial
	// mutations are rolled back and t2's render is scheduled.
	values.Emit("t2")
	<-g.reached // t2 parked in turn

	close(g.release)
	waitUntil(t, "t2 to finish rendering", func() bool {
		return dom.InnerHTML(body) == `<div v="t2"></div><span v="t2"></span>`
	})

	// Nothing of t1 may survive.
	if got := dom.InnerHTML(body); got != `<div v="t2"></div><span v="t2"></span>` {
		t.Errorf("final content = %s", got)
	}
}

func TestMountOneForkedDoesNotBlockEmitter(t *testing.T) {
	doc := dom.NewDocument()
	body := doc.CreateElement("body")
	sc := scope.New()
	defer sc.Close()

	g := newGate()
	values := stream.NewSubject[int]()
	err := Run(doc, body, sc, MountOneForked[int](values, func(int) Modifier {
		return Group(El("div"), g)
	}))
	if err != nil {
		t.Fatalf("mount failed: %v", err)
	}

	done := make(chan struct{})
	go func() {
		values.Emit(1)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Emit blocked on a forked render")
	}

	<-g.reached
	close(g.release)
}

func TestMountOneForkedCancelledOnSlotTeardown(t *testing.T) {
	rec := dom.NewRecorder(dom.NewDocument())
	body := rec.CreateElement("body")
	sc := scope.New()

	g := newGate()
	values := stream.NewSubject[int]()
	err := Run(rec, body, sc, MountOneForked[int](values, func(int) Modifier {
		return Group(El("div"), g)
	}))
	if err != nil {
		t.Fatalf("mount failed: %v", err)
	}

	values.Emit(1)
	<-g.reached

	// Closing the enclosing scope must cancel the parked render, wait for
	// it to stop, and undo its partial mutations.
	if err := sc.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if got := dom.InnerHTML(body); got != "" {
		t.Errorf("cancelled render left %s attached", got)
	}

	last := rec.Flush()
	if len(last) == 0 || last[len(last)-1].Code != protocol.OpRemove {
		t.Errorf("rollback should end with a remove op, got %+v", last)
	}
}
