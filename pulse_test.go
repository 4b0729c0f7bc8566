package pulse

import (
	"testing"

	"github.com/pulse-ui/pulse/pkg/dom"
	"github.com/pulse-ui/pulse/pkg/mount"
	"github.com/pulse-ui/pulse/pkg/scope"
	"github.com/pulse-ui/pulse/pkg/stream"
)

// =============================================================================
// Alias Tests
// =============================================================================

func TestScopeIsScopeScope(t *testing.T) {
	// Verify that pulse.Scope is the same type as scope.Scope
	var ps *Scope
	var ss *scope.Scope

	ps = ss
	_ = ps
}

func TestModifierIsMountModifier(t *testing.T) {
	var pm Modifier
	var mm mount.Modifier

	pm = mm
	_ = pm
}

func TestSourceSatisfiesStream(t *testing.T) {
	// Both the facade interface and the stream package interface must be
	// satisfied by the same concrete types.
	var _ Stream[int] = NewSource(0)
	var _ Stream[int] = NewSubject[int]()
	var _ stream.Stream[int] = NewSource(0)
}

// =============================================================================
// Facade Smoke Tests
// =============================================================================

func TestFacadeMountsTree(t *testing.T) {
	doc := dom.NewDocument()
	body := doc.CreateElement("body")
	sc := NewScope()
	defer sc.Close()

	title := NewSource("inbox")

	err := Run(doc, body, sc,
		El("section",
			El("h1", BindText(title)),
		),
	)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := dom.InnerHTML(body)
	want := "<section><h1>inbox</h1></section>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	title.Set("archive")
	if got := dom.InnerHTML(body); got != "<section><h1>archive</h1></section>" {
		t.Errorf("after update got %q", got)
	}
}

func TestFacadeMountOne(t *testing.T) {
	doc := dom.NewDocument()
	body := doc.CreateElement("body")
	sc := NewScope()
	defer sc.Close()

	tab := NewSource("a")

	err := Run(doc, body, sc,
		MountOne[string](tab, func(name string) Modifier {
			return El("div", Attr("data-tab", name))
		}),
	)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	tab.Set("b")
	if got := dom.InnerHTML(body); got != `<div data-tab="b"></div>` {
		t.Errorf("got %q", got)
	}
}
