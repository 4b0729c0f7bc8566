package server

import (
	"log/slog"
	"testing"
	"time"

	"github.com/pulse-ui/pulse/internal/errors"
	"github.com/pulse-ui/pulse/pkg/dom"
	"github.com/pulse-ui/pulse/pkg/protocol"
)

func testManager(t *testing.T, maxSessions int) *SessionManager {
	t.Helper()
	m := newSessionManager(time.Minute, maxSessions, slog.Default(), sharedMetrics())
	t.Cleanup(m.Shutdown)
	return m
}

// buttonID walks the session's tree for the first button and returns its
// recorder ID.
func buttonID(t *testing.T, s *Session) uint64 {
	t.Helper()
	var find func(n dom.Node) dom.Node
	find = func(n dom.Node) dom.Node {
		if n.Kind() == dom.KindElement && n.Tag() == "button" {
			return n
		}
		for _, c := range n.Children() {
			if got := find(c); got != nil {
				return got
			}
		}
		return nil
	}
	button := find(s.Root())
	if button == nil {
		t.Fatal("no button in session tree")
	}
	id, ok := s.rec.ID(button)
	if !ok {
		t.Fatal("button has no recorder ID")
	}
	return id
}

func TestSessionMountsView(t *testing.T) {
	m := testManager(t, 0)
	s, err := m.Create(counterView)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if got := dom.InnerHTML(s.Root()); got != `<div class="counter"><span>count: 0</span><button>+</button></div>` {
		t.Errorf("mounted tree = %s", got)
	}
	if s.ID == "" {
		t.Error("session has no ID")
	}
}

func TestSessionHandleEvent(t *testing.T) {
	m := testManager(t, 0)
	s, err := m.Create(counterView)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	// Drop the initial mount ops so the next flush is event-driven only.
	s.rec.Flush()

	ops, err := s.handleEvent(&protocol.EventFrame{
		Node: buttonID(t, s),
		Name: "click",
	})
	if err != nil {
		t.Fatalf("handleEvent: %v", err)
	}
	if ops == 0 {
		t.Error("click produced no ops")
	}

	want := `<div class="counter"><span>count: 1</span><button>+</button></div>`
	if got := dom.InnerHTML(s.Root()); got != want {
		t.Errorf("after click: %s", got)
	}
}

func TestSessionHandleEventUnknownNode(t *testing.T) {
	m := testManager(t, 0)
	s, err := m.Create(counterView)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err = s.handleEvent(&protocol.EventFrame{Node: 9999, Name: "click"})
	if !errors.HasCode(err, "E004") {
		t.Errorf("error = %v, want E004", err)
	}
}

func TestSessionCloseTearsDownScope(t *testing.T) {
	m := testManager(t, 0)
	s, err := m.Create(counterView)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	m.Remove(s.ID)
	if !s.sc.Closed() {
		t.Error("session scope still open after Remove")
	}
	if _, ok := m.Get(s.ID); ok {
		t.Error("session still tracked after Remove")
	}
	// Idempotent.
	s.Close()
}

func TestSessionLimit(t *testing.T) {
	m := testManager(t, 2)
	for i := 0; i < 2; i++ {
		if _, err := m.Create(counterView); err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
	}
	if _, err := m.Create(counterView); err != ErrTooManySessions {
		t.Errorf("error = %v, want ErrTooManySessions", err)
	}
}

func TestSessionExpiry(t *testing.T) {
	m := testManager(t, 0)
	s, err := m.Create(counterView)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Detached and stale: expired.
	s.mu.Lock()
	s.lastActive = time.Now().Add(-2 * time.Minute)
	s.mu.Unlock()
	m.expire(time.Now())

	if _, ok := m.Get(s.ID); ok {
		t.Error("stale detached session not expired")
	}
	if !s.sc.Closed() {
		t.Error("expired session scope still open")
	}
}

func TestSessionManagerShutdown(t *testing.T) {
	m := newSessionManager(time.Minute, 0, slog.Default(), sharedMetrics())
	s1, _ := m.Create(counterView)
	s2, _ := m.Create(counterView)

	m.Shutdown()
	if m.Len() != 0 {
		t.Errorf("sessions remain after shutdown: %d", m.Len())
	}
	for _, s := range []*Session{s1, s2} {
		if !s.sc.Closed() {
			t.Error("session scope still open after shutdown")
		}
	}
}
