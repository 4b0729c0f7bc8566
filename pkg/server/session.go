package server

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	pulseerr "github.com/pulse-ui/pulse/internal/errors"
	"github.com/pulse-ui/pulse/pkg/dom"
	"github.com/pulse-ui/pulse/pkg/mount"
	"github.com/pulse-ui/pulse/pkg/protocol"
	"github.com/pulse-ui/pulse/pkg/scope"
)

// View builds the root modifier tree for a session. It runs once per
// session with the session's control surface.
type View func(ctl *mount.Ctl) mount.Modifier

// Session is one live client: a server-side document, the scope that owns
// everything mounted into it, and the WebSocket connection mirroring DOM
// operations to the browser.
type Session struct {
	ID string

	sc   *scope.Scope
	rec  *dom.Recorder
	root dom.Node

	logger  *slog.Logger
	metrics *metrics

	mu         sync.Mutex
	flushMu    sync.Mutex
	writeMu    sync.Mutex
	conn       *websocket.Conn
	seq        uint64
	lastActive time.Time
	closed     bool
}

func newSession(view View, logger *slog.Logger, m *metrics) (*Session, error) {
	rec := dom.NewRecorder(dom.NewDocument())
	root := rec.CreateElement("div")
	root.SetAttribute("id", "app")

	s := &Session{
		ID:         uuid.NewString(),
		sc:         scope.New(),
		rec:        rec,
		root:       root,
		metrics:    m,
		lastActive: time.Now(),
	}
	s.logger = logger.With("session_id", s.ID)

	if err := mount.Run(rec, root, s.sc, mount.Component(view)); err != nil {
		s.sc.Close()
		return nil, err
	}

	// Background work (timers, stream subscriptions) mutates the document
	// outside any client event; sweep those ops out on a short interval.
	s.sc.Go(func(ctx context.Context) {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !s.Attached() {
					continue
				}
				if _, err := s.flush(); err != nil {
					s.logger.Debug("background flush", "error", err)
				}
			}
		}
	})
	return s, nil
}

// Scope returns the session's root scope. Application code can fork it for
// work tied to the session's lifetime.
func (s *Session) Scope() *scope.Scope {
	return s.sc
}

// Root returns the session's root element.
func (s *Session) Root() dom.Node {
	return s.root
}

// LastActive returns the time of the last client interaction.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// Attached reports whether a connection is currently bound.
func (s *Session) Attached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn != nil
}

// attach binds a connection and sends the hello frame followed by every
// operation recorded since the last flush (the full document on first
// attach).
func (s *Session) attach(conn *websocket.Conn) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return pulseerr.New("E005")
	}
	if s.conn != nil {
		// A second connection replaces the first.
		s.conn.Close()
	}
	s.conn = conn
	s.lastActive = time.Now()
	s.mu.Unlock()

	hello := protocol.EncodeHello(&protocol.HelloFrame{
		SessionID: s.ID,
		Version:   protocol.Version,
	})
	// Hold flushMu across the hello and the catch-up frame so a background
	// flush cannot slip an ops frame onto the fresh connection first.
	s.flushMu.Lock()
	defer s.flushMu.Unlock()
	if err := s.write(hello); err != nil {
		return err
	}
	_, err := s.flushLocked()
	return err
}

// detach drops the connection but keeps the session alive for resumption.
func (s *Session) detach() {
	s.mu.Lock()
	if s.conn != nil {
		s.conn.Close()
		s.conn = nil
	}
	s.lastActive = time.Now()
	s.mu.Unlock()
}

// handleEvent dispatches one client event into the document and flushes
// the resulting operations back out. It returns the number of ops sent.
func (s *Session) handleEvent(f *protocol.EventFrame) (int, error) {
	s.mu.Lock()
	s.lastActive = time.Now()
	s.mu.Unlock()

	target, ok := s.rec.NodeByID(f.Node)
	if !ok {
		// The client raced an event against a removal. Flush anyway so the
		// client catches up with the removal it missed.
		s.logger.Debug("event for detached node", "node", f.Node, "event", f.Name)
		if n, err := s.flush(); err != nil {
			return n, err
		}
		return 0, pulseerr.New("E004")
	}

	target.Dispatch(dom.Event{Type: f.Name, Target: target, Data: f.Data})
	return s.flush()
}

// flush sends all recorded operations as one ops frame. No frame is sent
// when nothing changed. flushMu is held across drain, seq assignment, and
// send so frames reach the wire in seq order: the client applies ops as
// they arrive and an earlier frame overtaken by a later one would leave it
// referencing nodes it has not created yet.
func (s *Session) flush() (int, error) {
	s.flushMu.Lock()
	defer s.flushMu.Unlock()
	return s.flushLocked()
}

func (s *Session) flushLocked() (int, error) {
	s.mu.Lock()
	ops := s.rec.Flush()
	if len(ops) == 0 {
		s.mu.Unlock()
		return 0, nil
	}
	s.seq++
	frame := protocol.EncodeOps(&protocol.OpsFrame{Seq: s.seq, Ops: ops})
	s.mu.Unlock()

	s.metrics.opsSent.Add(float64(len(ops)))
	return len(ops), s.write(frame)
}

func (s *Session) write(frame []byte) error {
	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()
	if conn == nil {
		return nil
	}
	// gorilla connections support one concurrent writer.
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return conn.WriteMessage(websocket.BinaryMessage, frame)
}

// Flush sends any operations recorded by background work (timers, stream
// subscriptions) since the last event.
func (s *Session) Flush() error {
	_, err := s.flush()
	return err
}

// Close tears down the session: connection, mounted tree, and scope.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	if s.conn != nil {
		s.conn.Close()
		s.conn = nil
	}
	s.mu.Unlock()

	if err := s.sc.Close(); err != nil {
		s.logger.Error("session scope close", "error", err)
	}
	s.metrics.scopeCloses.Inc()
}

// SessionManager tracks live sessions and expires detached ones.
type SessionManager struct {
	logger       *slog.Logger
	metrics      *metrics
	resumeWindow time.Duration
	maxSessions  int

	mu       sync.Mutex
	sessions map[string]*Session
	stop     chan struct{}
	stopOnce sync.Once
}

// ErrTooManySessions is returned when the session limit is reached.
var ErrTooManySessions = pulseerr.Newf(pulseerr.CategoryRuntime, "session limit reached")

func newSessionManager(resumeWindow time.Duration, maxSessions int, logger *slog.Logger, m *metrics) *SessionManager {
	mgr := &SessionManager{
		logger:       logger,
		metrics:      m,
		resumeWindow: resumeWindow,
		maxSessions:  maxSessions,
		sessions:     make(map[string]*Session),
		stop:         make(chan struct{}),
	}
	go mgr.expireLoop()
	return mgr
}

// Create mounts a new session from the view.
func (m *SessionManager) Create(view View) (*Session, error) {
	m.mu.Lock()
	if m.maxSessions > 0 && len(m.sessions) >= m.maxSessions {
		m.mu.Unlock()
		return nil, ErrTooManySessions
	}
	m.mu.Unlock()

	s, err := newSession(view, m.logger, m.metrics)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	m.metrics.sessionsTotal.Inc()
	m.metrics.activeSessions.Inc()
	return s, nil
}

// Get returns a session by ID.
func (m *SessionManager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Len returns the number of tracked sessions.
func (m *SessionManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Remove closes a session and stops tracking it.
func (m *SessionManager) Remove(id string) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	if ok {
		s.Close()
		m.metrics.activeSessions.Dec()
	}
}

// Shutdown closes every session and stops the expiry loop.
func (m *SessionManager) Shutdown() {
	m.stopOnce.Do(func() { close(m.stop) })

	m.mu.Lock()
	all := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		all = append(all, s)
	}
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range all {
		s.Close()
		m.metrics.activeSessions.Dec()
	}
}

// expireLoop closes detached sessions whose resume window has passed.
func (m *SessionManager) expireLoop() {
	interval := m.resumeWindow / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.expire(time.Now())
		}
	}
}

func (m *SessionManager) expire(now time.Time) {
	m.mu.Lock()
	var expired []*Session
	for id, s := range m.sessions {
		if !s.Attached() && now.Sub(s.LastActive()) > m.resumeWindow {
			delete(m.sessions, id)
			expired = append(expired, s)
		}
	}
	m.mu.Unlock()

	for _, s := range expired {
		s.logger.Info("session expired")
		s.Close()
		m.metrics.activeSessions.Dec()
	}
}
