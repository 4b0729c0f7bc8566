package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/pulse-ui/pulse/pkg/protocol"
)

// handleWebSocket upgrades the connection, attaches it to a session (new
// or resumed), and runs the read loop until the client goes away.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		s.metrics.wsErrors.WithLabelValues("upgrade").Inc()
		return
	}
	conn.SetReadLimit(protocol.MaxFrameSize)

	session, resumed, err := s.sessionFor(r)
	if err != nil {
		s.logger.Error("session create failed", "error", err)
		s.metrics.wsErrors.WithLabelValues("session").Inc()
		conn.Close()
		return
	}

	if err := session.attach(conn); err != nil {
		s.logger.Error("session attach failed", "error", err)
		s.metrics.wsErrors.WithLabelValues("attach").Inc()
		conn.Close()
		return
	}

	s.logger.Info("session connected",
		"session_id", session.ID,
		"resumed", resumed,
		"remote", r.RemoteAddr)

	s.readLoop(r, conn, session)
}

// sessionFor resumes the session named by the client, or creates one.
func (s *Server) sessionFor(r *http.Request) (*Session, bool, error) {
	if id := r.URL.Query().Get("session"); id != "" {
		if session, ok := s.sessions.Get(id); ok {
			return session, true, nil
		}
	}
	session, err := s.sessions.Create(s.view)
	return session, false, err
}

// readLoop processes frames until the connection drops. On a clean close
// the session is removed; on a drop it stays resumable for the configured
// window.
func (s *Server) readLoop(r *http.Request, conn *websocket.Conn, session *Session) {
	clean := false
	defer func() {
		if clean {
			s.sessions.Remove(session.ID)
		} else {
			session.detach()
		}
	}()

	for {
		conn.SetReadDeadline(time.Now().Add(s.readTimeout))

		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err,
				websocket.CloseNormalClosure,
				websocket.CloseGoingAway) {
				clean = true
			} else if websocket.IsUnexpectedCloseError(err,
				websocket.CloseAbnormalClosure) {
				s.logger.Error("read error", "session_id", session.ID, "error", err)
				s.metrics.wsErrors.WithLabelValues("read").Inc()
			}
			return
		}

		ft, err := protocol.Type(msg)
		if err != nil {
			s.metrics.wsErrors.WithLabelValues("frame").Inc()
			continue
		}

		switch ft {
		case protocol.FramePing:
			if err := session.write(msg); err != nil {
				return
			}

		case protocol.FrameEvent:
			s.processEvent(r, session, msg)

		default:
			s.logger.Warn("unexpected frame type", "type", ft.String())
			s.metrics.wsErrors.WithLabelValues("frame").Inc()
		}
	}
}

func (s *Server) processEvent(r *http.Request, session *Session, msg []byte) {
	frame, err := protocol.DecodeEvent(msg)
	if err != nil {
		s.logger.Error("event decode error", "session_id", session.ID, "error", err)
		s.metrics.wsErrors.WithLabelValues("decode").Inc()
		return
	}

	_, finish := s.tracer.eventSpan(r.Context(), session.ID, frame)
	start := time.Now()

	ops, err := session.handleEvent(frame)
	elapsed := time.Since(start)

	status := "ok"
	if err != nil {
		status = "error"
		s.logger.Warn("event dispatch failed",
			"session_id", session.ID,
			"event", frame.Name,
			"error", err)
	}
	s.metrics.eventsTotal.WithLabelValues(frame.Name, status).Inc()
	s.metrics.eventDuration.WithLabelValues(frame.Name).Observe(elapsed.Seconds())
	finish(ops, err)
}
