package server

import (
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/pulse-ui/pulse/pkg/protocol"
)

func dialSession(t *testing.T, srv *Server) (*websocket.Conn, *protocol.HelloFrame) {
	t.Helper()
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/_pulse/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read hello: %v", err)
	}
	hello, err := protocol.DecodeHello(msg)
	if err != nil {
		t.Fatalf("decode hello: %v", err)
	}
	return conn, hello
}

func readOps(t *testing.T, conn *websocket.Conn) *protocol.OpsFrame {
	t.Helper()
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read ops: %v", err)
	}
	frame, err := protocol.DecodeOps(msg)
	if err != nil {
		t.Fatalf("decode ops: %v", err)
	}
	return frame
}

func TestWebSocketHandshake(t *testing.T) {
	srv := New(testConfig(), counterView)
	defer srv.Shutdown()

	conn, hello := dialSession(t, srv)

	if hello.SessionID == "" {
		t.Error("hello carries no session ID")
	}
	if hello.Version != protocol.Version {
		t.Errorf("version = %d, want %d", hello.Version, protocol.Version)
	}

	// The initial ops frame rebuilds the whole mounted tree.
	initial := readOps(t, conn)
	if initial.Seq != 1 {
		t.Errorf("initial seq = %d, want 1", initial.Seq)
	}
	var sawCreate, sawListen bool
	for _, op := range initial.Ops {
		switch op.Code {
		case protocol.OpCreateElement:
			sawCreate = true
		case protocol.OpListen:
			sawListen = true
		}
	}
	if !sawCreate || !sawListen {
		t.Errorf("initial ops incomplete: create=%v listen=%v", sawCreate, sawListen)
	}
}

func TestWebSocketEventRoundTrip(t *testing.T) {
	srv := New(testConfig(), counterView)
	defer srv.Shutdown()

	conn, hello := dialSession(t, srv)
	readOps(t, conn) // initial tree

	session, ok := srv.Sessions().Get(hello.SessionID)
	if !ok {
		t.Fatal("session not tracked")
	}

	click := protocol.EncodeEvent(&protocol.EventFrame{
		Node: buttonID(t, session),
		Name: "click",
	})
	if err := conn.WriteMessage(websocket.BinaryMessage, click); err != nil {
		t.Fatalf("write event: %v", err)
	}

	// The text update may share a frame with other recorded ops; scan
	// frames until it shows up.
	var sawSetText bool
	lastSeq := uint64(1)
	for i := 0; i < 5 && !sawSetText; i++ {
		update := readOps(t, conn)
		if update.Seq != lastSeq+1 {
			t.Errorf("seq = %d, want %d", update.Seq, lastSeq+1)
		}
		lastSeq = update.Seq
		for _, op := range update.Ops {
			if op.Code == protocol.OpSetText && op.Value == "count: 1" {
				sawSetText = true
			}
		}
	}
	if !sawSetText {
		t.Error("click never produced the text update")
	}
}

func TestWebSocketConcurrentFlushOrdering(t *testing.T) {
	srv := New(testConfig(), counterView)
	defer srv.Shutdown()

	conn, hello := dialSession(t, srv)
	readOps(t, conn) // initial tree

	session, ok := srv.Sessions().Get(hello.SessionID)
	if !ok {
		t.Fatal("session not tracked")
	}

	// One goroutine mutates the document while another flushes in a tight
	// loop, racing the session's background flusher. Each mutation may be
	// drained by either flusher, but frames must still hit the wire in seq
	// order or the client applies ops against nodes it has not created yet.
	const writes = 50
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < writes; i++ {
			session.Root().SetAttribute("data-tick", strconv.Itoa(i))
			time.Sleep(time.Millisecond)
		}
	}()
	go func() {
		for {
			select {
			case <-done:
				return
			default:
				session.Flush()
			}
		}
	}()

	<-done
	if err := session.Flush(); err != nil {
		t.Fatalf("final flush: %v", err)
	}

	var lastSeq uint64 = 1
	final := strconv.Itoa(writes - 1)
	for i := 0; i < writes+5; i++ {
		frame := readOps(t, conn)
		if frame.Seq <= lastSeq {
			t.Fatalf("frame seq %d arrived after seq %d", frame.Seq, lastSeq)
		}
		lastSeq = frame.Seq
		for _, op := range frame.Ops {
			if op.Code == protocol.OpSetAttr && op.Name == "data-tick" && op.Value == final {
				return
			}
		}
	}
	t.Fatalf("never saw data-tick=%s within the frame budget", final)
}

func TestWebSocketPingEcho(t *testing.T) {
	srv := New(testConfig(), counterView)
	defer srv.Shutdown()

	conn, _ := dialSession(t, srv)
	readOps(t, conn)

	ping := []byte{byte(protocol.FramePing), 0x07}
	if err := conn.WriteMessage(websocket.BinaryMessage, ping); err != nil {
		t.Fatalf("write ping: %v", err)
	}
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read pong: %v", err)
	}
	if len(msg) != 2 || msg[0] != byte(protocol.FramePing) || msg[1] != 0x07 {
		t.Errorf("pong = %v, want echo of ping", msg)
	}
}

func TestWebSocketCleanCloseRemovesSession(t *testing.T) {
	srv := New(testConfig(), counterView)
	defer srv.Shutdown()

	conn, hello := dialSession(t, srv)
	readOps(t, conn)

	deadline := time.Now().Add(time.Second)
	conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
	conn.Close()

	waitFor(t, "session removal", func() bool {
		_, ok := srv.Sessions().Get(hello.SessionID)
		return !ok
	})
}

func TestWebSocketDropKeepsSessionResumable(t *testing.T) {
	srv := New(testConfig(), counterView)
	defer srv.Shutdown()

	conn, hello := dialSession(t, srv)
	readOps(t, conn)

	// Abrupt close, no close frame.
	conn.Close()

	waitFor(t, "session detach", func() bool {
		s, ok := srv.Sessions().Get(hello.SessionID)
		return ok && !s.Attached()
	})
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}
