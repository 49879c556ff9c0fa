// ABOUTME: Tests for the WebSocket scene server
// ABOUTME: Exercises the hello handshake, client commands, and scene broadcast
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/engine"
	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/protocol"
)

type flatSource struct{ bins int }

func (s *flatSource) NextFrame(dst []float64) error {
	for i := range dst {
		dst[i] = 0.5
	}
	return nil
}

func (s *flatSource) Bins() int    { return s.bins }
func (s *flatSource) Close() error { return nil }

func newTestServer(t *testing.T) (*Server, *engine.Engine) {
	t.Helper()
	eng, err := engine.New(engine.Config{Source: &flatSource{bins: 32}})
	if err != nil {
		t.Fatalf("engine.New failed: %v", err)
	}
	srv := New(Config{Name: "test", Bins: 32}, eng)
	return srv, eng
}

func dial(t *testing.T, srv *Server) (*websocket.Conn, func()) {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(srv.handleWebSocket))
	url := "ws" + strings.TrimPrefix(ts.URL, "http")

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		ts.Close()
		t.Fatalf("dial failed: %v", err)
	}
	return conn, func() {
		conn.Close()
		ts.Close()
	}
}

type rawMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func readMessage(t *testing.T, conn *websocket.Conn) rawMessage {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var raw rawMessage
	if err := conn.ReadJSON(&raw); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	return raw
}

func TestServerHello(t *testing.T) {
	srv, _ := newTestServer(t)
	conn, cleanup := dial(t, srv)
	defer cleanup()

	raw := readMessage(t, conn)
	if raw.Type != protocol.TypeServerHello {
		t.Fatalf("expected %s, got %s", protocol.TypeServerHello, raw.Type)
	}

	var hello protocol.ServerHello
	if err := json.Unmarshal(raw.Payload, &hello); err != nil {
		t.Fatalf("bad hello payload: %v", err)
	}
	if hello.Version != protocol.ProtocolVersion {
		t.Errorf("expected version %d, got %d", protocol.ProtocolVersion, hello.Version)
	}
	if len(hello.Modes) != 8 {
		t.Errorf("expected 8 modes in hello, got %d", len(hello.Modes))
	}
	if hello.Mode != "sacred" {
		t.Errorf("expected initial mode sacred, got %q", hello.Mode)
	}
	if hello.ServerID == "" {
		t.Error("expected a server ID")
	}
}

func TestClientCount(t *testing.T) {
	srv, _ := newTestServer(t)

	if srv.ClientCount() != 0 {
		t.Fatalf("expected 0 clients, got %d", srv.ClientCount())
	}

	conn, cleanup := dial(t, srv)
	defer cleanup()
	readMessage(t, conn)

	if srv.ClientCount() != 1 {
		t.Errorf("expected 1 client, got %d", srv.ClientCount())
	}
}

func TestSetModeCommand(t *testing.T) {
	srv, eng := newTestServer(t)
	conn, cleanup := dial(t, srv)
	defer cleanup()
	readMessage(t, conn)

	msg := protocol.Message{
		Type:    protocol.TypeSetMode,
		Payload: protocol.SetMode{Mode: "galaxy"},
	}
	if err := conn.WriteJSON(msg); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	waitFor(t, func() bool { return eng.Mode() == "galaxy" }, "mode switch")
}

func TestSetGainCommand(t *testing.T) {
	srv, eng := newTestServer(t)
	conn, cleanup := dial(t, srv)
	defer cleanup()
	readMessage(t, conn)

	gain := 1.5
	msg := protocol.Message{
		Type:    protocol.TypeSetGain,
		Payload: protocol.SetGain{Intensity: &gain},
	}
	if err := conn.WriteJSON(msg); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	waitFor(t, func() bool { return eng.Intensity() == 1.5 }, "gain change")
}

func TestUnknownModeIgnored(t *testing.T) {
	srv, eng := newTestServer(t)
	conn, cleanup := dial(t, srv)
	defer cleanup()
	readMessage(t, conn)

	msg := protocol.Message{
		Type:    protocol.TypeSetMode,
		Payload: protocol.SetMode{Mode: "bogus"},
	}
	if err := conn.WriteJSON(msg); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	// Give the read pump a moment, then confirm nothing changed
	time.Sleep(50 * time.Millisecond)
	if eng.Mode() != "sacred" {
		t.Errorf("expected mode to stay sacred, got %q", eng.Mode())
	}
}

func TestBroadcastScene(t *testing.T) {
	srv, eng := newTestServer(t)
	conn, cleanup := dial(t, srv)
	defer cleanup()
	readMessage(t, conn)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		defer close(done)
		eng.Run(ctx)
	}()
	waitFor(t, func() bool { return eng.Snapshot() != nil }, "first snapshot")

	srv.startTime = time.Now()
	srv.broadcastScene()

	raw := readMessage(t, conn)
	if raw.Type != protocol.TypeScene {
		t.Fatalf("expected %s, got %s", protocol.TypeScene, raw.Type)
	}

	var update protocol.SceneUpdate
	if err := json.Unmarshal(raw.Payload, &update); err != nil {
		t.Fatalf("bad scene payload: %v", err)
	}
	if update.Mode != "sacred" {
		t.Errorf("expected mode sacred, got %q", update.Mode)
	}
	if len(update.Shapes) == 0 {
		t.Error("expected shapes in the scene update")
	}
	if update.Width != defaultCanvasWidth || update.Height != defaultCanvasHeight {
		t.Errorf("expected default canvas size, got %gx%g", update.Width, update.Height)
	}

	eng.Stop()
	<-done
}

func TestCanvasSizeCommand(t *testing.T) {
	srv, _ := newTestServer(t)
	conn, cleanup := dial(t, srv)
	defer cleanup()
	readMessage(t, conn)

	msg := protocol.Message{
		Type:    protocol.TypeCanvasSize,
		Payload: protocol.CanvasSize{Width: 1024, Height: 768},
	}
	if err := conn.WriteJSON(msg); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	waitFor(t, func() bool {
		srv.clientsMu.RLock()
		defer srv.clientsMu.RUnlock()
		for _, c := range srv.clients {
			c.mu.RLock()
			w, h := c.width, c.height
			c.mu.RUnlock()
			return w == 1024 && h == 768
		}
		return false
	}, "canvas resize")
}

func waitFor(t *testing.T, cond func() bool, what string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(10 * time.Millisecond)
	}
}
