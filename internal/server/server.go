// ABOUTME: WebSocket scene server streaming draw primitives to canvas clients
// ABOUTME: Manages client connections, mode/gain commands, and the broadcast loop
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/discovery"
	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/engine"
	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/protocol"
	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/render"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	// DefaultFPS is the broadcast cadence; independent of the analysis tick
	DefaultFPS = 30

	defaultCanvasWidth  = 800.0
	defaultCanvasHeight = 600.0

	clientSendBuffer = 8
)

// Config holds server configuration
type Config struct {
	Port       int
	Name       string
	Bins       int
	FPS        int
	EnableMDNS bool
}

// Server streams rendered scenes over WebSocket
type Server struct {
	config   Config
	serverID string
	engine   *engine.Engine

	upgrader   websocket.Upgrader
	httpServer *http.Server

	clients   map[string]*Client
	clientsMu sync.RWMutex

	mdnsManager *discovery.Manager
	startTime   time.Time

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// Client is one connected canvas consumer
type Client struct {
	ID   string
	Conn *websocket.Conn

	width  float64
	height float64
	mu     sync.RWMutex

	sendChan chan protocol.Message
}

// New creates a scene server around an already-constructed engine
func New(config Config, eng *engine.Engine) *Server {
	if config.FPS <= 0 {
		config.FPS = DefaultFPS
	}
	if config.Name == "" {
		config.Name = "soundscape"
	}
	return &Server{
		config:   config,
		serverID: uuid.New().String(),
		engine:   eng,
		upgrader: websocket.Upgrader{
			// Local-network visualizer; any origin may draw
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients:  make(map[string]*Client),
		stopChan: make(chan struct{}),
	}
}

// Start runs the HTTP listener, broadcast loop, and optional mDNS
// advertisement. It returns once the listener is up.
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)

	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.config.Port),
		Handler: mux,
	}
	s.startTime = time.Now()

	if s.config.EnableMDNS {
		s.mdnsManager = discovery.NewManager(discovery.Config{
			ServiceName: s.config.Name,
			Port:        s.config.Port,
		})
		if err := s.mdnsManager.Advertise(); err != nil {
			log.Printf("mDNS advertisement failed: %v", err)
		}
	}

	s.wg.Add(1)
	go s.broadcastLoop()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		log.Printf("Scene server %q listening on :%d", s.config.Name, s.config.Port)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("HTTP server error: %v", err)
		}
	}()
	return nil
}

// Stop shuts down the listener, the broadcast loop, and all clients
func (s *Server) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)

		if s.mdnsManager != nil {
			s.mdnsManager.Stop()
		}
		if s.httpServer != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = s.httpServer.Shutdown(ctx)
		}

		s.clientsMu.Lock()
		for _, c := range s.clients {
			c.Conn.Close()
		}
		s.clientsMu.Unlock()
	})
	s.wg.Wait()
}

// ClientCount reports the number of connected clients
func (s *Server) ClientCount() int {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	return len(s.clients)
}

// handleWebSocket upgrades a connection and registers the client
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	client := &Client{
		ID:       uuid.New().String(),
		Conn:     conn,
		width:    defaultCanvasWidth,
		height:   defaultCanvasHeight,
		sendChan: make(chan protocol.Message, clientSendBuffer),
	}

	s.clientsMu.Lock()
	s.clients[client.ID] = client
	s.clientsMu.Unlock()
	log.Printf("Client %s connected (%d total)", client.ID, s.ClientCount())

	client.sendChan <- protocol.Message{
		Type: protocol.TypeServerHello,
		Payload: protocol.ServerHello{
			ServerID: s.serverID,
			Name:     s.config.Name,
			Version:  protocol.ProtocolVersion,
			Bins:     s.config.Bins,
			Modes:    render.Modes(),
			Mode:     s.engine.Mode(),
		},
	}

	go s.writePump(client)
	go s.readPump(client)
}

// writePump drains the client's send channel onto the socket
func (s *Server) writePump(client *Client) {
	for msg := range client.sendChan {
		if err := client.Conn.WriteJSON(msg); err != nil {
			log.Printf("Write to client %s failed: %v", client.ID, err)
			s.removeClient(client)
			return
		}
	}
}

// readPump processes client commands until the connection dies
func (s *Server) readPump(client *Client) {
	defer s.removeClient(client)

	for {
		var raw struct {
			Type    string          `json:"type"`
			Payload json.RawMessage `json:"payload"`
		}
		if err := client.Conn.ReadJSON(&raw); err != nil {
			return
		}
		s.handleMessage(client, raw.Type, raw.Payload)
	}
}

func (s *Server) handleMessage(client *Client, msgType string, payload json.RawMessage) {
	switch msgType {
	case protocol.TypeSetMode:
		var m protocol.SetMode
		if err := json.Unmarshal(payload, &m); err != nil {
			return
		}
		if err := s.engine.SetMode(m.Mode); err != nil {
			log.Printf("Client %s requested %v", client.ID, err)
			return
		}
		log.Printf("Mode switched to %q by client %s", m.Mode, client.ID)

	case protocol.TypeSetGain:
		var m protocol.SetGain
		if err := json.Unmarshal(payload, &m); err != nil {
			return
		}
		if m.Intensity != nil {
			s.engine.SetIntensity(*m.Intensity)
		}
		if m.Sensitivity != nil {
			s.engine.SetSensitivity(*m.Sensitivity)
		}

	case protocol.TypeCanvasSize:
		var m protocol.CanvasSize
		if err := json.Unmarshal(payload, &m); err != nil {
			return
		}
		if m.Width > 0 && m.Height > 0 {
			client.mu.Lock()
			client.width, client.height = m.Width, m.Height
			client.mu.Unlock()
		}

	default:
		log.Printf("Client %s sent unknown message type %q", client.ID, msgType)
	}
}

// broadcastLoop renders a scene per client at the configured frame rate.
// A slow client drops frames instead of stalling the loop.
func (s *Server) broadcastLoop() {
	defer s.wg.Done()

	interval := time.Second / time.Duration(s.config.FPS)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.broadcastScene()
		}
	}
}

func (s *Server) broadcastScene() {
	snap := s.engine.Snapshot()
	if snap == nil {
		return
	}
	now := time.Since(s.startTime).Seconds()
	mode := s.engine.Mode()
	pal := protocol.FromPalette(snap.Palette)

	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()

	for _, client := range s.clients {
		client.mu.RLock()
		w, h := client.width, client.height
		client.mu.RUnlock()

		update := protocol.SceneUpdate{
			Time:    now,
			Mode:    mode,
			Width:   w,
			Height:  h,
			Palette: pal,
			Shapes:  protocol.FromPrimitives(s.engine.Scene(now, w, h)),
		}

		select {
		case client.sendChan <- protocol.Message{Type: protocol.TypeScene, Payload: update}:
		default:
			// Channel full; skip this frame for the laggard
		}
	}
}

func (s *Server) removeClient(client *Client) {
	s.clientsMu.Lock()
	if _, ok := s.clients[client.ID]; ok {
		delete(s.clients, client.ID)
		close(client.sendChan)
	}
	s.clientsMu.Unlock()

	client.Conn.Close()
}
