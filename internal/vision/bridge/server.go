// Package bridge runs the landmark bridge: an HTTP server hosting the
// tracker page and a websocket endpoint that receives hand landmarks from
// it. To the game it is just another vision.Source.
package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/imjvdn/vision-snake/internal/vision"
)

// Config holds bridge server settings.
type Config struct {
	// Addr is the host:port to listen on (e.g., ":8089").
	Addr string
	// Camera is the device index forwarded to the tracker client.
	Camera int
	// PlayW/PlayH define the playfield coordinates landmarks are scaled to.
	PlayW, PlayH float64
	// MaxFPS caps how fast the client should send frames.
	MaxFPS int
	// Logger receives connection lifecycle events. Required.
	Logger *log.Logger
}

// Server is the bridge HTTP/websocket server, implementing vision.Source.
type Server struct {
	cfg      Config
	frames   chan vision.Frame
	upgrader websocket.Upgrader
	httpSrv  *http.Server
	listener net.Listener

	mu       sync.Mutex
	activeID string // only one tracker client feeds the game at a time
	closed   bool
}

// New creates a bridge server.
func New(cfg Config) *Server {
	if cfg.MaxFPS <= 0 {
		cfg.MaxFPS = 30
	}
	return &Server{
		cfg:    cfg,
		frames: make(chan vision.Frame, 8),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Kind implements vision.Source.
func (s *Server) Kind() string { return "bridge" }

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.cfg.Addr }

// Frames implements vision.Source.
func (s *Server) Frames() <-chan vision.Frame { return s.frames }

// Start binds the listen address and begins serving. A failed bind is the
// fatal startup error (the camera-not-found case for this transport);
// anything after a successful bind is handled per-connection.
func (s *Server) Start(ctx context.Context) error {
	r := chi.NewRouter()
	r.Get("/", s.handleIndex)
	r.Get("/ws", s.handleWS)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok")) //nolint:errcheck
	})

	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("bridge: cannot listen on %s: %w", s.cfg.Addr, err)
	}
	s.listener = ln
	s.httpSrv = &http.Server{
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.cfg.Logger.Info("landmark bridge listening",
		"addr", ln.Addr().String(),
		"open", fmt.Sprintf("http://localhost%s/", s.cfg.Addr))

	go func() {
		if serveErr := s.httpSrv.Serve(ln); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			s.cfg.Logger.Error("bridge server stopped", "error", serveErr)
		}
	}()

	go func() {
		<-ctx.Done()
		s.Close() //nolint:errcheck
	}()

	return nil
}

// Close shuts the server down and closes the frame channel.
func (s *Server) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	var err error
	if s.httpSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		err = s.httpSrv.Shutdown(shutdownCtx)
	}

	// Readers only send while holding the mutex, so this cannot race a
	// send on the closed channel.
	s.mu.Lock()
	close(s.frames)
	s.mu.Unlock()
	return err
}

// handleIndex serves the embedded tracker page.
func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(trackerPage) //nolint:errcheck
}

// handleWS upgrades a tracker client and pumps its landmark messages into
// the frame channel. A newer client displaces the previous one.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.cfg.Logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	clientID := uuid.New().String()

	s.mu.Lock()
	s.activeID = clientID
	s.mu.Unlock()

	s.cfg.Logger.Info("tracker connected", "client", clientID, "remote", r.RemoteAddr)

	hello := helloMsg{
		Type:   "hello",
		Client: clientID,
		Camera: s.cfg.Camera,
		PlayW:  s.cfg.PlayW,
		PlayH:  s.cfg.PlayH,
		MaxFPS: s.cfg.MaxFPS,
	}
	if err := conn.WriteJSON(hello); err != nil {
		s.cfg.Logger.Warn("hello write failed", "client", clientID, "error", err)
		return
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			s.cfg.Logger.Info("tracker disconnected", "client", clientID, "error", err)
			return
		}

		var msg trackMsg
		if err := json.Unmarshal(data, &msg); err != nil {
			s.cfg.Logger.Debug("dropping malformed message", "client", clientID, "error", err)
			continue
		}

		frame := vision.Frame{
			Landmarks: mapLandmarks(msg, s.cfg.PlayW, s.cfg.PlayH),
			At:        time.Now(),
		}

		// Latest-wins: never block the reader on a slow consumer. The
		// mutex also fences the send against Close's channel close.
		s.mu.Lock()
		if s.closed || s.activeID != clientID {
			s.mu.Unlock()
			return // shut down or displaced by a newer tracker
		}
		select {
		case s.frames <- frame:
		default:
			select {
			case <-s.frames:
			default:
			}
			select {
			case s.frames <- frame:
			default:
			}
		}
		s.mu.Unlock()
	}
}
