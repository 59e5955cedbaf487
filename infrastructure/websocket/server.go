package websocket

import (
	"chat-relay/domain"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	gorilla "github.com/gorilla/websocket"
)

const (
	DefaultSendBufferSize     = 256
	DefaultWriteTimeout       = 10 * time.Second
	DefaultPongTimeout        = 60 * time.Second
	DefaultMaxFrameBytes      = 64 * 1024
	DefaultMaxFramesPerSecond = 50
	DefaultMaxDecodeErrors    = 5
)

// Handler receives the lifecycle of every websocket connection.
type Handler interface {
	OnConnect(ctx context.Context, conn domain.ConnectionID, token string)
	// OnFrame returns the payload acked back to the sender, or the error
	// turned into an error ack.
	OnFrame(ctx context.Context, conn domain.ConnectionID, name string, data json.RawMessage) (any, error)
	OnDisconnect(conn domain.ConnectionID)
}

type Config struct {
	SendBufferSize     int
	WriteTimeout       time.Duration
	PongTimeout        time.Duration
	MaxFrameBytes      int64
	MaxFramesPerSecond int
	MaxDecodeErrors    int
}

func (c Config) withDefaults() Config {
	if c.SendBufferSize <= 0 {
		c.SendBufferSize = DefaultSendBufferSize
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = DefaultWriteTimeout
	}
	if c.PongTimeout <= 0 {
		c.PongTimeout = DefaultPongTimeout
	}
	if c.MaxFrameBytes <= 0 {
		c.MaxFrameBytes = DefaultMaxFrameBytes
	}
	if c.MaxFramesPerSecond <= 0 {
		c.MaxFramesPerSecond = DefaultMaxFramesPerSecond
	}
	if c.MaxDecodeErrors <= 0 {
		c.MaxDecodeErrors = DefaultMaxDecodeErrors
	}
	return c
}

// pings must be sent before the peer's read deadline expires
func (c Config) pingPeriod() time.Duration {
	return c.PongTimeout * 9 / 10
}

type Server struct {
	hub      *Hub
	handler  Handler
	config   Config
	upgrader gorilla.Upgrader
	log      *slog.Logger
}

func NewServer(log *slog.Logger, hub *Hub, handler Handler, config Config) *Server {
	return &Server{
		hub:     hub,
		handler: handler,
		config:  config.withDefaults(),
		upgrader: gorilla.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		log: log,
	}
}

// Routes exposes the websocket endpoint and the health check.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/up", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	mux.HandleFunc("/ws", s.ServeWS)
	return mux
}

func (s *Server) ServeWS(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied to the client
		s.log.Debug("Websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	conn := domain.NewConnectionID()
	peer := NewBufferedPeer(conn, s.config.SendBufferSize)
	s.hub.Add(peer)
	c := &client{conn: conn, ws: ws, peer: peer, handler: s.handler, config: s.config, log: s.log}
	go c.writePump()

	ctx := r.Context()
	s.log.Debug("Connection opened", "conn_id", conn, "remote", r.RemoteAddr)
	s.handler.OnConnect(ctx, conn, tokenFromRequest(r))
	c.readPump(ctx)

	s.handler.OnDisconnect(conn)
	s.hub.Remove(conn)
	peer.Close()
}

// tokenFromRequest reads the bearer token from the Authorization header,
// then from the "token" query parameter for browsers.
func tokenFromRequest(r *http.Request) string {
	if header := strings.TrimSpace(r.Header.Get("Authorization")); header != "" {
		scheme, token, found := strings.Cut(header, " ")
		if found && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return header
	}
	return strings.TrimSpace(r.URL.Query().Get("token"))
}
