package websocket

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	gorilla "github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

// echoHandler acks "echo" frames with their data and rejects everything else
type echoHandler struct {
	mu           sync.Mutex
	tokens       []string
	disconnected chan domain.ConnectionID
}

func newEchoHandler() *echoHandler {
	return &echoHandler{disconnected: make(chan domain.ConnectionID, 1)}
}

func (h *echoHandler) OnConnect(_ context.Context, _ domain.ConnectionID, token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.tokens = append(h.tokens, token)
}

func (h *echoHandler) OnFrame(_ context.Context, _ domain.ConnectionID, name string, data json.RawMessage) (any, error) {
	if name != "echo" {
		return nil, fmt.Errorf("%q: %w", name, errors.ErrUnknownEvent)
	}
	return data, nil
}

func (h *echoHandler) OnDisconnect(conn domain.ConnectionID) {
	h.disconnected <- conn
}

func (h *echoHandler) lastToken() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.tokens) == 0 {
		return ""
	}
	return h.tokens[len(h.tokens)-1]
}

func startServer(t *testing.T, handler Handler, config Config) (*httptest.Server, *Hub) {
	t.Helper()
	hub := newTestHub()
	server := httptest.NewServer(NewServer(testLogger(), hub, handler, config).Routes())
	t.Cleanup(server.Close)
	return server, hub
}

func dial(t *testing.T, server *httptest.Server, path string, header http.Header) *gorilla.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http") + path
	ws, _, err := gorilla.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ws.Close() })
	return ws
}

type ackFrame struct {
	Event     string          `json:"event"`
	RequestID string          `json:"request_id"`
	Data      json.RawMessage `json:"data"`
}

func readAck(t *testing.T, ws *gorilla.Conn) ackFrame {
	t.Helper()
	require.NoError(t, ws.SetReadDeadline(time.Now().Add(2*time.Second)))
	var frame ackFrame
	require.NoError(t, ws.ReadJSON(&frame))
	return frame
}

func TestServer_Health(t *testing.T) {
	req := require.New(t)
	server, _ := startServer(t, newEchoHandler(), Config{})

	resp, err := http.Get(server.URL + "/up")
	req.NoError(err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	req.NoError(err)
	req.Equal(http.StatusOK, resp.StatusCode)
	req.Equal("OK", string(body))
}

func TestServer_Ack_Carries_Request_Id(t *testing.T) {
	req := require.New(t)
	handler := newEchoHandler()
	server, _ := startServer(t, handler, Config{})
	ws := dial(t, server, "/ws", http.Header{"Authorization": []string{"Bearer abc"}})

	req.NoError(ws.WriteJSON(map[string]any{"event": "echo", "request_id": "r-1", "data": map[string]int{"n": 1}}))

	ack := readAck(t, ws)
	req.Equal(ackEvent, ack.Event)
	req.Equal("r-1", ack.RequestID)
	req.JSONEq(`{"n":1}`, string(ack.Data))
	req.Equal("abc", handler.lastToken())
}

func TestServer_Error_Ack(t *testing.T) {
	req := require.New(t)
	server, _ := startServer(t, newEchoHandler(), Config{})
	ws := dial(t, server, "/ws?token=xyz", nil)

	req.NoError(ws.WriteJSON(map[string]any{"event": "typing", "request_id": "r-2"}))

	ack := readAck(t, ws)
	req.Equal("r-2", ack.RequestID)
	var body errorAck
	req.NoError(json.Unmarshal(ack.Data, &body))
	req.False(body.OK)
	req.Equal(errors.CodeInvalidArgument, body.Error.Code)
}

func TestServer_Decode_Error_Budget(t *testing.T) {
	req := require.New(t)
	handler := newEchoHandler()
	server, hub := startServer(t, handler, Config{MaxDecodeErrors: 2})
	ws := dial(t, server, "/ws", nil)

	// Given two invalid frames in a row
	req.NoError(ws.WriteMessage(gorilla.TextMessage, []byte("{not json")))
	req.NoError(ws.WriteMessage(gorilla.TextMessage, []byte("[]")))

	// Then the connection is torn down
	select {
	case <-handler.disconnected:
	case <-time.After(2 * time.Second):
		req.Fail("connection was not closed")
	}
	req.Eventually(func() bool { return hub.Stats().Connections == 0 }, time.Second, 10*time.Millisecond)
}

func TestServer_Oversized_Frame_Is_Rejected(t *testing.T) {
	req := require.New(t)
	server, _ := startServer(t, newEchoHandler(), Config{MaxFrameBytes: 64})
	ws := dial(t, server, "/ws", nil)

	req.NoError(ws.WriteJSON(map[string]any{"event": "echo", "data": strings.Repeat("x", 100)}))

	ack := readAck(t, ws)
	var body errorAck
	req.NoError(json.Unmarshal(ack.Data, &body))
	req.Equal(errors.CodeInvalidArgument, body.Error.Code)

	// The connection survives
	req.NoError(ws.WriteJSON(map[string]any{"event": "echo", "request_id": "ok", "data": 1}))
	req.Equal("ok", readAck(t, ws).RequestID)
}

func TestServer_Client_Close_Disconnects(t *testing.T) {
	req := require.New(t)
	handler := newEchoHandler()
	server, hub := startServer(t, handler, Config{})
	ws := dial(t, server, "/ws", nil)
	req.Eventually(func() bool { return hub.Stats().Connections == 1 }, time.Second, 10*time.Millisecond)

	req.NoError(ws.Close())

	select {
	case <-handler.disconnected:
	case <-time.After(2 * time.Second):
		req.Fail("disconnect not observed")
	}
	req.Eventually(func() bool { return hub.Stats().Connections == 0 }, time.Second, 10*time.Millisecond)
}

func TestConfig_Defaults(t *testing.T) {
	req := require.New(t)

	config := Config{}.withDefaults()

	req.Equal(DefaultMaxFramesPerSecond, config.MaxFramesPerSecond)
	req.Equal(DefaultMaxDecodeErrors, config.MaxDecodeErrors)
	req.Equal(int64(DefaultMaxFrameBytes), config.MaxFrameBytes)
	req.Equal(7, Config{MaxFramesPerSecond: 7}.withDefaults().MaxFramesPerSecond)
}

func TestServer_Frame_Rate_Limit(t *testing.T) {
	req := require.New(t)
	handler := newEchoHandler()
	server, _ := startServer(t, handler, Config{MaxFramesPerSecond: 2})
	ws := dial(t, server, "/ws", nil)

	// Given three frames sent in the same second
	for i := range 3 {
		req.NoError(ws.WriteJSON(map[string]any{"event": "echo", "request_id": fmt.Sprintf("r-%d", i), "data": i}))
	}

	// Then the first two are acked and the third closes the connection
	req.Equal("r-0", readAck(t, ws).RequestID)
	req.Equal("r-1", readAck(t, ws).RequestID)
	var body errorAck
	req.NoError(json.Unmarshal(readAck(t, ws).Data, &body))
	req.Equal(errors.CodeResourceExhausted, body.Error.Code)

	select {
	case <-handler.disconnected:
	case <-time.After(2 * time.Second):
		req.Fail("disconnect not observed")
	}
}

func TestTokenFromRequest(t *testing.T) {
	tests := []struct {
		name   string
		header string
		query  string
		want   string
	}{
		{"Bearer scheme", "Bearer abc", "", "abc"},
		{"Lower case scheme", "bearer abc", "", "abc"},
		{"Upper case scheme", "BEARER  abc ", "", "abc"},
		{"Header wins over query", "Bearer abc", "xyz", "abc"},
		{"Query parameter", "", "xyz", "xyz"},
		{"Nothing", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/ws?token="+tt.query, nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			require.Equal(t, tt.want, tokenFromRequest(r))
		})
	}
}
