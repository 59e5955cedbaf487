package runtime

import (
	"chat-relay/domain"
	"chat-relay/infrastructure/websocket"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return logs.GetLoggerFromLevel(slog.LevelDebug)
}

// connect registers a live peer in the hub and, when userID is set, in the
// registry, then joins the given rooms without presence noise.
func connect(t *testing.T, hub *websocket.Hub, registry *Registry, id domain.ConnectionID, userID string, rooms ...domain.RoomID) *websocket.BufferedPeer {
	t.Helper()
	peer := websocket.NewBufferedPeer(id, 64)
	hub.Add(peer)
	if userID != "" {
		registry.Register(userID, id)
	}
	for _, roomID := range rooms {
		require.NoError(t, hub.Join(id, roomID))
	}
	return peer
}

// drain returns every frame already queued for the peer.
func drain(t *testing.T, peer *websocket.BufferedPeer) []websocket.Frame {
	t.Helper()
	var frames []websocket.Frame
	for {
		select {
		case raw, ok := <-peer.Frames():
			if !ok {
				return frames
			}
			var frame websocket.Frame
			require.NoError(t, json.Unmarshal(raw, &frame))
			frames = append(frames, frame)
		default:
			return frames
		}
	}
}

func named(frames []websocket.Frame, name string) []websocket.Frame {
	return lo.Filter(frames, func(f websocket.Frame, _ int) bool { return f.Event == name })
}
