package websocket

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	gorilla "github.com/gorilla/websocket"
)

// client pumps one gorilla connection. The read pump is the only reader and
// handles frames sequentially, the write pump is the only writer and drains
// the peer queue, so both acks and events keep their enqueue order.
type client struct {
	conn    domain.ConnectionID
	ws      *gorilla.Conn
	peer    *BufferedPeer
	handler Handler
	config  Config
	log     *slog.Logger
}

func (c *client) readPump(ctx context.Context) {
	c.ws.SetReadLimit(c.config.MaxFrameBytes * 4)
	_ = c.ws.SetReadDeadline(time.Now().Add(c.config.PongTimeout))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(c.config.PongTimeout))
	})

	windowStart := time.Now()
	framesInWindow := 0
	decodeErrors := 0

	for {
		_, raw, err := c.ws.ReadMessage()
		if err != nil {
			if gorilla.IsUnexpectedCloseError(err, gorilla.CloseGoingAway, gorilla.CloseNormalClosure) {
				c.log.Info("Connection closed unexpectedly", "conn_id", c.conn, "error", err)
			}
			return
		}

		now := time.Now()
		if now.Sub(windowStart) >= time.Second {
			windowStart = now
			framesInWindow = 0
		}
		framesInWindow++
		if framesInWindow > c.config.MaxFramesPerSecond {
			c.log.Warn("Frame rate exceeded, closing connection", "conn_id", c.conn)
			c.replyError("", errors.ErrRateLimited)
			return
		}

		if int64(len(raw)) > c.config.MaxFrameBytes {
			c.replyError("", fmt.Errorf("frame too large: %w", errors.ErrInvalidPayload))
			continue
		}

		var frame Frame
		if err = json.Unmarshal(raw, &frame); err != nil || frame.Event == "" {
			decodeErrors++
			c.replyError("", fmt.Errorf("invalid frame: %w", errors.ErrInvalidPayload))
			if decodeErrors >= c.config.MaxDecodeErrors {
				c.log.Warn("Too many invalid frames, closing connection", "conn_id", c.conn)
				return
			}
			continue
		}
		decodeErrors = 0

		payload, err := c.handler.OnFrame(ctx, c.conn, frame.Event, frame.Data)
		if err != nil {
			c.replyError(frame.RequestID, err)
			continue
		}
		c.reply(frame.RequestID, payload)
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(c.config.pingPeriod())
	defer func() {
		ticker.Stop()
		_ = c.ws.Close()
	}()

	for {
		select {
		case frame, ok := <-c.peer.Frames():
			_ = c.ws.SetWriteDeadline(time.Now().Add(c.config.WriteTimeout))
			if !ok {
				// The hub closed the peer
				_ = c.ws.WriteMessage(gorilla.CloseMessage, []byte{})
				return
			}
			if err := c.ws.WriteMessage(gorilla.TextMessage, frame); err != nil {
				c.log.Debug("Write failed", "conn_id", c.conn, "error", err)
				return
			}
		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(c.config.WriteTimeout))
			if err := c.ws.WriteMessage(gorilla.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *client) reply(requestID string, payload any) {
	frame, err := encodeAck(requestID, payload)
	if err != nil {
		c.replyError(requestID, err)
		return
	}
	c.peer.Send(frame)
}

func (c *client) replyError(requestID string, err error) {
	frame, encodeErr := encodeError(requestID, err)
	if encodeErr != nil {
		c.log.Error("Unable to encode error ack", "conn_id", c.conn, "error", encodeErr)
		return
	}
	c.peer.Send(frame)
}
