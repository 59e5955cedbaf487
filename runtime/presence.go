package runtime

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"log/slog"
)

// PresenceTracker wraps the transport room primitive and announces joins
// and leaves to room members. It performs no authorization.
type PresenceTracker struct {
	transport contract.Transport
	log       *slog.Logger
}

func NewPresenceTracker(transport contract.Transport, log *slog.Logger) *PresenceTracker {
	return &PresenceTracker{transport: transport, log: log}
}

// Join announces the newcomer to every member, itself included.
func (p *PresenceTracker) Join(conn domain.ConnectionID, roomID domain.RoomID) error {
	if err := p.transport.Join(conn, roomID); err != nil {
		return err
	}
	p.transport.EmitToRoom(roomID, event.NewPresence(conn, event.Joined, roomID))
	p.log.Debug("Joined room", "conn_id", conn, "room_id", roomID)
	return nil
}

// Leave announces the departure to the members left in the room.
func (p *PresenceTracker) Leave(conn domain.ConnectionID, roomID domain.RoomID) {
	if !p.transport.Leave(conn, roomID) {
		return
	}
	p.transport.EmitToRoom(roomID, event.NewPresence(conn, event.Left, roomID))
	p.log.Debug("Left room", "conn_id", conn, "room_id", roomID)
}

// Disconnect removes the connection from the transport and every room it
// had joined, then announces each departure.
func (p *PresenceTracker) Disconnect(conn domain.ConnectionID) []domain.RoomID {
	rooms := p.transport.Remove(conn)
	for _, roomID := range rooms {
		p.transport.EmitToRoom(roomID, event.NewPresence(conn, event.Left, roomID))
	}
	return rooms
}
