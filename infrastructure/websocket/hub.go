package websocket

import (
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/samber/lo"
)

type Set map[domain.ConnectionID]struct{}

// Hub owns live peers and the native room membership. Delivery only reaches
// peers present in the hub at enqueue time, so once Remove returns nothing
// more is routed to that connection.
type Hub struct {
	mu     sync.RWMutex
	peers  map[domain.ConnectionID]Peer
	// map "room:<id>" -> members
	rooms  map[string]Set
	// map connection -> joined rooms
	joined map[domain.ConnectionID]map[domain.RoomID]struct{}
	log    *slog.Logger
}

type HubStats struct {
	Connections int
	Rooms       int
}

func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		peers:  make(map[domain.ConnectionID]Peer),
		rooms:  make(map[string]Set),
		joined: make(map[domain.ConnectionID]map[domain.RoomID]struct{}),
		log:    log,
	}
}

func (h *Hub) Add(peer Peer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.peers[peer.ID()] = peer
}

// Remove drops the connection from every room, closes its peer and returns
// the rooms it was in. Rooms left empty are deleted.
func (h *Hub) Remove(conn domain.ConnectionID) []domain.RoomID {
	h.mu.Lock()
	defer h.mu.Unlock()

	peer, ok := h.peers[conn]
	if !ok {
		return nil
	}
	delete(h.peers, conn)

	rooms := lo.Keys(h.joined[conn])
	for _, roomID := range rooms {
		h.removeMember(conn, roomID)
	}
	delete(h.joined, conn)
	peer.Close()

	slices.Sort(rooms)
	return rooms
}

// Join adds a live connection to the room, creating the room on the fly.
func (h *Hub) Join(conn domain.ConnectionID, roomID domain.RoomID) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.peers[conn]; !ok {
		return fmt.Errorf("join %s: %w", roomID.Name(), errors.ErrUnknownConnection)
	}
	name := roomID.Name()
	if _, ok := h.rooms[name]; !ok {
		h.rooms[name] = make(Set)
	}
	h.rooms[name][conn] = struct{}{}

	if _, ok := h.joined[conn]; !ok {
		h.joined[conn] = make(map[domain.RoomID]struct{})
	}
	h.joined[conn][roomID] = struct{}{}
	return nil
}

// Leave reports whether the connection was a member of the room.
func (h *Hub) Leave(conn domain.ConnectionID, roomID domain.RoomID) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.joined[conn][roomID]; !ok {
		return false
	}
	h.removeMember(conn, roomID)
	delete(h.joined[conn], roomID)
	if len(h.joined[conn]) == 0 {
		delete(h.joined, conn)
	}
	return true
}

func (h *Hub) IsMember(conn domain.ConnectionID, roomID domain.RoomID) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.rooms[roomID.Name()][conn]
	return ok
}

func (h *Hub) Rooms(conn domain.ConnectionID) []domain.RoomID {
	h.mu.RLock()
	defer h.mu.RUnlock()
	rooms := lo.Keys(h.joined[conn])
	slices.Sort(rooms)
	return rooms
}

// Emit delivers the event to a single connection.
func (h *Hub) Emit(conn domain.ConnectionID, evt event.Event) bool {
	frame, err := encodeEvent(evt)
	if err != nil {
		h.log.Error("Unable to encode event", "event", evt.Name, "error", err)
		return false
	}
	return h.Send(conn, frame)
}

// EmitToRoom delivers the event to every member of the room but the
// excluded connections and returns the ones that accepted it.
func (h *Hub) EmitToRoom(roomID domain.RoomID, evt event.Event, except ...domain.ConnectionID) []domain.ConnectionID {
	frame, err := encodeEvent(evt)
	if err != nil {
		h.log.Error("Unable to encode event", "event", evt.Name, "room_id", roomID, "error", err)
		return nil
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	var delivered []domain.ConnectionID
	for conn := range h.rooms[roomID.Name()] {
		if slices.Contains(except, conn) {
			continue
		}
		if h.sendLocked(conn, frame) {
			delivered = append(delivered, conn)
		}
	}
	slices.Sort(delivered)
	return delivered
}

// Send enqueues an already encoded frame, e.g. an ack.
func (h *Hub) Send(conn domain.ConnectionID, frame []byte) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.sendLocked(conn, frame)
}

func (h *Hub) Stats() HubStats {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return HubStats{Connections: len(h.peers), Rooms: len(h.rooms)}
}

func (h *Hub) sendLocked(conn domain.ConnectionID, frame []byte) bool {
	peer, ok := h.peers[conn]
	if !ok {
		return false
	}
	if !peer.Send(frame) {
		h.log.Warn("Peer queue is full, frame dropped", "conn_id", conn)
		return false
	}
	return true
}

// removeMember must be called with the write lock held.
func (h *Hub) removeMember(conn domain.ConnectionID, roomID domain.RoomID) {
	name := roomID.Name()
	if members, ok := h.rooms[name]; ok {
		delete(members, conn)

		// If no one is left in the room, remove the room entry entirely
		if len(members) == 0 {
			delete(h.rooms, name)
		}
	}
}
