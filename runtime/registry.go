package runtime

import (
	"chat-relay/domain"
	"slices"
	"sync"
)

// Registry maps a logical user to its live connections (multi-device).
// A connection id is indexed under at most one user at a time.
type Registry struct {
	mu     sync.RWMutex
	byUser map[string][]domain.ConnectionID // map user -> connections, oldest first
	byConn map[domain.ConnectionID]string   // map connection -> user
}

type RegistryStats struct {
	Users       int
	Connections int
}

func NewRegistry() *Registry {
	return &Registry{
		byUser: make(map[string][]domain.ConnectionID),
		byConn: make(map[domain.ConnectionID]string),
	}
}

// Register is idempotent for the same pair. A connection registered under
// another user is moved, last write wins.
func (r *Registry) Register(userID string, conn domain.ConnectionID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if owner, ok := r.byConn[conn]; ok {
		if owner == userID {
			return
		}
		r.remove(owner, conn)
	}
	r.byConn[conn] = userID
	r.byUser[userID] = append(r.byUser[userID], conn)
}

// Unregister is a no-op when the pair is unknown.
func (r *Registry) Unregister(userID string, conn domain.ConnectionID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if owner, ok := r.byConn[conn]; !ok || owner != userID {
		return
	}
	r.remove(userID, conn)
}

// ConnectionsFor returns a snapshot, most recently registered first.
func (r *Registry) ConnectionsFor(userID string) []domain.ConnectionID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conns := slices.Clone(r.byUser[userID])
	slices.Reverse(conns)
	return conns
}

func (r *Registry) IsOnline(userID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byUser[userID]) > 0
}

func (r *Registry) Stats() RegistryStats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return RegistryStats{Users: len(r.byUser), Connections: len(r.byConn)}
}

// remove must be called with the write lock held.
func (r *Registry) remove(userID string, conn domain.ConnectionID) {
	delete(r.byConn, conn)
	conns := slices.DeleteFunc(r.byUser[userID], func(c domain.ConnectionID) bool {
		return c == conn
	})

	// No empty entry is left behind
	if len(conns) == 0 {
		delete(r.byUser, userID)
		return
	}
	r.byUser[userID] = conns
}
