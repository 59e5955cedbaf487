package services

import "chat-relay/domain"

type SessionState int

const (
	Anonymous SessionState = iota
	Authenticated
)

func (s SessionState) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// Session is the per-connection state. It only moves from Anonymous to
// Authenticated, re-authentication replaces the identity in place.
type Session struct {
	Conn     domain.ConnectionID
	State    SessionState
	Identity *domain.Identity
}

func newSession(conn domain.ConnectionID) *Session {
	return &Session{Conn: conn, State: Anonymous}
}

func (s *Session) authenticate(identity domain.Identity) {
	s.State = Authenticated
	s.Identity = &identity
}

// snapshot returns a copy of the identity, nil while anonymous.
func (s *Session) snapshot() *domain.Identity {
	if s.Identity == nil {
		return nil
	}
	identity := *s.Identity
	return &identity
}
