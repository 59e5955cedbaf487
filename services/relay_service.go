package services

import (
	"chat-relay/auth"
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/errors"
	"chat-relay/runtime"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
)

// Inbound websocket events.
const (
	AuthenticateEvent = "authenticate"
	JoinRoomEvent     = "joinRoom"
	LeaveRoomEvent    = "leaveRoom"
	SendTextEvent     = "sendText"
	SignalEvent       = "signal"
)

type IRelayService interface {
	OnConnect(ctx context.Context, conn domain.ConnectionID, token string)
	OnFrame(ctx context.Context, conn domain.ConnectionID, name string, data json.RawMessage) (any, error)
	OnDisconnect(conn domain.ConnectionID)
}

type RoomAck struct {
	OK     bool          `json:"ok"`
	RoomID domain.RoomID `json:"roomId"`
}

type AuthAck struct {
	OK     bool   `json:"ok"`
	UserID string `json:"userId"`
}

type SignalAck struct {
	OK      bool              `json:"ok"`
	Message domain.CallSignal `json:"message"`
}

type roomRequest struct {
	RoomID domain.RoomID `json:"roomId" validate:"required,max=128"`
}

type authRequest struct {
	Token string `json:"token" validate:"required"`
}

// RelayService binds the websocket sessions to the relay components:
// presence, chat and signal routing.
type RelayService struct {
	mu                 sync.RWMutex
	sessions           map[domain.ConnectionID]*Session
	authenticator      contract.Authenticator
	registry           contract.IConnectionRegistry
	transport          contract.Transport
	presence           *runtime.PresenceTracker
	router             *runtime.SignalRouter
	chat               *runtime.ChatRelay
	recorder           contract.CallSignalRecorder
	allowAnonymousJoin bool
	log                *slog.Logger
}

func NewRelayService(
	log *slog.Logger,
	authenticator contract.Authenticator,
	registry contract.IConnectionRegistry,
	transport contract.Transport,
	presence *runtime.PresenceTracker,
	router *runtime.SignalRouter,
	chat *runtime.ChatRelay,
	recorder contract.CallSignalRecorder,
	allowAnonymousJoin bool,
) *RelayService {
	return &RelayService{
		sessions:           make(map[domain.ConnectionID]*Session),
		authenticator:      authenticator,
		registry:           registry,
		transport:          transport,
		presence:           presence,
		router:             router,
		chat:               chat,
		recorder:           recorder,
		allowAnonymousJoin: allowAnonymousJoin,
		log:                log,
	}
}

// OnConnect opens the session. A missing or invalid token leaves it anonymous.
func (s *RelayService) OnConnect(ctx context.Context, conn domain.ConnectionID, token string) {
	s.mu.Lock()
	s.sessions[conn] = newSession(conn)
	s.mu.Unlock()

	if token == "" {
		s.log.Debug("Anonymous connection", "conn_id", conn)
		return
	}
	if _, err := s.authenticate(ctx, conn, token); err != nil {
		s.log.Info("Handshake token rejected, connection stays anonymous", "conn_id", conn, "error", err)
	}
}

// OnFrame dispatches one inbound event and returns the ack payload.
func (s *RelayService) OnFrame(ctx context.Context, conn domain.ConnectionID, name string, data json.RawMessage) (any, error) {
	switch name {
	case AuthenticateEvent:
		var request authRequest
		if err := decode(data, &request); err != nil {
			return nil, err
		}
		identity, err := s.authenticate(ctx, conn, request.Token)
		if err != nil {
			return nil, err
		}
		return AuthAck{OK: true, UserID: identity.UserID}, nil
	case JoinRoomEvent:
		return s.joinRoom(conn, data)
	case LeaveRoomEvent:
		var request roomRequest
		if err := decode(data, &request); err != nil {
			return nil, err
		}
		s.presence.Leave(conn, request.RoomID)
		return RoomAck{OK: true, RoomID: request.RoomID}, nil
	case SendTextEvent:
		return s.sendText(ctx, conn, data)
	case SignalEvent:
		return s.signal(ctx, conn, data)
	default:
		return nil, fmt.Errorf("%q: %w", name, errors.ErrUnknownEvent)
	}
}

// OnDisconnect tears the connection down from the rooms first, so nothing
// is routed to it once the registry entry is gone.
func (s *RelayService) OnDisconnect(conn domain.ConnectionID) {
	s.mu.Lock()
	session, ok := s.sessions[conn]
	delete(s.sessions, conn)
	s.mu.Unlock()

	rooms := s.presence.Disconnect(conn)
	if ok && session.Identity != nil {
		s.registry.Unregister(session.Identity.UserID, conn)
	}
	s.log.Debug("Connection closed", "conn_id", conn, "rooms", len(rooms))
}

// Session returns a copy of the connection state.
func (s *RelayService) Session(conn domain.ConnectionID) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[conn]
	if !ok {
		return Session{}, false
	}
	return Session{Conn: session.Conn, State: session.State, Identity: session.snapshot()}, true
}

func (s *RelayService) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *RelayService) authenticate(ctx context.Context, conn domain.ConnectionID, token string) (domain.Identity, error) {
	identity, err := s.verify(ctx, token)
	if err != nil {
		return domain.Identity{}, err
	}

	s.mu.Lock()
	session, ok := s.sessions[conn]
	if !ok {
		s.mu.Unlock()
		return domain.Identity{}, fmt.Errorf("%s: %w", conn, errors.ErrUnknownConnection)
	}
	previous := session.snapshot()
	session.authenticate(identity)
	s.mu.Unlock()

	if previous != nil && previous.UserID != identity.UserID {
		s.registry.Unregister(previous.UserID, conn)
	}
	s.registry.Register(identity.UserID, conn)
	s.log.Info("Connection authenticated", "conn_id", conn, "user_id", identity.UserID)
	return identity, nil
}

// verify keeps a faulty authenticator from taking the connection down.
func (s *RelayService) verify(ctx context.Context, token string) (identity domain.Identity, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("Authenticator panicked", "panic", r)
			err = fmt.Errorf("authenticate: %w", errors.ErrOperationFailed)
		}
	}()
	identity, err = s.authenticator.Authenticate(ctx, token)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %w", errors.ErrUnauthorized, err)
	}
	return identity, nil
}

func (s *RelayService) identity(conn domain.ConnectionID) *domain.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if session, ok := s.sessions[conn]; ok {
		return session.snapshot()
	}
	return nil
}

func (s *RelayService) joinRoom(conn domain.ConnectionID, data json.RawMessage) (any, error) {
	var request roomRequest
	if err := decode(data, &request); err != nil {
		return nil, err
	}
	if !s.allowAnonymousJoin && s.identity(conn) == nil {
		return nil, fmt.Errorf("join room: %w", errors.ErrUnauthorized)
	}
	if err := s.presence.Join(conn, request.RoomID); err != nil {
		return nil, err
	}
	return RoomAck{OK: true, RoomID: request.RoomID}, nil
}

// sendText carries both chat and call signals, told apart by messageType.
func (s *RelayService) sendText(ctx context.Context, conn domain.ConnectionID, data json.RawMessage) (any, error) {
	var kind struct {
		MessageType string `json:"messageType"`
	}
	if err := json.Unmarshal(data, &kind); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidPayload, err)
	}
	identity := s.identity(conn)

	if kind.MessageType == domain.MessageTypeWebRTCSignal {
		if identity == nil {
			return nil, fmt.Errorf("route signal: %w", errors.ErrUnauthorized)
		}
		var signal domain.Signal
		if err := decode(data, &signal); err != nil {
			return nil, err
		}
		return s.router.Route(conn, identity, signal)
	}

	var payload domain.ChatPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidPayload, err)
	}
	return s.chat.SendText(context.WithoutCancel(ctx), identity, payload)
}

func (s *RelayService) signal(ctx context.Context, conn domain.ConnectionID, data json.RawMessage) (any, error) {
	identity := s.identity(conn)
	if identity == nil {
		return nil, fmt.Errorf("record signal: %w", errors.ErrUnauthorized)
	}
	var signal domain.CallSignal
	if err := decode(data, &signal); err != nil {
		return nil, err
	}
	signal.SenderID = identity.UserID
	signal.SenderModel = identity.Model
	stored, err := s.record(context.WithoutCancel(ctx), *identity, signal)
	if err != nil {
		s.log.Warn("Call signal not recorded", "conn_id", conn, "room_id", signal.RoomID, "error", err)
		return nil, err
	}
	s.transport.EmitToRoom(stored.RoomID, event.NewCallSignal(stored), conn)
	return SignalAck{OK: true, Message: stored}, nil
}

func (s *RelayService) record(ctx context.Context, identity domain.Identity, signal domain.CallSignal) (stored domain.CallSignal, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("Call signal collaborator panicked", "panic", r)
			err = fmt.Errorf("record signal: %w", errors.ErrOperationFailed)
		}
	}()
	stored, err = s.recorder.RecordCallSignal(ctx, identity, signal)
	if err != nil {
		return domain.CallSignal{}, fmt.Errorf("%w: %w", errors.ErrPersistence, err)
	}
	return stored, nil
}

func decode(data json.RawMessage, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidPayload, err)
	}
	return auth.ValidatePayload(v)
}
