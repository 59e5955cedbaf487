package event

import (
	"chat-relay/domain"
)

type Name string

const (
	PresenceName     Name = "presence"
	NewMessageName   Name = "newMessage"
	SignalName       Name = "signal"
	NotificationName Name = "notification"
)

// Event is an outbound message pushed to one or many connections.
// Data is encoded to JSON by the transport.
type Event struct {
	Name Name
	Data any
}

type PresenceState string

const (
	Joined PresenceState = "joined"
	Left   PresenceState = "left"
)

type Presence struct {
	Participant domain.ConnectionID `json:"participant"`
	State       PresenceState       `json:"state"`
	RoomID      domain.RoomID       `json:"roomId"`
}

func NewPresence(conn domain.ConnectionID, state PresenceState, roomID domain.RoomID) Event {
	return Event{Name: PresenceName, Data: Presence{Participant: conn, State: state, RoomID: roomID}}
}

func NewMessage(message domain.Message) Event {
	return Event{Name: NewMessageName, Data: message}
}

// NewSignal relays a routed signal as is, with the normalized type.
func NewSignal(signal domain.Signal) Event {
	signal.MessageType = domain.MessageTypeWebRTCSignal
	signal.SignalType = string(signal.Type())
	return Event{Name: SignalName, Data: signal}
}

func NewCallSignal(signal domain.CallSignal) Event {
	return Event{Name: SignalName, Data: signal}
}

// NewNotification wraps data pushed by an external collaborator. An empty
// name falls back to "notification".
func NewNotification(name string, data map[string]any) Event {
	if name == "" {
		name = string(NotificationName)
	}
	return Event{Name: Name(name), Data: data}
}
