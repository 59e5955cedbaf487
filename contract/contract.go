//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-relay/domain"
	"chat-relay/domain/event"
	"context"
	"reflect"
	"time"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// ITaskRunner runs fire-and-forget side effects. Failures are reported on
// the runner's own error channel, never to the caller.
type ITaskRunner interface {
	Spawn(name string, task func(ctx context.Context) error)
}

// Transport is the room membership and delivery primitive of the
// underlying connection layer.
type Transport interface {
	Join(conn domain.ConnectionID, roomID domain.RoomID) error
	Leave(conn domain.ConnectionID, roomID domain.RoomID) bool
	// Remove drops the connection from every room and returns them.
	Remove(conn domain.ConnectionID) []domain.RoomID
	IsMember(conn domain.ConnectionID, roomID domain.RoomID) bool
	Emit(conn domain.ConnectionID, evt event.Event) bool
	EmitToRoom(roomID domain.RoomID, evt event.Event, except ...domain.ConnectionID) []domain.ConnectionID
}

type IConnectionRegistry interface {
	Register(userID string, conn domain.ConnectionID)
	Unregister(userID string, conn domain.ConnectionID)
	ConnectionsFor(userID string) []domain.ConnectionID
	IsOnline(userID string) bool
}

type IDeduplicator interface {
	Seen(fingerprint string, now time.Time) bool
}

// INotifier is the delivery API offered to request handlers living outside
// the relay.
type INotifier interface {
	BroadcastToRoom(roomID domain.RoomID, evt event.Event) []domain.ConnectionID
	SendToUser(userID string, evt event.Event, opts domain.DeliveryOptions) []domain.ConnectionID
}

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (domain.Identity, error)
}

type MessagePersister interface {
	PersistMessage(ctx context.Context, identity domain.Identity, payload domain.ChatPayload) (domain.Message, error)
}

type CallSignalRecorder interface {
	RecordCallSignal(ctx context.Context, identity domain.Identity, signal domain.CallSignal) (domain.CallSignal, error)
}

// OfflineNotifier is told when a targeted signal finds its user offline,
// e.g. to push a missed call through another channel.
type OfflineNotifier interface {
	NotifyOffline(ctx context.Context, userID string, signal domain.Signal) error
}

type ContentModerator interface {
	Moderate(content string) domain.ModeratedContent
}
