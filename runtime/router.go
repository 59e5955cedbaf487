package runtime

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/errors"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"
)

type SignalResult struct {
	OK      bool   `json:"ok"`
	Type    string `json:"type"`
	Deduped bool   `json:"deduped,omitempty"`

	Recipients []domain.ConnectionID `json:"-"`
	FellBack   bool                  `json:"-"`
}

// SignalRouter delivers call negotiation signals to a user's connections,
// falling back to the room when nobody could be reached. It also serves the
// delivery API used by handlers living outside the relay.
type SignalRouter struct {
	registry  contract.IConnectionRegistry
	dedup     contract.IDeduplicator
	transport contract.Transport
	policy    domain.SignalPolicy
	tasks     contract.ITaskRunner
	notifier  contract.OfflineNotifier
	now       func() time.Time
	log       *slog.Logger
}

type RouterOption func(*SignalRouter)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) RouterOption {
	return func(r *SignalRouter) { r.now = now }
}

// WithOfflineNotifier is called, asynchronously through tasks, when a
// targeted signal finds its user without any live connection.
func WithOfflineNotifier(tasks contract.ITaskRunner, notifier contract.OfflineNotifier) RouterOption {
	return func(r *SignalRouter) {
		r.tasks = tasks
		r.notifier = notifier
	}
}

func NewSignalRouter(
	log *slog.Logger,
	registry contract.IConnectionRegistry,
	dedup contract.IDeduplicator,
	transport contract.Transport,
	policy domain.SignalPolicy,
	opts ...RouterOption,
) *SignalRouter {
	r := &SignalRouter{
		registry:  registry,
		dedup:     dedup,
		transport: transport,
		policy:    policy,
		now:       time.Now,
		log:       log,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Route handles a signal emitted by the sender connection. A nil identity
// means the connection never authenticated. The sender is always the
// authenticated user, whatever the client claimed.
func (r *SignalRouter) Route(sender domain.ConnectionID, identity *domain.Identity, signal domain.Signal) (SignalResult, error) {
	if identity == nil {
		return SignalResult{}, fmt.Errorf("route signal: %w", errors.ErrUnauthorized)
	}
	signal.SenderID = identity.UserID

	signalType := signal.Type()
	result := SignalResult{OK: true, Type: signal.SignalType}
	if r.policy.IsDedupEligible(signalType) && r.dedup.Seen(signal.Fingerprint(), r.now()) {
		r.log.Debug("Duplicate signal absorbed", "type", signalType, "conn_id", sender, "room_id", signal.RoomID)
		result.Deduped = true
		return result, nil
	}

	evt := event.NewSignal(signal)
	if signal.TargetID == "" {
		result.Recipients = r.transport.EmitToRoom(signal.RoomID, evt, sender)
		return result, nil
	}

	result.Recipients, result.FellBack = r.deliver(signal.TargetID, evt, domain.DeliveryOptions{
		RoomID:         signal.RoomID,
		RoomScoped:     r.policy.IsRoomScoped(signalType),
		MultiTarget:    r.policy.IsMultiTarget(signalType),
		FallbackToRoom: true,
		Except:         sender,
	})
	if result.FellBack && !r.registry.IsOnline(signal.TargetID) {
		r.notifyOffline(signal)
	}
	return result, nil
}

// BroadcastToRoom pushes an event to every member of the room.
func (r *SignalRouter) BroadcastToRoom(roomID domain.RoomID, evt event.Event) []domain.ConnectionID {
	return r.transport.EmitToRoom(roomID, evt)
}

// SendToUser delivers an event to a user with the same resolution rules as
// targeted signals.
func (r *SignalRouter) SendToUser(userID string, evt event.Event, opts domain.DeliveryOptions) []domain.ConnectionID {
	recipients, _ := r.deliver(userID, evt, opts)
	return recipients
}

// deliver resolves the target's connections newest first, filters them by
// room when scoped, then reaches all of them or only the newest one. When
// nothing was reached it falls back to the room, minus the excluded
// connection.
func (r *SignalRouter) deliver(userID string, evt event.Event, opts domain.DeliveryOptions) ([]domain.ConnectionID, bool) {
	candidates := lo.Filter(r.registry.ConnectionsFor(userID), func(conn domain.ConnectionID, _ int) bool {
		if conn == opts.Except {
			return false
		}
		return !opts.RoomScoped || r.transport.IsMember(conn, opts.RoomID)
	})

	var delivered []domain.ConnectionID
	for _, conn := range candidates {
		if r.transport.Emit(conn, evt) {
			delivered = append(delivered, conn)
		}
		if !opts.MultiTarget {
			break
		}
	}
	if len(delivered) > 0 || !opts.FallbackToRoom || opts.RoomID.IsZero() {
		return delivered, false
	}

	r.log.Debug("Targeted delivery missed, falling back to room",
		"user_id", userID, "room_id", opts.RoomID, "event", evt.Name)
	if opts.Except != "" {
		return r.transport.EmitToRoom(opts.RoomID, evt, opts.Except), true
	}
	return r.transport.EmitToRoom(opts.RoomID, evt), true
}

func (r *SignalRouter) notifyOffline(signal domain.Signal) {
	if r.tasks == nil || r.notifier == nil {
		return
	}
	r.tasks.Spawn("offline-notification", func(ctx context.Context) error {
		return r.notifier.NotifyOffline(ctx, signal.TargetID, signal)
	})
}
