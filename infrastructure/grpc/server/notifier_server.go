package server

import (
	"chat-relay/auth"
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/errors"
	pb "chat-relay/infrastructure/grpc/relaypb"
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"
	"google.golang.org/protobuf/types/known/structpb"
)

// NotifierServer lets handlers living outside the relay push events to rooms
// and users connected to this process.
type NotifierServer struct {
	notifier contract.INotifier
	log      *slog.Logger
}

var _ pb.NotifierServer = (*NotifierServer)(nil)

func NewNotifierServer(log *slog.Logger, notifier contract.INotifier) *NotifierServer {
	return &NotifierServer{notifier: notifier, log: log}
}

func (s *NotifierServer) BroadcastToRoom(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	fields := req.GetFields()
	roomID := fields[pb.FieldRoomID].GetStringValue()
	if roomID == "" {
		return nil, errors.MapToGRPCError(fmt.Errorf("%s is required: %w", pb.FieldRoomID, errors.ErrInvalidPayload))
	}

	recipients := s.notifier.BroadcastToRoom(domain.RoomID(roomID), toEvent(fields))
	s.log.Debug("Broadcast from collaborator", "caller", caller(ctx), "room_id", roomID, "recipients", len(recipients))
	return toResponse(recipients)
}

func (s *NotifierServer) SendToUser(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	fields := req.GetFields()
	userID := fields[pb.FieldUserID].GetStringValue()
	if userID == "" {
		return nil, errors.MapToGRPCError(fmt.Errorf("%s is required: %w", pb.FieldUserID, errors.ErrInvalidPayload))
	}
	opts := domain.DeliveryOptions{
		RoomID:         domain.RoomID(fields[pb.FieldRoomID].GetStringValue()),
		RoomScoped:     fields[pb.FieldRoomScoped].GetBoolValue(),
		MultiTarget:    fields[pb.FieldMultiTarget].GetBoolValue(),
		FallbackToRoom: fields[pb.FieldFallbackToRoom].GetBoolValue(),
	}
	if opts.RoomScoped && opts.RoomID.IsZero() {
		return nil, errors.MapToGRPCError(fmt.Errorf("room scoped delivery needs %s: %w", pb.FieldRoomID, errors.ErrInvalidPayload))
	}

	recipients := s.notifier.SendToUser(userID, toEvent(fields), opts)
	s.log.Debug("Direct delivery from collaborator", "caller", caller(ctx), "user_id", userID, "recipients", len(recipients))
	return toResponse(recipients)
}

func toEvent(fields map[string]*structpb.Value) event.Event {
	var data map[string]any
	if payload := fields[pb.FieldData].GetStructValue(); payload != nil {
		data = payload.AsMap()
	}
	return event.NewNotification(fields[pb.FieldEvent].GetStringValue(), data)
}

func toResponse(recipients []domain.ConnectionID) (*structpb.Struct, error) {
	response, err := structpb.NewStruct(map[string]any{
		pb.FieldDelivered: len(recipients),
		pb.FieldRecipients: lo.Map(recipients, func(conn domain.ConnectionID, _ int) any {
			return string(conn)
		}),
	})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return response, nil
}

func caller(ctx context.Context) string {
	if identity, ok := auth.IdentityFromContext(ctx); ok {
		return identity.UserID
	}
	return ""
}
