package client

import (
	"chat-relay/domain"
	pb "chat-relay/infrastructure/grpc/relaypb"
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/structpb"
)

// NotifierClient is used by collaborators to push events through a relay.
type NotifierClient struct {
	client pb.NotifierClient
	token  string
}

func NewNotifierClient(cc grpc.ClientConnInterface, token string) *NotifierClient {
	return &NotifierClient{client: pb.NewNotifierClient(cc), token: token}
}

// BroadcastToRoom returns how many connections received the event.
func (c *NotifierClient) BroadcastToRoom(ctx context.Context, roomID domain.RoomID, name string, data map[string]any) (int, error) {
	request, err := newRequest(name, data, map[string]any{pb.FieldRoomID: string(roomID)})
	if err != nil {
		return 0, err
	}
	response, err := c.client.BroadcastToRoom(c.outgoing(ctx), request)
	if err != nil {
		return 0, err
	}
	return delivered(response), nil
}

func (c *NotifierClient) SendToUser(ctx context.Context, userID, name string, data map[string]any, opts domain.DeliveryOptions) (int, error) {
	request, err := newRequest(name, data, map[string]any{
		pb.FieldUserID:         userID,
		pb.FieldRoomID:         string(opts.RoomID),
		pb.FieldRoomScoped:     opts.RoomScoped,
		pb.FieldMultiTarget:    opts.MultiTarget,
		pb.FieldFallbackToRoom: opts.FallbackToRoom,
	})
	if err != nil {
		return 0, err
	}
	response, err := c.client.SendToUser(c.outgoing(ctx), request)
	if err != nil {
		return 0, err
	}
	return delivered(response), nil
}

func (c *NotifierClient) outgoing(ctx context.Context) context.Context {
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+c.token)
}

func newRequest(name string, data map[string]any, fields map[string]any) (*structpb.Struct, error) {
	fields[pb.FieldEvent] = name
	if data != nil {
		fields[pb.FieldData] = data
	}
	return structpb.NewStruct(fields)
}

func delivered(response *structpb.Struct) int {
	return int(response.GetFields()[pb.FieldDelivered].GetNumberValue())
}
