// Package relaypb describes the relay.v1.Notifier service. Messages are
// google.protobuf.Struct so that external handlers can push any event shape.
package relaypb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	NotifierServiceName           = "relay.v1.Notifier"
	Notifier_BroadcastToRoom_Name = "/relay.v1.Notifier/BroadcastToRoom"
	Notifier_SendToUser_Name      = "/relay.v1.Notifier/SendToUser"
)

// Request and response field names.
const (
	FieldRoomID         = "room_id"
	FieldUserID         = "user_id"
	FieldEvent          = "event"
	FieldData           = "data"
	FieldRoomScoped     = "room_scoped"
	FieldMultiTarget    = "multi_target"
	FieldFallbackToRoom = "fallback_to_room"
	FieldDelivered      = "delivered"
	FieldRecipients     = "recipients"
)

type NotifierServer interface {
	BroadcastToRoom(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SendToUser(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

func RegisterNotifierServer(s grpc.ServiceRegistrar, srv NotifierServer) {
	s.RegisterService(&Notifier_ServiceDesc, srv)
}

func _Notifier_BroadcastToRoom_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NotifierServer).BroadcastToRoom(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Notifier_BroadcastToRoom_Name}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(NotifierServer).BroadcastToRoom(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _Notifier_SendToUser_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NotifierServer).SendToUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Notifier_SendToUser_Name}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(NotifierServer).SendToUser(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

var Notifier_ServiceDesc = grpc.ServiceDesc{
	ServiceName: NotifierServiceName,
	HandlerType: (*NotifierServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "BroadcastToRoom", Handler: _Notifier_BroadcastToRoom_Handler},
		{MethodName: "SendToUser", Handler: _Notifier_SendToUser_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "relay/v1/notifier.proto",
}

type NotifierClient interface {
	BroadcastToRoom(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	SendToUser(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type notifierClient struct {
	cc grpc.ClientConnInterface
}

func NewNotifierClient(cc grpc.ClientConnInterface) NotifierClient {
	return &notifierClient{cc}
}

func (c *notifierClient) BroadcastToRoom(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, Notifier_BroadcastToRoom_Name, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *notifierClient) SendToUser(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, Notifier_SendToUser_Name, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
