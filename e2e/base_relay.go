package e2e

import (
	"chat-relay/auth"
	"chat-relay/domain"
	"chat-relay/infrastructure/grpc/client"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/gookit/color"
	gorilla "github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

type BaseRelaySuite struct {
	suite.Suite
	Config Config
	tokens *auth.TokenManager
}

// SetupSuite loads the environment configuration before running tests.
// Scenarios are skipped unless a relay is running.
func (s *BaseRelaySuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.RelayAddr == "" || s.Config.NotifierAddr == "" || s.Config.JwtSecret == "" {
		s.T().Skip("RELAY_ADDR, NOTIFIER_ADDR and JWT_SECRET must be set")
	}
	s.tokens = auth.NewTokenManager(s.Config.JwtSecret, s.Config.JwtIssuer)
}

func (s *BaseRelaySuite) Token(identity domain.Identity) string {
	token, err := s.tokens.GenerateToken(identity, 5*time.Minute)
	s.Require().NoError(err)
	return token
}

func (s *BaseRelaySuite) header(t *testing.T, name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)
}

// GrpcConn initializes a gRPC connection with logging, colors, and JSON debugging
func (s *BaseRelaySuite) GrpcConn(t *testing.T, name string, addr string) *grpc.ClientConn {
	s.header(t, name)

	marshaler := protojson.MarshalOptions{
		UseProtoNames:   true,
		Multiline:       true,
		EmitUnpopulated: true,
	}

	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
			start := time.Now()
			err := invoker(ctx, method, req, reply, cc, opts...)

			logBuilder := strings.Builder{}
			fmt.Fprintf(&logBuilder, "GRPC %s [%s] in %v", method, status.Code(err), time.Since(start))

			// Log full JSON request/response bodies if E2E_DEBUG_JSON is enabled
			if s.Config.DebugJSON {
				fmt.Fprintln(&logBuilder, "\nREQUEST:")
				fmt.Fprintln(&logBuilder, marshaler.Format(req.(proto.Message)))
				if err != nil {
					fmt.Fprintln(&logBuilder, "ERROR:", err)
				} else {
					fmt.Fprintln(&logBuilder, "RESPONSE:")
					fmt.Fprintln(&logBuilder, marshaler.Format(reply.(proto.Message)))
				}
			}
			t.Log(logBuilder.String())
			return err
		}),
	)
	s.Require().NoError(err, "Failed to connect to gRPC server at "+addr)
	return conn
}

// WithNotifier provides a Notifier client carrying a service token
func (s *BaseRelaySuite) WithNotifier(name string, fn func(ctx context.Context, notifier *client.NotifierClient)) {
	conn := s.GrpcConn(s.T(), name, s.Config.NotifierAddr)
	defer conn.Close()

	token := s.Token(domain.Identity{UserID: "e2e-service", Roles: []string{auth.ServiceRole}})
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fn(ctx, client.NewNotifierClient(conn, token))
}

// WsClient is a websocket connection speaking the relay frame protocol.
type WsClient struct {
	s  *BaseRelaySuite
	ws *gorilla.Conn
}

type Frame struct {
	Event     string          `json:"event"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// Dial opens a websocket connection, authenticated when token is set
func (s *BaseRelaySuite) Dial(name, token string) *WsClient {
	s.header(s.T(), name)
	addr := s.Config.RelayAddr
	if token != "" {
		addr += "?token=" + token
	}
	ws, _, err := gorilla.DefaultDialer.Dial(addr, nil)
	s.Require().NoError(err, "Failed to connect to relay at "+s.Config.RelayAddr)
	return &WsClient{s: s, ws: ws}
}

func (c *WsClient) Close() {
	_ = c.ws.Close()
}

// Request sends an event and waits for its ack, skipping pushed events
func (c *WsClient) Request(name string, data any) json.RawMessage {
	requestID := fmt.Sprintf("%s-%d", name, time.Now().UnixNano())
	raw, err := json.Marshal(data)
	c.s.Require().NoError(err)
	c.s.Require().NoError(c.ws.WriteJSON(Frame{Event: name, RequestID: requestID, Data: raw}))
	for {
		frame := c.Next()
		if frame.Event == "ack" && frame.RequestID == requestID {
			return frame.Data
		}
	}
}

// Next reads one frame, failing the test after a few seconds
func (c *WsClient) Next() Frame {
	c.s.Require().NoError(c.ws.SetReadDeadline(time.Now().Add(5 * time.Second)))
	var frame Frame
	c.s.Require().NoError(c.ws.ReadJSON(&frame))
	return frame
}

// WaitFor reads frames until one with the given event name arrives
func (c *WsClient) WaitFor(name string) Frame {
	for {
		if frame := c.Next(); frame.Event == name {
			return frame
		}
	}
}
