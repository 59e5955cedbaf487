package runtime

import (
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/errors"
	"chat-relay/infrastructure/websocket"
	"chat-relay/mocks"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type routerFixture struct {
	hub      *websocket.Hub
	registry *Registry
	router   *SignalRouter
	now      time.Time
}

func newRouterFixture(opts ...RouterOption) *routerFixture {
	f := &routerFixture{
		hub:      websocket.NewHub(testLogger()),
		registry: NewRegistry(),
		now:      time.Now(),
	}
	opts = append(opts, WithClock(func() time.Time { return f.now }))
	f.router = NewSignalRouter(testLogger(), f.registry, NewDedupCache(time.Second), f.hub,
		domain.DefaultSignalPolicy(), opts...)
	return f
}

func sender() *domain.Identity {
	return &domain.Identity{UserID: "S", Model: domain.ParentModel}
}

func TestSignalRouter_Offer_Scenario(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture()
	room := domain.RoomID("R")

	s := connect(t, f.hub, f.registry, "s", "S", room)
	c1 := connect(t, f.hub, f.registry, "c1", "U", room)
	c2 := connect(t, f.hub, f.registry, "c2", "U", room)
	other := connect(t, f.hub, f.registry, "o", "O", room)

	offer := domain.Signal{SignalType: "offer", TargetID: "U", RoomID: room, Data: json.RawMessage(`{"sdp":"v=0"}`)}

	// When S sends an offer to U
	result, err := f.router.Route("s", sender(), offer)

	// Then only the newest connection of U receives it
	req.NoError(err)
	req.Equal(SignalResult{OK: true, Type: "offer", Recipients: []domain.ConnectionID{"c2"}}, result)
	req.Len(named(drain(t, c2), string(event.SignalName)), 1)
	req.Empty(drain(t, c1))
	req.Empty(drain(t, other))
	req.Empty(drain(t, s))

	// When the identical offer is resubmitted 200ms later
	f.now = f.now.Add(200 * time.Millisecond)
	result, err = f.router.Route("s", sender(), offer)

	// Then it is absorbed
	req.NoError(err)
	req.True(result.Deduped)
	req.Empty(result.Recipients)
	req.Empty(drain(t, c2))

	// When it is resubmitted 1100ms after the first one
	f.now = f.now.Add(900 * time.Millisecond)
	result, err = f.router.Route("s", sender(), offer)

	// Then it is delivered again, still to c2 only
	req.NoError(err)
	req.False(result.Deduped)
	req.Equal([]domain.ConnectionID{"c2"}, result.Recipients)
	req.Len(drain(t, c2), 1)
	req.Empty(drain(t, c1))
}

func TestSignalRouter_MultiTarget_Reaches_All_Devices(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture()

	connect(t, f.hub, f.registry, "s", "S", "R")
	peers := []*websocket.BufferedPeer{
		connect(t, f.hub, f.registry, "u1", "U"),
		connect(t, f.hub, f.registry, "u2", "U"),
		connect(t, f.hub, f.registry, "u3", "U"),
	}

	// When a call request, multi-target, is sent to U
	result, err := f.router.Route("s", sender(), domain.Signal{SignalType: "Call-Request", TargetID: "U", RoomID: "R"})

	// Then all three devices ring
	req.NoError(err)
	req.Equal("Call-Request", result.Type)
	req.ElementsMatch([]domain.ConnectionID{"u1", "u2", "u3"}, result.Recipients)
	req.False(result.FellBack)
	for _, peer := range peers {
		frames := drain(t, peer)
		req.Len(frames, 1)
		req.Contains(string(frames[0].Data), `"signalType":"call-request"`)
	}
}

func TestSignalRouter_Offline_Target_Falls_Back_To_Room(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	tasks := mocks.NewMockITaskRunner(ctrl)
	notifier := mocks.NewMockOfflineNotifier(ctrl)
	f := newRouterFixture(WithOfflineNotifier(tasks, notifier))

	s := connect(t, f.hub, f.registry, "s", "S", "R")
	a := connect(t, f.hub, f.registry, "a", "A", "R")
	b := connect(t, f.hub, f.registry, "b", "B", "R")
	signal := domain.Signal{SignalType: "call-request", TargetID: "U", RoomID: "R"}

	// Given the offline notification is spawned as a background task
	tasks.EXPECT().Spawn("offline-notification", gomock.Any()).
		Do(func(_ string, task func(ctx context.Context) error) {
			req.NoError(task(context.Background()))
		})
	notifier.EXPECT().NotifyOffline(gomock.Any(), "U", gomock.Any()).Return(nil)

	// When U has no live connection at all
	result, err := f.router.Route("s", sender(), signal)

	// Then the whole room but the sender is reached
	req.NoError(err)
	req.True(result.FellBack)
	req.Equal([]domain.ConnectionID{"a", "b"}, result.Recipients)
	req.Len(drain(t, a), 1)
	req.Len(drain(t, b), 1)
	req.Empty(drain(t, s))
}

func TestSignalRouter_RoomScoped_Target_Outside_Room_Falls_Back(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	tasks := mocks.NewMockITaskRunner(ctrl)
	notifier := mocks.NewMockOfflineNotifier(ctrl)
	f := newRouterFixture(WithOfflineNotifier(tasks, notifier))

	connect(t, f.hub, f.registry, "s", "S", "R")
	member := connect(t, f.hub, f.registry, "m", "M", "R")
	target := connect(t, f.hub, f.registry, "u1", "U", "elsewhere")

	// Given U is online, nobody is told U is offline
	tasks.EXPECT().Spawn(gomock.Any(), gomock.Any()).Times(0)

	// When a room-scoped answer targets U, connected but not in R
	result, err := f.router.Route("s", sender(), domain.Signal{SignalType: "answer", TargetID: "U", RoomID: "R"})

	// Then it falls back to the room, excluding the sender
	req.NoError(err)
	req.True(result.FellBack)
	req.Equal([]domain.ConnectionID{"m"}, result.Recipients)
	req.Len(drain(t, member), 1)
	req.Empty(drain(t, target))
}

func TestSignalRouter_Untargeted_Broadcasts_Except_Sender(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture()

	s := connect(t, f.hub, f.registry, "s", "S", "R")
	a := connect(t, f.hub, f.registry, "a", "A", "R")
	outsider := connect(t, f.hub, f.registry, "x", "X", "other")

	result, err := f.router.Route("s", sender(), domain.Signal{SignalType: "ice-candidate", RoomID: "R"})

	req.NoError(err)
	req.Equal([]domain.ConnectionID{"a"}, result.Recipients)
	req.Len(drain(t, a), 1)
	req.Empty(drain(t, s))
	req.Empty(drain(t, outsider))
}

func TestSignalRouter_Not_Dedup_Eligible_Always_Delivers(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture()

	connect(t, f.hub, f.registry, "s", "S", "R")
	u := connect(t, f.hub, f.registry, "u1", "U", "R")
	candidate := domain.Signal{SignalType: "ice-candidate", TargetID: "U", RoomID: "R", Data: json.RawMessage(`{"c":1}`)}

	for range 2 {
		result, err := f.router.Route("s", sender(), candidate)
		req.NoError(err)
		req.False(result.Deduped)
	}
	req.Len(drain(t, u), 2)
}

func TestSignalRouter_Unauthorized(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture()
	a := connect(t, f.hub, f.registry, "a", "A", "R")
	connect(t, f.hub, f.registry, "anon", "", "R")

	_, err := f.router.Route("anon", nil, domain.Signal{SignalType: "offer", RoomID: "R"})

	req.ErrorIs(err, errors.ErrUnauthorized)
	req.Empty(drain(t, a))
}

func TestSignalRouter_Disconnected_Device_Is_Never_Targeted(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture()
	tracker := NewPresenceTracker(f.hub, testLogger())

	connect(t, f.hub, f.registry, "s", "S", "R")
	c1 := connect(t, f.hub, f.registry, "c1", "U", "R")
	connect(t, f.hub, f.registry, "c2", "U", "R")

	// When the newest device disconnects
	tracker.Disconnect("c2")
	f.registry.Unregister("U", "c2")

	// Then the previous one becomes the target
	result, err := f.router.Route("s", sender(), domain.Signal{SignalType: "offer", TargetID: "U", RoomID: "R"})
	req.NoError(err)
	req.Equal([]domain.ConnectionID{"c1"}, result.Recipients)
	req.Len(named(drain(t, c1), string(event.SignalName)), 1)
}

func TestSignalRouter_Stale_Registry_Falls_Back(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture()
	tracker := NewPresenceTracker(f.hub, testLogger())

	connect(t, f.hub, f.registry, "s", "S", "R")
	a := connect(t, f.hub, f.registry, "a", "A", "R")
	connect(t, f.hub, f.registry, "u1", "U", "R")

	// Given the transport is gone but the registry not cleaned yet
	tracker.Disconnect("u1")
	drain(t, a)

	// When a signal targets U
	result, err := f.router.Route("s", sender(), domain.Signal{SignalType: "offer", TargetID: "U", RoomID: "R"})

	// Then the room receives it instead of a silent drop
	req.NoError(err)
	req.True(result.FellBack)
	req.Equal([]domain.ConnectionID{"a"}, result.Recipients)
}

func TestSignalRouter_Own_Other_Device(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture()

	u1 := connect(t, f.hub, f.registry, "u1", "U", "R")
	u2 := connect(t, f.hub, f.registry, "u2", "U", "R")

	// When the newest device of U signals U itself
	result, err := f.router.Route("u2", &domain.Identity{UserID: "U"}, domain.Signal{SignalType: "call-ended", TargetID: "U", RoomID: "R"})

	// Then the sending connection is skipped
	req.NoError(err)
	req.Equal([]domain.ConnectionID{"u1"}, result.Recipients)
	req.Len(drain(t, u1), 1)
	req.Empty(drain(t, u2))
}

func TestSignalRouter_Sender_Is_The_Authenticated_Identity(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture()
	connect(t, f.hub, f.registry, "s", "S", "R")
	connect(t, f.hub, f.registry, "m", "M", "R")
	u := connect(t, f.hub, f.registry, "u1", "U", "R")
	offer := domain.Signal{SignalType: "offer", SenderID: "S", TargetID: "U", RoomID: "R", Data: json.RawMessage(`{"sdp":"v=0"}`)}

	// Given S sent an offer to U
	result, err := f.router.Route("s", sender(), offer)
	req.NoError(err)
	req.False(result.Deduped)

	// When M sends the identical offer while claiming to be S
	result, err = f.router.Route("m", &domain.Identity{UserID: "M"}, offer)

	// Then it is not absorbed as a retry of S's offer
	req.NoError(err)
	req.False(result.Deduped)
	req.Equal([]domain.ConnectionID{"u1"}, result.Recipients)

	// And U sees each offer under its real sender
	frames := drain(t, u)
	req.Len(frames, 2)
	senders := make([]string, 0, len(frames))
	for _, frame := range frames {
		var relayed domain.Signal
		req.NoError(json.Unmarshal(frame.Data, &relayed))
		req.Equal(domain.MessageTypeWebRTCSignal, relayed.MessageType)
		senders = append(senders, relayed.SenderID)
	}
	req.Equal([]string{"S", "M"}, senders)
}

func TestSignalRouter_SendToUser(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture()
	member := connect(t, f.hub, f.registry, "m", "M", "R")
	u1 := connect(t, f.hub, f.registry, "u1", "U")
	u2 := connect(t, f.hub, f.registry, "u2", "U")
	alert := event.NewNotification("geofenceAlert", map[string]any{"zone": "school"})

	// When a collaborator pushes an alert to every device of U
	recipients := f.router.SendToUser("U", alert, domain.DeliveryOptions{MultiTarget: true})
	req.ElementsMatch([]domain.ConnectionID{"u1", "u2"}, recipients)
	frames := drain(t, u1)
	req.Len(frames, 1)
	req.Equal("geofenceAlert", frames[0].Event)
	req.Len(drain(t, u2), 1)

	// When the user is offline and no fallback is requested, nothing happens
	req.Empty(f.router.SendToUser("nobody", alert, domain.DeliveryOptions{RoomID: "R"}))
	req.Empty(drain(t, member))

	// When fallback is requested, the room gets it
	req.Equal([]domain.ConnectionID{"m"}, f.router.SendToUser("nobody", alert, domain.DeliveryOptions{RoomID: "R", FallbackToRoom: true}))

	// Then BroadcastToRoom reaches every member
	req.Equal([]domain.ConnectionID{"m"}, f.router.BroadcastToRoom("R", alert))
}
