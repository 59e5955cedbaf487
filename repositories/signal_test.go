package repositories

import (
	"chat-relay/domain"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCallSignalRepository_Record_And_List(t *testing.T) {
	req := require.New(t)
	repository := NewCallSignalRepository(openDB(t), slog.Default(), time.Hour)
	repository.now = stepClock(time.Now())
	ctx := context.Background()
	identity := domain.Identity{UserID: "alice", Model: domain.ChildModel}

	// Given two signals, one claiming another sender
	first, err := repository.RecordCallSignal(ctx, identity, domain.CallSignal{
		RoomID:  "42",
		Type:    "call-request",
		Payload: json.RawMessage(`{"video":true}`),
	})
	req.NoError(err)
	_, err = repository.RecordCallSignal(ctx, identity, domain.CallSignal{
		RoomID:      "42",
		Type:        "call-ended",
		SenderID:    "alice-tablet",
		SenderModel: domain.ParentModel,
	})
	req.NoError(err)

	// Then both are stamped with the identity
	req.Equal("alice", first.SenderID)
	req.Equal(domain.ChildModel, first.SenderModel)
	req.False(first.CreatedAt.IsZero())

	signals, err := repository.ListCallSignals("42", 0)
	req.NoError(err)
	req.Len(signals, 2)
	req.Equal("call-ended", signals[0].Type)
	req.Equal("alice", signals[0].SenderID)
	req.Equal(domain.ChildModel, signals[0].SenderModel)
	req.Equal(first.ID, signals[1].ID)
	req.JSONEq(`{"video":true}`, string(signals[1].Payload))

	limited, err := repository.ListCallSignals("42", 1)
	req.NoError(err)
	req.Len(limited, 1)
}

func TestCallSignalRepository_Other_Room_Is_Empty(t *testing.T) {
	req := require.New(t)
	repository := NewCallSignalRepository(openDB(t), slog.Default(), 0)

	_, err := repository.RecordCallSignal(context.Background(), domain.Identity{UserID: "alice"},
		domain.CallSignal{RoomID: "42", Type: "offer"})
	req.NoError(err)

	signals, err := repository.ListCallSignals("4", 0)
	req.NoError(err)
	req.Empty(signals)
}
