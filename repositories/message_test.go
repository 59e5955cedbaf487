package repositories

import (
	"chat-relay/domain"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// stepClock returns a clock moving one minute forward on every call
func stepClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Minute)
		return current
	}
}

func Test_Record_Multiple_Message(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openDB(t), slog.Default(), nil)
	repository.now = stepClock(time.Now())
	ctx := context.Background()

	var stored []domain.Message
	for _, sender := range []string{"Alice", "Bob", "Clara"} {
		message, err := repository.PersistMessage(ctx,
			domain.Identity{UserID: sender, Model: domain.ParentModel},
			domain.ChatPayload{RoomID: "1", Content: "this message will self destruct in 5 seconds", MessageType: domain.MessageTypeText})
		req.NoError(err)
		stored = append(stored, message)
	}

	fetched, _, err := repository.GetMessages("1", nil)
	req.NoError(err)
	req.Len(fetched, 3)
	// Newest first
	req.Equal("Clara", fetched[0].SenderID)
	req.Equal("Alice", fetched[2].SenderID)
	req.Equal(stored[2].ID, fetched[0].ID)
	req.True(stored[2].CreatedAt.Equal(fetched[0].CreatedAt))
	req.Equal(domain.ParentModel, fetched[0].SenderModel)
}

func Test_Record_Multiple_Message_And_Limit(t *testing.T) {
	req := require.New(t)
	limit := 2
	repository := NewMessageRepository(openDB(t), slog.Default(), &limit)
	repository.now = stepClock(time.Now())
	ctx := context.Background()

	for _, sender := range []string{"Alice", "Bob", "Clara"} {
		_, err := repository.PersistMessage(ctx, domain.Identity{UserID: sender},
			domain.ChatPayload{RoomID: "1", Content: "hello"})
		req.NoError(err)
	}

	firstPage, cursor, err := repository.GetMessages("1", nil)
	req.NoError(err)
	req.Len(firstPage, limit)
	req.Equal("Clara", firstPage[0].SenderID)
	req.Equal("Bob", firstPage[1].SenderID)

	// When reading from the cursor
	secondPage, _, err := repository.GetMessages("1", cursor)
	req.NoError(err)
	req.Len(secondPage, 1)
	req.Equal("Alice", secondPage[0].SenderID)
}

func Test_Rooms_Sharing_A_Prefix_Are_Isolated(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openDB(t), slog.Default(), nil)
	ctx := context.Background()

	_, err := repository.PersistMessage(ctx, domain.Identity{UserID: "alice"}, domain.ChatPayload{RoomID: "1", Content: "in one"})
	req.NoError(err)
	_, err = repository.PersistMessage(ctx, domain.Identity{UserID: "bob"}, domain.ChatPayload{RoomID: "1:2", Content: "in one-two"})
	req.NoError(err)

	fetched, _, err := repository.GetMessages("1", nil)
	req.NoError(err)
	req.Len(fetched, 1)
	req.Equal("in one", fetched[0].Content)
}

func Test_Client_Message_Id_Is_Stored_Once(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openDB(t), slog.Default(), nil)
	repository.now = stepClock(time.Now())
	ctx := context.Background()
	identity := domain.Identity{UserID: "alice"}
	payload := domain.ChatPayload{
		RoomID:          "42",
		Content:         "hi",
		ClientMessageID: "c-1",
		Metadata:        map[string]any{"device": "tablet"},
	}

	// When the client retries the same message
	first, err := repository.PersistMessage(ctx, identity, payload)
	req.NoError(err)
	second, err := repository.PersistMessage(ctx, identity, payload)
	req.NoError(err)

	// Then the first write is returned and only one record exists
	req.Equal(first.ID, second.ID)
	fetched, _, err := repository.GetMessages("42", nil)
	req.NoError(err)
	req.Len(fetched, 1)
	req.Equal("c-1", fetched[0].ClientMessageID)
	req.Equal(map[string]any{"device": "tablet"}, fetched[0].Metadata)

	// A different sender reusing the id gets its own message
	other, err := repository.PersistMessage(ctx, domain.Identity{UserID: "bob"}, payload)
	req.NoError(err)
	req.NotEqual(first.ID, other.ID)
}
