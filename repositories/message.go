package repositories

import (
	"chat-relay/domain"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// MessageRepository is the default chat persistence collaborator.
type MessageRepository struct {
	db            *badger.DB
	log           *slog.Logger
	limitMessages *int
	now           func() time.Time
}

func NewMessageRepository(db *badger.DB, log *slog.Logger, limitMessages *int) *MessageRepository {
	return &MessageRepository{db: db, log: log, limitMessages: limitMessages, now: time.Now}
}

// PersistMessage stores a chat message in BadgerDB.
// The key is formatted as "msg:{room_id}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding (lexicographical order).
//  2. Prevent data loss by using UUID as a collision disconnector if two messages
//     arrive at the same nanosecond.
//
// A message carrying a client message id is stored once per sender: a retry
// returns the message stored the first time.
func (m *MessageRepository) PersistMessage(_ context.Context, identity domain.Identity, payload domain.ChatPayload) (domain.Message, error) {
	message := domain.Message{
		ID:              uuid.New(),
		RoomID:          payload.RoomID,
		SenderID:        identity.UserID,
		SenderModel:     identity.Model,
		Content:         payload.Content,
		MessageType:     payload.MessageType,
		Language:        payload.Language,
		ClientMessageID: payload.ClientMessageID,
		Metadata:        payload.Metadata,
		CreatedAt:       m.now().UTC(),
	}
	key := messageKey(message.RoomID, message.CreatedAt, message.ID)

	err := m.db.Update(func(txn *badger.Txn) error {
		if message.ClientMessageID != "" {
			existing, found, err := m.findByClientID(txn, message)
			if err != nil {
				return err
			}
			if found {
				m.log.Debug("Message already stored", "client_message_id", message.ClientMessageID)
				message = existing
				return nil
			}
			if err = txn.Set(clientIDKey(message), key); err != nil {
				return err
			}
		}

		bytes, err := encodeMessage(message)
		if err != nil {
			return err
		}
		return txn.Set(key, bytes)
	})
	if err != nil {
		return domain.Message{}, fmt.Errorf("store message: %w", err)
	}
	return message, nil
}

// GetMessages retrieves messages for a specific room using a prefix scan, newest first.
// It stops collecting messages once the configured limitMessages is reached.
func (m *MessageRepository) GetMessages(roomID domain.RoomID, cursor *string) ([]domain.Message, *string, error) {
	var byteMessages [][]byte
	var lastKey string
	err := m.db.View(func(txn *badger.Txn) error {
		prefixStr := roomPrefix("msg", roomID)
		prefix := []byte(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch cursor {
		case nil:
			// Start after the newest possible key then walk backwards
			seekKey = append(prefix, []byte("9999999999999999999")...)
		default:
			seekKey = append(prefix, []byte(*cursor)...)
		}

		it.Seek(seekKey)

		if cursor != nil && it.ValidForPrefix(prefix) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if m.limitMessages != nil && len(byteMessages) == *m.limitMessages {
				m.log.Debug(fmt.Sprintf("Maximum of %d message reached", *m.limitMessages))
				break
			}
			item := it.Item()
			// Memorize cursor part of the actual key
			lastKey = string(item.Key()[len(prefixStr):])
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			byteMessages = append(byteMessages, value)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	messages := make([]domain.Message, 0, len(byteMessages))
	for _, b := range byteMessages {
		message, err := DecodeMessage(b)
		if err != nil {
			return nil, nil, err
		}
		messages = append(messages, message)
	}
	return messages, &lastKey, nil
}

func (m *MessageRepository) findByClientID(txn *badger.Txn, message domain.Message) (domain.Message, bool, error) {
	item, err := txn.Get(clientIDKey(message))
	if err == badger.ErrKeyNotFound {
		return domain.Message{}, false, nil
	}
	if err != nil {
		return domain.Message{}, false, err
	}
	key, err := item.ValueCopy(nil)
	if err != nil {
		return domain.Message{}, false, err
	}
	stored, err := txn.Get(key)
	if err != nil {
		return domain.Message{}, false, err
	}
	value, err := stored.ValueCopy(nil)
	if err != nil {
		return domain.Message{}, false, err
	}
	existing, err := DecodeMessage(value)
	return existing, err == nil, err
}

func messageKey(roomID domain.RoomID, at time.Time, id uuid.UUID) []byte {
	return []byte(fmt.Sprintf("%s%019d:%s", roomPrefix("msg", roomID), at.UnixNano(), id))
}

func clientIDKey(message domain.Message) []byte {
	return []byte(fmt.Sprintf("idx:cmid:%s:%s:%s",
		url.QueryEscape(string(message.RoomID)),
		url.QueryEscape(message.SenderID),
		url.QueryEscape(message.ClientMessageID)))
}

// roomPrefix escapes the room id so that a room named "1:2" never shares
// the prefix of room "1".
func roomPrefix(kind string, roomID domain.RoomID) string {
	return fmt.Sprintf("%s:%s:", kind, url.QueryEscape(string(roomID)))
}

func encodeMessage(message domain.Message) ([]byte, error) {
	fields := map[string]any{
		"id":                message.ID.String(),
		"room_id":           string(message.RoomID),
		"sender_id":         message.SenderID,
		"sender_model":      string(message.SenderModel),
		"content":           message.Content,
		"message_type":      message.MessageType,
		"language":          message.Language,
		"client_message_id": message.ClientMessageID,
		"created_at":        message.CreatedAt.Format(time.RFC3339Nano),
	}
	if len(message.Metadata) > 0 {
		fields["metadata"] = message.Metadata
	}
	record, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, err
	}
	return proto.Marshal(record)
}

// DecodeMessage reads a record written by PersistMessage.
func DecodeMessage(b []byte) (domain.Message, error) {
	var record structpb.Struct
	if err := proto.Unmarshal(b, &record); err != nil {
		return domain.Message{}, err
	}
	fields := record.GetFields()
	id, err := uuid.Parse(fields["id"].GetStringValue())
	if err != nil {
		return domain.Message{}, err
	}
	createdAt, err := time.Parse(time.RFC3339Nano, fields["created_at"].GetStringValue())
	if err != nil {
		return domain.Message{}, err
	}
	message := domain.Message{
		ID:              id,
		RoomID:          domain.RoomID(fields["room_id"].GetStringValue()),
		SenderID:        fields["sender_id"].GetStringValue(),
		SenderModel:     domain.UserModel(fields["sender_model"].GetStringValue()),
		Content:         fields["content"].GetStringValue(),
		MessageType:     fields["message_type"].GetStringValue(),
		Language:        fields["language"].GetStringValue(),
		ClientMessageID: fields["client_message_id"].GetStringValue(),
		CreatedAt:       createdAt,
	}
	if metadata := fields["metadata"].GetStructValue(); metadata != nil {
		message.Metadata = metadata.AsMap()
	}
	return message, nil
}
