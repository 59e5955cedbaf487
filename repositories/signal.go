package repositories

import (
	"chat-relay/domain"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const DefaultSignalTTL = 24 * time.Hour

// CallSignalRepository records call negotiation signals. Records expire
// after the TTL since they only matter while a call is being set up.
type CallSignalRepository struct {
	db  *badger.DB
	ttl time.Duration
	log *slog.Logger
	now func() time.Time
}

func NewCallSignalRepository(db *badger.DB, log *slog.Logger, ttl time.Duration) *CallSignalRepository {
	if ttl <= 0 {
		ttl = DefaultSignalTTL
	}
	return &CallSignalRepository{db: db, ttl: ttl, log: log, now: time.Now}
}

// RecordCallSignal stamps the signal with the identity of its sender
func (r *CallSignalRepository) RecordCallSignal(_ context.Context, identity domain.Identity, signal domain.CallSignal) (domain.CallSignal, error) {
	signal.ID = uuid.New()
	signal.CreatedAt = r.now().UTC()
	signal.SenderID = identity.UserID
	signal.SenderModel = identity.Model

	bytes, err := json.Marshal(signal)
	if err != nil {
		return domain.CallSignal{}, err
	}
	key := []byte(fmt.Sprintf("%s%019d:%s", roomPrefix("sig", signal.RoomID), signal.CreatedAt.UnixNano(), signal.ID))
	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry(key, bytes).WithTTL(r.ttl))
	})
	if err != nil {
		return domain.CallSignal{}, fmt.Errorf("store call signal: %w", err)
	}
	r.log.Debug("Call signal recorded", "signal_id", signal.ID, "room_id", signal.RoomID, "type", signal.Type)
	return signal, nil
}

// ListCallSignals returns the unexpired signals of a room, newest first
func (r *CallSignalRepository) ListCallSignals(roomID domain.RoomID, limit int) ([]domain.CallSignal, error) {
	var signals []domain.CallSignal
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(roomPrefix("sig", roomID))
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(append(prefix, 0xFF)); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(signals) == limit {
				break
			}
			var signal domain.CallSignal
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &signal)
			})
			if err != nil {
				return err
			}
			signals = append(signals, signal)
		}
		return nil
	})
	return signals, err
}
