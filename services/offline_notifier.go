package services

import (
	"chat-relay/domain"
	"context"
	"log/slog"
)

// LogOfflineNotifier only records that a signal missed its target. It is the
// default hook until a push provider is plugged in.
type LogOfflineNotifier struct {
	log *slog.Logger
}

func NewLogOfflineNotifier(log *slog.Logger) *LogOfflineNotifier {
	return &LogOfflineNotifier{log: log}
}

func (n *LogOfflineNotifier) NotifyOffline(_ context.Context, userID string, signal domain.Signal) error {
	n.log.Info("Signal target is offline", "user_id", userID, "type", signal.Type(),
		"sender_id", signal.SenderID, "room_id", signal.RoomID)
	return nil
}
