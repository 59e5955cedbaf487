package runtime

import (
	"chat-relay/auth"
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/errors"
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// ChatRelay persists chat messages through the collaborator and broadcasts
// the stored result to the room. Chat is never deduplicated here.
type ChatRelay struct {
	persister        contract.MessagePersister
	transport        contract.Transport
	moderator        contract.ContentModerator
	maxContentLength int
	log              *slog.Logger
}

func NewChatRelay(
	log *slog.Logger,
	persister contract.MessagePersister,
	transport contract.Transport,
	moderator contract.ContentModerator,
	maxContentLength int,
) *ChatRelay {
	return &ChatRelay{
		persister:        persister,
		transport:        transport,
		moderator:        moderator,
		maxContentLength: maxContentLength,
		log:              log,
	}
}

// SendText returns the persisted message once it has been broadcast. On
// failure nothing is broadcast and the error only goes back to the caller.
func (c *ChatRelay) SendText(ctx context.Context, identity *domain.Identity, payload domain.ChatPayload) (domain.Message, error) {
	if identity == nil {
		return domain.Message{}, fmt.Errorf("send text: %w", errors.ErrUnauthorized)
	}
	if err := c.validate(payload); err != nil {
		return domain.Message{}, err
	}
	if payload.MessageType == "" {
		payload.MessageType = domain.MessageTypeText
	}
	if c.moderator != nil {
		moderated := c.moderator.Moderate(payload.Content)
		if len(moderated.CensoredWords) > 0 {
			c.log.Info("Message censored", "user_id", identity.UserID, "room_id", payload.RoomID,
				"words", len(moderated.CensoredWords))
		}
		payload.Content = moderated.Content
		payload.Language = moderated.Language
	}

	message, err := c.persist(ctx, *identity, payload)
	if err != nil {
		c.log.Warn("Message not persisted", "user_id", identity.UserID, "room_id", payload.RoomID, "error", err)
		return domain.Message{}, err
	}

	recipients := c.transport.EmitToRoom(message.RoomID, event.NewMessage(message))
	c.log.Debug("Message relayed", "message_id", message.ID, "room_id", message.RoomID, "recipients", len(recipients))
	return message, nil
}

func (c *ChatRelay) validate(payload domain.ChatPayload) error {
	if err := auth.ValidatePayload(payload); err != nil {
		return err
	}
	if strings.TrimSpace(payload.Content) == "" {
		return fmt.Errorf("content is blank: %w", errors.ErrInvalidPayload)
	}
	if c.maxContentLength > 0 && len([]rune(payload.Content)) > c.maxContentLength {
		return fmt.Errorf("content exceeds %d characters: %w", c.maxContentLength, errors.ErrInvalidPayload)
	}
	return nil
}

// persist converts collaborator failures into ErrPersistence and a
// collaborator panic into ErrOperationFailed, so the connection survives.
func (c *ChatRelay) persist(ctx context.Context, identity domain.Identity, payload domain.ChatPayload) (message domain.Message, err error) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error("Persistence collaborator panicked", "panic", r)
			err = fmt.Errorf("persist message: %w", errors.ErrOperationFailed)
		}
	}()
	message, err = c.persister.PersistMessage(ctx, identity, payload)
	if err != nil {
		return domain.Message{}, fmt.Errorf("%w: %w", errors.ErrPersistence, err)
	}
	return message, nil
}
