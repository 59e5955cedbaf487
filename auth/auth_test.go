package auth

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testSecret = "my_strong_and_long_secret_key_2026"

func TestTokenManager_Authenticate(t *testing.T) {
	req := require.New(t)
	manager := NewTokenManager(testSecret, "chat-relay")

	// Given a token minted for a child
	identity := domain.Identity{UserID: "kid-1", Model: domain.ChildModel, Roles: []string{"member"}}
	token, err := manager.GenerateToken(identity, time.Hour)
	req.NoError(err)

	// Then the identity is restored, with or without the Bearer prefix
	got, err := manager.Authenticate(context.Background(), token)
	req.NoError(err)
	req.Equal(identity, got)

	got, err = manager.Authenticate(context.Background(), "Bearer "+token)
	req.NoError(err)
	req.Equal(identity, got)
}

func TestTokenManager_Rejects(t *testing.T) {
	manager := NewTokenManager(testSecret, "chat-relay")
	identity := domain.Identity{UserID: "parent-1"}

	expired, err := manager.GenerateToken(identity, -time.Minute)
	require.NoError(t, err)
	foreign, err := NewTokenManager("another_secret_key_of_enough_size", "chat-relay").GenerateToken(identity, time.Hour)
	require.NoError(t, err)
	otherIssuer, err := NewTokenManager(testSecret, "someone-else").GenerateToken(identity, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty token", ""},
		{"garbage", "not-a-jwt"},
		{"expired", expired},
		{"signed with another secret", foreign},
		{"issued by someone else", otherIssuer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			_, err := manager.Authenticate(context.Background(), tt.token)
			req.ErrorIs(err, errors.ErrInvalidToken)
		})
	}
}

func TestTokenManager_DefaultsToParentModel(t *testing.T) {
	req := require.New(t)
	manager := NewTokenManager(testSecret, "chat-relay")
	token, err := manager.GenerateToken(domain.Identity{UserID: "p-1"}, time.Hour)
	req.NoError(err)

	identity, err := manager.Authenticate(context.Background(), token)
	req.NoError(err)
	req.Equal(domain.ParentModel, identity.Model)
}

func TestValidatePayload(t *testing.T) {
	tests := []struct {
		name    string
		payload any
		wantErr bool
	}{
		{"Valid chat payload", domain.ChatPayload{RoomID: "42", Content: "hello"}, false},
		{"Missing room", domain.ChatPayload{Content: "hello"}, true},
		{"Missing content", domain.ChatPayload{RoomID: "42"}, true},
		{"Room id too long", domain.ChatPayload{RoomID: domain.RoomID(strings.Repeat("r", 129)), Content: "x"}, true},
		{"Valid signal", domain.Signal{SignalType: "offer", RoomID: "42"}, false},
		{"Signal without type", domain.Signal{RoomID: "42"}, true},
		{"Call signal with unknown model", domain.CallSignal{RoomID: "42", Type: "ring", SenderModel: "robot"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			err := ValidatePayload(tt.payload)
			if tt.wantErr {
				req.ErrorIs(err, errors.ErrInvalidPayload)
			} else {
				req.NoError(err)
			}
		})
	}
}
