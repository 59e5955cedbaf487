package auth

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const ServiceRole = "service"

// CustomClaims defines the structure of the data stored inside the JWT.
type CustomClaims struct {
	UserID string           `json:"user_id"`
	Model  domain.UserModel `json:"model,omitempty"`
	Roles  []string         `json:"roles"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies HS256 tokens. It is the default
// authenticator of the relay; token issuance for end users belongs to the
// account service and only GenerateToken's development use lives here.
type TokenManager struct {
	secret []byte
	issuer string
}

func NewTokenManager(secret, issuer string) *TokenManager {
	return &TokenManager{secret: []byte(secret), issuer: issuer}
}

// GenerateToken creates a signed JWT for a specific identity.
func (m *TokenManager) GenerateToken(identity domain.Identity, duration time.Duration) (string, error) {
	now := time.Now()
	claims := &CustomClaims{
		UserID: identity.UserID,
		Model:  identity.Model,
		Roles:  identity.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    m.issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ValidateToken parses and validates the signature and expiration of a JWT string.
func (m *TokenManager) ValidateToken(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{},
		func(token *jwt.Token) (interface{}, error) {
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, errors.ErrInvalidToken
	}
	return claims, nil
}

// Authenticate turns a bearer credential into the identity of the caller.
func (m *TokenManager) Authenticate(_ context.Context, token string) (domain.Identity, error) {
	claims, err := m.ValidateToken(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))
	if err != nil {
		return domain.Identity{}, err
	}
	model := claims.Model
	if model == "" {
		model = domain.ParentModel
	}
	return domain.Identity{UserID: claims.UserID, Model: model, Roles: claims.Roles}, nil
}
