// Package domain contains core concepts of the relay.
// No runtime, network, or storage logic should be added here.
package domain

import (
	"slices"

	"github.com/google/uuid"
)

type UserModel string

const (
	ParentModel UserModel = "parent"
	ChildModel  UserModel = "child"
)

// Identity is the authenticated logical user attached to a connection.
type Identity struct {
	UserID string
	Model  UserModel
	Roles  []string
}

func (i Identity) HasRole(role string) bool {
	return slices.Contains(i.Roles, role)
}

// ConnectionID is an opaque handle for one live transport session.
type ConnectionID string

func NewConnectionID() ConnectionID {
	return ConnectionID(uuid.NewString())
}
