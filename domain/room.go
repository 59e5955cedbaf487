package domain

import "strings"

const roomPrefix = "room:"

// RoomID is the identifier supplied by clients. The transport group it maps to
// is derived with Name.
type RoomID string

// Name returns the deterministic transport room name, "room:<roomId>".
func (r RoomID) Name() string {
	return roomPrefix + string(r)
}

func (r RoomID) IsZero() bool {
	return strings.TrimSpace(string(r)) == ""
}
