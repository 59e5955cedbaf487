package domain

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const MessageTypeWebRTCSignal = "webrtc_signal"

// SignalType is always stored lower-cased, see NormalizeSignalType.
type SignalType string

const (
	SignalOffer         SignalType = "offer"
	SignalAnswer        SignalType = "answer"
	SignalICECandidate  SignalType = "ice-candidate"
	SignalCallRequest   SignalType = "call-request"
	SignalCallAccepted  SignalType = "call-accepted"
	SignalCallRejected  SignalType = "call-rejected"
	SignalCallCancelled SignalType = "call-cancelled"
	SignalCallEnded     SignalType = "call-ended"
)

func NormalizeSignalType(raw string) SignalType {
	return SignalType(strings.ToLower(strings.TrimSpace(raw)))
}

// Signal is an ephemeral call negotiation message routed between users.
// An empty TargetID means the whole room is addressed.
type Signal struct {
	MessageType string          `json:"messageType"`
	SignalType  string          `json:"signalType" validate:"required,max=64"`
	SenderID    string          `json:"senderId,omitempty"`
	TargetID    string          `json:"targetId,omitempty"`
	RoomID      RoomID          `json:"roomId" validate:"required,max=128"`
	Data        json.RawMessage `json:"data,omitempty"`
}

func (s Signal) Type() SignalType {
	return NormalizeSignalType(s.SignalType)
}

// Fingerprint identifies a logical signal for deduplication. The payload
// part is a 64-bit hash so the key length stays bounded whatever the size of
// the SDP or ICE blob.
func (s Signal) Fingerprint() string {
	return strings.Join([]string{
		string(s.Type()),
		s.SenderID,
		s.TargetID,
		string(s.RoomID),
		strconv.FormatUint(xxhash.Sum64(s.Data), 16),
	}, "|")
}

// SignalPolicy partitions signal types into the three sets driving routing.
// A type may belong to any number of them.
type SignalPolicy struct {
	roomScoped    map[SignalType]struct{}
	multiTarget   map[SignalType]struct{}
	dedupEligible map[SignalType]struct{}
}

func NewSignalPolicy(roomScoped, multiTarget, dedupEligible []string) SignalPolicy {
	return SignalPolicy{
		roomScoped:    toTypeSet(roomScoped),
		multiTarget:   toTypeSet(multiTarget),
		dedupEligible: toTypeSet(dedupEligible),
	}
}

func DefaultSignalPolicy() SignalPolicy {
	return NewSignalPolicy(
		[]string{"offer", "answer", "ice-candidate", "call-accepted", "call-ended"},
		[]string{"call-request", "call-cancelled", "call-ended"},
		[]string{"offer", "answer", "call-request", "call-accepted", "call-rejected", "call-cancelled", "call-ended"},
	)
}

func (p SignalPolicy) IsRoomScoped(t SignalType) bool {
	_, ok := p.roomScoped[t]
	return ok
}

func (p SignalPolicy) IsMultiTarget(t SignalType) bool {
	_, ok := p.multiTarget[t]
	return ok
}

func (p SignalPolicy) IsDedupEligible(t SignalType) bool {
	_, ok := p.dedupEligible[t]
	return ok
}

func toTypeSet(types []string) map[SignalType]struct{} {
	set := make(map[SignalType]struct{}, len(types))
	for _, t := range lo.Compact(lo.Map(types, func(raw string, _ int) SignalType {
		return NormalizeSignalType(raw)
	})) {
		set[t] = struct{}{}
	}
	return set
}

// DeliveryOptions drive a targeted delivery to a user's connections.
type DeliveryOptions struct {
	RoomID         RoomID
	RoomScoped     bool
	MultiTarget    bool
	FallbackToRoom bool
	// Except is never delivered to, neither directly nor through the fallback.
	Except ConnectionID
}

// CallSignal is the call negotiation variant carried by the "signal" event.
type CallSignal struct {
	ID          uuid.UUID       `json:"id"`
	RoomID      RoomID          `json:"roomId" validate:"required,max=128"`
	SenderModel UserModel       `json:"senderModel" validate:"omitempty,oneof=parent child"`
	SenderID    string          `json:"senderId"`
	Type        string          `json:"type" validate:"required,max=64"`
	Payload     json.RawMessage `json:"payload,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}
