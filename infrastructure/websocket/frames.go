package websocket

import (
	"chat-relay/domain/event"
	"chat-relay/errors"
	"encoding/json"
)

const ackEvent = "ack"

// Frame is the envelope of every inbound websocket message.
type Frame struct {
	Event     string          `json:"event"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

type outboundFrame struct {
	Event     string `json:"event"`
	RequestID string `json:"request_id,omitempty"`
	Data      any    `json:"data,omitempty"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorAck struct {
	OK    bool      `json:"ok"`
	Error ErrorBody `json:"error"`
}

func encodeEvent(evt event.Event) ([]byte, error) {
	return json.Marshal(outboundFrame{Event: string(evt.Name), Data: evt.Data})
}

func encodeAck(requestID string, payload any) ([]byte, error) {
	return json.Marshal(outboundFrame{Event: ackEvent, RequestID: requestID, Data: payload})
}

func encodeError(requestID string, err error) ([]byte, error) {
	return encodeAck(requestID, errorAck{
		OK:    false,
		Error: ErrorBody{Code: errors.Code(err), Message: errors.Message(err)},
	})
}
