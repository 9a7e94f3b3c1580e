package server

import (
	"encoding/json"
	"time"
)

// MessageType represents a WebSocket message type with type safety
type MessageType string

const (
	// Client to server messages
	MessageTypeJoin         MessageType = "join"
	MessageTypeRequestState MessageType = "request_state"
	MessageTypeBid          MessageType = "bid"
	MessageTypePlay         MessageType = "play"
	MessageTypeContinue     MessageType = "continue"

	// Server to client messages
	MessageTypeJoined MessageType = "joined"
	MessageTypeState  MessageType = "state"
	MessageTypeError  MessageType = "error"
)

func (mt MessageType) String() string {
	return string(mt)
}

// Message represents the base WebSocket message structure
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewMessage creates a new message with the current timestamp
func NewMessage(messageType MessageType, data interface{}) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: time.Now(),
	}, nil
}

// Client → Server Messages

type JoinData struct {
	Name string `json:"name"`
}

// BidData carries an auction action. Bid is "query", "pass", or a
// suit name for a suit bid.
type BidData struct {
	Bid string `json:"bid"`
}

type PlayCardData struct {
	Seat  string `json:"seat"`
	Index int    `json:"index"`
}

// Server → Client Messages

type JoinedData struct {
	Name string `json:"name"`
	Seat string `json:"seat"`
}

type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
