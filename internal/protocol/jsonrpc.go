package protocol

import (
	"encoding/json"
	"fmt"
)

// Message represents a JSON-RPC 2.0 message (request, response, or notification).
type Message struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method,omitempty"`
	Params  json.RawMessage `json:"params,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   json.RawMessage `json:"error,omitempty"`
}

func ParseMessage(data []byte) (*Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("parse JSON-RPC message: %w", err)
	}
	return &msg, nil
}

// IsRequest returns true if message has both id and method (a request).
func (m *Message) IsRequest() bool {
	return len(m.ID) > 0 && m.Method != ""
}

// IsResponse returns true if message has id but no method (a response).
func (m *Message) IsResponse() bool {
	return len(m.ID) > 0 && m.Method == ""
}

// IsNotification returns true if message has method but no id.
func (m *Message) IsNotification() bool {
	return len(m.ID) == 0 && m.Method != ""
}

// IsError returns true if message carries a JSON-RPC error object.
func (m *Message) IsError() bool {
	return len(m.Error) > 0
}

func (m *Message) Serialize() ([]byte, error) {
	return json.Marshal(m)
}
