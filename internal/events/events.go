package events

import (
	"encoding/json"
	"time"
)

// Event types published by the engine.
const (
	TypePing          = "ping"
	TypeSaved         = "opportunity_saved"
	TypeUnsaved       = "opportunity_unsaved"
	TypeProfileUpdate = "profile_updated"
	TypeImported      = "opportunities_imported"
	TypeCleanup       = "cleanup_done"
)

type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// Make renders an event envelope ready to publish.
func Make(reqID, typ string, data any) string {
	var raw json.RawMessage
	if data != nil {
		b, _ := json.Marshal(data)
		raw = b
	}
	e := Event{
		Type:      typ,
		Version:   1,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}
