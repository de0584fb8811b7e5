package ws

import (
	"encoding/json"

	"github.com/WiL-dev/econstruct/internal/model"
	"github.com/WiL-dev/econstruct/internal/session"
)

// Envelope wraps all WebSocket messages with a type discriminator.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Client -> Server messages

type SetFilePayload struct {
	Filename string `json:"filename"`
}

type SetCodePayload struct {
	Code string `json:"code"`
}

type SetLocationPayload struct {
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Label string  `json:"label,omitempty"`
}

type SearchPayload struct {
	Query string `json:"query"`
}

// Server -> Client messages

type SessionStatePayload struct {
	SessionID  string            `json:"session_id"`
	Filename   string            `json:"filename,omitempty"`
	Code       string            `json:"code,omitempty"`
	Coordinate *model.Coordinate `json:"coordinate,omitempty"`
	Ready      bool              `json:"ready"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

// Message type constants
const (
	// Client -> Server
	TypeFileSet        = "file:set"
	TypeCodeSet        = "code:set"
	TypeLocationSet    = "location:set"
	TypeLocationSearch = "location:search"
	TypeSessionClear   = "session:clear"

	// Server -> Client
	TypeSessionState    = "session:state"
	TypeDashboardUpdate = "dashboard:update"
	TypeError           = "error"
)

func NewEnvelope(msgType string, payload any) ([]byte, error) {
	var raw json.RawMessage
	if payload != nil {
		var err error
		raw, err = json.Marshal(payload)
		if err != nil {
			return nil, err
		}
	}
	return json.Marshal(Envelope{Type: msgType, Payload: raw})
}

func SessionStateFromStore(st session.State) SessionStatePayload {
	return SessionStatePayload{
		SessionID:  st.ID,
		Filename:   st.Filename,
		Code:       string(st.Code),
		Coordinate: st.Coordinate,
		Ready:      st.Ready,
	}
}
