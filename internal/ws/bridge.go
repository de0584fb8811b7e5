package ws

import (
	"context"

	"github.com/WiL-dev/econstruct/internal/log"
	"github.com/WiL-dev/econstruct/internal/model"
	"github.com/WiL-dev/econstruct/internal/session"
)

// Bridge implements session.Callback and pushes session events to the
// WebSocket hub.
type Bridge struct {
	hub *Hub
}

func NewBridge(hub *Hub) *Bridge {
	return &Bridge{hub: hub}
}

func (b *Bridge) OnState(st session.State) {
	msg, err := NewEnvelope(TypeSessionState, SessionStateFromStore(st))
	if err != nil {
		log.Ctx(context.Background()).Error("marshaling session state", "err", err)
		return
	}
	b.hub.SendTo(st.ID, msg)
}

func (b *Bridge) OnDashboard(sessionID string, d model.Dashboard) {
	msg, err := NewEnvelope(TypeDashboardUpdate, d)
	if err != nil {
		log.Ctx(context.Background()).Error("marshaling dashboard", "err", err)
		return
	}
	b.hub.SendTo(sessionID, msg)
}
