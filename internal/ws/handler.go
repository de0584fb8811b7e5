package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/WiL-dev/econstruct/internal/geocode"
	"github.com/WiL-dev/econstruct/internal/log"
	"github.com/WiL-dev/econstruct/internal/model"
	"github.com/WiL-dev/econstruct/internal/session"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

const searchTimeout = 10 * time.Second

// Handler upgrades connections, opens a session per client, and routes
// messages to the session store and geocoder.
type Handler struct {
	hub      *Hub
	sessions *session.Store
	geocoder *geocode.Client
}

func NewHandler(hub *Hub, sessions *session.Store, geocoder *geocode.Client) *Handler {
	return &Handler{hub: hub, sessions: sessions, geocoder: geocoder}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("websocket upgrade", "err", err)
		return
	}

	st := h.sessions.Open()
	client := &Client{
		hub:       h.hub,
		conn:      conn,
		send:      make(chan []byte, 256),
		sessionID: st.ID,
	}

	h.hub.Register(client)
	go client.writePump()

	// Deliver the fresh session state before reading anything.
	h.sendState(client, st)

	h.readPump(client)
}

func (h *Handler) readPump(c *Client) {
	defer func() {
		h.hub.Unregister(c)
		h.sessions.Close(c.sessionID)
		c.conn.Close()
	}()

	logger := log.Ctx(context.Background()).With("session", c.sessionID)

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("websocket read", "err", err)
			}
			return
		}

		h.handleMessage(c, logger, msg)
	}
}

func (h *Handler) handleMessage(c *Client, logger *slog.Logger, msg []byte) {
	var env Envelope
	if err := json.Unmarshal(msg, &env); err != nil {
		logger.Warn("invalid message", "err", err)
		return
	}

	switch env.Type {
	case TypeFileSet:
		var p SetFilePayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			logger.Warn("invalid file:set payload", "err", err)
			return
		}
		if err := h.sessions.SetFile(c.sessionID, p.Filename); err != nil {
			h.sendError(c, err.Error())
		}

	case TypeCodeSet:
		var p SetCodePayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			logger.Warn("invalid code:set payload", "err", err)
			return
		}
		if err := h.sessions.SetCode(c.sessionID, p.Code); err != nil {
			h.sendError(c, err.Error())
		}

	case TypeLocationSet:
		var p SetLocationPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			logger.Warn("invalid location:set payload", "err", err)
			return
		}
		coord := model.Coordinate{Lat: p.Lat, Lon: p.Lon, Label: p.Label}
		if err := h.sessions.SetLocation(c.sessionID, coord); err != nil {
			h.sendError(c, err.Error())
		}

	case TypeLocationSearch:
		var p SearchPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			logger.Warn("invalid location:search payload", "err", err)
			return
		}
		// The lookup blocks on an external API; keep the read loop free.
		go h.search(c, p.Query)

	case TypeSessionClear:
		if err := h.sessions.Clear(c.sessionID); err != nil {
			h.sendError(c, err.Error())
		}

	default:
		logger.Warn("unknown message type", "type", env.Type)
	}
}

// search resolves an address and stores the coordinate on success. Either
// outcome reaches the client: a session:state push or an error message.
func (h *Handler) search(c *Client, query string) {
	ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
	defer cancel()

	coord, err := h.geocoder.Search(ctx, query)
	if err != nil {
		h.sendError(c, err.Error())
		return
	}
	if err := h.sessions.SetLocation(c.sessionID, coord); err != nil {
		h.sendError(c, err.Error())
	}
}

// sendState and sendError route through the hub rather than writing to
// c.send directly: the hub's lock orders sends against Unregister's channel
// close, so a client that disconnected mid-lookup is skipped, not panicked on.

func (h *Handler) sendState(c *Client, st session.State) {
	msg, err := NewEnvelope(TypeSessionState, SessionStateFromStore(st))
	if err != nil {
		return
	}
	h.hub.SendTo(c.sessionID, msg)
}

func (h *Handler) sendError(c *Client, message string) {
	msg, err := NewEnvelope(TypeError, ErrorPayload{Message: message})
	if err != nil {
		return
	}
	h.hub.SendTo(c.sessionID, msg)
}
