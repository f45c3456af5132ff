package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"videosurvey/internal/platform/logger"
	"videosurvey/internal/service"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for dev
	},
}

// Handler handles WebSocket connections
type Handler struct {
	hub     *Hub
	tokens  *service.TokenService
	flowSvc *service.FlowService
	log     *logger.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, tokens *service.TokenService, flowSvc *service.FlowService, log *logger.Logger) *Handler {
	return &Handler{
		hub:     hub,
		tokens:  tokens,
		flowSvc: flowSvc,
		log:     log,
	}
}

// SessionWS handles GET /v1/ws/session
func (h *Handler) SessionWS(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "missing token", http.StatusUnauthorized)
		return
	}

	claims, err := h.tokens.ValidateSessionToken(token)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	view, err := h.flowSvc.View(r.Context(), claims.SessionID)
	if err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("WebSocket upgrade failed", "error", err)
		return
	}

	conn := &Connection{
		SessionID: claims.SessionID,
		Send:      make(chan []byte, 256),
		Hub:       h.hub,
	}

	// Current state first, so a reconnecting client can render right away
	conn.Send <- encode(MsgStepChanged, view)
	if view.Video != nil {
		conn.Send <- encode(MsgLoadVideo, LoadVideoPayload{
			VideoID: view.Video.ID,
			Title:   view.Video.Title,
			LoadID:  view.Video.LoadID,
		})
	}

	h.hub.Register(conn)

	go h.writePump(wsConn, conn)
	go h.readPump(wsConn, conn)
}

func (h *Handler) readPump(wsConn *websocket.Conn, conn *Connection) {
	defer func() {
		h.hub.Unregister(conn)
		wsConn.Close()
	}()

	wsConn.SetReadLimit(maxMessageSize)
	wsConn.SetReadDeadline(time.Now().Add(pongWait))
	wsConn.SetPongHandler(func(string) error {
		wsConn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := wsConn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Warn("WebSocket read failed", "session", conn.SessionID, "error", err)
			}
			break
		}
		h.handleMessage(conn, data)
	}
}

func (h *Handler) handleMessage(conn *Connection, data []byte) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		h.reply(conn, MsgError, map[string]string{"error": "invalid message"})
		return
	}

	switch msg.Type {
	case MsgVideoEnded:
		var p VideoEndedPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			h.reply(conn, MsgError, map[string]string{"error": "invalid payload"})
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), writeWait)
		defer cancel()
		// Step changes reach the client through the hub
		if _, err := h.flowSvc.VideoEnded(ctx, conn.SessionID, p.LoadID); err != nil {
			h.log.Warn("Video end failed", "session", conn.SessionID, "error", err)
			h.reply(conn, MsgError, map[string]string{"error": err.Error()})
		}
	default:
		h.log.Debug("Ignoring unknown message", "session", conn.SessionID, "type", msg.Type)
	}
}

// reply answers the sending client only
func (h *Handler) reply(conn *Connection, msgType MessageType, payload interface{}) {
	h.hub.SendToConnection(conn, msgType, payload)
}

func (h *Handler) writePump(wsConn *websocket.Conn, conn *Connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		wsConn.Close()
	}()

	for {
		select {
		case message, ok := <-conn.Send:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				wsConn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := wsConn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := wsConn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func encode(msgType MessageType, payload interface{}) []byte {
	raw, _ := json.Marshal(payload)
	data, _ := json.Marshal(&Message{Type: msgType, Payload: raw})
	return data
}
