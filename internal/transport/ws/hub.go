package ws

import (
	"context"
	"encoding/json"
	"sync"

	"videosurvey/internal/model"
	"videosurvey/internal/platform/logger"
	"videosurvey/internal/service"
	"videosurvey/internal/video"
)

var (
	_ service.Broadcaster = (*Hub)(nil)
	_ video.Player        = (*Hub)(nil)
)

// MessageType defines the type of WebSocket message
type MessageType string

// Server message types
const (
	MsgStepChanged MessageType = service.MsgStepChanged
	MsgLoadVideo   MessageType = service.MsgLoadVideo
	MsgError       MessageType = "error"
)

// Client message types
const (
	MsgVideoEnded MessageType = "video_ended"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// LoadVideoPayload asks the client's embedded player to load a video
type LoadVideoPayload struct {
	VideoID string `json:"videoId"`
	Title   string `json:"title"`
	LoadID  string `json:"loadId"`
}

// VideoEndedPayload reports the end of a load
type VideoEndedPayload struct {
	LoadID string `json:"loadId"`
}

// Hub manages WebSocket connections per session
type Hub struct {
	// Session -> connections
	conns map[string]map[*Connection]struct{}

	mu sync.RWMutex

	// Channels for coordination
	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
	done       chan struct{}

	log *logger.Logger
}

// Connection represents a WebSocket connection
type Connection struct {
	SessionID string
	Send      chan []byte
	Hub       *Hub
}

// BroadcastMessage is a message to broadcast
type BroadcastMessage struct {
	SessionID string
	To        *Connection // nil means every connection of the session
	Message   *Message
}

// NewHub creates a new WebSocket hub. Run must be started for messages to flow.
func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		conns:      make(map[string]map[*Connection]struct{}),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *BroadcastMessage, 256),
		done:       make(chan struct{}),
		log:        log,
	}
}

// Run dispatches registrations and broadcasts until ctx is done
func (h *Hub) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			close(h.done)
			return nil

		case conn := <-h.register:
			h.mu.Lock()
			if h.conns[conn.SessionID] == nil {
				h.conns[conn.SessionID] = make(map[*Connection]struct{})
			}
			h.conns[conn.SessionID][conn] = struct{}{}
			h.mu.Unlock()
			h.log.Debug("Client connected", "session", conn.SessionID)

		case conn := <-h.unregister:
			h.mu.Lock()
			if set, ok := h.conns[conn.SessionID]; ok {
				if _, ok := set[conn]; ok {
					delete(set, conn)
					close(conn.Send)
					if len(set) == 0 {
						delete(h.conns, conn.SessionID)
					}
					h.log.Debug("Client disconnected", "session", conn.SessionID)
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Message)
			for conn := range h.conns[msg.SessionID] {
				if msg.To != nil && msg.To != conn {
					continue
				}
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, set := range h.conns {
		for conn := range set {
			close(conn.Send)
		}
		delete(h.conns, id)
	}
}

// Register adds a connection. Once the hub has stopped the connection is
// closed right away.
func (h *Hub) Register(conn *Connection) {
	select {
	case h.register <- conn:
	case <-h.done:
		close(conn.Send)
	}
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	select {
	case h.unregister <- conn:
	case <-h.done:
	}
}

// Connected reports how many clients a session has
func (h *Hub) Connected(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns[sessionID])
}

// BroadcastToSession sends a message to every client of a session (implements service.Broadcaster)
func (h *Hub) BroadcastToSession(sessionID string, msgType string, payload interface{}) {
	h.enqueue(sessionID, nil, MessageType(msgType), payload)
}

// SendToConnection sends a message to one client only. It is dropped if the
// client has already disconnected.
func (h *Hub) SendToConnection(conn *Connection, msgType MessageType, payload interface{}) {
	h.enqueue(conn.SessionID, conn, msgType, payload)
}

func (h *Hub) enqueue(sessionID string, to *Connection, msgType MessageType, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.log.Error("Failed to encode message", "type", msgType, "error", err)
		return
	}
	select {
	case h.broadcast <- &BroadcastMessage{
		SessionID: sessionID,
		To:        to,
		Message: &Message{
			Type:    msgType,
			Payload: data,
		},
	}:
	default:
		h.log.Warn("Broadcast queue full, dropping message", "session", sessionID, "type", msgType)
	}
}

// Load asks the session's clients to load v under loadID (implements video.Player)
func (h *Hub) Load(ctx context.Context, sessionID string, v model.Video, loadID string) error {
	h.BroadcastToSession(sessionID, string(MsgLoadVideo), LoadVideoPayload{
		VideoID: v.ID,
		Title:   v.Title,
		LoadID:  loadID,
	})
	return nil
}
