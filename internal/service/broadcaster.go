package service

// Broadcaster pushes messages to the clients of a session (avoids import cycle)
type Broadcaster interface {
	BroadcastToSession(sessionID string, msgType string, payload interface{})
}

// Message types pushed to session clients
const (
	MsgStepChanged = "step_changed"
	MsgLoadVideo   = "load_video"
)
