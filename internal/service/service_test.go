package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"videosurvey/internal/cache"
	"videosurvey/internal/export"
	"videosurvey/internal/model"
	"videosurvey/internal/platform/logger"
)

type mockPlayer struct {
	mock.Mock
}

func (m *mockPlayer) Load(ctx context.Context, sessionID string, v model.Video, loadID string) error {
	args := m.Called(ctx, sessionID, v, loadID)
	return args.Error(0)
}

type sentMessage struct {
	SessionID string
	Type      string
	Payload   interface{}
}

type recordingBroadcaster struct {
	mu   sync.Mutex
	sent []sentMessage
}

func (b *recordingBroadcaster) BroadcastToSession(sessionID, msgType string, payload interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sent = append(b.sent, sentMessage{SessionID: sessionID, Type: msgType, Payload: payload})
}

func (b *recordingBroadcaster) steps() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []string
	for _, m := range b.sent {
		if v, ok := m.Payload.(*model.SessionView); ok && m.Type == MsgStepChanged {
			out = append(out, v.Step.String())
		}
	}
	return out
}

func twoVideoConfig() model.Configuration {
	return model.Configuration{
		Questions: []model.Question{
			{Type: model.QuestionTypeMultipleChoice, Text: "Q1", Options: []string{"Yes", "No"}},
			{Type: model.QuestionTypeMultipleChoice, Text: "Q2", Options: []string{"Good", "Bad"}},
		},
		Videos: []model.Video{
			{ID: "vidA", Title: "A"},
			{ID: "vidB", Title: "B"},
		},
	}
}

type harness struct {
	store       *SessionStore
	configs     *ConfigService
	flow        *FlowService
	editors     *EditorService
	exports     *ExportService
	player      *mockPlayer
	broadcaster *recordingBroadcaster
}

func newHarness(t *testing.T, cfg model.Configuration) *harness {
	t.Helper()
	log := logger.Nop()
	store := NewSessionStore(cache.NewMemorySessionCache(time.Hour))
	configs := NewConfigService(cfg)

	player := &mockPlayer{}
	player.On("Load", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	broadcaster := &recordingBroadcaster{}

	flow := NewFlowService(store, configs, log)
	flow.SetPlayer(player)
	flow.SetBroadcaster(broadcaster)

	exports := NewExportService(store, export.Options{Order: export.OrderCompletion, Location: time.UTC}, log)
	exports.now = func() time.Time { return time.Date(2024, 3, 5, 9, 7, 3, 0, time.UTC) }

	return &harness{
		store:       store,
		configs:     configs,
		flow:        flow,
		editors:     NewEditorService(store, configs, log),
		exports:     exports,
		player:      player,
		broadcaster: broadcaster,
	}
}

func (h *harness) begin(t *testing.T) string {
	t.Helper()
	sess, err := h.flow.Begin(context.Background())
	require.NoError(t, err)
	return sess.ID
}
