package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"videosurvey/internal/model"
)

func step(t *testing.T, token string) model.Step {
	t.Helper()
	s, err := model.ParseStep(token)
	require.NoError(t, err)
	return s
}

func TestTransitionTable(t *testing.T) {
	tests := []struct {
		from string
		ev   Event
		k    int
		want string
	}{
		{"name", EventSubmitName, 3, "introduction"},
		{"introduction", EventStart, 3, "video1"},
		{"introduction", EventStart, 0, "completion"},
		{"video1", EventVideoEnded, 3, "survey1"},
		{"video2", EventNext, 3, "survey2"},
		{"video1", EventPrevious, 3, "introduction"},
		{"video3", EventPrevious, 3, "survey2"},
		{"video2", EventTop, 3, "name"},
		{"survey1", EventSubmitSurvey, 3, "video2"},
		{"survey3", EventSubmitSurvey, 3, "completion"},
		{"survey2", EventNext, 3, "video3"},
		{"survey3", EventNext, 3, "completion"},
		{"survey2", EventPrevious, 3, "video2"},
		{"survey1", EventTop, 3, "name"},
		{"completion", EventRestart, 3, "name"},
	}
	for _, tt := range tests {
		t.Run(tt.from+"/"+string(tt.ev), func(t *testing.T) {
			got, err := Transition(step(t, tt.from), tt.ev, tt.k)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestTransitionRejectsUnknownEvents(t *testing.T) {
	tests := []struct {
		from string
		ev   Event
	}{
		{"name", EventStart},
		{"introduction", EventNext},
		{"video1", EventSubmitSurvey},
		{"survey1", EventVideoEnded},
		{"completion", EventTop},
	}
	for _, tt := range tests {
		from := step(t, tt.from)
		got, err := Transition(from, tt.ev, 2)
		assert.ErrorIs(t, err, ErrInvalidTransition, "%s/%s", tt.from, tt.ev)
		assert.Equal(t, from, got)
	}
}

func TestTransitionValidatesIndex(t *testing.T) {
	got, err := Transition(model.VideoStep(3), EventNext, 2)
	assert.ErrorIs(t, err, ErrStepOutOfRange)
	assert.Equal(t, model.NameStep(), got)

	_, err = Transition(model.SurveyStep(0), EventNext, 2)
	assert.ErrorIs(t, err, ErrStepOutOfRange)
}
