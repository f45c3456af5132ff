package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"videosurvey/internal/model"
)

func questions() []model.Question {
	return []model.Question{
		{Type: model.QuestionTypeMultipleChoice, Text: "Q1", Options: []string{"A", "B"}},
		{Type: model.QuestionTypeMultipleChoice, Text: "Q2", Options: []string{"A", "B"}},
		{Type: model.QuestionTypeMultipleChoice, Text: "Q3", Options: []string{"C"}},
	}
}

func TestSelectReplaces(t *testing.T) {
	s := New(questions(), nil, false)

	require.NoError(t, s.Select(0, "A"))
	require.NoError(t, s.Select(0, "B"))
	assert.Equal(t, []string{"B", "", ""}, s.Submit())
	assert.Equal(t, 2, s.Unanswered())
}

func TestSelectRejectsBadInput(t *testing.T) {
	s := New(questions(), nil, true)

	assert.ErrorIs(t, s.Select(3, "A"), ErrQuestionOutOfRange)
	assert.ErrorIs(t, s.Select(-1, "A"), ErrQuestionOutOfRange)
	assert.ErrorIs(t, s.Select(2, "A"), ErrUnknownOption)
	assert.Equal(t, []string{"", "", ""}, s.Submit())
	assert.True(t, s.IsLast())
}

func TestDraftIsResizedToQuestions(t *testing.T) {
	s := New(questions(), []string{"A"}, false)
	assert.Equal(t, []string{"A", "", ""}, s.Answers())

	s = New(questions()[:1], []string{"A", "B", "C"}, false)
	assert.Equal(t, []string{"A"}, s.Answers())
}

func TestSubmitReturnsCopy(t *testing.T) {
	s := New(questions(), nil, false)
	require.NoError(t, s.Select(1, "B"))

	got := s.Submit()
	got[1] = "A"
	assert.Equal(t, []string{"", "B", ""}, s.Submit())
}
