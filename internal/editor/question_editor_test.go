package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"videosurvey/internal/model"
)

func sampleQuestions() []model.Question {
	return []model.Question{
		{Type: model.QuestionTypeMultipleChoice, Text: "Q1", Options: []string{"A", "B"}},
		{Type: model.QuestionTypeMultipleChoice, Text: "Q2", Options: []string{"C"}},
	}
}

func TestQuestionEditorDoesNotAliasInput(t *testing.T) {
	in := sampleQuestions()
	e := NewQuestionEditor(in)

	require.NoError(t, e.UpdateOption(0, 0, "changed"))
	require.NoError(t, e.UpdateField(1, "text", "changed"))
	_, err := e.AddOption(1)
	require.NoError(t, err)

	assert.Equal(t, sampleQuestions(), in)
}

func TestQuestionEditorAddAndUpdate(t *testing.T) {
	e := NewQuestionEditor(sampleQuestions())

	i := e.AddQuestion()
	assert.Equal(t, 2, i)
	require.NoError(t, e.UpdateField(i, "text", "Q3"))
	o, err := e.AddOption(i)
	require.NoError(t, err)
	require.NoError(t, e.UpdateOption(i, o, "yes"))

	qs := e.Questions()
	require.Len(t, qs, 3)
	assert.Equal(t, model.Question{Type: model.QuestionTypeMultipleChoice, Text: "Q3", Options: []string{"yes"}}, qs[2])
}

func TestQuestionEditorUnknownField(t *testing.T) {
	e := NewQuestionEditor(sampleQuestions())
	assert.ErrorIs(t, e.UpdateField(0, "options", "x"), ErrUnknownField)
	assert.Equal(t, sampleQuestions(), e.Questions())
}

func TestQuestionEditorTypeIsMultipleChoiceOnly(t *testing.T) {
	e := NewQuestionEditor(sampleQuestions())

	assert.ErrorIs(t, e.UpdateField(0, "type", "free-text"), ErrUnsupportedType)
	require.NoError(t, e.UpdateField(0, "type", string(model.QuestionTypeMultipleChoice)))

	qs, err := e.Save()
	require.NoError(t, err)
	for _, q := range qs {
		assert.Equal(t, model.QuestionTypeMultipleChoice, q.Type)
	}
}

func TestQuestionEditorSaveRejectsForeignType(t *testing.T) {
	qs := sampleQuestions()
	qs[1].Type = "free-text"

	_, err := NewQuestionEditor(qs).Save()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 1, verr.Index)
	assert.Equal(t, "type", verr.Field)
}

func TestQuestionEditorOptions(t *testing.T) {
	e := NewQuestionEditor(sampleQuestions())

	_, err := e.AddOption(0)
	require.NoError(t, err)
	require.NoError(t, e.UpdateOption(0, 2, "C"))
	require.NoError(t, e.MoveOption(0, 2, 0))
	assert.Equal(t, []string{"C", "A", "B"}, e.Questions()[0].Options)

	require.NoError(t, e.RemoveOption(0, 1))
	assert.Equal(t, []string{"C", "B"}, e.Questions()[0].Options)

	assert.ErrorIs(t, e.RemoveOption(0, 5), ErrIndexOutOfRange)
	assert.ErrorIs(t, e.UpdateOption(0, -1, "x"), ErrIndexOutOfRange)
	assert.ErrorIs(t, e.MoveOption(0, 0, 9), ErrIndexOutOfRange)
	_, err = e.AddOption(9)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, []string{"C", "B"}, e.Questions()[0].Options)
	// the other question's options are untouched
	assert.Equal(t, []string{"C"}, e.Questions()[1].Options)
}

func TestQuestionEditorRemoveAndMove(t *testing.T) {
	e := NewQuestionEditor(sampleQuestions())
	e.AddQuestion()
	require.NoError(t, e.UpdateField(2, "text", "Q3"))

	require.NoError(t, e.MoveQuestion(2, 0))
	require.NoError(t, e.RemoveQuestion(1))

	qs := e.Questions()
	require.Len(t, qs, 2)
	assert.Equal(t, "Q3", qs[0].Text)
	assert.Equal(t, "Q2", qs[1].Text)
}

func TestQuestionEditorSaveValidation(t *testing.T) {
	e := NewQuestionEditor(sampleQuestions())
	e.AddQuestion()

	_, err := e.Save()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 2, verr.Index)
	assert.Equal(t, "text", verr.Field)

	require.NoError(t, e.UpdateField(2, "text", "Q3"))
	_, err = e.Save()
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "options", verr.Field)

	_, err = e.AddOption(2)
	require.NoError(t, err)
	qs, err := e.Save()
	require.NoError(t, err)
	assert.Len(t, qs, 3)
}
