package editor

import (
	"strings"

	"videosurvey/internal/model"
)

// QuestionEditor edits a question list and the option list of each question
type QuestionEditor struct {
	list *List[model.Question]
}

// NewQuestionEditor starts editing a copy of questions
func NewQuestionEditor(questions []model.Question) *QuestionEditor {
	return &QuestionEditor{list: NewList(questions, model.Question.Clone)}
}

func (e *QuestionEditor) Len() int { return e.list.Len() }

// Questions returns a copy of the current draft
func (e *QuestionEditor) Questions() []model.Question { return e.list.Items() }

// AddQuestion appends an empty multiple-choice question
func (e *QuestionEditor) AddQuestion() int {
	return e.list.Append(model.Question{
		Type:    model.QuestionTypeMultipleChoice,
		Options: []string{},
	})
}

// UpdateField replaces the "text" or "type" field of question i. The only
// accepted type is multiple-choice.
func (e *QuestionEditor) UpdateField(i int, field, value string) error {
	return e.list.Update(i, func(q *model.Question) error {
		switch field {
		case "text":
			q.Text = value
		case "type":
			if model.QuestionType(value) != model.QuestionTypeMultipleChoice {
				return ErrUnsupportedType
			}
			q.Type = model.QuestionType(value)
		default:
			return ErrUnknownField
		}
		return nil
	})
}

func (e *QuestionEditor) RemoveQuestion(i int) error { return e.list.Remove(i) }

func (e *QuestionEditor) MoveQuestion(from, to int) error { return e.list.Move(from, to) }

// AddOption appends an empty option to question q
func (e *QuestionEditor) AddOption(q int) (int, error) {
	idx := -1
	err := e.list.Update(q, func(qq *model.Question) error {
		qq.Options = append(qq.Options, "")
		idx = len(qq.Options) - 1
		return nil
	})
	return idx, err
}

func (e *QuestionEditor) UpdateOption(q, o int, value string) error {
	return e.list.Update(q, func(qq *model.Question) error {
		if o < 0 || o >= len(qq.Options) {
			return ErrIndexOutOfRange
		}
		qq.Options[o] = value
		return nil
	})
}

func (e *QuestionEditor) RemoveOption(q, o int) error {
	return e.list.Update(q, func(qq *model.Question) error {
		out, err := removeAt(qq.Options, o)
		if err != nil {
			return err
		}
		qq.Options = out
		return nil
	})
}

func (e *QuestionEditor) MoveOption(q, from, to int) error {
	return e.list.Update(q, func(qq *model.Question) error {
		return moveItem(qq.Options, from, to)
	})
}

// Save validates the draft and returns it as the new question list.
// Every question needs text and at least one option.
func (e *QuestionEditor) Save() ([]model.Question, error) {
	qs := e.list.Items()
	for i, q := range qs {
		if strings.TrimSpace(q.Text) == "" {
			return nil, &ValidationError{Index: i, Field: "text", Reason: "is required"}
		}
		if len(q.Options) == 0 {
			return nil, &ValidationError{Index: i, Field: "options", Reason: "needs at least one entry"}
		}
		switch q.Type {
		case "":
			qs[i].Type = model.QuestionTypeMultipleChoice
		case model.QuestionTypeMultipleChoice:
		default:
			return nil, &ValidationError{Index: i, Field: "type", Reason: "must be multiple-choice"}
		}
	}
	return qs, nil
}
