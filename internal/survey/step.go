// Package survey holds the questionnaire step shown after each video
package survey

import (
	"errors"

	"videosurvey/internal/model"
)

var (
	ErrQuestionOutOfRange = errors.New("survey: question index out of range")
	ErrUnknownOption      = errors.New("survey: value is not an option of the question")
)

// Step collects one answer per question. A slot holds "" until selected.
type Step struct {
	questions []model.Question
	answers   []string
	isLast    bool
}

// New starts a survey step over questions. draft carries previously selected
// slots of the same step and may be nil.
func New(questions []model.Question, draft []string, isLast bool) *Step {
	answers := make([]string, len(questions))
	copy(answers, draft)
	return &Step{questions: questions, answers: answers, isLast: isLast}
}

func (s *Step) Questions() []model.Question { return s.questions }

func (s *Step) IsLast() bool { return s.isLast }

// Select sets the answer of question i, replacing any earlier selection
func (s *Step) Select(i int, value string) error {
	if i < 0 || i >= len(s.questions) {
		return ErrQuestionOutOfRange
	}
	if !s.questions[i].HasOption(value) {
		return ErrUnknownOption
	}
	s.answers[i] = value
	return nil
}

// Answers returns the current slots
func (s *Step) Answers() []string {
	return append([]string{}, s.answers...)
}

// Submit returns every slot, unanswered ones as empty strings
func (s *Step) Submit() []string {
	return s.Answers()
}

// Unanswered counts the slots still empty
func (s *Step) Unanswered() int {
	n := 0
	for _, a := range s.answers {
		if a == "" {
			n++
		}
	}
	return n
}
