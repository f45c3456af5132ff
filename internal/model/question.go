package model

// QuestionType defines the type of question
type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multiple-choice" // Single-select from Options
)

// Question is one entry of the questionnaire shown after every video.
// Identity is its position in the owning list.
type Question struct {
	Type    QuestionType `json:"type" bson:"type"`
	Text    string       `json:"text" bson:"text"`
	Options []string     `json:"options" bson:"options"`
}

// Clone returns a deep copy of the question
func (q Question) Clone() Question {
	out := q
	out.Options = append([]string{}, q.Options...)
	return out
}

// HasOption reports whether value is one of the question's options
func (q Question) HasOption(value string) bool {
	for _, o := range q.Options {
		if o == value {
			return true
		}
	}
	return false
}
