package model

// SessionView is what a client renders for the current step
type SessionView struct {
	ID         string        `json:"id"`
	Step       Step          `json:"step"`
	UserName   string        `json:"userName"`
	VideoCount int           `json:"videoCount"`
	Video      *VideoView    `json:"video,omitempty"`
	Survey     *SurveyView   `json:"survey,omitempty"`
	Answers    []AnswerEntry `json:"answers"`
	EditorOpen EditorKind    `json:"editorOpen,omitempty"`
}

// VideoView describes the video to play on a video step
type VideoView struct {
	Number int    `json:"number"`
	ID     string `json:"id"`
	Title  string `json:"title"`
	LoadID string `json:"loadId"`
}

// SurveyView describes the questionnaire on a survey step
type SurveyView struct {
	Number     int        `json:"number"`
	Questions  []Question `json:"questions"`
	Answers    []string   `json:"answers"`
	IsLastStep bool       `json:"isLastStep"`
}

// NewSessionView builds the view of a session
func NewSessionView(s *Session) *SessionView {
	v := &SessionView{
		ID:         s.ID,
		Step:       s.Step,
		UserName:   s.UserName,
		VideoCount: s.VideoCount(),
		Answers:    append([]AnswerEntry{}, s.Answers.Entries...),
	}
	if s.Editor != nil {
		v.EditorOpen = s.Editor.Kind
	}

	k := s.VideoCount()
	switch {
	case s.Step.Kind == StepVideo && s.Step.Index >= 1 && s.Step.Index <= k:
		vid := s.Config.Videos[s.Step.Index-1]
		v.Video = &VideoView{
			Number: s.Step.Index,
			ID:     vid.ID,
			Title:  vid.Title,
			LoadID: s.Playback.LoadID,
		}
	case s.Step.Kind == StepSurvey && s.Step.Index >= 1 && s.Step.Index <= k:
		v.Survey = &SurveyView{
			Number:     s.Step.Index,
			Questions:  CloneQuestions(s.Config.Questions),
			Answers:    append([]string{}, s.Draft...),
			IsLastStep: s.Step.Index == k,
		}
	}
	return v
}
