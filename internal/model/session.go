package model

import "time"

// EditorKind selects which list an editor draft holds
type EditorKind string

const (
	EditorQuestions EditorKind = "questions"
	EditorVideos    EditorKind = "videos"
)

// EditorDraft is an open administrator editor. Only one can be open per session.
type EditorDraft struct {
	Kind      EditorKind `json:"kind"`
	Questions []Question `json:"questions,omitempty"`
	Videos    []Video    `json:"videos,omitempty"`
}

// Session is the server-side state of one survey run
type Session struct {
	ID       string `json:"id"`
	UserName string `json:"userName"`
	Step     Step   `json:"step"`

	// Config is frozen when the introduction step is entered and stays
	// fixed for the rest of the run.
	Config *Configuration `json:"config,omitempty"`

	Answers  Answers      `json:"answers"`
	Draft    []string     `json:"draft,omitempty"` // Survey slots of the current survey step
	Playback Playback     `json:"playback"`
	Editor   *EditorDraft `json:"editor,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// VideoCount returns K, the number of videos of the frozen configuration
func (s *Session) VideoCount() int {
	if s.Config == nil {
		return 0
	}
	return len(s.Config.Videos)
}

// Questions returns the frozen question set
func (s *Session) Questions() []Question {
	if s.Config == nil {
		return nil
	}
	return s.Config.Questions
}
