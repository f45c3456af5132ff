package flow

import (
	"errors"
	"strings"

	"videosurvey/internal/model"
	"videosurvey/internal/video"
)

// Controller applies transitions to sessions and keeps the per-step state
// (draft answers, playback) consistent with the step it enters.
type Controller struct{}

func NewController() *Controller {
	return &Controller{}
}

// SubmitName leaves the name step. A blank name is ignored and reports false.
// cfg is frozen into the session for the rest of the run.
func (c *Controller) SubmitName(s *model.Session, name string, cfg model.Configuration) (bool, error) {
	if s.Step.Kind != model.StepName {
		return false, ErrInvalidTransition
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return false, nil
	}
	next, err := Transition(s.Step, EventSubmitName, 0)
	if err != nil {
		return false, err
	}

	frozen := cfg.Clone()
	s.UserName = trimmed
	s.Config = &frozen
	c.enter(s, next)
	return true, nil
}

// Apply moves the session on a navigation event. A session whose step index
// no longer fits its configuration is sent back to the name step and
// ErrStepOutOfRange is returned.
func (c *Controller) Apply(s *model.Session, ev Event) error {
	switch ev {
	case EventSubmitName:
		return ErrInvalidTransition
	case EventSubmitSurvey:
		return c.SubmitSurvey(s, s.Draft)
	}

	next, err := Transition(s.Step, ev, s.VideoCount())
	if errors.Is(err, ErrStepOutOfRange) {
		c.enter(s, model.NameStep())
		return err
	}
	if err != nil {
		return err
	}
	c.enter(s, next)
	return nil
}

// SubmitSurvey records answers for the current survey under video{i} and
// advances. An earlier entry for the same video is overwritten.
func (c *Controller) SubmitSurvey(s *model.Session, answers []string) error {
	if s.Step.Kind != model.StepSurvey {
		return ErrInvalidTransition
	}
	next, err := Transition(s.Step, EventSubmitSurvey, s.VideoCount())
	if errors.Is(err, ErrStepOutOfRange) {
		c.enter(s, model.NameStep())
		return err
	}
	if err != nil {
		return err
	}

	values := make([]string, len(s.Questions()))
	copy(values, answers)
	s.Answers.Set(s.Step.Index, values)
	c.enter(s, next)
	return nil
}

func (c *Controller) enter(s *model.Session, next model.Step) {
	s.Step = next
	s.Editor = nil
	pb := video.NewStep(&s.Playback)

	switch next.Kind {
	case model.StepName:
		s.UserName = ""
		s.Answers.Reset()
		s.Config = nil
		s.Draft = nil
		pb.Clear()
	case model.StepVideo:
		s.Draft = nil
		pb.Load(s.Config.Videos[next.Index-1])
	case model.StepSurvey:
		s.Draft = make([]string, len(s.Questions()))
		pb.Clear()
	default:
		s.Draft = nil
		pb.Clear()
	}
}
