// Package flow is the step state machine of a survey run:
//
//	name → introduction → video1 → survey1 → … → videoK → surveyK → completion
//
// K is the video count of the configuration frozen when the run leaves the
// name step.
package flow

import (
	"errors"

	"videosurvey/internal/model"
)

// Event is a user or player action that may move the flow
type Event string

const (
	EventSubmitName   Event = "submit_name"
	EventStart        Event = "start"
	EventVideoEnded   Event = "video_ended"
	EventNext         Event = "next"
	EventPrevious     Event = "previous"
	EventTop          Event = "top"
	EventSubmitSurvey Event = "submit_survey"
	EventRestart      Event = "restart"
)

var (
	ErrInvalidTransition = errors.New("flow: event not allowed on current step")
	ErrStepOutOfRange    = errors.New("flow: step index outside the configured videos")
)

// Transition returns the step reached from `from` on ev, for a run of k videos
func Transition(from model.Step, ev Event, k int) (model.Step, error) {
	if from.Indexed() && (from.Index < 1 || from.Index > k) {
		return model.NameStep(), ErrStepOutOfRange
	}

	switch from.Kind {
	case model.StepName:
		if ev == EventSubmitName {
			return model.Step{Kind: model.StepIntroduction}, nil
		}

	case model.StepIntroduction:
		if ev == EventStart {
			if k == 0 {
				return model.Step{Kind: model.StepCompletion}, nil
			}
			return model.VideoStep(1), nil
		}

	case model.StepVideo:
		switch ev {
		case EventVideoEnded, EventNext:
			return model.SurveyStep(from.Index), nil
		case EventPrevious:
			if from.Index > 1 {
				return model.SurveyStep(from.Index - 1), nil
			}
			return model.Step{Kind: model.StepIntroduction}, nil
		case EventTop:
			return model.NameStep(), nil
		}

	case model.StepSurvey:
		switch ev {
		case EventSubmitSurvey, EventNext:
			if from.Index < k {
				return model.VideoStep(from.Index + 1), nil
			}
			return model.Step{Kind: model.StepCompletion}, nil
		case EventPrevious:
			return model.VideoStep(from.Index), nil
		case EventTop:
			return model.NameStep(), nil
		}

	case model.StepCompletion:
		if ev == EventRestart {
			return model.NameStep(), nil
		}
	}
	return from, ErrInvalidTransition
}
