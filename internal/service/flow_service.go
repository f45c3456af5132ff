package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"videosurvey/internal/flow"
	"videosurvey/internal/model"
	"videosurvey/internal/platform/logger"
	"videosurvey/internal/survey"
	"videosurvey/internal/video"
)

// FlowService runs the survey flow of each session
type FlowService struct {
	store       *SessionStore
	configs     *ConfigService
	controller  *flow.Controller
	player      video.Player
	broadcaster Broadcaster
	log         *logger.Logger
}

// NewFlowService creates a new flow service
func NewFlowService(store *SessionStore, configs *ConfigService, log *logger.Logger) *FlowService {
	return &FlowService{
		store:      store,
		configs:    configs,
		controller: flow.NewController(),
		log:        log,
	}
}

// SetBroadcaster sets the broadcaster for step pushes
func (s *FlowService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// SetPlayer sets the playback capability used on video steps
func (s *FlowService) SetPlayer(p video.Player) {
	s.player = p
}

// Begin creates a fresh session on the name step
func (s *FlowService) Begin(ctx context.Context) (*model.Session, error) {
	now := time.Now()
	sess := &model.Session{
		ID:        uuid.NewString(),
		Step:      model.NameStep(),
		CreatedAt: now,
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	s.log.Info("Session started", "session", sess.ID)
	return sess, nil
}

// View returns what the client renders for a session
func (s *FlowService) View(ctx context.Context, sessionID string) (*model.SessionView, error) {
	sess, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return model.NewSessionView(sess), nil
}

// SubmitName stores the respondent's name and freezes the current
// configuration. A blank name leaves the session untouched.
func (s *FlowService) SubmitName(ctx context.Context, sessionID, name string) (*model.SessionView, error) {
	return s.update(ctx, sessionID, func(sess *model.Session) error {
		ok, err := s.controller.SubmitName(sess, name, s.configs.Current())
		if err != nil {
			return err
		}
		if !ok {
			s.log.Debug("Ignoring blank name", "session", sessionID)
		}
		return nil
	})
}

func (s *FlowService) Start(ctx context.Context, sessionID string) (*model.SessionView, error) {
	return s.apply(ctx, sessionID, flow.EventStart)
}

func (s *FlowService) Next(ctx context.Context, sessionID string) (*model.SessionView, error) {
	return s.apply(ctx, sessionID, flow.EventNext)
}

func (s *FlowService) Previous(ctx context.Context, sessionID string) (*model.SessionView, error) {
	return s.apply(ctx, sessionID, flow.EventPrevious)
}

func (s *FlowService) Top(ctx context.Context, sessionID string) (*model.SessionView, error) {
	return s.apply(ctx, sessionID, flow.EventTop)
}

func (s *FlowService) Restart(ctx context.Context, sessionID string) (*model.SessionView, error) {
	return s.apply(ctx, sessionID, flow.EventRestart)
}

// VideoEnded advances past a video step when its current load finishes.
// Stale or repeated events are ignored.
func (s *FlowService) VideoEnded(ctx context.Context, sessionID, loadID string) (*model.SessionView, error) {
	return s.update(ctx, sessionID, func(sess *model.Session) error {
		if sess.Step.Kind != model.StepVideo {
			s.log.Debug("Ignoring video end outside a video step", "session", sessionID, "step", sess.Step.String())
			return nil
		}
		if !video.NewStep(&sess.Playback).Ended(loadID) {
			s.log.Debug("Ignoring stale video end", "session", sessionID, "load", loadID)
			return nil
		}
		return s.controller.Apply(sess, flow.EventVideoEnded)
	})
}

// SelectAnswer records value for question q of the current survey step
func (s *FlowService) SelectAnswer(ctx context.Context, sessionID string, q int, value string) (*model.SessionView, error) {
	return s.update(ctx, sessionID, func(sess *model.Session) error {
		if sess.Step.Kind != model.StepSurvey {
			return flow.ErrInvalidTransition
		}
		st := s.surveyStep(sess)
		if err := st.Select(q, value); err != nil {
			if errors.Is(err, survey.ErrQuestionOutOfRange) {
				s.log.Debug("Ignoring answer for unknown question", "session", sessionID, "question", q)
				return nil
			}
			return err
		}
		sess.Draft = st.Answers()
		return nil
	})
}

// SubmitSurvey records the current survey answers and advances
func (s *FlowService) SubmitSurvey(ctx context.Context, sessionID string) (*model.SessionView, error) {
	return s.update(ctx, sessionID, func(sess *model.Session) error {
		if sess.Step.Kind != model.StepSurvey {
			return flow.ErrInvalidTransition
		}
		st := s.surveyStep(sess)
		return s.controller.SubmitSurvey(sess, st.Submit())
	})
}

func (s *FlowService) surveyStep(sess *model.Session) *survey.Step {
	return survey.New(sess.Questions(), sess.Draft, sess.Step.Index == sess.VideoCount())
}

func (s *FlowService) apply(ctx context.Context, sessionID string, ev flow.Event) (*model.SessionView, error) {
	return s.update(ctx, sessionID, func(sess *model.Session) error {
		return s.controller.Apply(sess, ev)
	})
}

// update runs fn on the session under its lock, saves the result and
// notifies the client when the step or the loaded video changed.
func (s *FlowService) update(ctx context.Context, sessionID string, fn func(*model.Session) error) (*model.SessionView, error) {
	unlock := s.store.Lock(sessionID)
	defer unlock()

	sess, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	prevStep := sess.Step
	prevLoad := sess.Playback.LoadID

	if err := fn(sess); err != nil {
		if !errors.Is(err, flow.ErrStepOutOfRange) {
			return nil, err
		}
		s.log.Warn("Session step out of range, returning to name step",
			"session", sessionID,
			"step", prevStep.String(),
		)
	}

	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}

	view := model.NewSessionView(sess)
	if sess.Step != prevStep {
		s.log.Debug("Step changed", "session", sessionID, "from", prevStep.String(), "to", sess.Step.String())
		if s.broadcaster != nil {
			s.broadcaster.BroadcastToSession(sessionID, MsgStepChanged, view)
		}
	}
	if s.player != nil && view.Video != nil && sess.Playback.LoadID != prevLoad {
		v := model.Video{ID: view.Video.ID, Title: view.Video.Title}
		if err := s.player.Load(ctx, sessionID, v, sess.Playback.LoadID); err != nil {
			s.log.Warn("Failed to load video", "session", sessionID, "video", v.ID, "error", err)
		}
	}
	return view, nil
}
