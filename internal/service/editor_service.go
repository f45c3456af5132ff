package service

import (
	"context"
	"errors"

	"videosurvey/internal/editor"
	"videosurvey/internal/model"
	"videosurvey/internal/platform/logger"
)

// EditorService runs the administrator editors of a session. A draft lives
// on the session until it is saved into the configuration or cancelled.
type EditorService struct {
	store   *SessionStore
	configs *ConfigService
	log     *logger.Logger
}

// NewEditorService creates a new editor service
func NewEditorService(store *SessionStore, configs *ConfigService, log *logger.Logger) *EditorService {
	return &EditorService{
		store:   store,
		configs: configs,
		log:     log,
	}
}

// Open starts a draft of the current questions or videos. Opening again
// discards the previous draft.
func (s *EditorService) Open(ctx context.Context, sessionID string, kind model.EditorKind) (*model.EditorDraft, error) {
	unlock := s.store.Lock(sessionID)
	defer unlock()

	sess, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Step.Kind != model.StepName {
		return nil, ErrEditorUnavailable
	}

	current := s.configs.Current()
	switch kind {
	case model.EditorQuestions:
		sess.Editor = &model.EditorDraft{Kind: kind, Questions: current.Questions}
	case model.EditorVideos:
		sess.Editor = &model.EditorDraft{Kind: kind, Videos: current.Videos}
	default:
		return nil, ErrUnknownEditor
	}

	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess.Editor, nil
}

// Draft returns the open draft
func (s *EditorService) Draft(ctx context.Context, sessionID string) (*model.EditorDraft, error) {
	sess, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Editor == nil {
		return nil, ErrEditorClosed
	}
	return sess.Editor, nil
}

// AddRecord appends an empty question or video
func (s *EditorService) AddRecord(ctx context.Context, sessionID string) (*model.EditorDraft, error) {
	return s.edit(ctx, sessionID, func(d *model.EditorDraft) error {
		if d.Kind == model.EditorQuestions {
			return withQuestions(d, func(e *editor.QuestionEditor) error {
				e.AddQuestion()
				return nil
			})
		}
		return withVideos(d, func(e *editor.VideoEditor) error {
			e.AddVideo()
			return nil
		})
	})
}

// UpdateField sets one field of record i
func (s *EditorService) UpdateField(ctx context.Context, sessionID string, i int, field, value string) (*model.EditorDraft, error) {
	return s.edit(ctx, sessionID, func(d *model.EditorDraft) error {
		if d.Kind == model.EditorQuestions {
			return withQuestions(d, func(e *editor.QuestionEditor) error {
				return e.UpdateField(i, field, value)
			})
		}
		return withVideos(d, func(e *editor.VideoEditor) error {
			return e.UpdateField(i, field, value)
		})
	})
}

func (s *EditorService) RemoveRecord(ctx context.Context, sessionID string, i int) (*model.EditorDraft, error) {
	return s.edit(ctx, sessionID, func(d *model.EditorDraft) error {
		if d.Kind == model.EditorQuestions {
			return withQuestions(d, func(e *editor.QuestionEditor) error {
				return e.RemoveQuestion(i)
			})
		}
		return withVideos(d, func(e *editor.VideoEditor) error {
			return e.RemoveVideo(i)
		})
	})
}

func (s *EditorService) MoveRecord(ctx context.Context, sessionID string, from, to int) (*model.EditorDraft, error) {
	return s.edit(ctx, sessionID, func(d *model.EditorDraft) error {
		if d.Kind == model.EditorQuestions {
			return withQuestions(d, func(e *editor.QuestionEditor) error {
				return e.MoveQuestion(from, to)
			})
		}
		return withVideos(d, func(e *editor.VideoEditor) error {
			return e.MoveVideo(from, to)
		})
	})
}

func (s *EditorService) AddOption(ctx context.Context, sessionID string, q int) (*model.EditorDraft, error) {
	return s.edit(ctx, sessionID, func(d *model.EditorDraft) error {
		return withQuestions(d, func(e *editor.QuestionEditor) error {
			_, err := e.AddOption(q)
			return err
		})
	})
}

func (s *EditorService) UpdateOption(ctx context.Context, sessionID string, q, o int, value string) (*model.EditorDraft, error) {
	return s.edit(ctx, sessionID, func(d *model.EditorDraft) error {
		return withQuestions(d, func(e *editor.QuestionEditor) error {
			return e.UpdateOption(q, o, value)
		})
	})
}

func (s *EditorService) RemoveOption(ctx context.Context, sessionID string, q, o int) (*model.EditorDraft, error) {
	return s.edit(ctx, sessionID, func(d *model.EditorDraft) error {
		return withQuestions(d, func(e *editor.QuestionEditor) error {
			return e.RemoveOption(q, o)
		})
	})
}

func (s *EditorService) MoveOption(ctx context.Context, sessionID string, q, from, to int) (*model.EditorDraft, error) {
	return s.edit(ctx, sessionID, func(d *model.EditorDraft) error {
		return withQuestions(d, func(e *editor.QuestionEditor) error {
			return e.MoveOption(q, from, to)
		})
	})
}

// Save validates the draft and replaces the configuration with it. Sessions
// that already left the name step keep the configuration they froze.
func (s *EditorService) Save(ctx context.Context, sessionID string) (*model.Configuration, error) {
	unlock := s.store.Lock(sessionID)
	defer unlock()

	sess, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	d := sess.Editor
	if d == nil {
		return nil, ErrEditorClosed
	}

	switch d.Kind {
	case model.EditorQuestions:
		qs, err := editor.NewQuestionEditor(d.Questions).Save()
		if err != nil {
			return nil, err
		}
		s.configs.ReplaceQuestions(qs)
		s.log.Info("Questions saved", "session", sessionID, "count", len(qs))
	case model.EditorVideos:
		vs, err := editor.NewVideoEditor(d.Videos).Save()
		if err != nil {
			return nil, err
		}
		s.configs.ReplaceVideos(vs)
		s.log.Info("Videos saved", "session", sessionID, "count", len(vs))
	default:
		return nil, ErrUnknownEditor
	}

	sess.Editor = nil
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	cfg := s.configs.Current()
	return &cfg, nil
}

// Cancel drops the draft without touching the configuration
func (s *EditorService) Cancel(ctx context.Context, sessionID string) error {
	unlock := s.store.Lock(sessionID)
	defer unlock()

	sess, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return err
	}
	if sess.Editor == nil {
		return nil
	}
	sess.Editor = nil
	return s.store.Save(ctx, sess)
}

// edit applies fn to the open draft. Out-of-range indices leave the draft
// as it was and are not reported.
func (s *EditorService) edit(ctx context.Context, sessionID string, fn func(*model.EditorDraft) error) (*model.EditorDraft, error) {
	unlock := s.store.Lock(sessionID)
	defer unlock()

	sess, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Editor == nil {
		return nil, ErrEditorClosed
	}

	if err := fn(sess.Editor); err != nil {
		if errors.Is(err, editor.ErrIndexOutOfRange) {
			s.log.Debug("Ignoring out-of-range edit", "session", sessionID, "editor", sess.Editor.Kind)
			return sess.Editor, nil
		}
		return nil, err
	}

	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess.Editor, nil
}

func withQuestions(d *model.EditorDraft, fn func(*editor.QuestionEditor) error) error {
	if d.Kind != model.EditorQuestions {
		return ErrNotQuestionEditor
	}
	e := editor.NewQuestionEditor(d.Questions)
	if err := fn(e); err != nil {
		return err
	}
	d.Questions = e.Questions()
	return nil
}

func withVideos(d *model.EditorDraft, fn func(*editor.VideoEditor) error) error {
	e := editor.NewVideoEditor(d.Videos)
	if err := fn(e); err != nil {
		return err
	}
	d.Videos = e.Videos()
	return nil
}
