package editor

import (
	"strings"

	"videosurvey/internal/model"
)

// VideoEditor edits the video list
type VideoEditor struct {
	list *List[model.Video]
}

// NewVideoEditor starts editing a copy of videos
func NewVideoEditor(videos []model.Video) *VideoEditor {
	return &VideoEditor{list: NewList(videos, nil)}
}

func (e *VideoEditor) Len() int { return e.list.Len() }

func (e *VideoEditor) Videos() []model.Video { return e.list.Items() }

func (e *VideoEditor) AddVideo() int { return e.list.Append(model.Video{}) }

// UpdateField replaces the "id" or "title" field of video i
func (e *VideoEditor) UpdateField(i int, field, value string) error {
	return e.list.Update(i, func(v *model.Video) error {
		switch field {
		case "id":
			v.ID = value
		case "title":
			v.Title = value
		default:
			return ErrUnknownField
		}
		return nil
	})
}

func (e *VideoEditor) RemoveVideo(i int) error { return e.list.Remove(i) }

func (e *VideoEditor) MoveVideo(from, to int) error { return e.list.Move(from, to) }

// Save validates the draft; every video needs a player id
func (e *VideoEditor) Save() ([]model.Video, error) {
	vs := e.list.Items()
	for i, v := range vs {
		if strings.TrimSpace(v.ID) == "" {
			return nil, &ValidationError{Index: i, Field: "id", Reason: "is required"}
		}
	}
	return vs, nil
}
