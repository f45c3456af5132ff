// Package video drives the video step. Playback itself happens in an external
// embeddable player; this package owns the load bookkeeping that guarantees a
// single forward transition per load.
package video

import (
	"context"

	"github.com/google/uuid"

	"videosurvey/internal/model"
)

// Player is the external playback capability. Implementations load the video
// in the client; the client later reports the end of playback with the same
// load id.
type Player interface {
	Load(ctx context.Context, sessionID string, v model.Video, loadID string) error
}

// Step wraps the playback state of a session
type Step struct {
	pb    *model.Playback
	newID func() string
}

// NewStep binds a step to a session's playback state
func NewStep(pb *model.Playback) *Step {
	return &Step{pb: pb, newID: uuid.NewString}
}

// Load issues a new load of v and returns its id. Any earlier load is
// forgotten, so its end event no longer counts.
func (s *Step) Load(v model.Video) string {
	*s.pb = model.Playback{VideoID: v.ID, LoadID: s.newID()}
	return s.pb.LoadID
}

// Ended consumes the end-of-playback event of loadID. It returns true at most
// once per load, and never for a load that is no longer current.
func (s *Step) Ended(loadID string) bool {
	if loadID == "" || loadID != s.pb.LoadID || s.pb.Ended {
		return false
	}
	s.pb.Ended = true
	return true
}

// Clear forgets the loaded video
func (s *Step) Clear() {
	*s.pb = model.Playback{}
}
