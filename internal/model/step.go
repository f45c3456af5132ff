package model

import (
	"fmt"
	"strconv"
	"strings"
)

// StepKind is the kind of screen a session is on
type StepKind string

const (
	StepName         StepKind = "name"
	StepIntroduction StepKind = "introduction"
	StepVideo        StepKind = "video"
	StepSurvey       StepKind = "survey"
	StepCompletion   StepKind = "completion"
)

// Step is the flow position of a session. Index is 1-based for video and
// survey steps and zero for every other kind.
type Step struct {
	Kind  StepKind
	Index int
}

// NameStep is the initial step
func NameStep() Step { return Step{Kind: StepName} }

// VideoStep returns video{i}
func VideoStep(i int) Step { return Step{Kind: StepVideo, Index: i} }

// SurveyStep returns survey{i}
func SurveyStep(i int) Step { return Step{Kind: StepSurvey, Index: i} }

// Indexed reports whether the step carries a video index
func (s Step) Indexed() bool {
	return s.Kind == StepVideo || s.Kind == StepSurvey
}

// String renders the step token, e.g. "name" or "survey2"
func (s Step) String() string {
	if s.Indexed() {
		return string(s.Kind) + strconv.Itoa(s.Index)
	}
	return string(s.Kind)
}

// ParseStep parses a step token
func ParseStep(token string) (Step, error) {
	switch StepKind(token) {
	case StepName, StepIntroduction, StepCompletion:
		return Step{Kind: StepKind(token)}, nil
	}
	for _, kind := range []StepKind{StepVideo, StepSurvey} {
		rest, ok := strings.CutPrefix(token, string(kind))
		if !ok {
			continue
		}
		n, err := strconv.Atoi(rest)
		if err != nil || n < 1 {
			return Step{}, fmt.Errorf("invalid step %q", token)
		}
		return Step{Kind: kind, Index: n}, nil
	}
	return Step{}, fmt.Errorf("invalid step %q", token)
}

func (s Step) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Step) UnmarshalText(b []byte) error {
	parsed, err := ParseStep(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
