package model

import (
	"sort"
	"strconv"
)

// AnswerKey returns the session answers key for a 1-based video number
func AnswerKey(videoNo int) string {
	return "video" + strconv.Itoa(videoNo)
}

// AnswerEntry holds one completed survey: one value per question, in
// question order. An empty value means the question was left unanswered.
type AnswerEntry struct {
	Key     string   `json:"key"`
	VideoNo int      `json:"videoNo"`
	Values  []string `json:"values"`
}

// Answers is the ordered answers map of a session. Entries keep the
// position of their first insertion.
type Answers struct {
	Entries []AnswerEntry `json:"entries"`
}

// Set records values for a video, replacing any previous entry for it in place
func (a *Answers) Set(videoNo int, values []string) {
	entry := AnswerEntry{
		Key:     AnswerKey(videoNo),
		VideoNo: videoNo,
		Values:  append([]string{}, values...),
	}
	for i := range a.Entries {
		if a.Entries[i].Key == entry.Key {
			a.Entries[i] = entry
			return
		}
	}
	a.Entries = append(a.Entries, entry)
}

// Get returns the values recorded for a video
func (a Answers) Get(videoNo int) ([]string, bool) {
	key := AnswerKey(videoNo)
	for _, e := range a.Entries {
		if e.Key == key {
			return e.Values, true
		}
	}
	return nil, false
}

// Len returns the number of completed surveys
func (a Answers) Len() int { return len(a.Entries) }

// Reset drops every entry
func (a *Answers) Reset() { a.Entries = nil }

// ByVideo returns the entries sorted by video number
func (a Answers) ByVideo() []AnswerEntry {
	out := append([]AnswerEntry{}, a.Entries...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].VideoNo < out[j].VideoNo })
	return out
}
