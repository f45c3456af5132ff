package editor

import "fmt"

// ValidationError reports a record that failed the required-field checks on save
type ValidationError struct {
	Index  int
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("record %d: %s %s", e.Index+1, e.Field, e.Reason)
}
