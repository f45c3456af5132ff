package service

import "errors"

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrInvalidToken      = errors.New("invalid or expired token")
	ErrEditorUnavailable = errors.New("editors can only be opened from the name step")
	ErrEditorClosed      = errors.New("no editor is open")
	ErrUnknownEditor     = errors.New("unknown editor kind")
	ErrNotQuestionEditor = errors.New("options exist only in the question editor")
	ErrExportUnavailable = errors.New("export is available once the survey is complete")
)
