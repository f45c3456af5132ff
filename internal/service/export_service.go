package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"videosurvey/internal/export"
	"videosurvey/internal/model"
	"videosurvey/internal/platform/logger"
)

// Download is an encoded export ready to be served
type Download struct {
	Filename    string
	ContentType string
	Data        []byte
}

const (
	ContentTypeCSV  = "text/csv; charset=utf-8"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExportService encodes the answers of a completed session
type ExportService struct {
	store *SessionStore
	opts  export.Options
	log   *logger.Logger
	now   func() time.Time
}

// NewExportService creates a new export service
func NewExportService(store *SessionStore, opts export.Options, log *logger.Logger) *ExportService {
	return &ExportService{
		store: store,
		opts:  opts,
		log:   log,
		now:   time.Now,
	}
}

// CSV exports the session as CSV with a UTF-8 byte order mark
func (s *ExportService) CSV(ctx context.Context, sessionID string) (*Download, error) {
	sess, rows, err := s.rows(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, sess.Questions(), rows); err != nil {
		return nil, fmt.Errorf("encode csv: %w", err)
	}
	s.log.Info("CSV exported", "session", sessionID, "rows", len(rows))
	return &Download{
		Filename:    export.CSVFilename(sess.UserName),
		ContentType: ContentTypeCSV,
		Data:        buf.Bytes(),
	}, nil
}

// XLSX exports the session as an Excel workbook
func (s *ExportService) XLSX(ctx context.Context, sessionID string) (*Download, error) {
	sess, rows, err := s.rows(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, rows); err != nil {
		return nil, fmt.Errorf("encode xlsx: %w", err)
	}
	s.log.Info("XLSX exported", "session", sessionID, "rows", len(rows))
	return &Download{
		Filename:    export.XLSXFilename(sess.UserName),
		ContentType: ContentTypeXLSX,
		Data:        buf.Bytes(),
	}, nil
}

func (s *ExportService) rows(ctx context.Context, sessionID string) (*model.Session, []export.Row, error) {
	sess, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if sess.Step.Kind != model.StepCompletion {
		return nil, nil, ErrExportUnavailable
	}
	rows := export.BuildRows(sess.Answers, sess.Questions(), sess.UserName, s.now(), s.opts)
	return sess, rows, nil
}
