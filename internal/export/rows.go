// Package export flattens session answers into result rows and encodes them
// as CSV or as an Excel workbook.
package export

import (
	"fmt"
	"time"

	"videosurvey/internal/model"
)

// Unanswered replaces an empty answer in every export
const Unanswered = "未回答"

// DefaultTimeLayout renders the capture time of an export
const DefaultTimeLayout = "2006/1/2 15:04:05"

// Order selects how completed surveys are ordered in an export
type Order string

const (
	// OrderCompletion keeps the order in which surveys were first completed
	OrderCompletion Order = "completion"
	// OrderVideo sorts by video number
	OrderVideo Order = "video"
)

// ParseOrder validates an order name; empty means OrderCompletion
func ParseOrder(s string) (Order, error) {
	switch Order(s) {
	case "", OrderCompletion:
		return OrderCompletion, nil
	case OrderVideo:
		return OrderVideo, nil
	}
	return "", fmt.Errorf("unknown export order %q", s)
}

// Options control row generation
type Options struct {
	Order      Order
	TimeLayout string
	Location   *time.Location
}

// Row is one (video, question) pair of an export
type Row struct {
	Time     string
	Name     string
	VideoNo  int
	Question string
	Answer   string
}

// BuildRows produces one row per completed survey and question. Every row
// carries the same capture time.
func BuildRows(answers model.Answers, questions []model.Question, userName string, at time.Time, opts Options) []Row {
	layout := opts.TimeLayout
	if layout == "" {
		layout = DefaultTimeLayout
	}
	if opts.Location != nil {
		at = at.In(opts.Location)
	}
	stamp := at.Format(layout)

	entries := answers.Entries
	if opts.Order == OrderVideo {
		entries = answers.ByVideo()
	}

	rows := make([]Row, 0, len(entries)*len(questions))
	for _, e := range entries {
		for qi, q := range questions {
			answer := ""
			if qi < len(e.Values) {
				answer = e.Values[qi]
			}
			if answer == "" {
				answer = Unanswered
			}
			rows = append(rows, Row{
				Time:     stamp,
				Name:     userName,
				VideoNo:  e.VideoNo,
				Question: q.Text,
				Answer:   answer,
			})
		}
	}
	return rows
}

// CSVFilename is the download name of the CSV export
func CSVFilename(userName string) string {
	return "survey_results_" + userName + ".csv"
}

// XLSXFilename is the download name of the workbook export
func XLSXFilename(userName string) string {
	return "survey_results_" + userName + ".xlsx"
}
