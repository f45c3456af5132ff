package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"videosurvey/internal/model"
)

// BOM lets spreadsheet tools detect UTF-8 when opening the file
var BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVHeader returns the header row: Time, Name, Video No., one column per
// question text in angle brackets, then the answer column.
func CSVHeader(questions []model.Question) []string {
	header := make([]string, 0, len(questions)+4)
	header = append(header, "Time", "Name", "Video No.")
	for _, q := range questions {
		header = append(header, "<"+q.Text+">")
	}
	return append(header, "回答")
}

// WriteCSV writes the BOM, the header and one record per row
func WriteCSV(w io.Writer, questions []model.Question, rows []Row) error {
	if _, err := w.Write(BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader(questions)); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{r.Time, r.Name, strconv.Itoa(r.VideoNo), r.Question, r.Answer}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
