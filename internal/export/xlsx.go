package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// SheetName is the only sheet of the workbook export
const SheetName = "Survey Results"

// XLSXHeader is the field row of the workbook
var XLSXHeader = []interface{}{"Time", "Name", "Video No.", "質問名", "回答"}

// WriteXLSX writes rows as a single-sheet workbook
func WriteXLSX(w io.Writer, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &XLSXHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{r.Time, r.Name, r.VideoNo, r.Question, r.Answer}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	_, err := f.WriteTo(w)
	return err
}
