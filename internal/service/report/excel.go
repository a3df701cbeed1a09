package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Attendance"

var exportHeaders = []interface{}{"Date", "Time", "Employee", "Status", "Location", "Flag Comment"}

// buildWorkbook renders the rows into a single-sheet xlsx workbook.
func buildWorkbook(rows [][]interface{}) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetName)

	if err := f.SetSheetRow(sheetName, "A1", &exportHeaders); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	// Wide enough for addresses without auto-fit
	if err := f.SetColWidth(sheetName, "A", "A", 12); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheetName, "C", "C", 24); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheetName, "E", "F", 40); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}
	return buf.Bytes(), nil
}
