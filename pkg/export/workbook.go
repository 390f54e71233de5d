package export

import (
	"fmt"
	"io"
	"os"

	"github.com/143WaysToLooseUrSelf/eventdesign/pkg/models/domain"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Report"

// WorkbookRenderer writes a report as a single-sheet spreadsheet: one header
// row followed by one row per report row, order preserved.
type WorkbookRenderer struct{}

func NewWorkbookRenderer() *WorkbookRenderer {
	return &WorkbookRenderer{}
}

func (r *WorkbookRenderer) Render(flt domain.ReportFilter, rows []domain.ReportRow, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headers := Headers(flt.Mode)
	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return fmt.Errorf("write header row: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		cells := rowCells(row)
		if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// RenderFile renders to the given path. On failure the partial file is
// removed and an ExportError carrying the path is returned.
func (r *WorkbookRenderer) RenderFile(flt domain.ReportFilter, rows []domain.ReportRow, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return &ExportError{Path: path, Err: err}
	}

	if err := r.Render(flt, rows, out); err != nil {
		out.Close()
		os.Remove(path)
		return &ExportError{Path: path, Err: err}
	}

	if err := out.Close(); err != nil {
		os.Remove(path)
		return &ExportError{Path: path, Err: err}
	}
	return nil
}
