package export

import (
	"fmt"
	"io"
	"os"

	"github.com/143WaysToLooseUrSelf/eventdesign/pkg/models/domain"
	"github.com/go-pdf/fpdf"
)

// Column widths in millimeters; description gets the widest cell.
var columnWidths = [8]float64{10, 28, 26, 26, 20, 38, 16, 30}

const rowHeight = 7.0

// DocumentRenderer writes a report as a paginated printable document: a
// title block followed by one table spanning all rows, with a highlighted
// header and zebra-striped body.
type DocumentRenderer struct{}

func NewDocumentRenderer() *DocumentRenderer {
	return &DocumentRenderer{}
}

func (r *DocumentRenderer) Render(flt domain.ReportFilter, rows []domain.ReportRow, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 12, Title(flt), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	r.writeHeader(pdf, flt.Mode)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for i, row := range rows {
		if pdf.GetY() > 250 {
			pdf.AddPage()
			r.writeHeader(pdf, flt.Mode)
			pdf.SetFont("Helvetica", "", 9)
			pdf.SetTextColor(0, 0, 0)
		}
		if i%2 == 0 {
			pdf.SetFillColor(255, 255, 255)
		} else {
			pdf.SetFillColor(224, 224, 224)
		}
		for c, cell := range rowCells(row) {
			pdf.CellFormat(columnWidths[c], rowHeight, cell, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

func (r *DocumentRenderer) writeHeader(pdf *fpdf.Fpdf, mode domain.ReportMode) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(0, 0, 200)
	pdf.SetTextColor(255, 255, 255)
	for c, header := range Headers(mode) {
		pdf.CellFormat(columnWidths[c], rowHeight+1, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
}

// RenderFile renders to the given path. On failure the partial file is
// removed and an ExportError carrying the path is returned.
func (r *DocumentRenderer) RenderFile(flt domain.ReportFilter, rows []domain.ReportRow, path string) error {
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
