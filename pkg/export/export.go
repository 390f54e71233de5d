// Package export renders a generated report into its two output encodings:
// a flat tabular spreadsheet and a paginated printable document. Both
// renderers consume the same ordered row sequence and share one column
// contract; neither touches the record store.
package export

import (
	"fmt"
	"strconv"

	"github.com/143WaysToLooseUrSelf/eventdesign/pkg/models/domain"
)

const dateLayout = "2006-01-02"

// ExportError wraps a failure to write a report to its destination. Output
// already written must not be presented as complete.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export to %s failed: %v", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// Headers returns the fixed column header set. Only the last column's
// wording depends on the report mode: a by-user report labels it with who
// favorited the event, every other mode with the plain user list.
func Headers(mode domain.ReportMode) []string {
	headers := []string{"ID", "Name", "Category", "Location", "Date", "Description", "Favorite"}
	if mode == domain.ModeByUser {
		return append(headers, "Favorited By")
	}
	return append(headers, "Users")
}

// Title builds the document title from the filter's mode label and, when a
// date range is set, its bounds.
func Title(flt domain.ReportFilter) string {
	from, to, ok := flt.DateRange()
	if !ok {
		return fmt.Sprintf("Report: %s", flt.Mode.Label())
	}
	return fmt.Sprintf("Report: %s, %s to %s",
		flt.Mode.Label(), from.Format(dateLayout), to.Format(dateLayout))
}

func rowCells(row domain.ReportRow) []string {
	return []string{
		strconv.FormatInt(row.EventID, 10),
		row.Name,
		row.Category,
		row.Location,
		row.Date,
		row.Description,
		row.Favorite,
		row.Users,
	}
}
