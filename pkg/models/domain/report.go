package domain

import "time"

// ReportMode selects the top-level shape of a generated report.
type ReportMode string

const (
	ModeAll        ReportMode = "all"
	ModeByCategory ReportMode = "category"
	ModeByUser     ReportMode = "user"
)

// Label returns the human-readable form used in report titles and status lines.
func (m ReportMode) Label() string {
	switch m {
	case ModeByCategory:
		return "By Category"
	case ModeByUser:
		return "By User"
	default:
		return "All Events"
	}
}

// SortKey selects the ordering of report rows.
type SortKey string

const (
	SortDateDesc SortKey = "date_desc"
	SortDateAsc  SortKey = "date_asc"
	SortNameAsc  SortKey = "name_asc"
	SortNameDesc SortKey = "name_desc"
)

// ReportFilter is the immutable request for one report generation.
// Zero-valued selectors mean "all"; a nil date bound means the range is open
// on that side and contributes no predicate.
type ReportFilter struct {
	Mode     ReportMode
	From     *time.Time
	To       *time.Time
	Category string
	User     string
	Sort     SortKey
}

// DateRange reports the effective inclusive bounds, or ok=false when the
// range has no effect (either bound missing, or lower > upper, which is
// treated as "no range" rather than an error).
func (f ReportFilter) DateRange() (from, to time.Time, ok bool) {
	if f.From == nil || f.To == nil {
		return time.Time{}, time.Time{}, false
	}
	if f.From.After(*f.To) {
		return time.Time{}, time.Time{}, false
	}
	return *f.From, *f.To, true
}

// ReportRow is the normalized, display-ready projection of one event.
// Every field is always populated; raw NULLs are resolved to placeholders
// before a row is constructed.
type ReportRow struct {
	EventID     int64
	Name        string
	Category    string
	Location    string
	Date        string
	Description string
	Favorite    string
	Users       string
}
