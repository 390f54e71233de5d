package adapters

import (
	"sort"
	"strings"

	"github.com/143WaysToLooseUrSelf/eventdesign/pkg/models/domain"
	"github.com/143WaysToLooseUrSelf/eventdesign/pkg/models/store"
)

// Display placeholders. A report row never carries an absent field: every
// NULL from the store resolves to one of these before display.
const (
	NoCategoryLabel = "no category"
	NoDateLabel     = "no date"
	NoUsersLabel    = "-"
)

// MapStoreReportRecordToDomainRow normalizes one raw aggregated record into
// its display-ready row. The mapping is total and 1:1; it never drops
// records and cannot fail for well-typed input.
func MapStoreReportRecordToDomainRow(rec store.ReportRecord) domain.ReportRow {
	row := domain.ReportRow{
		EventID:     rec.EventID,
		Name:        rec.Name,
		Category:    NoCategoryLabel,
		Location:    rec.Location,
		Date:        NoDateLabel,
		Description: rec.Description,
		Favorite:    "no",
		Users:       NoUsersLabel,
	}
	if rec.Category != nil {
		row.Category = *rec.Category
	}
	if rec.Date != nil {
		row.Date = *rec.Date
	}
	if rec.Favorite {
		row.Favorite = "yes"
	}
	if rec.UserNames != nil {
		row.Users = canonicalUserList(*rec.UserNames)
	}
	return row
}

// MapStoreReportRecordsToDomainRows normalizes a whole result set,
// preserving the store's order: the composed query's ORDER BY already fixed
// the final ordering and is never second-guessed here.
func MapStoreReportRecordsToDomainRows(records []store.ReportRecord) []domain.ReportRow {
	rows := make([]domain.ReportRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, MapStoreReportRecordToDomainRow(rec))
	}
	return rows
}

// canonicalUserList rewrites the store's concatenated username string into a
// deduplicated, sorted, ", "-joined list. The store's GROUP_CONCAT ordering
// is engine-dependent; canonicalizing here keeps report output stable.
func canonicalUserList(raw string) string {
	if raw == "" {
		return NoUsersLabel
	}

	seen := make(map[string]struct{})
	var names []string
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	if len(names) == 0 {
		return NoUsersLabel
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
