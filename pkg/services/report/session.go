package report

import (
	"context"
	"fmt"

	"github.com/143WaysToLooseUrSelf/eventdesign/pkg/adapters"
	"github.com/143WaysToLooseUrSelf/eventdesign/pkg/models/domain"
	reportstore "github.com/143WaysToLooseUrSelf/eventdesign/pkg/store/sqlite/report"
	"github.com/rs/zerolog"
)

// Session orchestrates one report workflow: it runs the composed query,
// normalizes the result, and retains the rows so repeated exports reuse the
// same snapshot instead of re-querying the store. A session holds at most one
// result set; Generate replaces it atomically.
type Session struct {
	store  reportstore.Store
	filter domain.ReportFilter
	rows   []domain.ReportRow
}

func NewSession(store reportstore.Store) (*Session, error) {
	if store == nil {
		return nil, fmt.Errorf("report store is nil")
	}
	return &Session{store: store}, nil
}

// Generate runs the filter against the store and caches the normalized rows,
// returning the row count. An empty result is a valid report, not an error.
// The cache is only replaced on success; a failed generation leaves the
// previous result set intact.
func (s *Session) Generate(ctx context.Context, flt domain.ReportFilter) (int, error) {
	logger := zerolog.Ctx(ctx)

	records, err := s.store.Query(ctx, flt)
	if err != nil {
		return 0, err
	}

	rows := adapters.MapStoreReportRecordsToDomainRows(records)
	s.filter = flt
	s.rows = rows

	logger.Debug().
		Str("mode", string(flt.Mode)).
		Int("rows", len(rows)).
		Msg("report generated")

	return len(rows), nil
}

// CurrentRows returns the cached result of the most recent Generate, or an
// empty sequence when no report has been generated yet. Exports always
// reflect this snapshot, never live store data.
func (s *Session) CurrentRows() []domain.ReportRow {
	if s.rows == nil {
		return []domain.ReportRow{}
	}
	return s.rows
}

// CurrentFilter returns the filter that produced the cached rows.
func (s *Session) CurrentFilter() domain.ReportFilter {
	return s.filter
}
