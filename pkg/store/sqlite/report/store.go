package report

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/143WaysToLooseUrSelf/eventdesign/pkg/models/domain"
	"github.com/143WaysToLooseUrSelf/eventdesign/pkg/models/store"
	"github.com/rs/zerolog"
)

// Store executes composed report queries against the event catalog.
type Store interface {
	Query(ctx context.Context, flt domain.ReportFilter) ([]store.ReportRecord, error)
}

type reportStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &reportStore{db: db}, nil
}

func (r *reportStore) Query(ctx context.Context, flt domain.ReportFilter) ([]store.ReportRecord, error) {
	logger := zerolog.Ctx(ctx)

	query, args := Compose(flt)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &QueryError{Err: err}
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close report query rows")
		}
	}(rows)

	return scanReportRows(rows)
}

func scanReportRows(rows *sql.Rows) ([]store.ReportRecord, error) {
	records := make([]store.ReportRecord, 0)
	for rows.Next() {
		var (
			id             int64
			name, location string
			description    string
			category, date sql.NullString
			favorite       bool
			userNames      sql.NullString
		)
		if err := rows.Scan(&id, &name, &category, &location, &date, &description, &favorite, &userNames); err != nil {
			return nil, &QueryError{Err: err}
		}

		rec := store.ReportRecord{
			EventID:     id,
			Name:        name,
			Location:    location,
			Description: description,
			Favorite:    favorite,
		}
		if category.Valid {
			c := category.String
			rec.Category = &c
		}
		if date.Valid {
			d := date.String
			rec.Date = &d
		}
		if userNames.Valid {
			u := userNames.String
			rec.UserNames = &u
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Err: err}
	}
	return records, nil
}
