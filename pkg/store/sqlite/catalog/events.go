package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/143WaysToLooseUrSelf/eventdesign/pkg/models/domain"
	"github.com/143WaysToLooseUrSelf/eventdesign/pkg/models/store"
	"github.com/rs/zerolog"
)

const dateLayout = "2006-01-02"

type EventStore interface {
	Add(ctx context.Context, e domain.Event) (int64, error)
	Update(ctx context.Context, e domain.Event) error
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*store.EventRow, error)
	List(ctx context.Context) ([]store.EventRow, error)
}

type eventStore struct {
	db *sql.DB
}

func NewEventStore(db *sql.DB) (EventStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &eventStore{db: db}, nil
}

func (s *eventStore) Add(ctx context.Context, e domain.Event) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO events (event_name, category, event_date, location, description, note, favorite)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.Name, e.CategoryID, formatDate(e.Date), e.Location, e.Description, e.Note, e.Favorite)
	if err != nil {
		return 0, fmt.Errorf("insert event: %w", err)
	}
	return res.LastInsertId()
}

func (s *eventStore) Update(ctx context.Context, e domain.Event) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE events
		SET event_name = ?, category = ?, event_date = ?,
			location = ?, description = ?, note = ?, favorite = ?
		WHERE event_id = ?`,
		e.Name, e.CategoryID, formatDate(e.Date), e.Location, e.Description, e.Note, e.Favorite, e.ID)
	if err != nil {
		return fmt.Errorf("update event %d: %w", e.ID, err)
	}
	return nil
}

func (s *eventStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE event_id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete event %d: %w", id, err)
	}
	return nil
}

func (s *eventStore) Get(ctx context.Context, id int64) (*store.EventRow, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT e.event_id, e.event_name, e.category, c.category_name,
			e.location, e.event_date, e.description, e.note, e.favorite
		FROM events e
		LEFT JOIN categories c ON e.category = c.category_id
		WHERE e.event_id = ?`, id)

	rec, err := scanEventRow(row.Scan)
	if err != nil {
		return nil, fmt.Errorf("get event %d: %w", id, err)
	}
	return rec, nil
}

func (s *eventStore) List(ctx context.Context) ([]store.EventRow, error) {
	logger := zerolog.Ctx(ctx)

	rows, err := s.db.QueryContext(ctx, `
		SELECT e.event_id, e.event_name, e.category, c.category_name,
			e.location, e.event_date, e.description, e.note, e.favorite
		FROM events e
		LEFT JOIN categories c ON e.category = c.category_id
		ORDER BY e.event_id`)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close event rows")
		}
	}(rows)

	events := make([]store.EventRow, 0)
	for rows.Next() {
		rec, err := scanEventRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		events = append(events, *rec)
	}
	return events, rows.Err()
}

func scanEventRow(scan func(dest ...any) error) (*store.EventRow, error) {
	var (
		rec        store.EventRow
		categoryID sql.NullInt64
		category   sql.NullString
		date       sql.NullString
	)
	err := scan(&rec.ID, &rec.Name, &categoryID, &category,
		&rec.Location, &date, &rec.Description, &rec.Note, &rec.Favorite)
	if err != nil {
		return nil, err
	}
	if categoryID.Valid {
		id := categoryID.Int64
		rec.CategoryID = &id
	}
	if category.Valid {
		c := category.String
		rec.Category = &c
	}
	if date.Valid {
		d := date.String
		rec.Date = &d
	}
	return &rec, nil
}

func formatDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(dateLayout)
}
