package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/143WaysToLooseUrSelf/eventdesign/pkg/models/store"
	"github.com/rs/zerolog"
)

type FavoriteStore interface {
	// Add marks the event as a favorite of the user. Adding an existing
	// favorite is a no-op; the (user, event) pair stays unique.
	Add(ctx context.Context, userID, eventID int64) error
	Remove(ctx context.Context, userID, eventID int64) error
	ListByUser(ctx context.Context, userID int64) ([]store.EventRow, error)
}

type favoriteStore struct {
	db *sql.DB
}

func NewFavoriteStore(db *sql.DB) (FavoriteStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &favoriteStore{db: db}, nil
}

func (s *favoriteStore) Add(ctx context.Context, userID, eventID int64) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO favorites (user_id, event_id) VALUES (?, ?)`,
		userID, eventID)
	if err != nil {
		return fmt.Errorf("add favorite (%d, %d): %w", userID, eventID, err)
	}
	return nil
}

func (s *favoriteStore) Remove(ctx context.Context, userID, eventID int64) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM favorites WHERE user_id = ? AND event_id = ?`,
		userID, eventID)
	if err != nil {
		return fmt.Errorf("remove favorite (%d, %d): %w", userID, eventID, err)
	}
	return nil
}

func (s *favoriteStore) ListByUser(ctx context.Context, userID int64) ([]store.EventRow, error) {
	logger := zerolog.Ctx(ctx)

	rows, err := s.db.QueryContext(ctx, `
		SELECT e.event_id, e.event_name, e.category, c.category_name,
			e.location, e.event_date, e.description, e.note, e.favorite
		FROM events e
		JOIN favorites f ON e.event_id = f.event_id
		LEFT JOIN categories c ON e.category = c.category_id
		WHERE f.user_id = ?
		ORDER BY e.event_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites for user %d: %w", userID, err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close favorite rows")
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
