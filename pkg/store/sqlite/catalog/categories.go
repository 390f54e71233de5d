package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/143WaysToLooseUrSelf/eventdesign/pkg/models/store"
	"github.com/rs/zerolog"
)

type CategoryStore interface {
	Add(ctx context.Context, name, description string) (int64, error)
	Update(ctx context.Context, id int64, name, description string) error
	// Delete removes the category; referencing events are detached
	// (category set to NULL), not deleted.
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]store.CategoryRow, error)
}

type categoryStore struct {
	db *sql.DB
}

func NewCategoryStore(db *sql.DB) (CategoryStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &categoryStore{db: db}, nil
}

func (c *categoryStore) Add(ctx context.Context, name, description string) (int64, error) {
	res, err := c.db.ExecContext(ctx,
		`INSERT INTO categories (category_name, description) VALUES (?, ?)`,
		name, description)
	if err != nil {
		return 0, fmt.Errorf("insert category: %w", err)
	}
	return res.LastInsertId()
}

func (c *categoryStore) Update(ctx context.Context, id int64, name, description string) error {
	_, err := c.db.ExecContext(ctx,
		`UPDATE categories SET category_name = ?, description = ? WHERE category_id = ?`,
		name, description, id)
	if err != nil {
		return fmt.Errorf("update category %d: %w", id, err)
	}
	return nil
}

func (c *categoryStore) Delete(ctx context.Context, id int64) error {
	_, err := c.db.ExecContext(ctx, `DELETE FROM categories WHERE category_id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete category %d: %w", id, err)
	}
	return nil
}

func (c *categoryStore) List(ctx context.Context) ([]store.CategoryRow, error) {
	logger := zerolog.Ctx(ctx)

	rows, err := c.db.QueryContext(ctx,
		`SELECT category_id, category_name, description FROM categories ORDER BY category_name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close category rows")
		}
	}(rows)

	categories := make([]store.CategoryRow, 0)
	for rows.Next() {
		var (
			row  store.CategoryRow
			desc sql.NullString
		)
		if err := rows.Scan(&row.ID, &row.Name, &desc); err != nil {
			return nil, err
		}
		if desc.Valid {
			d := desc.String
			row.Description = &d
		}
		categories = append(categories, row)
	}
	return categories, rows.Err()
}
