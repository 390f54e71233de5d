package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/143WaysToLooseUrSelf/eventdesign/pkg/models/store"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

type UserStore interface {
	// Create stores a new user with a hashed credential. The login must be
	// unique; a duplicate surfaces as a constraint error from the store.
	Create(ctx context.Context, name, login, password, email string) (int64, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]store.UserRow, error)
}

type userStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) (UserStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &userStore{db: db}, nil
}

func (s *userStore) Create(ctx context.Context, name, login, password, email string) (int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash credential: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (user_name, login, password, email) VALUES (?, ?, ?, ?)`,
		name, login, string(hash), email)
	if err != nil {
		return 0, fmt.Errorf("insert user %q: %w", login, err)
	}
	return res.LastInsertId()
}

func (s *userStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE user_id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}

func (s *userStore) List(ctx context.Context) ([]store.UserRow, error) {
	logger := zerolog.Ctx(ctx)

	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id, user_name, login, email FROM users ORDER BY user_name`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close user rows")
		}
	}(rows)

	users := make([]store.UserRow, 0)
	for rows.Next() {
		var row store.UserRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Login, &row.Email); err != nil {
			return nil, err
		}
		users = append(users, row)
	}
	return users, rows.Err()
}
