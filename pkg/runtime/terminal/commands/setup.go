package commands

import (
	"database/sql"
	"fmt"

	"github.com/143WaysToLooseUrSelf/eventdesign/pkg/services/config"
	"github.com/143WaysToLooseUrSelf/eventdesign/pkg/services/report"
	"github.com/143WaysToLooseUrSelf/eventdesign/pkg/store/sqlite"
	reportstore "github.com/143WaysToLooseUrSelf/eventdesign/pkg/store/sqlite/report"
)

// storeFlags are the connection flags shared by every command: either a
// direct database path or a profile file carrying one.
type storeFlags struct {
	profilePath string
	dbPath      string
}

func (s *storeFlags) resolve(defaultDBPath string) (string, error) {
	if s.profilePath != "" {
		cfg, err := config.LoadConfig(s.profilePath)
		if err != nil {
			return "", err
		}
		return cfg.DBPath, nil
	}
	if s.dbPath != "" {
		return s.dbPath, nil
	}
	return defaultDBPath, nil
}

func openDB(s *storeFlags, defaultDBPath string) (*sql.DB, error) {
	path, err := s.resolve(defaultDBPath)
	if err != nil {
		return nil, err
	}
	db, err := sqlite.NewDB(sqlite.Settings{DbPath: path})
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}
	return db, nil
}

func newSession(db *sql.DB) (*report.Session, error) {
	store, err := reportstore.NewStore(db)
	if err != nil {
		return nil, err
	}
	return report.NewSession(store)
}
