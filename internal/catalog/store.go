package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
	_ "modernc.org/sqlite"

	"mxfkit/internal/logging"
)

// timeLayout keeps exported_at lexically sortable.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store manages the reference catalog backed by SQLite.
type Store struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// Open initializes or connects to the catalog database at path and applies
// migrations. The parent directory must already exist and be writable.
func Open(ctx context.Context, path string, logger *slog.Logger) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("catalog path is empty")
	}
	if err := checkDirectory(filepath.Dir(path)); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// Pragmas below are per connection.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if logger == nil {
		logger = logging.NewNop()
	}
	store := &Store{
		db:     db,
		path:   path,
		logger: logger.With(slog.String(logging.FieldPath, path)),
	}
	if err := store.applyMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// CheckDirectory verifies that dir exists and is readable and writable.
func CheckDirectory(dir string) error {
	return checkDirectory(dir)
}

func checkDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("catalog directory %s does not exist", dir)
		}
		return fmt.Errorf("stat catalog directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("catalog directory %s is not a directory", dir)
	}
	if err := unix.Access(dir, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return fmt.Errorf("catalog directory %s: insufficient permissions: %w", dir, err)
	}
	return nil
}
