package profile

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/collectibles-go/pkg/collectibles/models"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// StorageKey is the key the current profile is stored under.
const StorageKey = "playerProfile"

// Config holds configuration for the profile store.
type Config struct {
	// DBPath is the SQLite database file. Empty disables persistence.
	DBPath string `mapstructure:"db_path" default:"data/profile.db"`
}

// Store persists the player profile.
type Store interface {
	// Get returns the stored profile, or nil when none is stored.
	Get(ctx context.Context) (*models.PlayerProfile, error)
	// Set replaces the stored profile.
	Set(ctx context.Context, profile *models.PlayerProfile) error
	// Delete removes the stored profile.
	Delete(ctx context.Context) error
}

// NoopStore is used when no storage medium is available. Reads return no
// profile and writes are discarded.
type NoopStore struct{}

func (NoopStore) Get(context.Context) (*models.PlayerProfile, error) {
	return nil, nil
}

func (NoopStore) Set(context.Context, *models.PlayerProfile) error {
	return nil
}

func (NoopStore) Delete(context.Context) error {
	return nil
}

// SQLiteStore keeps the profile as JSON in a string-keyed SQLite table.
type SQLiteStore struct {
	db  *sql.DB
	log *zap.Logger
}

// OpenSQLite opens (or creates) the key-value database at path.
func OpenSQLite(path string, log *zap.Logger) (*SQLiteStore, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create profile directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}

	return &SQLiteStore{db: db, log: log}, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get returns the stored profile. A stored value that does not decode or
// validate is logged and reported as absent.
func (s *SQLiteStore) Get(ctx context.Context) (*models.PlayerProfile, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, StorageKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}

	var p models.PlayerProfile
	if err := json.Unmarshal([]byte(value), &p); err != nil {
		s.log.Error("failed to load player profile", zap.Error(err))
		return nil, nil
	}
	if err := p.Validate(); err != nil {
		s.log.Error("failed to load player profile", zap.Error(err))
		return nil, nil
	}
	return &p, nil
}

// Set stores the profile under StorageKey, replacing any previous value.
func (s *SQLiteStore) Set(ctx context.Context, profile *models.PlayerProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		StorageKey, string(data))
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// Delete removes the stored profile. Deleting a missing profile is not an error.
func (s *SQLiteStore) Delete(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, StorageKey); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}
