package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/duochart/duochart/internal/model"
)

// Sentinel errors returned by profile operations. Callers distinguish
// them with errors.Is: a missing profile usually means "use defaults",
// a corrupt profile means "log it, then use defaults".
var (
	// ErrProfileNotFound is returned when the named profile does not exist.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrCorruptProfile is returned when a stored blob no longer decodes.
	// The stored row is left in place so the user can inspect it.
	ErrCorruptProfile = errors.New("profile data is corrupt")
)

// DefaultProfile is the profile name used when the user names none.
// It mirrors the single implicit storage slot of the original tool.
const DefaultProfile = "default"

// dbFileName is the SQLite file created inside the store directory.
const dbFileName = "duochart.db"

// Store provides SQLite-backed persistence for profiles.
type Store struct {
	db     *sql.DB
	dbPath string
}

// Options configures Store behavior.
type Options struct {
	// CreateIfNotExists creates the directory and database file when
	// missing. Read-only commands set this false to avoid scattering
	// empty databases.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging. Recommended; a render that
	// saves a profile while another shell lists them stays consistent.
	EnableWAL bool
}

// DefaultOptions returns the default store options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates the profile store in dir.
func Open(dir string, opts Options) (*Store, error) {
	dbPath := filepath.Join(dir, dbFileName)

	if opts.CreateIfNotExists {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	} else {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("profile store not found at %s", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check store path: %w", err)
		}
	}

	// modernc.org/sqlite connection modes: rwc creates, rw requires the
	// file to exist already.
	dsn := dbPath + "?mode=rw"
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile store: %w", err)
	}

	// SQLite supports one writer; extra connections only add lock churn.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	s := &Store{db: db, dbPath: dbPath}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := s.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path, for log messages.
func (s *Store) Path() string {
	return s.dbPath
}

// createTables creates the schema if it doesn't exist.
func (s *Store) createTables() error {
	schema := `
	-- One row per named profile; state is the opaque JSON snapshot.
	CREATE TABLE IF NOT EXISTS profiles (
		id TEXT NOT NULL,
		name TEXT NOT NULL UNIQUE,
		state TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_profiles_updated ON profiles(updated_at);
	`

	_, err := s.db.ExecContext(context.Background(), schema)
	return err
}

// ProfileInfo describes a stored profile without its state blob.
type ProfileInfo struct {
	ID        string
	Name      string
	UpdatedAt time.Time
}

// Save upserts the snapshot under the given profile name. The previous
// blob, if any, is replaced wholesale; the profile keeps its id.
func (s *Store) Save(ctx context.Context, name string, snap *model.Snapshot) error {
	blob, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	query := `
	INSERT INTO profiles (id, name, state, updated_at)
	VALUES (?, ?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(name) DO UPDATE SET
		state = excluded.state,
		updated_at = CURRENT_TIMESTAMP
	`

	if _, err := s.db.ExecContext(ctx, query, uuid.NewString(), name, string(blob)); err != nil {
		return fmt.Errorf("failed to save profile %q: %w", name, err)
	}
	return nil
}

// Load restores the snapshot stored under the given profile name.
//
// Missing fields in the stored blob keep their defaults: the blob is
// decoded into a default-populated snapshot. A blob that is not valid
// JSON returns ErrCorruptProfile.
func (s *Store) Load(ctx context.Context, name string) (*model.Snapshot, error) {
	var blob string
	query := `SELECT state FROM profiles WHERE name = ?`
	err := s.db.QueryRowContext(ctx, query, name).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile %q: %w", name, err)
	}

	snap := model.NewSnapshot()
	if err := json.Unmarshal([]byte(blob), snap); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptProfile, name, err)
	}
	return snap, nil
}

// List returns all stored profiles, most recently updated first.
func (s *Store) List(ctx context.Context) ([]ProfileInfo, error) {
	query := `SELECT id, name, updated_at FROM profiles ORDER BY updated_at DESC, name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var infos []ProfileInfo
	for rows.Next() {
		var info ProfileInfo
		var updated string
		if err := rows.Scan(&info.ID, &info.Name, &updated); err != nil {
			return nil, fmt.Errorf("failed to scan profile row: %w", err)
		}
		info.UpdatedAt = parseTimestamp(updated)
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate profiles: %w", err)
	}
	return infos, nil
}

// timestampFormats are the layouts SQLite may hand back for DATETIME
// columns depending on how the value was written.
var timestampFormats = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999",
}

// parseTimestamp parses a SQLite timestamp string, returning zero time
// when no known layout matches.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Delete removes the named profile. Deleting a missing profile returns
// ErrProfileNotFound.
func (s *Store) Delete(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM profiles WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete profile %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	return nil
}
