package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sulnaq/snti/backend/internal/model/assessment"
	_ "modernc.org/sqlite"
)

// SQLiteArchive implements Archive with one JSON record per session, keyed
// by the public session id. Rewrites of the same session replace the record.
type SQLiteArchive struct {
	db *sql.DB
}

// NewSQLiteArchive opens (or creates) the archive database.
func NewSQLiteArchive(dbPath string) (*SQLiteArchive, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create archive directory: %w", err)
	}

	// WAL keeps background writers from blocking each other.
	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open archive database: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping archive database: %w", err)
	}

	archive := &SQLiteArchive{db: db}
	if err := archive.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize archive schema: %w", err)
	}
	return archive, nil
}

func (a *SQLiteArchive) initSchema() error {
	query := `
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		identifier TEXT NOT NULL,
		state TEXT NOT NULL,
		mbti_type TEXT,
		record_json TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_sessions_identifier ON sessions(identifier);
	`
	if _, err := a.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// SaveSession upserts the full serialized session record.
func (a *SQLiteArchive) SaveSession(ctx context.Context, session assessment.Session) error {
	record, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session %s: %w", session.ID, err)
	}

	query := `
	INSERT INTO sessions (id, identifier, state, mbti_type, record_json, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		state = excluded.state,
		mbti_type = excluded.mbti_type,
		record_json = excluded.record_json,
		updated_at = excluded.updated_at`

	_, err = a.db.ExecContext(ctx, query,
		session.ID,
		session.Identifier,
		string(session.State),
		session.MBTIType,
		string(record),
		session.CreatedAt.Unix(),
		session.UpdatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("write session %s: %w", session.ID, err)
	}
	return nil
}

// LoadSession reads one archived record back, mainly for operational
// inspection and tests.
func (a *SQLiteArchive) LoadSession(ctx context.Context, id string) (assessment.Session, error) {
	var record string
	err := a.db.QueryRowContext(ctx, `SELECT record_json FROM sessions WHERE id = ?`, id).Scan(&record)
	if err == sql.ErrNoRows {
		return assessment.Session{}, ErrNotFound
	}
	if err != nil {
		return assessment.Session{}, fmt.Errorf("read session %s: %w", id, err)
	}

	var session assessment.Session
	if err := json.Unmarshal([]byte(record), &session); err != nil {
		return assessment.Session{}, fmt.Errorf("decode session %s: %w", id, err)
	}
	return session, nil
}

// Close releases the database handle.
func (a *SQLiteArchive) Close() error {
	return a.db.Close()
}
