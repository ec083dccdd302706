// Package prefs persists UserPreferences as a single-row JSON blob.
package prefs

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/heartmarshall/verbforms-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/verbforms-backend/internal/domain"
)

// Repo provides preference persistence backed by SQLite.
type Repo struct {
	db *sql.DB
}

// New creates a new preferences repository.
func New(db *sql.DB) *Repo {
	return &Repo{db: db}
}

const getSQL = `SELECT data FROM preferences WHERE id = 1`

const saveSQL = `
INSERT INTO preferences (id, data, updated_at) VALUES (1, ?, ?)
ON CONFLICT (id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`

// Get returns the stored preferences.
// Returns domain.ErrNotFound before the first Save.
func (r *Repo) Get(ctx context.Context) (*domain.UserPreferences, error) {
	querier := sqlite.QuerierFromCtx(ctx, r.db)

	var raw string
	if err := querier.QueryRowContext(ctx, getSQL).Scan(&raw); err != nil {
		return nil, mapError(err)
	}

	var p domain.UserPreferences
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		// A corrupt blob is recovered by falling back to defaults rather
		// than wedging the app on every launch.
		defaults := domain.DefaultPreferences()
		return &defaults, nil
	}

	return &p, nil
}

// Save writes the full preference blob in place.
func (r *Repo) Save(ctx context.Context, p *domain.UserPreferences) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("preferences: encode: %w", err)
	}

	querier := sqlite.QuerierFromCtx(ctx, r.db)

	if _, err := querier.ExecContext(ctx, saveSQL, string(raw), time.Now().UTC()); err != nil {
		return mapError(err)
	}

	return nil
}

// mapError converts driver errors to domain errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &domain.StorageError{
			Message:  "preferences: storage call timed out",
			Severity: domain.SeverityHigh,
			Err:      err,
		}
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("preferences: %w", domain.ErrNotFound)
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
		return &domain.StorageError{
			Message:  "preferences: database busy",
			Severity: domain.SeverityMedium,
			Err:      err,
		}
	}

	return &domain.StorageError{
		Message:  "preferences: query failed",
		Severity: domain.SeverityMedium,
		Err:      err,
	}
}
