// Package sqlite provides the embedded SQLite store shared by all
// repositories: connection setup, schema migrations, and the transaction
// manager. Driver-to-domain error mapping lives with each entity
// repository.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	_ "github.com/mattn/go-sqlite3"

	"github.com/heartmarshall/verbforms-backend/internal/config"
)

// Open creates the SQLite connection configured from DatabaseConfig.
// It builds a file DSN with the busy-timeout, WAL, and foreign-key
// pragmas, pings for fail-fast validation, and returns the ready handle.
// The composition root owns the single instance and closes it at teardown.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	params := url.Values{}
	params.Set("_busy_timeout", fmt.Sprintf("%d", cfg.BusyTimeout.Milliseconds()))
	params.Set("_journal_mode", "WAL")
	params.Set("_foreign_keys", "on")

	dsn := fmt.Sprintf("file:%s?%s", cfg.Path, params.Encode())

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", cfg.Path, err)
	}

	// SQLite serializes writers; a single connection avoids SQLITE_BUSY
	// churn between the pool's own connections.
	db.SetMaxOpenConns(cfg.MaxOpenConns)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}
