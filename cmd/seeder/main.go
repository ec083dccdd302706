// Command seeder loads the bundled irregular-verb dataset into the
// SQLite store. The server runs the same pipeline on first launch, so
// this command exists for rebuilding a store offline or forcing a
// reseed after a dataset update.
//
// Flags:
//
//	--force  reseed even when the store is already populated
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/verbforms-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/verbforms-backend/internal/adapter/sqlite/verb"
	"github.com/heartmarshall/verbforms-backend/internal/app"
	"github.com/heartmarshall/verbforms-backend/internal/app/seeder"
	"github.com/heartmarshall/verbforms-backend/internal/config"
)

// Compile-time interface assertion.
var _ seeder.VerbBulkRepo = (*verb.Repo)(nil)

func main() {
	forceFlag := flag.Bool("force", false, "reseed even when the store is already populated")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := sqlite.Open(ctx, cfg.Database)
	if err != nil {
		logger.Error("open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	if err := sqlite.Migrate(db); err != nil {
		logger.Error("run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	txm := sqlite.NewTxManager(db)
	repo := verb.New(db, txm)

	pipeline := seeder.NewPipeline(logger, repo, *forceFlag)

	result, err := pipeline.Run(ctx)
	if err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seeding finished",
		slog.Int("parsed", result.Parsed),
		slog.Int("inserted", result.Inserted),
		slog.Int("skipped", result.Skipped),
		slog.Duration("duration", result.Duration),
	)
}
