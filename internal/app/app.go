package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/verbforms-backend/internal/adapter/sqlite"
	prefsrepo "github.com/heartmarshall/verbforms-backend/internal/adapter/sqlite/prefs"
	verbrepo "github.com/heartmarshall/verbforms-backend/internal/adapter/sqlite/verb"
	"github.com/heartmarshall/verbforms-backend/internal/app/seeder"
	"github.com/heartmarshall/verbforms-backend/internal/config"
	prefssvc "github.com/heartmarshall/verbforms-backend/internal/service/prefs"
	"github.com/heartmarshall/verbforms-backend/internal/service/search"
	"github.com/heartmarshall/verbforms-backend/internal/transport/rest"
)

// Run wires the full application together and serves HTTP until ctx is
// cancelled. It owns the lifecycle of every component it creates.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting verbforms backend", slog.String("version", BuildVersion()))

	db, err := sqlite.Open(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := sqlite.Migrate(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	txm := sqlite.NewTxManager(db)
	verbs := verbrepo.New(db, txm)
	prefs := prefsrepo.New(db)

	// Seed the bundled dataset on first launch. A populated store is
	// left untouched.
	pipeline := seeder.NewPipeline(logger, verbs, false)
	if _, err := pipeline.Run(ctx); err != nil {
		return fmt.Errorf("seed dataset: %w", err)
	}

	searchSvc := search.NewService(logger, verbs, cfg.Search)
	prefsSvc := prefssvc.NewService(logger, prefs, cfg.Prefs)

	router := rest.NewRouter(
		logger,
		cfg.CORS,
		rest.NewVerbHandler(searchSvc),
		rest.NewPrefsHandler(prefsSvc),
		rest.NewHealthHandler(db, BuildVersion()),
	)

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}

// Compile-time interface assertion.
var _ seeder.VerbBulkRepo = (*verbrepo.Repo)(nil)
