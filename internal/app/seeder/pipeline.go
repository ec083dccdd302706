package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Result holds the outcome of a pipeline run.
type Result struct {
	Parsed   int
	Inserted int
	Skipped  int
	Duration time.Duration
}

// Pipeline seeds the verb store from the embedded dataset inside a single
// transaction.
type Pipeline struct {
	log   *slog.Logger
	repo  VerbBulkRepo
	force bool
}

// NewPipeline creates a new Pipeline. With force set, an already-populated
// store is re-seeded (records are upserted by id).
func NewPipeline(log *slog.Logger, repo VerbBulkRepo, force bool) *Pipeline {
	return &Pipeline{
		log:   log.With("component", "seeder"),
		repo:  repo,
		force: force,
	}
}

// Run executes the pipeline. An already-populated store is left untouched
// unless force was set.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	start := time.Now()

	if !p.force {
		n, err := p.repo.Count(ctx)
		if err != nil {
			return Result{}, fmt.Errorf("check existing records: %w", err)
		}
		if n > 0 {
			p.log.Info("store already populated, skipping seed", slog.Int("existing", n))
			return Result{Duration: time.Since(start)}, nil
		}
	}

	recs, skipped, err := LoadDataset()
	if err != nil {
		return Result{}, err
	}

	inserted, err := p.repo.BulkUpsert(ctx, recs)
	if err != nil {
		return Result{}, fmt.Errorf("bulk upsert: %w", err)
	}

	result := Result{
		Parsed:   len(recs) + skipped,
		Inserted: inserted,
		Skipped:  skipped,
		Duration: time.Since(start),
	}

	p.log.Info("seed completed",
		slog.Int("parsed", result.Parsed),
		slog.Int("inserted", result.Inserted),
		slog.Int("skipped", result.Skipped),
		slog.Duration("duration", result.Duration),
	)

	return result, nil
}
