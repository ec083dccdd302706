// Package search implements the verb search business logic: the two-phase
// exact-then-partial search, id lookup, and the request sequencing that
// keeps a slow earlier query from overwriting a faster later one.
package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/verbforms-backend/internal/config"
	"github.com/heartmarshall/verbforms-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type verbRepo interface {
	GetByID(ctx context.Context, id string) (*domain.VerbRecord, error)
	SearchExact(ctx context.Context, query string) ([]domain.VerbRecord, error)
	SearchPartial(ctx context.Context, query string, limit int) ([]domain.VerbRecord, error)
	Count(ctx context.Context) (int, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the search business logic.
type Service struct {
	log   *slog.Logger
	verbs verbRepo
	cfg   config.SearchConfig
}

// NewService creates a new Search service.
func NewService(logger *slog.Logger, verbs verbRepo, cfg config.SearchConfig) *Service {
	return &Service{
		log:   logger.With("service", "search"),
		verbs: verbs,
		cfg:   cfg,
	}
}

// Search returns verb records matching the raw query: the exact phase
// first (lowercased base equality), then the ranked partial phase, with
// no re-sorting across the boundary. An empty query returns an empty list
// without touching storage. Any storage failure fails the whole call —
// no silent partial results.
func (s *Service) Search(ctx context.Context, rawQuery string) ([]domain.VerbRecord, error) {
	query := domain.NormalizeText(rawQuery)
	if query == "" {
		return []domain.VerbRecord{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.QueryTimeout)
	defer cancel()

	exact, err := s.verbs.SearchExact(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search exact phase: %w", err)
	}

	partial, err := s.verbs.SearchPartial(ctx, query, s.cfg.MaxPartialResults)
	if err != nil {
		return nil, fmt.Errorf("search partial phase: %w", err)
	}

	s.log.DebugContext(ctx, "search completed",
		slog.String("query", query),
		slog.Int("exact", len(exact)),
		slog.Int("partial", len(partial)),
	)

	return append(exact, partial...), nil
}

// GetByID returns the verb with the given id, or (nil, nil) when no such
// record exists — a lookup miss is a value, not a failure.
func (s *Service) GetByID(ctx context.Context, id string) (*domain.VerbRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.QueryTimeout)
	defer cancel()

	rec, err := s.verbs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get verb: %w", err)
	}

	return rec, nil
}

// Count returns the number of stored verb records.
func (s *Service) Count(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.QueryTimeout)
	defer cancel()

	n, err := s.verbs.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count verbs: %w", err)
	}

	return n, nil
}
