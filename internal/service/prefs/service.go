// Package prefs implements the user-preference business logic: dialect,
// theme, and the premium entitlement flag.
package prefs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/verbforms-backend/internal/config"
	"github.com/heartmarshall/verbforms-backend/internal/domain"
)

type prefsRepo interface {
	Get(ctx context.Context) (*domain.UserPreferences, error)
	Save(ctx context.Context, p *domain.UserPreferences) error
}

// Service implements the preferences business logic.
type Service struct {
	log  *slog.Logger
	repo prefsRepo
	cfg  config.PrefsConfig
}

// NewService creates a new Preferences service.
func NewService(logger *slog.Logger, repo prefsRepo, cfg config.PrefsConfig) *Service {
	return &Service{
		log:  logger.With("service", "prefs"),
		repo: repo,
		cfg:  cfg,
	}
}

// Get returns the stored preferences, creating and persisting the
// first-launch defaults when none exist yet.
func (s *Service) Get(ctx context.Context) (*domain.UserPreferences, error) {
	p, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			defaults := s.defaults()
			if saveErr := s.repo.Save(ctx, &defaults); saveErr != nil {
				return nil, fmt.Errorf("persist default preferences: %w", saveErr)
			}
			return &defaults, nil
		}
		return nil, fmt.Errorf("get preferences: %w", err)
	}

	return p, nil
}

// SetDialect updates the preferred dialect.
func (s *Service) SetDialect(ctx context.Context, dialect domain.Dialect) (*domain.UserPreferences, error) {
	if !dialect.IsValid() {
		return nil, fmt.Errorf("dialect %q: %w", dialect, domain.ErrValidation)
	}

	return s.update(ctx, func(p *domain.UserPreferences) {
		p.Dialect = dialect
	})
}

// SetDarkMode updates the theme flag.
func (s *Service) SetDarkMode(ctx context.Context, dark bool) (*domain.UserPreferences, error) {
	return s.update(ctx, func(p *domain.UserPreferences) {
		p.IsDarkMode = dark
	})
}

// MarkPremium records a completed one-time purchase. The flag is never
// cleared by this service — entitlement removal is a store-level concern.
func (s *Service) MarkPremium(ctx context.Context) (*domain.UserPreferences, error) {
	return s.update(ctx, func(p *domain.UserPreferences) {
		p.IsPremium = true
	})
}

// Reset restores defaults, preserving the premium entitlement.
func (s *Service) Reset(ctx context.Context) (*domain.UserPreferences, error) {
	return s.update(ctx, func(p *domain.UserPreferences) {
		p.Reset()
	})
}

func (s *Service) update(ctx context.Context, mutate func(*domain.UserPreferences)) (*domain.UserPreferences, error) {
	p, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	mutate(p)

	if err := s.repo.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("save preferences: %w", err)
	}

	return p, nil
}

func (s *Service) defaults() domain.UserPreferences {
	p := domain.DefaultPreferences()
	if d := domain.Dialect(s.cfg.DefaultDialect); d.IsValid() {
		p.Dialect = d
	}
	return p
}
