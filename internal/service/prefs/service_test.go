package prefs

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/verbforms-backend/internal/config"
	"github.com/heartmarshall/verbforms-backend/internal/domain"
)

type mockPrefsRepo struct {
	GetFunc  func(ctx context.Context) (*domain.UserPreferences, error)
	SaveFunc func(ctx context.Context, p *domain.UserPreferences) error

	saved *domain.UserPreferences
}

func (m *mockPrefsRepo) Get(ctx context.Context) (*domain.UserPreferences, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	if m.saved != nil {
		cp := *m.saved
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockPrefsRepo) Save(ctx context.Context, p *domain.UserPreferences) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	cp := *p
	m.saved = &cp
	return nil
}

func newService(repo *mockPrefsRepo) *Service {
	return NewService(slog.Default(), repo, config.PrefsConfig{DefaultDialect: "en-US"})
}

func TestGet_CreatesDefaultsOnFirstLaunch(t *testing.T) {
	t.Parallel()

	repo := &mockPrefsRepo{}
	svc := newService(repo)

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DialectUS, got.Dialect)
	assert.False(t, got.IsDarkMode)
	assert.False(t, got.IsPremium)
	require.NotNil(t, repo.saved, "defaults must be persisted")
}

func TestSetDialect(t *testing.T) {
	t.Parallel()

	repo := &mockPrefsRepo{}
	svc := newService(repo)

	got, err := svc.SetDialect(context.Background(), domain.DialectUK)
	require.NoError(t, err)
	assert.Equal(t, domain.DialectUK, got.Dialect)
	assert.Equal(t, domain.DialectUK, repo.saved.Dialect)
}

func TestSetDialect_RejectsUnknown(t *testing.T) {
	t.Parallel()

	svc := newService(&mockPrefsRepo{})

	_, err := svc.SetDialect(context.Background(), "en-AU")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReset_PreservesPremium(t *testing.T) {
	t.Parallel()

	repo := &mockPrefsRepo{
		saved: &domain.UserPreferences{
			Dialect:    domain.DialectUK,
			IsDarkMode: true,
			IsPremium:  true,
		},
	}
	svc := newService(repo)

	got, err := svc.Reset(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DialectUS, got.Dialect)
	assert.False(t, got.IsDarkMode)
	assert.True(t, got.IsPremium, "reset must preserve the premium entitlement")
}

func TestMarkPremium(t *testing.T) {
	t.Parallel()

	repo := &mockPrefsRepo{saved: &domain.UserPreferences{Dialect: domain.DialectUS}}
	svc := newService(repo)

	got, err := svc.MarkPremium(context.Background())
	require.NoError(t, err)
	assert.True(t, got.IsPremium)
}

func TestGet_StorageErrorPropagates(t *testing.T) {
	t.Parallel()

	repo := &mockPrefsRepo{
		GetFunc: func(context.Context) (*domain.UserPreferences, error) {
			return nil, domain.NewStorageError("preferences: query failed", domain.SeverityMedium, errors.New("fail"))
		},
	}
	svc := newService(repo)

	_, err := svc.Get(context.Background())
	require.Error(t, err)

	var se *domain.StorageError
	assert.ErrorAs(t, err, &se)
}
