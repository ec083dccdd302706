package search

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/verbforms-backend/internal/config"
	"github.com/heartmarshall/verbforms-backend/internal/domain"
)

// ===========================================================================
// Manual mocks (moq-style with func fields)
// ===========================================================================

type mockVerbRepo struct {
	GetByIDFunc       func(ctx context.Context, id string) (*domain.VerbRecord, error)
	SearchExactFunc   func(ctx context.Context, query string) ([]domain.VerbRecord, error)
	SearchPartialFunc func(ctx context.Context, query string, limit int) ([]domain.VerbRecord, error)
	CountFunc         func(ctx context.Context) (int, error)

	exactCalls   int
	partialCalls int
}

func (m *mockVerbRepo) GetByID(ctx context.Context, id string) (*domain.VerbRecord, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockVerbRepo) SearchExact(ctx context.Context, query string) ([]domain.VerbRecord, error) {
	m.exactCalls++
	if m.SearchExactFunc != nil {
		return m.SearchExactFunc(ctx, query)
	}
	return nil, nil
}

func (m *mockVerbRepo) SearchPartial(ctx context.Context, query string, limit int) ([]domain.VerbRecord, error) {
	m.partialCalls++
	if m.SearchPartialFunc != nil {
		return m.SearchPartialFunc(ctx, query, limit)
	}
	return nil, nil
}

func (m *mockVerbRepo) Count(ctx context.Context) (int, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func newService(repo *mockVerbRepo) *Service {
	cfg := config.SearchConfig{
		MaxPartialResults: 50,
		QueryTimeout:      5 * time.Second,
		DebounceDelay:     300 * time.Millisecond,
	}
	return NewService(slog.Default(), repo, cfg)
}

func rec(id string) domain.VerbRecord {
	return domain.VerbRecord{ID: id, Base: id}
}

// ---------------------------------------------------------------------------
// Search
// ---------------------------------------------------------------------------

func TestSearch_EmptyQuerySkipsStorage(t *testing.T) {
	t.Parallel()

	repo := &mockVerbRepo{}
	svc := newService(repo)

	got, err := svc.Search(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, repo.exactCalls, "empty query must not touch storage")
	assert.Zero(t, repo.partialCalls, "empty query must not touch storage")
}

func TestSearch_ExactResultsLead(t *testing.T) {
	t.Parallel()

	repo := &mockVerbRepo{
		SearchExactFunc: func(_ context.Context, query string) ([]domain.VerbRecord, error) {
			assert.Equal(t, "go", query)
			return []domain.VerbRecord{rec("go")}, nil
		},
		SearchPartialFunc: func(_ context.Context, query string, limit int) ([]domain.VerbRecord, error) {
			assert.Equal(t, 50, limit)
			return []domain.VerbRecord{rec("forgo"), rec("undergo")}, nil
		},
	}
	svc := newService(repo)

	got, err := svc.Search(context.Background(), "  Go ")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "go", got[0].ID, "exact matches always lead")
	assert.Equal(t, "forgo", got[1].ID)
	assert.Equal(t, "undergo", got[2].ID)
}

func TestSearch_ExactPhaseErrorFailsClosed(t *testing.T) {
	t.Parallel()

	boom := domain.NewStorageError("verb search go: database busy", domain.SeverityMedium, errors.New("busy"))
	repo := &mockVerbRepo{
		SearchExactFunc: func(context.Context, string) ([]domain.VerbRecord, error) {
			return nil, boom
		},
	}
	svc := newService(repo)

	got, err := svc.Search(context.Background(), "go")
	require.Error(t, err)
	assert.Nil(t, got, "no partial results on failure")
	assert.Zero(t, repo.partialCalls, "phase two must not run after phase one fails")
	assert.Equal(t, domain.SeverityMedium, domain.SeverityOf(err))
}

func TestSearch_PartialPhaseErrorFailsClosed(t *testing.T) {
	t.Parallel()

	repo := &mockVerbRepo{
		SearchExactFunc: func(context.Context, string) ([]domain.VerbRecord, error) {
			return []domain.VerbRecord{rec("go")}, nil
		},
		SearchPartialFunc: func(context.Context, string, int) ([]domain.VerbRecord, error) {
			return nil, domain.NewStorageError("verb search go: query failed", domain.SeverityMedium, errors.New("fail"))
		},
	}
	svc := newService(repo)

	got, err := svc.Search(context.Background(), "go")
	require.Error(t, err)
	assert.Nil(t, got, "exact hits are not returned when the partial phase fails")
}

func TestSearch_PropagatesTimeout(t *testing.T) {
	t.Parallel()

	repo := &mockVerbRepo{
		SearchExactFunc: func(ctx context.Context, _ string) ([]domain.VerbRecord, error) {
			<-ctx.Done()
			return nil, &domain.StorageError{
				Message:  "verb search: storage call timed out",
				Severity: domain.SeverityHigh,
				Err:      ctx.Err(),
			}
		},
	}
	svc := NewService(slog.Default(), repo, config.SearchConfig{
		MaxPartialResults: 50,
		QueryTimeout:      10 * time.Millisecond,
	})

	_, err := svc.Search(context.Background(), "go")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, domain.SeverityHigh, domain.SeverityOf(err))
}

// ---------------------------------------------------------------------------
// GetByID / Count
// ---------------------------------------------------------------------------

func TestGetByID_MissIsNilNotError(t *testing.T) {
	t.Parallel()

	svc := newService(&mockVerbRepo{})

	got, err := svc.GetByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetByID_Found(t *testing.T) {
	t.Parallel()

	want := rec("go")
	repo := &mockVerbRepo{
		GetByIDFunc: func(_ context.Context, id string) (*domain.VerbRecord, error) {
			assert.Equal(t, "go", id)
			return &want, nil
		},
	}
	svc := newService(repo)

	got, err := svc.GetByID(context.Background(), "go")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "go", got.ID)
}

func TestGetByID_StorageErrorPropagates(t *testing.T) {
	t.Parallel()

	repo := &mockVerbRepo{
		GetByIDFunc: func(context.Context, string) (*domain.VerbRecord, error) {
			return nil, domain.NewStorageError("verb go: query failed", domain.SeverityMedium, errors.New("fail"))
		},
	}
	svc := newService(repo)

	_, err := svc.GetByID(context.Background(), "go")
	require.Error(t, err)

	var se *domain.StorageError
	assert.ErrorAs(t, err, &se)
}

func TestCount(t *testing.T) {
	t.Parallel()

	repo := &mockVerbRepo{
		CountFunc: func(context.Context) (int, error) { return 180, nil },
	}
	svc := newService(repo)

	n, err := svc.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 180, n)
}
