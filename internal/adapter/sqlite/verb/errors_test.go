package verb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/mattn/go-sqlite3"

	"github.com/heartmarshall/verbforms-backend/internal/domain"
)

func TestMapError_Nil(t *testing.T) {
	t.Parallel()
	if got := mapError(nil, "verb", "go"); got != nil {
		t.Errorf("mapError(nil) = %v, want nil", got)
	}
}

func TestMapError_NoRows(t *testing.T) {
	t.Parallel()
	err := mapError(sql.ErrNoRows, "verb", "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMapError_DeadlineKeepsIdentity(t *testing.T) {
	t.Parallel()
	err := mapError(fmt.Errorf("query: %w", context.DeadlineExceeded), "verb", "go")

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("deadline identity lost through wrap: %v", err)
	}
	if domain.SeverityOf(err) != domain.SeverityHigh {
		t.Errorf("timeout severity = %v, want high", domain.SeverityOf(err))
	}
}

func TestMapError_BusyIsMediumSeverity(t *testing.T) {
	t.Parallel()
	err := mapError(sqlite3.Error{Code: sqlite3.ErrBusy}, "verb", "go")

	var se *domain.StorageError
	if !errors.As(err, &se) {
		t.Fatalf("expected StorageError, got %v", err)
	}
	if se.Severity != domain.SeverityMedium {
		t.Errorf("busy severity = %v, want medium", se.Severity)
	}
}

func TestMapError_CorruptIsHighSeverity(t *testing.T) {
	t.Parallel()
	err := mapError(sqlite3.Error{Code: sqlite3.ErrCorrupt}, "verb", "go")

	var se *domain.StorageError
	if !errors.As(err, &se) {
		t.Fatalf("expected StorageError, got %v", err)
	}
	if se.Severity != domain.SeverityHigh {
		t.Errorf("corrupt severity = %v, want high", se.Severity)
	}
}

func TestMapError_ConstraintIsValidation(t *testing.T) {
	t.Parallel()
	err := mapError(sqlite3.Error{Code: sqlite3.ErrConstraint}, "verb", "go")
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestMapError_UnknownDefaultsMedium(t *testing.T) {
	t.Parallel()
	err := mapError(errors.New("disk exploded"), "verb", "go")
	if domain.SeverityOf(err) != domain.SeverityMedium {
		t.Errorf("unknown error severity = %v, want medium", domain.SeverityOf(err))
	}
}
