package verb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/heartmarshall/verbforms-backend/internal/domain"
)

// mapError converts driver errors to domain errors. Deadline and
// cancellation errors keep their identity through the wrap so callers can
// still detect them with errors.Is.
func mapError(err error, entity, id string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &domain.StorageError{
			Message:  fmt.Sprintf("%s %s: storage call timed out", entity, id),
			Severity: domain.SeverityHigh,
			Err:      err,
		}
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrBusy, sqlite3.ErrLocked:
			return &domain.StorageError{
				Message:  fmt.Sprintf("%s %s: database busy", entity, id),
				Severity: domain.SeverityMedium,
				Err:      err,
			}
		case sqlite3.ErrCorrupt, sqlite3.ErrFull, sqlite3.ErrIoErr, sqlite3.ErrNotADB:
			return &domain.StorageError{
				Message:  fmt.Sprintf("%s %s: database damaged or unwritable", entity, id),
				Details:  sqliteErr.Code.Error(),
				Severity: domain.SeverityHigh,
				Err:      err,
			}
		case sqlite3.ErrConstraint:
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	return &domain.StorageError{
		Message:  fmt.Sprintf("%s %s: query failed", entity, id),
		Severity: domain.SeverityMedium,
		Err:      err,
	}
}
