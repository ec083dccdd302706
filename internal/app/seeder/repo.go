// Package seeder populates the verb store from the embedded dataset.
package seeder

import (
	"context"

	"github.com/heartmarshall/verbforms-backend/internal/domain"
)

// VerbBulkRepo defines the repository contract consumed by the pipeline.
// All methods use only domain types — no adapter imports.
// Implemented by verb.Repo.
type VerbBulkRepo interface {
	// BulkUpsert writes all records in one transaction.
	BulkUpsert(ctx context.Context, recs []domain.VerbRecord) (int, error)

	// Count returns the number of stored records (used to skip re-seeding).
	Count(ctx context.Context) (int, error)
}
