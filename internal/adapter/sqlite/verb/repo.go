// Package verb implements the VerbRecord repository on SQLite.
// Search queries are built with squirrel; the two-phase search keeps the
// exact-match and partial-match queries separate so exact hits always lead.
// Row decoding goes through the dual-schema codec in codec.go.
package verb

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/verbforms-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/verbforms-backend/internal/domain"
)

// Repo provides verb persistence backed by SQLite.
type Repo struct {
	db  *sql.DB
	txm *sqlite.TxManager
}

// New creates a new verb repository.
func New(db *sql.DB, txm *sqlite.TxManager) *Repo {
	return &Repo{db: db, txm: txm}
}

var verbColumns = []string{
	"id", "base", "past", "participle",
	"past_uk", "past_us", "participle_uk", "participle_us",
	"pron_us", "pron_uk",
	"meaning", "contextual_usage", "examples", "meanings",
	"search_terms",
}

// rankedOrder sorts partial matches by which form has the query as a
// prefix: base before past before participle before pure-substring hits.
// Ties break alphabetically by base.
const rankedOrder = `CASE
	WHEN lower(base) LIKE ? ESCAPE '\' THEN 0
	WHEN lower(past) LIKE ? ESCAPE '\' THEN 1
	WHEN lower(participle) LIKE ? ESCAPE '\' THEN 2
	ELSE 3
END, base`

// escapeLike makes query text match literally under LIKE.
var escapeLike = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

const countSQL = `SELECT COUNT(*) FROM verbs`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a single verb record.
// Returns domain.ErrNotFound when no row matches.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.VerbRecord, error) {
	querier := sqlite.QuerierFromCtx(ctx, r.db)

	query, args, err := sq.Select(verbColumns...).
		From("verbs").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	row := querier.QueryRowContext(ctx, query, args...)

	rec, err := scanVerbRow(row)
	if err != nil {
		return nil, mapError(err, "verb", id)
	}

	return &rec, nil
}

// SearchExact returns all records whose lowercased base equals the
// normalized query, ordered by base.
func (r *Repo) SearchExact(ctx context.Context, query string) ([]domain.VerbRecord, error) {
	querier := sqlite.QuerierFromCtx(ctx, r.db)

	stmt, args, err := sq.Select(verbColumns...).
		From("verbs").
		Where(sq.Expr("lower(base) = ?", query)).
		OrderBy("base").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build exact query: %w", err)
	}

	rows, err := querier.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, mapError(err, "verb search", query)
	}
	defer rows.Close()

	recs, err := scanVerbs(rows)
	if err != nil {
		return nil, mapError(err, "verb search", query)
	}

	return recs, nil
}

// SearchPartial returns records whose search_terms contains the normalized
// query as a substring, excluding exact base matches (phase-1 duplicates).
// LIKE metacharacters in the query match literally. Results are capped at
// limit and ordered by rankedOrder.
func (r *Repo) SearchPartial(ctx context.Context, query string, limit int) ([]domain.VerbRecord, error) {
	querier := sqlite.QuerierFromCtx(ctx, r.db)

	escaped := escapeLike.Replace(query)
	prefix := escaped + "%"
	stmt, args, err := sq.Select(verbColumns...).
		From("verbs").
		Where(sq.Expr(`search_terms LIKE ? ESCAPE '\'`, "%"+escaped+"%")).
		Where(sq.Expr("lower(base) != ?", query)).
		OrderByClause(rankedOrder, prefix, prefix, prefix).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build partial query: %w", err)
	}

	rows, err := querier.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, mapError(err, "verb search", query)
	}
	defer rows.Close()

	recs, err := scanVerbs(rows)
	if err != nil {
		return nil, mapError(err, "verb search", query)
	}

	return recs, nil
}

// Count returns the number of stored verb records.
func (r *Repo) Count(ctx context.Context) (int, error) {
	querier := sqlite.QuerierFromCtx(ctx, r.db)

	var n int
	if err := querier.QueryRowContext(ctx, countSQL).Scan(&n); err != nil {
		return 0, mapError(err, "verb", "count")
	}

	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Upsert inserts or replaces a record by id. It always writes the
// new-format meanings column and a freshly derived search_terms value;
// the legacy columns are written empty and never populated again.
func (r *Repo) Upsert(ctx context.Context, rec *domain.VerbRecord) error {
	if rec.ID == "" {
		return fmt.Errorf("verb: id must be non-empty: %w", domain.ErrValidation)
	}
	if rec.Base == "" {
		return fmt.Errorf("verb %s: base must be non-empty: %w", rec.ID, domain.ErrValidation)
	}

	meaningsJSON, err := json.Marshal(rec.Meanings)
	if err != nil {
		return fmt.Errorf("verb %s: encode meanings: %w", rec.ID, err)
	}

	rec.SearchTerms = domain.BuildSearchTerms(rec)

	querier := sqlite.QuerierFromCtx(ctx, r.db)

	stmt, args, err := sq.Insert("verbs").
		Options("OR REPLACE").
		Columns(verbColumns...).
		Values(
			rec.ID, rec.Base, rec.Past, rec.Participle,
			rec.PastUK, rec.PastUS, rec.ParticipleUK, rec.ParticipleUS,
			rec.PronunciationUS, rec.PronunciationUK,
			"", "", "", string(meaningsJSON),
			rec.SearchTerms,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert query: %w", err)
	}

	if _, err := querier.ExecContext(ctx, stmt, args...); err != nil {
		return mapError(err, "verb", rec.ID)
	}

	return nil
}

// BulkUpsert writes all records inside one transaction. Either every
// record lands or none does.
func (r *Repo) BulkUpsert(ctx context.Context, recs []domain.VerbRecord) (int, error) {
	if len(recs) == 0 {
		return 0, nil
	}

	inserted := 0
	err := r.txm.RunInTx(ctx, func(txCtx context.Context) error {
		for i := range recs {
			if err := r.Upsert(txCtx, &recs[i]); err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}
