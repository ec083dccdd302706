package verb

import (
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/heartmarshall/verbforms-backend/internal/domain"
)

// The legacy schema had no part-of-speech; migrated meanings get this
// placeholder.
const migratedPartOfSpeech = "verb"

// scanner abstracts *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanVerb(s scanner) (domain.VerbRecord, error) {
	var (
		rec            domain.VerbRecord
		legacyMeaning  string
		legacyUsage    string
		legacyExamples string
		meaningsJSON   sql.NullString
	)

	err := s.Scan(
		&rec.ID, &rec.Base, &rec.Past, &rec.Participle,
		&rec.PastUK, &rec.PastUS, &rec.ParticipleUK, &rec.ParticipleUS,
		&rec.PronunciationUS, &rec.PronunciationUK,
		&legacyMeaning, &legacyUsage, &legacyExamples, &meaningsJSON,
		&rec.SearchTerms,
	)
	if err != nil {
		return domain.VerbRecord{}, err
	}

	rec.Meanings = decodeMeanings(meaningsJSON, legacyMeaning, legacyUsage, legacyExamples)

	return rec, nil
}

func scanVerbRow(row *sql.Row) (domain.VerbRecord, error) {
	return scanVerb(row)
}

func scanVerbs(rows *sql.Rows) ([]domain.VerbRecord, error) {
	recs := []domain.VerbRecord{}
	for rows.Next() {
		rec, err := scanVerb(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return recs, nil
}

// ---------------------------------------------------------------------------
// Dual-schema decode
// ---------------------------------------------------------------------------

// decodeMeanings is the explicit two-branch decode between the
// multi-meaning schema and the legacy single-meaning columns.
//
// Branch one: if the meanings column parses to a non-empty list, it wins.
// Branch two: otherwise exactly one Meaning is synthesized from the legacy
// fields. The branch check makes the migration idempotent — a row that
// already carries meanings never re-enters the legacy path.
//
// Malformed JSON anywhere decodes as absent, never as an error: one
// corrupt row must not fail a whole search.
func decodeMeanings(meaningsJSON sql.NullString, legacyDef, legacyUsage, legacyExamples string) []domain.Meaning {
	if meaningsJSON.Valid && strings.TrimSpace(meaningsJSON.String) != "" {
		var meanings []domain.Meaning
		if err := json.Unmarshal([]byte(meaningsJSON.String), &meanings); err == nil && len(meanings) > 0 {
			return meanings
		}
	}

	return []domain.Meaning{synthesizeMeaning(legacyDef, legacyUsage, legacyExamples)}
}

// synthesizeMeaning reconstructs one Meaning from the legacy columns,
// distributing the flat example list across contexts in stored order:
// floor(totalExamples / numContexts) examples per context, leftovers going
// to the Meaning's own examples. With no contexts, every example stays on
// the Meaning.
func synthesizeMeaning(definition, usageJSON, examplesJSON string) domain.Meaning {
	m := domain.Meaning{
		Definition:   definition,
		PartOfSpeech: migratedPartOfSpeech,
	}

	contexts := decodeLegacyUsages(usageJSON)
	examples := decodeStringList(examplesJSON)

	if len(contexts) == 0 {
		m.Examples = examples
		return m
	}

	perContext := len(examples) / len(contexts)

	next := 0
	for _, c := range contexts {
		cu := domain.ContextualUsage{
			Context:     c.label,
			Description: c.description,
		}
		for j := 0; j < perContext && next < len(examples); j++ {
			cu.Examples = append(cu.Examples, examples[next])
			next++
		}
		m.ContextualUsages = append(m.ContextualUsages, cu)
	}

	if next < len(examples) {
		m.Examples = examples[next:]
	}

	return m
}

type legacyContext struct {
	label       string
	description string
}

// decodeLegacyUsages parses the legacy context→description JSON object,
// preserving key order (the distribution above depends on it). Anything
// malformed decodes as absent.
func decodeLegacyUsages(raw string) []legacyContext {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	dec := json.NewDecoder(strings.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil
	}

	var contexts []legacyContext
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil
		}

		var desc string
		if err := dec.Decode(&desc); err != nil {
			return nil
		}

		contexts = append(contexts, legacyContext{label: key, description: desc})
	}

	return contexts
}

func decodeStringList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil
	}
	return list
}
