package seeder

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/heartmarshall/verbforms-backend/internal/domain"
)

//go:embed data/verbs.json
var datasetFS embed.FS

const datasetPath = "data/verbs.json"

// seedVerb is the dataset row layout. Field names mirror the domain
// entity; the dataset is always new-format (legacy columns exist only in
// databases written by old app versions).
type seedVerb struct {
	ID           string           `json:"id"`
	Base         string           `json:"base"`
	Past         string           `json:"past"`
	Participle   string           `json:"participle"`
	PastUK       string           `json:"pastUK,omitempty"`
	PastUS       string           `json:"pastUS,omitempty"`
	ParticipleUK string           `json:"participleUK,omitempty"`
	ParticipleUS string           `json:"participleUS,omitempty"`
	PronUS       string           `json:"pronUS,omitempty"`
	PronUK       string           `json:"pronUK,omitempty"`
	Meanings     []domain.Meaning `json:"meanings"`
}

// LoadDataset parses the embedded verb dataset. Rows missing an id or a
// base form are dropped and counted; a malformed file is a hard error
// (the dataset ships with the binary, so it is a build defect).
func LoadDataset() ([]domain.VerbRecord, int, error) {
	raw, err := datasetFS.ReadFile(datasetPath)
	if err != nil {
		return nil, 0, fmt.Errorf("read embedded dataset: %w", err)
	}

	var rows []seedVerb
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, 0, fmt.Errorf("parse embedded dataset: %w", err)
	}

	recs := make([]domain.VerbRecord, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		if row.ID == "" || row.Base == "" {
			skipped++
			continue
		}
		recs = append(recs, domain.VerbRecord{
			ID:              row.ID,
			Base:            row.Base,
			Past:            row.Past,
			Participle:      row.Participle,
			PastUK:          row.PastUK,
			PastUS:          row.PastUS,
			ParticipleUK:    row.ParticipleUK,
			ParticipleUS:    row.ParticipleUS,
			PronunciationUS: row.PronUS,
			PronunciationUK: row.PronUK,
			Meanings:        row.Meanings,
		})
	}

	return recs, skipped, nil
}
