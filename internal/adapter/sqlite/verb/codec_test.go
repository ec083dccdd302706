package verb

import (
	"database/sql"
	"encoding/json"
	"reflect"
	"testing"
)

func ns(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

func TestDecodeMeanings_NewFormatWins(t *testing.T) {
	t.Parallel()

	meanings := `[{"definition":"to move","partOfSpeech":"verb","examples":["I go home."]}]`

	got := decodeMeanings(ns(meanings), "legacy def", `{"Old":"old ctx"}`, `["legacy example"]`)

	if len(got) != 1 {
		t.Fatalf("expected 1 meaning, got %d", len(got))
	}
	if got[0].Definition != "to move" {
		t.Errorf("Definition = %q, want %q", got[0].Definition, "to move")
	}
	if len(got[0].ContextualUsages) != 0 {
		t.Errorf("legacy contexts leaked into new-format decode: %+v", got[0].ContextualUsages)
	}
}

func TestDecodeMeanings_LegacyFloorSplit(t *testing.T) {
	t.Parallel()

	usage := `{"Movement":"physical travel","Operation":"functioning"}`
	examples := `["e1","e2","e3","e4"]`

	got := decodeMeanings(sql.NullString{}, "to move or function", usage, examples)

	if len(got) != 1 {
		t.Fatalf("expected 1 synthetic meaning, got %d", len(got))
	}
	m := got[0]

	if m.PartOfSpeech != migratedPartOfSpeech {
		t.Errorf("PartOfSpeech = %q, want placeholder %q", m.PartOfSpeech, migratedPartOfSpeech)
	}
	if len(m.ContextualUsages) != 2 {
		t.Fatalf("expected 2 contexts, got %d", len(m.ContextualUsages))
	}

	movement := m.ContextualUsages[0]
	if movement.Context != "Movement" || movement.Description != "physical travel" {
		t.Errorf("first context = %+v, want Movement in stored order", movement)
	}
	if !reflect.DeepEqual(movement.Examples, []string{"e1", "e2"}) {
		t.Errorf("Movement examples = %v, want [e1 e2]", movement.Examples)
	}

	operation := m.ContextualUsages[1]
	if !reflect.DeepEqual(operation.Examples, []string{"e3", "e4"}) {
		t.Errorf("Operation examples = %v, want [e3 e4]", operation.Examples)
	}

	if len(m.Examples) != 0 {
		t.Errorf("expected zero leftover examples, got %v", m.Examples)
	}
}

func TestDecodeMeanings_LegacyLeftoverExamples(t *testing.T) {
	t.Parallel()

	usage := `{"A":"a","B":"b","C":"c"}`
	examples := `["e1","e2","e3","e4","e5"]`

	got := decodeMeanings(sql.NullString{}, "def", usage, examples)
	m := got[0]

	// floor(5/3) = 1 per context, two leftovers on the meaning itself.
	for i, want := range []string{"e1", "e2", "e3"} {
		if !reflect.DeepEqual(m.ContextualUsages[i].Examples, []string{want}) {
			t.Errorf("context %d examples = %v, want [%s]", i, m.ContextualUsages[i].Examples, want)
		}
	}
	if !reflect.DeepEqual(m.Examples, []string{"e4", "e5"}) {
		t.Errorf("leftover examples = %v, want [e4 e5]", m.Examples)
	}
}

func TestDecodeMeanings_LegacyNoContexts(t *testing.T) {
	t.Parallel()

	got := decodeMeanings(sql.NullString{}, "def", "", `["e1","e2"]`)
	m := got[0]

	if len(m.ContextualUsages) != 0 {
		t.Errorf("expected no contexts, got %+v", m.ContextualUsages)
	}
	if !reflect.DeepEqual(m.Examples, []string{"e1", "e2"}) {
		t.Errorf("examples = %v, want all on the meaning", m.Examples)
	}
}

func TestDecodeMeanings_MalformedJSONIsAbsent(t *testing.T) {
	t.Parallel()

	got := decodeMeanings(ns(`{not json`), "def", `[broken`, `{also broken`)

	if len(got) != 1 {
		t.Fatalf("expected 1 synthetic meaning, got %d", len(got))
	}
	m := got[0]
	if m.Definition != "def" {
		t.Errorf("Definition = %q, want legacy fallback", m.Definition)
	}
	if len(m.ContextualUsages) != 0 || len(m.Examples) != 0 {
		t.Errorf("malformed JSON should decode as absent, got %+v", m)
	}
}

func TestDecodeMeanings_Idempotent(t *testing.T) {
	t.Parallel()

	usage := `{"Movement":"physical travel"}`
	first := decodeMeanings(sql.NullString{}, "to move", usage, `["e1","e2"]`)

	// Re-encode the migrated meanings and decode again: the new-format
	// branch must short-circuit and reproduce the same result.
	encoded, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal migrated meanings: %v", err)
	}

	second := decodeMeanings(ns(string(encoded)), "to move", usage, `["e1","e2"]`)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("migration not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestDecodeLegacyUsages_PreservesOrder(t *testing.T) {
	t.Parallel()

	got := decodeLegacyUsages(`{"Zeta":"z","Alpha":"a","Mid":"m"}`)

	want := []legacyContext{
		{label: "Zeta", description: "z"},
		{label: "Alpha", description: "a"},
		{label: "Mid", description: "m"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order not preserved: %+v", got)
	}
}
