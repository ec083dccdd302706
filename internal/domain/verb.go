package domain

// VerbRecord is one irregular verb with its conjugated forms, optional
// dialect-specific overrides, and an ordered list of meanings.
type VerbRecord struct {
	ID         string
	Base       string
	Past       string
	Participle string

	// Dialect overrides. Empty string means "use the canonical form".
	PastUK       string
	PastUS       string
	ParticipleUK string
	ParticipleUS string

	// Phonetic transcriptions, free-form text.
	PronunciationUS string
	PronunciationUK string

	Meanings []Meaning

	// SearchTerms is the denormalized token string used for substring
	// search. Derived via BuildSearchTerms; never hand-edited.
	SearchTerms string
}

// PastForm returns the past form for the given dialect, falling back to
// the canonical form when no override exists.
func (v *VerbRecord) PastForm(d Dialect) string {
	switch d {
	case DialectUK:
		if v.PastUK != "" {
			return v.PastUK
		}
	case DialectUS:
		if v.PastUS != "" {
			return v.PastUS
		}
	}
	return v.Past
}

// ParticipleForm returns the participle for the given dialect, falling
// back to the canonical form when no override exists.
func (v *VerbRecord) ParticipleForm(d Dialect) string {
	switch d {
	case DialectUK:
		if v.ParticipleUK != "" {
			return v.ParticipleUK
		}
	case DialectUS:
		if v.ParticipleUS != "" {
			return v.ParticipleUS
		}
	}
	return v.Participle
}

// Pronunciation returns the phonetic transcription for the given dialect.
func (v *VerbRecord) Pronunciation(d Dialect) string {
	if d == DialectUK {
		return v.PronunciationUK
	}
	return v.PronunciationUS
}

// Meaning is one distinct sense of a verb.
type Meaning struct {
	Definition       string            `json:"definition"`
	PartOfSpeech     string            `json:"partOfSpeech"`
	Register         string            `json:"register,omitempty"`
	Examples         []string          `json:"examples,omitempty"`
	ContextualUsages []ContextualUsage `json:"contextualUsages,omitempty"`
}

// ContextualUsage is a named sub-category of a Meaning with its own
// description and examples.
type ContextualUsage struct {
	Context     string   `json:"context"`
	Description string   `json:"description"`
	Examples    []string `json:"examples,omitempty"`
}
