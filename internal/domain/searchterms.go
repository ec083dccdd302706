package domain

import (
	"sort"
	"strings"
)

// minTokenLen filters out articles and short function words when indexing
// definition text.
const minTokenLen = 3

// BuildSearchTerms derives the denormalized token string used for the
// partial-match search phase. It collects, case-insensitively deduped:
//
//   - all verb forms (canonical plus non-empty dialect variants)
//   - definition words longer than two characters, per meaning
//   - every contextual-usage context label
//
// The set is sorted before joining so the output is reproducible from the
// record alone. Only substring matching ever consumes it, so the order
// carries no meaning.
func BuildSearchTerms(v *VerbRecord) string {
	set := make(map[string]struct{})

	add := func(s string) {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			set[s] = struct{}{}
		}
	}

	add(v.Base)
	add(v.Past)
	add(v.Participle)
	add(v.PastUK)
	add(v.PastUS)
	add(v.ParticipleUK)
	add(v.ParticipleUS)

	for _, m := range v.Meanings {
		for _, token := range strings.Fields(m.Definition) {
			token = strings.ToLower(token)
			if len(token) >= minTokenLen {
				set[token] = struct{}{}
			}
		}
		for _, cu := range m.ContextualUsages {
			add(cu.Context)
		}
	}

	terms := make([]string, 0, len(set))
	for t := range set {
		terms = append(terms, t)
	}
	sort.Strings(terms)

	return strings.Join(terms, " ")
}
