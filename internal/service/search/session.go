package search

import "sync/atomic"

// Session hands out monotonically increasing sequence numbers for search
// requests so that a caller can discard stale responses: a response is
// applied only when its sequence number is still the latest issued.
// Without this, a slow earlier query could land after a faster later one
// and overwrite the fresher result.
//
// Session is a utility for interactive consumers of the search API (a
// typeahead view driving queries per keystroke); the HTTP layer itself
// does not use it.
type Session struct {
	seq atomic.Uint64
}

// NewSession creates a Session.
func NewSession() *Session {
	return &Session{}
}

// Begin issues the next sequence number. Safe for concurrent use.
func (s *Session) Begin() uint64 {
	return s.seq.Add(1)
}

// Latest reports whether seq is still the most recently issued number.
func (s *Session) Latest(seq uint64) bool {
	return s.seq.Load() == seq
}
