package domain

// Dialect identifies the English variant used for forms and pronunciation.
type Dialect string

const (
	DialectUS Dialect = "en-US"
	DialectUK Dialect = "en-UK"
)

func (d Dialect) String() string { return string(d) }

func (d Dialect) IsValid() bool {
	switch d {
	case DialectUS, DialectUK:
		return true
	}
	return false
}

// Severity tiers a storage failure for user-facing messaging: low failures
// are transient, medium are retryable, high indicate a damaged store.
type Severity string

const (
	SeverityLow    Severity = "LOW"
	SeverityMedium Severity = "MEDIUM"
	SeverityHigh   Severity = "HIGH"
)

func (s Severity) String() string { return string(s) }

func (s Severity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}
