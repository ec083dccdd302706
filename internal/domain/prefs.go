package domain

// UserPreferences holds the persisted app-level settings. A single
// instance exists per installation; it is created with defaults on first
// read and mutated in place.
type UserPreferences struct {
	Dialect    Dialect `json:"dialect"`
	IsDarkMode bool    `json:"isDarkMode"`
	IsPremium  bool    `json:"isPremium"`
}

// DefaultPreferences returns the first-launch preference values.
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		Dialect:    DialectUS,
		IsDarkMode: false,
		IsPremium:  false,
	}
}

// Reset restores defaults while preserving the premium flag, which
// represents a paid entitlement and survives an explicit reset.
func (p *UserPreferences) Reset() {
	premium := p.IsPremium
	*p = DefaultPreferences()
	p.IsPremium = premium
}
