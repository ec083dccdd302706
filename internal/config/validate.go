package config

import (
	"fmt"

	"github.com/heartmarshall/verbforms-backend/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path must be set")
	}
	if c.Database.MaxOpenConns < 1 {
		return fmt.Errorf("database.max_open_conns must be >= 1 (got %d)", c.Database.MaxOpenConns)
	}

	if err := c.Search.validate(); err != nil {
		return fmt.Errorf("search: %w", err)
	}

	if !domain.Dialect(c.Prefs.DefaultDialect).IsValid() {
		return fmt.Errorf("prefs.default_dialect must be %q or %q (got %q)",
			domain.DialectUS, domain.DialectUK, c.Prefs.DefaultDialect)
	}

	return nil
}

func (s *SearchConfig) validate() error {
	if s.MaxPartialResults < 1 || s.MaxPartialResults > 500 {
		return fmt.Errorf("max_partial_results must be in [1, 500] (got %d)", s.MaxPartialResults)
	}
	if s.QueryTimeout <= 0 {
		return fmt.Errorf("query_timeout must be > 0 (got %v)", s.QueryTimeout)
	}
	if s.DebounceDelay < 0 {
		return fmt.Errorf("debounce_delay must be >= 0 (got %v)", s.DebounceDelay)
	}
	return nil
}
