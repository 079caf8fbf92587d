package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the loaded configuration. Load calls it automatically.
// All problems found are reported together.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Dictionary.Alphabet) == "" {
		errs = append(errs, errors.New("dictionary.alphabet must not be empty"))
	}
	if c.Dictionary.LoadConcurrency < 1 {
		errs = append(errs, fmt.Errorf("dictionary.load_concurrency must be >= 1 (got %d)", c.Dictionary.LoadConcurrency))
	}
	if c.Search.MaxResults < 0 {
		errs = append(errs, fmt.Errorf("search.max_results must be >= 0 (got %d)", c.Search.MaxResults))
	}
	if c.Search.MaxQueryLength < 0 {
		errs = append(errs, fmt.Errorf("search.max_query_length must be >= 0 (got %d)", c.Search.MaxQueryLength))
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port))
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of debug, info, warn, error (got %q)", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format))
	}

	return errors.Join(errs...)
}

// Addr returns the host:port the HTTP server listens on.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
