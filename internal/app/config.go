package app

import "fmt"

// DefaultFile is the rule document read when no -f flag is given.
const DefaultFile = "Smakefile.hcl"

// Config holds everything the application needs to produce a report.
type Config struct {
	// FilePath is the rule document to load.
	FilePath string
	// Targets are the rule names to report on; empty means every rule.
	Targets []string
	// Verbose adds one diagnostic line per output file to the report.
	Verbose   bool
	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg, applies defaults, and returns a usable
// configuration.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.FilePath == "" {
		cfg.FilePath = DefaultFile
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log-format: must be 'text' or 'json'")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	return &cfg, nil
}
