package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/nsxbet/slowql/pkg/types"
)

// SplitMode selects how a SQL payload is split into statements.
type SplitMode string

const (
	// SplitAuto uses the MySQL lexer and falls back to SplitSimple when lexing fails.
	SplitAuto SplitMode = "auto"
	// SplitMySQL uses the MySQL lexer only.
	SplitMySQL SplitMode = "mysql"
	// SplitPostgres uses the PostgreSQL lexer, keeping dollar-quoted bodies intact.
	SplitPostgres SplitMode = "postgres"
	// SplitSimple splits on semicolons outside quoted literals.
	SplitSimple SplitMode = "simple"
)

// Formats lists the report formats accepted by Export, including the "yml" and
// "md" aliases.
var Formats = []string{"text", "json", "yaml", "yml", "csv", "html", "sarif", "markdown", "md"}

// Config represents the configuration for SQL analysis
type Config struct {
	// Disabled lists checks to skip, by check type or issue name.
	Disabled []string `yaml:"disabled" json:"disabled"`
	// MinSeverity drops findings below this severity from results.
	MinSeverity string `yaml:"minSeverity" json:"minSeverity"`
	// Parallel analyzes statements on a worker pool.
	Parallel bool `yaml:"parallel" json:"parallel"`
	// Workers bounds the worker pool; zero uses GOMAXPROCS.
	Workers int `yaml:"workers" json:"workers"`
	// FailOn makes the CLI exit non-zero when a finding of this severity or above exists.
	FailOn string    `yaml:"failOn" json:"failOn"`
	Split  SplitMode `yaml:"split" json:"split"`
	// Export lists report formats written to Out after each analysis.
	Export []string `yaml:"export" json:"export"`
	Out    string   `yaml:"out" json:"out"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Split: SplitAuto,
		Out:   "reports",
	}
}

// LoadFromFile loads configuration from a file. Fields absent from the file keep
// their default values.
func LoadFromFile(filename string) (*Config, error) {
	slog.Debug("Loading config from file", "filename", filename)
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %s", filename)
	}

	config := Default()

	// Try YAML first, then JSON
	if err := yaml.Unmarshal(data, config); err != nil {
		slog.Debug("YAML unmarshal failed", "error", err)
		config = Default()
		if err := json.Unmarshal(data, config); err != nil {
			slog.Debug("JSON unmarshal failed", "error", err)
			return nil, errors.Wrapf(err, "failed to parse config %s", filename)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", filename)
	}
	slog.Debug("Loaded config", "disabled", len(config.Disabled), "split", config.Split)
	return config, nil
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if c.MinSeverity != "" {
		if _, err := types.ParseSeverity(c.MinSeverity); err != nil {
			return errors.Wrap(err, "minSeverity")
		}
	}
	if c.FailOn != "" {
		if _, err := types.ParseSeverity(c.FailOn); err != nil {
			return errors.Wrap(err, "failOn")
		}
	}
	if c.Workers < 0 {
		return errors.Errorf("workers must not be negative, got %d", c.Workers)
	}
	switch c.Split {
	case "", SplitAuto, SplitMySQL, SplitPostgres, SplitSimple:
	default:
		return errors.Errorf("unknown split mode %q", c.Split)
	}
	for _, format := range c.Export {
		if !slices.Contains(Formats, strings.ToLower(format)) {
			return errors.Errorf("unknown export format %q", format)
		}
	}
	return nil
}

// MinSeverityLevel returns the configured minimum severity, or
// SeverityUnspecified when every finding is kept.
func (c *Config) MinSeverityLevel() types.Severity {
	s, _ := types.ParseSeverity(c.MinSeverity)
	return s
}

// FailOnLevel returns the configured failure threshold, or SeverityUnspecified
// when the CLI never fails on findings.
func (c *Config) FailOnLevel() types.Severity {
	s, _ := types.ParseSeverity(c.FailOn)
	return s
}

// SplitMode returns the configured split mode, defaulting to SplitAuto.
func (c *Config) SplitMode() SplitMode {
	if c.Split == "" {
		return SplitAuto
	}
	return c.Split
}
