package testcase

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so config files can use Go
// duration strings ("30s", "5m") in both YAML and JSON.
type Duration time.Duration

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// UnmarshalYAML decodes a duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// UnmarshalJSON decodes a duration string.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalJSON encodes the duration as a string.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// ReportConfig controls report output.
type ReportConfig struct {
	// Path is where the JSON report is written. Empty disables
	// the file report.
	Path string `json:"path" yaml:"path"`
}

// MonitorConfig controls the live monitoring server.
type MonitorConfig struct {
	// Enabled starts the WebSocket server for the run.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Addr is the listen address, e.g. "127.0.0.1:8642".
	Addr string `json:"addr" yaml:"addr"`
}

// Config holds suite-level run configuration.
type Config struct {
	// Cases restricts the run to these IDs. Empty means all
	// registered cases.
	Cases []ID `json:"cases" yaml:"cases"`

	// Tags restricts the run to cases carrying at least one of
	// these tags. Applied after the Cases filter.
	Tags []string `json:"tags" yaml:"tags"`

	// Timeout is the default per-case timeout. A case's own
	// Timeout takes precedence.
	Timeout Duration `json:"timeout" yaml:"timeout"`

	// FailFast stops the run after the first failed, errored,
	// or timed-out case. Aborted cases never trigger it.
	FailFast bool `json:"fail_fast" yaml:"fail_fast"`

	// MaxConcurrency bounds parallel execution. Zero or one
	// means sequential.
	MaxConcurrency int `json:"max_concurrency" yaml:"max_concurrency"`

	// Verbose enables debug-level logging.
	Verbose bool `json:"verbose" yaml:"verbose"`

	// Report controls report output.
	Report ReportConfig `json:"report" yaml:"report"`

	// Monitor controls the live monitoring server.
	Monitor MonitorConfig `json:"monitor" yaml:"monitor"`
}

// NewConfig creates a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Timeout: Duration(5 * time.Minute),
	}
}

// Validate checks the configuration for misuse.
func (c *Config) Validate() error {
	if c.MaxConcurrency < 0 {
		return fmt.Errorf(
			"max_concurrency must not be negative, got %d",
			c.MaxConcurrency,
		)
	}
	if c.Timeout < 0 {
		return fmt.Errorf(
			"timeout must not be negative, got %s",
			c.Timeout.Std(),
		)
	}
	return nil
}

// LoadConfig reads a suite configuration from a YAML or JSON
// file, chosen by extension, and applies defaults for fields
// the file leaves unset.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to read config file %s: %w", path, err,
		)
	}

	cfg := NewConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf(
				"failed to parse config from %s: %w",
				path, err,
			)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf(
				"failed to parse config from %s: %w",
				path, err,
			)
		}
	default:
		return nil, fmt.Errorf(
			"unsupported config extension for %s", path,
		)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf(
			"invalid config %s: %w", path, err,
		)
	}
	return cfg, nil
}
