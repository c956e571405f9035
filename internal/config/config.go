// Package config holds the engine configuration. A Config value is threaded
// explicitly through every pipeline stage; there is no ambient state.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"hufflint/internal/diag"
)

const (
	// DefaultBaseIndentWidth is the number of spaces per nesting level.
	DefaultBaseIndentWidth = 4
	// DefaultMaxLineWidth bounds declaration headers before wrapping.
	DefaultMaxLineWidth = 100
	// DefaultMaxDiagnostics caps the per-file diagnostic bag.
	DefaultMaxDiagnostics = 256
)

// ErrUnknownRule indicates a rule identifier no checker answers to.
var ErrUnknownRule = errors.New("unknown rule")

type Config struct {
	BaseIndentWidth int `toml:"base_indent_width"`
	MaxLineWidth    int `toml:"max_line_width"`
	MaxDiagnostics  int `toml:"max_diagnostics"`

	// EnabledRules lists rule identifiers to run; empty means all.
	EnabledRules []string `toml:"enabled_rules"`
	// SeverityOverrides maps rule identifier to "info"/"warning"/"error".
	SeverityOverrides map[string]string `toml:"severity_overrides"`
	// RoleInferenceStrict turns "role could not be inferred" from a
	// silent skip into a finding.
	RoleInferenceStrict bool `toml:"role_inference_strict"`

	enabled   map[string]bool
	overrides map[string]diag.Severity
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{
		BaseIndentWidth: DefaultBaseIndentWidth,
		MaxLineWidth:    DefaultMaxLineWidth,
		MaxDiagnostics:  DefaultMaxDiagnostics,
	}
	if err := cfg.Finish(); err != nil {
		panic(err) // defaults are always valid
	}
	return cfg
}

// Load reads a TOML configuration file and validates it.
func Load(path string) (*Config, error) {
	cfg := &Config{
		BaseIndentWidth: DefaultBaseIndentWidth,
		MaxLineWidth:    DefaultMaxLineWidth,
		MaxDiagnostics:  DefaultMaxDiagnostics,
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := cfg.Finish(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Finish validates the public fields and builds the lookup tables. It must
// be called once after populating a Config by hand.
func (c *Config) Finish() error {
	if c.BaseIndentWidth <= 0 {
		return fmt.Errorf("base_indent_width must be positive, got %d", c.BaseIndentWidth)
	}
	if c.MaxLineWidth <= 0 {
		return fmt.Errorf("max_line_width must be positive, got %d", c.MaxLineWidth)
	}
	if c.MaxDiagnostics <= 0 {
		return fmt.Errorf("max_diagnostics must be positive, got %d", c.MaxDiagnostics)
	}

	c.enabled = nil
	if len(c.EnabledRules) > 0 {
		c.enabled = make(map[string]bool, len(c.EnabledRules))
		for _, name := range c.EnabledRules {
			name = strings.TrimSpace(name)
			if _, ok := diag.RuleByName(name); !ok {
				return fmt.Errorf("enabled_rules: %w: %q", ErrUnknownRule, name)
			}
			c.enabled[name] = true
		}
	}

	c.overrides = make(map[string]diag.Severity, len(c.SeverityOverrides))
	for name, sevName := range c.SeverityOverrides {
		if _, ok := diag.RuleByName(name); !ok {
			return fmt.Errorf("severity_overrides: %w: %q", ErrUnknownRule, name)
		}
		sev, ok := diag.ParseSeverity(sevName)
		if !ok || sev == diag.SevFatal {
			return fmt.Errorf("severity_overrides: invalid severity %q for rule %q", sevName, name)
		}
		c.overrides[name] = sev
	}
	return nil
}

// RuleEnabled reports whether a rule identifier should run.
func (c *Config) RuleEnabled(name string) bool {
	if c.enabled == nil {
		return true
	}
	return c.enabled[name]
}

// SeverityOverride returns the configured severity for a rule, if any.
func (c *Config) SeverityOverride(name string) (diag.Severity, bool) {
	sev, ok := c.overrides[name]
	return sev, ok
}
