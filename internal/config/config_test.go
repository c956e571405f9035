package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"hufflint/internal/config"
	"hufflint/internal/diag"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hufflint.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := config.Default()
	if cfg.BaseIndentWidth != 4 || cfg.MaxLineWidth != 100 || cfg.MaxDiagnostics != 256 {
		t.Errorf("defaults = %d/%d/%d", cfg.BaseIndentWidth, cfg.MaxLineWidth, cfg.MaxDiagnostics)
	}
	if !cfg.RuleEnabled("alignment") || !cfg.RuleEnabled("doc-structure") {
		t.Error("all rules should be enabled by default")
	}
	if _, ok := cfg.SeverityOverride("alignment"); ok {
		t.Error("no overrides expected by default")
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
base_indent_width = 2
max_line_width = 80
enabled_rules = ["alignment", "decl-order"]
role_inference_strict = true

[severity_overrides]
alignment = "error"
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BaseIndentWidth != 2 || cfg.MaxLineWidth != 80 {
		t.Errorf("got %d/%d", cfg.BaseIndentWidth, cfg.MaxLineWidth)
	}
	if !cfg.RoleInferenceStrict {
		t.Error("role_inference_strict not applied")
	}
	if !cfg.RuleEnabled("alignment") || cfg.RuleEnabled("opcode-per-line") {
		t.Error("enabled_rules filter not applied")
	}
	sev, ok := cfg.SeverityOverride("alignment")
	if !ok || sev != diag.SevError {
		t.Errorf("override = %v/%v", sev, ok)
	}
}

func TestLoadRejectsUnknownRule(t *testing.T) {
	path := writeConfig(t, `enabled_rules = ["no-such-rule"]`)
	if _, err := config.Load(path); err == nil {
		t.Fatal("expected error")
	}
}

func TestLoadRejectsFatalOverride(t *testing.T) {
	path := writeConfig(t, "[severity_overrides]\nalignment = \"fatal\"\n")
	if _, err := config.Load(path); err == nil {
		t.Fatal("expected error")
	}
}

func TestFinishRejectsBadIndent(t *testing.T) {
	cfg := &config.Config{BaseIndentWidth: 0, MaxLineWidth: 100, MaxDiagnostics: 16}
	if err := cfg.Finish(); err == nil {
		t.Fatal("expected error")
	}
}
