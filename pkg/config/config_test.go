package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(cfg.CIIndicators) == 0 {
		t.Error("expected default CI indicator table")
	}
	if cfg.Plugins.Expr {
		t.Error("expr plugin should be disabled by default")
	}
	if cfg.Plugins.Keyring.Enabled {
		t.Error("keyring plugin should be disabled by default")
	}
}

func TestLoadReadsFile(t *testing.T) {
	path := writeConfigFile(t, `
skip_directives:
  - prompt
deprecated_vars:
  - OLD_API_URL
plugins:
  expr: true
  keyring:
    enabled: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !cfg.SkipsDirective("prompt") {
		t.Error("expected prompt directive to be skipped")
	}
	if !cfg.IsDeprecated("OLD_API_URL") {
		t.Error("expected OLD_API_URL to be deprecated")
	}
	if !cfg.Plugins.Expr {
		t.Error("expected expr plugin enabled")
	}
	if cfg.Plugins.Keyring.Service != "envforge" {
		t.Errorf("expected default keyring service, got %q", cfg.Plugins.Keyring.Service)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := writeConfigFile(t, "skip_directives: [unclosed")
	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestLoadHonorsConfigEnvVar(t *testing.T) {
	path := writeConfigFile(t, "deprecated_vars: [LEGACY_TOKEN]")
	t.Setenv("ENVFORGE_CONFIG", path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.IsDeprecated("LEGACY_TOKEN") {
		t.Error("expected config from ENVFORGE_CONFIG path")
	}
}

func TestCIDetected(t *testing.T) {
	cfg := &Config{CIIndicators: []string{"ENVFORGE_TEST_CI_FLAG"}}

	if cfg.CIDetected() {
		t.Fatal("CI detected with no indicator set")
	}

	t.Setenv("ENVFORGE_TEST_CI_FLAG", "1")
	if !cfg.CIDetected() {
		t.Fatal("CI not detected with indicator set")
	}
}
