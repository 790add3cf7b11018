package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "covgap.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Input != DefaultInput {
		t.Errorf("Input = %q, want %q", cfg.Input, DefaultInput)
	}
	if cfg.Target != 80 || cfg.Top != 5 {
		t.Errorf("defaults = target %.1f top %d, want 80/5", cfg.Target, cfg.Top)
	}
}

func TestLoad_DefaultFilePickedUp(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := os.WriteFile(DefaultFile, []byte("target: 90\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Target != 90 {
		t.Errorf("Target = %.1f, want 90", cfg.Target)
	}
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoad_PartialFileMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, "input: build/lcov.info\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Input != "build/lcov.info" {
		t.Errorf("Input = %q, want build/lcov.info", cfg.Input)
	}
	if cfg.Target != 80 {
		t.Errorf("Target = %.1f, want default 80", cfg.Target)
	}
	if cfg.Top != 5 {
		t.Errorf("Top = %d, want default 5", cfg.Top)
	}
}

func TestLoad_AllFields(t *testing.T) {
	path := writeConfig(t, `input: out/lcov.info
target: 75.5
top: 10
strip_prefixes:
  - /home/ci/project/
  - /tmp/build/
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Input != "out/lcov.info" || cfg.Target != 75.5 || cfg.Top != 10 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if len(cfg.StripPrefixes) != 2 || cfg.StripPrefixes[0] != "/home/ci/project/" {
		t.Errorf("StripPrefixes = %v", cfg.StripPrefixes)
	}
}

func TestLoad_MalformedYAMLFails(t *testing.T) {
	path := writeConfig(t, "target: [not a number\n")

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for malformed YAML")
	}
	if !strings.Contains(err.Error(), "parsing config") {
		t.Errorf("unexpected error: %v", err)
	}
}
