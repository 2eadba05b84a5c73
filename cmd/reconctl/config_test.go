package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danmuck/modrecon/internal/recon"
)

func TestApplyFileConfigOverlay(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "reconctl.toml")
	content := `
extension = ".cfg"
files_report = "only_files.txt"
sample_size = 2
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := applyFileConfig(recon.DefaultConfig(), path)
	if err != nil {
		t.Fatalf("apply config: %v", err)
	}
	if cfg.Extension != ".cfg" {
		t.Fatalf("unexpected extension: %q", cfg.Extension)
	}
	if cfg.FilesReport != "only_files.txt" {
		t.Fatalf("unexpected files report: %q", cfg.FilesReport)
	}
	if cfg.SampleSize != 2 {
		t.Fatalf("unexpected sample size: %d", cfg.SampleSize)
	}
	// Absent keys keep their defaults.
	if cfg.ModulesReport != "ext_modules.txt" {
		t.Fatalf("modules report default lost: %q", cfg.ModulesReport)
	}
}

func TestApplyFileConfigRejectsUnknownLevel(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "reconctl.toml")
	if err := os.WriteFile(path, []byte("log_level = \"loud\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := applyFileConfig(recon.DefaultConfig(), path); err == nil {
		t.Fatalf("expected error for unknown log level")
	}
}

func TestApplyFileConfigMissingFile(t *testing.T) {
	if _, err := applyFileConfig(recon.DefaultConfig(), filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
