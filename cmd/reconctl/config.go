package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/modrecon/internal/logging"
	"github.com/danmuck/modrecon/internal/recon"
)

// reconctl settings file key mapping to reconciliation run settings.
type fileConfig struct {
	Extension     string `toml:"extension"`
	FilesReport   string `toml:"files_report"`
	ModulesReport string `toml:"modules_report"`
	SampleSize    int    `toml:"sample_size"`
	LogLevel      string `toml:"log_level"`
}

// reconctl loader for the TOML settings file with default overlay. Only
// keys present in the file replace the supplied defaults.
func applyFileConfig(cfg recon.Config, path string) (recon.Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return recon.Config{}, fmt.Errorf("load reconctl config: %w", err)
	}

	if meta.IsDefined("extension") {
		cfg.Extension = strings.TrimSpace(raw.Extension)
	}
	if meta.IsDefined("files_report") {
		cfg.FilesReport = strings.TrimSpace(raw.FilesReport)
	}
	if meta.IsDefined("modules_report") {
		cfg.ModulesReport = strings.TrimSpace(raw.ModulesReport)
	}
	if meta.IsDefined("sample_size") {
		cfg.SampleSize = raw.SampleSize
	}
	if meta.IsDefined("log_level") {
		if !logging.SetLevel(raw.LogLevel) {
			return recon.Config{}, fmt.Errorf("unknown log_level: %q", raw.LogLevel)
		}
	}
	return cfg, nil
}
