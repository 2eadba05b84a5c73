package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ToolConfig holds the optional reconctl settings file.
type ToolConfig struct {
	Extension     string `toml:"extension"`
	FilesReport   string `toml:"files_report"`
	ModulesReport string `toml:"modules_report"`
	SampleSize    int    `toml:"sample_size"`
	LogLevel      string `toml:"log_level"`
}

// LoadToolConfig reads and validates a settings file, filling defaults for
// absent keys.
func LoadToolConfig(path string) (ToolConfig, error) {
	var cfg ToolConfig
	if err := loadToml(path, &cfg); err != nil {
		return ToolConfig{}, err
	}
	if cfg.Extension == "" {
		cfg.Extension = ".eb"
	}
	if cfg.FilesReport == "" {
		cfg.FilesReport = "ext_eb_repo.txt"
	}
	if cfg.ModulesReport == "" {
		cfg.ModulesReport = "ext_modules.txt"
	}
	if cfg.SampleSize == 0 {
		cfg.SampleSize = 5
	}
	if err := ValidateToolConfig(cfg); err != nil {
		return ToolConfig{}, err
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

// ValidateToolConfig rejects settings reconctl cannot run with.
func ValidateToolConfig(cfg ToolConfig) error {
	if !strings.HasPrefix(cfg.Extension, ".") {
		return fmt.Errorf("extension must start with a dot: %q", cfg.Extension)
	}
	if strings.TrimSpace(cfg.FilesReport) == "" {
		return fmt.Errorf("config missing files_report")
	}
	if strings.TrimSpace(cfg.ModulesReport) == "" {
		return fmt.Errorf("config missing modules_report")
	}
	if cfg.FilesReport == cfg.ModulesReport {
		return fmt.Errorf("files_report and modules_report must differ: %q", cfg.FilesReport)
	}
	if cfg.SampleSize < 0 {
		return fmt.Errorf("sample_size must not be negative: %d", cfg.SampleSize)
	}
	if cfg.LogLevel != "" {
		switch strings.ToLower(strings.TrimSpace(cfg.LogLevel)) {
		case "trace", "debug", "info", "warn", "warning", "error", "disabled":
		default:
			return fmt.Errorf("unknown log_level: %q", cfg.LogLevel)
		}
	}
	return nil
}
