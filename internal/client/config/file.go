package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/spinadmin/internal/flagx"
	"github.com/dmitrijs2005/spinadmin/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used exclusively for file unmarshalling. Empty fields
// leave the current value untouched.
type FileConfig struct {
	BaseURL        string         `json:"base_url" yaml:"base_url"`
	Title          string         `json:"title" yaml:"title"`
	CacheKey       string         `json:"cache_key" yaml:"cache_key"`
	CacheMaxAge    timex.Duration `json:"cache_max_age" yaml:"cache_max_age"`
	RequestTimeout timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	DatabasePath   string         `json:"database_path" yaml:"database_path"`
	LogLevel       string         `json:"log_level" yaml:"log_level"`
}

// parseFile overlays cfg with the file named by -c/-config, if any. Files
// ending in .yaml or .yml are read as YAML, everything else as JSON.
func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc FileConfig) apply(cfg *Config) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.BaseURL, fc.BaseURL)
	set(&cfg.Title, fc.Title)
	set(&cfg.CacheKey, fc.CacheKey)
	set(&cfg.DatabasePath, fc.DatabasePath)
	set(&cfg.LogLevel, fc.LogLevel)

	if fc.CacheMaxAge.Duration > 0 {
		cfg.CacheMaxAge = fc.CacheMaxAge.Duration
	}
	if fc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
}
