package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseDotenv loads path into the process environment. Variables that are
// already set win, and a missing file is not an error.
func parseDotenv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// lookup returns the first non-empty variable among names.
func lookup(names ...string) (string, bool) {
	for _, n := range names {
		if v, ok := os.LookupEnv(n); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

func parseEnv(cfg *Config) error {
	if v, ok := lookup("SPINADMIN_BASE_URL", "VITE_BASE_URL"); ok {
		cfg.BaseURL = v
	}
	if v, ok := lookup("SPINADMIN_TITLE", "VITE_TITLE"); ok {
		cfg.Title = v
	}
	if v, ok := lookup("SPINADMIN_CACHE_KEY", "VITE_CACHE_KEY"); ok {
		cfg.CacheKey = v
	}
	if v, ok := lookup("SPINADMIN_CACHE_DURATION", "VITE_CACHE_DURATION"); ok {
		ms, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("cache duration %q: expected milliseconds: %w", v, err)
		}
		cfg.CacheMaxAge = time.Duration(ms) * time.Millisecond
	}
	if v, ok := lookup("SPINADMIN_REQUEST_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("request timeout %q: %w", v, err)
		}
		cfg.RequestTimeout = d
	}
	if v, ok := lookup("SPINADMIN_DB"); ok {
		cfg.DatabasePath = v
	}
	if v, ok := lookup("SPINADMIN_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	return nil
}
