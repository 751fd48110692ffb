package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/dmitrijs2005/spinadmin/internal/logging"
)

// Config holds runtime settings for the console.
type Config struct {
	BaseURL        string
	Title          string
	CacheKey       string
	CacheMaxAge    time.Duration
	RequestTimeout time.Duration
	DatabasePath   string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:5000/api"
	c.Title = "Admin Dashboard"
	c.CacheKey = "spinadmin"
	c.CacheMaxAge = 10 * time.Minute
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "spinadmin.db"
	c.LogLevel = "info"
}

// Validate rejects settings the console cannot start with.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("base url must be an absolute http(s) URL, got %q", c.BaseURL)
	}
	if c.CacheMaxAge <= 0 {
		return fmt.Errorf("cache max age must be positive, got %s", c.CacheMaxAge)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database path is empty")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Load applies every source to the defaults, in precedence order, for the
// given command-line arguments (without the program name).
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseDotenv(".env"); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig is Load over os.Args. It panics on unreadable or invalid
// configuration.
func LoadConfig() *Config {
	cfg, err := Load(os.Args[1:])
	if err != nil {
		panic(err)
	}
	return cfg
}
