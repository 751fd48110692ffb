package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/spinadmin/internal/flagx"
)

// parseFlags populates Config fields from command-line flags. Unknown flags
// are filtered out first with flagx.FilterArgs so -c/-config can coexist.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-t", "-m", "-r", "-d", "-l"})

	fs := flag.NewFlagSet("spinadmin", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "backend base URL")
	fs.StringVar(&cfg.Title, "t", cfg.Title, "console title")
	maxAge := fs.Int("m", int(cfg.CacheMaxAge.Seconds()), "cache max age (in seconds)")
	timeout := fs.Int("r", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "local database file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "m":
			cfg.CacheMaxAge = time.Duration(*maxAge) * time.Second
		case "r":
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
	return nil
}
