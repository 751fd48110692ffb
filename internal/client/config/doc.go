// Package config loads runtime configuration for the spinadmin console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file in the working directory, if present. It never overrides
//     variables that are already set.
//  3. Environment variables (SPINADMIN_*, with the dashboard's VITE_* names
//     accepted as fallbacks).
//  4. Optional JSON or YAML file selected with -c or -config; the format is
//     picked by extension.
//  5. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   backend base URL, e.g. http://localhost:5000/api
//	-t string   console title
//	-m int      cache max age (seconds)
//	-r int      request timeout (seconds)
//	-d string   path of the local SQLite file
//	-l string   log level: debug, info, warn, error
//
// # File schema
//
// Durations use timex.Duration, so they can be strings like "10m" or integer
// nanoseconds:
//
//	{
//	  "base_url": "https://api.example.com/api",
//	  "cache_max_age": "10m",
//	  "request_timeout": "15s"
//	}
package config
