package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"SPINADMIN_BASE_URL", "VITE_BASE_URL", "SPINADMIN_TITLE", "VITE_TITLE",
		"SPINADMIN_CACHE_KEY", "VITE_CACHE_KEY", "SPINADMIN_CACHE_DURATION", "VITE_CACHE_DURATION",
		"SPINADMIN_REQUEST_TIMEOUT", "SPINADMIN_DB", "SPINADMIN_LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "http://localhost:5000/api", c.BaseURL)
	assert.Equal(t, "Admin Dashboard", c.Title)
	assert.Equal(t, 10*time.Minute, c.CacheMaxAge)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	require.NoError(t, c.Validate())
}

func TestLoad_NoSourcesGivesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(nil)
	require.NoError(t, err)
	if diff := cmp.Diff(defaults(), cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("VITE_BASE_URL", "http://vite:5000/api")
	t.Setenv("VITE_CACHE_DURATION", "60000")
	t.Setenv("SPINADMIN_REQUEST_TIMEOUT", "3s")
	t.Setenv("SPINADMIN_LOG_LEVEL", "debug")

	cfg := defaults()
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, "http://vite:5000/api", cfg.BaseURL)
	assert.Equal(t, time.Minute, cfg.CacheMaxAge)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)

	t.Setenv("SPINADMIN_BASE_URL", "https://own.example/api")
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, "https://own.example/api", cfg.BaseURL, "SPINADMIN_* wins over VITE_*")
}

func TestParseEnv_BadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("VITE_CACHE_DURATION", "ten minutes")
	assert.Error(t, parseEnv(defaults()))

	clearEnv(t)
	t.Setenv("SPINADMIN_REQUEST_TIMEOUT", "15")
	assert.Error(t, parseEnv(defaults()))
}

func TestParseDotenv_DoesNotOverrideEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("SPINADMIN_TITLE")
	t.Setenv("SPINADMIN_DB", "from-env.db")
	path := writeFile(t, ".env", "SPINADMIN_TITLE=From Dotenv\nSPINADMIN_DB=from-dotenv.db\n")
	t.Cleanup(func() { os.Unsetenv("SPINADMIN_TITLE") })

	require.NoError(t, parseDotenv(path))
	cfg := defaults()
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, "From Dotenv", cfg.Title)
	assert.Equal(t, "from-env.db", cfg.DatabasePath)

	assert.NoError(t, parseDotenv(filepath.Join(t.TempDir(), "missing.env")))
}

func TestParseFile_JSONAndYAML(t *testing.T) {
	jsonPath := writeFile(t, "cfg.json", `{"base_url":"https://json.example/api","cache_max_age":"5m","request_timeout":2000000000}`)
	yamlPath := writeFile(t, "cfg.yaml", "base_url: https://yaml.example/api\ncache_max_age: 90s\ntitle: Ops\n")

	cfg := defaults()
	require.NoError(t, parseFile(cfg, []string{"-c", jsonPath}))
	assert.Equal(t, "https://json.example/api", cfg.BaseURL)
	assert.Equal(t, 5*time.Minute, cfg.CacheMaxAge)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "Admin Dashboard", cfg.Title, "absent fields keep their value")

	cfg = defaults()
	require.NoError(t, parseFile(cfg, []string{"-config=" + yamlPath}))
	assert.Equal(t, "https://yaml.example/api", cfg.BaseURL)
	assert.Equal(t, 90*time.Second, cfg.CacheMaxAge)
	assert.Equal(t, "Ops", cfg.Title)
}

func TestParseFile_Errors(t *testing.T) {
	assert.Error(t, parseFile(defaults(), []string{"-c", filepath.Join(t.TempDir(), "nope.json")}))
	assert.Error(t, parseFile(defaults(), []string{"-c", writeFile(t, "bad.json", "{")}))
	assert.Error(t, parseFile(defaults(), []string{"-c", writeFile(t, "bad.yml", "cache_max_age: soon\n")}))
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    func(*Config)
		wantErr bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "https://flag.example/api", "-t", "Ops", "-m", "30", "-r", "5", "-d", "x.db", "-l", "warn"},
			want: func(c *Config) {
				c.BaseURL, c.Title, c.DatabasePath, c.LogLevel = "https://flag.example/api", "Ops", "x.db", "warn"
				c.CacheMaxAge, c.RequestTimeout = 30*time.Second, 5*time.Second
			},
		},
		{
			name: "foreign flags are ignored",
			args: []string{"-c", "cfg.json", "-a", "https://flag.example/api"},
			want: func(c *Config) { c.BaseURL = "https://flag.example/api" },
		},
		{name: "non numeric max age", args: []string{"-m", "abc"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			err := parseFlags(cfg, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			want := defaults()
			tt.want(want)
			assert.Empty(t, cmp.Diff(want, cfg))
		})
	}
}

func TestLoad_Precedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("SPINADMIN_BASE_URL", "https://env.example/api")
	t.Setenv("SPINADMIN_TITLE", "Env Title")
	t.Setenv("SPINADMIN_DB", "env.db")
	path := writeFile(t, "cfg.json", `{"title":"File Title","database_path":"file.db"}`)

	cfg, err := Load([]string{"-c", path, "-d", "flag.db"})
	require.NoError(t, err)
	assert.Equal(t, "https://env.example/api", cfg.BaseURL)
	assert.Equal(t, "File Title", cfg.Title)
	assert.Equal(t, "flag.db", cfg.DatabasePath)
}

func TestValidate(t *testing.T) {
	for _, mut := range []func(*Config){
		func(c *Config) { c.BaseURL = "localhost:5000/api" },
		func(c *Config) { c.BaseURL = "ftp://host/api" },
		func(c *Config) { c.CacheMaxAge = 0 },
		func(c *Config) { c.RequestTimeout = -time.Second },
		func(c *Config) { c.DatabasePath = "" },
		func(c *Config) { c.LogLevel = "loud" },
	} {
		c := defaults()
		mut(c)
		assert.Error(t, c.Validate())
	}
}

func TestLoadConfig_PanicsOnInvalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("SPINADMIN_BASE_URL", "not a url")

	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = []string{"spinadmin"}

	require.Panics(t, func() { LoadConfig() })
}
