package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv(configPathEnv, "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, CatalogFile, cfg.Catalog.Source)
	assert.Equal(t, 2*time.Second, cfg.Menu.OrderConfirmDelay)
	assert.Equal(t, ":3000", cfg.Addr())
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kono.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
logLevel: debug
server:
  port: 8081
  corsOrigins: ["https://kono.ru"]
catalog:
  source: file
  path: /srv/menu.json
menu:
  orderConfirmDelay: 500ms
  sessionTtl: 1h
  sweepInterval: 30s
`), 0o644))

	t.Setenv("APP_ENV", "production")
	t.Setenv(configPathEnv, path)
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "/srv/menu.json", cfg.Catalog.Path)
	assert.Equal(t, 500*time.Millisecond, cfg.Menu.OrderConfirmDelay)
	assert.Equal(t, time.Hour, cfg.Menu.SessionTTL)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv(configPathEnv, filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Config)
		ok     bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, false},
		{"unknown source", func(c *Config) { c.Catalog.Source = "ftp" }, false},
		{"r2 without bucket", func(c *Config) { c.Catalog.Source = CatalogR2 }, false},
		{"r2 configured", func(c *Config) {
			c.Catalog.Source = CatalogR2
			c.R2.Bucket = "menus"
			c.R2.Endpoint = "https://r2.example.com"
		}, true},
		{"postgres without dsn", func(c *Config) { c.Catalog.Source = CatalogPostgres }, false},
		{"negative delay", func(c *Config) { c.Menu.OrderConfirmDelay = -time.Second }, false},
		{"zero ttl", func(c *Config) { c.Menu.SessionTTL = 0 }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
