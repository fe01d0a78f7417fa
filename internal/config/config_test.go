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

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config differs from defaults (-want +got):\n%s", diff)
	}
	assert.Equal(t, 50, cfg.Editor.MaxHistory)
	assert.False(t, cfg.RelayConfigured())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
editor:
  maxHistory: 20
export:
  showGrid: true
  width: 1920
  height: 1080
site:
  addr: ":9000"
  contactDelay: 250ms
  profile:
    name: Jane Doe
relay:
  serviceID: svc
  templateID: tpl
  userID: usr
throttle:
  redisAddr: localhost:6379
  window: 10m
log:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Editor.MaxHistory)
	assert.Equal(t, int32(720), cfg.Editor.WindowHeight, "unset keys keep defaults")
	assert.True(t, cfg.Export.ShowGrid)
	assert.Equal(t, int32(1920), cfg.Export.Width)
	assert.Equal(t, ":9000", cfg.Site.Addr)
	assert.Equal(t, 250*time.Millisecond, cfg.Site.ContactDelay)
	assert.Equal(t, "Jane Doe", cfg.Site.Profile.Name)
	assert.True(t, cfg.RelayConfigured())
	assert.Equal(t, 10*time.Minute, cfg.Throttle.Window)
	assert.Equal(t, 5, cfg.Throttle.Limit)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORTFOLIO_RELAY_ACCESS_TOKEN", "tok")
	t.Setenv("PORTFOLIO_REDIS_ADDR", "redis:6379")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "tok", cfg.Relay.AccessToken)
	assert.Equal(t, "redis:6379", cfg.Throttle.RedisAddr)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	_, err := Load(writeFile(t, "editor: [not, a, map"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"max history":   func(c *Config) { c.Editor.MaxHistory = 0 },
		"window":        func(c *Config) { c.Editor.WindowWidth = -1 },
		"export size":   func(c *Config) { c.Export.Height = -5 },
		"contact delay": func(c *Config) { c.Site.ContactDelay = -time.Second },
		"throttle":      func(c *Config) { c.Throttle.RedisAddr = "x"; c.Throttle.Limit = 0 },
		"log level":     func(c *Config) { c.Log.Level = "loud" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
	assert.NoError(t, Default().Validate())
}
