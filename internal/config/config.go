// Package config loads portfolio.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"portfolio3d/internal/contact"
	"portfolio3d/internal/site"
)

// DefaultPath is where the commands look when --config is not given.
const DefaultPath = "portfolio.yaml"

type Config struct {
	Editor   EditorConfig        `yaml:"editor"`
	Export   ExportConfig        `yaml:"export"`
	Site     SiteConfig          `yaml:"site"`
	Relay    contact.RelayConfig `yaml:"relay"`
	Throttle ThrottleConfig      `yaml:"throttle"`
	Log      LogConfig           `yaml:"log"`
}

type EditorConfig struct {
	MaxHistory   int    `yaml:"maxHistory"`
	PrefsFile    string `yaml:"prefsFile"`
	WindowWidth  int32  `yaml:"windowWidth"`
	WindowHeight int32  `yaml:"windowHeight"`
	TargetFPS    int32  `yaml:"targetFPS"`
}

// ExportConfig is the image export pass. A zero size uses the window size.
type ExportConfig struct {
	Dir         string `yaml:"dir"`
	ShowGrid    bool   `yaml:"showGrid"`
	ShowHelpers bool   `yaml:"showHelpers"`
	Width       int32  `yaml:"width"`
	Height      int32  `yaml:"height"`
}

type SiteConfig struct {
	Addr         string        `yaml:"addr"`
	ContactDelay time.Duration `yaml:"contactDelay"`
	Profile      site.Profile  `yaml:"profile"`
}

// ThrottleConfig limits contact messages per client. An empty RedisAddr
// disables throttling.
type ThrottleConfig struct {
	RedisAddr string        `yaml:"redisAddr"`
	Password  string        `yaml:"password"`
	DB        int           `yaml:"db"`
	Prefix    string        `yaml:"prefix"`
	Limit     int           `yaml:"limit"`
	Window    time.Duration `yaml:"window"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			MaxHistory:   50,
			PrefsFile:    ".editor_prefs.json",
			WindowWidth:  1280,
			WindowHeight: 720,
			TargetFPS:    120,
		},
		Export: ExportConfig{
			Dir:         "exports",
			ShowGrid:    false,
			ShowHelpers: false,
		},
		Site: SiteConfig{
			Addr:         ":8080",
			ContactDelay: contact.DefaultDelay,
			Profile: site.Profile{
				Name:   "portfolio3d",
				Email:  "hello@example.com",
				Skills: []string{"Go", "3D graphics", "raylib", "Tooling"},
				Projects: []site.Project{
					{Name: "Scene Editor", Summary: "Place, transform and undo primitive shapes; export the result as a PNG.", Link: "/editor"},
					{Name: "Showcase", Summary: "A drifting particle field around a spinning wireframe torus."},
				},
			},
		},
		Relay: contact.RelayConfig{
			Endpoint: contact.DefaultEndpoint,
			Timeout:  10 * time.Second,
		},
		Throttle: ThrottleConfig{
			Prefix: "portfolio:",
			Limit:  5,
			Window: time.Hour,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Relay secrets and the Redis address are usually injected by the
// environment rather than committed.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PORTFOLIO_RELAY_SERVICE_ID"); v != "" {
		c.Relay.ServiceID = v
	}
	if v := os.Getenv("PORTFOLIO_RELAY_TEMPLATE_ID"); v != "" {
		c.Relay.TemplateID = v
	}
	if v := os.Getenv("PORTFOLIO_RELAY_USER_ID"); v != "" {
		c.Relay.UserID = v
	}
	if v := os.Getenv("PORTFOLIO_RELAY_ACCESS_TOKEN"); v != "" {
		c.Relay.AccessToken = v
	}
	if v := os.Getenv("PORTFOLIO_REDIS_ADDR"); v != "" {
		c.Throttle.RedisAddr = v
	}
}

// RelayConfigured reports whether enough is set to reach the relay.
func (c *Config) RelayConfigured() bool {
	return c.Relay.ServiceID != "" && c.Relay.TemplateID != "" && c.Relay.UserID != ""
}

var validLevels = []string{"debug", "info", "warn", "error"}

func (c *Config) Validate() error {
	if c.Editor.MaxHistory < 1 {
		return fmt.Errorf("editor.maxHistory must be at least 1, got %d", c.Editor.MaxHistory)
	}
	if c.Editor.WindowWidth <= 0 || c.Editor.WindowHeight <= 0 {
		return fmt.Errorf("editor window %dx%d must be positive", c.Editor.WindowWidth, c.Editor.WindowHeight)
	}
	if c.Export.Width < 0 || c.Export.Height < 0 {
		return fmt.Errorf("export size %dx%d must not be negative", c.Export.Width, c.Export.Height)
	}
	if c.Site.ContactDelay < 0 {
		return fmt.Errorf("site.contactDelay must not be negative")
	}
	if c.Throttle.RedisAddr != "" && (c.Throttle.Limit < 1 || c.Throttle.Window <= 0) {
		return fmt.Errorf("throttle needs a positive limit and window")
	}

	for _, l := range validLevels {
		if c.Log.Level == l {
			return nil
		}
	}
	return fmt.Errorf("invalid log level %q (valid: %v)", c.Log.Level, validLevels)
}
