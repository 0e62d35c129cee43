package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/midbel/heatmap"
	"github.com/midbel/heatmap/fetch"
)

// Config holds the settings of the heatmap command.
type Config struct {
	URL     string        `yaml:"url"`
	Title   string        `yaml:"title"`
	Timeout time.Duration `yaml:"timeout"`

	Canvas CanvasConfig `yaml:"canvas"`
	Legend LegendConfig `yaml:"legend"`

	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

type CanvasConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Padding float64 `yaml:"padding"`
}

type LegendConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or json
}

const (
	FormatText = "text"
	FormatJSON = "json"
)

func Default() Config {
	return Config{
		URL:     fetch.DefaultURL,
		Title:   heatmap.DefaultTitle,
		Timeout: 30 * time.Second,
		Canvas: CanvasConfig{
			Width:   heatmap.DefaultWidth,
			Height:  heatmap.DefaultHeight,
			Padding: heatmap.DefaultPadding,
		},
		Legend: LegendConfig{
			Width:  heatmap.DefaultLegendWidth,
			Height: heatmap.DefaultLegendHeight,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Log: LogConfig{
			Level:  "info",
			Format: FormatText,
		},
	}
}

// Load reads the YAML file at path on top of the default settings and
// applies the environment overrides. An empty path only gives the defaults
// and the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnvOverrides() error {
	if v := strings.TrimSpace(os.Getenv("HEATMAP_URL")); v != "" {
		c.URL = v
	}
	if v := strings.TrimSpace(os.Getenv("HEATMAP_ADDR")); v != "" {
		c.Server.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv("HEATMAP_LOG_LEVEL")); v != "" {
		c.Log.Level = v
	}
	if v := strings.TrimSpace(os.Getenv("HEATMAP_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid HEATMAP_TIMEOUT %q: %w", v, err)
		}
		c.Timeout = d
	}
	return nil
}

// Surface converts the settings to the dimensions of the drawing surfaces.
func (c Config) Surface() heatmap.Canvas {
	cv := heatmap.Canvas{
		Width:   c.Canvas.Width,
		Height:  c.Canvas.Height,
		Padding: c.Canvas.Padding,
	}
	cv.Legend.Width = c.Legend.Width
	cv.Legend.Height = c.Legend.Height
	return cv
}

func (c Config) Validate() error {
	var errs []error
	if c.URL == "" {
		errs = append(errs, errors.New("url is required"))
	}
	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout can not be negative (%s)", c.Timeout))
	}
	if err := c.Surface().Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	switch c.Log.Format {
	case FormatText, FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("invalid log format %q (allowed: text, json)", c.Log.Format))
	}
	return errors.Join(errs...)
}

func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q (allowed: debug, info, warn, error)", s)
	}
}
