// Package config loads run settings from an optional kivavis.yaml file and
// command line flags.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/elektrokombinacija/kivavis/internal/export"
)

// Renderer names.
const (
	RendererWindow   = "window"
	RendererTerminal = "terminal"
	RendererExport   = "export"
	RendererLive     = "live"
)

// Config is the full run configuration.
type Config struct {
	Map      string        `mapstructure:"map"`
	Results  string        `mapstructure:"results"`
	Renderer string        `mapstructure:"renderer"`
	Interval time.Duration `mapstructure:"interval"` // 0 keeps the agent-count ladder
	Demo     DemoConfig    `mapstructure:"demo"`
	Window   WindowConfig  `mapstructure:"window"`
	Export   ExportConfig  `mapstructure:"export"`
	Live     LiveConfig    `mapstructure:"live"`
}

// DemoConfig sizes generated demo data.
type DemoConfig struct {
	Agents int `mapstructure:"agents"`
}

// WindowConfig configures the Gio window.
type WindowConfig struct {
	DPI float64 `mapstructure:"dpi"`
}

// ExportConfig configures offline rendering.
type ExportConfig struct {
	Dir    string  `mapstructure:"dir"`
	Format string  `mapstructure:"format"`
	Loops  int     `mapstructure:"loops"`
	Chart  bool    `mapstructure:"chart"`
	DPI    float64 `mapstructure:"dpi"`
}

// LiveConfig configures the browser view.
type LiveConfig struct {
	Addr     string  `mapstructure:"addr"`
	Announce bool    `mapstructure:"announce"`
	DPI      float64 `mapstructure:"dpi"`
}

// New returns a viper instance carrying every default.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("map", "kiva.map")
	v.SetDefault("results", "my_results_paths.txt")
	v.SetDefault("renderer", RendererWindow)
	v.SetDefault("interval", time.Duration(0))
	v.SetDefault("demo.agents", 25)
	v.SetDefault("window.dpi", 80.0)
	v.SetDefault("export.dir", "frames")
	v.SetDefault("export.format", export.FormatPNG)
	v.SetDefault("export.loops", 1)
	v.SetDefault("export.chart", true)
	v.SetDefault("export.dpi", 40.0)
	v.SetDefault("live.addr", ":8080")
	v.SetDefault("live.announce", false)
	v.SetDefault("live.dpi", 40.0)
	return v
}

// Load reads path into v, or kivavis.yaml from the working directory when
// path is empty. A missing default file is not an error.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Dir(path))
	} else {
		v.SetConfigName("kivavis")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated values and ranges.
func (c *Config) Validate() error {
	switch c.Renderer {
	case RendererWindow, RendererTerminal, RendererExport, RendererLive:
	default:
		return fmt.Errorf("renderer %q: want window, terminal, export or live", c.Renderer)
	}
	switch c.Export.Format {
	case export.FormatPNG, export.FormatMJPEG:
	default:
		return fmt.Errorf("export.format %q: want png or mjpeg", c.Export.Format)
	}
	if c.Export.Loops < 1 {
		return fmt.Errorf("export.loops %d: want at least 1", c.Export.Loops)
	}
	if c.Interval < 0 {
		return fmt.Errorf("interval %v: want a positive duration", c.Interval)
	}
	for key, dpi := range map[string]float64{"window.dpi": c.Window.DPI, "export.dpi": c.Export.DPI, "live.dpi": c.Live.DPI} {
		if dpi <= 0 {
			return fmt.Errorf("%s %v: want a positive value", key, dpi)
		}
	}
	return nil
}
