package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/elektrokombinacija/kivavis/internal/export"
)

func TestLoad(t *testing.T) {
	Convey("Given no config file", t, func() {
		dir := t.TempDir()
		wd, err := os.Getwd()
		So(err, ShouldBeNil)
		So(os.Chdir(dir), ShouldBeNil)
		Reset(func() { os.Chdir(wd) })

		cfg, err := Load(New(), "")

		Convey("defaults reproduce the plain invocation", func() {
			So(err, ShouldBeNil)
			So(cfg.Map, ShouldEqual, "kiva.map")
			So(cfg.Results, ShouldEqual, "my_results_paths.txt")
			So(cfg.Renderer, ShouldEqual, RendererWindow)
			So(cfg.Demo.Agents, ShouldEqual, 25)
			So(cfg.Interval, ShouldEqual, time.Duration(0))
			So(cfg.Export.Format, ShouldEqual, export.FormatPNG)
			So(cfg.Export.Loops, ShouldEqual, 1)
		})
	})

	Convey("Given a yaml file", t, func() {
		path := filepath.Join(t.TempDir(), "run.yaml")
		body := "renderer: export\ninterval: 250ms\ndemo:\n  agents: 600\nexport:\n  format: mjpeg\n  loops: 2\n"
		So(os.WriteFile(path, []byte(body), 0o644), ShouldBeNil)

		cfg, err := Load(New(), path)

		Convey("its values override the defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.Renderer, ShouldEqual, RendererExport)
			So(cfg.Interval, ShouldEqual, 250*time.Millisecond)
			So(cfg.Demo.Agents, ShouldEqual, 600)
			So(cfg.Export.Format, ShouldEqual, export.FormatMJPEG)
			So(cfg.Export.Loops, ShouldEqual, 2)
			So(cfg.Map, ShouldEqual, "kiva.map")
		})
	})

	Convey("An explicit config path that does not exist fails", t, func() {
		_, err := Load(New(), filepath.Join(t.TempDir(), "absent.yaml"))
		So(err, ShouldNotBeNil)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"unknown renderer", func(c *Config) { c.Renderer = "svg" }, false},
		{"unknown format", func(c *Config) { c.Export.Format = "gif" }, false},
		{"zero loops", func(c *Config) { c.Export.Loops = 0 }, false},
		{"negative interval", func(c *Config) { c.Interval = -time.Second }, false},
		{"zero dpi", func(c *Config) { c.Window.DPI = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			if err := New().Unmarshal(cfg); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}
