package main

import (
	"strings"
	"testing"

	"github.com/elektrokombinacija/kivavis/internal/config"
	"github.com/elektrokombinacija/kivavis/internal/core"
	"github.com/elektrokombinacija/kivavis/internal/export"
	"github.com/elektrokombinacija/kivavis/internal/vis/engine"
)

func TestFlagsBound(t *testing.T) {
	cmd := newRootCmd()
	for name := range flagKeys {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("flag %q missing", name)
		}
	}
}

func TestBanner(t *testing.T) {
	g := core.NewGridFunc(4, 3, func(x, y int) core.CellTag { return core.Free })
	sol := core.NewSolution([]core.AgentPath{{{X: 0, Y: 0}}})
	eng := engine.New(g, sol)
	cfg := &config.Config{
		Map:      "kiva.map",
		Renderer: config.RendererExport,
		Export:   config.ExportConfig{Dir: "out", Format: export.FormatMJPEG, Loops: 2},
	}

	got := banner(cfg, eng)
	for _, want := range []string{"kivavis", "kiva.map (4x3)", eng.Profile.Mode.String(), "export mjpeg x2 -> out"} {
		if !strings.Contains(got, want) {
			t.Errorf("banner missing %q:\n%s", want, got)
		}
	}
}

func TestRendererOptionsCarryDPI(t *testing.T) {
	cfg := &config.Config{
		Export: config.ExportConfig{Dir: "out", Format: export.FormatPNG, Loops: 3, Chart: true, DPI: 24},
		Live:   config.LiveConfig{Addr: ":9000", Announce: true, DPI: 32},
	}

	e := exportOptions(cfg)
	if e.DPI != 24 || e.Loops != 3 || e.Dir != "out" || !e.Chart {
		t.Errorf("exportOptions() = %+v", e)
	}
	l := liveOptions(cfg)
	if l.DPI != 32 || l.Addr != ":9000" || !l.Announce {
		t.Errorf("liveOptions() = %+v", l)
	}
}
