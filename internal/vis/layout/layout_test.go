package layout

import (
	"image"
	"testing"

	"github.com/elektrokombinacija/kivavis/internal/vis/mode"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		mode     mode.Mode
		wantFig  Inches
		wantInfo bool
	}{
		{mode.Detailed, Inches{20, 12}, true},
		{mode.Medium, Inches{20, 12}, true},
		{mode.Compact, Inches{16, 12}, false},
		{mode.Dense, Inches{16, 12}, false},
		{mode.Heatmap, Inches{18, 14}, false},
	}

	for _, tt := range tests {
		l := Build(tt.mode, 100)
		if l.Figure != tt.wantFig {
			t.Errorf("Build(%v).Figure = %v, want %v", tt.mode, l.Figure, tt.wantFig)
		}
		if l.HasInfo() != tt.wantInfo {
			t.Errorf("Build(%v).HasInfo() = %v, want %v", tt.mode, l.HasInfo(), tt.wantInfo)
		}
		if want := image.Pt(int(tt.wantFig.W*100), int(tt.wantFig.H*100)); l.Size != want {
			t.Errorf("Build(%v).Size = %v, want %v", tt.mode, l.Size, want)
		}
	}
}

func TestBuildSideBySide(t *testing.T) {
	l := Build(mode.Detailed, 50)
	if l.Main != image.Rect(0, 0, 500, 600) {
		t.Errorf("Main = %v", l.Main)
	}
	if l.Info != image.Rect(500, 0, 1000, 600) {
		t.Errorf("Info = %v", l.Info)
	}
	if l.Main.Overlaps(l.Info) {
		t.Errorf("panes overlap")
	}
}

func TestBuildDefaultsDPI(t *testing.T) {
	l := Build(mode.Compact, 0)
	if l.DPI != DefaultDPI {
		t.Errorf("DPI = %v, want %v", l.DPI, DefaultDPI)
	}
	if l.Main != image.Rect(0, 0, 16*DefaultDPI, 12*DefaultDPI) {
		t.Errorf("Main = %v", l.Main)
	}
}

func TestScaled(t *testing.T) {
	l := Build(mode.Medium, 80).Scaled(40)
	if l.Size != image.Pt(800, 480) {
		t.Errorf("Size = %v", l.Size)
	}
	if l.Info != image.Rect(400, 0, 800, 480) {
		t.Errorf("Info = %v", l.Info)
	}
}
