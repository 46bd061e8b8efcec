// Package export renders a run offline: every frame of one or more loops is
// rasterized to disk, next to a manifest and a chart of agent status over
// time.
package export

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/elektrokombinacija/kivavis/internal/vis/engine"
	"github.com/elektrokombinacija/kivavis/internal/vis/raster"
	"github.com/elektrokombinacija/kivavis/internal/vis/state"
)

// Output formats.
const (
	FormatPNG   = "png"
	FormatMJPEG = "mjpeg"
)

const (
	ManifestFile = "manifest.yaml"
	ChartFile    = "status.png"
	VideoFile    = "animation.avi"
)

// ErrFormat is returned for an unknown output format.
var ErrFormat = errors.New("unknown export format")

// Options selects what is written and where.
type Options struct {
	Dir    string
	Format string
	Loops  int
	Chart  bool
	DPI    float64
}

// Manifest describes one export on disk.
type Manifest struct {
	RunID       string    `yaml:"run_id"`
	Created     time.Time `yaml:"created"`
	Mode        string    `yaml:"mode"`
	Description string    `yaml:"description"`
	Agents      int       `yaml:"agents"`
	Grid        GridSize  `yaml:"grid"`
	MaxTimestep int       `yaml:"max_timestep"`
	Interval    string    `yaml:"interval"`
	FPS         int       `yaml:"fps"`
	Loops       int       `yaml:"loops"`
	Format      string    `yaml:"format"`
	Frames      int       `yaml:"frames"`
	Width       int       `yaml:"width"`
	Height      int       `yaml:"height"`
	Files       []string  `yaml:"files"`
	Chart       string    `yaml:"chart,omitempty"`
	Final       Counts    `yaml:"final"`
}

type GridSize struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Counts struct {
	Active    int `yaml:"active"`
	Picking   int `yaml:"picking"`
	Completed int `yaml:"completed"`
}

// Run renders opts.Loops passes over eng's solution into opts.Dir and
// returns the manifest it wrote.
func Run(eng *engine.Engine, opts Options) (*Manifest, error) {
	if opts.Loops < 1 {
		opts.Loops = 1
	}
	if opts.Format == "" {
		opts.Format = FormatPNG
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", opts.Dir, err)
	}

	l := eng.Layout.Scaled(opts.DPI)
	fps := FPS(eng.Profile.Interval)
	w, err := newFrameWriter(opts.Format, opts.Dir, l.Size.X, l.Size.Y, fps)
	if err != nil {
		return nil, err
	}

	rec := &recorder{
		renderer: raster.NewRenderer(l),
		writer:   w,
		counts:   make([]state.Counts, eng.Playback.MaxStep),
	}
	start := time.Now()
	runErr := eng.RunLoops(rec, opts.Loops)
	if err := w.Close(); err != nil && runErr == nil {
		runErr = err
	}
	if runErr != nil {
		return nil, runErr
	}
	log.Printf("[INFO] export: %d frames in %v", rec.frames, time.Since(start).Round(time.Millisecond))

	m := &Manifest{
		RunID:       uuid.NewString(),
		Created:     time.Now().UTC().Truncate(time.Second),
		Mode:        eng.Profile.Mode.String(),
		Description: eng.Profile.Mode.Description(),
		Agents:      eng.Solution.AgentCount(),
		Grid:        GridSize{eng.Grid.Width, eng.Grid.Height},
		MaxTimestep: eng.Playback.MaxStep,
		Interval:    eng.Profile.Interval.String(),
		FPS:         fps,
		Loops:       opts.Loops,
		Format:      opts.Format,
		Frames:      rec.frames,
		Width:       l.Size.X,
		Height:      l.Size.Y,
		Files:       w.Files(),
	}
	if last := rec.last; last != nil {
		m.Final = Counts{last.Active, last.Picking, last.Completed}
	}

	if opts.Chart {
		switch err := writeChart(filepath.Join(opts.Dir, ChartFile), rec.counts, m.Agents); {
		case errors.Is(err, ErrTooFewSteps):
			log.Printf("[INFO] export: %v, no chart", err)
		case err != nil:
			return nil, err
		default:
			m.Chart = ChartFile
		}
	}

	if err := writeManifest(filepath.Join(opts.Dir, ManifestFile), m); err != nil {
		return nil, err
	}
	return m, nil
}

// FPS is the frame rate matching interval, at least 1.
func FPS(interval time.Duration) int {
	if interval <= 0 {
		return 1
	}
	fps := int(math.Round(float64(time.Second) / float64(interval)))
	if fps < 1 {
		fps = 1
	}
	return fps
}

// recorder is the engine sink of an export.
type recorder struct {
	renderer *raster.Renderer
	writer   frameWriter
	counts   []state.Counts // by step, filled during the first loop
	last     *state.Counts
	frames   int
}

func (r *recorder) Present(s *engine.Snapshot) error {
	img := r.renderer.Render(s.Main, s.Info)
	if err := r.writer.WriteFrame(r.frames, img); err != nil {
		return fmt.Errorf("frame %d: %w", r.frames, err)
	}
	r.frames++
	if s.Step < len(r.counts) {
		r.counts[s.Step] = s.Frame.Counts
	}
	c := s.Frame.Counts
	r.last = &c
	return nil
}

func writeManifest(path string, m *Manifest) error {
	out, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// ReadManifest loads a manifest written by Run.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode manifest %s: %w", path, err)
	}
	return &m, nil
}
