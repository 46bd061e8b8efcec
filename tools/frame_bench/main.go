// Package main measures frame cost of the adaptive visualization across a
// ladder of agent counts, one or more per mode.
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/elektrokombinacija/kivavis/internal/core"
	"github.com/elektrokombinacija/kivavis/internal/loader"
	"github.com/elektrokombinacija/kivavis/internal/vis/engine"
	"github.com/elektrokombinacija/kivavis/internal/vis/raster"
)

// BenchmarkResult stores the timing of one agent count.
type BenchmarkResult struct {
	Timestamp  string  `json:"timestamp"`
	CommitHash string  `json:"commit_hash"`
	GoVersion  string  `json:"go_version"`
	OS         string  `json:"os"`
	Arch       string  `json:"arch"`
	NumAgents  int     `json:"num_agents"`
	GridSize   string  `json:"grid_size"`
	Mode       string  `json:"mode"`
	Frames     int     `json:"frames"`
	Primitives int     `json:"primitives"`
	DrawMs     float64 `json:"draw_ms"`   // per frame, display list update
	RasterMs   float64 `json:"raster_ms"` // per frame, rasterization
	IntervalMs float64 `json:"interval_ms"`
	Headroom   float64 `json:"headroom"` // interval / total frame cost
}

var defaultCounts = []int{5, 10, 25, 30, 80, 100, 300, 500, 600, 1000}

func getGitCommit() string {
	cmd := exec.Command("git", "rev-parse", "--short", "HEAD")
	output, err := cmd.Output()
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(output))
}

// walks gives each agent a seeded random walk over non-obstacle cells.
func walks(g *core.Grid, agents, steps int, seed int64) *core.Solution {
	rng := rand.New(rand.NewSource(seed))
	open := append(g.CellsWithTag(core.Free), g.CellsWithTag(core.RobotZone)...)
	open = append(open, g.CellsWithTag(core.Endpoint)...)
	if len(open) == 0 {
		return core.NewSolution(nil)
	}
	paths := make([]core.AgentPath, agents)
	for id := range paths {
		p := open[rng.Intn(len(open))]
		path := make(core.AgentPath, 0, steps)
		for t := 0; t < steps; t++ {
			path = append(path, p)
			next := g.Clamp(core.Pos{X: p.X + rng.Intn(3) - 1, Y: p.Y + rng.Intn(3) - 1})
			if g.At(next.X, next.Y) != core.Obstacle {
				p = next
			}
		}
		paths[id] = path
	}
	return core.NewSolution(paths)
}

func bench(g *core.Grid, agents, frames int, dpi float64, seed int64) *BenchmarkResult {
	eng := engine.New(g, walks(g, agents, frames, seed), engine.WithDPI(dpi))
	r := raster.NewRenderer(eng.Layout)

	var drawTime, rasterTime time.Duration
	prims := 0
	for t := 0; t < frames; t++ {
		start := time.Now()
		s := eng.Render(t)
		drawTime += time.Since(start)

		start = time.Now()
		r.Render(s.Main, s.Info)
		rasterTime += time.Since(start)
		prims = len(s.Main.Items())
	}

	perFrame := func(d time.Duration) float64 {
		return float64(d.Microseconds()) / 1000.0 / float64(frames)
	}
	res := &BenchmarkResult{
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		CommitHash: getGitCommit(),
		GoVersion:  runtime.Version(),
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
		NumAgents:  agents,
		GridSize:   fmt.Sprintf("%dx%d", g.Width, g.Height),
		Mode:       eng.Profile.Mode.String(),
		Frames:     frames,
		Primitives: prims,
		DrawMs:     perFrame(drawTime),
		RasterMs:   perFrame(rasterTime),
		IntervalMs: float64(eng.Profile.Interval.Milliseconds()),
	}
	if cost := res.DrawMs + res.RasterMs; cost > 0 {
		res.Headroom = res.IntervalMs / cost
	}
	return res
}

func writeCSV(results []*BenchmarkResult, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"timestamp", "commit_hash", "go_version", "os", "arch",
		"num_agents", "grid_size", "mode", "frames", "primitives",
		"draw_ms", "raster_ms", "interval_ms", "headroom",
	}
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			r.Timestamp, r.CommitHash, r.GoVersion, r.OS, r.Arch,
			strconv.Itoa(r.NumAgents), r.GridSize, r.Mode,
			strconv.Itoa(r.Frames), strconv.Itoa(r.Primitives),
			fmt.Sprintf("%.3f", r.DrawMs), fmt.Sprintf("%.3f", r.RasterMs),
			fmt.Sprintf("%.0f", r.IntervalMs), fmt.Sprintf("%.1f", r.Headroom),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(results []*BenchmarkResult, path string) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func parseCounts(s string) ([]int, error) {
	if s == "" {
		return defaultCounts, nil
	}
	var out []int
	for _, f := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("agent count %q", f)
		}
		out = append(out, n)
	}
	return out, nil
}

func printSummary(results []*BenchmarkResult) {
	fmt.Println("\n=== FRAME BENCHMARK ===")
	fmt.Printf("%8s %-9s %6s %10s %10s %9s %9s\n",
		"Agents", "Mode", "Prims", "Draw(ms)", "Raster(ms)", "Interval", "Headroom")
	fmt.Println(strings.Repeat("-", 68))
	for _, r := range results {
		fmt.Printf("%8d %-9s %6d %10.3f %10.3f %8.0fms %8.1fx\n",
			r.NumAgents, r.Mode, r.Primitives, r.DrawMs, r.RasterMs, r.IntervalMs, r.Headroom)
	}
}

func main() {
	mapFile := flag.String("map", "", "Map file (default: built-in pattern warehouse)")
	agentList := flag.String("agents", "", "Comma-separated agent counts (default: a ladder over every mode)")
	frames := flag.Int("frames", 50, "Frames rendered per agent count")
	dpi := flag.Float64("dpi", 40, "Raster resolution")
	seed := flag.Int64("seed", 42, "Random seed for agent walks")
	outputFile := flag.String("output", "evidence/frame_bench.csv", "Output CSV file (JSON written alongside)")

	flag.Parse()

	counts, err := parseCounts(*agentList)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -agents: %v\n", err)
		os.Exit(1)
	}
	if *frames < 1 {
		*frames = 1
	}

	g := loader.PatternGrid()
	if *mapFile != "" {
		g, err = loader.LoadMap(*mapFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading map: %v\n", err)
			os.Exit(1)
		}
	}

	outputDir := filepath.Dir(*outputFile)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	var results []*BenchmarkResult
	for i, n := range counts {
		fmt.Printf("\r[%d/%d] %d agents...", i+1, len(counts), n)
		results = append(results, bench(g, n, *frames, *dpi, *seed))
	}
	fmt.Println()

	if err := writeCSV(results, *outputFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing results: %v\n", err)
		os.Exit(1)
	}
	jsonFile := strings.TrimSuffix(*outputFile, filepath.Ext(*outputFile)) + ".json"
	if err := writeJSON(results, jsonFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing results: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Results written to: %s, %s\n", *outputFile, jsonFile)

	printSummary(results)
}
