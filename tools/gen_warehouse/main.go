// Package main generates deterministic Kiva warehouse maps and path results
// files for exercising every visualization mode.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/elektrokombinacija/kivavis/internal/core"
	"github.com/elektrokombinacija/kivavis/internal/loader"
)

// Params defines one generated run.
type Params struct {
	Seed   int64
	Agents int
	Width  int
	Height int
	Steps  int // path length cap
}

const (
	shelfRun    = 10 // shelf cells per block along x
	shelfGap    = 2
	bandPeriod  = 4 // endpoint, shelf, endpoint, aisle
	firstShelfY = 3
	maxWait     = 5
	dwell       = 3
)

// Warehouse lays out robot zones on the left and right edges and bands of
// shelves with endpoints above and below them.
func Warehouse(width, height int) *core.Grid {
	left, right := 4, width-5
	return core.NewGridFunc(width, height, func(x, y int) core.CellTag {
		if (x == 0 || x == width-1) && y > 0 && y < height-1 {
			return core.RobotZone
		}
		if x < left || x > right || y < firstShelfY-1 || y > height-3 {
			return core.Free
		}
		if (x-left)%(shelfRun+shelfGap) >= shelfRun {
			return core.Free
		}
		switch (y - firstShelfY + 1) % bandPeriod {
		case 0, 2:
			return core.Endpoint
		case 1:
			return core.Obstacle
		}
		return core.Free
	})
}

// Paths routes each agent from a robot zone to an endpoint by breadth-first
// search, after a short random wait, and keeps it at the endpoint for a few
// steps.
func Paths(g *core.Grid, p Params) *core.Solution {
	rng := rand.New(rand.NewSource(p.Seed))
	zones := g.CellsWithTag(core.RobotZone)
	endpoints := g.CellsWithTag(core.Endpoint)
	if len(zones) == 0 || len(endpoints) == 0 {
		return core.NewSolution(nil)
	}

	paths := make([]core.AgentPath, 0, p.Agents)
	for id := 0; id < p.Agents; id++ {
		start := zones[rng.Intn(len(zones))]
		goal := endpoints[rng.Intn(len(endpoints))]

		var path core.AgentPath
		for i := rng.Intn(maxWait + 1); i > 0; i-- {
			path = append(path, start)
		}
		path = append(path, route(g, start, goal)...)
		for i := 0; i < dwell; i++ {
			path = append(path, path[len(path)-1])
		}
		if p.Steps > 0 && len(path) > p.Steps {
			path = path[:p.Steps]
		}
		paths = append(paths, path)
	}
	return core.NewSolution(paths)
}

var moves = []core.Pos{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}

// route is a shortest 4-connected path avoiding obstacles, inclusive of both
// ends, or just start when goal is unreachable.
func route(g *core.Grid, start, goal core.Pos) core.AgentPath {
	prev := make(map[core.Pos]core.Pos, g.Width*g.Height)
	prev[start] = start
	queue := []core.Pos{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == goal {
			break
		}
		for _, m := range moves {
			next := core.Pos{X: cur.X + m.X, Y: cur.Y + m.Y}
			if !g.InBounds(next.X, next.Y) || g.At(next.X, next.Y) == core.Obstacle {
				continue
			}
			if _, seen := prev[next]; seen {
				continue
			}
			prev[next] = cur
			queue = append(queue, next)
		}
	}
	if _, ok := prev[goal]; !ok {
		return core.AgentPath{start}
	}

	var rev core.AgentPath
	for p := goal; p != start; p = prev[p] {
		rev = append(rev, p)
	}
	rev = append(rev, start)
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

func write(dir string, p Params) error {
	g := Warehouse(p.Width, p.Height)
	sol := Paths(g, p)
	name := fmt.Sprintf("kiva_%d_%dx%d_%d", p.Agents, p.Width, p.Height, p.Seed)

	mapPath := filepath.Join(dir, name+".map")
	mf, err := os.Create(mapPath)
	if err != nil {
		return err
	}
	if err := loader.WriteMap(mf, g, p.Steps); err != nil {
		mf.Close()
		return err
	}
	if err := mf.Close(); err != nil {
		return err
	}

	resultsPath := filepath.Join(dir, name+"_paths.txt")
	rf, err := os.Create(resultsPath)
	if err != nil {
		return err
	}
	if err := loader.WriteResults(rf, g, sol); err != nil {
		rf.Close()
		return err
	}
	if err := rf.Close(); err != nil {
		return err
	}

	fmt.Printf("Generated: %s + %s (%d agents, %d steps, %dx%d grid)\n",
		mapPath, filepath.Base(resultsPath), sol.AgentCount(), sol.MaxTimestep(), p.Width, p.Height)
	return nil
}

func main() {
	seed := flag.Int64("seed", 42, "Random seed for deterministic generation")
	agents := flag.Int("agents", 25, "Number of agents")
	width := flag.Int("width", loader.DefaultWidth, "Grid width")
	height := flag.Int("height", loader.DefaultHeight, "Grid height")
	steps := flag.Int("steps", 80, "Maximum path length (0 = uncapped)")
	outputDir := flag.String("output", "testdata", "Output directory")
	scalingMode := flag.Bool("scaling", false, "Generate one run per visualization mode (5, 25, 80, 300, 600 agents)")

	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	counts := []int{*agents}
	if *scalingMode {
		counts = []int{5, 25, 80, 300, 600}
	}
	for _, n := range counts {
		p := Params{Seed: *seed, Agents: n, Width: *width, Height: *height, Steps: *steps}
		if err := write(*outputDir, p); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %d agent run: %v\n", n, err)
			os.Exit(1)
		}
	}
}
