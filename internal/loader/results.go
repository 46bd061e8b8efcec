package loader

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/elektrokombinacija/kivavis/internal/core"
)

// entry is one parsed "location,orientation,timestep" triple.
type entry struct {
	loc, step int
}

// LoadResults reads a planner results file and maps its locations onto g.
func LoadResults(path string, g *core.Grid) (*core.Solution, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("results %s: %w", path, ErrResourceMissing)
		}
		return nil, fmt.Errorf("results %s: %w", path, err)
	}
	defer f.Close()

	sol, err := ParseResults(f, g)
	if err != nil {
		return nil, fmt.Errorf("results %s: %w", path, err)
	}
	return sol, nil
}

// ParseResults parses results text. Line one is the agent count, each
// following line holds one agent's ";"-separated triples. Unparseable triples
// are skipped, entries are ordered by timestep and agents without a line are
// dropped.
func ParseResults(r io.Reader, g *core.Grid) (*core.Solution, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	n, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return nil, fmt.Errorf("agent count %q: %w", lines[0], ErrMalformed)
	}

	var paths []core.AgentPath
	for id := 0; id < n && id+1 < len(lines); id++ {
		entries := parseAgentLine(lines[id+1])
		path := make(core.AgentPath, len(entries))
		for i, e := range entries {
			path[i] = g.FromLocation(e.loc)
		}
		paths = append(paths, path)
	}
	return core.NewSolution(paths), nil
}

func parseAgentLine(line string) []entry {
	var out []entry
	for _, field := range strings.Split(strings.TrimSpace(line), ";") {
		if strings.TrimSpace(field) == "" {
			continue
		}
		parts := strings.Split(field, ",")
		if len(parts) < 3 {
			continue
		}
		loc, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			continue
		}
		step, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil {
			continue
		}
		out = append(out, entry{loc: loc, step: step})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].step < out[j].step })
	return out
}

// SolutionOrDemo loads path, generating a demo solution for g with up to
// target agents when the file is missing or its agent count is unreadable.
func SolutionOrDemo(path string, g *core.Grid, target int) *core.Solution {
	sol, err := LoadResults(path, g)
	if err == nil {
		return sol
	}
	sol = Demo(g, target)
	log.Printf("[WARN] %v, generated demo data for %d robots", err, sol.AgentCount())
	return sol
}
