// Package state computes the per-step frame state and tracks playback.
package state

import (
	"fmt"

	"github.com/elektrokombinacija/kivavis/internal/core"
	"github.com/elektrokombinacija/kivavis/internal/vis/mode"
)

// Status is the per-frame category of an agent.
type Status int

const (
	Active Status = iota
	Picking
	Completed
)

func (s Status) String() string {
	return [...]string{"ACTIVE", "PICKING", "COMPLETED"}[s]
}

// Agent is one agent at one step.
type Agent struct {
	ID     int
	Status Status
	Pos    core.Pos   // meaningless when Completed
	Trail  []core.Pos // preceding positions, oldest first
}

// StatusLine renders the agent for the info panel.
func (a Agent) StatusLine() string {
	if a.Status == Completed {
		return fmt.Sprintf("R%d: COMPLETED", a.ID)
	}
	return fmt.Sprintf("R%d: (%d,%d) %s", a.ID, a.Pos.X, a.Pos.Y, a.Status)
}

// Counts aggregates agent statuses for a step.
type Counts struct {
	Active    int
	Picking   int
	Completed int
}

// Total is the number of agents counted.
func (c Counts) Total() int {
	return c.Active + c.Picking + c.Completed
}

// Frame is everything drawn for one step. It shares no memory with other
// frames except the underlying path slices that trails alias.
type Frame struct {
	Step        int
	MaxTimestep int
	Agents      []Agent  // nil in heatmap mode
	Density     *Density // nil unless heatmap mode
	Counts      Counts
	StatusLines []string // only when the profile shows individual status
}

// Progress is Step / MaxTimestep.
func (f *Frame) Progress() float64 {
	if f.MaxTimestep <= 0 {
		return 0
	}
	return float64(f.Step) / float64(f.MaxTimestep)
}

// Compute builds the frame for step t from scratch.
func Compute(g *core.Grid, sol *core.Solution, p mode.Profile, t int) *Frame {
	f := &Frame{Step: t, MaxTimestep: sol.MaxTimestep()}
	if !p.Individual() {
		f.Density = ComputeDensity(g, sol, t)
		f.Counts.Active = f.Density.Sum()
		f.Counts.Completed = sol.AgentCount() - f.Counts.Active
		return f
	}

	f.Agents = make([]Agent, 0, sol.AgentCount())
	for id, path := range sol.Paths {
		a := Agent{ID: id}
		if path.Present(t) {
			a.Pos = path[t]
			a.Trail = TrailPoints(path, t, p.TrailLength)
			if g.At(a.Pos.X, a.Pos.Y) == core.Endpoint {
				a.Status = Picking
				f.Counts.Picking++
			} else {
				a.Status = Active
				f.Counts.Active++
			}
		} else {
			a.Status = Completed
			f.Counts.Completed++
		}
		f.Agents = append(f.Agents, a)
		if p.ShowIndividualStatus {
			f.StatusLines = append(f.StatusLines, a.StatusLine())
		}
	}
	return f
}

// TrailPoints returns the min(length, t) positions before step t, or nil
// when fewer than two would be drawn.
func TrailPoints(path core.AgentPath, t, length int) []core.Pos {
	if t <= 0 || length <= 0 || t > len(path) {
		return nil
	}
	k := length
	if t < k {
		k = t
	}
	if k <= 1 {
		return nil
	}
	return path[t-k : t]
}

// Density counts present agents per cell.
type Density struct {
	Width, Height int
	cells         []int
	min, max      int
	sum           int
}

// ComputeDensity counts agents present at step t.
func ComputeDensity(g *core.Grid, sol *core.Solution, t int) *Density {
	d := &Density{Width: g.Width, Height: g.Height, cells: make([]int, g.Width*g.Height)}
	for _, path := range sol.Paths {
		if !path.Present(t) {
			continue
		}
		pos := path[t]
		if !g.InBounds(pos.X, pos.Y) {
			continue
		}
		i := pos.Y*g.Width + pos.X
		d.cells[i]++
		d.sum++
		if d.cells[i] > d.max {
			d.max = d.cells[i]
		}
	}
	if len(d.cells) == 0 || d.sum < len(d.cells) {
		d.min = 0
	} else {
		d.min = d.cells[0]
		for _, c := range d.cells[1:] {
			if c < d.min {
				d.min = c
			}
		}
	}
	return d
}

// At returns the count at (x, y).
func (d *Density) At(x, y int) int {
	if x < 0 || x >= d.Width || y < 0 || y >= d.Height {
		return 0
	}
	return d.cells[y*d.Width+x]
}

// Max is the largest cell count.
func (d *Density) Max() int { return d.max }

// Sum is the number of agents counted.
func (d *Density) Sum() int { return d.sum }

// Normalized maps a cell count into [0, 1] over the grid's value range.
func (d *Density) Normalized(x, y int) float64 {
	if d.max == d.min {
		return 0
	}
	return float64(d.At(x, y)-d.min) / float64(d.max-d.min)
}
