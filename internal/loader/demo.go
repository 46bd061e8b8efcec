package loader

import (
	"math"

	"github.com/elektrokombinacija/kivavis/internal/core"
)

// DefaultDemoAgents is the demo size used when no target is configured.
const DefaultDemoAgents = 25

const (
	demoBaseLength = 30
	demoVariation  = 20
	demoTravel     = 0.8 // share of the path spent reaching the goal
)

// DemoCount is the number of demo agents generated for a grid with the given
// number of robot zones.
func DemoCount(target, zones int) int {
	if zones == 0 {
		if target <= 0 {
			return DefaultDemoAgents
		}
		return min(target, 50)
	}
	if target <= 0 {
		return min(DefaultDemoAgents, zones)
	}
	return min(target, 3*zones)
}

// Demo generates a deterministic solution for g. Agents start on robot zones
// in row-major order and head to endpoints, wobbling every third step.
func Demo(g *core.Grid, target int) *core.Solution {
	zones := g.CellsWithTag(core.RobotZone)
	endpoints := g.CellsWithTag(core.Endpoint)

	n := DemoCount(target, len(zones))
	paths := make([]core.AgentPath, n)
	for id := range paths {
		start := demoStart(g, zones, id)
		goal := demoGoal(g, endpoints, id)
		paths[id] = demoPath(g, id, start, goal)
	}
	return core.NewSolution(paths)
}

func demoStart(g *core.Grid, zones []core.Pos, id int) core.Pos {
	if len(zones) > 0 {
		return zones[id%len(zones)]
	}
	side := int(math.Sqrt(float64(g.Width - 2)))
	if side < 1 {
		side = 1
	}
	return core.Pos{
		X: min(1+id%side, g.Width-2),
		Y: min(1+id/side, g.Height-2),
	}
}

func demoGoal(g *core.Grid, endpoints []core.Pos, id int) core.Pos {
	if len(endpoints) > 0 {
		return endpoints[(7*id)%len(endpoints)]
	}
	return core.Pos{X: g.Width - 2 - id%5, Y: g.Height - 2 - id/5}
}

func demoPath(g *core.Grid, id int, start, goal core.Pos) core.AgentPath {
	length := demoBaseLength + id%demoVariation
	path := make(core.AgentPath, length)
	for t := range path {
		progress := math.Min(1, float64(t)/(float64(length)*demoTravel))
		x := int(float64(start.X) + float64(goal.X-start.X)*progress)
		y := int(float64(start.Y) + float64(goal.Y-start.Y)*progress)

		if t%3 == 0 && t > 5 {
			x += id%3 - 1
			y += (id+t)%3 - 1
			p := g.Clamp(core.Pos{X: x, Y: y})
			x, y = p.X, p.Y
		}
		path[t] = g.FromLocation(y*g.Width + x)
	}
	return path
}
