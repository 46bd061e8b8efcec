// Package mode classifies a workload into a visualization mode and owns the
// rendering parameters of each mode.
package mode

import "time"

// Mode is a visualization fidelity tier.
type Mode int

const (
	Detailed Mode = iota // ≤10 agents
	Medium               // ≤30 agents
	Compact              // ≤100 agents
	Dense                // ≤500 agents
	Heatmap              // everything above
)

func (m Mode) String() string {
	return [...]string{"DETAILED", "MEDIUM", "COMPACT", "DENSE", "HEATMAP"}[m]
}

// Description is the one-line summary shown at startup.
func (m Mode) Description() string {
	return [...]string{
		"Full detail with individual robot tracking",
		"Simplified view with robot IDs",
		"Compact view for moderate robot counts",
		"Minimal detail for large robot counts",
		"Density heatmap for massive robot swarms",
	}[m]
}

// GridDetail selects the static warehouse renderer.
type GridDetail int

const (
	DetailHigh GridDetail = iota
	DetailMedium
	DetailLow
	DetailMinimal
	DetailNone
)

func (d GridDetail) String() string {
	return [...]string{"high", "medium", "low", "minimal", "none"}[d]
}

// Profile bundles the rendering parameters fixed for a run.
type Profile struct {
	Mode                 Mode
	RobotSize            float64 // marker radius in cells
	FontSize             float64 // id label size in points, 0 disables labels
	TrailLength          int
	TrailAlpha           float64
	ShowIndividualStatus bool
	ShowRobotIDs         bool
	GridDetail           GridDetail
	Interval             time.Duration
	UsesInfoPanel        bool
}

// Individual reports whether agents are drawn one by one rather than as a
// density field.
func (p Profile) Individual() bool {
	return p.Mode != Heatmap
}

var profiles = [...]Profile{
	Detailed: {
		Mode: Detailed, RobotSize: 0.4, FontSize: 10, TrailLength: 12, TrailAlpha: 0.7,
		ShowIndividualStatus: true, ShowRobotIDs: true, GridDetail: DetailHigh, UsesInfoPanel: true,
	},
	Medium: {
		Mode: Medium, RobotSize: 0.3, FontSize: 8, TrailLength: 8, TrailAlpha: 0.5,
		ShowIndividualStatus: true, ShowRobotIDs: true, GridDetail: DetailMedium, UsesInfoPanel: true,
	},
	Compact: {
		Mode: Compact, RobotSize: 0.25, FontSize: 6, TrailLength: 5, TrailAlpha: 0.4,
		ShowRobotIDs: true, GridDetail: DetailLow,
	},
	Dense: {
		Mode: Dense, RobotSize: 0.15, FontSize: 4, TrailLength: 3, TrailAlpha: 0.3,
		GridDetail: DetailMinimal,
	},
	Heatmap: {
		Mode: Heatmap, RobotSize: 0.1, FontSize: 0, TrailLength: 2, TrailAlpha: 0.2,
		GridDetail: DetailNone,
	},
}

// modeLadder and intervalLadder break at different counts on purpose.
var (
	modeLadder = Ladder[Mode]{
		Rungs: []Rung[Mode]{{10, Detailed}, {30, Medium}, {100, Compact}, {500, Dense}},
		Above: Heatmap,
	}
	intervalLadder = Ladder[time.Duration]{
		Rungs: []Rung[time.Duration]{
			{10, 300 * time.Millisecond},
			{50, 400 * time.Millisecond},
			{200, 500 * time.Millisecond},
		},
		Above: 600 * time.Millisecond,
	}
)

// Classify returns the mode for an agent count.
func Classify(agentCount int) Mode {
	return modeLadder.Lookup(agentCount)
}

// Interval returns the frame interval for an agent count.
func Interval(agentCount int) time.Duration {
	return intervalLadder.Lookup(agentCount)
}

// Select returns the profile for an agent count.
func Select(agentCount int) Profile {
	p := profiles[Classify(agentCount)]
	p.Interval = Interval(agentCount)
	return p
}
