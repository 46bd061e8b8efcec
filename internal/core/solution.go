package core

// AgentPath is one position per time step, starting at step 0.
type AgentPath []Pos

// Present reports whether the agent still has a position at step t.
func (p AgentPath) Present(t int) bool {
	return t >= 0 && t < len(p)
}

// Solution holds the path of every agent. Agent ids are dense from 0 and
// index Paths directly.
type Solution struct {
	Paths []AgentPath
}

// NewSolution wraps paths as a solution.
func NewSolution(paths []AgentPath) *Solution {
	return &Solution{Paths: paths}
}

// AgentCount returns the number of agents.
func (s *Solution) AgentCount() int {
	if s == nil {
		return 0
	}
	return len(s.Paths)
}

// MaxTimestep is the exclusive frame bound: the longest path length, or 1
// when no agent has a position at all.
func (s *Solution) MaxTimestep() int {
	longest := 0
	if s != nil {
		for _, p := range s.Paths {
			if len(p) > longest {
				longest = len(p)
			}
		}
	}
	if longest == 0 {
		return 1
	}
	return longest
}
