package core

import "testing"

func TestTagFromRune(t *testing.T) {
	tests := []struct {
		r    rune
		want CellTag
	}{
		{'@', Obstacle},
		{'e', Endpoint},
		{'r', RobotZone},
		{'.', Free},
		{'T', Free},
		{' ', Free},
	}

	for _, tt := range tests {
		got := TagFromRune(tt.r)
		if got != tt.want {
			t.Errorf("TagFromRune(%q) = %v, want %v", tt.r, got, tt.want)
		}
		if tt.want != Free && got.Rune() != tt.r {
			t.Errorf("%v.Rune() = %q, want %q", got, got.Rune(), tt.r)
		}
	}
}

func TestGridStats(t *testing.T) {
	rows := [][]CellTag{
		{Obstacle, Obstacle, Free},
		{Endpoint, RobotZone, Free},
		{Free},
	}
	g := NewGrid(3, 3, rows)

	want := WarehouseStats{Shelves: 2, Endpoints: 1, RobotZones: 1, FreeSpace: 5}
	if got := g.Stats(); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
	if g.At(2, 2) != Free {
		t.Errorf("short row should be padded with Free")
	}
	if g.At(-1, 0) != Free || g.At(3, 0) != Free {
		t.Errorf("out of bounds cells should read as Free")
	}
}

func TestFromLocation(t *testing.T) {
	g := NewGridFunc(10, 5, func(x, y int) CellTag { return Free })

	tests := []struct {
		loc  int
		want Pos
	}{
		{0, Pos{0, 0}},
		{13, Pos{3, 1}},
		{49, Pos{9, 4}},
		{75, Pos{5, 4}},  // past the last row, clamped
		{-1, Pos{9, 0}},  // floor semantics: x=9, y=-1 clamped
		{-25, Pos{5, 0}}, // x=5, y=-3 clamped
	}

	for _, tt := range tests {
		if got := g.FromLocation(tt.loc); got != tt.want {
			t.Errorf("FromLocation(%d) = %v, want %v", tt.loc, got, tt.want)
		}
	}
}

func TestMaxTimestep(t *testing.T) {
	tests := []struct {
		name string
		sol  *Solution
		want int
	}{
		{"nil", nil, 1},
		{"no agents", NewSolution(nil), 1},
		{"empty paths", NewSolution([]AgentPath{{}, {}}), 1},
		{"longest wins", NewSolution([]AgentPath{{{0, 0}}, {{0, 0}, {1, 0}, {2, 0}}}), 3},
	}

	for _, tt := range tests {
		if got := tt.sol.MaxTimestep(); got != tt.want {
			t.Errorf("%s: MaxTimestep() = %d, want %d", tt.name, got, tt.want)
		}
	}
}
