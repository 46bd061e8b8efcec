// Package core defines the warehouse grid and solution models.
package core

// CellTag classifies a warehouse grid cell.
type CellTag uint8

const (
	Free      CellTag = iota // Open floor
	Obstacle                 // Shelf or wall
	Endpoint                 // Pickup station
	RobotZone                // Robot staging area
)

func (t CellTag) String() string {
	return [...]string{"Free", "Obstacle", "Endpoint", "RobotZone"}[t]
}

// Rune returns the map file character for the tag.
func (t CellTag) Rune() rune {
	return [...]rune{'.', '@', 'e', 'r'}[t]
}

// TagFromRune maps a map file character to a tag. Unknown characters are free.
func TagFromRune(r rune) CellTag {
	switch r {
	case '@':
		return Obstacle
	case 'e':
		return Endpoint
	case 'r':
		return RobotZone
	default:
		return Free
	}
}

// Pos is an integer grid coordinate.
type Pos struct {
	X, Y int
}
