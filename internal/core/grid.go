package core

// WarehouseStats counts cells per tag.
type WarehouseStats struct {
	Shelves    int
	Endpoints  int
	RobotZones int
	FreeSpace  int
}

// Grid is the static warehouse map, stored row-major.
type Grid struct {
	Width  int
	Height int
	cells  []CellTag
	stats  WarehouseStats
}

// NewGrid builds a grid from rows of tags. Rows shorter than width are
// padded with Free and longer rows are cut.
func NewGrid(width, height int, rows [][]CellTag) *Grid {
	g := &Grid{
		Width:  width,
		Height: height,
		cells:  make([]CellTag, width*height),
	}
	for y := 0; y < height && y < len(rows); y++ {
		copy(g.cells[y*width:(y+1)*width], rows[y])
	}
	g.stats = g.count()
	return g
}

// NewGridFunc builds a grid by asking tagAt for every cell.
func NewGridFunc(width, height int, tagAt func(x, y int) CellTag) *Grid {
	g := &Grid{
		Width:  width,
		Height: height,
		cells:  make([]CellTag, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.cells[y*width+x] = tagAt(x, y)
		}
	}
	g.stats = g.count()
	return g
}

func (g *Grid) count() WarehouseStats {
	var s WarehouseStats
	for _, c := range g.cells {
		switch c {
		case Obstacle:
			s.Shelves++
		case Endpoint:
			s.Endpoints++
		case RobotZone:
			s.RobotZones++
		default:
			s.FreeSpace++
		}
	}
	return s
}

// Stats returns the per-tag counts computed at construction.
func (g *Grid) Stats() WarehouseStats {
	return g.stats
}

// InBounds reports whether (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the tag at (x, y), or Free outside the grid.
func (g *Grid) At(x, y int) CellTag {
	if !g.InBounds(x, y) {
		return Free
	}
	return g.cells[y*g.Width+x]
}

// Clamp moves p onto the nearest grid cell.
func (g *Grid) Clamp(p Pos) Pos {
	return Pos{X: clamp(p.X, 0, g.Width-1), Y: clamp(p.Y, 0, g.Height-1)}
}

// CellsWithTag returns every cell carrying tag in row-major order.
func (g *Grid) CellsWithTag(tag CellTag) []Pos {
	var out []Pos
	for i, c := range g.cells {
		if c == tag {
			out = append(out, Pos{X: i % g.Width, Y: i / g.Width})
		}
	}
	return out
}

// Location converts a cell to its row-major location id.
func (g *Grid) Location(p Pos) int {
	return p.Y*g.Width + p.X
}

// FromLocation converts a row-major location id to a clamped cell.
// Division and modulo floor towards negative infinity.
func (g *Grid) FromLocation(loc int) Pos {
	x := loc % g.Width
	y := loc / g.Width
	if x < 0 {
		x += g.Width
		y--
	}
	return g.Clamp(Pos{X: x, Y: y})
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
