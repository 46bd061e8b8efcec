package loader

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/elektrokombinacija/kivavis/internal/core"
)

// WriteMap writes g in the map format read by ParseMap. The header lines
// after the dimensions hold the endpoint count, the robot zone count and
// maxTime.
func WriteMap(w io.Writer, g *core.Grid, maxTime int) error {
	bw := bufio.NewWriter(w)
	stats := g.Stats()
	fmt.Fprintf(bw, "%d,%d\n", g.Height, g.Width)
	fmt.Fprintf(bw, "%d\n%d\n%d\n", stats.Endpoints, stats.RobotZones, maxTime)
	row := make([]byte, g.Width)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			row[x] = tagRune(g.At(x, y))
		}
		bw.Write(row)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func tagRune(t core.CellTag) byte {
	switch t {
	case core.Obstacle:
		return '@'
	case core.Endpoint:
		return 'e'
	case core.RobotZone:
		return 'r'
	}
	return '.'
}

// WriteResults writes sol in the results format read by ParseResults, one
// line per agent of "location,orientation,timestep;" triples starting at
// step 0.
func WriteResults(w io.Writer, g *core.Grid, sol *core.Solution) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", sol.AgentCount())
	var b strings.Builder
	for _, path := range sol.Paths {
		b.Reset()
		for t, p := range path {
			fmt.Fprintf(&b, "%d,0,%d;", g.Location(p), t)
		}
		b.WriteByte('\n')
		bw.WriteString(b.String())
	}
	return bw.Flush()
}
