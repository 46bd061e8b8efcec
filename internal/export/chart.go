package export

import (
	"errors"
	"fmt"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/elektrokombinacija/kivavis/internal/vis/state"
)

const (
	chartWidth  = 900
	chartHeight = 300
)

// ErrTooFewSteps is returned when a run is too short to plot.
var ErrTooFewSteps = errors.New("status chart needs at least 2 steps")

var (
	activeStroke    = drawing.Color{R: 0, G: 0, B: 255, A: 255}
	pickingStroke   = drawing.Color{R: 255, G: 165, B: 0, A: 255}
	completedStroke = drawing.Color{R: 0, G: 160, B: 0, A: 255}
)

// StatusChart plots active, picking and completed agents per step.
func StatusChart(counts []state.Counts, agents int) (*chart.Chart, error) {
	if len(counts) < 2 {
		return nil, ErrTooFewSteps
	}
	steps := make([]float64, len(counts))
	active := make([]float64, len(counts))
	picking := make([]float64, len(counts))
	completed := make([]float64, len(counts))
	for t, c := range counts {
		steps[t] = float64(t)
		active[t] = float64(c.Active)
		picking[t] = float64(c.Picking)
		completed[t] = float64(c.Completed)
	}
	top := float64(agents)
	if top < 1 {
		top = 1
	}

	return &chart.Chart{
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			Name:  "step",
			Style: chart.Style{FontSize: 10.0},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:  "agents",
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: 0, Max: top},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Active",
				XValues: steps,
				YValues: active,
				Style:   chart.Style{StrokeColor: activeStroke, StrokeWidth: 2.0},
			},
			chart.ContinuousSeries{
				Name:    "Picking",
				XValues: steps,
				YValues: picking,
				Style:   chart.Style{StrokeColor: pickingStroke, StrokeWidth: 2.0},
			},
			chart.ContinuousSeries{
				Name:    "Completed",
				XValues: steps,
				YValues: completed,
				Style:   chart.Style{StrokeColor: completedStroke, StrokeWidth: 2.0},
			},
		},
	}, nil
}

func writeChart(path string, counts []state.Counts, agents int) error {
	graph, err := StatusChart(counts, agents)
	if err != nil {
		return err
	}
	graph.Elements = []chart.Renderable{chart.Legend(graph)}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart: %w", err)
	}
	if err := graph.Render(chart.PNG, f); err != nil {
		f.Close()
		return fmt.Errorf("render chart: %w", err)
	}
	return f.Close()
}
