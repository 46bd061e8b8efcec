package palette

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Qualitative palettes in their published order.
var (
	Set3 = listed("#8dd3c7", "#ffffb3", "#bebada", "#fb8072", "#80b1d3", "#fdb462",
		"#b3de69", "#fccde5", "#d9d9d9", "#bc80bd", "#ccebc5", "#ffed6f")
	Dark2 = listed("#1b9e77", "#d95f02", "#7570b3", "#e7298a", "#66a61e", "#e6ab02",
		"#a6761d", "#666666")
	Paired = listed("#a6cee3", "#1f78b4", "#b2df8a", "#33a02c", "#fb9a99", "#e31a1c",
		"#fdbf6f", "#ff7f00", "#cab2d6", "#6a3d9a", "#ffff99", "#b15928")
	Accent = listed("#7fc97f", "#beaed4", "#fdc086", "#ffff99", "#386cb0", "#f0027f",
		"#bf5b17", "#666666")
)

const (
	singlePaletteMax = 12
	multiPaletteMax  = 50
)

// Table maps agent ids to colors.
type Table struct {
	colors []colorful.Color
}

// Len returns the number of entries.
func (t Table) Len() int { return len(t.colors) }

// At returns the color of agent id. Ids wrap modulo the table size; an empty
// table answers Grey.
func (t Table) At(id int) colorful.Color {
	n := len(t.colors)
	if n == 0 {
		return Grey
	}
	id %= n
	if id < 0 {
		id += n
	}
	return t.colors[id]
}

// Assign builds the color table for agentCount agents.
func Assign(agentCount int) Table {
	if agentCount <= 0 {
		return Table{}
	}
	switch {
	case agentCount <= singlePaletteMax:
		return Table{colors: sample(Set3, agentCount)}
	case agentCount <= multiPaletteMax:
		return Table{colors: blocks(agentCount, Set3, Dark2, Paired, Accent)}
	default:
		return Table{colors: sample(NewRainbow(), agentCount)}
	}
}

// sample draws n evenly spaced colors over [0, 1].
func sample(cm Colormap, n int) []colorful.Color {
	out := make([]colorful.Color, n)
	for i := range out {
		out[i] = cm.At(linspace(i, n))
	}
	return out
}

// blocks splits n agents into len(cms) contiguous blocks of ⌈n/len(cms)⌉,
// each colored from its own palette.
func blocks(n int, cms ...Colormap) []colorful.Color {
	size := (n + len(cms) - 1) / len(cms)
	out := make([]colorful.Color, 0, n)
	for i, cm := range cms {
		for j := 0; j < size && i*size+j < n; j++ {
			out = append(out, cm.At(float64(j)/float64(size)))
		}
	}
	return out
}

func linspace(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}
