package loader

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/elektrokombinacija/kivavis/internal/core"
)

// Fallback grid size used when the map cannot be loaded.
const (
	DefaultWidth  = 46
	DefaultHeight = 33
)

// mapHeaderLines precede the first grid row.
const mapHeaderLines = 4

// LoadMap reads a Kiva map file.
func LoadMap(path string) (*core.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("map %s: %w", path, ErrResourceMissing)
		}
		return nil, fmt.Errorf("map %s: %w", path, err)
	}
	defer f.Close()

	g, err := ParseMap(f)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", path, err)
	}
	return g, nil
}

// ParseMap parses map text. The first line holds "height,width,...", grid
// rows start on line five. Short rows are padded with free cells and absent
// rows are entirely free.
func ParseMap(r io.Reader) (*core.Grid, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	header := strings.Split(strings.TrimSpace(lines[0]), ",")
	if len(header) < 2 {
		return nil, fmt.Errorf("header %q: %w", lines[0], ErrMalformed)
	}
	height, err := strconv.Atoi(strings.TrimSpace(header[0]))
	if err != nil {
		return nil, fmt.Errorf("height %q: %w", header[0], ErrMalformed)
	}
	width, err := strconv.Atoi(strings.TrimSpace(header[1]))
	if err != nil {
		return nil, fmt.Errorf("width %q: %w", header[1], ErrMalformed)
	}
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("dimensions %dx%d: %w", width, height, ErrMalformed)
	}

	return core.NewGridFunc(width, height, func(x, y int) core.CellTag {
		i := mapHeaderLines + y
		if i >= len(lines) {
			return core.Free
		}
		row := []rune(strings.TrimSpace(lines[i]))
		if x >= len(row) {
			return core.Free
		}
		return core.TagFromRune(row[x])
	}), nil
}

// DefaultGrid is the all-free grid used when the map file is missing.
func DefaultGrid() *core.Grid {
	return core.NewGridFunc(DefaultWidth, DefaultHeight, func(x, y int) core.CellTag {
		return core.Free
	})
}

// PatternGrid is the grid used when the map file is unreadable: obstacles on
// every third diagonal.
func PatternGrid() *core.Grid {
	return core.NewGridFunc(DefaultWidth, DefaultHeight, func(x, y int) core.CellTag {
		if (x+y)%3 == 0 {
			return core.Obstacle
		}
		return core.Free
	})
}

// MapOrDefault loads path, falling back to DefaultGrid when it is missing
// and PatternGrid when it cannot be parsed.
func MapOrDefault(path string) *core.Grid {
	g, err := LoadMap(path)
	switch {
	case err == nil:
		return g
	case errors.Is(err, ErrResourceMissing):
		log.Printf("[WARN] %v, using empty %dx%d grid", err, DefaultWidth, DefaultHeight)
		return DefaultGrid()
	default:
		log.Printf("[WARN] %v, using pattern %dx%d grid", err, DefaultWidth, DefaultHeight)
		return PatternGrid()
	}
}

// readLines splits r into lines. A trailing newline does not start a line.
func readLines(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n"), nil
}
