package tile

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var headerRE = regexp.MustCompile(`^Tile (\d+):$`)

// Parse reads one tile block: a "Tile <id>:" header followed by exactly N
// rows of N pixels. Leading and trailing blanks on every line are ignored.
func Parse(block string) (Tile, error) {
	lines := splitLines(block)
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return Tile{}, ErrEmptyTile
	}

	id, err := parseHeader(lines[0])
	if err != nil {
		return Tile{}, err
	}
	px, err := parseGrid(lines[1:])
	if err != nil {
		return Tile{}, fmt.Errorf("tile %d: %w", id, err)
	}
	t, err := New(id, px)
	if err != nil {
		return Tile{}, fmt.Errorf("tile %d: %w", id, err)
	}

	return t, nil
}

// ParseAll reads a sequence of tile blocks separated by blank lines.
// All tiles must share the same side.
func ParseAll(text string) ([]Tile, error) {
	var (
		tiles []Tile
		block []string
	)
	flush := func() error {
		if len(block) == 0 {
			return nil
		}
		t, err := Parse(strings.Join(block, "\n"))
		if err != nil {
			return err
		}
		if len(tiles) > 0 && t.Side() != tiles[0].Side() {
			return fmt.Errorf("%w: tile %d is %d wide, tile %d is %d wide",
				ErrMixedSides, t.ID, t.Side(), tiles[0].ID, tiles[0].Side())
		}
		tiles = append(tiles, t)
		block = block[:0]

		return nil
	}

	for _, line := range splitLines(text) {
		if line == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		block = append(block, line)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(tiles) == 0 {
		return nil, ErrNoTiles
	}

	return tiles, nil
}

// ParseGrid reads rows of '#' and '.' into a grid without requiring a
// header. Rows must all have the same length; the grid need not be square.
func ParseGrid(text string) (Grid, error) {
	lines := splitLines(strings.TrimSpace(text))
	g := make(Grid, 0, len(lines))
	for y, line := range lines {
		row, err := parseRow(line)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", y, err)
		}
		if y > 0 && len(row) != len(g[0]) {
			return nil, fmt.Errorf("%w: row %d has %d pixels, want %d", ErrRaggedRow, y, len(row), len(g[0]))
		}
		g = append(g, row)
	}

	return g, nil
}

func parseHeader(line string) (uint64, error) {
	m := headerRE.FindStringSubmatch(line)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrBadHeader, line)
	}
	id, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: id %q must be a positive integer", ErrBadHeader, m[1])
	}

	return id, nil
}

func parseGrid(lines []string) (Grid, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyTile
	}
	n := len(lines[0])
	if len(lines) != n {
		return nil, fmt.Errorf("%w: %d rows of width %d", ErrRaggedRow, len(lines), n)
	}
	px := make(Grid, n)
	for y, line := range lines {
		if len(line) != n {
			return nil, fmt.Errorf("%w: row %d has %d pixels, want %d", ErrRaggedRow, y, len(line), n)
		}
		row, err := parseRow(line)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", y, err)
		}
		px[y] = row
	}

	return px, nil
}

func parseRow(line string) ([]bool, error) {
	row := make([]bool, len(line))
	for x := 0; x < len(line); x++ {
		switch line[x] {
		case onPixel:
			row[x] = true
		case offPixel:
		default:
			return nil, fmt.Errorf("%w: %q at column %d", ErrBadPixel, line[x], x)
		}
	}

	return row, nil
}

// splitLines splits on '\n', dropping '\r' and surrounding blanks.
func splitLines(s string) []string {
	raw := strings.Split(s, "\n")
	out := make([]string, len(raw))
	for i, l := range raw {
		out[i] = strings.TrimSpace(l)
	}

	return out
}
