package mosaic

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/jigsaw/gridgraph"
	"github.com/katalvlaran/jigsaw/tile"
)

const seaMonsterText = "" +
	"                  # \n" +
	"#    ##    ##    ###\n" +
	" #  #  #  #  #  #   "

// SeaMonster is the 20×3 creature hidden in the assembled image.
var SeaMonster = MustPattern(seaMonsterText)

// Pattern is a rectangular mask; only its required cells take part in a match.
type Pattern struct {
	width, height int
	cells         []gridgraph.Cell // required offsets, row-major
}

// ParsePattern reads rows of '#' (required) and ' ' or '.' (don't care).
// Rows may differ in length; the pattern width is the longest row. Leading
// and trailing empty lines are dropped, inner spaces are kept.
func ParsePattern(text string) (Pattern, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	p := Pattern{height: len(lines)}
	for y, line := range lines {
		if len(line) > p.width {
			p.width = len(line)
		}
		for x := 0; x < len(line); x++ {
			switch line[x] {
			case '#':
				p.cells = append(p.cells, gridgraph.Cell{X: x, Y: y})
			case ' ', '.':
			default:
				return Pattern{}, fmt.Errorf("%w: %q at row %d column %d", ErrBadPattern, line[x], y, x)
			}
		}
	}
	if len(p.cells) == 0 {
		return Pattern{}, fmt.Errorf("%w: no required cells", ErrBadPattern)
	}

	return p, nil
}

// MustPattern is ParsePattern that panics on error.
func MustPattern(text string) Pattern {
	p, err := ParsePattern(text)
	if err != nil {
		panic(err)
	}

	return p
}

// Width returns the pattern width.
func (p Pattern) Width() int { return p.width }

// Height returns the pattern height.
func (p Pattern) Height() int { return p.height }

// Len returns the number of required cells.
func (p Pattern) Len() int { return len(p.cells) }

// Mask renders the pattern as a height×width grid with required cells on.
func (p Pattern) Mask() tile.Grid {
	g := make(tile.Grid, p.height)
	for y := range g {
		g[y] = make([]bool, p.width)
	}
	for _, c := range p.cells {
		g[c.Y][c.X] = true
	}

	return g
}

// matchAt reports whether every required cell is on with the pattern's
// top-left corner at (x0, y0). The caller keeps the window in bounds.
func (p Pattern) matchAt(img tile.Grid, x0, y0 int) bool {
	for _, c := range p.cells {
		if !img[y0+c.Y][x0+c.X] {
			return false
		}
	}

	return true
}
