package mosaic

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/jigsaw/gridgraph"
	"github.com/katalvlaran/jigsaw/tile"
)

// Result describes the orientation in which a pattern was found.
type Result struct {
	Op        tile.Op          // applied to the searched image
	Matches   []gridgraph.Cell // top-left corners, row-major
	Roughness int              // on pixels outside every match
}

// Count returns the number of matches.
func (r Result) Count() int { return len(r.Matches) }

// Search scans the eight orientations of img in tile.Ops order and stops at
// the first with at least one match. Overlapping matches are all counted.
// On ErrNotFound the returned Result still carries the roughness of img.
func Search(img tile.Grid, pat Pattern) (Result, error) {
	for y, row := range img {
		if len(row) != len(img) {
			return Result{}, fmt.Errorf("%w: row %d has %d pixels, want %d", ErrNotSquare, y, len(row), len(img))
		}
	}

	for _, op := range tile.Ops() {
		view := img.Apply(op)
		matches := Find(view, pat)
		if len(matches) == 0 {
			continue
		}

		return Result{Op: op, Matches: matches, Roughness: view.Count() - covered(pat, matches)}, nil
	}

	return Result{Roughness: img.Count()}, fmt.Errorf("%w: %dx%d pattern in %dx%d image",
		ErrNotFound, pat.Width(), pat.Height(), len(img), len(img))
}

// Find lists every top-left corner at which pat matches img as is.
func Find(img tile.Grid, pat Pattern) []gridgraph.Cell {
	var out []gridgraph.Cell
	for y := 0; y+pat.Height() <= len(img); y++ {
		for x := 0; x+pat.Width() <= len(img[y]); x++ {
			if pat.matchAt(img, x, y) {
				out = append(out, gridgraph.Cell{X: x, Y: y})
			}
		}
	}

	return out
}

// covered counts the distinct pixels claimed by the matches.
func covered(pat Pattern, matches []gridgraph.Cell) int {
	seen := make(map[gridgraph.Cell]struct{}, len(matches)*pat.Len())
	for _, m := range matches {
		for _, c := range pat.cells {
			seen[gridgraph.Cell{X: m.X + c.X, Y: m.Y + c.Y}] = struct{}{}
		}
	}

	return len(seen)
}

// Highlight renders img in orientation r.Op with matched pixels shown as 'O'.
func Highlight(img tile.Grid, pat Pattern, r Result) string {
	view := img.Apply(r.Op)
	out := make([][]byte, len(view))
	for y, row := range view {
		out[y] = make([]byte, len(row))
		for x, on := range row {
			out[y][x] = '.'
			if on {
				out[y][x] = '#'
			}
		}
	}
	for _, m := range r.Matches {
		for _, c := range pat.cells {
			out[m.Y+c.Y][m.X+c.X] = 'O'
		}
	}

	lines := make([]string, len(out))
	for i, b := range out {
		lines[i] = string(b)
	}

	return strings.Join(lines, "\n")
}
