package tile

import "strings"

const (
	onPixel  = '#'
	offPixel = '.'
)

// Grid is a square pixel matrix indexed [y][x].
type Grid [][]bool

// NewGrid allocates an all-off n×n grid.
func NewGrid(n int) Grid {
	g := make(Grid, n)
	for y := range g {
		g[y] = make([]bool, n)
	}

	return g
}

// Side returns the number of rows.
func (g Grid) Side() int { return len(g) }

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for y, row := range g {
		out[y] = append([]bool(nil), row...)
	}

	return out
}

// Equal reports pixel-wise equality.
func (g Grid) Equal(o Grid) bool {
	if len(g) != len(o) {
		return false
	}
	for y := range g {
		if len(g[y]) != len(o[y]) {
			return false
		}
		for x := range g[y] {
			if g[y][x] != o[y][x] {
				return false
			}
		}
	}

	return true
}

// Count returns the number of on pixels.
func (g Grid) Count() int {
	c := 0
	for _, row := range g {
		for _, on := range row {
			if on {
				c++
			}
		}
	}

	return c
}

// Column returns column x read top to bottom.
func (g Grid) Column(x int) []bool {
	col := make([]bool, len(g))
	for y, row := range g {
		col[y] = row[x]
	}

	return col
}

// Borders encodes the four borders of a non-empty square grid,
// clockwise from the top.
func (g Grid) Borders() (top, right, bottom, left Edge) {
	n := len(g)
	top = EncodeEdge(g[0])
	bottom = EncodeEdge(g[n-1])
	left = EncodeEdge(g.Column(0))
	right = EncodeEdge(g.Column(n - 1))

	return top, right, bottom, left
}

// Apply returns a new grid with op applied. The source is left untouched.
// Complexity: O(n²).
func (g Grid) Apply(op Op) Grid {
	n := len(g)
	out := NewGrid(n)
	for y, row := range g {
		for x, v := range row {
			ny, nx := op.mapPoint(x, y, n)
			out[ny][nx] = v
		}
	}

	return out
}

// Rotate90 rotates clockwise.
func (g Grid) Rotate90() Grid { return g.Apply(Rotate90) }

// FlipVertical reverses the row order.
func (g Grid) FlipVertical() Grid { return g.Apply(FlipVertical) }

// FlipHorizontal reverses every row.
func (g Grid) FlipHorizontal() Grid { return g.Apply(FlipHorizontal) }

// String renders rows of '#' and '.' separated by newlines, without a
// trailing newline.
func (g Grid) String() string {
	var sb strings.Builder
	sb.Grow(len(g) * (len(g) + 1))
	for y, row := range g {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, on := range row {
			if on {
				sb.WriteByte(onPixel)
			} else {
				sb.WriteByte(offPixel)
			}
		}
	}

	return sb.String()
}
