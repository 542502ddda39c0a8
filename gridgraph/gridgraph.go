package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/jigsaw/bfs"
	"github.com/katalvlaran/jigsaw/core"
)

// NewLattice constructs a w×h lattice.
// Returns ErrEmptyGrid if either dimension is not positive.
func NewLattice(w, h int) (*Lattice, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, w, h)
	}

	return &Lattice{Width: w, Height: h}, nil
}

// InBounds reports whether c lies within the lattice.
// Complexity: O(1).
func (l *Lattice) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < l.Width && c.Y >= 0 && c.Y < l.Height
}

// Len returns the number of cells.
func (l *Lattice) Len() int { return l.Width * l.Height }

// Index maps c to a row-major index: y*Width + x.
func (l *Lattice) Index(c Cell) int {
	return c.Y*l.Width + c.X
}

// Coordinate converts a row-major index back to a cell.
func (l *Lattice) Coordinate(idx int) Cell {
	return Cell{X: idx % l.Width, Y: idx / l.Width}
}

// Cells returns every cell in row-major order.
func (l *Lattice) Cells() []Cell {
	out := make([]Cell, l.Len())
	for i := range out {
		out[i] = l.Coordinate(i)
	}

	return out
}

// VertexID formats the core.Graph vertex identifier of c.
func VertexID(c Cell) string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// ToCoreGraph converts the lattice into an unweighted *core.Graph. Each cell
// becomes vertex "x,y" with metadata {x, y}; orthogonal neighbors are joined.
// Complexity: O(W×H).
func (l *Lattice) ToCoreGraph() *core.Graph {
	g := core.NewGraph()
	for i := 0; i < l.Len(); i++ {
		c := l.Coordinate(i)
		id := VertexID(c)
		_ = g.AddVertex(id)
		_ = g.SetMetadata(id, "x", c.X)
		_ = g.SetMetadata(id, "y", c.Y)
	}
	for i := 0; i < l.Len(); i++ {
		c := l.Coordinate(i)
		for _, d := range offsets {
			n := Cell{c.X + d[0], c.Y + d[1]}
			if !l.InBounds(n) || g.HasEdge(VertexID(c), VertexID(n)) {
				continue
			}
			_, _ = g.AddEdge(VertexID(c), VertexID(n), 0)
		}
	}

	return g
}

// SweepOrder returns every cell ordered by non-decreasing BFS distance from
// origin. From a corner this is the anti-diagonal order.
// Returns ErrOutOfBounds if origin is outside the lattice.
func (l *Lattice) SweepOrder(origin Cell) ([]Cell, error) {
	if !l.InBounds(origin) {
		return nil, fmt.Errorf("%w: %s", ErrOutOfBounds, origin)
	}
	g := l.ToCoreGraph()
	order := make([]Cell, 0, l.Len())
	_, err := bfs.BFS(g, VertexID(origin), bfs.WithOnVisit(func(id string, _ int) error {
		md, err := g.Metadata(id)
		if err != nil {
			return err
		}
		order = append(order, Cell{X: md["x"].(int), Y: md["y"].(int)})
		return nil
	}))
	if err != nil {
		return nil, err
	}

	return order, nil
}
