// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/jigsaw/tile"
)

// Generate builds a solvable puzzle.
//
// Implementation:
//   - Stage 1: draw one bit per lattice point (the shared corner pixels).
//   - Stage 2: draw every horizontal and vertical border between those
//     points, rejecting palindromes and values already used (or mirrored).
//   - Stage 3: draw the ground-truth image and stamp patterns into it.
//   - Stage 4: assemble each tile from its four borders and its slice of
//     the image, orient it randomly, assign a unique ID, shuffle.
//
// Complexity: O(n²·s²) time and memory for n×n tiles of side s.
func Generate(opts ...Option) (*Puzzle, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.size < 1 {
		return nil, fmt.Errorf("%w: size %d < 1", ErrTooSmall, cfg.size)
	}
	if cfg.side < MinSide || cfg.side > tile.MaxSide {
		return nil, fmt.Errorf("%w: side %d outside [%d,%d]", ErrTooSmall, cfg.side, MinSide, tile.MaxSide)
	}

	var (
		b   *borders
		err error
	)
	for i := 0; i < layoutRetries; i++ {
		if b, err = drawBorders(cfg.rng, cfg.size, cfg.side); err == nil {
			break
		}
	}
	if err != nil {
		return nil, err
	}

	img, stamped, err := drawImage(cfg)
	if err != nil {
		return nil, err
	}

	return cut(cfg, b, img, stamped)
}

// borders holds the signatures of a generated lattice, as bit slices.
// h[r][c] is the top border of row r (r ∈ [0,n]); v[r][c] the left border
// of column c (c ∈ [0,n]).
type borders struct {
	h, v [][][]bool
}

func drawBorders(rng *rand.Rand, n, s int) (*borders, error) {
	pts := make([][]bool, n+1)
	for r := range pts {
		pts[r] = make([]bool, n+1)
		for c := range pts[r] {
			pts[r][c] = rng.Intn(2) == 1
		}
	}

	used := make(map[tile.Edge]struct{}, 4*n*(n+1))
	b := &borders{h: make([][][]bool, n+1), v: make([][][]bool, n)}
	for r := 0; r <= n; r++ {
		b.h[r] = make([][]bool, n)
		for c := 0; c < n; c++ {
			e, err := drawEdge(rng, s, pts[r][c], pts[r][c+1], used)
			if err != nil {
				return nil, err
			}
			b.h[r][c] = e
		}
	}
	for r := 0; r < n; r++ {
		b.v[r] = make([][]bool, n+1)
		for c := 0; c <= n; c++ {
			e, err := drawEdge(rng, s, pts[r][c], pts[r+1][c], used)
			if err != nil {
				return nil, err
			}
			b.v[r][c] = e
		}
	}

	return b, nil
}

// drawEdge picks a border with fixed end pixels whose value and mirror are
// both unused and distinct. Random draws come first, then a full scan from
// a random offset.
func drawEdge(rng *rand.Rand, s int, first, last bool, used map[tile.Edge]struct{}) ([]bool, error) {
	inner := s - 2
	space := uint64(1) << uint(inner)
	if inner >= 63 {
		space = 1 << 62
	}
	try := func(v uint64) []bool {
		bits := make([]bool, s)
		bits[0], bits[s-1] = first, last
		for i := 0; i < inner; i++ {
			bits[inner-i] = v&(1<<uint(i)) != 0
		}
		e := tile.EncodeEdge(bits)
		m := tile.MirrorEdge(e, s)
		if e == m {
			return nil
		}
		if _, ok := used[e]; ok {
			return nil
		}
		if _, ok := used[m]; ok {
			return nil
		}
		used[e], used[m] = struct{}{}, struct{}{}

		return bits
	}

	for i := 0; i < edgeAttempts; i++ {
		if bits := try(uint64(rng.Int63()) % space); bits != nil {
			return bits, nil
		}
	}
	if space <= 1<<20 {
		start := uint64(rng.Int63()) % space
		for i := uint64(0); i < space; i++ {
			if bits := try((start + i) % space); bits != nil {
				return bits, nil
			}
		}
	}

	return nil, fmt.Errorf("%w: no unique border of width %d", ErrExhausted, s)
}

// drawImage fills the ground truth and places stamps.
func drawImage(cfg config) (tile.Grid, int, error) {
	dim := cfg.size * (cfg.side - 2)
	img := tile.NewGrid(dim)
	for y := range img {
		for x := range img[y] {
			img[y][x] = cfg.rng.Float64() < cfg.density
		}
	}

	occupied := tile.NewGrid(dim)
	stamped := 0
	for _, st := range cfg.stamps {
		h, w := len(st.mask), len(st.mask[0])
		if h > dim || w > dim {
			if st.count > 0 {
				return nil, 0, fmt.Errorf("%w: %dx%d stamp does not fit a %dx%d image", ErrExhausted, w, h, dim, dim)
			}
			continue
		}
		for k := 0; k < st.count; k++ {
			placed := false
			for a := 0; a < stampAttempts && !placed; a++ {
				y0, x0 := cfg.rng.Intn(dim-h+1), cfg.rng.Intn(dim-w+1)
				if !free(occupied, x0-1, y0-1, w+2, h+2) {
					continue
				}
				for dy := 0; dy < h; dy++ {
					for dx := 0; dx < w; dx++ {
						occupied[y0+dy][x0+dx] = true
						if st.mask[dy][dx] {
							img[y0+dy][x0+dx] = true
						}
					}
				}
				placed = true
			}
			if !placed {
				return nil, 0, fmt.Errorf("%w: placing stamp %d of %d", ErrExhausted, k+1, st.count)
			}
			stamped++
		}
	}

	return img, stamped, nil
}

// free reports whether the clipped rectangle holds no occupied pixel.
func free(occ tile.Grid, x0, y0, w, h int) bool {
	for y := y0; y < y0+h; y++ {
		if y < 0 || y >= len(occ) {
			continue
		}
		for x := x0; x < x0+w; x++ {
			if x < 0 || x >= len(occ[y]) {
				continue
			}
			if occ[y][x] {
				return false
			}
		}
	}

	return true
}

// cut builds every tile, orients it randomly and shuffles the result.
func cut(cfg config, b *borders, img tile.Grid, stamped int) (*Puzzle, error) {
	n, s := cfg.size, cfg.side
	in := s - 2
	ids := cfg.rng.Perm(9000)

	p := &Puzzle{Size: n, Side: s, Image: img, Stamped: stamped, Layout: make([][]uint64, n)}
	for r := 0; r < n; r++ {
		p.Layout[r] = make([]uint64, n)
		for c := 0; c < n; c++ {
			px := tile.NewGrid(s)
			for i := 0; i < s; i++ {
				px[0][i] = b.h[r][c][i]
				px[s-1][i] = b.h[r+1][c][i]
				px[i][0] = b.v[r][c][i]
				px[i][s-1] = b.v[r][c+1][i]
			}
			for y := 0; y < in; y++ {
				for x := 0; x < in; x++ {
					px[y+1][x+1] = img[r*in+y][c*in+x]
				}
			}
			id := uint64(1000 + ids[(r*n+c)%len(ids)])
			if n*n > len(ids) {
				id = uint64(1000 + r*n + c)
			}
			t, err := tile.New(id, px)
			if err != nil {
				return nil, err
			}
			p.Layout[r][c] = id
			p.Tiles = append(p.Tiles, t.Transform(tile.Op(cfg.rng.Intn(len(tile.Ops())))))
		}
	}
	cfg.rng.Shuffle(len(p.Tiles), func(i, j int) { p.Tiles[i], p.Tiles[j] = p.Tiles[j], p.Tiles[i] })

	return p, nil
}
