// Package jigsaw reassembles a square image from shuffled square tiles that
// may each be rotated or flipped.
//
// Every tile border is packed into an integer signature, so matching two
// tiles is an integer comparison and finding a tile's neighbors is a hash
// lookup. The solver walks the grid from a corner without backtracking.
//
// Packages, bottom-up:
//
//	tile/       Tile, Grid, Edge signatures, the eight orientations, parsing
//	core/       thread-safe undirected graph used for compatibility and lattices
//	bfs/, dfs/  traversals over core.Graph (sweep order, components)
//	gridgraph/  the n×n placement lattice and its anti-diagonal sweep order
//	edgeindex/  signature → tiles index, compatibility graph, corner detection
//	assemble/   orientation resolution and grid assembly
//	mosaic/     border stripping, image stitching and pattern search
//	builder/    deterministic generator of solvable puzzles
//	cmd/jigsaw  command line front end
//
// Quick start:
//
//	tiles, _ := tile.ParseAll(input)
//	p, _ := assemble.Assemble(tiles)
//	img, _ := mosaic.Stitch(p)
//	res, _ := mosaic.Search(img, mosaic.SeaMonster)
package jigsaw
