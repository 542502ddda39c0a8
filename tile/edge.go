package tile

import (
	"math/bits"
	"sort"
)

// Edge is a bit-packed border: first pixel = most significant bit.
type Edge uint64

// EncodeEdge packs bits MSB-first. Sequences longer than MaxSide overflow;
// New rejects such tiles before encoding.
func EncodeEdge(px []bool) Edge {
	var e Edge
	for _, on := range px {
		e <<= 1
		if on {
			e |= 1
		}
	}

	return e
}

// MirrorEdge reverses the low width bits of v, i.e. reads the border from
// the other end. width must be in [0, MaxSide] and v < 2^width.
// Complexity: O(1).
func MirrorEdge(v Edge, width int) Edge {
	if width <= 0 {
		return 0
	}

	return Edge(bits.Reverse64(uint64(v)) >> (MaxSide - width))
}

// IsPalindrome reports whether the border reads the same from both ends.
// Such a border fits a neighbor in two orientations.
func IsPalindrome(v Edge, width int) bool {
	return MirrorEdge(v, width) == v
}

func sortEdges(es []Edge) {
	sort.Slice(es, func(i, j int) bool { return es[i] < es[j] })
}
