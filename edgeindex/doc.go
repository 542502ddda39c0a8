// Package edgeindex maps border signatures to the tiles exposing them and
// derives, from that map alone, which tiles can possibly sit next to each
// other.
//
// Every tile is registered under its four edges and their four mirrors, so
// a lookup by any one border value finds partners in any orientation. The
// resulting compatibility relation is materialised as a weighted
// *core.Graph (weight = shared signature); a tile's degree in that graph is
// its number of possible neighbors:
//
//	2 → corner, 3 → non-corner border, 4 → interior.
//
// No coordinates are needed: Classify picks the corners of a puzzle before
// any assembly happens.
//
// Complexity: Build is O(T) for T tiles (at most 8 registrations each);
// PossibleNeighbors is O(1) per tile for well-formed inputs.
package edgeindex
