// SPDX-License-Identifier: MIT
// Package builder generates solvable jigsaw instances deterministically.
//
// What:
//
//   - Generate draws an n×n arrangement of square tiles whose shared borders
//     match exactly and whose every border signature is unique (no other
//     border equals it or its mirror) and non-palindromic.
//   - The interiors of the tiles are cut from a single ground-truth image,
//     optionally with patterns stamped into it.
//   - Each tile is then put in a random orientation and the tile order is
//     shuffled, so the result looks like a real puzzle input.
//
// Why:
//
//   - Tests and benchmarks need inputs with a known answer: the Puzzle keeps
//     the generation layout, the corner IDs and the ground-truth image.
//
// Determinism:
//
//	All randomness flows from the *rand.Rand set by WithSeed / WithRand.
//
// Errors:
//
//   - ErrTooSmall: size or side below the minimum.
//   - ErrExhausted: no unique border assignment or stamp placement was found.
package builder
