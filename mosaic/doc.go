// Package mosaic turns an assembled placement into one image and searches
// it for a fixed pattern.
//
// What:
//
//   - Stitch drops the one-pixel border of every placed tile and joins the
//     interiors in placement order.
//   - Pattern is a rectangular mask of required cells; ' ' means "don't
//     care". SeaMonster is the classic three-row creature.
//   - Search tries the eight orientations of the image in tile.Ops order
//     and reports the first one holding at least one match, with the match
//     count and the roughness (on pixels not covered by any match).
//
// Complexity:
//
//   - Stitch:  O(n²·s²) for n×n tiles of side s.
//   - Search:  O(8·W²·k) for a W×W image and a pattern with k required cells.
//
// Errors:
//
//   - ErrIncomplete: the placement has empty cells.
//   - ErrNoInterior: tiles of side 2 or less leave nothing to stitch.
//   - ErrBadPattern: pattern text is empty or holds an unknown rune.
//   - ErrNotSquare:  Search was given a non-square image.
//   - ErrNotFound:   no orientation holds the pattern.
package mosaic
