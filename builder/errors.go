// SPDX-License-Identifier: MIT
package builder

import "errors"

// ErrTooSmall indicates a size or side below the allowed minimum.
var ErrTooSmall = errors.New("builder: parameter too small")

// ErrExhausted indicates the generator ran out of attempts.
var ErrExhausted = errors.New("builder: attempts exhausted")
