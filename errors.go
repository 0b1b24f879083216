// SPDX-License-Identifier: MIT
// Package cartlin: sentinel error set.
// Only LinToCartDyn reports failure through an error; every other checked
// function uses a comma-ok bool. Match with errors.Is.

package cartlin

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch indicates that the cartesian index buffer and the
	// dimension sizes do not have the same number of axes.
	ErrLengthMismatch = errors.New("cartlin: index length does not match number of dimensions")

	// ErrOutOfRange indicates a linear index at or beyond the product of all
	// dimension sizes.
	ErrOutOfRange = errors.New("cartlin: linear index out of range")
)

// convErrorf wraps a sentinel with the failing call and its linear index.
func convErrorf(fn string, index uint, err error) error {
	return fmt.Errorf("%s(%d): %w", fn, index, err)
}
