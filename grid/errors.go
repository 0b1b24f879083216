// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// Public methods never panic on bad indices; they return one of these
// wrapped with the method name, so callers match with errors.Is.

package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a shape has no axes or a zero-sized axis.
	ErrBadShape = errors.New("grid: invalid shape")

	// ErrDataLength is returned when FromData receives a slice whose length
	// is not the product of the shape.
	ErrDataLength = errors.New("grid: data length does not match shape")

	// ErrIndexOutOfBounds indicates a cartesian or linear index outside the grid.
	ErrIndexOutOfBounds = errors.New("grid: index out of bounds")
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, idx []uint, err error) error {
	return fmt.Errorf("Dense.%s(%v): %w", method, idx, err)
}
