// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math"
	"math/bits"
	"strings"

	"github.com/katalvlaran/cartlin"
)

// Dense is an N-dimensional row-major array of T values.
// shape holds the size of every axis and data holds product(shape)
// elements with the last axis contiguous.
type Dense[T any] struct {
	shape []uint // per-axis sizes, all > 0
	data  []T    // flat backing storage, len == product(shape)
	opts  Options
}

// NewDense creates a zero-valued Dense with the given shape.
// Stage 1 (Validate): at least one axis, every axis > 0.
// Stage 2 (Prepare): copy the shape and allocate flat storage.
// Complexity: O(product(shape)) time and memory.
func NewDense[T any](shape []uint, opts ...Option) (*Dense[T], error) {
	if err := validateShape(shape); err != nil {
		return nil, err
	}

	return &Dense[T]{
		shape: append([]uint(nil), shape...),
		data:  make([]T, cartlin.Size(shape)),
		opts:  gatherOptions(opts...),
	}, nil
}

// FromData wraps an existing flat slice laid out in row-major order.
// The slice is not copied; writes through Set are visible to the caller.
// Returns ErrBadShape for an invalid or overflowing shape, ErrDataLength when
// len(data) != product(shape).
// Complexity: O(N).
func FromData[T any](shape []uint, data []T, opts ...Option) (*Dense[T], error) {
	if err := validateShape(shape); err != nil {
		return nil, err
	}
	if uint(len(data)) != cartlin.Size(shape) {
		return nil, fmt.Errorf("FromData: len %d, shape %v: %w", len(data), shape, ErrDataLength)
	}

	return &Dense[T]{
		shape: append([]uint(nil), shape...),
		data:  data,
		opts:  gatherOptions(opts...),
	}, nil
}

// validateShape rejects empty shapes, zero-sized axes and shapes whose
// element count does not fit a slice length.
func validateShape(shape []uint) error {
	if len(shape) == 0 {
		return fmt.Errorf("shape %v: no axes: %w", shape, ErrBadShape)
	}
	size := uint(1)
	for axis, n := range shape {
		if n == 0 {
			return fmt.Errorf("shape %v: axis %d is empty: %w", shape, axis, ErrBadShape)
		}
		hi, lo := bits.Mul(size, n)
		if hi != 0 || lo > math.MaxInt {
			return fmt.Errorf("shape %v: size overflows at axis %d: %w", shape, axis, ErrBadShape)
		}
		size = lo
	}

	return nil
}

// Shape returns a copy of the per-axis sizes.
func (d *Dense[T]) Shape() []uint {
	return append([]uint(nil), d.shape...)
}

// Rank returns the number of axes.
func (d *Dense[T]) Rank() int {
	return len(d.shape)
}

// Len returns the number of elements.
func (d *Dense[T]) Len() uint {
	return uint(len(d.data))
}

// Data returns the flat backing slice (not a copy).
func (d *Dense[T]) Data() []T {
	return d.data
}

// offset maps a cartesian index to its flat offset or ErrIndexOutOfBounds.
func (d *Dense[T]) offset(method string, idx []uint) (uint, error) {
	i, ok := cartlin.CartToLin(idx, d.shape)
	if !ok {
		return 0, denseErrorf(method, idx, ErrIndexOutOfBounds)
	}

	return i, nil
}

// At returns the element at the cartesian index idx.
// The number of coordinates must equal Rank.
// Complexity: O(N).
func (d *Dense[T]) At(idx ...uint) (T, error) {
	i, err := d.offset("At", idx)
	if err != nil {
		var zero T
		return zero, err
	}

	return d.data[i], nil
}

// Set assigns v at the cartesian index idx.
// Complexity: O(N).
func (d *Dense[T]) Set(v T, idx ...uint) error {
	i, err := d.offset("Set", idx)
	if err != nil {
		return err
	}
	d.data[i] = v

	return nil
}

// AtLinear returns the element at flat offset i.
// Complexity: O(1).
func (d *Dense[T]) AtLinear(i uint) (T, error) {
	if i >= d.Len() {
		var zero T
		return zero, fmt.Errorf("Dense.AtLinear(%d): %w", i, ErrIndexOutOfBounds)
	}

	return d.data[i], nil
}

// Coordinate converts flat offset i back to its cartesian index.
// The returned error matches both ErrIndexOutOfBounds and cartlin.ErrOutOfRange.
// Complexity: O(N).
func (d *Dense[T]) Coordinate(i uint) ([]uint, error) {
	idx := make([]uint, len(d.shape))
	if err := cartlin.LinToCartDyn(i, d.shape, idx); err != nil {
		return nil, fmt.Errorf("Dense.Coordinate: %w: %w", ErrIndexOutOfBounds, err)
	}

	return idx, nil
}

// Each calls fn for every element in storage order with its cartesian
// index, stopping early when fn returns false. The idx slice is reused
// between calls; copy it to retain it.
// Complexity: O(Len·N).
func (d *Dense[T]) Each(fn func(idx []uint, v T) bool) {
	idx := make([]uint, len(d.shape))
	for i, v := range d.data {
		cartlin.LinToCartDynUnchecked(uint(i), d.shape, idx)
		if !fn(idx, v) {
			return
		}
	}
}

// String implements fmt.Stringer for debugging: one line per run of the
// innermost axis.
// Complexity: O(Len).
func (d *Dense[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Dense%v\n", d.shape)
	inner := int(d.shape[len(d.shape)-1])
	for i, v := range d.data {
		if i%inner == 0 {
			sb.WriteString("[") // open row
		}
		fmt.Fprintf(&sb, "%v", v)
		if i%inner == inner-1 {
			sb.WriteString("]\n") // close row
		} else {
			sb.WriteString(", ")
		}
	}

	return sb.String()
}
