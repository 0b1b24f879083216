// SPDX-License-Identifier: MIT

package cartlin

import (
	"fmt"
	"iter"
)

// CartesianIndices is a finite, forward-only sequence over every cartesian
// index of a Box, in row-major order (last axis fastest). It is the
// multidimensional counterpart of counting from Lower to Upper.
//
//	it := NewCartesianIndices([2]uint{2, 3})
//	for idx, ok := it.Next(); ok; idx, ok = it.Next() {
//		// [0 0] [0 1] [0 2] [1 0] [1 1] [1 2]
//	}
//
// Internally a linear cursor counts from 0 to the box size and is decomposed
// with LinToCartUnchecked over the box widths; the lower bounds are added
// afterwards. Once exhausted it stays exhausted; build a new one to iterate
// again. Not safe for concurrent advancement.
//
// S is a fixed-size array, so the iterator covers ranks 0 through MaxRank.
// For higher ranks walk a linear range and decompose each position with
// LinToCartDyn.
type CartesianIndices[S Shape] struct {
	current uint // next linear position, relative to the box origin
	max     uint // number of indices in the box
	deltas  S    // per-axis widths (Upper-Lower)
	lower   S    // per-axis offsets
}

// NewCartesianIndices iterates over every index of a grid with the given
// dimension sizes, i.e. over Extent(dimSize). It cannot fail; a zero-sized
// axis yields an empty sequence.
func NewCartesianIndices[S Shape](dimSize S) *CartesianIndices[S] {
	return WithOffsetsUnchecked(Extent(dimSize))
}

// FromBounds iterates over the indices of b. It returns (nil, false) when
// any axis has Upper <= Lower.
//
//	it, _ := FromBounds(Box[[2]uint]{Lower: [2]uint{1, 2}, Upper: [2]uint{3, 5}})
//	// [1 2] [1 3] [1 4] [2 2] [2 3] [2 4]
func FromBounds[S Shape](b Box[S]) (*CartesianIndices[S], bool) {
	if !b.Valid() {
		return nil, false
	}

	return WithOffsetsUnchecked(b), true
}

// WithOffsetsUnchecked is FromBounds without the check and always succeeds.
//
// An axis with Upper == Lower gives an empty sequence. An axis with
// Upper < Lower wraps its width to a huge unsigned value, so the sequence
// becomes enormous and its indices meaningless. That case is kept as is
// rather than rejected; use FromBounds when the bounds are untrusted.
func WithOffsetsUnchecked[S Shape](b Box[S]) *CartesianIndices[S] {
	return &CartesianIndices[S]{
		max:    b.Len(),
		deltas: b.Deltas(),
		lower:  b.Lower,
	}
}

// Next returns the next index and true, or (zero, false) once the sequence
// is exhausted. After the first false every further call returns false too.
// Complexity: O(N).
func (c *CartesianIndices[S]) Next() (S, bool) {
	if c.current == c.max {
		var zero S
		return zero, false
	}
	res := LinToCartUnchecked(c.current, c.deltas)
	for axis := 0; axis < len(res); axis++ {
		res[axis] += c.lower[axis]
	}
	c.current++

	return res, true
}

// Nth moves the cursor to absolute position n and returns the index found
// there, as Next would.
//
// n counts from the start of the sequence, NOT from the current position:
// Nth(0) after three calls to Next yields the first index again, and two
// consecutive Nth(1) calls yield the same index twice. Nth at the box size
// reports exhaustion. Positions past the end are not clamped: the only
// terminal condition is cursor == size, so such a cursor produces wrapped,
// meaningless indices.
func (c *CartesianIndices[S]) Nth(n uint) (S, bool) {
	c.current = n

	return c.Next()
}

// Remaining returns how many indices are left before the cursor reaches the
// box size. It is 0 once exhausted and also after Nth moved the cursor past
// the end.
func (c *CartesianIndices[S]) Remaining() uint {
	if c.current > c.max {
		return 0
	}

	return c.max - c.current
}

// All adapts the sequence for range-over-func. It consumes the iterator:
// breaking out of the loop leaves the cursor after the last yielded index.
//
//	for idx := range NewCartesianIndices([2]uint{2, 3}).All() { ... }
func (c *CartesianIndices[S]) All() iter.Seq[S] {
	return func(yield func(S) bool) {
		for {
			idx, ok := c.Next()
			if !ok || !yield(idx) {
				return
			}
		}
	}
}

// String implements fmt.Stringer for debugging.
func (c *CartesianIndices[S]) String() string {
	return fmt.Sprintf("CartesianIndices{current: %d, max: %d, lower: %v, deltas: %v}",
		c.current, c.max, c.lower, c.deltas)
}
