// SPDX-License-Identifier: MIT

package cartlin

// Box is a rectangular window of cartesian indices: on every axis the
// coordinates run over the half-open range [Lower[axis], Upper[axis]).
// A non-zero Lower expresses an offset window inside a larger grid.
type Box[S Shape] struct {
	Lower S
	Upper S
}

// Extent returns the box covering a whole grid: [0, dimSize[axis]) on every axis.
func Extent[S Shape](dimSize S) Box[S] {
	return Box[S]{Upper: dimSize}
}

// Valid reports whether Upper > Lower on every axis. A box with an empty
// or inverted axis describes no iteration space.
// Complexity: O(N).
func (b Box[S]) Valid() bool {
	for axis := 0; axis < len(b.Lower); axis++ {
		if b.Upper[axis] <= b.Lower[axis] {
			return false
		}
	}

	return true
}

// Deltas returns Upper-Lower per axis. The subtraction is unsigned, so an
// inverted axis (Upper < Lower) wraps to a huge width; Valid rejects those.
func (b Box[S]) Deltas() S {
	var d S
	for axis := 0; axis < len(d); axis++ {
		d[axis] = b.Upper[axis] - b.Lower[axis]
	}

	return d
}

// Len returns the number of indices in the box, the product of Deltas.
// Overflow wraps.
func (b Box[S]) Len() uint {
	n := uint(1)
	d := b.Deltas()
	for axis := 0; axis < len(d); axis++ {
		n *= d[axis]
	}

	return n
}

// Contains reports whether Lower[axis] <= idx[axis] < Upper[axis] on every axis.
func (b Box[S]) Contains(idx S) bool {
	for axis := 0; axis < len(idx); axis++ {
		if idx[axis] < b.Lower[axis] || idx[axis] >= b.Upper[axis] {
			return false
		}
	}

	return true
}
