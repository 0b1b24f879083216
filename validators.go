// SPDX-License-Identifier: MIT
// Package: cartlin
//
// Purpose:
//  - Single source of truth for the "is this a valid index" checks shared by
//    every checked entry point.
//
// Determinism & Performance:
//  - Pure, allocation-free, O(N).

package cartlin

// Valid reports whether indices addresses an element of a grid with the
// given dimension sizes.
//
// Both conditions must hold:
//   - every coordinate that has a matching bound is strictly below it;
//   - len(indices) == len(dimSize).
//
// The per-axis scan stops at the shorter slice, but a too-short or
// too-long index is invalid even when its overlapping prefix is in bounds.
// Complexity: O(N).
func Valid(indices, dimSize []uint) bool {
	for axis := 0; axis < len(indices) && axis < len(dimSize); axis++ {
		if indices[axis] >= dimSize[axis] {
			return false
		}
	}

	return len(indices) == len(dimSize)
}

// Size returns the number of elements of a grid, i.e. the product of all
// dimension sizes. An empty slice describes a single scalar element and
// yields 1; any zero-sized axis yields 0. Overflow wraps.
// Complexity: O(N).
func Size(dimSize []uint) uint {
	n := uint(1)
	for _, bound := range dimSize {
		n *= bound
	}

	return n
}
