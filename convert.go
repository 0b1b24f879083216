// SPDX-License-Identifier: MIT

package cartlin

// CartToLin converts a cartesian index into its row-major linear index.
//
// It returns (0, false) when len(indices) != len(dimSize) or when any
// coordinate is out of bounds; there is no linear index for such input.
//
//	dimSize := []uint{2, 3, 4}
//	CartToLin([]uint{1, 0, 2}, dimSize) // 14, true  (1*12 + 0*4 + 2*1)
//	CartToLin([]uint{1, 2, 3}, dimSize) // 23, true  (last element)
//	CartToLin([]uint{1, 3, 0}, dimSize) // 0, false
//
// Complexity: O(N).
func CartToLin(indices, dimSize []uint) (uint, bool) {
	if !Valid(indices, dimSize) {
		return 0, false
	}

	return CartToLinUnchecked(indices, dimSize), true
}

// CartToLinUnchecked is CartToLin without validation.
//
// The two slices are walked pairwise from their last elements towards the
// first; the walk stops at the start of the shorter slice and the leading
// surplus of the longer one is ignored. Out-of-bounds coordinates produce a
// well-defined but meaningless offset, e.g. [1, 5] in a 2×5 grid gives 10
// although the grid only has offsets 0..9. It never fails. Overflow wraps.
// Complexity: O(N).
func CartToLinUnchecked(indices, dimSize []uint) uint {
	var index uint
	multiplier := uint(1)
	for i, d := len(indices)-1, len(dimSize)-1; i >= 0 && d >= 0; i, d = i-1, d-1 {
		index += multiplier * indices[i]
		multiplier *= dimSize[d]
	}

	return index
}

// LinToCartDyn decomposes a linear index into cartIndices.
//
// Unlike LinToCart it works on slices whose length is only known at run
// time, and it reuses the caller's buffer instead of returning a new value.
// It returns an error wrapping ErrLengthMismatch when len(cartIndices) !=
// len(dimSize), or ErrOutOfRange when index >= Size(dimSize). On error
// cartIndices is left exactly as it was.
// Complexity: O(N).
func LinToCartDyn(index uint, dimSize, cartIndices []uint) error {
	if len(dimSize) != len(cartIndices) {
		return convErrorf("LinToCartDyn", index, ErrLengthMismatch)
	}
	if index >= Size(dimSize) {
		return convErrorf("LinToCartDyn", index, ErrOutOfRange)
	}
	LinToCartDynUnchecked(index, dimSize, cartIndices)

	return nil
}

// LinToCartDynUnchecked is LinToCartDyn without validation.
//
// The buffer and dimSize are walked pairwise from their last elements;
// each step writes index%bound and continues with index/bound. A buffer
// shorter than dimSize only receives the innermost coordinates; a longer
// buffer keeps its leading elements untouched. An index beyond the grid
// wraps around modulo its size, so 6 in a 2×3 grid decomposes to [0, 0].
//
// A zero bound reached by the walk panics with an integer division by zero.
// Complexity: O(N).
func LinToCartDynUnchecked(index uint, dimSize, cartIndices []uint) {
	for c, d := len(cartIndices)-1, len(dimSize)-1; c >= 0 && d >= 0; c, d = c-1, d-1 {
		bound := dimSize[d]
		cartIndices[c] = index % bound
		index /= bound
	}
}
