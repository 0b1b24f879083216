// SPDX-License-Identifier: MIT

package cartlin

// MaxRank is the largest number of axes supported by the fixed-size API
// (LinToCart, Box, CartesianIndices). The slice-based functions have no
// such limit.
const MaxRank = 8

// Shape is the set of fixed-size index types: [N]uint for 0 ≤ N ≤ MaxRank,
// or any named type built on one of them. A value of type S is used both as
// a dimension-size vector and as a cartesian index.
//
// Go generics cannot abstract over array length, so ranks above MaxRank have
// no Shape; use the slice functions (CartToLin, LinToCartDyn) for them.
type Shape interface {
	~[0]uint | ~[1]uint | ~[2]uint | ~[3]uint | ~[4]uint |
		~[5]uint | ~[6]uint | ~[7]uint | ~[8]uint
}

// LinToCart converts a linear index into a fixed-size cartesian index.
// It returns (zero, false) when index >= product of dimSize.
//
//	LinToCart(14, [3]uint{2, 3, 4}) // [1 0 2], true
//	LinToCart(24, [3]uint{2, 3, 4}) // [0 0 0], false
//
// S has at most MaxRank axes. Higher-rank grids use LinToCartDyn with a
// caller-owned []uint buffer.
// Complexity: O(N).
func LinToCart[S Shape](index uint, dimSize S) (S, bool) {
	var dims [MaxRank]uint
	if index >= Size(load(dimSize, &dims)) {
		var zero S
		return zero, false
	}

	return LinToCartUnchecked(index, dimSize), true
}

// LinToCartUnchecked is LinToCart without the range check. An index beyond
// the grid wraps around: LinToCartUnchecked(6, [2]uint{2, 3}) is [0 0].
// It decomposes with LinToCartDynUnchecked, so both APIs agree bit for bit.
// Like LinToCart it stops at MaxRank axes; see LinToCartDynUnchecked above that.
// Complexity: O(N).
func LinToCartUnchecked[S Shape](index uint, dimSize S) S {
	var dims, out [MaxRank]uint
	d := load(dimSize, &dims)
	LinToCartDynUnchecked(index, d, out[:len(d)])

	return store[S](out[:len(d)])
}

// load copies s into buf and returns the populated prefix.
func load[S Shape](s S, buf *[MaxRank]uint) []uint {
	n := len(s)
	for axis := 0; axis < n; axis++ {
		buf[axis] = s[axis]
	}

	return buf[:n]
}

// store builds an S from src; len(src) must equal the length of S.
func store[S Shape](src []uint) S {
	var out S
	for axis := 0; axis < len(src); axis++ {
		out[axis] = src[axis]
	}

	return out
}
