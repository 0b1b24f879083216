// Package cartlin converts between cartesian and linear indices of
// N-dimensional grids stored in flat, contiguous, row-major memory, and
// iterates over every cartesian index of a rectangular window.
//
// What:
//
//   - CartToLin / CartToLinUnchecked: cartesian index → linear offset.
//   - LinToCart / LinToCartUnchecked: linear offset → fixed-size cartesian
//     index ([N]uint for N ≤ MaxRank).
//   - LinToCartDyn / LinToCartDynUnchecked: linear offset → cartesian index
//     written into a caller-supplied []uint buffer (any rank, no allocation).
//   - CartesianIndices: finite, forward-only sequence over all indices of a
//     Box of half-open [Lower, Upper) bounds.
//   - Partition: split a linear range into spans for parallel callers.
//
// Layout:
//
// Row-major order: axis 0 is the outermost (slowest varying), the last axis
// is contiguous in memory. For a 2×3 grid:
//
//	0 1 2
//	3 4 5
//
// the element 5 sits at cartesian index [1, 2].
//
// Checked vs unchecked:
//
//   - Checked functions validate first and report failure through a
//     comma-ok bool (or an error for LinToCartDyn). They never write to an
//     output buffer when they fail.
//   - Unchecked functions never fail. Given bad input they return a
//     deterministic but meaningless value: pairwise zipping aligned at the
//     last axis, modular wrap-around of out-of-range offsets and unsigned
//     wrap-around on overflow. Nothing in them panics except an integer
//     division by a zero-sized axis while decomposing.
//
// Complexity:
//
//   - Every conversion is O(N) time, O(1) memory, N = number of axes.
//   - CartesianIndices.Next is O(N).
//
// Errors:
//
//   - ErrLengthMismatch: output buffer and dimension sizes differ in length.
//   - ErrOutOfRange: linear index ≥ product of dimension sizes.
//
// Concurrency:
//
// The conversion functions share no state and are safe for concurrent use.
// A CartesianIndices value must not be advanced from several goroutines;
// partition the linear range with Partition instead and convert each span
// independently (see the grid package for a worked example).
package cartlin
