// Package grid provides Dense, an N-dimensional row-major container whose
// flat storage is addressed through the cartlin index conversions.
//
// What:
//
//   - Dense[T] stores Len() = product(shape) values in one slice; the last
//     axis is contiguous, exactly the layout cartlin assumes.
//   - At/Set address elements by cartesian index; AtLinear/Coordinate
//     translate flat offsets back.
//   - Each walks all elements in storage order.
//   - Fill computes every element in parallel: the linear range is split
//     with cartlin.Partition and each span runs in its own goroutine under
//     an errgroup, with its own index buffer.
//
// Complexity:
//
//   - At, Set, AtLinear, Coordinate: O(N), N = rank.
//   - Each, Fill: O(Len·N).
//
// Options:
//
//   - WithWorkers(n): upper bound on Fill goroutines (default GOMAXPROCS).
//   - WithMinSpan(n): minimum elements per Fill goroutine (default 4096).
//
// Errors:
//
//   - ErrBadShape: empty shape or a zero-sized axis.
//   - ErrDataLength: FromData slice length differs from product(shape).
//   - ErrIndexOutOfBounds: cartesian or linear index outside the grid.
package grid
