// File: example_test.go
package cartlin_test

import (
	"fmt"

	"github.com/katalvlaran/cartlin"
)

////////////////////////////////////////////////////////////////////////////////
// Example: CartToLin
////////////////////////////////////////////////////////////////////////////////

// ExampleCartToLin walks a 2×3 matrix (two rows, three columns):
//
//	0 1 2
//	3 4 5
//
// and shows that an out-of-bounds index has no linear offset while the
// unchecked variant still produces a (meaningless) number.
func ExampleCartToLin() {
	dimSize := []uint{2, 3}
	for _, idx := range [][]uint{{0, 0}, {0, 2}, {1, 0}, {1, 2}} {
		lin, _ := cartlin.CartToLin(idx, dimSize)
		fmt.Println(idx, "->", lin)
	}

	_, ok := cartlin.CartToLin([]uint{1, 3}, dimSize)
	fmt.Println("[1 3] valid:", ok)
	fmt.Println("[1 3] unchecked:", cartlin.CartToLinUnchecked([]uint{1, 3}, dimSize))

	// Output:
	// [0 0] -> 0
	// [0 2] -> 2
	// [1 0] -> 3
	// [1 2] -> 5
	// [1 3] valid: false
	// [1 3] unchecked: 6
}

////////////////////////////////////////////////////////////////////////////////
// Example: LinToCart / LinToCartDyn
////////////////////////////////////////////////////////////////////////////////

// ExampleLinToCart inverts CartToLin on a 2×3×4 grid.
func ExampleLinToCart() {
	idx, ok := cartlin.LinToCart(14, [3]uint{2, 3, 4})
	fmt.Println(idx, ok)

	_, ok = cartlin.LinToCart(24, [3]uint{2, 3, 4})
	fmt.Println(ok)

	// Output:
	// [1 0 2] true
	// false
}

// ExampleLinToCartDyn reuses one buffer for a rank only known at run time.
func ExampleLinToCartDyn() {
	dimSize := []uint{2, 3}
	buf := make([]uint, len(dimSize))

	_ = cartlin.LinToCartDyn(4, dimSize, buf)
	fmt.Println(buf)

	err := cartlin.LinToCartDyn(6, dimSize, buf)
	fmt.Println(err)
	fmt.Println(buf)

	// Output:
	// [1 1]
	// LinToCartDyn(6): cartlin: linear index out of range
	// [1 1]
}

////////////////////////////////////////////////////////////////////////////////
// Example: CartesianIndices
////////////////////////////////////////////////////////////////////////////////

// ExampleFromBounds iterates over an offset window: rows 1..2, columns 2..4.
func ExampleFromBounds() {
	it, ok := cartlin.FromBounds(cartlin.Box[[2]uint]{
		Lower: [2]uint{1, 2},
		Upper: [2]uint{3, 5},
	})
	if !ok {
		return
	}
	for idx := range it.All() {
		fmt.Print(idx, " ")
	}
	fmt.Println()

	// Output:
	// [1 2] [1 3] [1 4] [2 2] [2 3] [2 4]
}

// ExampleCartesianIndices_Nth shows that Nth jumps to an absolute position
// rather than skipping ahead of the cursor.
func ExampleCartesianIndices_Nth() {
	it := cartlin.NewCartesianIndices([2]uint{2, 3})
	it.Next()
	it.Next()
	idx, _ := it.Nth(1)
	fmt.Println(idx)
	idx, _ = it.Next()
	fmt.Println(idx)

	// Output:
	// [0 1]
	// [0 2]
}
