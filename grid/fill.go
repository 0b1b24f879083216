// SPDX-License-Identifier: MIT

package grid

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cartlin"
)

// ctxCheckEvery is how many elements a Fill worker computes between
// context checks.
const ctxCheckEvery = 1024

// Fill sets every element to fn(idx), computing disjoint spans of the flat
// storage concurrently.
//
// Stage 1 (Prepare): split [0, Len) with cartlin.Partition into at most
// WithWorkers spans of at least WithMinSpan elements.
// Stage 2 (Execute): one errgroup goroutine per span; each owns an index
// buffer that is refilled with cartlin.LinToCartDynUnchecked per element.
// Stage 3 (Finalize): wait for all workers; return the first error.
//
// fn runs concurrently on different goroutines and must not retain idx.
// When fn fails or ctx is cancelled the remaining workers stop early and
// the grid is left partially filled.
// Complexity: O(Len·N) work, O(workers·N) extra memory.
func (d *Dense[T]) Fill(ctx context.Context, fn func(idx []uint) (T, error)) error {
	spans := cartlin.Partition(d.Len(), d.opts.parts(d.Len()))

	g, ctx := errgroup.WithContext(ctx)
	for _, span := range spans {
		g.Go(func() error {
			return d.fillSpan(ctx, span, fn)
		})
	}

	return g.Wait()
}

// fillSpan computes the elements of one span sequentially.
func (d *Dense[T]) fillSpan(ctx context.Context, span cartlin.Span, fn func(idx []uint) (T, error)) error {
	idx := make([]uint, len(d.shape))
	for i := span.Start; i < span.End; i++ {
		if (i-span.Start)%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		cartlin.LinToCartDynUnchecked(i, d.shape, idx)
		v, err := fn(idx)
		if err != nil {
			return fmt.Errorf("Dense.Fill(%v): %w", idx, err)
		}
		d.data[i] = v
	}

	return nil
}
