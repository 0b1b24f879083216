package grid_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cartlin"
	"github.com/katalvlaran/cartlin/grid"
)

var errBoom = errors.New("boom")

// TestFill computes every element from its own index on several workers.
func TestFill(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []grid.Option
	}{
		{"defaults", nil},
		{"single worker", []grid.Option{grid.WithWorkers(1)}},
		{"many small spans", []grid.Option{grid.WithWorkers(8), grid.WithMinSpan(1)}},
		{"more workers than elements", []grid.Option{grid.WithWorkers(1000), grid.WithMinSpan(1)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			shape := []uint{6, 7, 5}
			d, err := grid.NewDense[uint](shape, tc.opts...)
			require.NoError(t, err)

			var calls atomic.Int64
			err = d.Fill(context.Background(), func(idx []uint) (uint, error) {
				calls.Add(1)
				lin, ok := cartlin.CartToLin(idx, shape)
				if !ok {
					return 0, errBoom
				}
				return lin + 1, nil
			})
			require.NoError(t, err)
			assert.Equal(t, int64(d.Len()), calls.Load())

			for i, v := range d.Data() {
				require.Equalf(t, uint(i)+1, v, "offset %d", i)
			}
		})
	}
}

// TestFill_Error stops at the first failing element and reports it.
func TestFill_Error(t *testing.T) {
	t.Parallel()

	d, err := grid.NewDense[int]([]uint{4, 4}, grid.WithWorkers(4), grid.WithMinSpan(1))
	require.NoError(t, err)

	err = d.Fill(context.Background(), func(idx []uint) (int, error) {
		if idx[0] == 2 && idx[1] == 3 {
			return 0, errBoom
		}
		return 1, nil
	})
	require.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "Dense.Fill([2 3])")
}

// TestFill_Cancelled returns the context error without calling fn.
func TestFill_Cancelled(t *testing.T) {
	t.Parallel()

	d, err := grid.NewDense[int]([]uint{8, 8}, grid.WithWorkers(2), grid.WithMinSpan(1))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int64
	err = d.Fill(ctx, func([]uint) (int, error) {
		calls.Add(1)
		return 1, nil
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls.Load())
}

// TestOptions_Panic rejects nonsensical option values.
func TestOptions_Panic(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "grid: WithWorkers: n must be >= 1", func() { grid.WithWorkers(0) })
	assert.PanicsWithValue(t, "grid: WithMinSpan: n must be >= 1", func() { grid.WithMinSpan(0) })
}
