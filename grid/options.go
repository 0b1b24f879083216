// SPDX-License-Identifier: MIT
// Package grid: functional configuration for Dense.
//   - Option / Options (functional options with internal state),
//   - documented defaults,
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gatherOptions, the single place defaults are applied.

package grid

import "runtime"

// DefaultMinSpan is the smallest number of elements handed to one Fill
// goroutine; smaller grids are filled by fewer goroutines.
const DefaultMinSpan = 4096

const (
	panicWorkersInvalid = "grid: WithWorkers: n must be >= 1"
	panicMinSpanInvalid = "grid: WithMinSpan: n must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	workers int  // >= 1; runtime.GOMAXPROCS(0)
	minSpan uint // >= 1; DefaultMinSpan
}

// WithWorkers caps the number of goroutines Fill may start.
// Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithMinSpan sets the minimum number of elements per Fill goroutine.
// WithMinSpan(1) lets every worker run even on tiny grids.
// Panics when n < 1.
func WithMinSpan(n uint) Option {
	if n < 1 {
		panic(panicMinSpanInvalid)
	}

	return func(o *Options) { o.minSpan = n }
}

// gatherOptions applies user setters over the defaults, last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		workers: runtime.GOMAXPROCS(0),
		minSpan: DefaultMinSpan,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// parts returns how many spans Fill splits n elements into.
func (o Options) parts(n uint) int {
	p := n / o.minSpan
	if n%o.minSpan != 0 {
		p++
	}
	if p > uint(o.workers) {
		return o.workers
	}
	if p < 1 {
		return 1
	}

	return int(p)
}
