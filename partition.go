// SPDX-License-Identifier: MIT

package cartlin

import "fmt"

// Span is a half-open range [Start, End) of linear indices.
type Span struct {
	Start, End uint
}

// Len returns End-Start.
func (s Span) Len() uint {
	return s.End - s.Start
}

// Partition splits [0, total) into at most parts contiguous, non-empty
// spans of near-equal length; the first total%parts spans are one longer.
// Spans are returned in order and cover the range exactly once, so workers
// can convert their own endpoints instead of sharing a CartesianIndices.
//
// Panics if parts < 1 (programmer error). Returns nil when total == 0.
// Complexity: O(parts).
func Partition(total uint, parts int) []Span {
	if parts < 1 {
		panic(fmt.Sprintf("cartlin: Partition: parts must be >= 1, got %d", parts))
	}
	if total == 0 {
		return nil
	}
	n := uint(parts)
	if n > total {
		n = total
	}
	base, extra := total/n, total%n

	spans := make([]Span, 0, n)
	var start uint
	for i := uint(0); i < n; i++ {
		size := base
		if i < extra {
			size++
		}
		spans = append(spans, Span{Start: start, End: start + size})
		start += size
	}

	return spans
}
