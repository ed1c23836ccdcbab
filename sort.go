/*
Copyright 2025 Vergesort Contributors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package vergesort

import (
	"cmp"

	"github.com/semihalev/vergesort/internal/vergesort"
)

// Slice sorts x in place using less to compare elements.
//
// As with Sort, the order of equal elements is not guaranteed to be
// preserved.
func Slice[T any](x []T, less func(a, b T) bool) {
	if len(x) < 2 {
		return
	}
	vergesort.Sort(vergesort.NewSliceSortable(x, less))
}

// SliceIsSorted reports whether x is sorted according to less.
func SliceIsSorted[T any](x []T, less func(a, b T) bool) bool {
	for i := len(x) - 1; i > 0; i-- {
		if less(x[i], x[i-1]) {
			return false
		}
	}
	return true
}

// Ordered sorts a slice of any naturally ordered type using its
// default ordering. This is the entry point that can take advantage of
// the branchless block partition, since the comparator is known at
// compile time to be the type's own < operator rather than an
// arbitrary closure.
func Ordered[T cmp.Ordered](x []T) {
	if len(x) < 2 {
		return
	}
	vergesort.Sort(vergesort.NewOrderedSortable(x))
}

// OrderedIsSorted reports whether x is sorted in non-decreasing order
// according to its type's natural ordering.
func OrderedIsSorted[T cmp.Ordered](x []T) bool {
	for i := len(x) - 1; i > 0; i-- {
		if x[i] < x[i-1] {
			return false
		}
	}
	return true
}

// CountingLess wraps a comparator and counts every call made through
// it. It exists so callers outside this module (in particular the
// benchmarking command, which lives in its own module and so cannot
// reach the internal comparator-counting engine directly) can still
// measure how many comparisons a sort performs against a given input,
// the same property internal/vergesort's own tests check for the
// engine's own entry points.
type CountingLess[T any] struct {
	Less        func(a, b T) bool
	Comparisons int
}

// NewCountingLess wraps less in a CountingLess with its counter at zero.
func NewCountingLess[T any](less func(a, b T) bool) *CountingLess[T] {
	return &CountingLess[T]{Less: less}
}

// Compare calls the wrapped comparator, incrementing Comparisons, and
// is meant to be passed directly as the less argument to Slice.
func (c *CountingLess[T]) Compare(a, b T) bool {
	c.Comparisons++
	return c.Less(a, b)
}
