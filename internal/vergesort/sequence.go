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

// Package vergesort implements the random-access half of the vergesort
// algorithm: a run-detecting merge driver backed by a pattern-defeating
// quicksort fallback. The whole engine is written once against a small
// "sortable" capability interface and adapted three ways depending on
// what the caller can offer back (index-only Less/Swap, a slice with a
// custom comparator, or a slice with the natural ordering), so the
// partitioning and merge strategy can specialize without duplicating the
// run-detection or pivot-selection logic.
package vergesort

import "cmp"

// lessSwap is the minimal capability the shared partition and pivot
// routines need: compare two elements by index, and swap two elements by
// index. This mirrors the classic sort.Interface contract with Len
// dropped, since every algorithm here already receives explicit bounds.
type lessSwap interface {
	Less(i, j int) bool
	Swap(i, j int)
}

// Engine is the full capability the pdqsort driver and the run detector
// need, and the handle the root package holds after adapting a caller's
// data into one of the three concrete forms below. PartitionRight,
// PartitionLeft and Merge are pluggable: the classic Hoare-style scan is
// shared by two of the three adapters, while the natural-order adapter
// substitutes a branchless block partition, and the merge strategy
// differs depending on whether the adapter can allocate a typed scratch
// buffer.
type Engine interface {
	lessSwap
	Len() int
	// PartitionRight partitions [lo, hi) around the element currently
	// at lo, returning the pivot's final resting index and whether the
	// range was already partitioned around it before any swaps.
	PartitionRight(lo, hi int) (pivotPos int, alreadyPartitioned bool)
	// PartitionLeft partitions [lo, hi) so that every element not
	// greater than the pivot at lo ends up left of the returned index.
	// Used by the equal-pivot left-partition shortcut (spec section
	// 4.5 step 3), where the caller already knows nothing in the range
	// is less than the pivot.
	PartitionLeft(lo, hi int) (pivotPos int)
	// Merge merges the two sorted runs [lo, mid) and [mid, hi) in
	// place.
	Merge(lo, mid, hi int)
}

// sortable is a local alias kept so the rest of this package can refer
// to the capability interface without stuttering on the exported name.
type sortable = Engine

// Sequence is the classic Len/Less/Swap contract (the shape of the
// standard library's sort.Interface). indexSortable adapts any Sequence
// into a sortable.
type Sequence interface {
	Len() int
	Less(i, j int) bool
	Swap(i, j int)
}

// indexSortable adapts a Sequence (index-only access, no way to read or
// copy an element out) into a sortable. Because it cannot allocate a
// typed scratch buffer, its Merge always falls back to the unbuffered
// in-place merge (spec section 5's "if allocation fails" path, realized
// here as "if allocation is not possible at all").
type indexSortable struct {
	seq Sequence
}

// NewIndexSortable exposes the Sequence adapter to callers outside this
// package (the root package's Sort entry point).
func NewIndexSortable(seq Sequence) Engine {
	return &indexSortable{seq: seq}
}

func (s *indexSortable) Len() int          { return s.seq.Len() }
func (s *indexSortable) Less(i, j int) bool { return s.seq.Less(i, j) }
func (s *indexSortable) Swap(i, j int)      { s.seq.Swap(i, j) }

func (s *indexSortable) PartitionRight(lo, hi int) (int, bool) {
	return partitionRightGeneric(s, lo, hi)
}

func (s *indexSortable) PartitionLeft(lo, hi int) int {
	return partitionLeftGeneric(s, lo, hi)
}

func (s *indexSortable) Merge(lo, mid, hi int) {
	mergeInPlace(s, lo, mid, hi)
}

// sliceSortable adapts a slice with a caller-supplied comparator into a
// sortable. Having direct access to the backing slice, its Merge can
// allocate a scratch buffer sized to the smaller of the two runs and
// merge in linear time.
type sliceSortable[T any] struct {
	data []T
	less func(a, b T) bool
}

// NewSliceSortable exposes the generic slice adapter to the root
// package's Slice entry point.
func NewSliceSortable[T any](data []T, less func(a, b T) bool) Engine {
	return &sliceSortable[T]{data: data, less: less}
}

func (s *sliceSortable[T]) Len() int { return len(s.data) }
func (s *sliceSortable[T]) Less(i, j int) bool {
	return s.less(s.data[i], s.data[j])
}
func (s *sliceSortable[T]) Swap(i, j int) {
	s.data[i], s.data[j] = s.data[j], s.data[i]
}

func (s *sliceSortable[T]) PartitionRight(lo, hi int) (int, bool) {
	return partitionRightGeneric(s, lo, hi)
}

func (s *sliceSortable[T]) PartitionLeft(lo, hi int) int {
	return partitionLeftGeneric(s, lo, hi)
}

func (s *sliceSortable[T]) Merge(lo, mid, hi int) {
	mergeBuffered(s.data, lo, mid, hi, s.less)
}

// orderedSortable adapts a slice of a naturally ordered type, comparing
// with the type's < operator directly instead of through a closure. This is the one
// adapter allowed to use the branchless block partition, matching spec
// section 9's note that the technique is only worth enabling "when the
// comparator is the default ordering and the element type is
// arithmetic" (or, more generally in Go, any cmp.Ordered type compared
// with the natural order).
type orderedSortable[T cmp.Ordered] struct {
	data []T
}

// NewOrderedSortable exposes the natural-order adapter to the root
// package's Ordered entry point.
func NewOrderedSortable[T cmp.Ordered](data []T) Engine {
	return &orderedSortable[T]{data: data}
}

func (s *orderedSortable[T]) Len() int { return len(s.data) }
func (s *orderedSortable[T]) Less(i, j int) bool {
	return s.data[i] < s.data[j]
}
func (s *orderedSortable[T]) Swap(i, j int) {
	s.data[i], s.data[j] = s.data[j], s.data[i]
}

func (s *orderedSortable[T]) PartitionRight(lo, hi int) (int, bool) {
	return partitionRightBlock(s.data, lo, hi)
}

func (s *orderedSortable[T]) PartitionLeft(lo, hi int) int {
	return partitionLeftGeneric(s, lo, hi)
}

func (s *orderedSortable[T]) Merge(lo, mid, hi int) {
	mergeBuffered(s.data, lo, mid, hi, func(a, b T) bool { return a < b })
}

// Sort runs the full vergesort algorithm (run detection plus pdqsort
// fallback) over the given engine, which already knows its own length.
func Sort(engine Engine) {
	sortRandomAccess(engine)
}
