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

// partitionRightGeneric partitions [lo, hi) around the element at lo
// (the pivot, chosen and placed by the caller) using a guarded
// Hoare-style two-pointer scan: every element left of the returned
// pivot position is not greater than the pivot, every element right of
// it is not less. It also reports whether the range needed no swaps at
// all, which lets the caller detect an already-sorted run cheaply
// (spec section 4.5 step 3).
//
// This is a guarded scan rather than classic pdqsort's unguarded,
// sentinel-based one: the unguarded form relies on the pivot itself
// acting as a sentinel to avoid a bounds check on the inner loops,
// which is faster but easy to get subtly wrong. Since this port cannot
// be compiled or tested against a reference, the guarded form is used
// throughout in exchange for that certainty.
func partitionRightGeneric(s lessSwap, lo, hi int) (pivotPos int, alreadyPartitioned bool) {
	pivot := lo
	i, j := lo+1, hi-1

	for i <= j && s.Less(i, pivot) {
		i++
	}
	for i <= j && !s.Less(j, pivot) {
		j--
	}

	alreadyPartitioned = i > j

	for i < j {
		s.Swap(i, j)
		i++
		for i <= j && s.Less(i, pivot) {
			i++
		}
		j--
		for i <= j && !s.Less(j, pivot) {
			j--
		}
	}

	pivotPos = i - 1
	s.Swap(pivot, pivotPos)
	return pivotPos, alreadyPartitioned
}

// partitionLeftGeneric partitions [lo, hi) around the element at lo
// under the assumption that nothing in the range is less than the
// pivot (the caller only calls this, instead of PartitionRight, when
// the chosen pivot is not greater than the element at lo-1, per spec
// section 4.5 step 3): it places everything not greater than the pivot
// to its left.
func partitionLeftGeneric(s lessSwap, lo, hi int) int {
	pivot := lo
	i, j := lo+1, hi-1

	for i <= j && !s.Less(pivot, i) {
		i++
	}
	for i <= j && s.Less(pivot, j) {
		j--
	}

	for i < j {
		s.Swap(i, j)
		i++
		for i <= j && !s.Less(pivot, i) {
			i++
		}
		j--
		for i <= j && s.Less(pivot, j) {
			j--
		}
	}

	pivotPos := i - 1
	s.Swap(pivot, pivotPos)
	return pivotPos
}
