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

// insertionSortThreshold is the range width below which pdqsort always
// falls back to a plain insertion sort rather than recursing further
// (spec section 4.5 step 1).
const insertionSortThreshold = 24

// randomAccessDirectThreshold is the sequence length below which the
// public entry point skips run detection entirely and hands the whole
// sequence straight to pdqsort (spec section 4.1: "for sequences with
// n < 80 the function immediately delegates to the fallback sorter").
// It is a distinct quantity from ninetherThreshold even though both
// happen to be 80: this one gates the random-access run detector's own
// precondition (spec section 4.2 requires n >= 80 before it runs),
// while ninetherThreshold gates pivot-selection quality within pdqsort.
const randomAccessDirectThreshold = 80

// pdqsort sorts [lo, hi) in place using pattern-defeating quicksort:
// insertion sort for small ranges, median-of-3/ninther pivot selection,
// an equal-pivot left-partition shortcut, already-partitioned detection
// with a bounded partial-insertion-sort bailout, and worst-case
// unbalance detection that shuffles a few elements to break adversarial
// patterns before eventually escalating to heap sort. leftmostChild
// tracks whether lo is the left edge of the range the outermost
// pdqsort call was given (only then is a guarded insertion sort
// required as the base case; every other base case may use the
// unguarded variant since a partition step always leaves a valid
// sentinel at lo-1).
func pdqsort(s Engine, lo, hi int, badAllowed int, leftmostChild bool) {
	for {
		size := hi - lo
		if size < insertionSortThreshold {
			if leftmostChild {
				insertionSort(s, lo, hi)
			} else {
				unguardedInsertionSort(s, lo, hi)
			}
			return
		}

		if badAllowed == 0 {
			heapSort(s, lo, hi)
			return
		}

		choosePivot(s, lo, hi)

		if !leftmostChild && !s.Less(lo-1, lo) {
			// The pivot equals the element just left of this range,
			// which is known (from the parent partition) to be a
			// valid upper bound for everything left of lo. Skip
			// straight past every element equal to the pivot.
			lo = s.PartitionLeft(lo, hi) + 1
			continue
		}

		pivotPos, alreadyPartitioned := s.PartitionRight(lo, hi)

		leftSize := pivotPos - lo
		rightSize := hi - pivotPos - 1
		highlyUnbalanced := leftSize < size/8 || rightSize < size/8

		if highlyUnbalanced {
			badAllowed--
			if leftSize >= insertionSortThreshold {
				breakPatterns(s, lo, lo+leftSize)
			}
			if rightSize >= insertionSortThreshold {
				breakPatterns(s, pivotPos+1, hi)
			}
		} else if alreadyPartitioned &&
			partialInsertionSort(s, lo, pivotPos) &&
			partialInsertionSort(s, pivotPos+1, hi) {
			return
		}

		if leftSize < rightSize {
			pdqsort(s, lo, pivotPos, badAllowed, leftmostChild)
			lo = pivotPos + 1
			leftmostChild = false
		} else {
			pdqsort(s, pivotPos+1, hi, badAllowed, false)
			hi = pivotPos
		}
	}
}

// breakPatterns perturbs a handful of elements at roughly quarter
// offsets from each end of [lo, hi) to defeat adversarial inputs that
// would otherwise repeatedly trigger the highly-unbalanced path (spec
// section 4.5 step 5): 2 swaps below ninetherThreshold, 6 above it.
// Positions are a fixed function of lo, hi and the quarter offset, so
// the perturbation is deterministic and allocation-free.
func breakPatterns(s lessSwap, lo, hi int) {
	size := hi - lo
	quarter := size / 4
	if quarter < 1 {
		return
	}

	s.Swap(lo, lo+quarter)
	s.Swap(hi-1, hi-1-quarter)

	if size > ninetherThreshold {
		s.Swap(lo+1, lo+1+quarter)
		s.Swap(lo+2, lo+2+quarter)
		s.Swap(hi-2, hi-2-quarter)
		s.Swap(hi-3, hi-3-quarter)
	}
}

// sortRandomAccess is the entry point used by Sort. Sequences shorter
// than randomAccessDirectThreshold go straight to pdqsort (spec
// section 4.1); everything else first tries to carve the sequence into
// a small number of ascending/descending runs and merge them, falling
// back to pdqsort for whatever doesn't resolve into runs (spec section
// 4.2, whose own precondition is n >= randomAccessDirectThreshold).
func sortRandomAccess(s Engine) {
	n := s.Len()
	if n < 2 {
		return
	}
	if n < randomAccessDirectThreshold {
		pdqsort(s, 0, n, log2(n)+1, true)
		return
	}
	vergesortRandomAccess(s, 0, n)
}
