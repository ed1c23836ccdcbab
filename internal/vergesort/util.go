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

// log2 returns floor(log2(n)) for n >= 1, used to seed pdqsort's
// bad_allowed countdown (spec section 4.5 step 5) the same way the
// standard library seeds its own quicksort's recursion-depth limit.
func log2(n int) int {
	depth := 0
	for n > 1 {
		depth++
		n >>= 1
	}
	return depth
}

// unstableLimit returns floor(n / floor(log2 n)), the minimum length a
// detected run must reach to be worth recording on its own rather than
// folded into the unstable fallback region (spec section 3's
// unstable_limit, section 6's binding constant). Callers must only
// invoke this with n >= 2 so log2(n) >= 1.
func unstableLimit(n int) int {
	return n / log2(n)
}

// isSortedUntil returns the index of the first element in [lo, hi)
// that is smaller than its predecessor, or hi if the whole range is
// non-decreasing. Grounded on is_sorted_until from the bidirectional
// original (original_source/vergesort.h).
func isSortedUntil(s lessSwap, lo, hi int) int {
	if hi-lo < 2 {
		return hi
	}
	i := lo + 1
	for i < hi && !s.Less(i, i-1) {
		i++
	}
	return i
}

// isSortedUntilDesc returns the index of the first element in [lo, hi)
// that is not smaller than its predecessor, or hi if the whole range
// is strictly decreasing. Used by the run detector to identify
// descending runs, which it then reverses in place.
func isSortedUntilDesc(s lessSwap, lo, hi int) int {
	if hi-lo < 2 {
		return hi
	}
	i := lo + 1
	for i < hi && s.Less(i, i-1) {
		i++
	}
	return i
}

// reverseRange reverses the elements of [lo, hi) in place, used to
// turn a detected descending run into an ascending one before it is
// merged with its neighbors.
func reverseRange(s lessSwap, lo, hi int) {
	for lo < hi-1 {
		s.Swap(lo, hi-1)
		lo++
		hi--
	}
}
