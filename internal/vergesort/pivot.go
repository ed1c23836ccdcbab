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

// ninetherThreshold is the size above which pdqsort uses a pseudomedian
// of nine instead of a plain median of three for pivot selection (spec
// section 6).
const ninetherThreshold = 80

// sort3 orders the three elements at a, b, c so that neither s.Less(b,a)
// nor s.Less(c,b) holds afterward (spec section 4.7's iter_sort3).
func sort3(s lessSwap, a, b, c int) {
	if s.Less(b, a) {
		s.Swap(a, b)
	}
	if s.Less(c, b) {
		s.Swap(b, c)
		if s.Less(b, a) {
			s.Swap(a, b)
		}
	}
}

// choosePivot selects a pivot for [lo, hi) and swaps it into place at
// lo, following spec section 4.5 step 2: a plain median of three for
// small ranges, a pseudomedian of nine (median of three medians of
// three) once the range exceeds ninetherThreshold.
func choosePivot(s lessSwap, lo, hi int) {
	size := hi - lo
	mid := lo + size/2

	if size > ninetherThreshold {
		step := size / 8
		sort3(s, lo, lo+step, lo+2*step)
		sort3(s, mid-step, mid, mid+step)
		sort3(s, hi-1-2*step, hi-1-step, hi-1)
		sort3(s, lo+step, mid, hi-1-step)
		s.Swap(lo, mid)
	} else {
		sort3(s, lo, mid, hi-1)
		s.Swap(lo, mid)
	}
}
