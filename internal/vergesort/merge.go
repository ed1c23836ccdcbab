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

// mergeInPlace merges the sorted runs [lo, mid) and [mid, hi) without
// allocating, using a block-rotation strategy: repeatedly find where
// the first element of the right run belongs in the remaining left
// run, rotate that whole span into place, then narrow to what's left.
// This is spec section 5's mandatory fallback for adapters (like
// indexSortable) that only offer index-based Less/Swap and so have no
// way to allocate a typed scratch buffer.
func mergeInPlace(s lessSwap, lo, mid, hi int) {
	for lo < mid && mid < hi {
		if !s.Less(mid, lo) {
			lo++
			continue
		}
		// Find the extent of the run of right-side elements that
		// belong before the rest of the left run.
		hiRight := mid + 1
		for hiRight < hi && s.Less(hiRight, lo) {
			hiRight++
		}
		rotateRange(s, lo, mid, hiRight)
		lo += hiRight - mid
		mid = hiRight
	}
}

// rotateRange rotates [lo, hi) so the block [mid, hi) comes first,
// implemented with the classic reverse-reverse-reverse trick, which
// only needs Swap.
func rotateRange(s lessSwap, lo, mid, hi int) {
	reverseSwap(s, lo, mid)
	reverseSwap(s, mid, hi)
	reverseSwap(s, lo, hi)
}

func reverseSwap(s lessSwap, lo, hi int) {
	for lo < hi {
		hi--
		s.Swap(lo, hi)
		lo++
	}
}

// mergeBuffered merges the sorted runs [lo, mid) and [mid, hi) of data
// using a scratch buffer sized to the smaller run, giving linear-time
// merging for the two adapters (sliceSortable, orderedSortable) that
// have direct slice access and so can always allocate one (spec
// section 5's primary, buffer-available path).
func mergeBuffered[T any](data []T, lo, mid, hi int, less func(a, b T) bool) {
	if mid-lo <= hi-mid {
		mergeBufferedLeft(data, lo, mid, hi, less)
	} else {
		mergeBufferedRight(data, lo, mid, hi, less)
	}
}

// mergeBufferedLeft copies the (smaller) left run into scratch, then
// merges scratch and the untouched right run back into data.
func mergeBufferedLeft[T any](data []T, lo, mid, hi int, less func(a, b T) bool) {
	buf := make([]T, mid-lo)
	copy(buf, data[lo:mid])

	i, j, k := 0, mid, lo
	for i < len(buf) && j < hi {
		if less(data[j], buf[i]) {
			data[k] = data[j]
			j++
		} else {
			data[k] = buf[i]
			i++
		}
		k++
	}
	for i < len(buf) {
		data[k] = buf[i]
		i++
		k++
	}
	// Any remaining tail of the right run is already in place.
}

// mergeBufferedRight copies the (smaller) right run into scratch, then
// merges the untouched left run and scratch back into data from the
// end, avoiding the need to shift the left run out of the way first.
func mergeBufferedRight[T any](data []T, lo, mid, hi int, less func(a, b T) bool) {
	buf := make([]T, hi-mid)
	copy(buf, data[mid:hi])

	i, j, k := mid-1, len(buf)-1, hi-1
	for i >= lo && j >= 0 {
		if less(buf[j], data[i]) {
			data[k] = data[i]
			i--
		} else {
			data[k] = buf[j]
			j--
		}
		k--
	}
	for j >= 0 {
		data[k] = buf[j]
		j--
		k--
	}
}

// merger is the minimal capability mergeThree needs: merging two
// adjacent sorted runs in place. Engine satisfies it.
type merger interface {
	Merge(lo, mid, hi int)
}

// mergeThree merges three consecutive sorted runs [a, b), [b, c),
// [c, d) by always merging the pair of adjacent runs with the smaller
// combined length first, matching the shorter-side-first scheduling of
// inplace_merge3 in the bidirectional original (original_source's
// vergesort.h). Neither sort path calls it: the random-access path
// merges pairwise through mergeRunList, and the list-based path in the
// root package merges with its own mergeRuns.
func mergeThree(m merger, a, b, c, d int) {
	if (b - a) <= (d - c) {
		m.Merge(a, b, c)
		m.Merge(a, c, d)
	} else {
		m.Merge(b, c, d)
		m.Merge(a, b, d)
	}
}
