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

// heapSort is pdqsort's escalation target once bad_allowed hits zero
// (spec section 4.5 step 5): it guarantees O(n log n) worst case
// regardless of how adversarial the input is. siftDown/heapSort follow
// the classic shape used by the standard library's own sort package.
func heapSort(s lessSwap, lo, hi int) {
	first := lo
	n := hi - lo

	for i := n/2 - 1; i >= 0; i-- {
		siftDown(s, i, n, first)
	}
	for i := n - 1; i > 0; i-- {
		s.Swap(first, first+i)
		siftDown(s, 0, i, first)
	}
}

// siftDown restores the max-heap property on the virtual range
// [first+lo, first+hi) rooted at first+lo.
func siftDown(s lessSwap, lo, hi, first int) {
	root := lo
	for {
		child := 2*root + 1
		if child >= hi {
			return
		}
		if child+1 < hi && s.Less(first+child, first+child+1) {
			child++
		}
		if !s.Less(first+root, first+child) {
			return
		}
		s.Swap(first+root, first+child)
		root = child
	}
}
