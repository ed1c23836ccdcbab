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
	"math/rand"
	"sort"
	"testing"
)

func TestHeapSort(t *testing.T) {
	rng := rand.New(rand.NewSource(40))
	for _, n := range []int{0, 1, 2, 3, 17, 200, 999} {
		x := make([]int, n)
		for i := range x {
			x[i] = rng.Intn(500)
		}
		want := append([]int(nil), x...)
		sort.Ints(want)

		s := NewOrderedSortable(x).(*orderedSortable[int])
		heapSort(s, 0, n)
		for i := range x {
			if x[i] != want[i] {
				t.Fatalf("n=%d: mismatch at %d: got %d want %d", n, i, x[i], want[i])
			}
		}
	}
}

func TestHeapSortSubrange(t *testing.T) {
	x := []int{99, 5, 4, 3, 2, 1, -99}
	s := NewOrderedSortable(x).(*orderedSortable[int])
	heapSort(s, 1, 6)
	want := []int{99, 1, 2, 3, 4, 5, -99}
	for i := range x {
		if x[i] != want[i] {
			t.Fatalf("mismatch at %d: got %d want %d", i, x[i], want[i])
		}
	}
}
