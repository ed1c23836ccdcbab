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

func TestSortListOrdered(t *testing.T) {
	rng := rand.New(rand.NewSource(80))
	for _, n := range []int{0, 1, 2, 3, 7, 8, 24, 25, 100, 5000} {
		x := make([]int, n)
		for i := range x {
			x[i] = rng.Intn(1000)
		}
		want := append([]int(nil), x...)
		sort.Ints(want)

		l := FromSlice(x)
		SortListOrdered(l)
		got := l.Slice()
		if l.Len() != n {
			t.Fatalf("n=%d: length changed to %d", n, l.Len())
		}
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("n=%d: mismatch at %d: got %d want %d", n, i, got[i], want[i])
			}
		}
	}
}

func TestSortListAlreadySorted(t *testing.T) {
	x := make([]int, 3000)
	for i := range x {
		x[i] = i
	}
	l := FromSlice(x)
	SortListOrdered(l)
	got := l.Slice()
	for i := range got {
		if got[i] != i {
			t.Fatalf("mismatch at %d: got %d want %d", i, got[i], i)
		}
	}
}

func TestSortListReverseSorted(t *testing.T) {
	n := 3000
	x := make([]int, n)
	for i := range x {
		x[i] = n - i
	}
	l := FromSlice(x)
	SortListOrdered(l)
	got := l.Slice()
	for i := 1; i < len(got); i++ {
		if got[i] < got[i-1] {
			t.Fatalf("not sorted at %d: %d then %d", i, got[i-1], got[i])
		}
	}
}

func TestSortListManyDuplicates(t *testing.T) {
	rng := rand.New(rand.NewSource(81))
	n := 4000
	x := make([]int, n)
	for i := range x {
		x[i] = rng.Intn(12)
	}
	want := append([]int(nil), x...)
	sort.Ints(want)

	l := FromSlice(x)
	SortListOrdered(l)
	got := l.Slice()
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("mismatch at %d: got %d want %d", i, got[i], want[i])
		}
	}
}

func TestSortListSmallSegments(t *testing.T) {
	// Exercise the pure listInsertionSort path directly (segments under
	// threeWayInsertionThreshold never reach threeWayQuicksortSegment's
	// partitioning branch).
	rng := rand.New(rand.NewSource(82))
	for trial := 0; trial < 50; trial++ {
		n := rng.Intn(threeWayInsertionThreshold)
		x := make([]int, n)
		for i := range x {
			x[i] = rng.Intn(20)
		}
		want := append([]int(nil), x...)
		sort.Ints(want)

		l := FromSlice(x)
		threeWayQuicksort(l, func(a, b int) bool { return a < b })
		got := l.Slice()
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("n=%d: mismatch at %d: got %d want %d", n, i, got[i], want[i])
			}
		}
	}
}

func TestThreeWayQuicksortLarge(t *testing.T) {
	rng := rand.New(rand.NewSource(83))
	n := 2000
	x := make([]int, n)
	for i := range x {
		x[i] = rng.Intn(40)
	}
	want := append([]int(nil), x...)
	sort.Ints(want)

	l := FromSlice(x)
	threeWayQuicksort(l, func(a, b int) bool { return a < b })
	got := l.Slice()
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("mismatch at %d: got %d want %d", i, got[i], want[i])
		}
	}
}
