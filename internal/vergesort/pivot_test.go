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
	"testing"
)

func TestSort3(t *testing.T) {
	rng := rand.New(rand.NewSource(20))
	for trial := 0; trial < 100; trial++ {
		x := []int{rng.Intn(10), rng.Intn(10), rng.Intn(10)}
		s := NewOrderedSortable(x).(*orderedSortable[int])
		sort3(s, 0, 1, 2)
		if x[0] > x[1] || x[1] > x[2] {
			t.Fatalf("not sorted after sort3: %v", x)
		}
	}
}

func TestChoosePivotSwapsIntoLo(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	for _, n := range []int{3, 10, 90, 200} {
		x := make([]int, n)
		for i := range x {
			x[i] = rng.Intn(1000)
		}
		s := NewOrderedSortable(x).(*orderedSortable[int])
		before := append([]int(nil), x...)
		choosePivot(s, 0, n)

		found := false
		for _, v := range before {
			if v == x[0] {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("pivot value %d at lo is not one of the original elements", x[0])
		}
	}
}
