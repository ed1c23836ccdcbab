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

func checkPartitionRight(t *testing.T, x []int) {
	t.Helper()
	s := NewOrderedSortable(append([]int(nil), x...)).(*orderedSortable[int])
	pivotVal := s.data[0]
	pivotPos, _ := partitionRightGeneric(s, 0, len(s.data))

	if s.data[pivotPos] != pivotVal {
		t.Fatalf("pivot value moved: got %d want %d", s.data[pivotPos], pivotVal)
	}
	for i := 0; i < pivotPos; i++ {
		if s.data[i] > pivotVal {
			t.Fatalf("left element %d at %d is greater than pivot %d", s.data[i], i, pivotVal)
		}
	}
	for i := pivotPos + 1; i < len(s.data); i++ {
		if s.data[i] < pivotVal {
			t.Fatalf("right element %d at %d is less than pivot %d", s.data[i], i, pivotVal)
		}
	}
}

func TestPartitionRightGeneric(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(50) + 2
		x := make([]int, n)
		for i := range x {
			x[i] = rng.Intn(20)
		}
		checkPartitionRight(t, x)
	}
}

func TestPartitionRightBlock(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(400) + 2
		x := make([]int, n)
		for i := range x {
			x[i] = rng.Intn(50)
		}
		pivotVal := x[0]
		pivotPos, _ := partitionRightBlock(x, 0, len(x))

		if x[pivotPos] != pivotVal {
			t.Fatalf("pivot value moved: got %d want %d", x[pivotPos], pivotVal)
		}
		for i := 0; i < pivotPos; i++ {
			if x[i] > pivotVal {
				t.Fatalf("left element %d at %d is greater than pivot %d", x[i], i, pivotVal)
			}
		}
		for i := pivotPos + 1; i < len(x); i++ {
			if x[i] < pivotVal {
				t.Fatalf("right element %d at %d is less than pivot %d", x[i], i, pivotVal)
			}
		}
	}
}

func TestPartitionLeftGeneric(t *testing.T) {
	// partitionLeftGeneric assumes nothing in the range is less than
	// the pivot; build inputs that satisfy that precondition.
	rng := rand.New(rand.NewSource(12))
	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(50) + 2
		x := make([]int, n)
		pivotVal := rng.Intn(20)
		x[0] = pivotVal
		for i := 1; i < n; i++ {
			x[i] = pivotVal + rng.Intn(20)
		}
		s := NewOrderedSortable(x).(*orderedSortable[int])
		pivotPos := partitionLeftGeneric(s, 0, n)

		for i := 0; i < pivotPos; i++ {
			if s.data[i] > pivotVal {
				t.Fatalf("left element %d at %d is greater than pivot %d", s.data[i], i, pivotVal)
			}
		}
		for i := pivotPos; i < n; i++ {
			if s.data[i] < pivotVal {
				t.Fatalf("element %d at %d is less than pivot %d", s.data[i], i, pivotVal)
			}
		}
	}
}
