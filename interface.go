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

import "github.com/semihalev/vergesort/internal/vergesort"

// Interface is the classic contract a caller implements to sort
// arbitrary data by index: report how many elements there are, compare
// two of them by position, and swap two of them by position.
type Interface interface {
	Len() int
	Less(i, j int) bool
	Swap(i, j int)
}

// Sort sorts data in place.
//
// Sort is not guaranteed to be stable: equal elements may be reordered
// relative to each other. Use SortStable-shaped code built on your own
// index if stability matters, the same tradeoff the standard library's
// sort.Sort makes.
func Sort(data Interface) {
	vergesort.Sort(vergesort.NewIndexSortable(data))
}

// IsSorted reports whether data is sorted in non-decreasing order.
func IsSorted(data Interface) bool {
	n := data.Len()
	for i := n - 1; i > 0; i-- {
		if data.Less(i, i-1) {
			return false
		}
	}
	return true
}

// reverse adapts an Interface so ascending order in the adapter reads
// as descending order in the underlying data.
type reverse struct {
	Interface
}

func (r reverse) Less(i, j int) bool {
	return r.Interface.Less(j, i)
}

// Reverse returns the mirror image of data: sorting the result sorts
// the original data in descending order.
func Reverse(data Interface) Interface {
	return reverse{data}
}
