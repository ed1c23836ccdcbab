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

// Package vergesort sorts sequences by first looking for existing
// ascending or descending runs and merging them, falling back to a
// pattern-defeating quicksort (for slices and anything shaped like
// sort.Interface) or a median-of-9 three-way quicksort (for the
// bidirectional List type) wherever no usable run is found.
//
// On data that is already mostly sorted, in reverse order, or made up
// of a few large sorted chunks, this finishes in close to linear time.
// On data with no exploitable structure, it falls back to the same
// pattern-defeating quicksort family used by the standard library's
// own sort package, so worst-case behavior never regresses below that.
//
// Four entry points cover the ways a caller might hold their data:
// Sort and IsSorted for the classic Len/Less/Swap interface, Slice and
// SliceIsSorted for a slice with an explicit comparator, Ordered for a
// slice of a naturally ordered type, and SortList/SortListOrdered for
// data only reachable through forward and backward iteration (List).
package vergesort
