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

import "cmp"

// threeWayInsertionThreshold is the segment width below which the
// three-way quicksort fallback always finishes with a plain insertion
// sort rather than partitioning further (spec section 4.6: "If size <
// 32, insertion-sort"). This is a distinct quantity from the
// random-access engine's insertionSortThreshold (24); the two fallback
// algorithms pick their own base-case width independently, and this
// package cannot reach into internal/vergesort's unexported constant
// even if the numbers happened to match.
const threeWayInsertionThreshold = 32

// log2 returns floor(log2(n)) for n >= 1. Duplicated from
// internal/vergesort's identical helper: the bidirectional path lives
// in this package rather than internal/vergesort (see DESIGN.md) and
// has no dependency on that package, so it carries its own copy of
// this one-line helper rather than introducing an import solely to
// share it.
func log2(n int) int {
	depth := 0
	for n > 1 {
		depth++
		n >>= 1
	}
	return depth
}

// unstableLimit returns floor(n / floor(log2 n)), the minimum length a
// forward or backward run must reach to be worth merging on its own
// rather than folded into an unstable span handed to the three-way
// quicksort fallback (spec section 3's unstable_limit, applied to the
// bidirectional path per spec section 4.3). Callers must only invoke
// this with n >= 2 so log2(n) >= 1.
func unstableLimit(n int) int {
	return n / log2(n)
}

// SortList sorts l in place using less to compare elements, using only
// forward and backward iteration -- no indexing. Short runs accumulate
// into a single span sorted with a median-of-9 three-way quicksort;
// longer ascending or descending runs (descending ones reversed in
// place first) are merged in as they're found, following the eager
// incremental merge scheme of the bidirectional half of the algorithm
// (as opposed to the random-access half's deferred list-of-runs
// scheme; the two are not mixed).
func SortList[T any](l *List[T], less func(a, b T) bool) {
	if l.Len() < 2 {
		return
	}
	if l.Len() < 80 {
		// Short lists skip run detection and go straight to the
		// three-way quicksort fallback.
		threeWayQuicksort(l, less)
		return
	}
	vergesortBidirectional(l, unstableLimit(l.Len()), less)
}

// SortListOrdered sorts l in place using its element type's natural
// ordering.
func SortListOrdered[T cmp.Ordered](l *List[T]) {
	SortList(l, func(a, b T) bool { return a < b })
}

func vergesortBidirectional[T any](l *List[T], limit int, less func(a, b T) bool) {
	root := &l.root
	mergedFirst := root.next

	var unstableFirst *Element[T]
	cur := mergedFirst

	for cur != root {
		runFirst := cur
		runLast := cur
		runLen := 1
		next := cur.next
		descending := next != root && less(next.Value, cur.Value)

		if descending {
			n := next
			for n != root && less(n.Value, runLast.Value) {
				runLast = n
				n = n.next
				runLen++
			}
			cur = n
		} else {
			n := next
			for n != root && !less(n.Value, runLast.Value) {
				runLast = n
				n = n.next
				runLen++
			}
			cur = n
		}

		if runLen < limit && cur != root {
			if unstableFirst == nil {
				unstableFirst = runFirst
			}
			continue
		}

		if descending {
			l.reverseSegment(runFirst, runLast)
			runFirst, runLast = runLast, runFirst
			if mergedFirst == runLast {
				mergedFirst = runFirst
			}
		}

		if unstableFirst != nil {
			// The three-way quicksort replaces the segment's nodes, so
			// re-read its first node (and the merged prefix's first node,
			// which is the list front) after it returns.
			before := unstableFirst.prev
			threeWayQuicksortSegment(l, unstableFirst, runFirst, less)
			unstableFirst = before.next
			mergedFirst = mergeRuns(l, root.next, unstableFirst, runFirst, less)
			unstableFirst = nil
		}

		mergedFirst = mergeRuns(l, mergedFirst, runFirst, cur, less)
	}

	if unstableFirst != nil {
		threeWayQuicksortSegment(l, unstableFirst, root, less)
		mergeRuns(l, mergedFirst, unstableFirst, root, less)
	}
}

// mergeRuns merges the sorted run starting at aFirst (extending up to,
// but not including, bFirst) with the sorted run [bFirst, afterLast)
// in place, splicing nodes of the second run backward into the first
// wherever they compare smaller. It returns whichever of aFirst/bFirst
// is now the first node of the combined run.
//
// aLen is a snapshot of run A's length taken before any splicing
// starts, and is what bounds a's advance: bFirst is itself a node that
// gets spliced elsewhere in the list the moment something in run B
// compares smaller than the current a, so checking a against bFirst by
// identity stops working as soon as that first splice happens (a would
// then have to walk through content beyond the real end of run A to
// ever observe it again). Counting down aLen instead only decrements
// when a itself genuinely advances past a run-A node, which is exactly
// the condition "every element of run A has been passed".
func mergeRuns[T any](l *List[T], aFirst, bFirst, afterLast *Element[T], less func(a, b T) bool) *Element[T] {
	if aFirst == bFirst || bFirst == afterLast {
		return aFirst
	}

	aLen := 0
	for e := aFirst; e != bFirst; e = e.next {
		aLen++
	}

	a, b := aFirst, bFirst
	first := aFirst
	if less(b.Value, a.Value) {
		first = b
	}

	for aLen > 0 && b != afterLast {
		if less(b.Value, a.Value) {
			next := b.next
			l.moveBefore(b, a)
			b = next
		} else {
			a = a.next
			aLen--
		}
	}
	return first
}

// threeWayQuicksort fully sorts an independent list using the
// median-of-9 three-way quicksort fallback.
func threeWayQuicksort[T any](l *List[T], less func(a, b T) bool) {
	if l.Len() < 2 {
		return
	}
	threeWayQuicksortSegment(l, l.root.next, &l.root, less)
}

// threeWayQuicksortSegment sorts the segment [first, afterLast) of l
// in place (afterLast may be l's own root sentinel, or any later node
// still belonging to l). It is the bidirectional fallback for spans
// too short or too irregular to resolve into a handful of runs (spec
// section 4.6), generalized from the original's median-of-3 three-way
// partition to a median-of-9 the way spec.md asks for.
//
// The three-way split itself is done by copying values into three
// fresh scratch lists rather than splicing the original nodes: with
// only forward links to work with during a single partitioning pass,
// tracking which original node goes where while also maintaining
// three interleaved chains invites exactly the kind of off-by-one
// mistake this port avoids elsewhere by choosing the more easily
// verified approach when no compiler is available to catch it.
func threeWayQuicksortSegment[T any](l *List[T], first, afterLast *Element[T], less func(a, b T) bool) {
	n := 0
	for e := first; e != afterLast; e = e.next {
		n++
	}
	if n < 2 {
		return
	}
	if n < threeWayInsertionThreshold {
		listInsertionSort(l, first, afterLast, less)
		return
	}

	pivot := medianOfNine(first, afterLast, n, less)

	lt := NewList[T]()
	eq := NewList[T]()
	gt := NewList[T]()
	for e := first; e != afterLast; e = e.next {
		switch {
		case less(e.Value, pivot):
			lt.PushBack(e.Value)
		case less(pivot, e.Value):
			gt.PushBack(e.Value)
		default:
			eq.PushBack(e.Value)
		}
	}

	removeSegment(l, first, afterLast, n)

	threeWayQuicksort(lt, less)
	threeWayQuicksort(gt, less)

	insertListBefore(l, lt, afterLast)
	insertListBefore(l, eq, afterLast)
	insertListBefore(l, gt, afterLast)
}

// removeSegment detaches the n-node chain [first, afterLast) from l in
// a single splice, without visiting each node.
func removeSegment[T any](l *List[T], first, afterLast *Element[T], n int) {
	before := first.prev
	before.next = afterLast
	afterLast.prev = before
	l.len -= n
}

// insertListBefore inserts a copy of every element of src into l,
// immediately before mark, preserving src's order.
func insertListBefore[T any](l *List[T], src *List[T], mark *Element[T]) {
	for e := src.Front(); e != nil; e = e.Next() {
		l.insertValue(e.Value, mark.prev)
	}
}

// listInsertionSort sorts the segment [first, afterLast) of l in place
// using insertion sort, tracking the segment's own (possibly moving)
// left edge since the element originally at first may itself need to
// move if something smaller is found later in the segment.
func listInsertionSort[T any](l *List[T], first, afterLast *Element[T], less func(a, b T) bool) {
	segFirst := first
	cur := first.next
	for cur != afterLast {
		next := cur.next
		if less(cur.Value, segFirst.Value) {
			l.moveBefore(cur, segFirst)
			segFirst = cur
		} else {
			pos := cur.prev
			for pos != segFirst && less(cur.Value, pos.Value) {
				pos = pos.prev
			}
			if pos.next != cur {
				l.moveBefore(cur, pos.next)
			}
		}
		cur = next
	}
}

// medianOfNine samples up to nine values roughly evenly spaced through
// [first, afterLast) and returns their median, used as the pivot for
// threeWayQuicksortSegment.
func medianOfNine[T any](first, afterLast *Element[T], n int, less func(a, b T) bool) T {
	step := n / 8
	if step < 1 {
		step = 1
	}

	var samples [9]T
	idx := 0
	pos := 0
	for e := first; e != afterLast && idx < 9; e = e.next {
		if pos%step == 0 {
			samples[idx] = e.Value
			idx++
		}
		pos++
	}
	for idx < 9 {
		samples[idx] = samples[idx-1]
		idx++
	}

	for i := 1; i < 9; i++ {
		for j := i; j > 0 && less(samples[j], samples[j-1]); j-- {
			samples[j], samples[j-1] = samples[j-1], samples[j]
		}
	}
	return samples[4]
}
