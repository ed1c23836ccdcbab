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

import "testing"

func TestListPushBackFront(t *testing.T) {
	l := NewList[int]()
	if l.Len() != 0 || l.Front() != nil || l.Back() != nil {
		t.Fatal("new list should be empty")
	}
	l.PushBack(1)
	l.PushBack(2)
	l.PushBack(3)

	if l.Len() != 3 {
		t.Fatalf("expected length 3, got %d", l.Len())
	}
	if l.Front().Value != 1 || l.Back().Value != 3 {
		t.Fatalf("unexpected front/back: %d/%d", l.Front().Value, l.Back().Value)
	}
	if got := l.Slice(); len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("unexpected slice: %v", got)
	}
}

func TestListPushFront(t *testing.T) {
	l := NewList[int]()
	l.PushFront(3)
	l.PushFront(2)
	l.PushFront(1)
	if got := l.Slice(); len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("unexpected slice: %v", got)
	}
}

func TestListIteration(t *testing.T) {
	l := FromSlice([]int{1, 2, 3, 4})
	var forward []int
	for e := l.Front(); e != nil; e = e.Next() {
		forward = append(forward, e.Value)
	}
	if len(forward) != 4 || forward[0] != 1 || forward[3] != 4 {
		t.Fatalf("unexpected forward iteration: %v", forward)
	}

	var backward []int
	for e := l.Back(); e != nil; e = e.Prev() {
		backward = append(backward, e.Value)
	}
	if len(backward) != 4 || backward[0] != 4 || backward[3] != 1 {
		t.Fatalf("unexpected backward iteration: %v", backward)
	}
}

func TestListRemove(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	mid := l.Front().Next()
	v := l.Remove(mid)
	if v != 2 {
		t.Fatalf("expected removed value 2, got %d", v)
	}
	if got := l.Slice(); len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Fatalf("unexpected slice after remove: %v", got)
	}
}

func TestListReverseSegment(t *testing.T) {
	l := FromSlice([]int{1, 2, 3, 4, 5})
	first := l.Front().Next()      // 2
	last := l.Front().Next().Next() // 3
	l.reverseSegment(first, last)
	if got := l.Slice(); len(got) != 5 || got[0] != 1 || got[1] != 3 || got[2] != 2 || got[3] != 4 || got[4] != 5 {
		t.Fatalf("unexpected slice after reverseSegment: %v", got)
	}
}

func TestFromSlice(t *testing.T) {
	l := FromSlice([]int{9, 8, 7})
	if got := l.Slice(); len(got) != 3 || got[0] != 9 || got[2] != 7 {
		t.Fatalf("unexpected slice: %v", got)
	}
}
