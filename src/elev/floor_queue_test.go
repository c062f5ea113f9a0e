package elev

import (
	"slices"
	"testing"
)

func TestFloorQueueEmpty(t *testing.T) {
	q := NewFloorQueue()
	if !q.IsEmpty() || q.Size() != 0 {
		t.Errorf("Expected empty queue, got size %d", q.Size())
	}
	if _, ok := q.Min(); ok {
		t.Errorf("Expected no min on empty queue")
	}
	if _, ok := q.Max(); ok {
		t.Errorf("Expected no max on empty queue")
	}
	if _, ok := q.NextAbove(0); ok {
		t.Errorf("Expected no floor above on empty queue")
	}
	if _, ok := q.NextBelow(0); ok {
		t.Errorf("Expected no floor below on empty queue")
	}
	if q.Remove(3) {
		t.Errorf("Expected Remove on empty queue to report false")
	}
}

func TestFloorQueueAddCollapsesDuplicates(t *testing.T) {
	q := NewFloorQueue()
	for _, floor := range []int{12, 3, 15, 3, 8, 12} {
		q.Add(floor)
	}
	if got, want := q.Floors(), []int{3, 8, 12, 15}; !slices.Equal(got, want) {
		t.Errorf("Expected floors %v, got %v", want, got)
	}
	if q.Add(8) {
		t.Errorf("Expected Add of existing floor to report false")
	}
	if !q.Add(9) {
		t.Errorf("Expected Add of new floor to report true")
	}
}

func TestFloorQueueNeighbours(t *testing.T) {
	q := NewFloorQueue()
	for _, floor := range []int{-2, 3, 8, 12} {
		q.Add(floor)
	}

	testCases := []struct {
		current int
		above   int
		aboveOK bool
		below   int
		belowOK bool
	}{
		{current: -5, above: -2, aboveOK: true, belowOK: false},
		{current: -2, above: 3, aboveOK: true, belowOK: false},
		{current: 0, above: 3, aboveOK: true, below: -2, belowOK: true},
		{current: 8, above: 12, aboveOK: true, below: 3, belowOK: true},
		{current: 10, above: 12, aboveOK: true, below: 8, belowOK: true},
		{current: 12, aboveOK: false, below: 8, belowOK: true},
		{current: 20, aboveOK: false, below: 12, belowOK: true},
	}
	for _, tc := range testCases {
		above, ok := q.NextAbove(tc.current)
		if ok != tc.aboveOK || (ok && above != tc.above) {
			t.Errorf("NextAbove(%d) = %d, %v; expected %d, %v", tc.current, above, ok, tc.above, tc.aboveOK)
		}
		below, ok := q.NextBelow(tc.current)
		if ok != tc.belowOK || (ok && below != tc.below) {
			t.Errorf("NextBelow(%d) = %d, %v; expected %d, %v", tc.current, below, ok, tc.below, tc.belowOK)
		}
	}
}

func TestFloorQueueRemove(t *testing.T) {
	q := NewFloorQueue()
	q.Add(4)
	q.Add(9)

	if !q.Remove(4) {
		t.Fatalf("Expected Remove(4) to report true")
	}
	if q.Remove(4) {
		t.Errorf("Expected second Remove(4) to report false")
	}
	if q.Contains(4) {
		t.Errorf("Expected 4 to be gone")
	}
	if lo, _ := q.Min(); lo != 9 {
		t.Errorf("Expected min 9, got %d", lo)
	}
	if hi, _ := q.Max(); hi != 9 {
		t.Errorf("Expected max 9, got %d", hi)
	}
}

func TestFloorQueueFloorsIsCopy(t *testing.T) {
	q := NewFloorQueue()
	q.Add(1)
	floors := q.Floors()
	floors[0] = 42
	if !q.Contains(1) || q.Contains(42) {
		t.Errorf("Expected Floors to return a copy, queue now %v", q.Floors())
	}
}
