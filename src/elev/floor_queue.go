package elev

import "slices"

// FloorQueue is the set of floors an elevator still has to stop at, kept in ascending order.
// The second return value of the query methods is false when no such floor exists.
type FloorQueue struct {
	floors []int
}

func NewFloorQueue() *FloorQueue {
	return &FloorQueue{}
}

// Add inserts floor and reports whether it was new. Duplicate requests collapse into one stop.
func (q *FloorQueue) Add(floor int) bool {
	i, found := slices.BinarySearch(q.floors, floor)
	if found {
		return false
	}
	q.floors = slices.Insert(q.floors, i, floor)
	return true
}

func (q *FloorQueue) Remove(floor int) bool {
	i, found := slices.BinarySearch(q.floors, floor)
	if !found {
		return false
	}
	q.floors = slices.Delete(q.floors, i, i+1)
	return true
}

func (q *FloorQueue) Contains(floor int) bool {
	_, found := slices.BinarySearch(q.floors, floor)
	return found
}

// NextAbove returns the smallest stored floor strictly greater than current.
func (q *FloorQueue) NextAbove(current int) (int, bool) {
	i, found := slices.BinarySearch(q.floors, current)
	if found {
		i++
	}
	if i >= len(q.floors) {
		return 0, false
	}
	return q.floors[i], true
}

// NextBelow returns the largest stored floor strictly less than current.
func (q *FloorQueue) NextBelow(current int) (int, bool) {
	i, _ := slices.BinarySearch(q.floors, current)
	if i == 0 {
		return 0, false
	}
	return q.floors[i-1], true
}

func (q *FloorQueue) Min() (int, bool) {
	if q.IsEmpty() {
		return 0, false
	}
	return q.floors[0], true
}

func (q *FloorQueue) Max() (int, bool) {
	if q.IsEmpty() {
		return 0, false
	}
	return q.floors[len(q.floors)-1], true
}

func (q *FloorQueue) IsEmpty() bool {
	return len(q.floors) == 0
}

func (q *FloorQueue) Size() int {
	return len(q.floors)
}

// Floors returns the pending floors in ascending order.
func (q *FloorQueue) Floors() []int {
	return slices.Clone(q.floors)
}
