package elev

import (
	"testing"

	"elevsim/src/types"
)

func queueOf(floors ...int) *FloorQueue {
	q := NewFloorQueue()
	for _, floor := range floors {
		q.Add(floor)
	}
	return q
}

func TestChooseDirection(t *testing.T) {
	testCases := []struct {
		name     string
		dir      types.Direction
		current  int
		floors   []int
		expected types.Direction
	}{
		{"empty queue", types.DirUp, 5, nil, types.DirIdle},
		{"up with stops above", types.DirUp, 5, []int{2, 9}, types.DirUp},
		{"up exhausted flips down", types.DirUp, 9, []int{2, 4}, types.DirDown},
		{"up at top stop flips down", types.DirUp, 9, []int{2, 9}, types.DirDown},
		{"up with only current floor", types.DirUp, 9, []int{9}, types.DirDown},
		{"down with stops below", types.DirDown, 5, []int{2, 9}, types.DirDown},
		{"down exhausted flips up", types.DirDown, 1, []int{2, 4}, types.DirUp},
		{"down with only current floor", types.DirDown, 4, []int{4}, types.DirUp},
		{"idle only above", types.DirIdle, 0, []int{15}, types.DirUp},
		{"idle only below", types.DirIdle, 10, []int{3, 8}, types.DirDown},
		{"idle current floor only", types.DirIdle, 6, []int{6}, types.DirUp},
		{"idle nearer top", types.DirIdle, 10, []int{3, 15}, types.DirUp},
		{"idle nearer bottom", types.DirIdle, 10, []int{8, 19}, types.DirDown},
		{"idle tie favours up", types.DirIdle, 10, []int{2, 18}, types.DirUp},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ChooseDirection(tc.dir, tc.current, queueOf(tc.floors...))
			if got != tc.expected {
				t.Errorf("Expected %s, got %s", tc.expected, got)
			}
		})
	}
}

func TestTransitionTableIsComplete(t *testing.T) {
	for _, dir := range []types.Direction{types.DirUp, types.DirDown, types.DirIdle} {
		for _, above := range []bool{true, false} {
			for _, below := range []bool{true, false} {
				if _, ok := dirTransitions[dirKey{dir, above, below}]; !ok {
					t.Errorf("Missing transition for %s above=%v below=%v", dir, above, below)
				}
			}
		}
	}
}
