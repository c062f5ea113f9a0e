package elev

import "elevsim/src/types"

type dirKey struct {
	dir       types.Direction
	roomAbove bool
	roomBelow bool
}

// dirNearest marks the one case that needs distances, not just room: an idle car with stops on both sides.
const dirNearest types.Direction = 2

// dirTransitions maps the committed direction and where stops remain to the next direction.
// An exhausted direction flips. With no room either way the only stop is the current floor.
var dirTransitions = map[dirKey]types.Direction{
	{types.DirUp, true, true}:   types.DirUp,
	{types.DirUp, true, false}:  types.DirUp,
	{types.DirUp, false, true}:  types.DirDown,
	{types.DirUp, false, false}: types.DirDown,

	{types.DirDown, true, true}:   types.DirDown,
	{types.DirDown, false, true}:  types.DirDown,
	{types.DirDown, true, false}:  types.DirUp,
	{types.DirDown, false, false}: types.DirUp,

	{types.DirIdle, true, false}:  types.DirUp,
	{types.DirIdle, false, true}:  types.DirDown,
	{types.DirIdle, false, false}: types.DirUp,
	{types.DirIdle, true, true}:   dirNearest,
}

// ChooseDirection returns the direction to travel from current given the pending stops.
// Returns DirIdle when there are no stops.
func ChooseDirection(dir types.Direction, current int, floors *FloorQueue) types.Direction {
	lowest, ok := floors.Min()
	if !ok {
		return types.DirIdle
	}
	highest, _ := floors.Max()

	next := dirTransitions[dirKey{dir: dir, roomAbove: current < highest, roomBelow: current > lowest}]
	if next == dirNearest {
		// Ties favour UP
		if highest-current <= current-lowest {
			return types.DirUp
		}
		return types.DirDown
	}
	return next
}
