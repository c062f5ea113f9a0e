package dispatcher

import (
	"elevsim/src/config"
	"elevsim/src/types"
)

// Direction-affinity scores
const (
	idleAffinity     = 10.0
	sameDirAffinity  = 8.0
	otherDirAffinity = 2.0
)

// Score rates how well placed an elevator is to take a request. Higher is better.
//   - proximity: closer cars score higher, relative to the building span
//   - direction: idle cars are always favourable, cars committed the other way are costly to reroute
//   - load: lighter cars score higher
func Score(elevator types.ElevState, floor int, dir types.Direction, span int) float64 {
	return config.ProximityWeight*proximityScore(elevator.Floor, floor, span) +
		config.DirectionWeight*directionScore(elevator.Dir, dir) +
		config.LoadWeight*loadScore(elevator.Passengers, elevator.Capacity)
}

func proximityScore(carFloor, floor, span int) float64 {
	if span <= 0 {
		return config.MaxTermScore
	}
	distance := abs(carFloor - floor)
	return config.MaxTermScore * (1 - float64(distance)/float64(span))
}

func directionScore(carDir, requestDir types.Direction) float64 {
	switch carDir {
	case types.DirIdle:
		return idleAffinity
	case requestDir:
		return sameDirAffinity
	default:
		return otherDirAffinity
	}
}

func loadScore(passengers, capacity int) float64 {
	if capacity <= 0 {
		return 0
	}
	return config.MaxTermScore * (1 - float64(passengers)/float64(capacity))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
