package types

import (
	"fmt"
	"strings"
)

type Direction int

const (
	DirUp   Direction = 1
	DirDown Direction = -1
	DirIdle Direction = 0
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "UP"
	case DirDown:
		return "DOWN"
	case DirIdle:
		return "IDLE"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

func (d Direction) Opposite() Direction {
	return -d
}

// ParseDirection accepts the two request directions. IDLE is never a valid request direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	}
	return DirIdle, fmt.Errorf("%q: %w", s, ErrInvalidDirection)
}

type ElevBehaviour int

const (
	Idle ElevBehaviour = iota
	Moving
)

func (b ElevBehaviour) String() string {
	switch b {
	case Idle:
		return "IDLE"
	case Moving:
		return "MOVING"
	}
	return fmt.Sprintf("ElevBehaviour(%d)", int(b))
}

// ElevState is a detached snapshot of one elevator.
type ElevState struct {
	ID            int
	Floor         int
	Dir           Direction
	Behaviour     ElevBehaviour
	Passengers    int
	Capacity      int
	PendingFloors []int
	Requests      []Request
}

func (s ElevState) Pending() int {
	return len(s.PendingFloors)
}

func (s ElevState) AtCapacity() bool {
	return s.Passengers >= s.Capacity
}

func (s ElevState) String() string {
	return fmt.Sprintf("Elevator{id=%d, floor=%d, state=%s, direction=%s, passengers=%d/%d, pending=%d}",
		s.ID, s.Floor, s.Behaviour, s.Dir, s.Passengers, s.Capacity, s.Pending())
}

// Arrival is emitted each time an elevator serves a queued floor.
type Arrival struct {
	ElevatorID int
	Floor      int
	Dir        Direction
	Passengers int
}
