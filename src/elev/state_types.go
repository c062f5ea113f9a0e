// State types are defined in elev package so the manager goroutine can own them unexported.
package elev

import (
	"context"
	"log/slog"

	"elevsim/src/timer"
	"elevsim/src/types"
)

// ElevState is the mutable state of one elevator. Only its manager goroutine touches it.
type ElevState struct {
	NodeID     int
	Floor      int
	Dir        types.Direction
	Behaviour  types.ElevBehaviour
	Passengers int
	Capacity   int
	Floors     *FloorQueue
	Requests   *RequestQueue
	Sweeping   bool

	idleWaiters []chan struct{}
}

// ElevStateCmd is an operation executed by the manager goroutine.
type ElevStateCmd struct {
	Exec func(elevator *ElevState)
}

// Elevator owns one ElevState and serializes every access to it.
type Elevator struct {
	id   int
	cmds chan ElevStateCmd
	ctx  context.Context

	timerAction chan timer.TimerAction
	timeoutCh   chan bool
	arrivalCh   chan<- types.Arrival
	logger      *slog.Logger
}
