// Contains the sweep state machine. All functions here run on the manager goroutine.
package elev

import (
	"fmt"

	"elevsim/src/timer"
	"elevsim/src/types"
)

// beginStep commits the direction for the next hop and arms the step timer.
func (elevMgr *Elevator) beginStep(elevator *ElevState) {
	dir := ChooseDirection(elevator.Dir, elevator.Floor, elevator.Floors)
	if dir != elevator.Dir {
		elevMgr.logger.Debug("Direction changed", "from", elevator.Dir, "to", dir, "floor", elevator.Floor)
	}
	elevator.Dir = dir
	select {
	case elevMgr.timerAction <- timer.Start:
	case <-elevMgr.ctx.Done():
	}
}

// handleStepTimeout serves the current floor if it is pending. Otherwise it moves one hop
// in the committed direction and serves the floor it lands on.
func (elevMgr *Elevator) handleStepTimeout(elevator *ElevState) {
	if !elevator.Sweeping {
		elevMgr.logger.Debug("Step timeout ignored - not sweeping")
		return
	}

	if !elevator.Floors.Contains(elevator.Floor) {
		var next int
		var ok bool
		switch elevator.Dir {
		case types.DirUp:
			next, ok = elevator.Floors.NextAbove(elevator.Floor)
		case types.DirDown:
			next, ok = elevator.Floors.NextBelow(elevator.Floor)
		}
		if !ok {
			panic(fmt.Sprintf("elevator %d: no floor %s of %d, pending %v",
				elevator.NodeID, elevator.Dir, elevator.Floor, elevator.Floors.Floors()))
		}
		elevMgr.logger.Debug("Moving", "dir", elevator.Dir, "from", elevator.Floor, "to", next)
		elevator.Floor = next
	}

	elevMgr.serveFloor(elevator)

	if elevator.Floors.IsEmpty() {
		elevMgr.becomeIdle(elevator)
		return
	}
	elevMgr.beginStep(elevator)
}

// serveFloor removes the current floor from the queue if it is pending. Arrivals board one passenger.
func (elevMgr *Elevator) serveFloor(elevator *ElevState) {
	if !elevator.Floors.Remove(elevator.Floor) {
		return
	}
	elevator.Passengers = min(elevator.Passengers+1, elevator.Capacity)
	elevMgr.logger.Info("Arrived", "floor", elevator.Floor, "passengers", elevator.Passengers, "pending", elevator.Floors.Size())

	if elevMgr.arrivalCh == nil {
		return
	}
	arrival := types.Arrival{
		ElevatorID: elevator.NodeID,
		Floor:      elevator.Floor,
		Dir:        elevator.Dir,
		Passengers: elevator.Passengers,
	}
	select {
	case elevMgr.arrivalCh <- arrival:
	case <-elevMgr.ctx.Done():
	}
}

func (elevMgr *Elevator) becomeIdle(elevator *ElevState) {
	elevator.Sweeping = false
	elevator.Behaviour = types.Idle
	elevator.Dir = types.DirIdle
	for _, ch := range elevator.idleWaiters {
		close(ch)
	}
	elevator.idleWaiters = nil
	elevMgr.logger.Debug("Elevator idle", "floor", elevator.Floor, "passengers", elevator.Passengers)
}
