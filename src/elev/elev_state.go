package elev

import (
	"errors"

	"github.com/tiendc/go-deepcopy"

	"elevsim/src/types"
)

var ErrStopped = errors.New("elevator stopped")

// startStateMgr runs the manager goroutine. Commands and step timeouts are handled one at a time,
// so a request can never interleave with half a sweep step.
func (elevMgr *Elevator) startStateMgr(elevator *ElevState) {
	go func() {
		for {
			select {
			case <-elevMgr.ctx.Done():
				for _, ch := range elevator.idleWaiters {
					close(ch)
				}
				elevMgr.logger.Debug("Elevator manager stopped")
				return
			case cmd := <-elevMgr.cmds:
				cmd.Exec(elevator)
			case <-elevMgr.timeoutCh:
				elevMgr.handleStepTimeout(elevator)
			}
		}
	}()
}

// exec runs fn on the manager goroutine and waits for it to finish.
func (elevMgr *Elevator) exec(fn func(elevator *ElevState)) error {
	done := make(chan struct{})
	cmd := ElevStateCmd{
		Exec: func(elevator *ElevState) {
			fn(elevator)
			close(done)
		},
	}
	select {
	case elevMgr.cmds <- cmd:
	case <-elevMgr.ctx.Done():
		return ErrStopped
	}
	// Once received, the command always runs to completion.
	<-done
	return nil
}

// GetState creates a deep copy of the elevator state.
func (elevMgr *Elevator) GetState() (types.ElevState, error) {
	var snapshot types.ElevState
	err := elevMgr.exec(func(elevator *ElevState) {
		src := types.ElevState{
			ID:            elevator.NodeID,
			Floor:         elevator.Floor,
			Dir:           elevator.Dir,
			Behaviour:     elevator.Behaviour,
			Passengers:    elevator.Passengers,
			Capacity:      elevator.Capacity,
			PendingFloors: elevator.Floors.floors,
			Requests:      elevator.Requests.requests,
		}
		if err := deepcopy.Copy(&snapshot, &src); err != nil {
			panic(err)
		}
	})
	return snapshot, err
}
