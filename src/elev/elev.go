package elev

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"elevsim/src/timer"
	"elevsim/src/types"
)

// New starts an idle elevator at startFloor. Its goroutines stop when ctx is cancelled.
// Arrivals are sent on arrivalCh, which the caller must keep draining. A nil channel disables them.
func New(ctx context.Context, id, startFloor, capacity int, stepDuration time.Duration, arrivalCh chan<- types.Arrival) *Elevator {
	elevMgr := &Elevator{
		id:          id,
		cmds:        make(chan ElevStateCmd),
		ctx:         ctx,
		timerAction: make(chan timer.TimerAction, 1),
		timeoutCh:   make(chan bool),
		arrivalCh:   arrivalCh,
		logger:      slog.Default().With("elevator", id),
	}
	elevator := &ElevState{
		NodeID:    id,
		Floor:     startFloor,
		Dir:       types.DirIdle,
		Behaviour: types.Idle,
		Capacity:  capacity,
		Floors:    NewFloorQueue(),
		Requests:  NewRequestQueue(),
	}

	go timer.Timer(ctx, timer.New(), stepDuration, elevMgr.timeoutCh, elevMgr.timerAction)
	elevMgr.startStateMgr(elevator)
	elevMgr.logger.Debug("Elevator initialized", "floor", startFloor, "capacity", capacity)
	return elevMgr
}

func (elevMgr *Elevator) ID() int {
	return elevMgr.id
}

// AddRequest queues req unless the elevator is full. It never changes direction;
// an idle car only becomes MOVING.
func (elevMgr *Elevator) AddRequest(req types.Request) error {
	var rejected bool
	err := elevMgr.exec(func(elevator *ElevState) {
		if elevator.Passengers >= elevator.Capacity {
			rejected = true
			return
		}
		elevator.Floors.Add(req.Floor)
		elevator.Requests.Add(req)
		if elevator.Behaviour == types.Idle {
			elevator.Behaviour = types.Moving
		}
		elevMgr.logger.Debug("Request queued", "floor", req.Floor, "dir", req.Dir, "pending", elevator.Floors.Size())
	})
	if err != nil {
		return err
	}
	if rejected {
		return fmt.Errorf("elevator %d: %w", elevMgr.id, types.ErrCapacityExceeded)
	}
	return nil
}

// RunSweep starts serving the queued floors. It returns once the first direction is committed.
// Calling it while a sweep is running does nothing.
func (elevMgr *Elevator) RunSweep() error {
	return elevMgr.exec(func(elevator *ElevState) {
		if elevator.Sweeping {
			return
		}
		if elevator.Floors.IsEmpty() {
			elevMgr.becomeIdle(elevator)
			return
		}
		elevator.Sweeping = true
		elevator.Behaviour = types.Moving
		elevMgr.beginStep(elevator)
	})
}

// Idle returns a channel that is closed once the elevator has no pending floors and no sweep running.
func (elevMgr *Elevator) Idle() <-chan struct{} {
	ch := make(chan struct{})
	err := elevMgr.exec(func(elevator *ElevState) {
		if !elevator.Sweeping && elevator.Floors.IsEmpty() {
			close(ch)
			return
		}
		elevator.idleWaiters = append(elevator.idleWaiters, ch)
	})
	if err != nil {
		close(ch)
	}
	return ch
}

// Snapshot returns a detached copy of the current state.
func (elevMgr *Elevator) Snapshot() types.ElevState {
	state, err := elevMgr.GetState()
	if err != nil {
		elevMgr.logger.Warn("Snapshot of stopped elevator", "err", err)
	}
	return state
}

func (elevMgr *Elevator) CurrentFloor() int {
	return elevMgr.Snapshot().Floor
}

func (elevMgr *Elevator) Direction() types.Direction {
	return elevMgr.Snapshot().Dir
}

func (elevMgr *Elevator) Behaviour() types.ElevBehaviour {
	return elevMgr.Snapshot().Behaviour
}

func (elevMgr *Elevator) PendingCount() int {
	return elevMgr.Snapshot().Pending()
}

func (elevMgr *Elevator) Passengers() int {
	return elevMgr.Snapshot().Passengers
}

func (elevMgr *Elevator) AtCapacity() bool {
	return elevMgr.Snapshot().AtCapacity()
}
