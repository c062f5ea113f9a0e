package dispatcher

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"elevsim/src/config"
	"elevsim/src/elev"
	"elevsim/src/types"
)

const arrivalBufSize = 16

// Dispatcher is the building: a fixed fleet, the floor bounds and the scheduler.
type Dispatcher struct {
	cfg       config.Config
	fleet     []*elev.Elevator
	scheduler Scheduler

	// Held from car selection until the chosen car has committed its direction,
	// so every selection sees the result of the previous one.
	dispatchMu sync.Mutex
	served     atomic.Uint64
}

// New builds the fleet described by cfg. Elevator ids start at 1.
// All goroutines stop when ctx is cancelled.
func New(ctx context.Context, cfg config.Config) (*Dispatcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	arrivalCh := make(chan types.Arrival, arrivalBufSize)
	d := &Dispatcher{
		cfg:       cfg,
		fleet:     make([]*elev.Elevator, 0, cfg.NumElevators),
		scheduler: NewScheduler(cfg),
	}
	for i := range cfg.NumElevators {
		d.fleet = append(d.fleet, elev.New(ctx, i+1, cfg.StartFloor, cfg.Capacity, cfg.StepDuration, arrivalCh))
	}
	go d.collectArrivals(ctx, arrivalCh)

	slog.Info("Building initialized",
		"elevators", cfg.NumElevators,
		"minFloor", cfg.MinFloor,
		"maxFloor", cfg.MaxFloor,
		"capacity", cfg.Capacity)
	return d, nil
}

// RequestElevator validates the call, assigns it to the best car and starts that car's sweep.
// Returns the id of the chosen car. The error wraps one of the types.Err* sentinels.
func (d *Dispatcher) RequestElevator(floor int, dir types.Direction) (int, error) {
	if !d.cfg.InRange(floor) {
		slog.Warn("Invalid floor", "floor", floor, "min", d.cfg.MinFloor, "max", d.cfg.MaxFloor)
		return 0, fmt.Errorf("floor %d (valid range %d to %d): %w", floor, d.cfg.MinFloor, d.cfg.MaxFloor, types.ErrFloorOutOfRange)
	}
	if dir != types.DirUp && dir != types.DirDown {
		return 0, fmt.Errorf("%s: %w", dir, types.ErrInvalidDirection)
	}

	d.dispatchMu.Lock()
	defer d.dispatchMu.Unlock()

	elevator := d.scheduler.SelectElevator(d.fleet, floor, dir)
	if elevator == nil {
		slog.Error("No elevators available", "floor", floor, "dir", dir)
		return 0, fmt.Errorf("floor %d %s: %w", floor, dir, types.ErrNoElevatorAvailable)
	}

	req := types.NewRequest(floor, dir)
	if err := elevator.AddRequest(req); err != nil {
		slog.Warn("Request rejected", "elevator", elevator.ID(), "floor", floor, "err", err)
		return elevator.ID(), err
	}
	if err := elevator.RunSweep(); err != nil {
		return elevator.ID(), err
	}

	slog.Info("Request dispatched", "elevator", elevator.ID(), "floor", floor, "dir", dir, "request", req.ID)
	return elevator.ID(), nil
}

func (d *Dispatcher) Elevator(id int) (*elev.Elevator, bool) {
	for _, elevator := range d.fleet {
		if elevator.ID() == id {
			return elevator, true
		}
	}
	return nil, false
}

// Fleet returns the elevators in fleet order. The fleet never changes size.
func (d *Dispatcher) Fleet() []*elev.Elevator {
	return d.fleet
}

func (d *Dispatcher) Status() []types.ElevState {
	states := make([]types.ElevState, len(d.fleet))
	for i, elevator := range d.fleet {
		states[i] = elevator.Snapshot()
	}
	return states
}

// WaitIdle blocks until every elevator has served its queue or ctx is done.
func (d *Dispatcher) WaitIdle(ctx context.Context) error {
	for _, elevator := range d.fleet {
		select {
		case <-elevator.Idle():
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// Served is the number of arrivals across the fleet.
func (d *Dispatcher) Served() uint64 {
	return d.served.Load()
}

func (d *Dispatcher) Config() config.Config {
	return d.cfg
}

func (d *Dispatcher) collectArrivals(ctx context.Context, arrivalCh <-chan types.Arrival) {
	for {
		select {
		case <-ctx.Done():
			return
		case arrival := <-arrivalCh:
			d.served.Add(1)
			slog.Debug("Arrival", "elevator", arrival.ElevatorID, "floor", arrival.Floor, "passengers", arrival.Passengers)
		}
	}
}
