package dispatcher

import (
	"log/slog"

	"elevsim/src/config"
	"elevsim/src/elev"
	"elevsim/src/types"
)

// Scheduler picks the elevator for a request. It keeps no state between calls.
type Scheduler struct {
	span   int
	policy config.FullFleetPolicy
}

func NewScheduler(cfg config.Config) Scheduler {
	return Scheduler{span: cfg.Span(), policy: cfg.FullFleetPolicy}
}

// Select returns the fleet index of the best car for the request.
//   - cars at capacity do not bid
//   - the strictly highest score wins, ties keep fleet order
//   - when every car is full, LeastPending falls back to the car with the fewest pending floors
//     and Reject returns false
//
// The result only depends on the given states.
func (s Scheduler) Select(fleet []types.ElevState, floor int, dir types.Direction) (int, bool) {
	if len(fleet) == 0 {
		return 0, false
	}

	bids := make([]Bid, 0, len(fleet))
	for i, elevator := range fleet {
		bid := Bid{Index: i, ElevatorID: elevator.ID, Pending: elevator.Pending(), Full: elevator.AtCapacity()}
		if !bid.Full {
			bid.Score = Score(elevator, floor, dir, s.span)
		}
		bids = append(bids, bid)
	}

	if best, ok := findAssignee(bids); ok {
		slog.Debug("Assigning request", "floor", floor, "dir", dir, "elevator", best.ElevatorID, "score", best.Score)
		return best.Index, true
	}

	if s.policy == config.Reject {
		slog.Debug("Every elevator at capacity, rejecting", "floor", floor)
		return 0, false
	}
	least := leastPending(bids)
	slog.Debug("Every elevator at capacity, using least pending", "floor", floor, "elevator", least.ElevatorID, "pending", least.Pending)
	return least.Index, true
}

// SelectElevator snapshots each car once and selects among them.
func (s Scheduler) SelectElevator(fleet []*elev.Elevator, floor int, dir types.Direction) *elev.Elevator {
	states := make([]types.ElevState, len(fleet))
	for i, elevator := range fleet {
		states[i] = elevator.Snapshot()
	}
	i, ok := s.Select(states, floor, dir)
	if !ok {
		return nil
	}
	return fleet[i]
}

func findAssignee(bids []Bid) (Bid, bool) {
	var best Bid
	found := false
	for _, bid := range bids {
		if bid.Full {
			continue
		}
		if !found || bid.Score > best.Score {
			best = bid
			found = true
		}
	}
	return best, found
}

func leastPending(bids []Bid) Bid {
	least := bids[0]
	for _, bid := range bids[1:] {
		if bid.Pending < least.Pending {
			least = bid
		}
	}
	return least
}
