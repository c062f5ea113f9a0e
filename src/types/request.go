package types

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrFloorOutOfRange     = errors.New("floor out of range")
	ErrCapacityExceeded    = errors.New("elevator at capacity")
	ErrNoElevatorAvailable = errors.New("no elevator available")
	ErrInvalidDirection    = errors.New("invalid request direction")
)

// Request is a floor call. It is never modified after creation.
type Request struct {
	ID       uuid.UUID
	Floor    int
	Dir      Direction
	IssuedAt time.Time
}

func NewRequest(floor int, dir Direction) Request {
	return Request{
		ID:       uuid.New(),
		Floor:    floor,
		Dir:      dir,
		IssuedAt: time.Now(),
	}
}

func (r Request) String() string {
	return fmt.Sprintf("Request(%d %s)", r.Floor, r.Dir)
}
