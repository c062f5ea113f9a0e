package dispatcher

// Bid is one car's score for a request. Index is the car's position in the fleet.
type Bid struct {
	Index      int
	ElevatorID int
	Score      float64
	Pending    int
	Full       bool
}
