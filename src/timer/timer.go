package timer

import (
	"context"
	"log/slog"
	"time"
)

type TimerAction int

const (
	Start TimerAction = iota
	Stop
)

// New returns a stopped timer, so nothing fires before the first Start.
func New() *time.Timer {
	t := time.NewTimer(time.Hour)
	t.Stop()
	return t
}

// Timer runs until ctx is done. Start (re)arms t for duration, Stop disarms it.
// Each expiry sends one value on timeout.
func Timer(ctx context.Context, t *time.Timer, duration time.Duration, timeout chan<- bool, action <-chan TimerAction) {
	for {
		select {
		case <-ctx.Done():
			t.Stop()
			return
		case a := <-action:
			switch a {
			case Start:
				resetTimer(t, duration)
			case Stop:
				t.Stop()
			}
		case <-t.C:
			select {
			case timeout <- true:
			case <-ctx.Done():
				return
			}
			slog.Debug("Timer timed out")
		}
	}
}

// Stops the timer and resets it.
func resetTimer(t *time.Timer, duration time.Duration) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	t.Reset(duration)
}
