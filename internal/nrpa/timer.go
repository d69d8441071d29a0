package nrpa

import (
	"context"
	"time"
)

// startTimer spawns the background goroutine that cuts the search short. It
// sleeps through a sequence of doubling intervals (1, 2, 4, ... seconds), capped
// at timeout (if positive) and at MaxTimeEvents events, recording a stats sample
// on every wake-up if stats is non-nil, and cancels cancel on the last one.
//
// This replaces the reference implementation's condition-variable-guarded done
// flag: ctx.Done() is exactly the "cancel channel closed by the timer" substitute
// the design notes call out as equivalent.
//
// If timeout is 0, the timer only exists to record stats (at 1, 2, 4, ... second
// marks) and never cancels; if stats is also nil, no goroutine is started at all.
func startTimer(parent context.Context, timeout time.Duration, stats *StatsRecorder) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	if timeout <= 0 && stats == nil {
		return ctx, cancel
	}

	events := make([]time.Duration, 0, MaxTimeEvents)
	interval := time.Second
	for i := 0; i < MaxTimeEvents; i++ {
		if timeout > 0 && interval >= timeout {
			events = append(events, timeout)
			break
		}
		events = append(events, interval)
		interval *= 2
	}

	go func() {
		start := time.Now()
		timer := time.NewTimer(0)
		if !timer.Stop() {
			<-timer.C
		}
		defer timer.Stop()

		for i, at := range events {
			remaining := at - time.Since(start)
			if remaining > 0 {
				timer.Reset(remaining)
				select {
				case <-ctx.Done():
					return
				case <-timer.C:
				}
			}
			if stats != nil {
				stats.RecordTimerEvent(i, stats.lastKnownBestScore())
			}
			if timeout > 0 && at >= timeout {
				cancel()
				return
			}
		}
	}()

	return ctx, cancel
}

// lastKnownBestScore lets the timer goroutine annotate a timer-event sample with
// the best score known at that instant, reusing the iteration series' latest
// entry rather than requiring the driver to push timer samples itself.
func (s *StatsRecorder) lastKnownBestScore() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.iterStats) == 0 {
		return negInf
	}
	return s.iterStats[len(s.iterStats)-1].BestScore
}
