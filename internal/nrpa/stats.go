package nrpa

import (
	"math"
	"sync"
	"time"
)

// negInf is the "no iteration has finished yet" sentinel used by
// lastKnownBestScore before the first RecordIter call.
var negInf = math.Inf(-1)

// Sample is one point of the iteration or timer-event stats series: how far into
// the search we are, and the best score known at that point.
type Sample struct {
	Index     int
	Date      time.Duration
	BestScore float64
}

// StatsRecorder accumulates the iteration series (one sample per top-level
// iteration) and the timer series (one sample per timer event, see C9) of a
// Driver's searches; with num_run > 1, every run's samples are appended to the
// same series. Only the coordinator goroutine and the timer goroutine
// ever write to it, each into its own series, but they may do so concurrently, so
// writes are guarded by a mutex.
type StatsRecorder struct {
	mu        sync.Mutex
	start     time.Time
	iterStats []Sample
	timeStats []Sample
}

// NewStatsRecorder returns a recorder whose clock starts now.
func NewStatsRecorder() *StatsRecorder {
	return &StatsRecorder{start: time.Now()}
}

// RecordIter appends a sample to the iteration series.
func (s *StatsRecorder) RecordIter(iter int, bestScore float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.iterStats = append(s.iterStats, Sample{
		Index:     iter,
		Date:      time.Since(s.start),
		BestScore: bestScore,
	})
}

// RecordTimerEvent appends a sample to the timer series.
func (s *StatsRecorder) RecordTimerEvent(eventIdx int, bestScore float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timeStats = append(s.timeStats, Sample{
		Index:     eventIdx,
		Date:      time.Since(s.start),
		BestScore: bestScore,
	})
}

// IterSamples returns a copy of the iteration series recorded so far.
func (s *StatsRecorder) IterSamples() []Sample {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Sample(nil), s.iterStats...)
}

// TimerSamples returns a copy of the timer series recorded so far.
func (s *StatsRecorder) TimerSamples() []Sample {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Sample(nil), s.timeStats...)
}
