package nrpa_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrpa-go/nrpa/internal/nrpa"
	"github.com/nrpa-go/nrpa/internal/nrpa/boards/linewalk"
)

// TestDriverLevel1FindsOptimum is scenario 2.
func TestDriverLevel1FindsOptimum(t *testing.T) {
	cfg := nrpa.DefaultConfig()
	cfg.NumLevel = 1
	cfg.NumIter = 50

	driver, err := nrpa.NewDriver(linewalk.New(4), cfg)
	require.NoError(t, err)
	driver.SetSeed(1)

	rollout, _, score := driver.Search(context.Background())
	assert.Equal(t, 4.0, score)
	assert.Equal(t, 4, rollout.Length())
}

// TestDriverLevel2HighSuccessRate is scenario 3.
func TestDriverLevel2HighSuccessRate(t *testing.T) {
	cfg := nrpa.DefaultConfig()
	cfg.NumLevel = 2
	cfg.NumIter = 30

	hits := 0
	const trials = 30
	for seed := uint64(1); seed <= trials; seed++ {
		driver, err := nrpa.NewDriver(linewalk.New(6), cfg)
		require.NoError(t, err)
		driver.SetSeed(seed)
		_, _, score := driver.Search(context.Background())
		if score == 6.0 {
			hits++
		}
	}
	assert.GreaterOrEqual(t, hits, int(0.95*trials))
}

// TestDriverSequentialIsDeterministic is property 7.
func TestDriverSequentialIsDeterministic(t *testing.T) {
	cfg := nrpa.DefaultConfig()
	cfg.NumLevel = 2
	cfg.NumIter = 10

	run := func() ([]int, float64) {
		driver, err := nrpa.NewDriver(linewalk.New(5), cfg)
		require.NoError(t, err)
		driver.SetSeed(42)
		rollout, _, score := driver.Search(context.Background())
		moves := make([]int, rollout.Length())
		for i := range moves {
			moves[i] = rollout.Move(i)
		}
		return moves, score
	}

	moves1, score1 := run()
	moves2, score2 := run()
	assert.Equal(t, moves1, moves2)
	assert.Equal(t, score1, score2)
}

// TestDriverTimeoutReturnsValidResult is scenario 6.
func TestDriverTimeoutReturnsValidResult(t *testing.T) {
	cfg := nrpa.DefaultConfig()
	cfg.NumLevel = 3
	cfg.NumIter = 1000
	cfg.Timeout = time.Second

	driver, err := nrpa.NewDriver(linewalk.New(50), cfg)
	require.NoError(t, err)

	start := time.Now()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rollout, legal, score := driver.Search(ctx)
	elapsed := time.Since(start)

	assert.GreaterOrEqual(t, elapsed, time.Second)
	assert.Less(t, elapsed, 1200*time.Millisecond)
	require.Equal(t, legal.Steps(), rollout.Length())
	assert.GreaterOrEqual(t, score, 0.0)
}

// TestDriverParallelSearchLengthsMatch runs a search with a 4-worker pool at
// level 1 and checks that the returned rollout's length matches its recorded
// legal-move steps (the pool's capacity itself is checked in workerpool).
func TestDriverParallelSearchLengthsMatch(t *testing.T) {
	cfg := nrpa.DefaultConfig()
	cfg.NumLevel = 2
	cfg.NumIter = 8
	cfg.NumThread = 4
	cfg.ParallelLevel = 1

	driver, err := nrpa.NewDriver(linewalk.New(4), cfg)
	require.NoError(t, err)
	driver.SetSeed(3)

	rollout, legal, _ := driver.Search(context.Background())
	assert.Equal(t, legal.Steps(), rollout.Length())
}

func TestConfigValidateRejectsBadParallelLevel(t *testing.T) {
	cfg := nrpa.DefaultConfig()
	cfg.NumLevel = 2
	cfg.NumThread = 4
	cfg.ParallelLevel = 0
	err := cfg.Validate()
	require.Error(t, err)
	var cfgErr *nrpa.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}
