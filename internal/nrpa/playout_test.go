package nrpa_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrpa-go/nrpa/internal/nrpa"
	"github.com/nrpa-go/nrpa/internal/nrpa/boards/linewalk"
)

func TestPlayoutRolloutIsLegalAndLengthsMatch(t *testing.T) {
	newBoard := linewalk.New(4)
	rng := rand.New(rand.NewPCG(1, 2))
	policy := nrpa.NewPolicy()

	for i := 0; i < 200; i++ {
		rollout, legal, err := nrpa.Playout(newBoard, policy, rng)
		require.NoError(t, err)

		require.Equal(t, legal.Steps(), rollout.Length())
		for s := 0; s < rollout.Length(); s++ {
			played := rollout.Move(s)
			found := false
			for j := 0; j < legal.NbMoves(s); j++ {
				if legal.Move(s, j) == played {
					found = true
					break
				}
			}
			assert.True(t, found, "move %d at step %d not among legal codes %v", played, s, legal.At(s))
		}
		assert.GreaterOrEqual(t, rollout.Score(), 0.0)
		assert.LessOrEqual(t, rollout.Score(), 4.0)
	}
}

func TestPlayoutEmpiricalMeanScore(t *testing.T) {
	newBoard := linewalk.New(4)
	rng := rand.New(rand.NewPCG(7, 0))
	policy := nrpa.NewPolicy()

	var sum float64
	const trials = 10000
	for i := 0; i < trials; i++ {
		rollout, _, err := nrpa.Playout(newBoard, policy, rng)
		require.NoError(t, err)
		sum += rollout.Score()
	}
	mean := sum / trials
	assert.InDelta(t, 2.0, mean, 0.1)
}

func TestPlayoutNonFiniteSoftmaxIsReported(t *testing.T) {
	newBoard := linewalk.New(2)
	rng := rand.New(rand.NewPCG(1, 1))
	policy := nrpa.NewPolicy()
	policy.Set(int(linewalk.StepForward), math.Inf(1))

	_, _, err := nrpa.Playout(newBoard, policy, rng)
	require.ErrorIs(t, err, nrpa.ErrNonFiniteSoftmax)
}
