package nrpa

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectBatchWinnerTiesPickLowestIndex(t *testing.T) {
	results := []childResult{
		{score: 7},
		{score: 7},
		{score: 2},
	}
	assert.Equal(t, 0, selectBatchWinner(results))
}

func TestSelectBatchWinnerPicksHighestScore(t *testing.T) {
	results := []childResult{
		{score: 1},
		{score: 9},
		{score: 4},
	}
	assert.Equal(t, 1, selectBatchWinner(results))
}

// onePathMove is the only move onePathBoard ever offers, so every playout --
// regardless of policy or random stream -- takes the identical path. This
// makes every sub-search in a batch produce an identical rollout, the
// precondition scenario 5 of the testable properties calls for.
type onePathMove struct{}

type onePathBoard struct {
	n     int
	plies int
}

func newOnePathBoard(n int) NewBoard[onePathMove] {
	return func() Board[onePathMove] {
		return &onePathBoard{n: n}
	}
}

func (b *onePathBoard) Terminal() bool      { return b.plies >= b.n }
func (b *onePathBoard) Score() float64      { return float64(b.n) }
func (b *onePathBoard) Length() int         { return b.plies }
func (b *onePathBoard) Play(onePathMove)    { b.plies++ }
func (b *onePathBoard) Code(onePathMove) int { return 0 }
func (b *onePathBoard) MaxLegalMoves() int  { return 1 }
func (b *onePathBoard) LegalMoves(out []onePathMove) int {
	if b.Terminal() {
		return 0
	}
	out[0] = onePathMove{}
	return 1
}

// TestParallelBatchAdaptationMatchesFourIdenticalSequentialSteps is scenario 5
// of the testable properties: a batch of T=4 identical sub-searches, followed
// by one adaptation at alpha=T, must match the policy obtained by combining
// four independent alpha=1 adaptations each computed against the same
// pre-batch base policy -- true whenever (as here, forced by onePathBoard)
// every worker in the batch produces the same best rollout.
func TestParallelBatchAdaptationMatchesFourIdenticalSequentialSteps(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumLevel = 2
	cfg.NumIter = 4
	cfg.NumThread = 4
	cfg.ParallelLevel = 1

	driver, err := NewDriver(newOnePathBoard(5), cfg)
	require.NoError(t, err)
	driver.SetSeed(1)

	_, _, _ = driver.Search(context.Background())

	nl := &driver.levels[1]
	require.Equal(t, 5, nl.bestRollout.Length())

	base := NewPolicy()
	individual := Adapt(base, nl.bestRollout, nl.bestLegal, 1.0)

	// onePathBoard only ever offers code 0, so it is the only logit either
	// adaptation could have touched.
	want := 4 * individual.Prob(0)
	assert.InDelta(t, want, nl.policy.Prob(0), 1e-12)
}

// sanity check that the single worker stream used by the deterministic board
// above really is independent of the RNG -- the test above would otherwise be
// silently vacuous.
func TestOnePathBoardIgnoresRNG(t *testing.T) {
	board := newOnePathBoard(3)
	rng1 := rand.New(rand.NewPCG(1, 1))
	rng2 := rand.New(rand.NewPCG(99, 99))
	r1, _, err := Playout(board, NewPolicy(), rng1)
	require.NoError(t, err)
	r2, _, err := Playout(board, NewPolicy(), rng2)
	require.NoError(t, err)
	assert.Equal(t, r1.Score(), r2.Score())
	assert.Equal(t, r1.Length(), r2.Length())
}
