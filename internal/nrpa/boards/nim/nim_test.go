package nim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNimTerminatesWhenAllHeapsEmpty(t *testing.T) {
	b := New([]int{3, 2})()
	moves := make([]Move, b.MaxLegalMoves())
	steps := 0
	for !b.Terminal() {
		n := b.LegalMoves(moves)
		require.Greater(t, n, 0)
		b.Play(moves[0])
		steps++
		require.Less(t, steps, 100)
	}
	assert.True(t, b.Terminal())
}

func TestNimScoreRewardsOddLengthWin(t *testing.T) {
	b := New([]int{1})()
	b.Play(Move{Heap: 0, Take: 1})
	assert.True(t, b.Terminal())
	assert.Greater(t, b.Score(), 0.0)
}

func TestNimLegalMovesRespectHeapSize(t *testing.T) {
	b := New([]int{2})()
	moves := make([]Move, b.MaxLegalMoves())
	n := b.LegalMoves(moves)
	require.Equal(t, 2, n)
	for i := 0; i < n; i++ {
		assert.LessOrEqual(t, moves[i].Take, 2)
	}
}
