package nrpa

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
)

// ErrNonFiniteSoftmax is returned by Playout if a policy's logits make the softmax
// denominator non-finite even after per-step recentering -- a pathological policy,
// not an expected occurrence during normal adaptation.
var ErrNonFiniteSoftmax = errors.New("nrpa: softmax denominator is not finite")

// Playout runs a single randomized simulation under policy, starting from a fresh
// board produced by newBoard, and returns the resulting Rollout and the
// LegalMoveCodes recorded at every step.
//
// At each non-terminal step the board's legal moves are weighted by
// exp(policy.Prob(code) - max), the per-step max being subtracted before
// exponentiating to keep every intermediate value finite; this does not change the
// resulting distribution, since it is a common, not a per-term, rescaling.
func Playout[M any](newBoard NewBoard[M], policy Policy, rng *rand.Rand) (Rollout, LegalMoveCodes, error) {
	board := newBoard()

	var rollout Rollout
	var legal LegalMoveCodes

	moves := make([]M, board.MaxLegalMoves())
	weights := make([]float64, board.MaxLegalMoves())

	for !board.Terminal() {
		step := board.Length()

		nbMoves := board.LegalMoves(moves)
		if nbMoves <= 0 {
			panic("nrpa: board contract violation, LegalMoves returned 0 on a non-terminal board")
		}

		legal.SetNbSteps(step + 1)
		legal.SetNbMoves(step, nbMoves)

		maxLogit := math.Inf(-1)
		codes := make([]int, nbMoves)
		for i := 0; i < nbMoves; i++ {
			c := board.Code(moves[i])
			codes[i] = c
			legal.SetMove(step, i, c)
			if logit := policy.Prob(c); logit > maxLogit {
				maxLogit = logit
			}
		}

		sum := 0.0
		for i := 0; i < nbMoves; i++ {
			w := math.Exp(policy.Prob(codes[i]) - maxLogit)
			weights[i] = w
			sum += w
		}
		if math.IsNaN(sum) || math.IsInf(sum, 0) || sum <= 0 {
			return Rollout{}, LegalMoveCodes{}, ErrNonFiniteSoftmax
		}

		r := rng.Float64() * sum
		j := 0
		s := weights[0]
		for s < r && j < nbMoves-1 {
			j++
			s += weights[j]
		}

		rollout.AddMove(codes[j])
		board.Play(moves[j])
	}

	rollout.SetScore(board.Score())
	return rollout, legal, nil
}
