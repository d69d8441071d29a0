package nrpa

import "math"

// Adapt computes a new policy by taking one gradient step of base toward best,
// using best's recorded legal move codes at each step. alpha is the learning rate
// (1.0 in the sequential driver, scaled by the batch size at the parallel level).
//
// The gradient at every step is computed against base as it stood before this
// call: the deltas are added to a clone of base, and every logit read for the
// gradient term comes from base itself. Using a logit that this very call has already updated
// -- instead of the pre-call snapshot -- would make later steps' normalizer Z
// wrong whenever a move code repeats across steps.
func Adapt(base Policy, best Rollout, legal LegalMoveCodes, alpha float64) Policy {
	adapted := base.Clone()

	length := best.Length()
	for step := 0; step < length; step++ {
		nbMoves := legal.NbMoves(step)

		maxLogit := base.Prob(legal.Move(step, 0))
		for i := 1; i < nbMoves; i++ {
			if v := base.Prob(legal.Move(step, i)); v > maxLogit {
				maxLogit = v
			}
		}

		z := 0.0
		for i := 0; i < nbMoves; i++ {
			z += math.Exp(base.Prob(legal.Move(step, i)) - maxLogit)
		}

		played := best.Move(step)
		adapted.Update(played, alpha)

		for i := 0; i < nbMoves; i++ {
			c := legal.Move(step, i)
			p := math.Exp(base.Prob(c)-maxLogit) / z
			adapted.Update(c, -alpha*p)
		}
	}

	return adapted
}
