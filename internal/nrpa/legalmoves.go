package nrpa

// LegalMoveCodes is a ragged, per-step record of every legal move code the board
// offered at that step of a rollout. It is required by PolicyAdapter to compute
// the softmax normalizer at each step.
type LegalMoveCodes struct {
	steps [][]int
}

// SetNbSteps grows (or truncates) the number of recorded steps to k.
func (l *LegalMoveCodes) SetNbSteps(k int) {
	if cap(l.steps) >= k {
		l.steps = l.steps[:k]
		return
	}
	grown := make([][]int, k)
	copy(grown, l.steps)
	l.steps = grown
}

// SetNbMoves reserves room for n legal-move codes at step.
func (l *LegalMoveCodes) SetNbMoves(step, n int) {
	if cap(l.steps[step]) >= n {
		l.steps[step] = l.steps[step][:n]
		return
	}
	l.steps[step] = make([]int, n)
}

// SetMove records the code of the i-th legal move offered at step.
func (l *LegalMoveCodes) SetMove(step, i, code int) {
	l.steps[step][i] = code
}

// Move returns the code of the i-th legal move offered at step.
func (l *LegalMoveCodes) Move(step, i int) int {
	return l.steps[step][i]
}

// NbMoves is how many legal moves were offered at step.
func (l *LegalMoveCodes) NbMoves(step int) int {
	return len(l.steps[step])
}

// Steps is how many steps have been recorded.
func (l *LegalMoveCodes) Steps() int {
	return len(l.steps)
}

// At returns the full slice of legal-move codes for step, in the order the board
// returned them.
func (l *LegalMoveCodes) At(step int) []int {
	return l.steps[step]
}

// Clone returns a deep copy.
func (l LegalMoveCodes) Clone() LegalMoveCodes {
	steps := make([][]int, len(l.steps))
	for i, s := range l.steps {
		steps[i] = append([]int(nil), s...)
	}
	return LegalMoveCodes{steps: steps}
}
