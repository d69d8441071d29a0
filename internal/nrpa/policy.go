package nrpa

import (
	"fmt"

	"github.com/nrpa-go/nrpa/internal/generics"
)

// Policy is a sparse mapping from move code to a real-valued logit. Codes never
// queried default to a logit of 0. The policy is used only through the softmax
// distribution computed at each playout step (see Playout); the values stored here
// are logits, not the probabilities themselves.
type Policy struct {
	logits map[int]float64
}

// NewPolicy returns an empty policy, equivalent to every code having logit 0.
func NewPolicy() Policy {
	return Policy{logits: make(map[int]float64)}
}

// Prob returns the stored logit for code, or 0 if code has never been set or
// updated. Total: never fails.
func (p Policy) Prob(code int) float64 {
	if p.logits == nil {
		return 0
	}
	return p.logits[code]
}

// Set overwrites the logit for code.
func (p Policy) Set(code int, v float64) {
	p.logits[code] = v
}

// Update adds delta to the current logit of code (treating an absent code as 0)
// and returns the new value.
func (p Policy) Update(code int, delta float64) float64 {
	v := p.logits[code] + delta
	p.logits[code] = v
	return v
}

// Clone returns a deep copy: mutating the clone never affects the receiver. Needed
// wherever snapshot semantics matter -- policy adaptation and handing a read-only
// policy to a batch of parallel workers.
func (p Policy) Clone() Policy {
	cloned := make(map[int]float64, len(p.logits))
	for k, v := range p.logits {
		cloned[k] = v
	}
	return Policy{logits: cloned}
}

// Print returns a deterministic, sorted-by-code listing of the policy, useful for
// debugging.
func (p Policy) Print() string {
	s := "Policy:\n"
	for code, logit := range generics.SortedKeysAndValues(p.logits) {
		s += fmt.Sprintf("\tcode: %d logit: %f\n", code, logit)
	}
	return s + "End of Policy\n"
}

// Len reports how many codes have an explicit (non-default) logit.
func (p Policy) Len() int {
	return len(p.logits)
}
