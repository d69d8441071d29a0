// Package linewalk implements LineWalk(n), the reference environment used
// throughout this module's tests: a walker on the integers 0..n that may step
// +1 or -1, terminating at depth n, scored by how many +1 steps it took.
package linewalk

import "github.com/nrpa-go/nrpa/internal/nrpa"

// Move is one of the two steps LineWalk offers.
type Move int

const (
	// StepBack is the -1 move; invalid below position 0.
	StepBack Move = 0
	// StepForward is the +1 move.
	StepForward Move = 1
)

// Board is a single LineWalk(n) playthrough: position in [0, n], terminal at
// depth n plies.
type Board struct {
	n        int
	position int
	plies    int
	forward  int
}

// New returns a NewBoard factory for LineWalk(n): n plies, terminal once
// reached, score equal to the number of StepForward moves taken.
func New(n int) nrpa.NewBoard[Move] {
	return func() nrpa.Board[Move] {
		return &Board{n: n}
	}
}

func (b *Board) Terminal() bool { return b.plies >= b.n }

func (b *Board) Score() float64 { return float64(b.forward) }

func (b *Board) Length() int { return b.plies }

func (b *Board) LegalMoves(out []Move) int {
	if b.Terminal() {
		return 0
	}
	n := 0
	if b.position > 0 {
		out[n] = StepBack
		n++
	}
	out[n] = StepForward
	n++
	return n
}

func (b *Board) Play(m Move) {
	switch m {
	case StepForward:
		b.position++
		b.forward++
	case StepBack:
		b.position--
	}
	b.plies++
}

// Code returns the move itself: LineWalk's two moves are already small,
// stable, step-independent integers.
func (b *Board) Code(m Move) int { return int(m) }

func (b *Board) MaxLegalMoves() int { return 2 }
