// Package nim implements a small multi-heap Nim puzzle used as a second,
// structurally different reference environment: unlike linewalk's single
// binary choice, the legal-move-code space here varies with the heap
// configuration and shrinks as heaps empty.
package nim

import "github.com/nrpa-go/nrpa/internal/nrpa"

// maxTake is how many objects a single move may remove from one heap.
const maxTake = 3

// Move removes Take objects (1..maxTake) from heap Heap.
type Move struct {
	Heap int
	Take int
}

// Board is one Nim playthrough over a fixed starting configuration of heaps;
// terminal once every heap is empty. Under alternating play, the side making
// the last move wins; since NRPA optimizes one sequence of moves rather than
// a two-player game, Score rewards sequences that would win the alternating
// game (an odd total number of plies) and, among those, shorter sequences.
type Board struct {
	initial []int
	heaps   []int
	plies   int
}

// New returns a NewBoard factory for Nim over the given starting heap sizes.
func New(heaps []int) nrpa.NewBoard[Move] {
	initial := append([]int(nil), heaps...)
	return func() nrpa.Board[Move] {
		return &Board{initial: initial, heaps: append([]int(nil), initial...)}
	}
}

func (b *Board) Terminal() bool {
	for _, h := range b.heaps {
		if h > 0 {
			return false
		}
	}
	return true
}

// Score rewards an odd-length (alternating-play-winning) sequence, with a
// small bonus for fewer plies so NRPA also prefers the quickest win.
func (b *Board) Score() float64 {
	if b.plies%2 == 0 {
		return 0
	}
	return 1 - float64(b.plies)*1e-6
}

func (b *Board) Length() int { return b.plies }

func (b *Board) LegalMoves(out []Move) int {
	n := 0
	for h, size := range b.heaps {
		take := maxTake
		if size < take {
			take = size
		}
		for t := 1; t <= take; t++ {
			out[n] = Move{Heap: h, Take: t}
			n++
		}
	}
	return n
}

func (b *Board) Play(m Move) {
	b.heaps[m.Heap] -= m.Take
	b.plies++
}

// Code encodes the move as heap*maxTake + (take-1), unique within one step
// since no single heap offers more than maxTake moves.
func (b *Board) Code(m Move) int {
	return m.Heap*maxTake + (m.Take - 1)
}

func (b *Board) MaxLegalMoves() int {
	return len(b.initial) * maxTake
}
