package nrpa

// Board is the environment contract a caller must supply. M is the concrete move
// type of the game or puzzle being searched; the search engine itself only ever
// deals with the integer codes Code assigns to moves.
//
// Implementations are cheaply default-constructible: a fresh Board always starts at
// the initial state, which is how a playout begins (see NewBoard).
type Board[M any] interface {
	// Terminal is true iff there are no further legal moves.
	Terminal() bool

	// Score is only defined once Terminal is true. Larger is better.
	Score() float64

	// Length is the number of plies played so far; 0 right after construction.
	Length() int

	// LegalMoves writes up to len(out) legal moves into out and returns how many
	// were written. The count is > 0 whenever !Terminal().
	LegalMoves(out []M) int

	// Play advances the board by one ply; Length increases by 1.
	Play(m M)

	// Code returns a stable integer identifier for m at the current state. The
	// same move must yield the same code if queried again before Play is called;
	// codes need not be unique across different steps.
	Code(m M) int

	// MaxLegalMoves is an upper bound on the number of legal moves in any
	// reachable state, used to size scratch buffers.
	MaxLegalMoves() int
}

// NewBoard constructs a fresh board at its initial state. Passed explicitly
// (rather than relying on a zero value) so implementations with non-trivial setup
// still compose with the generic search.
type NewBoard[M any] func() Board[M]
