// Package board implements the chess rules engine: board model, move
// generation, legality filtering, make/undo and FEN encoding.
package board

import "fmt"

// Square identifies one of the 64 board squares, a1=0 through h8=63, rank
// by rank. NoSquare marks the absence of a square.
type Square uint8

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = 64
)

// File returns the file index, 0 for a through 7 for h.
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank returns the rank index, 0 for the first rank.
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// String returns the algebraic label for the square (e.g., "e4"), or "-"
// for NoSquare.
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '1'+sq.Rank())
}

// NewSquare returns the square at file and rank, or NoSquare when either is
// off the board.
func NewSquare(file, rank int) Square {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare
	}
	return Square(rank*8 + file)
}

// ParseSquare parses a label such as "e4".
// Anything outside [a-h][1-8] is rejected with ErrInvalidSquare.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}

	file := int(s[0]) - 'a'
	rank := int(s[1]) - '1'

	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}

	return NewSquare(file, rank), nil
}

// IsValid reports whether sq is on the board.
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// Offset returns the square reached by moving df files and dr ranks,
// or NoSquare when that leaves the board.
func (sq Square) Offset(df, dr int) Square {
	if !sq.IsValid() {
		return NoSquare
	}
	return NewSquare(sq.File()+df, sq.Rank()+dr)
}

// RelativeRank returns the rank from a given color's perspective.
// For White, rank 0 is the 1st rank; for Black, rank 0 is the 8th rank.
func (sq Square) RelativeRank(c Color) int {
	if c == White {
		return sq.Rank()
	}
	return 7 - sq.Rank()
}
