package board

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// CastlingRights represents the available castling options.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the FEN castling rights string.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if cr&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if cr&BlackKingSideCastle != 0 {
		s += "k"
	}
	if cr&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}

// castlingRight returns the single right for a color and wing.
func castlingRight(c Color, kingSide bool) CastlingRights {
	switch {
	case c == White && kingSide:
		return WhiteKingSideCastle
	case c == White:
		return WhiteQueenSideCastle
	case kingSide:
		return BlackKingSideCastle
	default:
		return BlackQueenSideCastle
	}
}

// CanCastle returns true if the given side still holds the right to castle
// in the given direction. It says nothing about whether castling is legal
// right now.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	return cr&castlingRight(c, kingSide) != 0
}

// without drops both rights of a color.
func (cr CastlingRights) without(c Color) CastlingRights {
	return cr &^ (castlingRight(c, true) | castlingRight(c, false))
}

// homeRank is the back rank of a color.
func homeRank(c Color) int {
	if c == White {
		return 0
	}
	return 7
}

// rookCorner returns the starting square of a color's rook on one wing.
func rookCorner(c Color, kingSide bool) Square {
	if kingSide {
		return NewSquare(7, homeRank(c))
	}
	return NewSquare(0, homeRank(c))
}

// Position is a complete chess position: the piece roster, the grid
// indexing it, the game state fields and the undo history.
//
// A Position is not safe for concurrent use. Legal move generation
// temporarily plays and takes back moves on the receiver.
type Position struct {
	grid   Grid
	roster []Piece
	kings  [2]Handle

	sideToMove     Color
	castlingRights CastlingRights
	enPassant      Square // NoSquare if none
	halfMoveClock  int
	fullMoveNumber int

	history []undoInfo

	// Legal moves per side, valid until the next move or undo.
	legal      [2][]Move
	legalValid [2]bool
}

// NewPosition creates the starting position.
func NewPosition() *Position {
	pos, err := ParseFEN(StartFEN)
	if err != nil {
		panic(err)
	}
	return pos
}

// SideToMove returns the color whose turn it is.
func (p *Position) SideToMove() Color {
	return p.sideToMove
}

// CastlingRights returns the castling rights still held by both sides.
func (p *Position) CastlingRights() CastlingRights {
	return p.castlingRights
}

// EnPassant returns the en passant target square, or NoSquare.
func (p *Position) EnPassant() Square {
	return p.enPassant
}

// HalfMoveClock returns the number of plies since the last capture or pawn move.
func (p *Position) HalfMoveClock() int {
	return p.halfMoveClock
}

// FullMoveNumber returns the full move counter, starting at 1.
func (p *Position) FullMoveNumber() int {
	return p.fullMoveNumber
}

// Pieces returns a copy of the roster, captured pieces included. Index i of
// the result is the piece with Handle i.
func (p *Position) Pieces() []Piece {
	return slices.Clone(p.roster)
}

// PieceAt returns the piece standing on sq. ok is false for an empty or
// off-board square.
func (p *Position) PieceAt(sq Square) (Piece, bool) {
	return p.grid.Occupant(sq, p.roster)
}

// KingSquare returns the square of the given side's king.
func (p *Position) KingSquare(c Color) Square {
	h := p.kings[c]
	if h == NoHandle {
		return NoSquare
	}
	return p.roster[h].Square
}

// Plies returns the number of moves that can be undone.
func (p *Position) Plies() int {
	n := 0
	for _, e := range p.history {
		if e.hasMove {
			n++
		}
	}
	return n
}

// String returns a visual representation of the position.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteString("\n")
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d  ", rank+1)
		for file := 0; file < 8; file++ {
			if pc, ok := p.PieceAt(NewSquare(file, rank)); ok {
				sb.WriteString(pc.String() + " ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n   a b c d e f g h\n\n")
	fmt.Fprintf(&sb, "Side to move: %s\n", p.sideToMove)
	fmt.Fprintf(&sb, "Castling: %s\n", p.castlingRights)
	fmt.Fprintf(&sb, "En passant: %s\n", p.enPassant)
	fmt.Fprintf(&sb, "Half-move clock: %d\n", p.halfMoveClock)
	fmt.Fprintf(&sb, "Full move: %d\n", p.fullMoveNumber)
	fmt.Fprintf(&sb, "FEN: %s\n", p.ToFEN())
	return sb.String()
}

// Validate checks that the grid and roster agree: every living piece sits
// in the cell that names it, every occupied cell points at a living piece
// on that square, and each side has its cached king.
func (p *Position) Validate() error {
	for i, pc := range p.roster {
		if !pc.Alive {
			continue
		}
		if got := p.grid.Get(pc.Square); got != Handle(i) {
			return fmt.Errorf("%w: %s %s on %s not indexed by grid (cell holds %d)",
				ErrInternalInconsistency, pc.Color, pc.Type, pc.Square, got)
		}
	}

	for sq := A1; sq <= H8; sq++ {
		h := p.grid.Get(sq)
		if h == NoHandle {
			continue
		}
		if int(h) >= len(p.roster) {
			return fmt.Errorf("%w: grid cell %s holds unknown handle %d", ErrInternalInconsistency, sq, h)
		}
		pc := p.roster[h]
		if !pc.Alive || pc.Square != sq {
			return fmt.Errorf("%w: grid cell %s holds stale piece %s", ErrInternalInconsistency, sq, pc)
		}
	}

	for _, c := range []Color{White, Black} {
		h := p.kings[c]
		if h == NoHandle || p.roster[h].Type != King || p.roster[h].Color != c || !p.roster[h].Alive {
			return fmt.Errorf("%w: %s king handle is stale", ErrInternalInconsistency, c)
		}
	}
	return nil
}

// invalidateLegal drops both sides' cached legal moves.
func (p *Position) invalidateLegal() {
	p.legal = [2][]Move{}
	p.legalValid = [2]bool{}
}
