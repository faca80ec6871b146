package board

import "fmt"

// Move describes a move from one square to another. The flags are
// independent and may combine, e.g. a capture that also promotes.
type Move struct {
	From, To Square

	Capture         bool
	EnPassant       bool
	CastleKingSide  bool
	CastleQueenSide bool

	// Promote marks a pawn reaching the last rank. Promotion is the target
	// type; NoPieceType on a promoting move means Queen.
	Promote   bool
	Promotion PieceType

	// Captured is the type of the piece taken by a capture.
	Captured PieceType
}

// NoMove represents an invalid or null move.
var NoMove = Move{From: NoSquare, To: NoSquare, Promotion: NoPieceType, Captured: NoPieceType}

// NewMove creates a quiet move.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to, Promotion: NoPieceType, Captured: NoPieceType}
}

// NewPromotion creates a promotion move candidate.
func NewPromotion(from, to Square, promo PieceType) Move {
	m := NewMove(from, to)
	m.Promote = true
	m.Promotion = promo
	return m
}

// IsCapture returns true if the move removes an enemy piece.
func (m Move) IsCapture() bool {
	return m.Capture || m.EnPassant
}

// IsCastling returns true if this is a castling move.
func (m Move) IsCastling() bool {
	return m.CastleKingSide || m.CastleQueenSide
}

// PromotionType returns the piece the pawn becomes, applying the queen
// default. It is NoPieceType for non-promoting moves.
func (m Move) PromotionType() PieceType {
	if !m.Promote {
		return NoPieceType
	}
	if m.Promotion == NoPieceType {
		return Queen
	}
	return m.Promotion
}

// String returns the UCI format of the move (e.g., "e2e4", "e7e8q").
func (m Move) String() string {
	if m.From == NoSquare || m.To == NoSquare {
		return "0000"
	}

	s := m.From.String() + m.To.String()
	if m.Promote {
		s += string(m.PromotionType().Char())
	}
	return s
}

// ParseMove parses a UCI format move string into a move candidate. Only the
// squares and promotion choice are set; VerifyMove supplies the flags.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return NoMove, fmt.Errorf("%w: %q", ErrIllegalMove, s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, err
	}

	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, err
	}

	if len(s) == 5 {
		var promo PieceType
		switch s[4] {
		case 'n':
			promo = Knight
		case 'b':
			promo = Bishop
		case 'r':
			promo = Rook
		case 'q':
			promo = Queen
		default:
			return NoMove, fmt.Errorf("%w: invalid promotion piece %q", ErrIllegalMove, s[4])
		}
		return NewPromotion(from, to, promo), nil
	}

	return NewMove(from, to), nil
}
