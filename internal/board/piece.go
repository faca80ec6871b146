package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
	NoColor Color = 2
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// pawnDirection is the rank delta of a forward pawn step.
func (c Color) pawnDirection() int {
	if c == White {
		return 1
	}
	return -1
}

// PieceType represents the type of a chess piece.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType PieceType = 6
)

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Char returns the FEN character for the piece type (lowercase).
func (pt PieceType) Char() byte {
	chars := []byte{'p', 'n', 'b', 'r', 'q', 'k', ' '}
	if pt > NoPieceType {
		return ' '
	}
	return chars[pt]
}

// PieceTypeFromChar converts a lowercase or uppercase FEN letter to a
// PieceType, returning NoPieceType for anything else.
func PieceTypeFromChar(c byte) PieceType {
	switch c | 0x20 {
	case 'p':
		return Pawn
	case 'n':
		return Knight
	case 'b':
		return Bishop
	case 'r':
		return Rook
	case 'q':
		return Queen
	case 'k':
		return King
	default:
		return NoPieceType
	}
}

// Handle is a stable index into a Position's roster. Handles are assigned
// when a position is loaded and never reused, so history entries can refer
// to captured or promoted pieces without searching for them.
type Handle int

// NoHandle marks an empty or off-board grid cell.
const NoHandle Handle = -1

// Piece is one roster entry. A captured piece stays in the roster with
// Alive cleared so undo can bring it back by handle.
type Piece struct {
	Type   PieceType
	Color  Color
	Square Square
	Alive  bool
}

// Char returns the FEN character for the piece.
// Uppercase for white, lowercase for black.
func (p Piece) Char() byte {
	c := p.Type.Char()
	if p.Color == White && c != ' ' {
		c -= 'a' - 'A'
	}
	return c
}

// String returns the FEN character for the piece.
func (p Piece) String() string {
	return string(p.Char())
}

// PieceFromChar converts a FEN character to a type and color. ok is false
// when the character is not one of pnbrqkPNBRQK.
func PieceFromChar(c byte) (pt PieceType, color Color, ok bool) {
	pt = PieceTypeFromChar(c)
	if pt == NoPieceType {
		return NoPieceType, NoColor, false
	}
	if c >= 'a' {
		return pt, Black, true
	}
	return pt, White, true
}
