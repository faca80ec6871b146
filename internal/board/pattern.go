package board

// pattern is one movement direction of a piece.
type pattern struct {
	file, rank int
	repeat     int   // 0 means slide until blocked
	color      Color // NoColor applies to both sides
}

func (pat pattern) appliesTo(c Color) bool {
	return pat.color == NoColor || pat.color == c
}

// limit is the number of steps the pattern may take.
func (pat pattern) limit() int {
	if pat.repeat == 0 {
		return 7
	}
	return pat.repeat
}

var (
	diagonalPatterns = []pattern{
		{-1, -1, 0, NoColor}, {-1, 1, 0, NoColor}, {1, -1, 0, NoColor}, {1, 1, 0, NoColor},
	}
	straightPatterns = []pattern{
		{1, 0, 0, NoColor}, {-1, 0, 0, NoColor}, {0, 1, 0, NoColor}, {0, -1, 0, NoColor},
	}
	knightPatterns = []pattern{
		{-1, 2, 1, NoColor}, {-1, -2, 1, NoColor}, {1, -2, 1, NoColor}, {1, 2, 1, NoColor},
		{2, -1, 1, NoColor}, {-2, -1, 1, NoColor}, {2, 1, 1, NoColor}, {-2, 1, 1, NoColor},
	}
	kingPatterns = []pattern{
		{0, -1, 1, NoColor}, {0, 1, 1, NoColor}, {-1, 0, 1, NoColor}, {1, 0, 1, NoColor},
		{-1, -1, 1, NoColor}, {-1, 1, 1, NoColor}, {1, -1, 1, NoColor}, {1, 1, 1, NoColor},
	}
	queenPatterns = append(append([]pattern{}, diagonalPatterns...), straightPatterns...)

	pawnPushPatterns = []pattern{
		{0, 1, 1, White}, {0, -1, 1, Black},
	}
	pawnCapturePatterns = []pattern{
		{-1, 1, 1, White}, {1, 1, 1, White}, {-1, -1, 1, Black}, {1, -1, 1, Black},
	}
)

// movePatterns returns the patterns a piece type moves along. For every
// type except the pawn these are also its capture patterns.
func movePatterns(pt PieceType) []pattern {
	switch pt {
	case Pawn:
		return pawnPushPatterns
	case Knight:
		return knightPatterns
	case Bishop:
		return diagonalPatterns
	case Rook:
		return straightPatterns
	case Queen:
		return queenPatterns
	case King:
		return kingPatterns
	default:
		return nil
	}
}

// capturePatterns returns the patterns a piece type captures and defends
// along.
func capturePatterns(pt PieceType) []pattern {
	if pt == Pawn {
		return pawnCapturePatterns
	}
	return movePatterns(pt)
}

// promotionTypes lists the pieces a pawn may become, in generation order.
var promotionTypes = [4]PieceType{Queen, Rook, Knight, Bishop}
