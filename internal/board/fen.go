package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a six-field FEN string and returns a Position. All errors
// wrap ErrMalformedEncoding (or ErrInvalidSquare for the en passant field).
func ParseFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return nil, fmt.Errorf("%w: need 6 fields, got %d", ErrMalformedEncoding, len(parts))
	}

	pos := &Position{
		enPassant: NoSquare,
		kings:     [2]Handle{NoHandle, NoHandle},
	}

	// Piece placement (field 0)
	if err := parsePiecePlacement(pos, parts[0]); err != nil {
		return nil, err
	}

	// Side to move (field 1)
	switch parts[1] {
	case "w":
		pos.sideToMove = White
	case "b":
		pos.sideToMove = Black
	default:
		return nil, fmt.Errorf("%w: invalid side to move %q", ErrMalformedEncoding, parts[1])
	}

	// Castling rights (field 2)
	cr, err := parseCastlingRights(parts[2])
	if err != nil {
		return nil, err
	}
	pos.castlingRights = cr

	// En passant square (field 3)
	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return nil, fmt.Errorf("%w: en passant field: %w", ErrMalformedEncoding, err)
		}
		pos.enPassant = sq
	}

	// Half-move clock (field 4)
	hmc, err := parseCounter(parts[4])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid half-move clock %q", ErrMalformedEncoding, parts[4])
	}
	pos.halfMoveClock = hmc

	// Full-move number (field 5)
	fmn, err := parseCounter(parts[5])
	if err != nil || fmn < 1 {
		return nil, fmt.Errorf("%w: invalid full-move number %q", ErrMalformedEncoding, parts[5])
	}
	pos.fullMoveNumber = fmn

	pos.grid.Load(pos.roster)
	pos.history = append(pos.history, pos.snapshot())

	return pos, nil
}

// SetFEN replaces the position with the one encoded by fen. On error the
// receiver is left untouched.
func (p *Position) SetFEN(fen string) error {
	pos, err := ParseFEN(fen)
	if err != nil {
		return err
	}
	*p = *pos
	return nil
}

// parsePiecePlacement builds the roster from the piece placement field.
// Handles follow FEN order, rank 8 first.
func parsePiecePlacement(pos *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: need 8 ranks, got %d", ErrMalformedEncoding, len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 7 - i // FEN starts from rank 8
		file := 0

		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if file > 7 {
				return fmt.Errorf("%w: too many squares in rank %d", ErrMalformedEncoding, rank+1)
			}

			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}

			pt, color, ok := PieceFromChar(c)
			if !ok {
				return fmt.Errorf("%w: invalid piece character %q", ErrMalformedEncoding, c)
			}
			if pt == King {
				if pos.kings[color] != NoHandle {
					return fmt.Errorf("%w: %s has more than one king", ErrMalformedEncoding, color)
				}
				pos.kings[color] = Handle(len(pos.roster))
			}
			pos.roster = append(pos.roster, Piece{Type: pt, Color: color, Square: NewSquare(file, rank), Alive: true})
			file++
		}

		if file != 8 {
			return fmt.Errorf("%w: rank %d has %d squares", ErrMalformedEncoding, rank+1, file)
		}
	}

	for _, c := range []Color{White, Black} {
		if pos.kings[c] == NoHandle {
			return fmt.Errorf("%w: %s has no king", ErrMalformedEncoding, c)
		}
	}
	return nil
}

// parseCounter parses an unsigned decimal move counter. Signs are rejected
// so that the field serializes back to the same text.
func parseCounter(s string) (int, error) {
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(s)
}

// parseCastlingRights parses the castling rights field of a FEN string.
func parseCastlingRights(castling string) (CastlingRights, error) {
	if castling == "-" {
		return NoCastling, nil
	}

	var cr CastlingRights
	for i := 0; i < len(castling); i++ {
		switch castling[i] {
		case 'K':
			cr |= WhiteKingSideCastle
		case 'Q':
			cr |= WhiteQueenSideCastle
		case 'k':
			cr |= BlackKingSideCastle
		case 'q':
			cr |= BlackQueenSideCastle
		default:
			return NoCastling, fmt.Errorf("%w: invalid castling character %q", ErrMalformedEncoding, castling[i])
		}
	}
	return cr, nil
}

// ToFEN returns the FEN representation of the position.
func (p *Position) ToFEN() string {
	var sb strings.Builder

	sb.WriteString(p.grid.Serialize(p.roster))

	sb.WriteByte(' ')
	if p.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(p.castlingRights.String())

	sb.WriteByte(' ')
	sb.WriteString(p.enPassant.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullMoveNumber))

	return sb.String()
}
