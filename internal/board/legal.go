package board

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// LegalMoves returns the legal moves of the side to move.
func (p *Position) LegalMoves() []Move {
	return p.LegalMovesFor(p.sideToMove)
}

// LegalMovesFor returns the legal moves of the given side. The result is
// cached per side until the next MakeMove or Undo; callers get a copy.
func (p *Position) LegalMovesFor(side Color) []Move {
	if !p.legalValid[side] {
		p.legal[side] = p.generateLegal(side)
		p.legalValid[side] = true
	}
	return slices.Clone(p.legal[side])
}

// generateLegal filters pseudo-legal moves by playing each one and checking
// whether the mover's king is attacked afterwards.
func (p *Position) generateLegal(side Color) []Move {
	them := side.Other()
	pseudo := p.PseudoLegalMoves(side)
	enemy := p.ProtectedSquares(them)

	legal := p.castlingMoves(side, enemy)
	for _, m := range pseudo {
		if err := p.apply(m); err != nil {
			panic(err)
		}
		// The captured piece is dead and contributes nothing here.
		attacked := p.ProtectedSquares(them).IsSet(p.KingSquare(side))
		if err := p.revert(); err != nil {
			panic(err)
		}
		if !attacked {
			legal = append(legal, m)
		}
	}
	return legal
}

// castlingMoves returns the castling moves the side may play now. The
// squares between king and rook must be empty; the king's square, the
// square it crosses and its destination must not be attacked. On the queen
// side the b-file square only has to be empty.
func (p *Position) castlingMoves(side Color, enemy Bitboard) []Move {
	var moves []Move
	king := p.KingSquare(side)
	if king != NewSquare(4, homeRank(side)) {
		return nil
	}

	for _, kingSide := range []bool{true, false} {
		if !p.castlingRights.CanCastle(side, kingSide) {
			continue
		}
		if rook, ok := p.PieceAt(rookCorner(side, kingSide)); !ok || rook.Type != Rook || rook.Color != side {
			continue
		}

		var empty, safe []Square
		if kingSide {
			empty = []Square{king.Offset(1, 0), king.Offset(2, 0)}
			safe = []Square{king, king.Offset(1, 0), king.Offset(2, 0)}
		} else {
			empty = []Square{king.Offset(-1, 0), king.Offset(-2, 0), king.Offset(-3, 0)}
			safe = []Square{king, king.Offset(-1, 0), king.Offset(-2, 0)}
		}

		if slices.ContainsFunc(empty, func(sq Square) bool { return p.grid.Get(sq) != NoHandle }) {
			continue
		}
		if slices.ContainsFunc(safe, enemy.IsSet) {
			continue
		}

		m := NewMove(king, safe[2])
		m.CastleKingSide = kingSide
		m.CastleQueenSide = !kingSide
		moves = append(moves, m)
	}
	return moves
}

// InCheck returns true if the side's king is attacked. A king never gives
// check, so kings standing next to each other (only possible in a loaded
// position) do not count.
func (p *Position) InCheck(side Color) bool {
	return p.protectedBy(side.Other(), false).IsSet(p.KingSquare(side))
}

// IsCheckmate returns true if the side has no legal move and its king is
// attacked.
func (p *Position) IsCheckmate(side Color) bool {
	return len(p.LegalMovesFor(side)) == 0 && p.InCheck(side)
}

// IsStalemate returns true if the side has no legal move and its king is
// not attacked.
func (p *Position) IsStalemate(side Color) bool {
	return len(p.LegalMovesFor(side)) == 0 && !p.InCheck(side)
}

// VerifyMove looks a candidate up in the legal moves of the piece on its
// origin square and returns the stored move with its flags filled in. Only
// From, To and, for promotions, the promotion choice of the candidate are
// compared; an unset promotion choice means queen, and a promotion choice
// on a non-promoting move does not match.
func (p *Position) VerifyMove(candidate Move) (Move, error) {
	pc, ok := p.PieceAt(candidate.From)
	if !ok {
		return NoMove, fmt.Errorf("%w: no piece on %s", ErrIllegalMove, candidate.From)
	}

	want := Queen
	if candidate.Promote && candidate.Promotion != NoPieceType {
		want = candidate.Promotion
	}

	moves := p.LegalMovesFor(pc.Color)
	i := slices.IndexFunc(moves, func(m Move) bool {
		if m.From != candidate.From || m.To != candidate.To {
			return false
		}
		if m.Promote {
			return m.Promotion == want
		}
		return !candidate.Promote
	})
	if i < 0 {
		return NoMove, fmt.Errorf("%w: %s", ErrIllegalMove, candidate)
	}
	return moves[i], nil
}

// Play verifies a candidate for the side to move and makes it.
func (p *Position) Play(candidate Move) (Move, error) {
	if pc, ok := p.PieceAt(candidate.From); ok && pc.Color != p.sideToMove {
		return NoMove, fmt.Errorf("%w: %s moves a %s piece, %s to move",
			ErrIllegalMove, candidate, pc.Color, p.sideToMove)
	}

	m, err := p.VerifyMove(candidate)
	if err != nil {
		return NoMove, err
	}
	if err := p.MakeMove(m); err != nil {
		return NoMove, err
	}
	return m, nil
}
