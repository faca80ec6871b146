package board

import (
	"fmt"
	"log"
)

// undoInfo is one history entry: the state before a move plus the handles
// the move touched. The entry pushed by a load carries no move.
type undoInfo struct {
	sideToMove     Color
	castlingRights CastlingRights
	enPassant      Square
	halfMoveClock  int
	fullMoveNumber int

	move    Move
	hasMove bool
	mover   Handle
	victim  Handle
	rook    Handle
}

// snapshot captures the current state fields.
func (p *Position) snapshot() undoInfo {
	return undoInfo{
		sideToMove:     p.sideToMove,
		castlingRights: p.castlingRights,
		enPassant:      p.enPassant,
		halfMoveClock:  p.halfMoveClock,
		fullMoveNumber: p.fullMoveNumber,
		mover:          NoHandle,
		victim:         NoHandle,
		rook:           NoHandle,
	}
}

// castlingRookSquares returns the rook's corner and the square it lands on
// for a castling move played on the given rank.
func castlingRookSquares(m Move) (corner, crossed Square) {
	rank := m.From.Rank()
	if m.CastleKingSide {
		return NewSquare(7, rank), NewSquare(5, rank)
	}
	return NewSquare(0, rank), NewSquare(3, rank)
}

// MakeMove plays m, which should come from LegalMoves or VerifyMove.
// It fails with ErrInternalInconsistency when the move does not fit the
// board (no piece on the origin, missing victim or rook); nothing is
// mutated in that case.
func (p *Position) MakeMove(m Move) error {
	if err := p.apply(m); err != nil {
		return err
	}
	p.invalidateLegal()

	if DebugMoveValidation {
		if err := p.Validate(); err != nil {
			log.Printf("MAKEMOVE: %s left position inconsistent: %v", m, err)
		}
	}
	return nil
}

// Undo takes back the last move. Popping the entry written by the load
// restores the loaded state and reports no error; undoing past it fails
// with ErrInternalInconsistency.
func (p *Position) Undo() error {
	if err := p.revert(); err != nil {
		return err
	}
	p.invalidateLegal()
	return nil
}

// apply is the single move application path, used both for real moves and
// for the trial moves of the legality filter.
func (p *Position) apply(m Move) error {
	entry := p.snapshot()
	entry.move = m
	entry.hasMove = true

	entry.mover = p.grid.Get(m.From)
	if entry.mover == NoHandle {
		return fmt.Errorf("%w: no piece on %s for move %s", ErrInternalInconsistency, m.From, m)
	}
	mover := p.roster[entry.mover]

	if m.Promote && m.Promotion == NoPieceType {
		m.Promotion = Queen
		entry.move = m
	}

	victimSq := NoSquare
	if m.IsCapture() {
		victimSq = m.To
		if m.EnPassant {
			victimSq = m.To.Offset(0, -mover.Color.pawnDirection())
		}
		entry.victim = p.grid.Get(victimSq)
		if entry.victim == NoHandle {
			return fmt.Errorf("%w: no victim on %s for move %s", ErrInternalInconsistency, victimSq, m)
		}
	}

	var corner, crossed Square
	if m.IsCastling() {
		corner, crossed = castlingRookSquares(m)
		entry.rook = p.grid.Get(corner)
		if entry.rook == NoHandle {
			return fmt.Errorf("%w: no rook on %s for move %s", ErrInternalInconsistency, corner, m)
		}
	}

	p.history = append(p.history, entry)

	if mover.Type == Pawn || m.IsCapture() {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}

	if entry.victim != NoHandle {
		victim := &p.roster[entry.victim]
		victim.Alive = false
		p.grid.Set(victimSq, NoHandle)

		if victim.Type == Rook {
			for _, kingSide := range []bool{true, false} {
				if victim.Square == rookCorner(victim.Color, kingSide) {
					p.castlingRights &^= castlingRight(victim.Color, kingSide)
				}
			}
		}
	}

	if entry.rook != NoHandle {
		p.grid.Set(corner, NoHandle)
		p.roster[entry.rook].Square = crossed
		p.grid.Set(crossed, entry.rook)
		p.castlingRights = p.castlingRights.without(mover.Color)
	}

	if mover.Type == King {
		p.castlingRights = p.castlingRights.without(mover.Color)
	} else {
		for _, kingSide := range []bool{true, false} {
			if m.From == rookCorner(mover.Color, kingSide) {
				p.castlingRights &^= castlingRight(mover.Color, kingSide)
			}
		}
	}

	moved := &p.roster[entry.mover]
	moved.Square = m.To
	if m.Promote {
		*moved = Piece{Type: m.Promotion, Color: mover.Color, Square: m.To, Alive: true}
	}

	p.grid.Set(m.From, NoHandle)
	p.grid.Set(m.To, entry.mover)

	p.enPassant = NoSquare
	if mover.Type == Pawn {
		if dr := m.To.Rank() - m.From.Rank(); dr == 2 || dr == -2 {
			p.enPassant = m.To.Offset(0, -mover.Color.pawnDirection())
		}
	}

	p.sideToMove = p.sideToMove.Other()
	if p.sideToMove == White {
		p.fullMoveNumber++
	}
	return nil
}

// revert pops the last history entry and reverses its move.
func (p *Position) revert() error {
	if len(p.history) == 0 {
		return fmt.Errorf("%w: undo with empty history", ErrInternalInconsistency)
	}

	entry := p.history[len(p.history)-1]
	p.history = p.history[:len(p.history)-1]

	p.sideToMove = entry.sideToMove
	p.castlingRights = entry.castlingRights
	p.enPassant = entry.enPassant
	p.halfMoveClock = entry.halfMoveClock
	p.fullMoveNumber = entry.fullMoveNumber

	if !entry.hasMove {
		return nil
	}
	m := entry.move

	if got := p.grid.Get(m.To); got != entry.mover {
		return fmt.Errorf("%w: expected handle %d on %s, found %d", ErrInternalInconsistency, entry.mover, m.To, got)
	}

	if entry.rook != NoHandle {
		corner, crossed := castlingRookSquares(m)
		p.grid.Set(crossed, NoHandle)
		p.roster[entry.rook].Square = corner
		p.grid.Set(corner, entry.rook)
	}

	moved := &p.roster[entry.mover]
	moved.Square = m.From
	if m.Promote {
		*moved = Piece{Type: Pawn, Color: moved.Color, Square: m.From, Alive: true}
	}

	p.grid.Set(m.To, NoHandle)
	p.grid.Set(m.From, entry.mover)

	if entry.victim != NoHandle {
		victim := &p.roster[entry.victim]
		if victim.Alive {
			return fmt.Errorf("%w: captured %s on %s is not dead", ErrInternalInconsistency, victim.Type, victim.Square)
		}
		victim.Alive = true
		p.grid.Set(victim.Square, entry.victim)
	}
	return nil
}
