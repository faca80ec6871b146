package board

// DebugMoveValidation enables grid/roster consistency checks after every
// MakeMove. Failures are logged, not returned.
var DebugMoveValidation = false

// PseudoLegalMoves returns the moves this piece can make on g, ignoring
// whether they leave its own king attacked. enPassant is the current en
// passant target or NoSquare. Castling is not generated here, and a hostile
// king blocks a walk without ever being captured.
func (pc Piece) PseudoLegalMoves(g *Grid, roster []Piece, enPassant Square) []Move {
	if !pc.Alive || !pc.Square.IsValid() {
		return nil
	}

	var moves []Move
	if pc.Type == Pawn {
		for _, pat := range pawnPushPatterns {
			if pat.appliesTo(pc.Color) {
				moves = pc.appendPawnPushes(moves, g, pat)
			}
		}
		for _, pat := range pawnCapturePatterns {
			if pat.appliesTo(pc.Color) {
				moves = pc.appendPawnCapture(moves, g, roster, pat, enPassant)
			}
		}
		return moves
	}

	for _, pat := range movePatterns(pc.Type) {
		sq := pc.Square
		for step := 0; step < pat.limit(); step++ {
			sq = sq.Offset(pat.file, pat.rank)
			if !sq.IsValid() {
				break
			}
			occupant, occupied := g.Occupant(sq, roster)
			if !occupied {
				moves = append(moves, NewMove(pc.Square, sq))
				continue
			}
			if occupant.Color != pc.Color && occupant.Type != King {
				m := NewMove(pc.Square, sq)
				m.Capture = true
				m.Captured = occupant.Type
				moves = append(moves, m)
			}
			break
		}
	}
	return moves
}

// appendPawnPushes walks a forward pattern. Any occupant blocks it.
func (pc Piece) appendPawnPushes(moves []Move, g *Grid, pat pattern) []Move {
	limit := pat.limit()
	if pc.Square.RelativeRank(pc.Color) == 1 {
		limit = 2
	}

	sq := pc.Square
	for step := 0; step < limit; step++ {
		sq = sq.Offset(pat.file, pat.rank)
		if !sq.IsValid() || g.Get(sq) != NoHandle {
			break
		}
		moves = appendWithPromotions(moves, pc, NewMove(pc.Square, sq))
	}
	return moves
}

// appendPawnCapture tries one diagonal. It yields a move only onto a hostile
// piece or onto the en passant target.
func (pc Piece) appendPawnCapture(moves []Move, g *Grid, roster []Piece, pat pattern, enPassant Square) []Move {
	sq := pc.Square.Offset(pat.file, pat.rank)
	if !sq.IsValid() {
		return moves
	}

	if occupant, ok := g.Occupant(sq, roster); ok {
		if occupant.Color == pc.Color || occupant.Type == King {
			return moves
		}
		m := NewMove(pc.Square, sq)
		m.Capture = true
		m.Captured = occupant.Type
		return appendWithPromotions(moves, pc, m)
	}

	if sq == enPassant && pc.canTakeEnPassant(g, roster, sq) {
		m := NewMove(pc.Square, sq)
		m.EnPassant = true
		m.Captured = Pawn
		moves = append(moves, m)
	}
	return moves
}

// canTakeEnPassant checks the target sits on this pawn's sixth rank with an
// enemy pawn right behind it.
func (pc Piece) canTakeEnPassant(g *Grid, roster []Piece, target Square) bool {
	if target.RelativeRank(pc.Color) != 5 {
		return false
	}
	victim, ok := g.Occupant(target.Offset(0, -pc.Color.pawnDirection()), roster)
	return ok && victim.Type == Pawn && victim.Color != pc.Color
}

// appendWithPromotions expands a pawn move reaching the last rank into one
// move per promotion type.
func appendWithPromotions(moves []Move, pc Piece, m Move) []Move {
	if m.To.RelativeRank(pc.Color) != 7 {
		return append(moves, m)
	}
	for _, pt := range promotionTypes {
		promo := m
		promo.Promote = true
		promo.Promotion = pt
		moves = append(moves, promo)
	}
	return moves
}

// ProtectedSquares returns every square this piece attacks or defends.
// Unlike movement, a walk records the first occupied square whatever its
// color, and pawns only count their diagonals.
func (pc Piece) ProtectedSquares(g *Grid) Bitboard {
	if !pc.Alive || !pc.Square.IsValid() {
		return Empty
	}

	var protected Bitboard
	for _, pat := range capturePatterns(pc.Type) {
		if !pat.appliesTo(pc.Color) {
			continue
		}
		sq := pc.Square
		for step := 0; step < pat.limit(); step++ {
			sq = sq.Offset(pat.file, pat.rank)
			if !sq.IsValid() {
				break
			}
			protected = protected.Set(sq)
			if g.Get(sq) != NoHandle {
				break
			}
		}
	}
	return protected
}

// PseudoLegalMoves returns the pseudo-legal moves of every living piece of
// the given side.
func (p *Position) PseudoLegalMoves(side Color) []Move {
	moves := make([]Move, 0, 64)
	for _, pc := range p.roster {
		if pc.Alive && pc.Color == side {
			moves = append(moves, pc.PseudoLegalMoves(&p.grid, p.roster, p.enPassant)...)
		}
	}
	return moves
}

// ProtectedSquares returns the union of squares attacked or defended by the
// given side.
func (p *Position) ProtectedSquares(side Color) Bitboard {
	return p.protectedBy(side, true)
}

func (p *Position) protectedBy(side Color, withKing bool) Bitboard {
	var protected Bitboard
	for _, pc := range p.roster {
		if !pc.Alive || pc.Color != side || (pc.Type == King && !withKing) {
			continue
		}
		protected |= pc.ProtectedSquares(&p.grid)
	}
	return protected
}
