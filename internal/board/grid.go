package board

import "strconv"

// Grid maps squares to roster handles. It is pure storage: keeping each
// piece's Square in sync with the cell that holds it is the Position's job.
// The zero value is an empty grid.
type Grid struct {
	// cells store handle+1 so the zero value means empty.
	cells [64]int16
}

// Get returns the handle stored at sq, or NoHandle if the square is empty
// or off the board.
func (g *Grid) Get(sq Square) Handle {
	if !sq.IsValid() {
		return NoHandle
	}
	return Handle(g.cells[sq]) - 1
}

// Set stores h at sq and returns it. Passing NoHandle clears the square.
// An off-board square is left alone and NoHandle is returned.
func (g *Grid) Set(sq Square, h Handle) Handle {
	if !sq.IsValid() {
		return NoHandle
	}
	if h < 0 {
		h = NoHandle
	}
	g.cells[sq] = int16(h + 1)
	return h
}

// Clear empties every square.
func (g *Grid) Clear() {
	g.cells = [64]int16{}
}

// Load resets the grid and places every living roster piece on its
// recorded square. Duplicate squares are a caller bug; the later entry wins.
func (g *Grid) Load(roster []Piece) {
	g.Clear()
	for i, pc := range roster {
		if !pc.Alive {
			continue
		}
		g.Set(pc.Square, Handle(i))
	}
}

// Occupant resolves the piece standing on sq.
func (g *Grid) Occupant(sq Square, roster []Piece) (Piece, bool) {
	h := g.Get(sq)
	if h == NoHandle || int(h) >= len(roster) {
		return Piece{}, false
	}
	return roster[h], true
}

// Serialize returns the piece placement field of a FEN string.
func (g *Grid) Serialize(roster []Piece) string {
	buf := make([]byte, 0, 71)
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			pc, ok := g.Occupant(NewSquare(file, rank), roster)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				buf = strconv.AppendInt(buf, int64(empty), 10)
				empty = 0
			}
			buf = append(buf, pc.Char())
		}
		if empty > 0 {
			buf = strconv.AppendInt(buf, int64(empty), 10)
		}
		if rank > 0 {
			buf = append(buf, '/')
		}
	}
	return string(buf)
}
