package board

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Perft counts the leaf nodes of the legal move tree at the given depth.
// This is the standard way to verify move generation correctness.
func (p *Position) Perft(depth int) int64 {
	if depth <= 0 {
		return 1
	}

	moves := p.LegalMoves()
	if depth == 1 {
		return int64(len(moves))
	}

	var nodes int64
	for _, m := range moves {
		p.mustPlay(m)
		nodes += p.Perft(depth - 1)
		p.mustUndo()
	}
	return nodes
}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  Move
	Nodes int64
}

// Divide runs Perft below every root move, sorted by move string.
func (p *Position) Divide(depth int) []DivideEntry {
	if depth <= 0 {
		return nil
	}

	moves := p.LegalMoves()
	entries := make([]DivideEntry, 0, len(moves))
	for _, m := range moves {
		p.mustPlay(m)
		entries = append(entries, DivideEntry{Move: m, Nodes: p.Perft(depth - 1)})
		p.mustUndo()
	}

	slices.SortFunc(entries, func(a, b DivideEntry) int {
		return strings.Compare(a.Move.String(), b.Move.String())
	})
	return entries
}

func (p *Position) mustPlay(m Move) {
	if err := p.MakeMove(m); err != nil {
		panic(err)
	}
}

func (p *Position) mustUndo() {
	if err := p.Undo(); err != nil {
		panic(err)
	}
}
