package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridGetSet(t *testing.T) {
	var g Grid

	assert.Equal(t, NoHandle, g.Get(E4), "zero grid is empty")
	assert.Equal(t, Handle(3), g.Set(E4, 3))
	assert.Equal(t, Handle(3), g.Get(E4))
	assert.Equal(t, Handle(0), g.Set(A1, 0))
	assert.Equal(t, Handle(0), g.Get(A1))

	assert.Equal(t, NoHandle, g.Set(NoSquare, 5), "off-board set is a no-op")
	assert.Equal(t, NoHandle, g.Get(NoSquare))
	assert.Equal(t, NoHandle, g.Get(Square(200)))

	g.Set(E4, NoHandle)
	assert.Equal(t, NoHandle, g.Get(E4))
}

func TestGridLoadSkipsDeadPieces(t *testing.T) {
	roster := []Piece{
		{Type: King, Color: White, Square: E1, Alive: true},
		{Type: Queen, Color: Black, Square: D8, Alive: false},
		{Type: King, Color: Black, Square: E8, Alive: true},
	}

	var g Grid
	g.Set(H5, 7)
	g.Load(roster)

	assert.Equal(t, Handle(0), g.Get(E1))
	assert.Equal(t, NoHandle, g.Get(D8))
	assert.Equal(t, Handle(2), g.Get(E8))
	assert.Equal(t, NoHandle, g.Get(H5), "load resets old contents")

	pc, ok := g.Occupant(E8, roster)
	require.True(t, ok)
	assert.Equal(t, King, pc.Type)
	assert.Equal(t, Black, pc.Color)

	_, ok = g.Occupant(D8, roster)
	assert.False(t, ok)
}

func TestGridSerialize(t *testing.T) {
	pos := NewPosition()
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", pos.grid.Serialize(pos.roster))

	var g Grid
	assert.Equal(t, "8/8/8/8/8/8/8/8", g.Serialize(nil))

	roster := []Piece{
		{Type: Knight, Color: White, Square: B1, Alive: true},
		{Type: Pawn, Color: Black, Square: H8, Alive: true},
	}
	g.Load(roster)
	assert.Equal(t, "7p/8/8/8/8/8/8/1N6", g.Serialize(roster))
}
