package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitboardSquares(t *testing.T) {
	b := Empty.Set(H8).Set(A1).Set(E4)
	assert.Equal(t, 3, b.PopCount())
	assert.Equal(t, []Square{A1, E4, H8}, b.Squares())

	assert.Equal(t, A1, b.PopLSB())
	assert.False(t, b.IsSet(A1))
	assert.Equal(t, E4, b.PopLSB())
	assert.Equal(t, H8, b.PopLSB())
	assert.Equal(t, NoSquare, b.PopLSB(), "empty set")

	assert.Equal(t, Empty, SquareBB(NoSquare))
	assert.False(t, Empty.Set(NoSquare).IsSet(NoSquare))
}
