package board

import (
	"errors"
	"testing"
)

func TestSquareRoundTrip(t *testing.T) {
	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			label := string([]byte{byte('a' + file), byte('1' + rank)})

			sq, err := ParseSquare(label)
			if err != nil {
				t.Fatalf("ParseSquare(%q): %v", label, err)
			}
			if sq.File() != file || sq.Rank() != rank {
				t.Errorf("%s: got coords (%d,%d), want (%d,%d)", label, sq.File(), sq.Rank(), file, rank)
			}
			if sq.String() != label {
				t.Errorf("%s: label round trip gave %s", label, sq)
			}
			if NewSquare(file, rank) != sq {
				t.Errorf("%s: NewSquare disagrees", label)
			}
		}
	}
}

func TestParseSquareInvalid(t *testing.T) {
	for _, label := range []string{"", "e", "e44", "i1", "a0", "a9", "E4", "4e", "-"} {
		sq, err := ParseSquare(label)
		if !errors.Is(err, ErrInvalidSquare) {
			t.Errorf("ParseSquare(%q) error = %v, want ErrInvalidSquare", label, err)
		}
		if sq != NoSquare {
			t.Errorf("ParseSquare(%q) = %v, want NoSquare", label, sq)
		}
	}
}

func TestSquareOffset(t *testing.T) {
	tests := []struct {
		from   Square
		df, dr int
		want   Square
	}{
		{E4, 1, 1, F5},
		{A1, -1, 0, NoSquare},
		{H8, 0, 1, NoSquare},
		{H1, -7, 7, A8},
		{B1, 2, 1, D2},
		{NoSquare, 0, 0, NoSquare},
	}
	for _, tc := range tests {
		if got := tc.from.Offset(tc.df, tc.dr); got != tc.want {
			t.Errorf("%s.Offset(%d,%d) = %s, want %s", tc.from, tc.df, tc.dr, got, tc.want)
		}
	}
}
