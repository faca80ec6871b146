package board

import (
	"testing"
)

func TestCheckmate(t *testing.T) {
	// Back rank mate - already checkmate
	// White: Ka1, Ra8
	// Black: Kh8, pawns on g7 and h7 blocking escape
	pos := mustParseFEN(t, "R6k/6pp/8/8/8/8/8/K7 b - - 0 1")

	t.Log("Checkmate position:")
	t.Log(pos)

	if moves := pos.LegalMoves(); len(moves) != 0 {
		t.Errorf("Expected no legal moves for black, got %v", moves)
	}
	if !pos.InCheck(Black) {
		t.Error("Expected black to be in check")
	}
	if !pos.IsCheckmate(Black) {
		t.Error("Expected checkmate but got false")
	}
	if pos.IsStalemate(Black) {
		t.Error("Checkmate reported as stalemate")
	}
}

func TestNotCheckmate(t *testing.T) {
	// King CAN escape - not checkmate
	// Black king on h8, rook on g8 but king can take it
	pos := mustParseFEN(t, "6Rk/8/8/8/8/8/8/K7 b - - 0 1")

	t.Log("Not checkmate position (king can capture rook):")
	t.Log(pos)

	if !pos.InCheck(Black) {
		t.Error("Expected black to be in check")
	}
	if pos.IsCheckmate(Black) {
		t.Error("Expected NOT checkmate but got true")
	}

	// Kxg8 and Kh7
	moves := pos.LegalMoves()
	if len(moves) != 2 {
		t.Errorf("Expected 2 legal moves, got %v", moves)
	}
	found := false
	for _, m := range moves {
		if m.String() == "h8g8" {
			found = m.Capture && m.Captured == Rook
		}
	}
	if !found {
		t.Errorf("Expected Kxg8 flagged as a rook capture, got %v", moves)
	}
}

func TestFoolsMate(t *testing.T) {
	pos := NewPosition()
	for _, s := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		m, err := ParseMove(s)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := pos.Play(m); err != nil {
			t.Fatalf("Play(%s): %v", s, err)
		}
	}

	if !pos.IsCheckmate(White) {
		t.Errorf("Expected white to be mated in %s", pos.ToFEN())
	}
	if pos.IsCheckmate(Black) {
		t.Error("Black cannot be mated here")
	}
}

func TestStalemate(t *testing.T) {
	pos := mustParseFEN(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")

	if pos.InCheck(Black) {
		t.Error("Black king is not attacked")
	}
	if !pos.IsStalemate(Black) {
		t.Error("Expected stalemate")
	}
	if pos.IsCheckmate(Black) {
		t.Error("Stalemate reported as checkmate")
	}
}

func TestKingsOnly(t *testing.T) {
	// Kings on neighbouring squares: neither may capture the other and
	// neither is considered to give check.
	pos := mustParseFEN(t, "8/8/8/8/8/8/6k1/7K w - - 0 1")

	moves := pos.LegalMoves()
	for _, m := range moves {
		if m.IsCapture() {
			t.Errorf("Unexpected capture %s", m)
		}
		if pc, _ := pos.PieceAt(m.From); pc.Type != King {
			t.Errorf("Non-king move %s", m)
		}
	}
	if pos.IsCheckmate(White) {
		t.Error("Kings-only position reported as checkmate")
	}

	// Black king has room to step away from the corner.
	black := pos.LegalMovesFor(Black)
	if len(black) == 0 {
		t.Fatal("Expected black king moves")
	}
	for _, m := range black {
		if m.IsCapture() {
			t.Errorf("Unexpected black capture %s", m)
		}
	}
}
