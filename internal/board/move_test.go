package board

import "testing"

func TestRelativeCaptureValue(t *testing.T) {
	m := NewBasicMove(Piece{Color: White, Type: Pawn}, NewSquare(4, 3), NewSquare(3, 4), Piece{Color: Black, Type: Queen}, true)
	value, ok := m.RelativeCaptureValue()
	if !ok {
		t.Fatal("expected ok=true for a capture")
	}
	if want := MaterialValue[Queen] - MaterialValue[Pawn]; value != want {
		t.Errorf("RelativeCaptureValue = %d, want %d", value, want)
	}

	quiet := NewBasicMove(Piece{Color: White, Type: Pawn}, NewSquare(4, 3), NewSquare(4, 4), NoPiece, false)
	if _, ok := quiet.RelativeCaptureValue(); ok {
		t.Fatal("expected ok=false for a quiet move")
	}
}

func TestLessOrdersCapturesAboveQuiet(t *testing.T) {
	capture := NewBasicMove(Piece{Color: White, Type: Pawn}, NewSquare(4, 3), NewSquare(3, 4), Piece{Color: Black, Type: Knight}, true)
	quiet := NewBasicMove(Piece{Color: White, Type: Pawn}, NewSquare(4, 3), NewSquare(4, 4), NoPiece, false)
	if !Less(capture, quiet) {
		t.Fatal("expected the capture to sort before the quiet move")
	}
	if Less(quiet, capture) {
		t.Fatal("quiet move should not sort before a capture")
	}
}

func TestLessOrdersByRelativeCaptureValue(t *testing.T) {
	pawnTakesQueen := NewBasicMove(Piece{Color: White, Type: Pawn}, NewSquare(4, 3), NewSquare(3, 4), Piece{Color: Black, Type: Queen}, true)
	queenTakesPawn := NewBasicMove(Piece{Color: White, Type: Queen}, NewSquare(0, 0), NewSquare(1, 1), Piece{Color: Black, Type: Pawn}, true)
	if !Less(pawnTakesQueen, queenTakesPawn) {
		t.Fatal("pawn takes queen should sort above queen takes pawn")
	}
}

func TestMoveStringFormatting(t *testing.T) {
	m := NewBasicMove(Piece{Color: White, Type: Pawn}, NewSquare(4, 1), NewSquare(4, 3), NoPiece, false)
	if got, want := m.String(), "e2e4"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	basic := NewBasicMove(Piece{Color: White, Type: Pawn}, NewSquare(4, 6), NewSquare(4, 7), NoPiece, false)
	promo := NewPromotion(basic, Queen)
	if got, want := promo.String(), "e7e8q"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if got, want := NullMove.String(), "0000"; got != want {
		t.Errorf("NullMove.String() = %q, want %q", got, want)
	}
}
