package board

import "testing"

func startingPosition() (*Position, *GameState) {
	pos := NewEmptyPosition()
	back := [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < 8; file++ {
		pos.Insert(NewSquare(file, 0), Piece{Color: White, Type: back[file]})
		pos.Insert(NewSquare(file, 1), Piece{Color: White, Type: Pawn})
		pos.Insert(NewSquare(file, 6), Piece{Color: Black, Type: Pawn})
		pos.Insert(NewSquare(file, 7), Piece{Color: Black, Type: back[file]})
	}
	return pos, NewGameState()
}

func TestHashMatchesFoldFromScratch(t *testing.T) {
	pos, state := startingPosition()
	got := Hash(pos, state)

	var want ZobristId
	for sq := Square(0); sq < 64; sq++ {
		piece := pos.PieceAt(sq)
		if piece.IsNone() {
			continue
		}
		want ^= ZobristPieceSquare(piece.Color, piece.Type, sq)
	}
	want ^= ZobristCastle(White, KingSide)
	want ^= ZobristCastle(White, QueenSide)
	want ^= ZobristCastle(Black, KingSide)
	want ^= ZobristCastle(Black, QueenSide)

	if got != want {
		t.Errorf("Hash = %x, want %x", got, want)
	}
}

func TestMakeUnmakeHashSymmetry(t *testing.T) {
	pos, state := startingPosition()
	hash := Hash(pos, state)
	original := hash

	moves := pos.LegalMoves(state)
	if len(moves) == 0 {
		t.Fatal("expected legal moves from starting position")
	}

	for _, m := range moves {
		change := Make(pos, state, &hash, m)
		if hash != Hash(pos, state) {
			t.Fatalf("move %v: incremental hash %x diverged from fold-from-scratch %x", m, hash, Hash(pos, state))
		}
		Unmake(pos, state, &hash, change)
		if hash != original {
			t.Fatalf("move %v: hash after unmake = %x, want %x", m, hash, original)
		}
	}
}

func TestZobristSideToMoveDiffersOnlyInSideBit(t *testing.T) {
	pos, state := startingPosition()
	whiteHash := Hash(pos, state)

	state.SideToMove = Black
	blackHash := Hash(pos, state)

	if whiteHash^blackHash != ZobristSideToMove() {
		t.Errorf("side-to-move toggle changed more than the side bit: white=%x black=%x", whiteHash, blackHash)
	}
}
