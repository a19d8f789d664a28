package engine

import (
	"testing"

	"github.com/ardenlabs/chesscore/internal/board"
	"github.com/ardenlabs/chesscore/internal/notation"
)

func mustParse(t *testing.T, fen string) (*board.Position, *board.GameState, board.ZobristId) {
	t.Helper()
	pos, state, err := notation.Parse(fen)
	if err != nil {
		t.Fatalf("parse %q: %v", fen, err)
	}
	return pos, state, board.Hash(pos, state)
}

func TestEvaluateStartingPositionIsBalanced(t *testing.T) {
	pos, _, _ := mustParse(t, notation.StartFEN)
	if got := Evaluate(pos); got != 0 {
		t.Errorf("Evaluate(starting position) = %d, want 0", got)
	}
}

func TestEvaluateFavorsMaterialAdvantage(t *testing.T) {
	// White is up a queen.
	pos, _, _ := mustParse(t, "4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	if got := Evaluate(pos); got <= 0 {
		t.Errorf("Evaluate = %d, want a positive score favoring White", got)
	}
}

// TestSearchFindsBackRankMate gives White a rook poised to deliver a
// back-rank mate against a king boxed in by its own pawns.
func TestSearchFindsBackRankMate(t *testing.T) {
	pos, state, hash := mustParse(t, "6k1/5ppp/8/8/8/8/8/R3K3 w - - 0 1")
	result := Search(pos, state, hash, 2)

	want := board.NewBasicMove(board.Piece{Color: board.White, Type: board.Rook}, board.NewSquare(0, 0), board.NewSquare(0, 7), board.NoPiece, false)
	if result.BestMove.From != want.From || result.BestMove.To != want.To {
		t.Errorf("BestMove = %v, want a1-a8", result.BestMove)
	}
}

func TestSearchDoesNotMutatePosition(t *testing.T) {
	pos, state, hash := mustParse(t, notation.StartFEN)
	before := *pos
	beforeState := *state

	Search(pos, state, hash, 3)

	if *pos != before {
		t.Fatal("Search left the position mutated")
	}
	if *state != beforeState {
		t.Fatal("Search left the game state mutated")
	}
}

func TestSearchParallelAgreesWithSearch(t *testing.T) {
	positions := []string{
		notation.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	}

	for _, fen := range positions {
		pos, state, hash := mustParse(t, fen)
		sequential := Search(pos, state, hash, 2)
		parallel := SearchParallel(pos, state, hash, 2, 4)

		if sequential.Score != parallel.Score {
			t.Errorf("%s: sequential score %d != parallel score %d", fen, sequential.Score, parallel.Score)
		}
	}
}
