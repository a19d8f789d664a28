package perft

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

func TestRunStartingPosition(t *testing.T) {
	pos, state, hash := mustParse(t, notation.StartFEN)

	tests := []struct {
		depth int
		size  uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}

	for _, tc := range tests {
		counters := Run(pos, state, hash, tc.depth)
		if got := counters.Levels[tc.depth].Size; got != tc.size {
			t.Errorf("depth %d: size = %d, want %d", tc.depth, got, tc.size)
		}
	}
}

func TestRunStartingPositionDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("depth 5 is slow; run without -short for the full check")
	}
	pos, state, hash := mustParse(t, notation.StartFEN)
	counters := Run(pos, state, hash, 5)
	level := counters.Levels[5]
	if level.Size != 4865609 {
		t.Errorf("size = %d, want 4865609", level.Size)
	}
	if level.Captures != 82719 {
		t.Errorf("captures = %d, want 82719", level.Captures)
	}
	if level.EnPassants != 258 {
		t.Errorf("en passants = %d, want 258", level.EnPassants)
	}
	if level.Checks != 27351 {
		t.Errorf("checks = %d, want 27351", level.Checks)
	}
}

func TestRunKiwipete(t *testing.T) {
	pos, state, hash := mustParse(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")

	tests := []struct {
		depth int
		size  uint64
	}{
		{1, 48},
		{2, 2039},
		{3, 97862},
	}
	for _, tc := range tests {
		counters := Run(pos, state, hash, tc.depth)
		if got := counters.Levels[tc.depth].Size; got != tc.size {
			t.Errorf("depth %d: size = %d, want %d", tc.depth, got, tc.size)
		}
	}
}

func TestRunKiwipeteDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("depth 4 is slow; run without -short for the full check")
	}
	pos, state, hash := mustParse(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	counters := Run(pos, state, hash, 4)
	if got := counters.Levels[4].Size; got != 4085603 {
		t.Errorf("size = %d, want 4085603", got)
	}
}

func TestRunPosition3(t *testing.T) {
	pos, state, hash := mustParse(t, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")

	tests := []struct {
		depth int
		size  uint64
	}{
		{1, 14},
		{2, 191},
		{3, 2812},
		{4, 43238},
	}
	for _, tc := range tests {
		counters := Run(pos, state, hash, tc.depth)
		if got := counters.Levels[tc.depth].Size; got != tc.size {
			t.Errorf("depth %d: size = %d, want %d", tc.depth, got, tc.size)
		}
	}
}

func TestRunPosition3Deep(t *testing.T) {
	if testing.Short() {
		t.Skip("depth 5 is slow; run without -short for the full check")
	}
	pos, state, hash := mustParse(t, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	counters := Run(pos, state, hash, 5)
	if got := counters.Levels[5].Size; got != 674624 {
		t.Errorf("size = %d, want 674624", got)
	}
}

func TestRunPromotionPosition(t *testing.T) {
	if testing.Short() {
		t.Skip("depth 5 is slow; run without -short for the full check")
	}
	pos, state, hash := mustParse(t, "n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1")
	counters := Run(pos, state, hash, 5)
	level := counters.Levels[5]
	if level.Size != 3605103 {
		t.Errorf("size = %d, want 3605103", level.Size)
	}
	if level.Captures != 871767 {
		t.Errorf("captures = %d, want 871767", level.Captures)
	}
	if level.Promotions != 821641 {
		t.Errorf("promotions = %d, want 821641", level.Promotions)
	}
}

// TestEnPassantPin mirrors the classic horizontal-pin scenario: the pawn on
// e4 cannot capture en passant on d3 because doing so would expose the
// black king on a4 to the rook on h4.
func TestEnPassantPin(t *testing.T) {
	pos, state, hash := mustParse(t, "8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1")

	for _, m := range pos.LegalMoves(state) {
		if m.Kind == board.EnPassantKind {
			t.Errorf("en passant move %v should be illegal (horizontal pin)", m)
		}
	}

	tests := []struct {
		depth int
		size  uint64
	}{
		{1, 6},
		{2, 94},
	}
	for _, tc := range tests {
		counters := Run(pos, state, hash, tc.depth)
		if got := counters.Levels[tc.depth].Size; got != tc.size {
			t.Errorf("depth %d: size = %d, want %d", tc.depth, got, tc.size)
		}
	}
}
