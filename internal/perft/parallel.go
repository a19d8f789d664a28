package perft

import (
	"golang.org/x/sync/errgroup"

	"github.com/ardenlabs/chesscore/internal/board"
)

// RunParallel splits the root's legal moves across the errgroup's default
// concurrency and runs a full subtree from each in its own goroutine. Each
// worker owns a private clone of the position and game state — no shared
// mutable board state crosses goroutine boundaries — and the root sums the
// per-depth counters element-wise once every worker returns.
func RunParallel(pos *board.Position, state *board.GameState, hash board.ZobristId, maxDepth int) Counters {
	var total Counters
	total.levelAt(0).Size++
	kingSq := pos.KingSquare(state.SideToMove)
	if pos.IsCheck(kingSq, state.SideToMove) {
		total.levelAt(0).Checks++
	}

	if maxDepth == 0 {
		return total
	}

	moves := pos.LegalMoves(state)
	results := make([]Counters, len(moves))

	var g errgroup.Group
	for i, m := range moves {
		i, m := i, m
		g.Go(func() error {
			workerPos := *pos
			workerState := *state
			workerHash := hash
			change := board.Make(&workerPos, &workerState, &workerHash, m)
			var sub Counters
			walk(&workerPos, &workerState, workerHash, 1, maxDepth, m, change.HadCapture, &sub)
			board.Unmake(&workerPos, &workerState, &workerHash, change)
			results[i] = sub
			return nil
		})
	}
	_ = g.Wait()

	for _, r := range results {
		total.Merge(r)
	}
	return total
}
