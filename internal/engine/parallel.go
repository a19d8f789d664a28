package engine

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/ardenlabs/chesscore/internal/board"
)

// taskResult is what one root-move task reports back to the root over the
// result channel: the move and its score, relative to the root's side to
// move.
type taskResult struct {
	move  board.Move
	score int16
}

// SearchParallel splits the root's legal moves across a fixed pool of
// workers. Each worker clones the position and game state so no mutable
// board state crosses goroutine boundaries, and they share one
// transposition table and one atomically-updated "current best score"
// used as the alpha bound when a worker starts a new root child — so a
// late worker benefits from whatever earlier workers already proved.
// Tasks are enqueued by child index into the priority bands described by
// BandForChildIndex, so the first move (the likeliest principal variation)
// is never left waiting behind the long tail of remaining root moves.
func SearchParallel(pos *board.Position, state *board.GameState, hash board.ZobristId, depth, workers int) Result {
	start := time.Now()
	tt := NewTranspositionTable()
	root := state.SideToMove

	moves := pos.LegalMoves(state)
	sortMoves(moves)
	if len(moves) == 0 {
		return Result{BestMove: board.NullMove, Elapsed: time.Since(start)}
	}

	pool := NewPool(workers)
	results := make(chan taskResult, len(moves))

	var sharedBest int64
	atomic.StoreInt64(&sharedBest, int64(math.MinInt16+1))
	var nodes, ttHits, betaCutoffs uint64

	beta := int16(math.MaxInt16)

	for i, m := range moves {
		i, m := i, m
		band := BandForChildIndex(i)
		pool.Queue.Enqueue(band, func() {
			localPos := *pos
			localState := *state
			localHash := hash

			change := board.Make(&localPos, &localState, &localHash, m)
			alpha := int16(atomic.LoadInt64(&sharedBest))

			s := &searcher{tt: tt}
			score := -s.negamax(&localPos, &localState, localHash, -beta, -alpha, depth-1)
			board.Unmake(&localPos, &localState, &localHash, change)

			atomic.AddUint64(&nodes, s.nodes)
			atomic.AddUint64(&ttHits, s.ttHits)
			atomic.AddUint64(&betaCutoffs, s.betaCutoffs)

			for {
				cur := atomic.LoadInt64(&sharedBest)
				if score <= int16(cur) {
					break
				}
				if atomic.CompareAndSwapInt64(&sharedBest, cur, int64(score)) {
					break
				}
			}

			results <- taskResult{move: m, score: score}
		})
	}

	pool.Close()
	pool.Wait()
	close(results)

	best := int16(math.MinInt16 + 1)
	bestMove := board.NullMove
	for r := range results {
		if r.score > best || bestMove == board.NullMove {
			best = r.score
			bestMove = r.move
		}
	}

	return Result{
		BestMove:          bestMove,
		Score:             perspective(best, root),
		NodesEvaluated:    atomic.LoadUint64(&nodes),
		TranspositionHits: atomic.LoadUint64(&ttHits),
		BetaCutoffs:       atomic.LoadUint64(&betaCutoffs),
		Elapsed:           time.Since(start),
	}
}
