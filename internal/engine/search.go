// Package engine implements the alpha-beta search, its parallel variant,
// the material evaluator, and the supporting transposition table and
// priority work queue.
package engine

import (
	"math"
	"sort"
	"time"

	"github.com/ardenlabs/chesscore/internal/board"
)

// Result is what a search call reports back to its caller.
type Result struct {
	BestMove          board.Move
	Score             int16
	NodesEvaluated    uint64
	TranspositionHits uint64
	BetaCutoffs       uint64
	Elapsed           time.Duration
}

// Search runs a sequential fail-hard negamax to depth from (pos, state),
// mutating and restoring both via bracketed make/unmake pairs, and reports
// the best root move and its score in the evaluator's convention (positive
// favors White), whichever side is to move at the root.
func Search(pos *board.Position, state *board.GameState, hash board.ZobristId, depth int) Result {
	start := time.Now()
	tt := NewTranspositionTable()
	s := &searcher{tt: tt}

	root := state.SideToMove
	moves := pos.LegalMoves(state)
	sortMoves(moves)

	alpha := int16(math.MinInt16 + 1)
	beta := int16(math.MaxInt16)
	best := alpha
	bestMove := board.NullMove

	for _, m := range moves {
		change := board.Make(pos, state, &hash, m)
		score := -s.negamax(pos, state, hash, -beta, -best, depth-1)
		board.Unmake(pos, state, &hash, change)

		if score > best || bestMove == board.NullMove {
			best = score
			bestMove = m
		}
	}

	return Result{
		BestMove:          bestMove,
		Score:             perspective(best, root),
		NodesEvaluated:    s.nodes,
		TranspositionHits: s.ttHits,
		BetaCutoffs:       s.betaCutoffs,
		Elapsed:           time.Since(start),
	}
}

// searcher carries the per-call mutable counters and transposition table
// the recursive negamax needs; one is created per top-level Search call.
type searcher struct {
	tt          *TranspositionTable
	nodes       uint64
	ttHits      uint64
	betaCutoffs uint64
}

// negamax implements search(α, β, d, pos) exactly: a fail-hard αβ negamax
// whose leaf evaluation is the material evaluator reoriented to the
// current side to move, consulting the transposition table after each
// child move and before recursing into it.
func (s *searcher) negamax(pos *board.Position, state *board.GameState, hash board.ZobristId, alpha, beta int16, depth int) int16 {
	s.nodes++
	if depth == 0 {
		return perspective(Evaluate(pos), state.SideToMove)
	}

	moves := pos.LegalMoves(state)
	sortMoves(moves)

	best := alpha
	for _, m := range moves {
		change := board.Make(pos, state, &hash, m)

		var score int16
		if cached, ok := s.tt.Get(hash); ok {
			s.ttHits++
			score = cached
		} else {
			score = -s.negamax(pos, state, hash, -beta, -best, depth-1)
			s.tt.Put(hash, score)
		}

		board.Unmake(pos, state, &hash, change)

		if score >= beta {
			s.betaCutoffs++
			return beta
		}
		if score > best {
			best = score
		}
	}
	return best
}

// sortMoves orders moves descending by relative capture value so captures
// are tried before quiet moves, per board.Less.
func sortMoves(moves []board.Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		return board.Less(moves[i], moves[j])
	})
}
