// Package perft walks the legal move tree to a fixed depth, counting move
// classes at every level. It is the primary correctness harness for the
// board package's move generator.
package perft

import (
	"github.com/ardenlabs/chesscore/internal/board"
)

// Level holds the move-class counters for a single depth.
type Level struct {
	Size       uint64
	Captures   uint64
	EnPassants uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
}

// Merge adds other's counters into l element-wise, used to combine a
// parallel worker's subtree counters into the root's result.
func (l *Level) Merge(other Level) {
	l.Size += other.Size
	l.Captures += other.Captures
	l.EnPassants += other.EnPassants
	l.Castles += other.Castles
	l.Promotions += other.Promotions
	l.Checks += other.Checks
}

// Counters holds one Level per depth, index 0 is the root (depth 0, before
// any move), growing on demand as deeper levels are reached.
type Counters struct {
	Levels []Level
}

func (c *Counters) levelAt(depth int) *Level {
	for len(c.Levels) <= depth {
		c.Levels = append(c.Levels, Level{})
	}
	return &c.Levels[depth]
}

// Merge adds other's levels into c element-wise, growing c as needed.
func (c *Counters) Merge(other Counters) {
	for i, lvl := range other.Levels {
		c.levelAt(i).Merge(lvl)
	}
}

// Run walks the legal move tree from (pos, state) to maxDepth and returns
// the per-depth counters. pos and state are restored to their original
// values before Run returns: every recursive step is bracketed by a
// make/unmake pair.
func Run(pos *board.Position, state *board.GameState, hash board.ZobristId, maxDepth int) Counters {
	var counters Counters
	walk(pos, state, hash, 0, maxDepth, board.NullMove, false, &counters)
	return counters
}

func walk(pos *board.Position, state *board.GameState, hash board.ZobristId, depth, maxDepth int, lastMove board.Move, lastWasCapture bool, counters *Counters) {
	level := counters.levelAt(depth)
	level.Size++

	kingSq := pos.KingSquare(state.SideToMove)
	if pos.IsCheck(kingSq, state.SideToMove) {
		level.Checks++
	}

	if depth > 0 {
		switch lastMove.Kind {
		case board.EnPassantKind:
			level.EnPassants++
			level.Captures++
		case board.CastleKind:
			level.Castles++
		case board.PromotionKind:
			level.Promotions++
			if lastWasCapture {
				level.Captures++
			}
		default:
			if lastWasCapture {
				level.Captures++
			}
		}
	}

	if depth == maxDepth {
		return
	}

	moves := pos.LegalMoves(state)
	for _, m := range moves {
		change := board.Make(pos, state, &hash, m)
		walk(pos, state, hash, depth+1, maxDepth, m, change.HadCapture, counters)
		board.Unmake(pos, state, &hash, change)
	}
}
