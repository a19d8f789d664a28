package engine

import "github.com/ardenlabs/chesscore/internal/board"

// perspective bridges the Evaluator's White-positive/Black-negative static
// score and the side-to-move-relative convention the recursive search uses
// internally: applied once, it converts absolute to relative; applied
// again with the same side, it converts back.
func perspective(score int16, side board.Color) int16 {
	if side == board.Black {
		return -score
	}
	return score
}
