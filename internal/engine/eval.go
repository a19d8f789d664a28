package engine

import "github.com/ardenlabs/chesscore/internal/board"

// Evaluate returns the static material score of pos: the sum, over every
// occupied square, of that piece's material value times 100, signed +1 for
// White and -1 for Black. Kings never contribute. White prefers a higher
// score, Black a lower one; perspective reorients this for the search's
// internal mover-relative convention.
func Evaluate(pos *board.Position) int16 {
	var score int16
	for sq := board.Square(0); sq < 64; sq++ {
		piece := pos.PieceAt(sq)
		if piece.IsNone() {
			continue
		}
		value := piece.Value() * 100
		if piece.Color == board.White {
			score += value
		} else {
			score -= value
		}
	}
	return score
}
