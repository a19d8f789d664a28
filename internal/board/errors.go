package board

import "errors"

// ErrInvalidPosition is returned when a supplied position record is
// syntactically valid but describes an illegal position (no king for a
// color, pawns on the first/last rank, and so on).
var ErrInvalidPosition = errors.New("board: invalid position")

// ErrMissingPiece indicates apply/unapply found no piece at a square where
// one was expected to be. This signals a bug in make/unmake symmetry; the
// core surfaces it rather than attempting to recover.
var ErrMissingPiece = errors.New("board: missing piece at square")
