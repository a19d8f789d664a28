package board

// GameState is the non-spatial half of a position: whose turn it is,
// castling rights, the en-passant target, and the move clocks. It carries
// no piece placement; see Position for that.
type GameState struct {
	SideToMove     Color
	CastleRights   [2][2]bool // [Color][CastleSide]
	EPTarget       Square     // NoSquare if there is none
	HalfmoveClock  int
	FullmoveNumber int
}

// NewGameState returns the starting-position game state: White to move,
// all four castle rights held, no en-passant target, move 1.
func NewGameState() *GameState {
	gs := &GameState{
		SideToMove:     White,
		EPTarget:       NoSquare,
		HalfmoveClock:  0,
		FullmoveNumber: 1,
	}
	gs.CastleRights[White][KingSide] = true
	gs.CastleRights[White][QueenSide] = true
	gs.CastleRights[Black][KingSide] = true
	gs.CastleRights[Black][QueenSide] = true
	return gs
}

// CastleRightRef names one (color, side) castling right.
type CastleRightRef struct {
	Color Color
	Side  CastleSide
}

// ReversibleChange records everything Unmake needs to undo a Make in O(1)
// without copying the position: the move itself, the castle rights it
// revoked, and the prior clocks. The captured piece (if any) is filled in
// by Make since it is only known once the move has been applied.
type ReversibleChange struct {
	Move                Move
	RevokedRights       []CastleRightRef
	PriorEPTarget       Square
	PriorHalfmoveClock  int
	PriorFullmoveNumber int
	Captured            Piece
	HadCapture          bool
}

const (
	e1 Square = 4
	e8 Square = 60
	a1 Square = 0
	h1 Square = 7
	a8 Square = 56
	h8 Square = 63
)

var cornerRight = map[Square]CastleRightRef{
	a1: {White, QueenSide},
	h1: {White, KingSide},
	a8: {Black, QueenSide},
	h8: {Black, KingSide},
}

// revokedRights determines, without mutating state, which castle rights m
// revokes: a move touching a home-rank king square revokes both of that
// color's rights, and a move touching a corner revokes the matching side's
// right. Only rights currently held are reported.
func revokedRights(state *GameState, m Move) []CastleRightRef {
	var toRevoke [2][2]bool
	for _, sq := range [2]Square{m.From, m.To} {
		switch sq {
		case e1:
			toRevoke[White][KingSide] = true
			toRevoke[White][QueenSide] = true
		case e8:
			toRevoke[Black][KingSide] = true
			toRevoke[Black][QueenSide] = true
		default:
			if cr, ok := cornerRight[sq]; ok {
				toRevoke[cr.Color][cr.Side] = true
			}
		}
	}

	var revoked []CastleRightRef
	for _, c := range [2]Color{White, Black} {
		for _, side := range [2]CastleSide{KingSide, QueenSide} {
			if toRevoke[c][side] && state.CastleRights[c][side] {
				revoked = append(revoked, CastleRightRef{Color: c, Side: side})
			}
		}
	}
	return revoked
}

// foldMoveZobrist XORs in (or, called a second time, back out) the
// piece-movement feature of m: the moved piece at from/to, the captured
// piece if any, and both king/rook legs for castling.
func foldMoveZobrist(hash *ZobristId, m Move, captured Piece, hadCapture bool) {
	switch m.Kind {
	case BasicKind, TwoSquarePawnKind:
		*hash ^= ZobristPieceSquare(m.Piece.Color, m.Piece.Type, m.From)
		*hash ^= ZobristPieceSquare(m.Piece.Color, m.Piece.Type, m.To)
		if hadCapture {
			*hash ^= ZobristPieceSquare(captured.Color, captured.Type, m.To)
		}
	case PromotionKind:
		*hash ^= ZobristPieceSquare(m.Piece.Color, Pawn, m.From)
		*hash ^= ZobristPieceSquare(m.Piece.Color, m.PromoteTo, m.To)
		if hadCapture {
			*hash ^= ZobristPieceSquare(captured.Color, captured.Type, m.To)
		}
	case EnPassantKind:
		*hash ^= ZobristPieceSquare(m.Piece.Color, Pawn, m.From)
		*hash ^= ZobristPieceSquare(m.Piece.Color, Pawn, m.To)
		*hash ^= ZobristPieceSquare(captured.Color, captured.Type, m.CaptureSquare)
	case CastleKind:
		*hash ^= ZobristPieceSquare(m.Color, King, m.KingFrom)
		*hash ^= ZobristPieceSquare(m.Color, King, m.KingTo)
		*hash ^= ZobristPieceSquare(m.Color, Rook, m.RookFrom)
		*hash ^= ZobristPieceSquare(m.Color, Rook, m.RookTo)
	}
}

// Make applies m to pos and state, updating hash incrementally, and
// returns the ReversibleChange needed to undo it. It panics with
// ErrMissingPiece if the position has no piece where m expects one.
func Make(pos *Position, state *GameState, hash *ZobristId, m Move) ReversibleChange {
	mover := state.SideToMove
	change := ReversibleChange{
		Move:                m,
		PriorEPTarget:       state.EPTarget,
		PriorHalfmoveClock:  state.HalfmoveClock,
		PriorFullmoveNumber: state.FullmoveNumber,
	}

	change.RevokedRights = revokedRights(state, m)
	for _, r := range change.RevokedRights {
		*hash ^= ZobristCastle(r.Color, r.Side)
		state.CastleRights[r.Color][r.Side] = false
	}

	if state.EPTarget.Valid() {
		*hash ^= ZobristEnPassant(state.EPTarget)
	}
	state.EPTarget = NoSquare
	if m.Kind == TwoSquarePawnKind {
		state.EPTarget = m.EPTarget
		*hash ^= ZobristEnPassant(m.EPTarget)
	}

	_, captured, hadCapture, err := pos.Apply(m)
	if err != nil {
		panic(err)
	}
	change.Captured = captured
	change.HadCapture = hadCapture
	foldMoveZobrist(hash, m, captured, hadCapture)

	resetClock := hadCapture || m.Kind == PromotionKind ||
		(m.Kind != CastleKind && m.Piece.Type == Pawn)
	if resetClock {
		state.HalfmoveClock = 0
	} else {
		state.HalfmoveClock++
	}

	if mover == Black {
		state.FullmoveNumber++
	}
	state.SideToMove = mover.Swap()
	*hash ^= ZobristSideToMove()

	return change
}

// Unmake is the exact inverse of Make: after it returns, pos, state, and
// *hash are bitwise identical to their values before the matching Make. Like
// Make, it panics with ErrMissingPiece if a piece it must move back is absent.
func Unmake(pos *Position, state *GameState, hash *ZobristId, change ReversibleChange) {
	m := change.Move
	mover := state.SideToMove.Swap()

	*hash ^= ZobristSideToMove()
	state.SideToMove = mover
	state.FullmoveNumber = change.PriorFullmoveNumber
	state.HalfmoveClock = change.PriorHalfmoveClock

	if err := pos.Unapply(m, change.Captured, change.HadCapture); err != nil {
		panic(err)
	}
	foldMoveZobrist(hash, m, change.Captured, change.HadCapture)

	if m.Kind == TwoSquarePawnKind {
		*hash ^= ZobristEnPassant(m.EPTarget)
	}
	state.EPTarget = change.PriorEPTarget
	if state.EPTarget.Valid() {
		*hash ^= ZobristEnPassant(state.EPTarget)
	}

	for _, r := range change.RevokedRights {
		state.CastleRights[r.Color][r.Side] = true
		*hash ^= ZobristCastle(r.Color, r.Side)
	}
}
