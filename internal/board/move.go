package board

import "fmt"

// MoveKind discriminates the cases of the Move tagged union.
type MoveKind uint8

const (
	// NullKind is the sentinel "no move yet".
	NullKind MoveKind = iota
	BasicKind
	CastleKind
	PromotionKind
	TwoSquarePawnKind
	EnPassantKind
)

// CastleSide distinguishes king-side from queen-side castling.
type CastleSide uint8

const (
	KingSide CastleSide = iota
	QueenSide
)

// Move is a tagged-union value type covering every legal move shape:
// BasicMove, Castle, Promotion, TwoSquarePawnMove, EnPassant, and Null.
// Only the fields relevant to Kind are meaningful; the rest are zero.
type Move struct {
	Kind MoveKind

	// BasicMove / shared by Promotion, TwoSquarePawnMove, EnPassant.
	Piece    Piece
	From, To Square
	Captured Piece // NoPiece if this is not a capture
	IsCap    bool

	// Castle only.
	Color                              Color
	Side                               CastleSide
	KingFrom, KingTo, RookFrom, RookTo Square

	// Promotion only.
	PromoteTo PieceType

	// TwoSquarePawnMove only.
	EPTarget Square

	// EnPassant only: the square the captured pawn sits on, distinct from
	// To (the destination square is empty; the captured pawn is beside it).
	CaptureSquare Square
}

// NullMove is the sentinel "no move" value.
var NullMove = Move{Kind: NullKind}

// NewBasicMove builds a non-capturing or capturing ordinary move.
func NewBasicMove(piece Piece, from, to Square, captured Piece, isCap bool) Move {
	return Move{Kind: BasicKind, Piece: piece, From: from, To: to, Captured: captured, IsCap: isCap}
}

// NewCastle builds a castling move.
func NewCastle(color Color, side CastleSide, kingFrom, kingTo, rookFrom, rookTo Square) Move {
	return Move{
		Kind: CastleKind, Color: color, Side: side,
		KingFrom: kingFrom, KingTo: kingTo, RookFrom: rookFrom, RookTo: rookTo,
		From: kingFrom, To: kingTo,
	}
}

// NewPromotion builds a promotion move from its underlying basic move.
func NewPromotion(basic Move, promoteTo PieceType) Move {
	m := basic
	m.Kind = PromotionKind
	m.PromoteTo = promoteTo
	return m
}

// NewTwoSquarePawnMove builds a two-square pawn advance, recording the
// square the pawn skipped over as the en-passant target.
func NewTwoSquarePawnMove(basic Move, epTarget Square) Move {
	m := basic
	m.Kind = TwoSquarePawnKind
	m.EPTarget = epTarget
	return m
}

// NewEnPassant builds an en-passant capture. captureSquare is the square the
// captured pawn sits on, which differs from To.
func NewEnPassant(basic Move, captureSquare Square) Move {
	m := basic
	m.Kind = EnPassantKind
	m.CaptureSquare = captureSquare
	m.IsCap = true
	return m
}

// IsCapture reports whether this move captures a piece.
func (m Move) IsCapture() bool {
	return m.IsCap
}

// RelativeCaptureValue returns the captured piece's value minus the mover's
// value, used to order captures before quiet moves. Non-captures report
// ok=false and always sort below any capture.
func (m Move) RelativeCaptureValue() (value int16, ok bool) {
	if !m.IsCap {
		return 0, false
	}
	captured := m.Captured
	if m.Kind == EnPassantKind {
		captured = Piece{Color: m.Piece.Color.Swap(), Type: Pawn}
	}
	return captured.Value() - m.Piece.Value(), true
}

// Less orders moves by descending relative capture value for search move
// ordering: captures sort above quiet moves, and higher-value captures sort
// above lower-value ones.
func Less(a, b Move) bool {
	av, aok := a.RelativeCaptureValue()
	bv, bok := b.RelativeCaptureValue()
	switch {
	case aok && bok:
		return av > bv
	case aok && !bok:
		return true
	case !aok && bok:
		return false
	default:
		return false
	}
}

// String renders the move in UCI-ish long algebraic form (e.g. "e2e4",
// "e7e8q", "e1g1").
func (m Move) String() string {
	if m.Kind == NullKind {
		return "0000"
	}
	s := fmt.Sprintf("%s%s", m.From, m.To)
	if m.Kind == PromotionKind {
		s += string(m.PromoteTo.Char())
	}
	return s
}
