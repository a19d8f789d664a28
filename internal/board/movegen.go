package board

const (
	b1sq Square = 1
	c1sq Square = 2
	d1sq Square = 3
	f1sq Square = 5
	g1sq Square = 6
	b8sq Square = 57
	c8sq Square = 58
	d8sq Square = 59
	f8sq Square = 61
	g8sq Square = 62
)

type castlingInfo struct {
	KingFrom, KingTo, RookFrom, RookTo Square
	Transit                            Bitboard // squares between king and rook, must be empty
	KingPath                           Bitboard // squares the king crosses, must not be attacked
}

var castlingTable [2][2]castlingInfo

func init() {
	castlingTable[White][KingSide] = castlingInfo{
		KingFrom: e1, KingTo: g1sq, RookFrom: h1, RookTo: f1sq,
		Transit:  f1sq.Bitboard() | g1sq.Bitboard(),
		KingPath: f1sq.Bitboard() | g1sq.Bitboard(),
	}
	castlingTable[White][QueenSide] = castlingInfo{
		KingFrom: e1, KingTo: c1sq, RookFrom: a1, RookTo: d1sq,
		Transit:  b1sq.Bitboard() | c1sq.Bitboard() | d1sq.Bitboard(),
		KingPath: d1sq.Bitboard() | c1sq.Bitboard(),
	}
	castlingTable[Black][KingSide] = castlingInfo{
		KingFrom: e8, KingTo: g8sq, RookFrom: h8, RookTo: f8sq,
		Transit:  f8sq.Bitboard() | g8sq.Bitboard(),
		KingPath: f8sq.Bitboard() | g8sq.Bitboard(),
	}
	castlingTable[Black][QueenSide] = castlingInfo{
		KingFrom: e8, KingTo: c8sq, RookFrom: a8, RookTo: d8sq,
		Transit:  b8sq.Bitboard() | c8sq.Bitboard() | d8sq.Bitboard(),
		KingPath: d8sq.Bitboard() | c8sq.Bitboard(),
	}
}

// LegalMoves enumerates every legal move for the side to move, branching on
// how many pieces attack its king: two or more means only the king may
// move, exactly one restricts replies to king moves, captures of the
// checker, and interpositions, and zero allows the full pseudo-legal set
// minus whatever pins restrict.
func (p *Position) LegalMoves(state *GameState) []Move {
	us := state.SideToMove
	kingSq := p.KingSquare(us)
	ap := p.AttacksAndPins(kingSq, us)

	moves := make([]Move, 0, 48)
	p.kingMoves(&moves, kingSq, us)

	switch len(ap.Checks) {
	case 0:
		p.pinnedMoves(&moves, us, state, ap)
		p.unrestrictedMoves(&moves, us, state, ap.Pinned|kingSq.Bitboard())
		p.castlingMoves(&moves, us, state)
	case 1:
		check := ap.Checks[0]
		target := check.Path.Set(check.Attacker)
		excluded := ap.Pinned | kingSq.Bitboard()
		p.restrictedMoves(&moves, us, state, excluded, target)
	default:
		// Two or more attackers: only the king moves already generated above.
	}

	return moves
}

func (p *Position) kingMoves(moves *[]Move, kingSq Square, us Color) {
	dests := KingAttacks(kingSq) &^ p.Occupied(us)
	for dests != 0 {
		to := dests.PopLSB()
		if p.IsCheck(to, us) {
			continue
		}
		captured := p.PieceAt(to)
		*moves = append(*moves, NewBasicMove(Piece{Color: us, Type: King}, kingSq, to, captured, !captured.IsNone()))
	}
}

// pinnedMoves generates, for each pinned piece, only the moves that stay on
// its pin line (including capturing the pinner).
func (p *Position) pinnedMoves(moves *[]Move, us Color, state *GameState, ap AttacksAndPins) {
	kingSq := p.KingSquare(us)
	for _, pin := range ap.Pins {
		allowed := Between(kingSq, pin.Pinner).Set(pin.Pinner)
		piece := p.PieceAt(pin.Pinned)
		if piece.Type == Pawn {
			p.pawnMovesFrom(moves, us, state, pin.Pinned, func(Square) Bitboard { return allowed })
			continue
		}
		p.sliderOrKnightMovesFrom(moves, us, piece.Type, pin.Pinned, allowed)
	}
}

// unrestrictedMoves generates every pseudo-legal move for friendly pieces
// other than the king and any piece in `excluded` (already handled as
// pinned, or the king itself).
func (p *Position) unrestrictedMoves(moves *[]Move, us Color, state *GameState, excluded Bitboard) {
	for _, pt := range [4]PieceType{Knight, Bishop, Rook, Queen} {
		bb := p.Pieces(us, pt) &^ excluded
		for bb != 0 {
			from := bb.PopLSB()
			p.sliderOrKnightMovesFrom(moves, us, pt, from, Universe)
		}
	}
	pawns := p.Pieces(us, Pawn) &^ excluded
	for pawns != 0 {
		from := pawns.PopLSB()
		p.pawnMovesFrom(moves, us, state, from, func(Square) Bitboard { return Universe })
	}
}

// restrictedMoves generates moves for every non-pinned, non-king friendly
// piece, destinations limited to `target` (the checking piece's square
// union its interposable path).
func (p *Position) restrictedMoves(moves *[]Move, us Color, state *GameState, excluded Bitboard, target Bitboard) {
	for _, pt := range [4]PieceType{Knight, Bishop, Rook, Queen} {
		bb := p.Pieces(us, pt) &^ excluded
		for bb != 0 {
			from := bb.PopLSB()
			p.sliderOrKnightMovesFrom(moves, us, pt, from, target)
		}
	}
	pawns := p.Pieces(us, Pawn) &^ excluded
	for pawns != 0 {
		from := pawns.PopLSB()
		p.pawnMovesFrom(moves, us, state, from, func(Square) Bitboard { return target })
	}
}

func (p *Position) sliderOrKnightMovesFrom(moves *[]Move, us Color, pt PieceType, from Square, allowed Bitboard) {
	friendly := p.Occupied(us)
	enemy := p.Occupied(us.Swap())
	var attacks Bitboard
	switch pt {
	case Knight:
		attacks = KnightAttacks(from)
	case Bishop:
		attacks = BishopAttacks(from, friendly, enemy)
	case Rook:
		attacks = RookAttacks(from, friendly, enemy)
	case Queen:
		attacks = QueenAttacks(from, friendly, enemy)
	}
	dests := attacks &^ friendly & allowed
	for dests != 0 {
		to := dests.PopLSB()
		captured := p.PieceAt(to)
		*moves = append(*moves, NewBasicMove(Piece{Color: us, Type: pt}, from, to, captured, !captured.IsNone()))
	}
}

// pawnMovesFrom generates every move for the pawn on `from`: advances (with
// promotion expansion), captures, two-square pushes, and en passant.
// `allowed` restricts destinations; for en passant, a capture is legal if
// either its destination square or the captured pawn's square satisfies
// allowed, since removing the checking/pinning piece's victim is what
// matters, not necessarily where the capturing pawn lands.
func (p *Position) pawnMovesFrom(moves *[]Move, us Color, state *GameState, from Square, allowed func(Square) Bitboard) {
	occ := p.All()
	enemy := p.Occupied(us.Swap())
	promoRank := Rank8
	if us == Black {
		promoRank = Rank1
	}
	mask := allowed(from)

	advances := PawnAdvances(from, us, occ) & mask
	for advances != 0 {
		to := advances.PopLSB()
		basic := NewBasicMove(Piece{Color: us, Type: Pawn}, from, to, NoPiece, false)
		switch {
		case promoRank.IsSet(to):
			appendPromotions(moves, basic)
		case isTwoSquareAdvance(from, to):
			*moves = append(*moves, NewTwoSquarePawnMove(basic, twoSquareEPTarget(from, to)))
		default:
			*moves = append(*moves, basic)
		}
	}

	attackTargets := PawnAttacks(from, us)
	captures := attackTargets & enemy & mask
	for captures != 0 {
		to := captures.PopLSB()
		captured := p.PieceAt(to)
		basic := NewBasicMove(Piece{Color: us, Type: Pawn}, from, to, captured, true)
		if promoRank.IsSet(to) {
			appendPromotions(moves, basic)
		} else {
			*moves = append(*moves, basic)
		}
	}

	if state.EPTarget.Valid() && attackTargets.IsSet(state.EPTarget) {
		captureSquare := epCaptureSquare(state.EPTarget, us)
		if mask.IsSet(state.EPTarget) || mask.IsSet(captureSquare) {
			if !p.EnPassantIsIllegal(us, from, state.EPTarget, captureSquare) {
				basic := NewBasicMove(Piece{Color: us, Type: Pawn}, from, state.EPTarget, NoPiece, false)
				*moves = append(*moves, NewEnPassant(basic, captureSquare))
			}
		}
	}
}

func appendPromotions(moves *[]Move, basic Move) {
	for _, pt := range [4]PieceType{Queen, Rook, Bishop, Knight} {
		*moves = append(*moves, NewPromotion(basic, pt))
	}
}

func isTwoSquareAdvance(from, to Square) bool {
	diff := to.Rank() - from.Rank()
	return diff == 2 || diff == -2
}

func twoSquareEPTarget(from, to Square) Square {
	midRank := (from.Rank() + to.Rank()) / 2
	return NewSquare(from.File(), midRank)
}

func epCaptureSquare(epTarget Square, capturingColor Color) Square {
	if capturingColor == White {
		return NewSquare(epTarget.File(), epTarget.Rank()-1)
	}
	return NewSquare(epTarget.File(), epTarget.Rank()+1)
}

// castlingMoves generates castling moves for the side to move: transit
// squares must be empty and every square the king crosses, including its
// destination, must not be attacked. Only reachable from the no-check
// branch of LegalMoves, but self-contained so it is safe to call directly.
func (p *Position) castlingMoves(moves *[]Move, us Color, state *GameState) {
	kingSq := p.KingSquare(us)
	if p.IsCheck(kingSq, us) {
		return
	}
	occ := p.All()
	for _, side := range [2]CastleSide{KingSide, QueenSide} {
		if !state.CastleRights[us][side] {
			continue
		}
		info := castlingTable[us][side]
		if occ&info.Transit != 0 {
			continue
		}
		attacked := false
		path := info.KingPath
		for path != 0 {
			sq := path.PopLSB()
			if p.IsCheck(sq, us) {
				attacked = true
				break
			}
		}
		if attacked {
			continue
		}
		*moves = append(*moves, NewCastle(us, side, info.KingFrom, info.KingTo, info.RookFrom, info.RookTo))
	}
}
