package board

// Position is the board's spatial state: piece placement as bitboards plus
// a dense piece-at map. It carries no notion of whose turn it is, castling
// rights, or move clocks — see GameState for that.
type Position struct {
	pieceAt  [64]Piece
	occupied [2]Bitboard
	pieces   [2][6]Bitboard
	king     [2]Bitboard
}

// NewEmptyPosition returns a Position with no pieces placed.
func NewEmptyPosition() *Position {
	p := &Position{}
	for sq := Square(0); sq < 64; sq++ {
		p.pieceAt[sq] = NoPiece
	}
	return p
}

// PieceAt returns the piece on sq, or NoPiece if sq is empty.
func (p *Position) PieceAt(sq Square) Piece {
	return p.pieceAt[sq]
}

// Insert places piece on an empty sq. For use at the position-ingest
// boundary (FEN parsing and similar); move application goes through
// Apply/Unapply instead.
func (p *Position) Insert(sq Square, piece Piece) {
	p.insert(sq, piece)
}

// Occupied returns the occupancy bitboard for color c.
func (p *Position) Occupied(c Color) Bitboard {
	return p.occupied[c]
}

// All returns the combined occupancy of both colors.
func (p *Position) All() Bitboard {
	return p.occupied[White] | p.occupied[Black]
}

// Pieces returns the bitboard of pieces of type pt and color c.
func (p *Position) Pieces(c Color, pt PieceType) Bitboard {
	return p.pieces[c][pt]
}

// KingSquare returns the single square occupied by c's king.
func (p *Position) KingSquare(c Color) Square {
	return p.king[c].LSB()
}

// insert places piece on sq. sq must currently be empty. Inserting a king
// replaces that color's single-bit king bitboard rather than adding to it.
func (p *Position) insert(sq Square, piece Piece) {
	bb := sq.Bitboard()
	p.pieceAt[sq] = piece
	p.occupied[piece.Color] |= bb
	p.pieces[piece.Color][piece.Type] |= bb
	if piece.Type == King {
		p.king[piece.Color] = bb
	}
}

// remove clears sq and returns the piece that was there, if any. King
// removals never clear the king bitboard: a legal position's make/unmake
// path never removes a king outright (captures and promotions never
// target a king).
func (p *Position) remove(sq Square) (Piece, bool) {
	piece := p.pieceAt[sq]
	if piece.IsNone() {
		return NoPiece, false
	}
	bb := sq.Bitboard()
	p.pieceAt[sq] = NoPiece
	p.occupied[piece.Color] &^= bb
	p.pieces[piece.Color][piece.Type] &^= bb
	if piece.Type == King {
		return piece, true
	}
	return piece, true
}

// move relocates the piece on `from` to `to`. `to` must be empty.
func (p *Position) move(from, to Square) error {
	piece, ok := p.remove(from)
	if !ok {
		return ErrMissingPiece
	}
	p.insert(to, piece)
	return nil
}

// Apply applies m to the position, dispatching on its Kind. It returns the
// moved piece and, for captures, the captured piece.
func (p *Position) Apply(m Move) (moved Piece, captured Piece, hadCapture bool, err error) {
	switch m.Kind {
	case BasicKind, TwoSquarePawnKind:
		moved, ok := p.remove(m.From)
		if !ok {
			return NoPiece, NoPiece, false, ErrMissingPiece
		}
		if m.IsCap {
			captured, _ = p.remove(m.To)
		}
		p.insert(m.To, moved)
		return moved, captured, m.IsCap, nil

	case PromotionKind:
		moved, ok := p.remove(m.From)
		if !ok {
			return NoPiece, NoPiece, false, ErrMissingPiece
		}
		if m.IsCap {
			captured, _ = p.remove(m.To)
		}
		p.insert(m.To, Piece{Color: moved.Color, Type: m.PromoteTo})
		return moved, captured, m.IsCap, nil

	case EnPassantKind:
		moved, ok := p.remove(m.From)
		if !ok {
			return NoPiece, NoPiece, false, ErrMissingPiece
		}
		captured, ok := p.remove(m.CaptureSquare)
		if !ok {
			return NoPiece, NoPiece, false, ErrMissingPiece
		}
		p.insert(m.To, moved)
		return moved, captured, true, nil

	case CastleKind:
		king, ok := p.remove(m.KingFrom)
		if !ok {
			return NoPiece, NoPiece, false, ErrMissingPiece
		}
		rook, ok := p.remove(m.RookFrom)
		if !ok {
			return NoPiece, NoPiece, false, ErrMissingPiece
		}
		p.insert(m.KingTo, king)
		p.insert(m.RookTo, rook)
		return king, NoPiece, false, nil

	default:
		return NoPiece, NoPiece, false, nil
	}
}

// Unapply is the exact inverse of Apply: it restores the captured piece (if
// any) at its original square, which for an en-passant capture is not the
// destination square.
func (p *Position) Unapply(m Move, captured Piece, hadCapture bool) error {
	switch m.Kind {
	case BasicKind, TwoSquarePawnKind:
		moved, ok := p.remove(m.To)
		if !ok {
			return ErrMissingPiece
		}
		p.insert(m.From, moved)
		if hadCapture {
			p.insert(m.To, captured)
		}
		return nil

	case PromotionKind:
		promoted, ok := p.remove(m.To)
		if !ok {
			return ErrMissingPiece
		}
		p.insert(m.From, Piece{Color: promoted.Color, Type: Pawn})
		if hadCapture {
			p.insert(m.To, captured)
		}
		return nil

	case EnPassantKind:
		moved, ok := p.remove(m.To)
		if !ok {
			return ErrMissingPiece
		}
		p.insert(m.From, moved)
		p.insert(m.CaptureSquare, captured)
		return nil

	case CastleKind:
		king, ok := p.remove(m.KingTo)
		if !ok {
			return ErrMissingPiece
		}
		rook, ok := p.remove(m.RookTo)
		if !ok {
			return ErrMissingPiece
		}
		p.insert(m.KingFrom, king)
		p.insert(m.RookFrom, rook)
		return nil

	default:
		return nil
	}
}

// IsCheck reports whether any enemy piece attacks kingSquare. The moving
// side's own king is always excluded from the blocker set, so a caller
// testing a hypothetical king destination need not mutate occupancy first.
func (p *Position) IsCheck(kingSquare Square, kingColor Color) bool {
	enemy := kingColor.Swap()

	if p.pieces[enemy][Knight]&KnightAttacks(kingSquare) != 0 {
		return true
	}
	if p.pieces[enemy][Pawn]&PawnAttacks(kingSquare, kingColor) != 0 {
		return true
	}
	if p.pieces[enemy][King]&KingAttacks(kingSquare) != 0 {
		return true
	}

	occ := p.All() &^ p.king[kingColor]

	if diagonalMask[kingSquare]&(p.pieces[enemy][Bishop]|p.pieces[enemy][Queen]) != 0 {
		diagAttackers := p.pieces[enemy][Bishop] | p.pieces[enemy][Queen]
		for _, d := range diagonalDirections {
			if firstBlocker(kingSquare, d, occ, &diagAttackers) {
				return true
			}
		}
	}
	if orthogonalMask[kingSquare]&(p.pieces[enemy][Rook]|p.pieces[enemy][Queen]) != 0 {
		orthAttackers := p.pieces[enemy][Rook] | p.pieces[enemy][Queen]
		for _, d := range orthogonalDirections {
			if firstBlocker(kingSquare, d, occ, &orthAttackers) {
				return true
			}
		}
	}
	return false
}

// firstBlocker walks rays[sq][d] against occ and reports whether the first
// blocker encountered belongs to attackers.
func firstBlocker(sq Square, d Direction, occ Bitboard, attackers *Bitboard) bool {
	blockers := rays[sq][d] & occ
	if blockers.None() {
		return false
	}
	var blocker Square
	if d.positive() {
		blocker = blockers.LSB()
	} else {
		blocker = blockers.MSB()
	}
	return attackers.IsSet(blocker)
}

func nearestBlocker(blockers Bitboard, d Direction) Square {
	if d.positive() {
		return blockers.LSB()
	}
	return blockers.MSB()
}

// Check describes one attacker of a square: the attacking square and the
// bitboard of squares a blocker could interpose on, empty for knight/pawn
// attackers which have no interposable path.
type Check struct {
	Attacker Square
	Path     Bitboard
}

// Pin describes one pinned friendly piece: the pinned square, the pinning
// enemy square, and the bitboard of squares between them. The pinned piece
// may only move within Path ∪ {Pinner}.
type Pin struct {
	Pinned Square
	Pinner Square
	Path   Bitboard
}

// AttacksAndPins bundles every attacker and pin discovered in one pass.
type AttacksAndPins struct {
	Checks    []Check
	Pins      []Pin
	Attackers Bitboard // union of every attacking square
	Pinned    Bitboard // union of every pinned friendly square
	Pinners   Bitboard // union of every pinning enemy square
}

// AttacksAndPins classifies, in one pass along each of the 8 sliding
// directions from target plus the knight/pawn masks, every attacker and pin
// bearing on target for the side `color`.
func (p *Position) AttacksAndPins(target Square, color Color) AttacksAndPins {
	enemy := color.Swap()
	var result AttacksAndPins

	knightAttackers := p.pieces[enemy][Knight] & KnightAttacks(target)
	for knightAttackers != 0 {
		sq := knightAttackers.PopLSB()
		result.Checks = append(result.Checks, Check{Attacker: sq})
		result.Attackers = result.Attackers.Set(sq)
	}

	pawnAttackers := p.pieces[enemy][Pawn] & PawnAttacks(target, color)
	for pawnAttackers != 0 {
		sq := pawnAttackers.PopLSB()
		result.Checks = append(result.Checks, Check{Attacker: sq})
		result.Attackers = result.Attackers.Set(sq)
	}

	occ := p.All()
	friendly := p.Occupied(color)

	for d := Direction(0); d < numDirections; d++ {
		ray := rays[target][d]
		blockers := ray & occ
		if blockers.None() {
			continue
		}
		first := nearestBlocker(blockers, d)

		var sliders Bitboard
		isDiagonal := d == NorthEast || d == SouthEast || d == SouthWest || d == NorthWest
		if isDiagonal {
			sliders = p.pieces[enemy][Bishop] | p.pieces[enemy][Queen]
		} else {
			sliders = p.pieces[enemy][Rook] | p.pieces[enemy][Queen]
		}

		if sliders.IsSet(first) {
			path := Between(target, first)
			result.Checks = append(result.Checks, Check{Attacker: first, Path: path})
			result.Attackers = result.Attackers.Set(first)
			continue
		}
		if !friendly.IsSet(first) {
			continue
		}
		beyond := rays[first][d] & occ
		if beyond.None() {
			continue
		}
		second := nearestBlocker(beyond, d)
		if sliders.IsSet(second) {
			result.Pins = append(result.Pins, Pin{Pinned: first, Pinner: second, Path: Between(first, second)})
			result.Pinned = result.Pinned.Set(first)
			result.Pinners = result.Pinners.Set(second)
		}
	}

	return result
}

// EnPassantIsIllegal detects the rare case where capturing en passant would
// expose the capturing side's king: both the capturing pawn (from) and the
// captured pawn (captureSquare) sit on a line to the king that an enemy
// rook/queen (orthogonal) or bishop/queen (diagonal) would complete once
// both pawns are removed.
func (p *Position) EnPassantIsIllegal(color Color, from, to, captureSquare Square) bool {
	king := p.KingSquare(color)
	enemy := color.Swap()

	for _, d := range orthogonalDirections {
		ray := rays[king][d]
		if !ray.IsSet(captureSquare) {
			continue
		}
		occ := p.All().Clear(captureSquare).Clear(from)
		blockers := ray & occ
		if blockers.None() {
			continue
		}
		blocker := nearestBlocker(blockers, d)
		if (p.pieces[enemy][Rook] | p.pieces[enemy][Queen]).IsSet(blocker) {
			return true
		}
	}

	for _, d := range diagonalDirections {
		ray := rays[king][d]
		if !ray.IsSet(captureSquare) {
			continue
		}
		occ := p.All().Clear(captureSquare)
		blockers := ray & occ
		if blockers.None() {
			continue
		}
		blocker := nearestBlocker(blockers, d)
		if (p.pieces[enemy][Bishop] | p.pieces[enemy][Queen]).IsSet(blocker) {
			return true
		}
	}

	return false
}

// Validate checks the structural invariants a legal Position must satisfy:
// exactly one king per color and no pawns on the first or last rank.
func (p *Position) Validate() error {
	if p.pieces[White][King].PopCount() != 1 || p.pieces[Black][King].PopCount() != 1 {
		return ErrInvalidPosition
	}
	if (p.pieces[White][Pawn]|p.pieces[Black][Pawn])&(Rank1|Rank8) != 0 {
		return ErrInvalidPosition
	}
	if p.occupied[White]&p.occupied[Black] != 0 {
		return ErrInvalidPosition
	}
	return nil
}
