// Package notation converts between FEN text records and the board
// package's Position/GameState pair, keeping that text-format boundary
// separate from the core spatial and game-state representation.
package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ardenlabs/chesscore/internal/board"
)

// StartFEN is the FEN record for the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Parse parses a FEN record into a Position and GameState. It returns
// board.ErrInvalidPosition if the record is syntactically well formed but
// describes an illegal position.
func Parse(fen string) (*board.Position, *board.GameState, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, nil, fmt.Errorf("notation: need at least 4 FEN fields, got %d", len(fields))
	}

	pos := board.NewEmptyPosition()
	if err := parsePlacement(pos, fields[0]); err != nil {
		return nil, nil, err
	}

	state := &board.GameState{EPTarget: board.NoSquare, FullmoveNumber: 1}

	switch fields[1] {
	case "w":
		state.SideToMove = board.White
	case "b":
		state.SideToMove = board.Black
	default:
		return nil, nil, fmt.Errorf("notation: invalid side to move %q", fields[1])
	}

	if err := parseCastleRights(state, fields[2]); err != nil {
		return nil, nil, err
	}

	if fields[3] != "-" {
		sq, err := board.ParseSquare(fields[3])
		if err != nil {
			return nil, nil, fmt.Errorf("notation: invalid en-passant square %q", fields[3])
		}
		state.EPTarget = sq
	}

	if len(fields) > 4 {
		clock, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, nil, fmt.Errorf("notation: invalid halfmove clock %q", fields[4])
		}
		state.HalfmoveClock = clock
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, nil, fmt.Errorf("notation: invalid fullmove number %q", fields[5])
		}
		state.FullmoveNumber = n
	}

	if err := pos.Validate(); err != nil {
		return nil, nil, err
	}

	return pos, state, nil
}

func parsePlacement(pos *board.Position, placement string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != 8 {
		return fmt.Errorf("notation: need 8 ranks, got %d", len(rows))
	}
	for i, row := range rows {
		rank := 7 - i
		file := 0
		for _, c := range row {
			if file > 7 {
				return fmt.Errorf("notation: too many squares in rank %d", rank+1)
			}
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece, ok := board.PieceFromChar(byte(c))
			if !ok {
				return fmt.Errorf("notation: invalid piece character %q", c)
			}
			pos.Insert(board.NewSquare(file, rank), piece)
			file++
		}
		if file != 8 {
			return fmt.Errorf("notation: rank %d does not cover 8 files", rank+1)
		}
	}
	return nil
}

func parseCastleRights(state *board.GameState, field string) error {
	if field == "-" {
		return nil
	}
	for _, c := range field {
		switch c {
		case 'K':
			state.CastleRights[board.White][board.KingSide] = true
		case 'Q':
			state.CastleRights[board.White][board.QueenSide] = true
		case 'k':
			state.CastleRights[board.Black][board.KingSide] = true
		case 'q':
			state.CastleRights[board.Black][board.QueenSide] = true
		default:
			return fmt.Errorf("notation: invalid castling character %q", c)
		}
	}
	return nil
}

// Encode serializes pos and state back into a single FEN string.
func Encode(pos *board.Position, state *board.GameState) string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := board.NewSquare(file, rank)
			piece := pos.PieceAt(sq)
			if piece.IsNone() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(piece.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if state.SideToMove == board.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(castleRightsString(state))

	sb.WriteByte(' ')
	sb.WriteString(state.EPTarget.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(state.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(state.FullmoveNumber))

	return sb.String()
}

func castleRightsString(state *board.GameState) string {
	var sb strings.Builder
	if state.CastleRights[board.White][board.KingSide] {
		sb.WriteByte('K')
	}
	if state.CastleRights[board.White][board.QueenSide] {
		sb.WriteByte('Q')
	}
	if state.CastleRights[board.Black][board.KingSide] {
		sb.WriteByte('k')
	}
	if state.CastleRights[board.Black][board.QueenSide] {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
