// Package fen is the external collaborator of spec.md §6: it turns a
// Forsyth-Edwards Notation string into a position.Position and back.
// Deliberately isolated from internal/movegen and internal/attacks — the
// core never parses text, per spec.md §1/§7.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/frankkopp/chesscore/internal/position"
	. "github.com/frankkopp/chesscore/internal/types"
)

// StartPosition is the standard game's starting FEN.
const StartPosition = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseError is the structured diagnostic spec.md §7 requires for
// malformed FEN: the offending character and its byte offset into the
// original input.
type ParseError struct {
	Offset int
	Char   byte
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("fen: %s at byte %d (%q)", e.Msg, e.Offset, string(e.Char))
}

// Highlight renders the input with a caret under the offending byte, for
// the "diagnostic showing the input with the bad character highlighted"
// behaviour spec.md §7 asks of callers.
func (e *ParseError) Highlight(input string) string {
	var sb strings.Builder
	sb.WriteString(input)
	sb.WriteByte('\n')
	for i := 0; i < e.Offset; i++ {
		sb.WriteByte(' ')
	}
	sb.WriteByte('^')
	return sb.String()
}

func errAt(input string, offset int, msg string) error {
	var c byte
	if offset >= 0 && offset < len(input) {
		c = input[offset]
	}
	return &ParseError{Offset: offset, Char: c, Msg: msg}
}

var pieceFromFenChar = map[byte]struct {
	c Color
	k Kind
}{
	'P': {White, Pawn}, 'N': {White, Knight}, 'B': {White, Bishop},
	'R': {White, Rook}, 'Q': {White, Queen}, 'K': {White, King},
	'p': {Black, Pawn}, 'n': {Black, Knight}, 'b': {Black, Bishop},
	'r': {Black, Rook}, 'q': {Black, Queen}, 'k': {Black, King},
}

// Parse consumes the six space-separated FEN fields per spec.md §6 and
// produces a Position. Trailing fields (half-move clock, full-move
// number) default to 0 and 1 when absent, matching common FEN leniency.
func Parse(input string) (position.Position, error) {
	trimmed := strings.TrimSpace(input)
	fields := strings.Fields(trimmed)
	if len(fields) < 1 {
		return position.Position{}, errAt(input, 0, "empty FEN")
	}

	material, boardLen, err := parseBoard(input, fields[0])
	if err != nil {
		return position.Position{}, err
	}
	offset := boardLen

	stm := White
	if len(fields) >= 2 {
		switch fields[1] {
		case "w":
			stm = White
		case "b":
			stm = Black
		default:
			return position.Position{}, errAt(input, offset+1, "side to move must be 'w' or 'b'")
		}
	}

	castling := CastleNone
	if len(fields) >= 3 && fields[2] != "-" {
		for _, c := range []byte(fields[2]) {
			switch c {
			case 'K':
				castling |= CastleWK
			case 'Q':
				castling |= CastleWQ
			case 'k':
				castling |= CastleBK
			case 'q':
				castling |= CastleBQ
			default:
				return position.Position{}, errAt(input, strings.Index(input, fields[2]), "invalid castling rights character")
			}
		}
	}

	enPassant := SqNone
	if len(fields) >= 4 && fields[3] != "-" {
		sq, ok := ParseSquare(fields[3])
		if !ok {
			return position.Position{}, errAt(input, strings.Index(input, fields[3]), "invalid en-passant square")
		}
		enPassant = sq
	}

	halfMoves := 0
	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return position.Position{}, errAt(input, strings.Index(input, fields[4]), "half-move clock must be a non-negative integer")
		}
		halfMoves = n
	}

	fullMoves := 1
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return position.Position{}, errAt(input, strings.Index(input, fields[5]), "full-move number must be a positive integer")
		}
		fullMoves = n
	}

	return position.New(material, stm, castling, enPassant, uint16(halfMoves), uint16(fullMoves)), nil
}

// parseBoard parses the board field, filling rank 8 first then down to
// rank 1, each rank left-to-right, per spec.md §6.
func parseBoard(input, board string) ([PieceLength]Bitboard, int, error) {
	var material [PieceLength]Bitboard
	rank := Rank8
	file := FileA

	for i := 0; i < len(board); i++ {
		c := board[i]
		switch {
		case c == '/':
			if file != 8 {
				return material, i, errAt(input, i, "rank ended with wrong number of squares")
			}
			if rank == Rank1 {
				return material, i, errAt(input, i, "too many ranks")
			}
			rank--
			file = FileA
		case c >= '1' && c <= '8':
			file += File(c - '0')
			if file > 8 {
				return material, i, errAt(input, i, "rank overflows past file h")
			}
		default:
			pc, ok := pieceFromFenChar[c]
			if !ok {
				return material, i, errAt(input, i, "invalid piece character")
			}
			if file >= 8 {
				return material, i, errAt(input, i, "rank overflows past file h")
			}
			sq := SquareOf(file, rank)
			material[MakePiece(pc.c, pc.k)] = material[MakePiece(pc.c, pc.k)].Set(sq)
			file++
		}
	}
	if rank != Rank1 || file != 8 {
		return material, len(board), errAt(input, len(board), "board field does not cover all 64 squares")
	}
	return material, len(board), nil
}

// Emit renders p as a FEN string, the inverse of Parse.
func Emit(p position.Position) string {
	var sb strings.Builder
	for rank := Rank8; ; rank-- {
		empty := 0
		for file := FileA; file <= FileH; file++ {
			sq := SquareOf(file, rank)
			pc := p.PieceAt(sq)
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank == Rank1 {
			break
		}
		sb.WriteByte('/')
	}
	sb.WriteByte(' ')
	sb.WriteString(p.SideToMove().String())
	sb.WriteByte(' ')
	sb.WriteString(p.Castling().String())
	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant().String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(int(p.HalfMoveClock())))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(int(p.FullMoveNumber())))
	return sb.String()
}
