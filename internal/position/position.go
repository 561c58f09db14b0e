// Package position implements the board state (spec.md §3 Position) and
// the move-application lens (spec.md §4.8). Construction from a FEN
// string is the job of the external internal/fen package; this package
// never parses text.
package position

import (
	"fmt"

	"github.com/frankkopp/chesscore/internal/assert"
	"github.com/frankkopp/chesscore/internal/attacks"
	. "github.com/frankkopp/chesscore/internal/types"
)

// Position is the full board state: MaterialLayer, OccupancyLayer,
// side to move, castling rights, en-passant target, and the two move
// clocks. Treated as value-semantic: Apply returns a new Position and
// never mutates the receiver.
type Position struct {
	material  [PieceLength]Bitboard
	occupancy [ColorLength]Bitboard

	sideToMove Color
	castling   CastlingRights
	enPassant  Square

	halfMoveClock  uint16
	fullMoveNumber uint16

	zobrist uint64
}

// New builds a Position from its raw fields, recomputing OccupancyLayer
// and the Zobrist key. This is the constructor the fen package (and any
// other external collaborator) uses.
func New(material [PieceLength]Bitboard, sideToMove Color, castling CastlingRights, enPassant Square, halfMoveClock, fullMoveNumber uint16) Position {
	p := Position{
		material:       material,
		sideToMove:     sideToMove,
		castling:       castling,
		enPassant:      enPassant,
		halfMoveClock:  halfMoveClock,
		fullMoveNumber: fullMoveNumber,
	}
	p.recomputeOccupancy()
	p.zobrist = computeZobrist(p.material, p.sideToMove, p.castling, p.enPassant)
	if assert.DEBUG {
		assert.Assert(p.checkOccupancyConsistency(), "Position.New: occupancy/material mismatch")
		assert.Assert(p.checkPieceUniqueness(), "Position.New: two pieces on one square")
	}
	return p
}

func (p *Position) recomputeOccupancy() {
	p.occupancy[White] = BbZero
	p.occupancy[Black] = BbZero
	for k := Pawn; k <= King; k++ {
		p.occupancy[White] |= p.material[MakePiece(White, k)]
		p.occupancy[Black] |= p.material[MakePiece(Black, k)]
	}
}

func (p *Position) checkOccupancyConsistency() bool {
	var white, black Bitboard
	for k := Pawn; k <= King; k++ {
		white |= p.material[MakePiece(White, k)]
		black |= p.material[MakePiece(Black, k)]
	}
	return white == p.occupancy[White] && black == p.occupancy[Black] && white&black == BbZero
}

func (p *Position) checkPieceUniqueness() bool {
	var seen Bitboard
	for pc := Piece(0); pc < PieceLength; pc++ {
		bb := p.material[pc]
		if bb&seen != BbZero {
			return false
		}
		seen |= bb
	}
	return true
}

// Initial returns the standard chess starting position.
func Initial() Position {
	var m [PieceLength]Bitboard
	place := func(c Color, k Kind, squares ...Square) {
		for _, sq := range squares {
			m[MakePiece(c, k)] = m[MakePiece(c, k)].Set(sq)
		}
	}
	place(White, Pawn, A2, B2, C2, D2, E2, F2, G2, H2)
	place(White, Rook, A1, H1)
	place(White, Knight, B1, G1)
	place(White, Bishop, C1, F1)
	place(White, Queen, D1)
	place(White, King, E1)
	place(Black, Pawn, A7, B7, C7, D7, E7, F7, G7, H7)
	place(Black, Rook, A8, H8)
	place(Black, Knight, B8, G8)
	place(Black, Bishop, C8, F8)
	place(Black, Queen, D8)
	place(Black, King, E8)
	return New(m, White, CastleAll, SqNone, 0, 1)
}

// Material returns the bitboard for a single 0..11-encoded piece.
func (p Position) Material(pc Piece) Bitboard { return p.material[pc] }

// PiecesBb returns the bitboard of pieces of the given color and kind.
func (p Position) PiecesBb(c Color, k Kind) Bitboard { return p.material[MakePiece(c, k)] }

// OccupiedBb returns every square occupied by color c.
func (p Position) OccupiedBb(c Color) Bitboard { return p.occupancy[c] }

// OccupiedAll returns every occupied square on the board.
func (p Position) OccupiedAll() Bitboard { return p.occupancy[White] | p.occupancy[Black] }

// SideToMove returns the color to move.
func (p Position) SideToMove() Color { return p.sideToMove }

// Castling returns the current castling rights mask.
func (p Position) Castling() CastlingRights { return p.castling }

// EnPassant returns the en-passant target square, or SqNone.
func (p Position) EnPassant() Square { return p.enPassant }

// HalfMoveClock returns plies since the last pawn move or capture.
func (p Position) HalfMoveClock() uint16 { return p.halfMoveClock }

// FullMoveNumber returns the full-move counter, incrementing after Black's move.
func (p Position) FullMoveNumber() uint16 { return p.fullMoveNumber }

// ZobristKey returns the position hash, recomputed from the full board
// state by New, Apply and Undo.
func (p Position) ZobristKey() uint64 { return p.zobrist }

// PieceAt scans the twelve material bitboards and returns the unique
// occupant of sq, or PieceNone.
func (p Position) PieceAt(sq Square) Piece {
	for pc := Piece(0); pc < PieceLength; pc++ {
		if p.material[pc].Test(sq) {
			return pc
		}
	}
	return PieceNone
}

// IsAttacked reports whether any piece of color by attacks sq. Uses the
// symmetry trick of spec.md §4.6: query the attack pattern as if standing
// on sq, intersected with the attacker's actual pieces.
func (p Position) IsAttacked(sq Square, by Color) bool {
	occ := p.OccupiedAll()
	if attacks.Knight(sq)&p.PiecesBb(by, Knight) != BbZero {
		return true
	}
	if attacks.King(sq)&p.PiecesBb(by, King) != BbZero {
		return true
	}
	if attacks.Bishop(sq, occ)&(p.PiecesBb(by, Bishop)|p.PiecesBb(by, Queen)) != BbZero {
		return true
	}
	if attacks.Rook(sq, occ)&(p.PiecesBb(by, Rook)|p.PiecesBb(by, Queen)) != BbZero {
		return true
	}
	// Pawn attacks are asymmetric: use the defender's pawn-attack pattern
	// from sq, standing in for "which squares would a pawn of the
	// attacked side on sq be attacked from".
	if attacks.Pawn(sq, by.Opp())&p.PiecesBb(by, Pawn) != BbZero {
		return true
	}
	return false
}

// KingSquare returns the square of color c's king, or SqNone if absent
// (only reachable from a malformed position; well-formed FENs always
// have exactly one king per side).
func (p Position) KingSquare(c Color) Square {
	bb := p.PiecesBb(c, King)
	if bb == BbZero {
		return SqNone
	}
	return bb.Lsb()
}

// Equal reports whether two positions describe the same game state. Used
// by the apply/undo round-trip tests (spec.md §8 property 6).
func (p Position) Equal(o Position) bool {
	if p.sideToMove != o.sideToMove || p.castling != o.castling || p.enPassant != o.enPassant {
		return false
	}
	if p.halfMoveClock != o.halfMoveClock || p.fullMoveNumber != o.fullMoveNumber {
		return false
	}
	for pc := Piece(0); pc < PieceLength; pc++ {
		if p.material[pc] != o.material[pc] {
			return false
		}
	}
	return true
}

func (p Position) String() string {
	return fmt.Sprintf("Position{stm:%s castling:%s ep:%s half:%d full:%d zobrist:%016x}",
		p.sideToMove, p.castling, p.enPassant, p.halfMoveClock, p.fullMoveNumber, p.zobrist)
}
