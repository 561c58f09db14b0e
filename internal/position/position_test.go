package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/frankkopp/chesscore/internal/types"
)

func TestInitialPositionOccupancyConsistency(t *testing.T) {
	p := Initial()
	var white, black Bitboard
	for k := Pawn; k <= King; k++ {
		white |= p.PiecesBb(White, k)
		black |= p.PiecesBb(Black, k)
	}
	assert.Equal(t, white, p.OccupiedBb(White))
	assert.Equal(t, black, p.OccupiedBb(Black))
	assert.Equal(t, BbZero, white&black)
}

func TestInitialPositionPieceUniqueness(t *testing.T) {
	p := Initial()
	var seen Bitboard
	for pc := Piece(0); pc < PieceLength; pc++ {
		bb := p.Material(pc)
		assert.Equal(t, BbZero, bb&seen, "piece %d overlaps an already-placed piece", pc)
		seen |= bb
	}
}

func TestInitialPositionPieceAt(t *testing.T) {
	p := Initial()
	assert.Equal(t, MakePiece(White, Rook), p.PieceAt(A1))
	assert.Equal(t, MakePiece(Black, King), p.PieceAt(E8))
	assert.Equal(t, PieceNone, p.PieceAt(E4))
}

func TestApplyUndoRoundTrip(t *testing.T) {
	p := Initial()
	mv := NewMove(TraitQuiet, MakePiece(White, Pawn), E2, E4, PieceNone)
	next, delta := p.Apply(mv)
	assert.NotEqual(t, p.ZobristKey(), next.ZobristKey())
	back := Undo(next, delta)
	require.True(t, p.Equal(back))
}

func TestApplyUndoRoundTripCapture(t *testing.T) {
	material := [PieceLength]Bitboard{}
	material[MakePiece(White, King)] = E1.Bb()
	material[MakePiece(Black, King)] = E8.Bb()
	material[MakePiece(White, Knight)] = E4.Bb()
	material[MakePiece(Black, Bishop)] = F6.Bb()
	p := New(material, White, CastleNone, SqNone, 3, 10)

	mv := NewMove(TraitCapture, MakePiece(White, Knight), E4, F6, MakePiece(Black, Bishop))
	next, delta := p.Apply(mv)
	assert.Equal(t, PieceNone, next.PieceAt(E4))
	assert.Equal(t, MakePiece(White, Knight), next.PieceAt(F6))
	assert.Equal(t, uint16(0), next.HalfMoveClock())

	back := Undo(next, delta)
	require.True(t, p.Equal(back))
}

func TestApplyEnPassantRemovesCorrectPawn(t *testing.T) {
	material := [PieceLength]Bitboard{}
	material[MakePiece(White, King)] = E1.Bb()
	material[MakePiece(Black, King)] = E8.Bb()
	material[MakePiece(White, Pawn)] = B5.Bb()
	material[MakePiece(Black, Pawn)] = A5.Bb()
	p := New(material, White, CastleNone, A6, 0, 10)

	mv := NewMove(TraitEnPassant|TraitCapture, MakePiece(White, Pawn), B5, A6, MakePiece(Black, Pawn))
	next, delta := p.Apply(mv)
	assert.Equal(t, PieceNone, next.PieceAt(A5), "captured pawn must be removed from a5, not a6")
	assert.Equal(t, MakePiece(White, Pawn), next.PieceAt(A6))

	back := Undo(next, delta)
	require.True(t, p.Equal(back))
	assert.Equal(t, MakePiece(Black, Pawn), back.PieceAt(A5))
}

func TestApplyCastleMovesRookToo(t *testing.T) {
	material := [PieceLength]Bitboard{}
	material[MakePiece(White, King)] = E1.Bb()
	material[MakePiece(White, Rook)] = H1.Bb() | A1.Bb()
	material[MakePiece(Black, King)] = E8.Bb()
	p := New(material, White, CastleWK|CastleWQ, SqNone, 0, 1)

	mv := NewMove(TraitCastle, MakePiece(White, King), E1, G1, PieceNone)
	next, delta := p.Apply(mv)
	assert.Equal(t, MakePiece(White, King), next.PieceAt(G1))
	assert.Equal(t, MakePiece(White, Rook), next.PieceAt(F1))
	assert.Equal(t, PieceNone, next.PieceAt(H1))
	assert.False(t, next.Castling().Has(CastleWK))
	assert.False(t, next.Castling().Has(CastleWQ))

	back := Undo(next, delta)
	require.True(t, p.Equal(back))
}

func TestRookMoveClearsOwnCastlingRight(t *testing.T) {
	material := [PieceLength]Bitboard{}
	material[MakePiece(White, King)] = E1.Bb()
	material[MakePiece(White, Rook)] = A1.Bb()
	material[MakePiece(Black, King)] = E8.Bb()
	p := New(material, White, CastleWK|CastleWQ, SqNone, 0, 1)

	mv := NewMove(TraitQuiet, MakePiece(White, Rook), A1, A4, PieceNone)
	next, _ := p.Apply(mv)
	assert.False(t, next.Castling().Has(CastleWQ))
	assert.True(t, next.Castling().Has(CastleWK))
}

func TestIsAttackedKnightSymmetryTrick(t *testing.T) {
	material := [PieceLength]Bitboard{}
	material[MakePiece(White, King)] = E1.Bb()
	material[MakePiece(Black, King)] = E8.Bb()
	material[MakePiece(Black, Knight)] = F6.Bb()
	p := New(material, White, CastleNone, SqNone, 0, 1)
	assert.True(t, p.IsAttacked(E4, Black))
	assert.False(t, p.IsAttacked(E5, Black))
}
