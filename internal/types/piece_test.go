package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakePieceRoundTrip(t *testing.T) {
	for c := White; c <= Black; c++ {
		for k := Pawn; k <= King; k++ {
			pc := MakePiece(c, k)
			assert.Equal(t, c, pc.Color())
			assert.Equal(t, k, pc.Kind())
			assert.True(t, pc.IsValid())
		}
	}
}

func TestMakePieceNoneKind(t *testing.T) {
	assert.Equal(t, PieceNone, MakePiece(White, KindNone))
}

func TestPieceStringCase(t *testing.T) {
	assert.Equal(t, "N", MakePiece(White, Knight).String())
	assert.Equal(t, "n", MakePiece(Black, Knight).String())
	assert.Equal(t, "-", PieceNone.String())
}

func TestPackedPieceRoundTrip(t *testing.T) {
	for c := White; c <= Black; c++ {
		for k := Pawn; k <= King; k++ {
			pc := MakePiece(c, k)
			assert.Equal(t, pc, pc.Pack().Unpack())
		}
	}
	assert.Equal(t, PieceNone, PackedNone.Unpack())
}
