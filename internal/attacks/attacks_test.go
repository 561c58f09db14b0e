package attacks

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/frankkopp/chesscore/internal/types"
)

// TestMagicIndexBounds is spec.md §8's "magic index bounds" scenario:
// every square's table fits bishop ≤ 512, rook ≤ 4096 entries.
func TestMagicIndexBounds(t *testing.T) {
	for sq := Square(0); sq < 64; sq++ {
		assert.LessOrEqual(t, BishopIndexBound(sq), 512, "sq=%s", sq)
		assert.LessOrEqual(t, RookIndexBound(sq), 4096, "sq=%s", sq)
	}
}

// TestMagicCorrectness is spec.md §8 property 3: the magic query must
// match on-the-fly ray generation for every sampled occupancy.
func TestMagicCorrectness(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for sq := Square(0); sq < 64; sq++ {
		mask := BishopMask(sq)
		bits := mask.Squares()
		for i := 0; i < 1000; i++ {
			occ := randomSubset(rng, bits)
			require.Equal(t, OnTheFly(Bishop, sq, occ), Bishop(sq, occ), "bishop sq=%s occ=%x", sq, occ)
		}
		mask = RookMask(sq)
		bits = mask.Squares()
		for i := 0; i < 1000; i++ {
			occ := randomSubset(rng, bits)
			require.Equal(t, OnTheFly(Rook, sq, occ), Rook(sq, occ), "rook sq=%s occ=%x", sq, occ)
		}
	}
}

func randomSubset(rng *rand.Rand, bits []Square) Bitboard {
	var b Bitboard
	for _, sq := range bits {
		if rng.Intn(2) == 1 {
			b = b.Set(sq)
		}
	}
	return b
}

// TestLeaperAttackSymmetry is spec.md §8 property 4 for knight and king:
// T is attacked from S iff S is attacked from T.
func TestLeaperAttackSymmetry(t *testing.T) {
	for s := Square(0); s < 64; s++ {
		for target := Square(0); target < 64; target++ {
			assert.Equal(t, Knight(s).Test(target), Knight(target).Test(s), "knight s=%s t=%s", s, target)
			assert.Equal(t, King(s).Test(target), King(target).Test(s), "king s=%s t=%s", s, target)
		}
	}
}

// TestSliderAttackSymmetryOnEmptyBoard is spec.md §8 property 4 for
// bishop/rook, restricted to the empty-board case where the "neither
// blocked on the shared ray" condition trivially holds.
func TestSliderAttackSymmetryOnEmptyBoard(t *testing.T) {
	for s := Square(0); s < 64; s++ {
		for target := Square(0); target < 64; target++ {
			assert.Equal(t, Bishop(s, BbZero).Test(target), Bishop(target, BbZero).Test(s), "bishop s=%s t=%s", s, target)
			assert.Equal(t, Rook(s, BbZero).Test(target), Rook(target, BbZero).Test(s), "rook s=%s t=%s", s, target)
		}
	}
}

func TestPawnAttacksOrientation(t *testing.T) {
	// White pawn on e4 attacks d5 and f5 (toward rank 8).
	assert.True(t, Pawn(E4, White).Test(D5))
	assert.True(t, Pawn(E4, White).Test(F5))
	assert.False(t, Pawn(E4, White).Test(D3))
	// Black pawn on e5 attacks d4 and f4 (toward rank 1).
	assert.True(t, Pawn(E5, Black).Test(D4))
	assert.True(t, Pawn(E5, Black).Test(F4))
}
