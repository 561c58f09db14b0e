package movegen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/chesscore/internal/fen"
	"github.com/frankkopp/chesscore/internal/movegen"
	. "github.com/frankkopp/chesscore/internal/types"
)

func TestInitialPositionGeneratesExactly20Moves(t *testing.T) {
	pos, err := fen.Parse(fen.StartPosition)
	require.NoError(t, err)
	moves := movegen.Generate(pos)
	require.Len(t, moves, 20)

	var captures, checks, promotions int
	var knightMoves, doublePushes, singlePushes int
	for _, mv := range moves {
		if mv.Has(TraitCapture) {
			captures++
		}
		if mv.Has(TraitCheck) {
			checks++
		}
		if mv.Has(TraitPromotion) {
			promotions++
		}
		if mv.Piece().Kind() == Knight {
			knightMoves++
		}
		if mv.Piece().Kind() == Pawn {
			if absRank(mv.From(), mv.To()) == 2 {
				doublePushes++
			} else {
				singlePushes++
			}
		}
	}
	assert.Equal(t, 0, captures)
	assert.Equal(t, 0, checks)
	assert.Equal(t, 0, promotions)
	assert.Equal(t, 4, knightMoves)
	assert.Equal(t, 8, doublePushes)
	assert.Equal(t, 8, singlePushes)
}

func absRank(a, b Square) int {
	d := int(a.RankOf()) - int(b.RankOf())
	if d < 0 {
		d = -d
	}
	return d
}

func TestKiwipeteGenerates48Moves(t *testing.T) {
	pos, err := fen.Parse("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	moves := movegen.Generate(pos)
	assert.Len(t, moves, 48)
}

func TestPromotionScenario(t *testing.T) {
	pos, err := fen.Parse("8/P7/8/8/8/8/8/k6K w - - 0 1")
	require.NoError(t, err)
	moves := movegen.Generate(pos)

	var promotions []Move
	for _, mv := range moves {
		if mv.Has(TraitPromotion) {
			promotions = append(promotions, mv)
		}
	}
	require.Len(t, promotions, 1)
	assert.Equal(t, A7, promotions[0].From())
	assert.Equal(t, A8, promotions[0].To())
}

func TestEnPassantScenario(t *testing.T) {
	pos, err := fen.Parse("4k3/8/8/pP6/8/8/8/4K3 w - a6 0 1")
	require.NoError(t, err)
	moves := movegen.Generate(pos)

	var found *Move
	for i, mv := range moves {
		if mv.Has(TraitEnPassant) {
			found = &moves[i]
		}
	}
	require.NotNil(t, found)
	assert.True(t, found.Has(TraitCapture))
	assert.Equal(t, B5, found.From())
	assert.Equal(t, A6, found.To())
}

func TestCastlingBlockedWhileKingInCheck(t *testing.T) {
	// The rook on e2 attacks e1 down the e-file, putting the white king
	// in check. spec.md §4.7 requires square E (the king's own square)
	// to be unattacked for both O-O and O-O-O, so neither is legal here
	// — a king may never castle out of check. See DESIGN.md for the
	// resolution of the apparent conflict with the §8 worked example,
	// which describes only the kingside half of this same rule.
	pos, err := fen.Parse("4k3/8/8/8/8/8/4r3/R3K2R w KQ - 0 1")
	require.NoError(t, err)
	moves := movegen.Generate(pos)

	for _, mv := range moves {
		assert.False(t, mv.Has(TraitCastle), "no castle should be legal while the king is in check: %s", mv.UCI())
	}
}

func TestCastlingAvailableWhenPathAndKingSafe(t *testing.T) {
	pos, err := fen.Parse("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)
	moves := movegen.Generate(pos)

	var sawQueenside, sawKingside bool
	for _, mv := range moves {
		if mv.Has(TraitCastle) {
			if mv.To() == C1 {
				sawQueenside = true
			}
			if mv.To() == G1 {
				sawKingside = true
			}
		}
	}
	assert.True(t, sawQueenside)
	assert.True(t, sawKingside)
}

func TestGeneratorIsDeterministic(t *testing.T) {
	pos, err := fen.Parse("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	a := movegen.Generate(pos)
	b := movegen.Generate(pos)
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i], b[i])
	}
}

func TestCaptureMovesMatchPieceAtTarget(t *testing.T) {
	pos, err := fen.Parse("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	moves := movegen.Generate(pos)
	for _, mv := range moves {
		if mv.Has(TraitCapture) && !mv.Has(TraitEnPassant) {
			assert.Equal(t, mv.Captured(), pos.PieceAt(mv.To()), "move %s", mv.UCI())
		}
	}
}
