package movegen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/chesscore/internal/fen"
	"github.com/frankkopp/chesscore/internal/movegen"
)

// TestPerftInitialPositionDepth2 is the spec.md §8 perft-style cross-check
// for the initial position: 20 nodes at depth 1, 400 at depth 2 (every
// reply to every opening move, since none of the 20 opening moves give
// check or alter castling rights).
func TestPerftInitialPositionDepth2(t *testing.T) {
	pos, err := fen.Parse(fen.StartPosition)
	require.NoError(t, err)

	var pf movegen.Perft
	pf.Run(pos, 1)
	assert.Equal(t, uint64(20), pf.Nodes)

	pf.Run(pos, 2)
	assert.Equal(t, uint64(400), pf.Nodes)
}

func TestPerftKiwipeteDepth1(t *testing.T) {
	pos, err := fen.Parse("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	var pf movegen.Perft
	pf.Run(pos, 1)
	assert.Equal(t, uint64(48), pf.Nodes)
}
