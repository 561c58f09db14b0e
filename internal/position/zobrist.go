package position

import . "github.com/frankkopp/chesscore/internal/types"

// zobrist keys are generated once at package init with a fixed-seed
// xorshift64star generator (the same technique internal/attacks uses to
// search for magic numbers) so the key stream is reproducible across
// runs and platforms rather than depending on math/rand's global state.
var (
	zPieceSquare [PieceLength][64]uint64
	zCastling    [16]uint64
	zEnPassant   [8]uint64
	zSideToMove  uint64
)

type zobristPrng struct{ s uint64 }

func (r *zobristPrng) next() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

func init() {
	rng := &zobristPrng{s: 0x9E3779B97F4A7C15}
	for p := Piece(0); p < PieceLength; p++ {
		for sq := 0; sq < 64; sq++ {
			zPieceSquare[p][sq] = rng.next()
		}
	}
	for i := range zCastling {
		zCastling[i] = rng.next()
	}
	for i := range zEnPassant {
		zEnPassant[i] = rng.next()
	}
	zSideToMove = rng.next()
}

func computeZobrist(material [PieceLength]Bitboard, stm Color, castling CastlingRights, ep Square) uint64 {
	var key uint64
	for p := Piece(0); p < PieceLength; p++ {
		bb := material[p]
		for bb != BbZero {
			var sq Square
			sq, bb = bb.PopLsb()
			key ^= zPieceSquare[p][sq]
		}
	}
	key ^= zCastling[castling&0xF]
	if ep != SqNone {
		key ^= zEnPassant[ep.FileOf()]
	}
	if stm == Black {
		key ^= zSideToMove
	}
	return key
}
