// Package attacks builds the precomputed leaper and slider attack tables
// (masks, magic bitboards) and exposes them through a uniform attack
// oracle, per spec.md §4.
package attacks

import (
	"github.com/frankkopp/chesscore/internal/assert"
	. "github.com/frankkopp/chesscore/internal/types"
)

var (
	pawnAttacks  [ColorLength][64]Bitboard
	knightAttack [64]Bitboard
	kingAttack   [64]Bitboard

	bishopRelevantMask [64]Bitboard
	rookRelevantMask   [64]Bitboard
)

var bishopDirections = [4]Direction{Northeast, Northwest, Southeast, Southwest}
var rookDirections = [4]Direction{North, South, East, West}

// slidingAttack walks each of the four given ray directions from sq,
// including the first blocking square (captures included), stopping at
// the board edge or the first occupied square. Used only to populate
// magic tables and by Kind-agnostic fallbacks, never on the move
// generation hot path.
func slidingAttack(directions [4]Direction, sq Square, occupied Bitboard) Bitboard {
	var attack Bitboard
	for _, d := range directions {
		s := sq
		for {
			s = s.To(d)
			if s == SqNone {
				break
			}
			attack = attack.Set(s)
			if occupied.Test(s) {
				break
			}
		}
	}
	return attack
}

func initLeaperMasks() {
	for sq := Square(0); sq < 64; sq++ {
		pawnAttacks[White][sq] = pawnAttackFrom(sq, White)
		pawnAttacks[Black][sq] = pawnAttackFrom(sq, Black)
		knightAttack[sq] = knightAttackFrom(sq)
		kingAttack[sq] = kingAttackFrom(sq)
	}
}

// shiftMasked steps every square of b by one leaper offset (df files, dr
// ranks) at once, using the classic shift-and-mask wraparound idiom:
// NotAFile/NotHFile/NotABFile/NotHGFile zero out the source squares a
// single shift would otherwise wrap across the board edge (§6). Square
// numbering here runs A8=0..H1=63 (§3), so a rank step is a shift by a
// multiple of 8 and a file step is a shift by 1; the two compose into a
// single shift by (df - 8*dr).
func shiftMasked(b Bitboard, df, dr int) Bitboard {
	switch df {
	case 1:
		b &= NotHFile
	case -1:
		b &= NotAFile
	case 2:
		b &= NotHGFile
	case -2:
		b &= NotABFile
	}
	shift := df - 8*dr
	if shift >= 0 {
		return b << uint(shift)
	}
	return b >> uint(-shift)
}

func pawnAttackFrom(sq Square, c Color) Bitboard {
	var b Bitboard
	fwd := c.PawnDirection()
	offsets := [2]Direction{
		{fwd.df + East.df, fwd.dr + East.dr},
		{fwd.df + West.df, fwd.dr + West.dr},
	}
	for _, d := range offsets {
		if t := sq.To(d); t != SqNone {
			b = b.Set(t)
		}
	}
	if assert.DEBUG {
		var shifted Bitboard
		for _, d := range offsets {
			shifted |= shiftMasked(sq.Bb(), d.df, d.dr)
		}
		assert.Assert(shifted == b, "pawn leaper shift/mask mismatch for %s", sq)
	}
	return b
}

var knightOffsets = [8]Direction{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

func knightAttackFrom(sq Square) Bitboard {
	var b Bitboard
	for _, d := range knightOffsets {
		if t := sq.To(d); t != SqNone {
			b = b.Set(t)
		}
	}
	if assert.DEBUG {
		var shifted Bitboard
		for _, d := range knightOffsets {
			shifted |= shiftMasked(sq.Bb(), d.df, d.dr)
		}
		assert.Assert(shifted == b, "knight leaper shift/mask mismatch for %s", sq)
	}
	return b
}

var kingOffsets = [8]Direction{
	North, South, East, West, Northeast, Northwest, Southeast, Southwest,
}

func kingAttackFrom(sq Square) Bitboard {
	var b Bitboard
	for _, d := range kingOffsets {
		if t := sq.To(d); t != SqNone {
			b = b.Set(t)
		}
	}
	if assert.DEBUG {
		var shifted Bitboard
		for _, d := range kingOffsets {
			shifted |= shiftMasked(sq.Bb(), d.df, d.dr)
		}
		assert.Assert(shifted == b, "king leaper shift/mask mismatch for %s", sq)
	}
	return b
}

// edgeMask is the set of board-edge squares not relevant to slider
// blocker enumeration for a given square: the two ranks/files the
// square does not itself sit on.
func edgeMask(sq Square) Bitboard {
	edges := (Rank1.Bb() | Rank8.Bb()).AndNot(sq.RankOf().Bb())
	edges |= (FileA.Bb() | FileH.Bb()).AndNot(sq.FileOf().Bb())
	return edges
}

func initSliderMasks() {
	for sq := Square(0); sq < 64; sq++ {
		edges := edgeMask(sq)
		bishopRelevantMask[sq] = slidingAttack(bishopDirections, sq, BbZero).AndNot(edges)
		rookRelevantMask[sq] = slidingAttack(rookDirections, sq, BbZero).AndNot(edges)
	}
}
