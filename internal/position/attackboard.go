package position

import (
	"github.com/frankkopp/chesscore/internal/attacks"
	"github.com/frankkopp/chesscore/internal/logging"
	. "github.com/frankkopp/chesscore/internal/types"
)

// AttackBoard is an optional, cached enrichment over the stateless attack
// oracle in internal/attacks: it precomputes every piece's attack set for
// a given Position and memoizes by Zobrist key, so repeated queries
// against the same position (e.g. successive is-attacked checks during
// move generation) don't redo the per-piece oracle walk. Grounded on the
// teacher's internal/attacks.Attacks cache.
type AttackBoard struct {
	zobrist uint64

	From     [ColorLength][64]Bitboard
	All      [ColorLength]Bitboard
	Piece    [ColorLength][KindLength]Bitboard
	Mobility [ColorLength]int
}

// NewAttackBoard returns an empty, uncomputed cache.
func NewAttackBoard() *AttackBoard {
	return &AttackBoard{}
}

// Clear resets every field without reallocating, mirroring the teacher's
// benchmark-driven Clear over re-New.
func (a *AttackBoard) Clear() {
	*a = AttackBoard{}
}

// Compute (re)fills the cache for p, skipping the work entirely if p's
// Zobrist key matches the last computed position.
func (a *AttackBoard) Compute(p Position) {
	if p.zobrist == a.zobrist && a.zobrist != 0 {
		return
	}
	log := logging.GetLog()
	log.Debugf("attackboard: computing for zobrist %016x", p.zobrist)

	a.Clear()
	a.zobrist = p.zobrist

	occ := p.OccupiedAll()
	for _, c := range [2]Color{White, Black} {
		own := p.OccupiedBb(c)
		for k := Knight; k <= King; k++ {
			bb := p.PiecesBb(c, k)
			for bb != BbZero {
				var sq Square
				sq, bb = bb.PopLsb()
				atk := attacks.Of(k, c, sq, occ)
				a.From[c][sq] = atk
				a.Piece[c][k] |= atk
				a.All[c] |= atk
				a.Mobility[c] += atk.AndNot(own).PopCount()
			}
		}
		// pawn attacks, computed per-square since Pawn() needs the color
		pbb := p.PiecesBb(c, Pawn)
		for pbb != BbZero {
			var sq Square
			sq, pbb = pbb.PopLsb()
			atk := attacks.Pawn(sq, c)
			a.From[c][sq] = atk
			a.Piece[c][Pawn] |= atk
			a.All[c] |= atk
			a.Mobility[c] += atk.AndNot(own).PopCount()
		}
	}
}
