package attacks

import (
	"sync"

	"github.com/frankkopp/chesscore/internal/logging"
	. "github.com/frankkopp/chesscore/internal/types"
)

var initOnce sync.Once

// Init builds the leaper masks and magic tables. Safe to call
// concurrently and repeatedly: only the first caller does the work, and
// every caller blocks until it is complete, satisfying spec.md §5's
// "concurrent first-callers see a fully constructed table" requirement.
// Every exported query function calls this automatically, so callers
// rarely need to invoke it directly.
func Init() {
	initOnce.Do(func() {
		log := logging.GetLog()
		log.Debug("attacks: building leaper masks")
		initLeaperMasks()
		log.Debug("attacks: building slider relevant-blocker masks")
		initSliderMasks()
		log.Debug("attacks: searching bishop/rook magic numbers")
		initMagics()
		log.Debug("attacks: tables ready")
	})
}

// Pawn returns the attack squares of a pawn of color c standing on sq.
func Pawn(sq Square, c Color) Bitboard {
	Init()
	return pawnAttacks[c][sq]
}

// Knight returns the attack squares of a knight standing on sq.
func Knight(sq Square) Bitboard {
	Init()
	return knightAttack[sq]
}

// King returns the attack squares of a king standing on sq.
func King(sq Square) Bitboard {
	Init()
	return kingAttack[sq]
}

// Bishop returns bishop attacks from sq given the full board occupancy,
// via the magic-bitboard lookup of spec.md §4.4.
func Bishop(sq Square, occ Bitboard) Bitboard {
	Init()
	m := &bishopMagics[sq]
	return m.Attacks[m.Index(occ)]
}

// Rook returns rook attacks from sq given the full board occupancy.
func Rook(sq Square, occ Bitboard) Bitboard {
	Init()
	m := &rookMagics[sq]
	return m.Attacks[m.Index(occ)]
}

// Queen returns the union of bishop and rook attacks from sq.
func Queen(sq Square, occ Bitboard) Bitboard {
	return Bishop(sq, occ) | Rook(sq, occ)
}

// Of dispatches to the right attack function for the given piece kind.
// Pawn attacks require a color, supplied separately; calling Of with
// Pawn uses c as the pawn's own color.
func Of(k Kind, c Color, sq Square, occ Bitboard) Bitboard {
	switch k {
	case Pawn:
		return Pawn(sq, c)
	case Knight:
		return Knight(sq)
	case King:
		return King(sq)
	case Bishop:
		return Bishop(sq, occ)
	case Rook:
		return Rook(sq, occ)
	case Queen:
		return Queen(sq, occ)
	default:
		return BbZero
	}
}

// OnTheFly recomputes a slider's attacks by stepping ray-by-ray rather
// than through the magic tables. Exposed for property tests (spec.md §8
// property 3) that must compare the magic query against an independent
// ground truth.
func OnTheFly(k Kind, sq Square, occ Bitboard) Bitboard {
	switch k {
	case Bishop:
		return slidingAttack(bishopDirections, sq, occ)
	case Rook:
		return slidingAttack(rookDirections, sq, occ)
	case Queen:
		return slidingAttack(bishopDirections, sq, occ) | slidingAttack(rookDirections, sq, occ)
	default:
		return BbZero
	}
}

// BishopMask and RookMask expose the relevant-blocker masks, needed by
// callers (and tests) that want to enumerate occupancy subsets directly.
func BishopMask(sq Square) Bitboard {
	Init()
	return bishopRelevantMask[sq]
}

func RookMask(sq Square) Bitboard {
	Init()
	return rookRelevantMask[sq]
}

// BishopIndexBound and RookIndexBound return the table size for sq,
// i.e. the exclusive upper bound on Magic.Index's result (spec.md §8's
// "magic index bounds" scenario: < 512 for bishops, < 4096 for rooks).
func BishopIndexBound(sq Square) int {
	Init()
	return len(bishopMagics[sq].Attacks)
}

func RookIndexBound(sq Square) int {
	Init()
	return len(rookMagics[sq].Attacks)
}
