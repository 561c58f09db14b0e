package movegen

import (
	"time"

	"github.com/frankkopp/chesscore/internal/position"
	. "github.com/frankkopp/chesscore/internal/types"
)

// Perft counts the pseudo-legal move tree rooted at a position, broken
// down by move trait. It does not filter for self-check — generator
// output is pseudo-legal per spec.md §4.7 — so counts above depth 1 over
// a position that allows moving into check will run higher than the
// legal-move perft figures published for the same FEN.
type Perft struct {
	Nodes      uint64
	Captures   uint64
	EnPassants uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
	stopFlag   bool
}

// Stop requests an in-progress Run (when called from another goroutine)
// to return early. Subtrees not yet walked when the flag is seen count as
// 0, so Nodes then holds only the partial total of the subtrees finished
// before the stop.
func (pf *Perft) Stop() {
	pf.stopFlag = true
}

// Run walks the move tree to depth and returns the elapsed wall time
// alongside populating pf's counters.
func (pf *Perft) Run(p position.Position, depth int) time.Duration {
	*pf = Perft{}
	if depth < 1 {
		depth = 1
	}
	start := time.Now()
	pf.Nodes = pf.walk(p, depth)
	return time.Since(start)
}

func (pf *Perft) walk(p position.Position, depth int) uint64 {
	if pf.stopFlag {
		return 0
	}
	moves := Generate(p)
	if depth > 1 {
		var total uint64
		for _, mv := range moves {
			next, _ := p.Apply(mv)
			total += pf.walk(next, depth-1)
		}
		return total
	}
	for _, mv := range moves {
		if mv.Has(TraitCapture) {
			pf.Captures++
		}
		if mv.Has(TraitEnPassant) {
			pf.EnPassants++
		}
		if mv.Has(TraitCastle) {
			pf.Castles++
		}
		if mv.Has(TraitPromotion) {
			pf.Promotions++
		}
		if mv.Has(TraitCheck) {
			pf.Checks++
		}
	}
	return uint64(len(moves))
}
