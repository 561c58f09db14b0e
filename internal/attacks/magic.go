package attacks

import (
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/frankkopp/chesscore/internal/config"
	. "github.com/frankkopp/chesscore/internal/types"
)

// Magic holds the perfect-hash table for one square and one slider kind.
// Grounded on the teacher's types/magic.go "fancy" magic bitboards,
// adapted to per-square independent slices so table construction can run
// concurrently across squares (see initMagics).
type Magic struct {
	Mask    Bitboard
	Magic   Bitboard
	Shift   uint
	Attacks []Bitboard
}

// Index computes the table index for an occupancy, per spec.md §4.4.
func (m *Magic) Index(occupied Bitboard) uint {
	return uint((occupied & m.Mask) * m.Magic >> m.Shift)
}

var (
	bishopMagics [64]Magic
	rookMagics   [64]Magic
)

// magicSeeds are the teacher's canonical per-rank PRNG seeds (Stockfish's),
// shared by the bishop and rook searches and used whenever config.Settings.Magic.DeterministicSeeds
// is true (the default).
var magicSeeds = [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

func initMagics() {
	// If the config opts out of the teacher's fixed per-rank seed table,
	// reseed from the wall clock instead: every run still terminates (the
	// collision-detection loop in buildMagic retries any bad candidate
	// regardless of seed), it's just no longer reproducible across runs.
	seeds := magicSeeds
	if !config.Settings.Magic.DeterministicSeeds {
		now := uint64(time.Now().UnixNano())
		for i := range seeds {
			seeds[i] = now ^ uint64(i+1)*0x9E3779B97F4A7C15
		}
	}

	var g errgroup.Group
	for sqv := Square(0); sqv < 64; sqv++ {
		sq := sqv
		g.Go(func() error {
			buildMagic(&bishopMagics[sq], sq, bishopDirections, bishopRelevantMask[sq], seeds)
			return nil
		})
		g.Go(func() error {
			buildMagic(&rookMagics[sq], sq, rookDirections, rookRelevantMask[sq], seeds)
			return nil
		})
	}
	_ = g.Wait()
}

// buildMagic searches for a collision-free magic multiplier for one
// square and slider kind, per spec.md §4.4, following the Stockfish /
// teacher approach of retrying sparse random candidates until one maps
// every blocker subset to a consistent index.
func buildMagic(m *Magic, sq Square, directions [4]Direction, mask Bitboard, seeds [8]uint64) {
	r := mask.PopCount()
	size := 1 << uint(r)

	occupancy := make([]Bitboard, size)
	reference := make([]Bitboard, size)

	var b Bitboard
	for i := 0; i < size; i++ {
		occupancy[i] = b
		reference[i] = slidingAttack(directions, sq, b)
		b = (b - mask) & mask
	}

	m.Mask = mask
	m.Shift = uint(64 - r)
	m.Attacks = make([]Bitboard, size)

	rng := newPrng(seeds[sq.RankOf()])
	epoch := make([]int, size)
	cnt := 0

	for {
		var magic Bitboard
		for {
			magic = Bitboard(rng.sparse())
			if ((magic * mask) >> 56).PopCount() < 6 {
				break
			}
		}

		cnt++
		m.Magic = magic
		collision := false
		for i := 0; i < size; i++ {
			idx := m.Index(occupancy[i])
			if epoch[idx] < cnt {
				epoch[idx] = cnt
				m.Attacks[idx] = reference[i]
			} else if m.Attacks[idx] != reference[i] {
				collision = true
				break
			}
		}
		if !collision {
			return
		}
	}
}

// prng is the xorshift64star generator used by the teacher (originally
// from Stockfish) to search for magic multipliers. Not used anywhere
// outside table construction.
type prng struct {
	s uint64
}

func newPrng(seed uint64) *prng {
	return &prng{s: seed}
}

func (r *prng) next() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparse produces candidates with roughly 1/8th of their bits set on
// average, which converges faster on a valid magic than uniform random.
func (r *prng) sparse() uint64 {
	return r.next() & r.next() & r.next()
}
