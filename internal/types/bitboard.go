package types

import "math/bits"

// Bitboard is a 64-bit set of squares: bit i set iff square i is occupied.
type Bitboard uint64

// BbZero is the empty bitboard.
const BbZero Bitboard = 0

// BbAll has every square set.
const BbAll Bitboard = 0xFFFFFFFFFFFFFFFF

// file and rank masks, indexed by File/Rank.
var (
	fileBb = [8]Bitboard{}
	rankBb = [8]Bitboard{}
)

func init() {
	for f := FileA; f <= FileH; f++ {
		var b Bitboard
		for r := Rank1; r <= Rank8; r++ {
			b = b.PushSquare(SquareOf(f, r))
		}
		fileBb[f] = b
	}
	for r := Rank1; r <= Rank8; r++ {
		var b Bitboard
		for f := FileA; f <= FileH; f++ {
			b = b.PushSquare(SquareOf(f, r))
		}
		rankBb[r] = b
	}
}

// NotAFile, NotHFile, NotABFile, NotHGFile guard leaper-piece shifts
// against wraparound across the board edge. Values per spec.md §6.
const (
	NotAFile  Bitboard = ^Bitboard(0x0101010101010101)
	NotHFile  Bitboard = ^Bitboard(0x8080808080808080)
	NotABFile Bitboard = ^Bitboard(0x0303030303030303)
	NotHGFile Bitboard = ^Bitboard(0xC0C0C0C0C0C0C0C0)
)

// Set returns b with sq added.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | sq.Bb()
}

// Clear returns b with sq removed.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b &^ sq.Bb()
}

// PushSquare is an alias of Set kept for parity with the teacher's naming.
func (b Bitboard) PushSquare(sq Square) Bitboard {
	return b.Set(sq)
}

// Test reports whether sq is a member of b.
func (b Bitboard) Test(sq Square) bool {
	return b&sq.Bb() != 0
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the square of the least significant set bit. Undefined
// (returns SqNone) when b is empty; callers must guard with b != BbZero.
func (b Bitboard) Lsb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb returns the least significant square and the bitboard with that
// bit cleared, in increasing-index iteration order.
func (b Bitboard) PopLsb() (Square, Bitboard) {
	sq := b.Lsb()
	return sq, b&(b-1)
}

// Union, Intersect, Xor, Complement are pure set combinators.
func (b Bitboard) Union(o Bitboard) Bitboard      { return b | o }
func (b Bitboard) Intersect(o Bitboard) Bitboard  { return b & o }
func (b Bitboard) Xor(o Bitboard) Bitboard        { return b ^ o }
func (b Bitboard) Complement() Bitboard           { return ^b }
func (b Bitboard) AndNot(o Bitboard) Bitboard     { return b &^ o }

// Squares returns the set squares in strictly increasing index order.
func (b Bitboard) Squares() []Square {
	out := make([]Square, 0, b.PopCount())
	for b != BbZero {
		var sq Square
		sq, b = b.PopLsb()
		out = append(out, sq)
	}
	return out
}
