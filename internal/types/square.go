package types

import "fmt"

// Square is a 0..63 board index. Numbering follows spec.md §3: rank 8 file
// a is square 0, rank 1 file h is square 63 — the board read top-left to
// bottom-right.
type Square uint8

const SqNone Square = 64

// Named squares, generated by SquareOf(file, rank) so the A8=0..H1=63
// convention only needs to be expressed once.
var (
	A8, B8, C8, D8, E8, F8, G8, H8 Square
	A7, B7, C7, D7, E7, F7, G7, H7 Square
	A6, B6, C6, D6, E6, F6, G6, H6 Square
	A5, B5, C5, D5, E5, F5, G5, H5 Square
	A4, B4, C4, D4, E4, F4, G4, H4 Square
	A3, B3, C3, D3, E3, F3, G3, H3 Square
	A2, B2, C2, D2, E2, F2, G2, H2 Square
	A1, B1, C1, D1, E1, F1, G1, H1 Square
)

var squareNames [64]string

func init() {
	files := [8]*Square{}
	ranks := [8][8]*Square{
		{&A8, &B8, &C8, &D8, &E8, &F8, &G8, &H8},
		{&A7, &B7, &C7, &D7, &E7, &F7, &G7, &H7},
		{&A6, &B6, &C6, &D6, &E6, &F6, &G6, &H6},
		{&A5, &B5, &C5, &D5, &E5, &F5, &G5, &H5},
		{&A4, &B4, &C4, &D4, &E4, &F4, &G4, &H4},
		{&A3, &B3, &C3, &D3, &E3, &F3, &G3, &H3},
		{&A2, &B2, &C2, &D2, &E2, &F2, &G2, &H2},
		{&A1, &B1, &C1, &D1, &E1, &F1, &G1, &H1},
	}
	_ = files
	for i, rank := range []Rank{Rank8, Rank7, Rank6, Rank5, Rank4, Rank3, Rank2, Rank1} {
		for f := FileA; f <= FileH; f++ {
			sq := SquareOf(f, rank)
			*ranks[i][f] = sq
			squareNames[sq] = f.String() + rank.String()
		}
	}
}

// SquareOf returns the square at the given file and rank.
func SquareOf(f File, r Rank) Square {
	return Square(int(Rank8-r)*8 + int(f))
}

// FileOf returns sq's file: file(sq) = sq mod 8.
func (sq Square) FileOf() File {
	return File(sq % 8)
}

// RankOf returns sq's rank: rank(sq) = 7 - (sq / 8).
func (sq Square) RankOf() Rank {
	return Rank(7 - sq/8)
}

// IsValid reports whether sq is in 0..63.
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// Bb returns the single-bit bitboard for sq.
func (sq Square) Bb() Bitboard {
	if !sq.IsValid() {
		return BbZero
	}
	return Bitboard(1) << uint(sq)
}

// String renders algebraic notation, e.g. "e4", or "-" for SqNone.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return squareNames[sq]
}

// Direction is a single-step offset between squares, expressed as
// file/rank deltas so edge-wrap can be detected without table lookups.
type Direction struct {
	df, dr int
}

var (
	North     = Direction{0, 1}
	South     = Direction{0, -1}
	East      = Direction{1, 0}
	West      = Direction{-1, 0}
	Northeast = Direction{1, 1}
	Northwest = Direction{-1, 1}
	Southeast = Direction{1, -1}
	Southwest = Direction{-1, -1}
)

// To steps sq one square in direction d, returning SqNone if the result
// would fall off the board.
func (sq Square) To(d Direction) Square {
	f := int(sq.FileOf()) + d.df
	r := int(sq.RankOf()) + d.dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return SqNone
	}
	return SquareOf(File(f), Rank(r))
}

// ParseSquare parses algebraic notation ("e4") into a Square. Returns
// SqNone, false on malformed input — callers needing a diagnostic should
// use the fen package's structured error instead.
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return SqNone, false
	}
	f := s[0]
	r := s[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return SqNone, false
	}
	return SquareOf(File(f-'a'), Rank(r-'1')), true
}

// mustSquare panics on malformed input; used only for internal literals.
func mustSquare(s string) Square {
	sq, ok := ParseSquare(s)
	if !ok {
		panic(fmt.Sprintf("invalid square literal %q", s))
	}
	return sq
}
