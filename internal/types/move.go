package types

import "strings"

// MoveTrait is one bit of the trait flag set carried in a Move's high
// bits. Exactly one of {Quiet, Capture, Castle} is set on any Move;
// EnPassant is only ever set together with Capture (see IsValid); Check
// and Promotion may combine with any of those.
type MoveTrait uint32

const (
	TraitQuiet     MoveTrait = 1 << 0
	TraitCapture   MoveTrait = 1 << 1
	TraitCheck     MoveTrait = 1 << 2
	TraitPromotion MoveTrait = 1 << 3
	TraitEnPassant MoveTrait = 1 << 4
	TraitCastle    MoveTrait = 1 << 5
)

// Move is a packed 32-bit word. Layout, MSB to LSB, per spec.md §3:
//
//	bits 31..20 (12): trait flag set
//	bits 19..16 (4):  moving piece (packed: bit3 color, bits0-2 kind)
//	bits 15..10 (6):  source square
//	bits 9..4   (6):  target square
//	bits 3..0   (4):  captured piece (packed, 0 = none)
type Move uint32

const (
	moveCapturedShift = 0
	moveTargetShift   = 4
	moveSourceShift   = 10
	movePieceShift    = 16
	moveTraitShift    = 20

	mask4 Move = 0xF
	mask6 Move = 0x3F
)

// MoveNone is the zero Move, not a valid move.
const MoveNone Move = 0

// NewMove packs a move's fields into the bit layout above.
func NewMove(trait MoveTrait, piece Piece, from, to Square, captured Piece) Move {
	return Move(trait)<<moveTraitShift |
		Move(piece.Pack())<<movePieceShift |
		Move(from)<<moveSourceShift |
		Move(to)<<moveTargetShift |
		Move(captured.Pack())<<moveCapturedShift
}

// Traits returns the trait flag set.
func (m Move) Traits() MoveTrait {
	return MoveTrait(m >> moveTraitShift)
}

// Has reports whether every flag in t is set on m.
func (m Move) Has(t MoveTrait) bool {
	return m.Traits()&t == t
}

// WithTrait returns m with trait t additionally set (e.g. to add Check
// after the generator determines it gives check).
func (m Move) WithTrait(t MoveTrait) Move {
	return m | Move(t)<<moveTraitShift
}

// Piece returns the moving piece.
func (m Move) Piece() Piece {
	return PackedPiece((m >> movePieceShift) & mask4).Unpack()
}

// From returns the source square.
func (m Move) From() Square {
	return Square((m >> moveSourceShift) & mask6)
}

// To returns the target square.
func (m Move) To() Square {
	return Square((m >> moveTargetShift) & mask6)
}

// Captured returns the captured piece, or PieceNone.
func (m Move) Captured() Piece {
	return PackedPiece((m >> moveCapturedShift) & mask4).Unpack()
}

// IsValid reports whether m encodes a recognizable move. Exactly one of
// {Quiet, Capture, Castle} identifies the move's shape; EnPassant is a
// qualifier layered onto Capture (the en-passant scenario in spec.md §8
// requires both Capture and EnPassant set simultaneously), not a fourth
// independent shape.
func (m Move) IsValid() bool {
	if m == MoveNone {
		return false
	}
	shape := m.Traits() & (TraitQuiet | TraitCapture | TraitCastle)
	if shape == 0 || shape&(shape-1) != 0 {
		return false
	}
	if m.Has(TraitEnPassant) && shape != TraitCapture {
		return false
	}
	return true
}

// UCI renders the move in UCI-compatible form, e.g. "e2e4", "e7e8q".
func (m Move) UCI() string {
	if m == MoveNone {
		return "0000"
	}
	var sb strings.Builder
	sb.WriteString(m.From().String())
	sb.WriteString(m.To().String())
	if m.Has(TraitPromotion) {
		sb.WriteString(Queen.String())
	}
	return sb.String()
}

func (m Move) String() string {
	if m == MoveNone {
		return "(none)"
	}
	return m.UCI()
}
