package position

import (
	"github.com/frankkopp/chesscore/internal/assert"
	. "github.com/frankkopp/chesscore/internal/types"
)

// Apply produces the successor position for mv and a Delta able to undo
// it, per spec.md §4.8. Promotions always promote to Queen: the Move
// word's bit layout (spec.md §3) has no room for the promoted-to kind,
// and spec.md explicitly adopts the "Queen by default" test convention
// for this case (see DESIGN.md).
func (p Position) Apply(mv Move) (Position, Delta) {
	piece := mv.Piece()
	from := mv.From()
	to := mv.To()
	captured := mv.Captured()
	mover := piece.Color()

	next := p
	next.material[piece] = next.material[piece].Clear(from).Set(to)

	wasEnPassantCap := mv.Has(TraitEnPassant)
	if wasEnPassantCap {
		capSq := to.To(mover.Opp().PawnDirection())
		next.material[captured] = next.material[captured].Clear(capSq)
	} else if captured != PieceNone {
		next.material[captured] = next.material[captured].Clear(to)
	}

	isPromotion := mv.Has(TraitPromotion)
	if isPromotion {
		next.material[piece] = next.material[piece].Clear(to)
		promoted := MakePiece(mover, Queen)
		next.material[promoted] = next.material[promoted].Set(to)
	}

	if mv.Has(TraitCastle) {
		applyCastleRookMove(&next, mover, from, to)
	}

	castlingBefore := p.castling
	next.castling = nextCastlingRights(p.castling, piece, from, to, captured, mv.Has(TraitCastle))

	wasDoublePush := piece.Kind() == Pawn && absRankDelta(from, to) == 2
	if wasDoublePush {
		next.enPassant = from.To(mover.PawnDirection())
	} else {
		next.enPassant = SqNone
	}

	if piece.Kind() == Pawn || captured != PieceNone {
		next.halfMoveClock = 0
	} else {
		next.halfMoveClock = p.halfMoveClock + 1
	}
	if p.sideToMove == Black {
		next.fullMoveNumber = p.fullMoveNumber + 1
	}
	next.sideToMove = p.sideToMove.Opp()

	next.recomputeOccupancy()
	next.zobrist = computeZobrist(next.material, next.sideToMove, next.castling, next.enPassant)

	if assert.DEBUG {
		assert.Assert(next.checkOccupancyConsistency(), "Apply: occupancy/material mismatch after %s", mv.UCI())
		assert.Assert(next.checkPieceUniqueness(), "Apply: two pieces on one square after %s", mv.UCI())
	}

	delta := Delta{
		CastlingLost:    castlingBefore &^ next.castling,
		EnPassantBefore: p.enPassant,
		Promotion:       isPromotion,
		Piece:           piece,
		From:            from,
		To:              to,
		Captured:        captured,
		HalfMovesBefore: p.halfMoveClock,
		FullMovesBefore: p.fullMoveNumber,
		WasEnPassantCap: wasEnPassantCap,
		WasDoublePush:   wasDoublePush,
	}
	return next, delta
}

// Undo reconstructs the position prior to the move described by delta,
// given the position that resulted from applying it. spec.md §8
// property 6 requires Undo(Apply(P, M)) == P for every legal pair.
func Undo(post Position, d Delta) Position {
	mover := d.Piece.Color()
	prev := post

	if d.Promotion {
		promoted := MakePiece(mover, Queen)
		prev.material[promoted] = prev.material[promoted].Clear(d.To)
		prev.material[d.Piece] = prev.material[d.Piece].Set(d.From)
	} else {
		prev.material[d.Piece] = prev.material[d.Piece].Clear(d.To).Set(d.From)
	}

	wasCastle := d.Piece.Kind() == King && absFileDelta(d.From, d.To) == 2
	if wasCastle {
		undoCastleRookMove(&prev, mover, d.From, d.To)
	}

	if d.WasEnPassantCap {
		capSq := d.To.To(mover.Opp().PawnDirection())
		prev.material[d.Captured] = prev.material[d.Captured].Set(capSq)
	} else if d.Captured != PieceNone {
		prev.material[d.Captured] = prev.material[d.Captured].Set(d.To)
	}

	prev.castling = post.castling | d.CastlingLost
	prev.enPassant = d.EnPassantBefore
	prev.halfMoveClock = d.HalfMovesBefore
	prev.fullMoveNumber = d.FullMovesBefore
	prev.sideToMove = mover

	prev.recomputeOccupancy()
	prev.zobrist = computeZobrist(prev.material, prev.sideToMove, prev.castling, prev.enPassant)
	return prev
}

func absRankDelta(a, b Square) int {
	d := int(a.RankOf()) - int(b.RankOf())
	if d < 0 {
		d = -d
	}
	return d
}

func absFileDelta(a, b Square) int {
	d := int(a.FileOf()) - int(b.FileOf())
	if d < 0 {
		d = -d
	}
	return d
}

// applyCastleRookMove moves the rook that accompanies a king move,
// inferred from the king's source/target rather than encoded in the
// Move word, per the Design Notes' king-source/king-target convention.
func applyCastleRookMove(p *Position, c Color, kingFrom, kingTo Square) {
	rook := MakePiece(c, Rook)
	if kingTo.FileOf() == FileG {
		rookFrom := SquareOf(FileH, kingFrom.RankOf())
		rookTo := SquareOf(FileF, kingFrom.RankOf())
		p.material[rook] = p.material[rook].Clear(rookFrom).Set(rookTo)
	} else {
		rookFrom := SquareOf(FileA, kingFrom.RankOf())
		rookTo := SquareOf(FileD, kingFrom.RankOf())
		p.material[rook] = p.material[rook].Clear(rookFrom).Set(rookTo)
	}
}

func undoCastleRookMove(p *Position, c Color, kingFrom, kingTo Square) {
	rook := MakePiece(c, Rook)
	if kingTo.FileOf() == FileG {
		rookFrom := SquareOf(FileH, kingFrom.RankOf())
		rookTo := SquareOf(FileF, kingFrom.RankOf())
		p.material[rook] = p.material[rook].Clear(rookTo).Set(rookFrom)
	} else {
		rookFrom := SquareOf(FileA, kingFrom.RankOf())
		rookTo := SquareOf(FileD, kingFrom.RankOf())
		p.material[rook] = p.material[rook].Clear(rookTo).Set(rookFrom)
	}
}

// nextCastlingRights implements spec.md §4.8 step 3: kings and rooks
// moving, or rooks being captured, on their home squares strip rights.
func nextCastlingRights(before CastlingRights, piece Piece, from, to Square, captured Piece, isCastle bool) CastlingRights {
	rights := before
	mover := piece.Color()

	if piece.Kind() == King {
		rights = rights.Clear(KingsideRight(mover) | QueensideRight(mover))
	}
	if piece.Kind() == Rook {
		rights = clearRookRight(rights, mover, from)
	}
	if captured.Kind() == Rook && !isCastle {
		rights = clearRookRight(rights, captured.Color(), to)
	}
	return rights
}

func clearRookRight(rights CastlingRights, c Color, sq Square) CastlingRights {
	homeRank := Rank1
	if c == Black {
		homeRank = Rank8
	}
	if sq.RankOf() != homeRank {
		return rights
	}
	switch sq.FileOf() {
	case FileA:
		return rights.Clear(QueensideRight(c))
	case FileH:
		return rights.Clear(KingsideRight(c))
	default:
		return rights
	}
}
