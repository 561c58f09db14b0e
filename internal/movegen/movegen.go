// Package movegen implements the pseudo-legal move generator of
// spec.md §4.7: deterministic, duplicate-free, and enriched with the
// trait flags of spec.md §3 (capture, check, promotion, en-passant,
// castle). It never filters for self-check — a higher layer may do that
// over the returned moves.
package movegen

import (
	"github.com/frankkopp/chesscore/internal/attacks"
	"github.com/frankkopp/chesscore/internal/position"
	. "github.com/frankkopp/chesscore/internal/types"
)

// Generate returns every pseudo-legal move for the side to move in p, in
// a deterministic order (ascending source square, then the order moves
// are produced for that piece). Calling Generate twice on an equal
// Position yields an identical sequence (spec.md §8 property 8).
func Generate(p position.Position) []Move {
	moves := make([]Move, 0, 64)
	stm := p.SideToMove()
	own := p.OccupiedBb(stm)
	opp := p.OccupiedBb(stm.Opp())
	occAll := p.OccupiedAll()

	for sq := Square(0); sq < 64; sq++ {
		pc := p.PieceAt(sq)
		if pc == PieceNone || pc.Color() != stm {
			continue
		}
		switch pc.Kind() {
		case Pawn:
			moves = genPawnMoves(p, sq, stm, opp, occAll, moves)
		case Knight:
			moves = genStepMoves(p, pc, sq, attacks.Knight(sq), own, opp, moves)
		case King:
			moves = genStepMoves(p, pc, sq, attacks.King(sq), own, opp, moves)
			moves = genCastleMoves(p, sq, stm, occAll, moves)
		case Bishop:
			moves = genStepMoves(p, pc, sq, attacks.Bishop(sq, occAll), own, opp, moves)
		case Rook:
			moves = genStepMoves(p, pc, sq, attacks.Rook(sq, occAll), own, opp, moves)
		case Queen:
			moves = genStepMoves(p, pc, sq, attacks.Queen(sq, occAll), own, opp, moves)
		}
	}
	return moves
}

// genStepMoves emits a Quiet or Capture move for every target in the
// given attack set that isn't occupied by the mover's own side. Shared
// by knights, kings, and every slider kind: the shape is identical, only
// the target set's computation differs.
func genStepMoves(p position.Position, pc Piece, from Square, targets, own, opp Bitboard, moves []Move) []Move {
	t := targets.AndNot(own)
	for t != BbZero {
		var to Square
		to, t = t.PopLsb()
		captured := PieceNone
		trait := TraitQuiet
		if opp.Test(to) {
			trait = TraitCapture
			captured = p.PieceAt(to)
		}
		moves = append(moves, withCheckFlag(p, NewMove(trait, pc, from, to, captured)))
	}
	return moves
}

func genPawnMoves(p position.Position, from Square, stm Color, opp, occAll Bitboard, moves []Move) []Move {
	fwd := stm.PawnDirection()
	promoRank := Rank8
	startRank := Rank2
	if stm == Black {
		promoRank = Rank1
		startRank = Rank7
	}
	pc := MakePiece(stm, Pawn)

	if single := from.To(fwd); single != SqNone && !occAll.Test(single) {
		moves = append(moves, emitPawnAdvance(p, pc, from, single, promoRank)...)
		if from.RankOf() == startRank {
			if double := single.To(fwd); double != SqNone && !occAll.Test(double) {
				moves = append(moves, withCheckFlag(p, NewMove(TraitQuiet, pc, from, double, PieceNone)))
			}
		}
	}

	targets := attacks.Pawn(from, stm) & opp
	for targets != BbZero {
		var to Square
		to, targets = targets.PopLsb()
		captured := p.PieceAt(to)
		if to.RankOf() == promoRank {
			moves = append(moves, withCheckFlag(p, NewMove(TraitCapture|TraitPromotion, pc, from, to, captured)))
		} else {
			moves = append(moves, withCheckFlag(p, NewMove(TraitCapture, pc, from, to, captured)))
		}
	}

	if ep := p.EnPassant(); ep != SqNone && attacks.Pawn(from, stm).Test(ep) {
		capturedPawn := MakePiece(stm.Opp(), Pawn)
		moves = append(moves, withCheckFlag(p, NewMove(TraitEnPassant|TraitCapture, pc, from, ep, capturedPawn)))
	}

	return moves
}

func emitPawnAdvance(p position.Position, pc Piece, from, to Square, promoRank Rank) []Move {
	if to.RankOf() == promoRank {
		return []Move{withCheckFlag(p, NewMove(TraitQuiet|TraitPromotion, pc, from, to, PieceNone))}
	}
	return []Move{withCheckFlag(p, NewMove(TraitQuiet, pc, from, to, PieceNone))}
}

// withCheckFlag implements the "gives check" approximation of spec.md
// §4.7: from the move's target square, compute the resulting piece's own
// attack set against the position's current (pre-move) occupancy, and
// set Check if it intersects the opponent king. Discovered checks and
// checks delivered by the castling rook are not detected, as documented.
func withCheckFlag(p position.Position, mv Move) Move {
	stm := mv.Piece().Color()
	king := p.PiecesBb(stm.Opp(), King)
	if king == BbZero {
		return mv
	}
	kind := mv.Piece().Kind()
	if mv.Has(TraitPromotion) {
		kind = Queen
	}
	atk := attacks.Of(kind, stm, mv.To(), p.OccupiedAll())
	if atk&king != BbZero {
		return mv.WithTrait(TraitCheck)
	}
	return mv
}

// genCastleMoves emits O-O / O-O-O for the king at sq, if the side's
// castling right is still set, the path squares are empty, and neither
// the king's current nor destination square is attacked, per spec.md
// §4.7. No intermediate squares are encoded in the Move.
func genCastleMoves(p position.Position, kingSq Square, stm Color, occAll Bitboard, moves []Move) []Move {
	homeRank := Rank1
	if stm == Black {
		homeRank = Rank8
	}
	if kingSq != SquareOf(FileE, homeRank) {
		return moves
	}
	pc := MakePiece(stm, King)
	opp := stm.Opp()

	if p.Castling().Has(KingsideRight(stm)) {
		f := SquareOf(FileF, homeRank)
		g := SquareOf(FileG, homeRank)
		if !occAll.Test(f) && !occAll.Test(g) &&
			!p.IsAttacked(kingSq, opp) && !p.IsAttacked(g, opp) {
			moves = append(moves, withCheckFlag(p, NewMove(TraitCastle, pc, kingSq, g, PieceNone)))
		}
	}
	if p.Castling().Has(QueensideRight(stm)) {
		b := SquareOf(FileB, homeRank)
		c := SquareOf(FileC, homeRank)
		d := SquareOf(FileD, homeRank)
		if !occAll.Test(b) && !occAll.Test(c) && !occAll.Test(d) &&
			!p.IsAttacked(kingSq, opp) && !p.IsAttacked(c, opp) {
			moves = append(moves, withCheckFlag(p, NewMove(TraitCastle, pc, kingSq, c, PieceNone)))
		}
	}
	return moves
}
