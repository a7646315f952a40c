/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package magic

import "github.com/frankkopp/magicbitboards/internal/types"

// KingAttack returns the king's one-step attack bitboard from sq (C3 leaper
// case): the union of all 8 cardinal/diagonal neighbours, wrap-guarded by
// ShiftBitboard.
func KingAttack(sq types.Square) types.Bitboard {
	b := sq.Bb()
	var attack types.Bitboard
	for _, d := range types.Directions {
		attack |= types.ShiftBitboard(b, d)
	}
	return attack
}

// KnightAttack returns the knight's leap attack bitboard from sq.
func KnightAttack(sq types.Square) types.Bitboard {
	b := sq.Bb()
	var attack types.Bitboard
	for _, d := range types.KnightDirections {
		attack |= types.ShiftBitboard(b, d)
	}
	return attack
}

// PawnAttack returns the capturing-diagonal attack bitboard for a pawn of
// color c standing on sq: NW/NE for White, SW/SE for Black. Quiet pushes
// are out of scope (spec.md §4.3) — this is captures only.
func PawnAttack(c types.Color, sq types.Square) types.Bitboard {
	b := sq.Bb()
	if c == types.White {
		return types.ShiftBitboard(b, types.Northeast) | types.ShiftBitboard(b, types.Northwest)
	}
	return types.ShiftBitboard(b, types.Southeast) | types.ShiftBitboard(b, types.Southwest)
}

// LeaperTable is a 64-entry table of precomputed leaper attacks, one per
// square (C7): independent of occupancy by construction (I3).
type LeaperTable [64]types.Bitboard

// BuildKingTable returns the king's leaper table, one straight pass over
// all 64 squares.
func BuildKingTable() LeaperTable {
	var t LeaperTable
	for s := types.SqA1; s < types.SqNone; s++ {
		t[s] = KingAttack(s)
	}
	return t
}

// BuildKnightTable returns the knight's leaper table.
func BuildKnightTable() LeaperTable {
	var t LeaperTable
	for s := types.SqA1; s < types.SqNone; s++ {
		t[s] = KnightAttack(s)
	}
	return t
}

// BuildPawnTable returns the leaper table of capturing pawn attacks for
// color c.
func BuildPawnTable(c types.Color) LeaperTable {
	var t LeaperTable
	for s := types.SqA1; s < types.SqNone; s++ {
		t[s] = PawnAttack(c, s)
	}
	return t
}
