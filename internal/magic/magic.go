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

// Package magic builds and verifies the per-square magic-bitboard entries
// (C3 through C6) that the oracle dispatches sliding-piece queries through.
// Nothing in this package keeps mutable process-wide state: every entry is
// returned as a value the caller owns, per spec.md's "immutable handle"
// re-architecture note.
package magic

import "github.com/frankkopp/magicbitboards/internal/types"

// Entry is the per-square magic-bitboard lookup: mask the occupancy to the
// relevant bits, multiply by Number, shift, and index into Attacks.
type Entry struct {
	Mask    types.Bitboard
	Number  types.Bitboard
	Shift   uint
	Attacks []types.Bitboard
}

// Index computes the attack-table slot for occupied under this entry.
func (e *Entry) Index(occupied types.Bitboard) uint {
	occ := occupied & e.Mask
	occ *= e.Number
	return uint(occ >> e.Shift)
}

// Attack returns the attack bitboard for occupied. e must have been built by
// Search or Precomputed; the slot is guaranteed populated by invariant I2.
func (e *Entry) Attack(occupied types.Bitboard) types.Bitboard {
	return e.Attacks[e.Index(occupied)]
}

// RelevantMask returns the relevant-occupancy mask for a slider with the
// given directions standing on sq (§3): the squares its rays pass through
// on an empty board, minus the board edges, which are always terminal and
// so carry no information about which attack subset applies.
func RelevantMask(directions [4]types.Direction, sq types.Square, edges types.Bitboard) types.Bitboard {
	return ReferenceAttack(directions, sq, types.BbZero) &^ edges
}

// buildAttacks populates a fresh, exactly-sized attack table for mask/number
// at the given shift, verifying along the way that no two occupancy subsets
// mapping to the same index disagree (I2). The returned bool is false when
// that invariant is violated, i.e. when number is not a valid magic for
// mask; Search and Precomputed both use it as their verification step.
func buildAttacks(directions [4]types.Direction, sq types.Square, mask types.Bitboard, number types.Bitboard, shift uint) ([]types.Bitboard, bool) {
	n := 1 << uint(mask.PopCount())
	table := make([]types.Bitboard, n)
	written := make([]bool, n)
	ok := true
	EnumerateSubsets(mask, func(_ int, occ types.Bitboard) {
		ref := ReferenceAttack(directions, sq, occ)
		idx := uint((occ * number) >> shift)
		if !written[idx] {
			written[idx] = true
			table[idx] = ref
		} else if table[idx] != ref {
			ok = false
		}
	})
	return table, ok
}
