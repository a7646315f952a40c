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

// rankEightBb is the quick-reject mask spec.md §4.5(b) calls for: the
// high byte of the 64-bit word (rank 8 in the LERF mapping), not the
// low byte. One historical revision of the source used the low byte by
// mistake (spec.md §9); this implementation uses the high byte, as the
// heuristic's own rationale (checking that the multiply spreads bits high
// enough to be useful as a shift index) requires.
const rankEightBb types.Bitboard = 0xFF00000000000000

// prng is a small xorshift64star generator, seeded deterministically per
// call site. Determinism given a fixed seed is the point: it is what makes
// table generation reproducible (P8).
type prng struct {
	state uint64
}

func newPrng(seed uint64) *prng {
	if seed == 0 {
		seed = 1
	}
	return &prng{state: seed}
}

func (r *prng) next() uint64 {
	r.state ^= r.state >> 12
	r.state ^= r.state << 25
	r.state ^= r.state >> 27
	return r.state * 2685821657736338717
}

// sparse draws a candidate heavily biased toward few set bits (empirically
// ~8 of 64) by ANDing three independent draws, which is what makes magic
// candidates plausible at all.
func (r *prng) sparse() uint64 {
	return r.next() & r.next() & r.next()
}

// Search runs the randomized magic-number search (C5) for a single
// (direction-set, square) pair and returns a fully populated, verified
// Entry. It gives up after retryCeiling candidates and returns
// ErrSearchExhausted; the caller is expected to fall back to a precomputed
// magic in that case (spec.md §4.9/§7) rather than treat it as fatal.
func Search(directions [4]types.Direction, sq types.Square, edges types.Bitboard, seed uint64, retryCeiling int) (*Entry, error) {
	mask := RelevantMask(directions, sq, edges)
	shift := uint(64 - mask.PopCount())
	rng := newPrng(seed)

	for tries := 1; tries <= retryCeiling; tries++ {
		candidate := types.Bitboard(rng.sparse())
		if ((mask * candidate) & rankEightBb).PopCount() < 6 {
			continue
		}
		if table, ok := buildAttacks(directions, sq, mask, candidate, shift); ok {
			return &Entry{Mask: mask, Number: candidate, Shift: shift, Attacks: table}, nil
		}
	}
	return nil, &ErrSearchExhausted{Square: sq, Tries: retryCeiling}
}
