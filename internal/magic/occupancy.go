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

// Subset returns the index-th subset of mask under the canonical bijection
// between [0, 2^popcount(mask)) and the subsets of mask (C4): the j-th set
// bit of mask, counted from its LSB, is included in the result iff bit j of
// index is set.
func Subset(index int, mask types.Bitboard) types.Bitboard {
	var occ types.Bitboard
	m := mask
	for j := 0; m != 0; j++ {
		sq := m.PopLsb()
		if index&(1<<uint(j)) != 0 {
			occ = types.PushSquare(occ, sq)
		}
	}
	return occ
}

// EnumerateSubsets calls visit once for every subset of mask, in canonical
// (Subset) order, passing the subset and its index.
func EnumerateSubsets(mask types.Bitboard, visit func(index int, occ types.Bitboard)) {
	n := 1 << uint(mask.PopCount())
	for i := 0; i < n; i++ {
		visit(i, Subset(i, mask))
	}
}
