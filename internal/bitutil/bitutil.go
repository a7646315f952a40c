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

// Package bitutil implements the bit primitives (popcount, bitscan,
// set/test/clear) the rest of the oracle is built on. Every function here
// is total and side-effect free: b=0 is a documented, defined input for
// every function in this package (lsb index 64, pop a no-op), never
// undefined behaviour.
//
// Two implementations of bitscan/popcount exist side by side: a hardware
// intrinsic path backed by math/bits (used by default), and a portable
// fallback (De Bruijn-style multiply-and-lookup for bitscan, Brian
// Kernighan's loop for popcount) kept for platforms where the intrinsic
// path is unavailable and to cross-check the intrinsic path in tests.
package bitutil

import "math/bits"

// UseIntrinsics selects the math/bits hardware-intrinsic path when true
// (the default). Set to false to force the portable fallback, e.g. to
// verify the two implementations agree.
var UseIntrinsics = true

// bitScanMagic is the De Bruijn-like multiplier used by the portable
// bitscan fallback.
// See http://pradu.us/old/Nov27_2008/Buzz/research/magic/Bitboards.pdf
// section 3.2.
const bitScanMagic uint64 = 0x07EDD5E59A4E28C2

// bitScanLookup maps the top 6 bits of (b & -b) * bitScanMagic to the
// index of the least significant set bit of b.
var bitScanLookup = [64]int{
	63, 0, 58, 1, 59, 47, 53, 2,
	60, 39, 48, 27, 54, 33, 42, 3,
	61, 51, 37, 40, 49, 18, 28, 20,
	55, 30, 34, 11, 43, 14, 22, 4,
	62, 57, 46, 52, 38, 26, 32, 41,
	50, 36, 17, 19, 29, 10, 13, 21,
	56, 45, 25, 31, 35, 16, 9, 12,
	44, 24, 15, 8, 23, 7, 6, 5,
}

// LsbIndex returns the index in [0,63] of the least significant set bit
// of b. Policy for b=0: returns 64 (one past the last valid square), never
// panics — callers that need a typed "no square" sentinel should compare
// the result against 64 rather than relying on undefined behaviour.
func LsbIndex(b uint64) int {
	if b == 0 {
		return 64
	}
	if UseIntrinsics {
		return bits.TrailingZeros64(b)
	}
	return bitScanLookup[(b&-b)*bitScanMagic>>58]
}

// MsbIndex returns the index in [0,63] of the most significant set bit of
// b, or 64 if b is zero.
func MsbIndex(b uint64) int {
	if b == 0 {
		return 64
	}
	if UseIntrinsics {
		return 63 - bits.LeadingZeros64(b)
	}
	// portable fallback: halve the search space repeatedly
	n := 0
	if b > 0xFFFFFFFF {
		b >>= 32
		n += 32
	}
	if b > 0xFFFF {
		b >>= 16
		n += 16
	}
	if b > 0xFF {
		b >>= 8
		n += 8
	}
	if b > 0xF {
		b >>= 4
		n += 4
	}
	if b > 0x3 {
		b >>= 2
		n += 2
	}
	if b > 0x1 {
		n += 1
	}
	return n
}

// PopLsb returns the index of the least significant set bit of *b and
// clears that bit in *b. Returns 64 if *b is zero (and leaves it
// unchanged).
func PopLsb(b *uint64) int {
	if *b == 0 {
		return 64
	}
	idx := LsbIndex(*b)
	*b &= *b - 1
	return idx
}

// PopCount returns the number of set bits in b.
func PopCount(b uint64) int {
	if UseIntrinsics {
		return bits.OnesCount64(b)
	}
	// Brian Kernighan's algorithm
	count := 0
	for b != 0 {
		b &= b - 1
		count++
	}
	return count
}

// SetBit returns b with the bit at index sq set.
func SetBit(b uint64, sq int) uint64 {
	return b | (uint64(1) << uint(sq))
}

// ClearBit returns b with the bit at index sq cleared.
func ClearBit(b uint64, sq int) uint64 {
	return b &^ (uint64(1) << uint(sq))
}

// TestBit reports whether the bit at index sq is set in b.
func TestBit(b uint64, sq int) bool {
	return b&(uint64(1)<<uint(sq)) != 0
}
