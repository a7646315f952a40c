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

package types

import (
	"fmt"
	"strings"

	"github.com/frankkopp/magicbitboards/internal/bitutil"
	"github.com/frankkopp/magicbitboards/internal/util"
)

// Bitboard is a 64 bit unsigned int, one bit per board square, LERF-mapped
// (bit i is square i: a1=0 ... h8=63). It is pure data: interpretation
// (piece presence, attack set, mask) is determined by its use-site.
type Bitboard uint64

// Various constant bitboards. Computed at compile time from shifts of a
// single seed value each - no runtime precompute pass is needed for these.
const (
	BbZero Bitboard = 0
	BbAll  Bitboard = ^BbZero
	BbOne  Bitboard = 1

	FileA_Bb Bitboard = 0x0101010101010101
	FileB_Bb Bitboard = FileA_Bb << 1
	FileC_Bb Bitboard = FileA_Bb << 2
	FileD_Bb Bitboard = FileA_Bb << 3
	FileE_Bb Bitboard = FileA_Bb << 4
	FileF_Bb Bitboard = FileA_Bb << 5
	FileG_Bb Bitboard = FileA_Bb << 6
	FileH_Bb Bitboard = FileA_Bb << 7

	Rank1_Bb Bitboard = 0xFF
	Rank2_Bb Bitboard = Rank1_Bb << (8 * 1)
	Rank3_Bb Bitboard = Rank1_Bb << (8 * 2)
	Rank4_Bb Bitboard = Rank1_Bb << (8 * 3)
	Rank5_Bb Bitboard = Rank1_Bb << (8 * 4)
	Rank6_Bb Bitboard = Rank1_Bb << (8 * 5)
	Rank7_Bb Bitboard = Rank1_Bb << (8 * 6)
	Rank8_Bb Bitboard = Rank1_Bb << (8 * 7)

	notFileA Bitboard = ^FileA_Bb
	notFileH Bitboard = ^FileH_Bb
	notRank1 Bitboard = ^Rank1_Bb
	notRank8 Bitboard = ^Rank8_Bb
)

// Bb returns the single-bit Bitboard for sq (1 << sq). A plain shift: no
// precomputed array, no init-order dependency.
func (sq Square) Bb() Bitboard {
	return BbOne << sq
}

// PushSquare returns b with the bit for s set.
func PushSquare(b Bitboard, s Square) Bitboard {
	return b | s.Bb()
}

// PopSquare returns b with the bit for s cleared.
func PopSquare(b Bitboard, s Square) Bitboard {
	return b &^ s.Bb()
}

// Has reports whether s is set in b.
func (b Bitboard) Has(s Square) bool {
	return b&s.Bb() != 0
}

// ShiftBitboard shifts every bit of b one square in direction d, masking
// off the file it would wrap from so a bit on file h shifted East does not
// reappear on file a of the next rank. This is the only edge logic the
// leaper tables (C7) need; sliding attacks are computed by ray walking
// instead (see the magic package).
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return (notRank8 & b) << 8
	case South:
		return b >> 8
	case East:
		return (notFileH & b) << 1
	case West:
		return (notFileA & b) >> 1
	case Northeast:
		return (notRank8 & notFileH & b) << 9
	case Southeast:
		return (notFileH & b) >> 7
	case Southwest:
		return (notFileA & b) >> 9
	case Northwest:
		return (notRank8 & notFileA & b) << 7
	case NorthNorthEast:
		return (b << 17) & notFileA
	case NorthNorthWest:
		return (b << 15) & notFileH
	case NorthEastEast:
		return (b << 10) & notFileA & notFileB
	case NorthWestWest:
		return (b << 6) & notFileG & notFileH
	case SouthSouthEast:
		return (b >> 15) & notFileA
	case SouthSouthWest:
		return (b >> 17) & notFileH
	case SouthEastEast:
		return (b >> 6) & notFileA & notFileB
	case SouthWestWest:
		return (b >> 10) & notFileG & notFileH
	default:
		return b
	}
}

// notFileG, notFileB guard the two-file wraps the knight leaps cross, in
// addition to the single-file guards used by the single-step directions.
// Rank overflow needs no explicit guard: a bit shifted past bit 63 (or
// below bit 0) is dropped by Go's fixed-width shift, which is already the
// correct result since there is no rank 9 or rank 0 to land on.
const (
	notFileG Bitboard = ^FileG_Bb
	notFileB Bitboard = ^FileB_Bb
)

// Lsb returns the square of the least significant set bit of b, or SqNone
// if b is zero.
func (b Bitboard) Lsb() Square {
	return Square(bitutil.LsbIndex(uint64(b)))
}

// Msb returns the square of the most significant set bit of b, or SqNone
// if b is zero.
func (b Bitboard) Msb() Square {
	return Square(bitutil.MsbIndex(uint64(b)))
}

// PopLsb returns the Lsb square of *b and clears that bit in *b. Returns
// SqNone if *b is zero (and leaves it unchanged).
func (b *Bitboard) PopLsb() Square {
	u := uint64(*b)
	sq := bitutil.PopLsb(&u)
	*b = Bitboard(u)
	return Square(sq)
}

// PopCount returns the number of set bits in b.
func (b Bitboard) PopCount() int {
	return bitutil.PopCount(uint64(b))
}

// String returns the 64-bit binary representation of b, MSB (h8) first.
func (b Bitboard) String() string {
	return fmt.Sprintf("%-0.64b", b)
}

// StringBoard renders b as an 8x8 ASCII grid with rank 8 on top and files
// a-h left to right: 'X' for a set bit, blank for a cleared one.
func (b Bitboard) StringBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank1; r <= Rank8; r++ {
		for f := FileA; f <= FileH; f++ {
			if b.Has(SquareOf(f, Rank8-r)) {
				os.WriteString("| X ")
			} else {
				os.WriteString("|   ")
			}
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return os.String()
}

// StringGrouped returns the 64 bits grouped by rank (LSB/a1 first),
// followed by the decimal value in parentheses.
func (b Bitboard) StringGrouped() string {
	var os strings.Builder
	for i := 0; i < 64; i++ {
		if i > 0 && i%8 == 0 {
			os.WriteString(".")
		}
		if b&(BbOne<<i) != 0 {
			os.WriteString("1")
		} else {
			os.WriteString("0")
		}
	}
	os.WriteString(fmt.Sprintf(" (%d)", uint64(b)))
	return os.String()
}

// PrintBitboard renders b the way the external diagnostic interface
// specifies: an 8x8 grid with rank 8 on top, '1' for set bits and '.' for
// cleared ones, followed by popcount and the LSB square index.
func PrintBitboard(b Bitboard) string {
	var os strings.Builder
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			if b.Has(SquareOf(f, r)) {
				os.WriteString("1")
			} else {
				os.WriteString(".")
			}
		}
		os.WriteString("\n")
		if r == Rank1 {
			break
		}
	}
	lsb := b.Lsb()
	os.WriteString(fmt.Sprintf("popcount=%d lsb=%d\n", b.PopCount(), int(lsb)))
	return os.String()
}

// FileDistance returns the absolute distance in files between f1 and f2.
func FileDistance(f1, f2 File) int {
	return util.Abs(int(f2) - int(f1))
}

// RankDistance returns the absolute distance in ranks between r1 and r2.
func RankDistance(r1, r2 Rank) int {
	return util.Abs(int(r2) - int(r1))
}

// SquareDistance returns the Chebyshev distance between s1 and s2 (the
// number of king steps to get from one to the other).
func SquareDistance(s1, s2 Square) int {
	if !s1.IsValid() || !s2.IsValid() {
		return 0
	}
	return util.Max(FileDistance(s1.FileOf(), s2.FileOf()), RankDistance(s1.RankOf(), s2.RankOf()))
}
