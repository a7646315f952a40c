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
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitboardConstants(t *testing.T) {
	tests := []struct {
		value    Bitboard
		expected int
	}{
		{BbZero, 0},
		{BbAll, 64},
		{BbOne, 1},
		{Bitboard(128), 1},
		{Bitboard(7), 3},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, bits.OnesCount64(uint64(test.value)))
	}
}

func TestFileAndRankBb(t *testing.T) {
	assert.EqualValues(t, 8, FileA_Bb.PopCount())
	assert.EqualValues(t, 8, FileH_Bb.PopCount())
	assert.EqualValues(t, 8, Rank1_Bb.PopCount())
	assert.EqualValues(t, 8, Rank8_Bb.PopCount())
	assert.True(t, FileA_Bb.Has(SqA1))
	assert.True(t, FileA_Bb.Has(SqA8))
	assert.False(t, FileA_Bb.Has(SqB1))
	assert.True(t, Rank1_Bb.Has(SqA1))
	assert.True(t, Rank1_Bb.Has(SqH1))
	assert.False(t, Rank1_Bb.Has(SqA2))
}

func TestSquareBb(t *testing.T) {
	assert.EqualValues(t, 1, SqA1.Bb())
	assert.EqualValues(t, BbOne<<63, SqH8.Bb())
	for sq := SqA1; sq < SqNone; sq++ {
		assert.EqualValues(t, 1, sq.Bb().PopCount())
	}
}

func TestPushPopHasSquare(t *testing.T) {
	b := BbZero
	b = PushSquare(b, SqE4)
	assert.True(t, b.Has(SqE4))
	assert.EqualValues(t, 1, b.PopCount())
	b = PushSquare(b, SqD5)
	assert.EqualValues(t, 2, b.PopCount())
	b = PopSquare(b, SqE4)
	assert.False(t, b.Has(SqE4))
	assert.True(t, b.Has(SqD5))
	assert.EqualValues(t, 1, b.PopCount())
}

func TestShiftBitboardCardinal(t *testing.T) {
	tests := []struct {
		name string
		from Square
		dir  Direction
		to   Square // SqNone means "shift produces an empty board"
	}{
		{"north", SqE4, North, SqE5},
		{"south", SqE4, South, SqE3},
		{"east", SqE4, East, SqF4},
		{"west", SqE4, West, SqD4},
		{"northeast", SqE4, Northeast, SqF5},
		{"southeast", SqE4, Southeast, SqF3},
		{"southwest", SqE4, Southwest, SqD3},
		{"northwest", SqE4, Northwest, SqD5},

		{"north off board", SqE8, North, SqNone},
		{"south off board", SqE1, South, SqNone},
		{"east wraps off file h", SqH4, East, SqNone},
		{"west wraps off file a", SqA4, West, SqNone},
		{"northeast wraps off file h", SqH4, Northeast, SqNone},
		{"northeast off top rank", SqE8, Northeast, SqNone},
		{"southwest wraps off file a", SqA4, Southwest, SqNone},
		{"northwest wraps off file a", SqA4, Northwest, SqNone},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := ShiftBitboard(test.from.Bb(), test.dir)
			if test.to == SqNone {
				assert.EqualValues(t, BbZero, got, "%s shifted %s should leave the board", test.from, test.dir)
			} else {
				assert.Equal(t, test.to.Bb(), got, "%s shifted %s should land on %s", test.from, test.dir, test.to)
			}
		})
	}
}

func TestShiftBitboardKnightLeaps(t *testing.T) {
	tests := []struct {
		name string
		from Square
		dir  Direction
		to   Square
	}{
		{"nne", SqD4, NorthNorthEast, SqE6},
		{"nnw", SqD4, NorthNorthWest, SqC6},
		{"nee", SqD4, NorthEastEast, SqF5},
		{"nww", SqD4, NorthWestWest, SqB5},
		{"sse", SqD4, SouthSouthEast, SqE2},
		{"ssw", SqD4, SouthSouthWest, SqC2},
		{"see", SqD4, SouthEastEast, SqF3},
		{"sww", SqD4, SouthWestWest, SqB3},

		{"nne wraps off file h", SqH4, NorthNorthEast, SqNone},
		{"nee wraps off file g/h", SqG4, NorthEastEast, SqNone},
		{"nee wraps off file g/h from h", SqH4, NorthEastEast, SqNone},
		{"nnw wraps off file a", SqA4, NorthNorthWest, SqNone},
		{"nww wraps off file a/b", SqB4, NorthWestWest, SqNone},
		{"sse wraps off file h", SqH4, SouthSouthEast, SqNone},
		{"ssw wraps off file a", SqA4, SouthSouthWest, SqNone},
		{"see wraps off file g/h", SqG4, SouthEastEast, SqNone},
		{"sww wraps off file a/b", SqB4, SouthWestWest, SqNone},

		{"nne off top ranks", SqD7, NorthNorthEast, SqNone},
		{"sse off bottom ranks", SqD2, SouthSouthEast, SqNone},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := ShiftBitboard(test.from.Bb(), test.dir)
			if test.to == SqNone {
				assert.EqualValues(t, BbZero, got, "%s shifted %s should leave the board", test.from, test.dir)
			} else {
				assert.Equal(t, test.to.Bb(), got, "%s shifted %s should land on %s", test.from, test.dir, test.to)
			}
		})
	}
}

func TestShiftBitboardMultiBit(t *testing.T) {
	// a full rank shifted east must lose the h-file bit, not wrap it onto a1.
	got := ShiftBitboard(Rank4_Bb, East)
	assert.False(t, got.Has(SqA5))
	assert.EqualValues(t, 7, got.PopCount())

	// a full file shifted north must lose the rank-8 bit, not vanish entirely
	// beyond what the truncation already guarantees.
	got = ShiftBitboard(FileA_Bb, North)
	assert.EqualValues(t, 7, got.PopCount())
	assert.False(t, got.Has(SqA1))
	assert.True(t, got.Has(SqA2))
}

func TestLsbMsbPopLsb(t *testing.T) {
	b := SqD4.Bb() | SqA1.Bb() | SqH8.Bb()
	assert.Equal(t, SqA1, b.Lsb())
	assert.Equal(t, SqH8, b.Msb())

	popped := b.PopLsb()
	assert.Equal(t, SqA1, popped)
	assert.EqualValues(t, 2, b.PopCount())
	assert.False(t, b.Has(SqA1))
}

func TestPopCount(t *testing.T) {
	assert.EqualValues(t, 0, BbZero.PopCount())
	assert.EqualValues(t, 64, BbAll.PopCount())
	assert.EqualValues(t, 8, Rank1_Bb.PopCount())
}

func TestBitboardStringers(t *testing.T) {
	b := SqA1.Bb() | SqH8.Bb()
	assert.Len(t, b.String(), 64)
	assert.Contains(t, b.StringBoard(), "X")
	assert.Contains(t, b.StringGrouped(), "(")
	printed := PrintBitboard(b)
	assert.Contains(t, printed, "popcount=2")
	assert.Contains(t, printed, "lsb=0")
}

func TestFileRankSquareDistance(t *testing.T) {
	assert.Equal(t, 0, FileDistance(FileA, FileA))
	assert.Equal(t, 7, FileDistance(FileA, FileH))
	assert.Equal(t, 0, RankDistance(Rank1, Rank1))
	assert.Equal(t, 7, RankDistance(Rank1, Rank8))

	assert.Equal(t, 0, SquareDistance(SqE4, SqE4))
	assert.Equal(t, 1, SquareDistance(SqE4, SqE5))
	assert.Equal(t, 1, SquareDistance(SqE4, SqF5))
	assert.Equal(t, 7, SquareDistance(SqA1, SqH8))
	assert.Equal(t, 4, SquareDistance(SqA1, SqE4))
}
