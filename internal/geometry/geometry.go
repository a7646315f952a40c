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

// Package geometry holds the static board-shape facts the magic search and
// the reference ray generator both need: the two main diagonals, and the
// per-square "edge" mask used to shrink a slider's attack mask down to its
// relevant-occupancy mask.
package geometry

import "github.com/frankkopp/magicbitboards/internal/types"

// DiagA1H8Bb is the long diagonal from a1 to h8.
const DiagA1H8Bb types.Bitboard = 0x8040201008040201

// DiagA8H1Bb is the long diagonal from a8 to h1.
const DiagA8H1Bb types.Bitboard = 0x0102040810204080

// Edges returns the board-edge squares that are never part of sq's
// relevant-occupancy mask: an edge square is always a terminal stop for a
// ray through it regardless of its own occupancy, so it carries no
// information about which attack subset applies (spec I4). A square's own
// rank/file edges are excluded from its own edge mask, since a piece
// standing on an edge still needs the *other* edges of its rank/file
// considered relevant along the perpendicular rays.
func Edges(sq types.Square) types.Bitboard {
	rankEdges := (types.Rank1_Bb | types.Rank8_Bb) &^ (types.Rank1_Bb << (8 * uint(sq.RankOf())))
	fileEdges := (types.FileA_Bb | types.FileH_Bb) &^ (types.FileA_Bb << uint(sq.FileOf()))
	return rankEdges | fileEdges
}
