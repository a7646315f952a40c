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

// RookDirections are the four orthogonal rays a rook slides along.
var RookDirections = [4]types.Direction{types.North, types.East, types.South, types.West}

// BishopDirections are the four diagonal rays a bishop slides along.
var BishopDirections = [4]types.Direction{types.Northeast, types.Southeast, types.Southwest, types.Northwest}

// ReferenceAttack is the ground-truth ray walker (C3): it steps one square
// at a time along each of the given directions from sq, adding every
// stepped square to the attack set and stopping a ray (inclusive of the
// blocker) the moment it crosses an occupied square. It is also the
// fallback used to verify both searched and precomputed magics.
func ReferenceAttack(directions [4]types.Direction, sq types.Square, occupied types.Bitboard) types.Bitboard {
	attack := types.BbZero
	for _, d := range directions {
		s := sq
		for {
			s = s.To(d)
			if !s.IsValid() {
				break
			}
			attack = types.PushSquare(attack, s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}
