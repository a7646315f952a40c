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

package oracle

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/magicbitboards/internal/magic"
	"github.com/frankkopp/magicbitboards/internal/types"
)

func sq(label string) types.Square {
	return types.MakeSquare(label)
}

func bb(labels ...string) types.Bitboard {
	var b types.Bitboard
	for _, l := range labels {
		b = types.PushSquare(b, sq(l))
	}
	return b
}

func precomputedOptions() Options {
	return Options{UsePrecomputedMagics: true}
}

func TestBuildReachesReadyWithPrecomputedMagics(t *testing.T) {
	o, err := Build(precomputedOptions())
	assert.NoError(t, err)
	assert.Equal(t, stateReady, o.state)
}

func TestBuildWithSearchFallsBackWhenExhausted(t *testing.T) {
	// A retryCeiling of 1 all but guarantees the search fails on most
	// squares; Build must still reach Ready by falling back to the
	// compiled-in magics rather than leaving a partial table (spec.md
	// §4.9: "never leave initialization in a partial state").
	o, err := Build(Options{UsePrecomputedMagics: false, RetryCeiling: 1, RngSeed: 42, Workers: 2})
	assert.NoError(t, err)
	assert.Equal(t, stateReady, o.state)
}

func TestBuildIsDeterministicGivenSameSeed(t *testing.T) {
	o1, err := Build(Options{UsePrecomputedMagics: false, RetryCeiling: 1 << 16, RngSeed: 7})
	assert.NoError(t, err)
	o2, err := Build(Options{UsePrecomputedMagics: false, RetryCeiling: 1 << 16, RngSeed: 7})
	assert.NoError(t, err)

	for s := types.SqA1; s < types.SqNone; s++ {
		assert.Equal(t, o1.rook[s].Number, o2.rook[s].Number, "rook magic for %s must match across runs with the same seed", s)
		assert.Equal(t, o1.bishop[s].Number, o2.bishop[s].Number, "bishop magic for %s must match across runs with the same seed", s)
	}
}

func TestRookE4EmptyBoard(t *testing.T) {
	o, err := Build(precomputedOptions())
	assert.NoError(t, err)
	got := o.RookAttacks(sq("e4"), types.BbZero)
	assert.Equal(t, types.Bitboard(0x10101010EF101010), got)
	assert.Equal(t, 14, got.PopCount())
}

func TestRookE4WithBlockers(t *testing.T) {
	o, err := Build(precomputedOptions())
	assert.NoError(t, err)
	blockers := bb("e2", "e7", "b4")
	got := o.RookAttacks(sq("e4"), blockers)
	want := bb("e2", "e3", "e5", "e6", "e7", "b4", "c4", "d4", "f4", "g4", "h4")
	assert.Equal(t, want, got)
}

func TestBishopD4WithBlockers(t *testing.T) {
	o, err := Build(precomputedOptions())
	assert.NoError(t, err)
	blockers := bb("b2", "f6")
	got := o.BishopAttacks(sq("d4"), blockers)
	want := bb("c3", "b2", "e3", "f2", "g1", "c5", "b6", "a7", "e5", "f6")
	assert.Equal(t, want, got)
}

func TestQueenA1EmptyBoard(t *testing.T) {
	o, err := Build(precomputedOptions())
	assert.NoError(t, err)
	got := o.QueenAttacks(sq("a1"), types.BbZero)
	assert.Equal(t, 21, got.PopCount())
	assert.Equal(t, o.RookAttacks(sq("a1"), types.BbZero)|o.BishopAttacks(sq("a1"), types.BbZero), got)
}

func TestKnightB1(t *testing.T) {
	o, err := Build(precomputedOptions())
	assert.NoError(t, err)
	got := o.KnightAttacks(sq("b1"))
	assert.Equal(t, bb("a3", "c3", "d2"), got)
	assert.Equal(t, 3, got.PopCount())
}

func TestWhitePawnE4(t *testing.T) {
	o, err := Build(precomputedOptions())
	assert.NoError(t, err)
	got := o.PawnAttacks(types.White, sq("e4"))
	assert.Equal(t, bb("d5", "f5"), got)
}

func TestKingAttackPopcountLaw(t *testing.T) {
	o, err := Build(precomputedOptions())
	assert.NoError(t, err)
	for s := types.SqA1; s < types.SqNone; s++ {
		n := o.KingAttacks(s).PopCount()
		assert.Contains(t, []int{3, 5, 8}, n, "king attack popcount at %s", s)
	}
}

func TestOracleCrossPropertyAgreement(t *testing.T) {
	o, err := Build(precomputedOptions())
	assert.NoError(t, err)
	rnd := rand.New(rand.NewSource(2))
	for i := 0; i < 10000; i++ {
		s := types.Square(rnd.Intn(int(types.SqNone)))
		occ := types.Bitboard(rnd.Uint64())
		if rnd.Intn(2) == 0 {
			assert.Equal(t, magic.ReferenceAttack(magic.RookDirections, s, occ&o.rook[s].Mask), o.RookAttacks(s, occ))
		} else {
			assert.Equal(t, magic.ReferenceAttack(magic.BishopDirections, s, occ&o.bishop[s].Mask), o.BishopAttacks(s, occ))
		}
	}
}
