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

import (
	"fmt"

	"github.com/frankkopp/magicbitboards/internal/types"
)

// ErrSearchExhausted reports that the randomized magic search hit its
// retry ceiling for a (piece, square) pair. Recovery is the caller's job:
// fall back to the compiled-in precomputed magics. It is never fatal by
// itself.
type ErrSearchExhausted struct {
	Square types.Square
	Tries  int
}

func (e *ErrSearchExhausted) Error() string {
	return fmt.Sprintf("magic search exhausted after %d tries for square %s", e.Tries, e.Square)
}

// ErrPrecomputedInvalid reports that a compiled-in magic constant failed
// verification against the reference ray generator. This is a build-time
// bad constant and is fatal: init must abort rather than serve wrong
// attack data.
type ErrPrecomputedInvalid struct {
	Square types.Square
	Magic  types.Bitboard
}

func (e *ErrPrecomputedInvalid) Error() string {
	return fmt.Sprintf("precomputed magic 0x%x for square %s failed verification", uint64(e.Magic), e.Square)
}
