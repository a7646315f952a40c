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

// Package oracle assembles the per-square magic entries and leaper tables
// built by internal/magic into a single owned value, and exposes the
// query API (C8) that reads them. Unlike the teacher's package-level
// rookMagics/bishopMagics/pawnAttacks/knightAttacks/kingAttacks globals
// populated by an init() call chain, every table here lives on an Oracle
// value returned by Build: there is no package-level mutable state, so two
// Oracles (e.g. one built from precomputed magics, one from a fresh
// search, in a test comparing the two) can coexist safely.
package oracle

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/frankkopp/magicbitboards/internal/assert"
	"github.com/frankkopp/magicbitboards/internal/geometry"
	"github.com/frankkopp/magicbitboards/internal/logging"
	"github.com/frankkopp/magicbitboards/internal/magic"
	"github.com/frankkopp/magicbitboards/internal/types"
)

// state tracks the initialization lifecycle spec.md §4.9 names:
// Uninitialized -> LeapersReady -> MasksReady -> MagicsReady -> Ready.
// Transitions only ever move forward; queries are only valid in Ready.
type state int

const (
	stateUninitialized state = iota
	stateLeapersReady
	stateMasksReady
	stateMagicsReady
	stateReady
)

// Options configures Build. It mirrors internal/config's Magic section
// (spec.md §6's init_engine_tables(options)) but Build takes it by value
// so callers outside internal/config (tests, in particular) can construct
// one without going through the TOML-backed config package at all.
type Options struct {
	// UsePrecomputedMagics skips the randomized search and loads the
	// compiled-in magic.BishopMagicNumbers/RookMagicNumbers instead.
	UsePrecomputedMagics bool
	// RetryCeiling bounds the number of candidates Search tries per
	// square before giving up and falling back to the precomputed magic.
	RetryCeiling int
	// RngSeed seeds the per-square PRNGs. 0 lets each square derive its
	// own non-zero seed from its square index.
	RngSeed uint64
	// Workers bounds how many (piece, square) searches run concurrently.
	// 0 means runtime.GOMAXPROCS(0).
	Workers int
}

// Oracle is the immutable, fully-populated table set a query reads from.
// Every field is written exactly once, during Build, and never mutated
// afterward — the "happens-before barrier" spec.md §5 requires is Build's
// return: any goroutine holding a *Oracle it returned may query it freely
// without further synchronization.
type Oracle struct {
	state state

	rook   [types.SqLength]magic.Entry
	bishop [types.SqLength]magic.Entry

	king   magic.LeaperTable
	knight magic.LeaperTable
	pawn   [types.ColorLength]magic.LeaperTable
}

var log = logging.GetLog("oracle")

// Build runs the full initialization pipeline and returns a Ready Oracle,
// or an error if a precomputed magic failed verification (fatal; spec.md
// §7's PrecomputedMagicInvalid). Leaper tables are built first (I3: they
// don't depend on anything computed later), then relevant-occupancy masks,
// then the per-square magic search or precomputed load, run concurrently
// across squares bounded by Options.Workers.
func Build(opts Options) (*Oracle, error) {
	o := &Oracle{state: stateUninitialized}

	o.king = magic.BuildKingTable()
	o.knight = magic.BuildKnightTable()
	o.pawn[types.White] = magic.BuildPawnTable(types.White)
	o.pawn[types.Black] = magic.BuildPawnTable(types.Black)
	o.state = stateLeapersReady

	var edges [types.SqLength]types.Bitboard
	for sq := types.SqA1; sq < types.SqNone; sq++ {
		edges[sq] = geometry.Edges(sq)
	}
	o.state = stateMasksReady

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	sem := semaphore.NewWeighted(int64(workers))
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error
	record := func(err error) {
		if err == nil {
			return
		}
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	buildOne := func(directions [4]types.Direction, sq types.Square, magics [types.SqLength]types.Bitboard, dst *[types.SqLength]magic.Entry) {
		defer wg.Done()
		defer sem.Release(1)

		entry, err := buildEntry(directions, sq, edges[sq], magics[sq], opts)
		if err != nil {
			record(err)
			return
		}
		dst[sq] = *entry
	}

	for sq := types.SqA1; sq < types.SqNone; sq++ {
		sq := sq
		wg.Add(2)
		_ = sem.Acquire(ctx, 1)
		go buildOne(magic.RookDirections, sq, magic.RookMagicNumbers, &o.rook)
		_ = sem.Acquire(ctx, 1)
		go buildOne(magic.BishopDirections, sq, magic.BishopMagicNumbers, &o.bishop)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, fmt.Errorf("oracle: table build failed: %w", firstErr)
	}

	o.state = stateMagicsReady
	o.state = stateReady
	return o, nil
}

// buildEntry resolves a single (directions, square) magic entry per the
// two-path policy spec.md §4.9 describes: use the compiled-in magic
// directly when UsePrecomputedMagics is set, otherwise search, falling
// back to the compiled-in magic (and logging) if the search is exhausted.
// Either way, initialization never completes in a partial state: the
// returned error is nil only when the returned Entry is fully populated
// and verified.
func buildEntry(directions [4]types.Direction, sq types.Square, edges, precomputedNumber types.Bitboard, opts Options) (*magic.Entry, error) {
	if opts.UsePrecomputedMagics {
		return magic.Precomputed(directions, sq, edges, precomputedNumber)
	}

	seed := opts.RngSeed
	if seed == 0 {
		seed = uint64(sq) + 1
	} else {
		seed ^= uint64(sq)*2685821657736338717 + 1
	}

	entry, err := magic.Search(directions, sq, edges, seed, opts.RetryCeiling)
	if err == nil {
		return entry, nil
	}

	log.Warningf("magic search exhausted for square %s (%v); falling back to precomputed magic", sq, err)
	return magic.Precomputed(directions, sq, edges, precomputedNumber)
}

// RookAttacks returns the rook's attack set from sq given blockers (C8).
func (o *Oracle) RookAttacks(sq types.Square, blockers types.Bitboard) types.Bitboard {
	o.checkReady(sq)
	return o.rook[sq].Attack(blockers)
}

// BishopAttacks returns the bishop's attack set from sq given blockers (C8).
func (o *Oracle) BishopAttacks(sq types.Square, blockers types.Bitboard) types.Bitboard {
	o.checkReady(sq)
	return o.bishop[sq].Attack(blockers)
}

// QueenAttacks returns the union of the rook and bishop attack sets (C8).
func (o *Oracle) QueenAttacks(sq types.Square, blockers types.Bitboard) types.Bitboard {
	o.checkReady(sq)
	return o.rook[sq].Attack(blockers) | o.bishop[sq].Attack(blockers)
}

// KingAttacks returns the king's attack set from sq (C7/C8, I3: no
// occupancy dependence).
func (o *Oracle) KingAttacks(sq types.Square) types.Bitboard {
	o.checkReady(sq)
	return o.king[sq]
}

// KnightAttacks returns the knight's attack set from sq (C7/C8).
func (o *Oracle) KnightAttacks(sq types.Square) types.Bitboard {
	o.checkReady(sq)
	return o.knight[sq]
}

// PawnAttacks returns the attack set of a c-colored pawn on sq (C7/C8).
func (o *Oracle) PawnAttacks(c types.Color, sq types.Square) types.Bitboard {
	o.checkReady(sq)
	assert.Assert(c.IsValid(), "oracle: invalid color %d", c)
	return o.pawn[c][sq]
}

// checkReady enforces the query-path contract (spec.md §4.8/§4.9): the
// Oracle must be Ready and sq must be a real board square. A violation is
// a programming error, not a runtime condition callers should recover
// from — debug builds assert and panic, release builds are undefined
// (per spec.md §7's explicit policy for ContractViolation).
func (o *Oracle) checkReady(sq types.Square) {
	assert.Assert(o.state == stateReady, "oracle: query before Build completed (state=%d)", o.state)
	assert.Assert(sq.IsValid(), "oracle: invalid square %d", sq)
}

// PrintBitboard renders b as an 8x8 ASCII diagnostic grid (spec.md §6).
func PrintBitboard(b types.Bitboard) string {
	return types.PrintBitboard(b)
}
