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

// magicbench builds the attack oracle, checks it against the reference ray
// generator over a batch of random trials, and reports a couple of
// diagnostic bitboards and timings. It does not parse FEN, does not play a
// game, and does not speak UCI — those are all out of scope for an
// attack-oracle library (spec.md's Non-goals).
package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/op/go-logging"
	"github.com/pkg/profile"

	"github.com/frankkopp/magicbitboards/internal/config"
	"github.com/frankkopp/magicbitboards/internal/geometry"
	internallogging "github.com/frankkopp/magicbitboards/internal/logging"
	"github.com/frankkopp/magicbitboards/internal/magic"
	"github.com/frankkopp/magicbitboards/internal/oracle"
	"github.com/frankkopp/magicbitboards/internal/types"
	"github.com/frankkopp/magicbitboards/internal/util"
)

var out = internallogging.Out

// logLevels maps the -loglvl flag's names to go-logging severities, the
// same string-to-level vocabulary the teacher's config.LogLevels map uses.
var logLevels = map[string]logging.Level{
	"critical": logging.CRITICAL,
	"error":    logging.ERROR,
	"warning":  logging.WARNING,
	"notice":   logging.NOTICE,
	"info":     logging.INFO,
	"debug":    logging.DEBUG,
}

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	seed := flag.Uint64("seed", 0, "rng seed for the magic search (0 uses the config value; a config value of 0 derives a seed per square)")
	noPrecomputed := flag.Bool("no-precomputed", false, "run the randomized magic search instead of loading the compiled-in magics")
	retryCeiling := flag.Int64("retry-ceiling", 0, "max candidates per (piece, square) before giving up (0 uses the config default)")
	workers := flag.Int("workers", 0, "max concurrent per-square magic builds (0 uses the config value; a config value of 0 uses GOMAXPROCS)")
	trials := flag.Int("trials", 10000, "number of random cross-property trials to run")
	cpuprofile := flag.Bool("cpuprofile", false, "write a CPU profile (cpu.pprof) of the run")
	flag.Parse()

	if *cpuprofile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	if lvl, found := logLevels[*logLvl]; found {
		internallogging.Level = lvl
	}
	log := internallogging.GetLog("magicbench")

	opts := oracle.Options{
		UsePrecomputedMagics: config.Settings.Magic.UsePrecomputedMagics && !*noPrecomputed,
		RetryCeiling:         int(config.Settings.Magic.RetryCeiling),
		RngSeed:              config.Settings.Magic.RngSeed,
		Workers:              config.Settings.Magic.Workers,
	}
	if *seed != 0 {
		opts.RngSeed = *seed
	}
	if *retryCeiling != 0 {
		opts.RetryCeiling = int(*retryCeiling)
	}
	if *workers != 0 {
		opts.Workers = *workers
	}

	start := time.Now()
	o, err := oracle.Build(opts)
	if err != nil {
		log.Errorf("failed to build oracle: %v", err)
		os.Exit(1)
	}
	util.TimeTrack(start, "oracle.Build")

	if ok := runCrossPropertyCheck(o, *trials, log); !ok {
		os.Exit(1)
	}

	out.Println("rook attacks from e4, empty board:")
	out.Print(oracle.PrintBitboard(o.RookAttacks(types.MakeSquare("e4"), types.BbZero)))

	out.Println("queen attacks from a1, empty board:")
	out.Print(oracle.PrintBitboard(o.QueenAttacks(types.MakeSquare("a1"), types.BbZero)))
}

// runCrossPropertyCheck is the command-line equivalent of
// internal/oracle's TestOracleCrossPropertyAgreement: it exercises P1
// (magic_attacks == ray_walk, restricted to the relevant-occupancy mask
// per P2) over n random (square, occupancy) triples for both sliders and
// reports the first disagreement, if any, instead of silently trusting
// the build.
func runCrossPropertyCheck(o *oracle.Oracle, n int, log *logging.Logger) bool {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i := 0; i < n; i++ {
		sq := types.Square(rnd.Intn(int(types.SqNone)))
		occ := types.Bitboard(rnd.Uint64())
		edges := geometry.Edges(sq)

		rookMask := magic.RelevantMask(magic.RookDirections, sq, edges)
		if want, got := magic.ReferenceAttack(magic.RookDirections, sq, occ&rookMask), o.RookAttacks(sq, occ); got != want {
			log.Errorf("P1 violation: rook %s occ=%#x got=%#x want=%#x", sq, uint64(occ), uint64(got), uint64(want))
			return false
		}

		bishopMask := magic.RelevantMask(magic.BishopDirections, sq, edges)
		if want, got := magic.ReferenceAttack(magic.BishopDirections, sq, occ&bishopMask), o.BishopAttacks(sq, occ); got != want {
			log.Errorf("P1 violation: bishop %s occ=%#x got=%#x want=%#x", sq, uint64(occ), uint64(got), uint64(want))
			return false
		}
	}
	out.Printf("cross-property check passed over %d trials\n", n)
	return true
}
