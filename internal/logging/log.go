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

// Package logging is a helper for the "github.com/op/go-logging" package to
// reduce the lines of code needed at each call site to one line: GetLog
// returns a named, preconfigured Logger with a stdout backend and a
// standard time/level/message format.
package logging

import (
	"os"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Out is a localized-number printer used by callers (cmd/magicbench) to
// format diagnostic counts the same way the teacher's
// search/evaluator code does.
var Out = message.NewPrinter(language.German)

var standardFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`,
)

// Level is the minimum severity logged by Loggers returned from GetLog. It
// defaults to INFO; callers (cmd/magicbench, via -loglvl) may change it
// before calling GetLog.
var Level = logging.INFO

// GetLog returns a named Logger backed by os.Stdout, formatted with
// standardFormat and leveled at the package's current Level. Each call
// site should name its logger after its own package ("oracle", "magicbench")
// so log lines are attributable.
func GetLog(name string) *logging.Logger {
	log := logging.MustGetLogger(name)
	backend := logging.NewLogBackend(os.Stdout, "", 0)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(Level, "")
	log.SetBackend(leveled)
	return log
}
