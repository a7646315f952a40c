//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package config holds globally available configuration variables
// which are either set by defaults, read from a config file or set
// by command line options.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/frankkopp/magicbitboards/internal/util"
)

// globally available config values.
var (
	// ConfFile hold the path to the used config file (relative to working directory)
	ConfFile = "./config.toml"

	// LogLevel defines the general log level - can be overwritten by cmd line options or config file
	LogLevel = "INFO"

	// Settings is the global configuration read in from file
	Settings conf

	initialized = false
)

type conf struct {
	Magic magicConfiguration
}

// magicConfiguration holds the knobs spec.md §6 names for
// init_engine_tables(options): whether to trust the precomputed magic
// table or search for fresh magics at startup, how many candidates the
// search may try per square before giving up, the PRNG seed driving that
// search, and how many goroutines may search concurrently.
type magicConfiguration struct {
	UsePrecomputedMagics bool
	RetryCeiling         int64
	RngSeed              uint64
	Workers              int
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Magic.UsePrecomputedMagics = true
	Settings.Magic.RetryCeiling = 1 << 28
	Settings.Magic.RngSeed = 0
	Settings.Magic.Workers = 0
}

// Setup reads the configuration file and overlays its values onto the
// hardcoded defaults. A missing or unreadable file is not fatal: the
// defaults set in init() above remain in effect.
func Setup() {
	if initialized {
		return
	}

	path, err := util.ResolveFile(ConfFile)
	if err != nil {
		log.Println("Config file not found. Using defaults. (", err, ")")
	} else if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("Config file could not be parsed. Using defaults. (", err, ")")
	}

	initialized = true
}

// String prints out the current configuration settings and values.
// This uses reflection to read variables and their values.
func (settings *conf) String() string {
	var c strings.Builder
	c.WriteString("Magic Config:\n")
	s := reflect.ValueOf(&settings.Magic).Elem()
	typeOfT := s.Type()
	for i := 0; i < s.NumField(); i++ {
		f := s.Field(i)
		c.WriteString(fmt.Sprintf("%-2d: %-22s %-6s = %v\n", i, typeOfT.Field(i).Name, f.Type(), f.Interface()))
	}
	return c.String()
}
