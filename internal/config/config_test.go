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

package config

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

// make tests run in the projects root directory.
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func TestSetupLoadsConfigFile(t *testing.T) {
	initialized = false
	Setup()
	assert.True(t, Settings.Magic.UsePrecomputedMagics)
	assert.Equal(t, int64(1<<28), Settings.Magic.RetryCeiling)
}

func TestSetupIsIdempotent(t *testing.T) {
	initialized = false
	Setup()
	Settings.Magic.Workers = 7
	Setup()
	assert.Equal(t, 7, Settings.Magic.Workers, "second Setup call must be a no-op once initialized")
}

func TestSetupFallsBackToDefaultsWhenFileMissing(t *testing.T) {
	initialized = false
	orig := ConfFile
	ConfFile = "./no-such-config-file.toml"
	defer func() { ConfFile = orig }()

	Setup()
	assert.True(t, Settings.Magic.UsePrecomputedMagics)
	assert.Equal(t, int64(1<<28), Settings.Magic.RetryCeiling)
}

func TestString(t *testing.T) {
	initialized = false
	Setup()
	out := Settings.String()
	assert.Contains(t, out, "UsePrecomputedMagics")
	assert.Contains(t, out, "RetryCeiling")
}
