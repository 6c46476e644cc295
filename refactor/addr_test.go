// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refactor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rsc.io/jsrf/jsast"
)

// input text for matches.
// Note that every line is 5 bytes,
// so absolute addresses are easy to calculate.
var testInput = `1 10
2 20
3 30
4 40
5 50
6 60
7 70
8 80
9 90
`

var addrToByteRangeTests = []struct {
	start  int
	addr   string
	lo, hi int
}{
	{0, "0", 0, 0},
	{0, "1", 0, 5},
	{0, "2", 5, 10},
	{0, "/10/", 2, 4},
	{0, "/10/+#0", 4, 4},
	{0, "/10/+0", 5, 5},
	{0, "/10/+", 5, 10},
	{0, "/10/+1", 5, 10},
	{0, "/10/+2", 10, 15},
	{0, "/10/+3", 15, 20},
	{0, "/90/", 42, 44},
	{0, "/90/-#0", 42, 42},
	{0, "/90/-0", 40, 40},
	{0, "/90/-", 35, 40},
	{0, "/90/-1", 35, 40},
	{0, "/90/-2", 30, 35},
	{0, "/10/,/90/", 2, 44},
	{0, "/10/,/90/-#0", 2, 42},
	{0, "/10/,/90/-0", 2, 40},
	{0, "/10/,/90/-", 2, 40},
	{0, "/10/,/90/-1", 2, 40},
	{0, "/10/,/90/-2", 2, 35},
	{0, "/10/,/90/-3", 2, 30},
	{0, "/10/,/90/-4", 2, 25},
	{0, "/10/,/90/-5", 2, 20},
	{0, "/10/,/90/-6", 2, 15},
	{0, "/10/,/90/-7", 2, 10},
	{0, "/10/,/90/-8", 2, 5},

	{0, "/50/", 22, 24},
	{0, "/50/-", 15, 20},
	{0, "/50/--", 10, 15},
	{0, "/50/---", 5, 10},
	{0, "/50/+", 25, 30},
	{0, "/50/++", 30, 35},
	{0, "/50/-0", 20, 20},
	{0, "/50/-0+", 20, 25},
	{0, "/50/-+", 20, 25},
	{0, "/50/-0+0", 20, 20},
	{0, "/50/-+0", 20, 20},
	{0, "/50/-1+0", 20, 20},
	{0, "/10/-0", 0, 0},
	{0, "/10/-0+", 0, 5},
	{0, "/10/-+", 0, 5},
	{0, "/90/+0", 45, 45},
	{0, "/90/+0-", 40, 45},
	{0, "/90/+-", 40, 45},
	{0, "/90/+", 45, 45},
	{0, "/90/-3", 25, 30},
	{0, "/20/-2", 0, 0},
	{0, "2-#1", 4, 4},
	{0, "$-#1", 44, 44},
	{0, "/90/-#2", 40, 40},
}

func TestAddrToByteRange(t *testing.T) {
	data := []byte(testInput)
	for _, tt := range addrToByteRangeTests {
		lo, hi, err := addrToByteRange(tt.addr, tt.start, data)
		if lo != tt.lo || hi != tt.hi || err != nil {
			t.Errorf("addrToByteRange(%#q, %d, data) = %d, %d, %v, want %d, %d, nil", tt.addr, tt.start, lo, hi, err, tt.lo, tt.hi)
		}
	}
}

// newTestRefactor returns a Refactor over a temporary directory
// holding the given files.
func newTestRefactor(t *testing.T, files map[string]string) *Refactor {
	t.Helper()
	dir := t.TempDir()
	for name, text := range files {
		file := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(file), 0777))
		require.NoError(t, os.WriteFile(file, []byte(text), 0666))
	}
	r, err := New(dir, nil)
	require.NoError(t, err)
	return r
}

func TestSplitAddr(t *testing.T) {
	name, addr, err := SplitAddr("src/a.js:2:3,4:1")
	require.NoError(t, err)
	assert.Equal(t, "src/a.js", name)
	assert.Equal(t, "2:3,4:1", addr)

	for _, arg := range []string{"a.js", ":1:1", ""} {
		_, _, err := SplitAddr(arg)
		assert.Error(t, err, "SplitAddr(%q)", arg)
	}
}

func TestSelection(t *testing.T) {
	r := newTestRefactor(t, map[string]string{"a.js": "if (a) {\n  if (b) {}\n}\n"})
	s := r.Load()

	sel := func(l1, c1, l2, c2 int) jsast.Selection {
		return jsast.NewSelection(jsast.Position{Line: l1, Column: c1}, jsast.Position{Line: l2, Column: c2})
	}
	tests := []struct {
		addr string
		want jsast.Selection
	}{
		{"1:1", jsast.Cursor(0, 0)},
		{"2:5", jsast.Cursor(1, 4)},
		{"2:3,2:12", sel(1, 2, 1, 11)},
		{"2:3,1:1", sel(0, 0, 1, 2)},
		{"4:1", jsast.Cursor(3, 0)},
		{"1", sel(0, 0, 0, 8)},
		{`/if \(b\)/`, sel(1, 2, 1, 8)},
		{`/if \(b\)/-`, sel(0, 0, 0, 8)},
		{`/if \(b\)/+-`, sel(1, 0, 1, 11)},
		{"#11", jsast.Cursor(1, 2)},
	}
	for _, tt := range tests {
		got, err := s.Selection("a.js", tt.addr)
		if assert.NoError(t, err, tt.addr) {
			assert.Equal(t, tt.want, got, tt.addr)
		}
	}

	for _, addr := range []string{"9:1", "0:1", "1:0", "/zzz/"} {
		_, err := s.Selection("a.js", addr)
		assert.Error(t, err, addr)
	}
	_, err := s.Selection("missing.js", "1:1")
	assert.Error(t, err)
}
