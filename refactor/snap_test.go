// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refactor

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rsc.io/jsrf/jsast"
)

func TestSnapshotEdits(t *testing.T) {
	r := newTestRefactor(t, map[string]string{
		"a.js":     "a\nb\n",
		"sub/b.js": "x\n",
	})

	s := r.Load()
	require.NoError(t, s.ReplaceAt("a.js", 2, 3, "c"))
	require.NoError(t, s.InsertAt("a.js", 0, "// top\n"))
	_, err := s.File("sub/b.js")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.js"}, s.Modified())

	d, err := s.Diff()
	require.NoError(t, err)
	want := "diff old/a.js new/a.js\n" +
		"--- old/a.js\n" +
		"+++ new/a.js\n" +
		"@@ -1,2 +1,3 @@\n" +
		"+// top\n" +
		" a\n" +
		"-b\n" +
		"+c\n"
	assert.Equal(t, want, string(d))

	// A later snapshot starts from the edited text.
	s2 := r.Load()
	f, err := s2.File("a.js")
	require.NoError(t, err)
	assert.Equal(t, "// top\na\nc\n", string(f.Text))
	require.NoError(t, s2.DeleteAt("sub/b.js", 0, 2))
	assert.Equal(t, []string{"a.js", "sub/b.js"}, s2.Modified())

	require.NoError(t, s2.Write())
	data, err := os.ReadFile(filepath.Join(r.Dir(), "a.js"))
	require.NoError(t, err)
	assert.Equal(t, "// top\na\nc\n", string(data))
	data, err = os.ReadFile(filepath.Join(r.Dir(), "sub", "b.js"))
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestSnapshotFileNames(t *testing.T) {
	r := newTestRefactor(t, map[string]string{"a.js": "", "z.js": "", "sub/m.js": ""})
	s := r.Load()
	for _, name := range []string{"sub/m.js", "z.js", "a.js", filepath.Join(r.Dir(), "z.js")} {
		_, err := s.File(name)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"a.js", "z.js", filepath.Join("sub", "m.js")}, s.fileNames())

	_, err := s.File("nope.js")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestSnapshotParse(t *testing.T) {
	r := newTestRefactor(t, map[string]string{
		"a.ts":   "let x: number = 1;\n",
		"bad.js": "if (\n",
		"a.txt":  "",
	})
	s := r.Load()

	f, err := s.Parse(context.Background(), "a.ts")
	require.NoError(t, err)
	assert.Equal(t, jsast.TypeScript, f.Language)
	assert.IsType(t, &jsast.VarDecl{}, f.Program.Body[0])

	_, err = s.Parse(context.Background(), "bad.js")
	var se *jsast.SyntaxError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "bad.js", se.File)

	_, err = s.Parse(context.Background(), "a.txt")
	assert.ErrorIs(t, err, jsast.ErrUnknownLanguage)
}

func TestSnapshotErrors(t *testing.T) {
	r := newTestRefactor(t, nil)
	s := r.Load()
	s.ErrorAt("a.js", jsast.Position{Line: 0, Column: 4}, "no %s", "merge")
	s.ErrorAt("a.js", jsast.Position{Line: 0, Column: 4}, "no %s", "merge")
	s.ErrorAt("", jsast.Position{}, "first line\nsecond line\n")
	s.Errors.Add(&jsast.SyntaxError{File: "b.js", Pos: jsast.Position{Line: 2, Column: 0}})

	assert.Equal(t, 3, s.Errors.Len())
	assert.Equal(t, "a.js:1:5", s.Addr("a.js", jsast.Position{Line: 0, Column: 4}))
	want := "first line\n\tsecond line\n" +
		"a.js:1:5: no merge\n" +
		"b.js:3:1: syntax error"
	assert.Equal(t, want, s.Errors.Err().Error())
}

func TestErrorListCollapses(t *testing.T) {
	var l ErrorList
	assert.NoError(t, l.Err())
	for i := range 5 {
		l.Add(&Error{Pos: Pos{File: "a.js", Line: i + 1, Col: 1}, Msg: "same"})
	}
	l.Add(errors.New("other"))
	var l2 ErrorList
	l2.Add(&l)
	assert.Equal(t, 6, l2.Len())
	assert.Equal(t, "other\na.js:1:1: same [× 5]", l2.Error())
}

func TestPos(t *testing.T) {
	assert.Equal(t, "-", Pos{}.String())
	assert.Equal(t, "a.js", Pos{File: "a.js"}.String())
	assert.Equal(t, "3:4", Pos{Line: 3, Col: 4}.String())
	assert.Equal(t, "a.js:3:4", posOf("a.js", jsast.Position{Line: 2, Column: 3}).String())
}

func TestWriteFails(t *testing.T) {
	r := newTestRefactor(t, map[string]string{"a.js": "a\n"})
	var stderr bytes.Buffer
	r.Stderr = &stderr
	s := r.Load()
	require.NoError(t, s.ReplaceAt("a.js", 0, 1, "b"))
	require.NoError(t, os.Remove(filepath.Join(r.Dir(), "a.js")))
	require.NoError(t, os.Mkdir(filepath.Join(r.Dir(), "a.js"), 0777))

	assert.EqualError(t, s.Write(), "errors writing files")
	assert.True(t, strings.Contains(stderr.String(), "a.js"))
}
