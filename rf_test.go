// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"rsc.io/jsrf/refactor"
	"rsc.io/jsrf/stats"
)

func TestRun(t *testing.T) {
	files, err := filepath.Glob("testdata/*.txt")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no test cases")
	}

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			t.Log(file)
			ar, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatal(err)
			}
			dir := t.TempDir()
			var wantStdout, wantStderr txtar.File
			for _, file := range ar.Files {
				if file.Name == "stdout" {
					wantStdout = file
					continue
				}
				if file.Name == "stderr" {
					wantStderr = file
					continue
				}
				targ := filepath.Join(dir, file.Name)
				if err := os.MkdirAll(filepath.Dir(targ), 0777); err != nil {
					t.Fatal(err)
				}
				if err := os.WriteFile(targ, file.Data, 0666); err != nil {
					t.Fatal(err)
				}
			}

			var stdout, stderr bytes.Buffer
			rf, err := refactor.New(dir, nil)
			if err != nil {
				t.Fatal(err)
			}
			rf.Stdout = &stdout
			rf.Stderr = &stderr
			rf.ShowDiff = true
			if err := run(rf, string(ar.Comment)); err != nil {
				fmt.Fprintf(rf.Stderr, "ERROR: %v\n", err)
			}

			cmp := func(name string, have, want []byte) {
				have = trimSpace(have)
				want = trimSpace(want)
				if !bytes.Equal(have, want) {
					t.Errorf("%s:\n%s", name, have)
					t.Errorf("want:\n%s", want)
				}
			}
			cmp("stderr", stderr.Bytes(), wantStderr.Data)
			cmp("stdout", stdout.Bytes(), wantStdout.Data)
		})
	}
}

func trimSpace(data []byte) []byte {
	lines := bytes.Split(data, []byte("\n"))
	for i, line := range lines {
		lines[i] = bytes.TrimRight(line, " ")
	}
	return bytes.Join(lines, []byte("\n"))
}

func TestRunWrites(t *testing.T) {
	dir := t.TempDir()
	src := "if (a) {\n  if (b) {\n    f();\n  }\n}\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.js"), []byte(src), 0666))

	rf, err := refactor.New(dir, nil)
	require.NoError(t, err)
	var stderr bytes.Buffer
	rf.Stderr = &stderr
	rf.Stats = stats.New()
	require.NoError(t, run(rf, "mergeif a.js:1:5"))

	data, err := os.ReadFile(filepath.Join(dir, "a.js"))
	require.NoError(t, err)
	assert.Equal(t, "if (a && b) {\n  f();\n}\n", string(data))

	rows, err := rf.Stats.Rows()
	require.NoError(t, err)
	assert.Equal(t, []stats.Row{{Refactoring: "merge if statements", Outcome: stats.Merged, Count: 1}}, rows)
	assert.Empty(t, stderr.String())
}

func TestRunNothing(t *testing.T) {
	rf, err := refactor.New(t.TempDir(), nil)
	require.NoError(t, err)
	assert.NoError(t, run(rf, "# only a comment\n\n"))
	assert.EqualError(t, run(rf, "frobnicate a.js:1:1"), "unknown command frobnicate")
}

func TestTrimComments(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"mergeif a.js:1:1 # merge", "mergeif a.js:1:1"},
		{"# all comment", ""},
		{"mergeif a.js:#12", "mergeif a.js:#12"},
		{`mergeif a.js:/"#"/ # quoted`, `mergeif a.js:/"#"/`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, trimComments(tt.in), tt.in)
	}
}

func TestRootCmdErrors(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cmd := rootCmd()
	cmd.SetArgs([]string{})
	assert.Error(t, cmd.Execute())

	cmd = rootCmd()
	cmd.SetArgs([]string{"mergeif missing.js:1:1"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.js")
}
