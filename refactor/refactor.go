// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package refactor implements refactorings of JavaScript and TypeScript
// programs and the bookkeeping around them: snapshots of files with
// pending edits, code addresses, configuration and error reporting.
package refactor

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"rsc.io/jsrf/jsast"
	"rsc.io/jsrf/stats"
)

// A Refactor holds the state for an active refactoring.
type Refactor struct {
	Stdout   io.Writer
	Stderr   io.Writer
	ShowDiff bool
	Config   *Config
	Log      *slog.Logger
	Stats    *stats.Recorder

	dir  string
	last *Snapshot
}

// New returns a new refactoring of the files in dir (usually ".").
// A nil cfg means DefaultConfig.
func New(dir string, cfg *Config) (*Refactor, error) {
	dir, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return nil, err
	}
	dir = filepath.Clean(dir)

	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Refactor{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Config: cfg,
		dir:    dir,
	}
	return r, nil
}

func (r *Refactor) Dir() string {
	return r.dir
}

// Load returns a new Snapshot. It starts from the text the previous
// Snapshot would write, so commands in a script see each other's edits.
func (r *Refactor) Load() *Snapshot {
	s := &Snapshot{
		r:      r,
		parent: r.last,
		files:  make(map[string]*File),
		edits:  make(map[string]*Edit),
		Errors: new(ErrorList),
	}
	r.last = s
	return s
}

// Engine returns an engine for refactoring the named file.
func (r *Refactor) Engine(name string) (*Engine, error) {
	lang, err := r.Config.languageFor(name)
	if err != nil {
		return nil, err
	}
	e := &Engine{
		Language: lang,
		Printer:  &jsast.Printer{Indent: r.Config.Indent},
		Log:      r.Log,
		Stats:    r.Stats,
	}
	return e, nil
}

// abs returns the absolute form of the file name.
func (r *Refactor) abs(name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(r.dir, name)
}

// shortPath returns an absolute or relative name for path, whatever is shorter.
func (r *Refactor) shortPath(path string) string {
	if rel, err := filepath.Rel(r.dir, path); err == nil && len(rel) < len(path) {
		return rel
	}
	return path
}

func cut(s, sep string) (before, after string, ok bool) {
	if i := strings.Index(s, sep); i >= 0 {
		return s[:i], s[i+len(sep):], true
	}
	return s, "", false
}
