// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refactor

import (
	"bytes"
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"rsc.io/jsrf/diff"
	"rsc.io/jsrf/edit"
)

// An Edit is the queue of changes a Snapshot makes to one file.
type Edit struct {
	Name    string
	OldText []byte
	Buffer  *edit.Buffer
}

func (e *Edit) NewText() []byte {
	return e.Buffer.Bytes()
}

func (s *Snapshot) editFor(name string) (*Edit, error) {
	f, err := s.File(name)
	if err != nil {
		return nil, err
	}
	ed := s.edits[f.Name]
	if ed == nil {
		ed = &Edit{Name: f.Name, OldText: f.Text, Buffer: edit.NewBuffer(f.Text)}
		s.edits[f.Name] = ed
	}
	return ed, nil
}

// ReplaceAt replaces the bytes [lo, hi) of the named file with repl.
// Offsets are into the file as this Snapshot first saw it.
func (s *Snapshot) ReplaceAt(name string, lo, hi int, repl string) error {
	ed, err := s.editFor(name)
	if err != nil {
		return err
	}
	ed.Buffer.Replace(lo, hi, repl)
	return nil
}

func (s *Snapshot) InsertAt(name string, pos int, repl string) error {
	return s.ReplaceAt(name, pos, pos, repl)
}

func (s *Snapshot) DeleteAt(name string, lo, hi int) error {
	return s.ReplaceAt(name, lo, hi, "")
}

// currentBytes returns the text of the named file with the edits of s
// and its parents applied, or nil if no Snapshot has read the file.
func (s *Snapshot) currentBytes(name string) []byte {
	for ; s != nil; s = s.parent {
		if ed := s.edits[name]; ed != nil {
			return ed.NewText()
		}
		if f := s.files[name]; f != nil {
			return f.Text
		}
	}
	return nil
}

// oldBytes returns the text of the named file before any Snapshot edited it.
func (s *Snapshot) oldBytes(name string) []byte {
	for _, s := range s.chain() {
		if f := s.files[name]; f != nil {
			return f.Text
		}
	}
	return nil
}

// fileNames returns the names of all files read by s and its parents,
// sorted by directory and then by name.
func (s *Snapshot) fileNames() []string {
	var names []string
	for _, s := range s.chain() {
		for name := range s.files {
			if !slices.Contains(names, name) {
				names = append(names, name)
			}
		}
	}
	slices.SortFunc(names, func(a, b string) int {
		return cmp.Or(
			strings.Compare(filepath.Dir(a), filepath.Dir(b)),
			strings.Compare(a, b))
	})
	return names
}

// Modified returns the names of the files whose text has changed.
func (s *Snapshot) Modified() []string {
	var names []string
	for _, name := range s.fileNames() {
		if !bytes.Equal(s.oldBytes(name), s.currentBytes(name)) {
			names = append(names, name)
		}
	}
	return names
}

// Diff returns a unified diff of every modified file.
func (s *Snapshot) Diff() ([]byte, error) {
	var diffs []byte
	for _, name := range s.Modified() {
		rel := filepath.ToSlash(name)
		if filepath.IsAbs(name) {
			rel = filepath.ToSlash(filepath.Base(name))
		}
		d, err := diff.Diff("old/"+rel, s.oldBytes(name), "new/"+rel, s.currentBytes(name))
		if err != nil {
			return nil, err
		}
		diffs = append(diffs, d...)
	}
	return diffs, nil
}

// Write writes every modified file back to disk.
func (s *Snapshot) Write() error {
	defer s.Errors.flushOnPanic(s.r.Stderr)

	failed := false
	for _, name := range s.Modified() {
		if err := os.WriteFile(s.r.abs(name), s.currentBytes(name), 0666); err != nil {
			fmt.Fprintf(s.r.Stderr, "%s\n", err)
			failed = true
		}
	}
	if failed {
		return fmt.Errorf("errors writing files")
	}
	return nil
}
