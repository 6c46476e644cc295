// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refactor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"rsc.io/jsrf/jsast"
)

// A Snapshot is a set of source files plus a set of edits to be made to
// those files. Files are read the first time they are asked for.
type Snapshot struct {
	r      *Refactor
	parent *Snapshot

	// files contains the contents of files before any edits in this Snapshot.
	// It's keyed by short path (File.Name).
	files map[string]*File

	// edits contains edits made to files by this Snapshot. It's keyed by short
	// path and only contains entries for files that have been modified.
	edits map[string]*Edit

	Errors *ErrorList
}

// File is a source file as this Snapshot first saw it.
type File struct {
	Name string // Short path (either relative to r.dir or absolute)
	Text []byte
}

func (s *Snapshot) Refactor() *Refactor { return s.r }

// File returns the named file, reading it if needed.
// A file edited by an earlier Snapshot has its edited text.
func (s *Snapshot) File(name string) (*File, error) {
	name = s.r.shortPath(s.r.abs(name))
	if f := s.files[name]; f != nil {
		return f, nil
	}
	var text []byte
	if s.parent != nil {
		text = s.parent.currentBytes(name)
	}
	if text == nil {
		var err error
		text, err = os.ReadFile(s.r.abs(name))
		if err != nil {
			return nil, err
		}
	}
	f := &File{Name: name, Text: text}
	s.files[name] = f
	return f, nil
}

// Parse parses the named file as it is before this Snapshot's edits.
func (s *Snapshot) Parse(ctx context.Context, name string) (*jsast.File, error) {
	f, err := s.File(name)
	if err != nil {
		return nil, err
	}
	lang, err := s.r.Config.languageFor(f.Name)
	if err != nil {
		return nil, err
	}
	return jsast.Parse(ctx, lang, f.Name, f.Text)
}

// ErrorAt records an error at pos in the named file.
// An empty name records an error with no position.
func (s *Snapshot) ErrorAt(name string, pos jsast.Position, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	msg = strings.TrimRight(msg, "\n")
	msg = strings.ReplaceAll(msg, "\n", "\n\t")
	if name == "" {
		s.Errors.Add(&Error{Msg: msg})
	} else {
		s.Errors.Add(&Error{Pos: posOf(name, pos), Msg: msg})
	}
}

// Addr returns the file:line:col form of pos in the named file.
func (s *Snapshot) Addr(name string, pos jsast.Position) string {
	return posOf(name, pos).String()
}

// chain returns s and its ancestors, oldest first.
func (s *Snapshot) chain() []*Snapshot {
	var list []*Snapshot
	for ; s != nil; s = s.parent {
		list = append([]*Snapshot{s}, list...)
	}
	return list
}
