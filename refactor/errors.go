// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refactor

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"rsc.io/jsrf/jsast"
)

// An ErrorReason is a failure shown to the user through Editor.ShowError.
type ErrorReason int

const (
	_ ErrorReason = iota
	DidNotFoundIfStatementsToMerge
)

func (r ErrorReason) String() string {
	switch r {
	case DidNotFoundIfStatementsToMerge:
		return "didn't find if statements to merge"
	}
	return fmt.Sprintf("ErrorReason(%d)", int(r))
}

// A Pos is a position in a named file, in the 1-based form compilers print.
// A Pos with Line 0 is not valid.
type Pos struct {
	File string
	Line int
	Col  int
}

// posOf converts the 0-based position p in file to a Pos.
func posOf(file string, p jsast.Position) Pos {
	return Pos{File: file, Line: p.Line + 1, Col: p.Column + 1}
}

func (p Pos) IsValid() bool { return p.Line > 0 }

func (p Pos) String() string {
	s := p.File
	if p.IsValid() {
		if s != "" {
			s += ":"
		}
		s += fmt.Sprintf("%d:%d", p.Line, p.Col)
	}
	if s == "" {
		s = "-"
	}
	return s
}

// An Error is an error at a particular source position. It may have attached
// errors at other positions (but those must not have secondary errors).
type Error struct {
	Pos Pos
	Msg string

	Secondary []*Error
}

func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
	} else {
		return e.Msg
	}
}

type errorKey struct {
	pos Pos
	msg string
}

// ErrorList is a set of Errors. It is also an error itself. The zero value is
// an empty list, ready to use.
type ErrorList struct {
	errs []*Error
	set  map[errorKey]bool
}

// Add adds and error to l. If the error is an Error or a jsast.SyntaxError,
// it uses the position information from the error. If the error is an
// ErrorList, it merges all errors from that list into this list. Otherwise,
// it adds the error with no position information. It suppresses duplicate
// errors (same position and message).
func (l *ErrorList) Add(err error) {
	var e *Error
	var syntax *jsast.SyntaxError

	switch err := err.(type) {
	case nil:
		return

	case *ErrorList:
		for _, e := range err.errs {
			l.Add(e)
		}
		return

	case *Error:
		e = err

	default:
		if errors.As(err, &syntax) {
			e = &Error{posOf(syntax.File, syntax.Pos), "syntax error", nil}
		} else {
			e = &Error{Pos{}, err.Error(), nil}
		}
	}

	k := errorKey{e.Pos, e.Msg}
	if !l.set[k] {
		if l.set == nil {
			l.set = make(map[errorKey]bool)
		}
		l.errs = append(l.errs, e)
		l.set[k] = true
	}
}

// Len returns the number of distinct errors in l.
func (l *ErrorList) Len() int {
	return len(l.errs)
}

// Error sorts, deduplicates, and returns a "\n" separated list of formatted
// errors. Note that the result does not end in "\n" because the caller is
// expected to add that.
func (l *ErrorList) Error() string {
	if len(l.errs) == 0 {
		return "no errors"
	}

	// Sort the error list.
	slices.SortStableFunc(l.errs, func(e1, e2 *Error) int {
		p1, p2 := e1.Pos, e2.Pos
		if p1.File != p2.File {
			return strings.Compare(p1.File, p2.File)
		}
		if p1.Line != p2.Line {
			return p1.Line - p2.Line
		}
		return p1.Col - p2.Col
	})

	// Collapse duplicate messages that appear in many locations on the
	// assumption that the refactoring amplified some issue and the user doesn't
	// want to be flooded.
	count := make(map[string]int)
	for _, e := range l.errs {
		count[e.Msg]++
	}

	// Print messages.
	buf := new(strings.Builder)
	for _, e := range l.errs {
		msg := e.Msg
		switch {
		case count[msg] > 3:
			n := count[e.Msg]
			count[e.Msg] = -1
			msg += fmt.Sprintf(" [× %d]", n)

		case count[msg] < 0:
			continue
		}

		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}

		if e.Pos.IsValid() {
			fmt.Fprintf(buf, "%s: %s", e.Pos, msg)
		} else {
			fmt.Fprintf(buf, "%s", msg)
		}
		for _, e2 := range e.Secondary {
			fmt.Fprintf(buf, "\n%s", e2)
		}
	}
	return buf.String()
}

// Err returns an error equivalent to this error list.
// If the list is empty, Err returns nil.
func (l *ErrorList) Err() error {
	if len(l.errs) == 0 {
		return nil
	}
	return l
}

func (l *ErrorList) flushOnPanic(w io.Writer) {
	if len(l.errs) == 0 {
		// If there are no errors to flush, don't even affect the panic chain.
		return
	}

	p := recover()
	if p == nil {
		return
	}
	defer panic(p)

	fmt.Fprintf(w, "%s\n", l.Error())
}
