// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsast

import (
	"cmp"
	"fmt"
)

// A Position is a location in source text.
// Line and Column are both 0-based; Column counts bytes within the line.
type Position struct {
	Line   int
	Column int
}

// Compare orders positions lexicographically, line first.
// It returns -1, 0 or +1.
func (p Position) Compare(q Position) int {
	if c := cmp.Compare(p.Line, q.Line); c != 0 {
		return c
	}
	return cmp.Compare(p.Column, q.Column)
}

func (p Position) Before(q Position) bool { return p.Compare(q) < 0 }
func (p Position) After(q Position) bool  { return p.Compare(q) > 0 }

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// A Location is the span of source text a node was parsed from.
// End and EndOffset are exclusive.
type Location struct {
	Start     Position
	End       Position
	Offset    int
	EndOffset int
}

func (l Location) String() string {
	return l.Start.String() + "-" + l.End.String()
}

// Contains reports whether p lies within l, boundaries included.
func (l Location) Contains(p Position) bool {
	return !p.Before(l.Start) && !p.After(l.End)
}

// A Selection is a range of source text, or a cursor when Start == End.
// The zero Selection is a cursor at 0:0.
// Selections are only built by NewSelection and Cursor,
// so Start is never after End.
type Selection struct {
	start Position
	end   Position
}

// NewSelection returns the selection between a and b, in whichever
// order they are given.
func NewSelection(a, b Position) Selection {
	if b.Before(a) {
		a, b = b, a
	}
	return Selection{start: a, end: b}
}

// Cursor returns an empty selection at line, column.
func Cursor(line, column int) Selection {
	p := Position{Line: line, Column: column}
	return Selection{start: p, end: p}
}

func (s Selection) Start() Position { return s.start }
func (s Selection) End() Position   { return s.end }
func (s Selection) IsCursor() bool  { return s.start == s.end }

func (s Selection) String() string {
	if s.IsCursor() {
		return s.start.String()
	}
	return s.start.String() + "," + s.end.String()
}

// IsInside reports whether s falls entirely within loc.
func (s Selection) IsInside(loc Location) bool {
	return !s.start.Before(loc.Start) && !s.end.After(loc.End)
}

// Touches reports whether s and loc share at least one position.
func (s Selection) Touches(loc Location) bool {
	return !s.start.After(loc.End) && !s.end.Before(loc.Start)
}

// IsInsideNode reports whether s falls within n's span.
// It is false for nodes that are not selectable.
func (s Selection) IsInsideNode(n Node) bool {
	sn, ok := AsSelectable(n)
	return ok && s.IsInside(sn.Location())
}

// TouchesNode reports whether s touches n's span.
// It is false for nodes that are not selectable.
func (s Selection) TouchesNode(n Node) bool {
	sn, ok := AsSelectable(n)
	return ok && s.Touches(sn.Location())
}
