// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refactor

import (
	"rsc.io/jsrf/edit"
	"rsc.io/jsrf/jsast"
)

// A MatchShape says how the two conditionals of a Match are nested.
type MatchShape int

const (
	_ MatchShape = iota

	// ShapeNested: the cursor is on the outer conditional,
	// whose consequent is the inner one.
	ShapeNested

	// ShapeParent: the cursor is inside the inner conditional,
	// which is the sole consequent of the outer one.
	ShapeParent

	// ShapeElseIf: the inner conditional is alone in the outer's else block.
	ShapeElseIf
)

func (s MatchShape) String() string {
	switch s {
	case ShapeNested:
		return "nested"
	case ShapeParent:
		return "parent"
	case ShapeElseIf:
		return "else-if"
	}
	return "none"
}

// A MatchFailure says why no pair of conditionals could be merged.
// Larger values are more specific.
type MatchFailure int

const (
	MatchOK MatchFailure = iota
	NoIfStatement
	NoNestedIf
	NestedIfHasSibling
	NestedIfHasAlternate
	WrappingIfHasAlternate
	CommentInJoint
)

func (f MatchFailure) String() string {
	switch f {
	case MatchOK:
		return "ok"
	case NoIfStatement:
		return "no if statement"
	case NoNestedIf:
		return "no nested if"
	case NestedIfHasSibling:
		return "nested if has a sibling"
	case NestedIfHasAlternate:
		return "nested if has an alternate"
	case WrappingIfHasAlternate:
		return "wrapping if has an alternate"
	case CommentInJoint:
		return "comment between the if statements"
	}
	return "unknown"
}

// Eligibility reports whether f rejects a pair that was found,
// as opposed to not finding a pair at all.
func (f MatchFailure) Eligibility() bool {
	return f >= NestedIfHasSibling
}

// A Match is a pair of conditionals that can be merged.
type Match struct {
	Shape     MatchShape
	Outer     jsast.SelectableIf
	Inner     *jsast.IfStmt
	Alternate jsast.Stmt   // Outer's alternate, nil if none
	Body      []jsast.Stmt // Inner's consequent
}

// MatchIfStatements finds the pair of conditionals to merge at sel.
// It walks the conditionals enclosing sel from the innermost outward,
// and stops at the first one that forms a pair with a conditional it holds.
// If there is none, it returns the most specific failure seen.
func MatchIfStatements(root jsast.Node, sel jsast.Selection) (*Match, MatchFailure) {
	chain := jsast.EnclosingIfs(root, sel)
	if len(chain) == 0 {
		return nil, NoIfStatement
	}
	worst := NoNestedIf
	for i, s := range chain {
		m, fail := matchAt(s)
		if fail == MatchOK {
			if m.Shape != ShapeElseIf && i > 0 {
				m.Shape = ShapeParent
			}
			return m, MatchOK
		}
		worst = max(worst, fail)
	}
	return nil, worst
}

// matchAt matches outer against the conditional it holds.
// An outer with an else branch can only merge on that side.
func matchAt(outer jsast.SelectableIf) (*Match, MatchFailure) {
	s := outer.Node()
	if s.Alternate == nil {
		inner, fail := soleIf(s.Consequent)
		if fail != MatchOK {
			return nil, fail
		}
		if len(s.Comments) > 0 || len(inner.Comments) > 0 {
			return nil, CommentInJoint
		}
		return &Match{
			Shape: ShapeNested,
			Outer: outer,
			Inner: inner,
			Body:  jsast.Statements(inner.Consequent),
		}, MatchOK
	}

	fail := NoNestedIf
	if jsast.IsBlock(s.Alternate) {
		var inner *jsast.IfStmt
		inner, fail = soleIf(s.Alternate)
		if fail == MatchOK && len(s.Comments) > 0 {
			return nil, CommentInJoint
		}
		if fail == MatchOK {
			return &Match{
				Shape:     ShapeElseIf,
				Outer:     outer,
				Inner:     inner,
				Alternate: s.Alternate,
				Body:      jsast.Statements(inner.Consequent),
			}, MatchOK
		}
	}
	if _, f := soleIf(s.Consequent); f == MatchOK || f == NestedIfHasAlternate {
		fail = max(fail, WrappingIfHasAlternate)
	}
	return nil, fail
}

// soleIf returns the conditional that is the only statement of branch.
// The conditional must not have an else branch itself.
func soleIf(branch jsast.Stmt) (*jsast.IfStmt, MatchFailure) {
	sole := branch
	if jsast.IsBlockWithSoleIf(branch) {
		sole, _ = jsast.SoleStatement(branch)
	}
	inner, ok := sole.(*jsast.IfStmt)
	if !ok || inner == nil {
		for _, s := range jsast.Statements(branch) {
			if jsast.IsIfStatement(s) {
				return nil, NestedIfHasSibling
			}
		}
		return nil, NoNestedIf
	}
	if !jsast.IsIfWithoutAlternate(inner) {
		return nil, NestedIfHasAlternate
	}
	return inner, MatchOK
}

// Merged returns the conditional that replaces m.Outer.
// It shares every subtree it keeps with the original tree.
func (m *Match) Merged() *jsast.IfStmt {
	outer := m.Outer.Node()
	if m.Shape == ShapeElseIf {
		return &jsast.IfStmt{
			Test:       outer.Test,
			Consequent: jsast.Blockify(outer.Consequent),
			Alternate:  m.Inner,
		}
	}
	return &jsast.IfStmt{
		Test:       &jsast.LogicalExpr{Op: "&&", X: outer.Test, Y: m.Inner.Test},
		Consequent: jsast.Blockify(m.Inner.Consequent),
		Alternate:  m.Alternate,
	}
}

// Rewrite returns the text of f with m merged.
// Only the bytes of the outer conditional change.
func Rewrite(f *jsast.File, m *Match, p *jsast.Printer) []byte {
	loc := m.Outer.Location()
	text := p.Sprint(f, m.Merged(), f.LineIndent(loc.Start.Line))
	buf := edit.NewBuffer(f.Src)
	buf.Replace(loc.Offset, loc.EndOffset, text)
	return buf.Bytes()
}
