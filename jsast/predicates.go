// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsast

func IsIfStatement(n Node) bool {
	s, ok := n.(*IfStmt)
	return ok && s != nil
}

// IsIfWithoutAlternate reports whether n is an if statement with no else branch.
func IsIfWithoutAlternate(n Node) bool {
	s, ok := n.(*IfStmt)
	return ok && s != nil && s.Alternate == nil
}

func IsBlock(n Node) bool {
	b, ok := n.(*BlockStmt)
	return ok && b != nil
}

// Statements returns the statements making up a branch:
// the list of a block, or the statement itself.
func Statements(s Stmt) []Stmt {
	switch s := s.(type) {
	case nil:
		return nil
	case *BlockStmt:
		return s.List
	}
	return []Stmt{s}
}

// SoleStatement returns the only statement of a branch.
// A bare statement is its own sole statement.
func SoleStatement(s Stmt) (Stmt, bool) {
	list := Statements(s)
	if len(list) != 1 {
		return nil, false
	}
	return list[0], true
}

// IsBlockWithSoleIf reports whether n is a block holding
// a single if statement and nothing else.
func IsBlockWithSoleIf(n Node) bool {
	b, ok := n.(*BlockStmt)
	if !ok || b == nil {
		return false
	}
	sole, ok := SoleStatement(b)
	return ok && IsIfStatement(sole)
}

// Blockify returns s as a block.
// A block is returned unchanged; an empty statement becomes an empty
// block; anything else is wrapped in a new one-statement block.
func Blockify(s Stmt) *BlockStmt {
	switch s := s.(type) {
	case *BlockStmt:
		return s
	case *EmptyStmt, nil:
		return &BlockStmt{}
	}
	return &BlockStmt{List: []Stmt{s}}
}
