// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsast is a small syntax tree for JavaScript and TypeScript,
// just detailed enough for tree-pattern refactorings.
//
// Nodes the refactorings inspect (conditionals, blocks, declarations,
// logical operators) have their own types. Everything else is kept as a
// RawStmt or RawExpr covering its source text.
//
// Every node produced by the parser carries a Location. Nodes built by a
// rewrite do not, and are printed structurally; see Printer.
package jsast

// A Node is any node of the tree.
// Loc returns nil for synthetic nodes, and is safe to call on a nil pointer.
type Node interface {
	Loc() *Location
}

// A Stmt is a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// An Expr is an expression node.
type Expr interface {
	Node
	exprNode()
}

type (
	// A Program is the root of a parsed file.
	Program struct {
		Body     []Stmt
		Location *Location
	}

	// A BlockStmt is a braced statement list.
	BlockStmt struct {
		List     []Stmt
		Location *Location
	}

	// An IfStmt is a conditional statement.
	// Alternate is nil when there is no else branch;
	// for an else-if chain it is another *IfStmt.
	// Comments holds the comments between its parts: around the
	// parentheses of the test, before a branch, or after the else keyword.
	IfStmt struct {
		Test       Expr
		Consequent Stmt
		Alternate  Stmt
		Comments   []*Comment
		Location   *Location
	}

	// An ExprStmt is an expression used as a statement.
	ExprStmt struct {
		X        Expr
		Location *Location
	}

	// A VarDecl is a var, let or const declaration.
	VarDecl struct {
		Kind     string
		Decls    []*VarDeclarator
		Location *Location
	}

	// A VarDeclarator is one name = value pair of a VarDecl.
	// Type is the TypeScript annotation text, including its colon.
	VarDeclarator struct {
		Name     Expr
		Type     string
		Init     Expr
		Location *Location
	}

	// An EmptyStmt is a lone semicolon.
	EmptyStmt struct {
		Location *Location
	}

	// A Comment is a comment in statement position or inside an if statement's joints.
	Comment struct {
		Text     string
		Location *Location
	}

	// A RawStmt is any other statement.
	// Kind is the grammar's name for it, such as "return_statement".
	// Nested holds the statements found inside it, such as a function
	// or loop body, so that they can be reached by a selection.
	RawStmt struct {
		Kind     string
		Text     string
		Nested   []Stmt
		Location *Location
	}
)

type (
	Ident struct {
		Name     string
		Location *Location
	}

	// A LogicalExpr is X Op Y for Op one of &&, || and ??.
	LogicalExpr struct {
		Op       string
		X, Y     Expr
		Location *Location
	}

	ParenExpr struct {
		X        Expr
		Location *Location
	}

	// An ObjectExpr is an object literal.
	// Props holds *Property values, and RawExpr for spreads and methods.
	ObjectExpr struct {
		Props    []Node
		Location *Location
	}

	// A Property is key: value, or a shorthand key.
	// For a shorthand property Value == Key.
	Property struct {
		Key       Expr
		Value     Expr
		Shorthand bool
		Location  *Location
	}

	// A RawExpr is any other expression.
	// Nested is as for RawStmt.
	RawExpr struct {
		Kind     string
		Text     string
		Nested   []Stmt
		Location *Location
	}
)

func (n *Program) Loc() *Location {
	if n == nil {
		return nil
	}
	return n.Location
}

func (n *BlockStmt) Loc() *Location {
	if n == nil {
		return nil
	}
	return n.Location
}

func (n *IfStmt) Loc() *Location {
	if n == nil {
		return nil
	}
	return n.Location
}

func (n *ExprStmt) Loc() *Location {
	if n == nil {
		return nil
	}
	return n.Location
}

func (n *VarDecl) Loc() *Location {
	if n == nil {
		return nil
	}
	return n.Location
}

func (n *VarDeclarator) Loc() *Location {
	if n == nil {
		return nil
	}
	return n.Location
}

func (n *EmptyStmt) Loc() *Location {
	if n == nil {
		return nil
	}
	return n.Location
}

func (n *Comment) Loc() *Location {
	if n == nil {
		return nil
	}
	return n.Location
}

func (n *RawStmt) Loc() *Location {
	if n == nil {
		return nil
	}
	return n.Location
}

func (n *Ident) Loc() *Location {
	if n == nil {
		return nil
	}
	return n.Location
}

func (n *LogicalExpr) Loc() *Location {
	if n == nil {
		return nil
	}
	return n.Location
}

func (n *ParenExpr) Loc() *Location {
	if n == nil {
		return nil
	}
	return n.Location
}

func (n *ObjectExpr) Loc() *Location {
	if n == nil {
		return nil
	}
	return n.Location
}

func (n *Property) Loc() *Location {
	if n == nil {
		return nil
	}
	return n.Location
}

func (n *RawExpr) Loc() *Location {
	if n == nil {
		return nil
	}
	return n.Location
}

func (*BlockStmt) stmtNode() {}
func (*IfStmt) stmtNode()    {}
func (*ExprStmt) stmtNode()  {}
func (*VarDecl) stmtNode()   {}
func (*EmptyStmt) stmtNode() {}
func (*Comment) stmtNode()   {}
func (*RawStmt) stmtNode()   {}

func (*Ident) exprNode()       {}
func (*LogicalExpr) exprNode() {}
func (*ParenExpr) exprNode()   {}
func (*ObjectExpr) exprNode()  {}
func (*RawExpr) exprNode()     {}

// A File is a parsed source text.
type File struct {
	Name     string
	Src      []byte
	Language string
	Program  *Program

	lines    []int      // offset of each line start
	verbatim []Location // template and multi-line strings, never re-indented
}

// Text returns the source text covered by loc.
func (f *File) Text(loc Location) string {
	return string(f.Src[loc.Offset:loc.EndOffset])
}

// Offset returns the byte offset of p, clamped to the text.
func (f *File) Offset(p Position) int {
	if p.Line < 0 {
		return 0
	}
	if p.Line >= len(f.lines) {
		return len(f.Src)
	}
	off := f.lines[p.Line] + p.Column
	end := len(f.Src)
	if p.Line+1 < len(f.lines) {
		end = f.lines[p.Line+1] - 1
	}
	return min(off, end)
}

// Position returns the position of byte offset off.
func (f *File) Position(off int) Position {
	line := 0
	for line+1 < len(f.lines) && f.lines[line+1] <= off {
		line++
	}
	return Position{Line: line, Column: off - f.lines[line]}
}

// LineIndent returns the leading blanks of the given line.
func (f *File) LineIndent(line int) string {
	if line < 0 || line >= len(f.lines) {
		return ""
	}
	i := f.lines[line]
	j := i
	for j < len(f.Src) && (f.Src[j] == ' ' || f.Src[j] == '\t') {
		j++
	}
	return string(f.Src[i:j])
}

func (f *File) inVerbatim(off int) bool {
	for _, v := range f.verbatim {
		if v.Offset < off && off < v.EndOffset {
			return true
		}
	}
	return false
}

func lineStarts(src []byte) []int {
	lines := []int{0}
	for i, c := range src {
		if c == '\n' {
			lines = append(lines, i+1)
		}
	}
	return lines
}

// NewFile returns a File for src with no syntax tree.
// It supports the position arithmetic of code addresses.
func NewFile(name string, src []byte) *File {
	return &File{Name: name, Src: src, lines: lineStarts(src)}
}
