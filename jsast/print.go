// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsast

import (
	"fmt"
	"strings"
)

// DefaultIndent is the indentation unit used when a Printer has none.
const DefaultIndent = "  "

// A Printer turns nodes back into source text.
//
// Nodes with a location are printed from the text they were parsed from,
// shifted to the indentation at which they are printed. Lines that start
// inside a template string are left alone. Synthetic nodes are laid out
// structurally, one statement per line, with blocks indented by Indent.
type Printer struct {
	Indent string
}

// Sprint returns the text of n as it would appear starting at a line
// indented by indent. The first line itself is not indented.
// f supplies the text of located nodes.
func (p *Printer) Sprint(f *File, n Node, indent string) string {
	pp := &printer{f: f, unit: p.Indent}
	if pp.unit == "" {
		pp.unit = DefaultIndent
	}
	pp.node(n, indent)
	return pp.buf.String()
}

type printer struct {
	f    *File
	unit string
	buf  strings.Builder
}

func (p *printer) print(s ...string) {
	for _, x := range s {
		p.buf.WriteString(x)
	}
}

func (p *printer) node(n Node, indent string) {
	if loc := n.Loc(); loc != nil {
		p.source(*loc, indent)
		return
	}
	switch n := n.(type) {
	case *Program:
		for i, s := range n.Body {
			if i > 0 {
				p.print("\n", indent)
			}
			p.node(s, indent)
		}
	case *BlockStmt:
		p.block(n, indent)
	case *IfStmt:
		p.ifStmt(n, indent)
	case *ExprStmt:
		p.node(n.X, indent)
		p.print(";")
	case *VarDecl:
		p.print(n.Kind, " ")
		for i, d := range n.Decls {
			if i > 0 {
				p.print(", ")
			}
			p.node(d, indent)
		}
		p.print(";")
	case *VarDeclarator:
		p.node(n.Name, indent)
		p.print(n.Type)
		if n.Init != nil {
			p.print(" = ")
			p.node(n.Init, indent)
		}
	case *EmptyStmt:
		p.print(";")
	case *Comment:
		p.print(n.Text)
	case *RawStmt:
		p.print(n.Text)
	case *Ident:
		p.print(n.Name)
	case *LogicalExpr:
		p.operand(n.X, n.Op, indent)
		p.print(" ", n.Op, " ")
		p.operand(n.Y, n.Op, indent)
	case *ParenExpr:
		p.print("(")
		p.node(n.X, indent)
		p.print(")")
	case *ObjectExpr:
		if len(n.Props) == 0 {
			p.print("{}")
			return
		}
		p.print("{ ")
		for i, prop := range n.Props {
			if i > 0 {
				p.print(", ")
			}
			p.node(prop, indent)
		}
		p.print(" }")
	case *Property:
		p.node(n.Key, indent)
		if !n.Shorthand {
			p.print(": ")
			p.node(n.Value, indent)
		}
	case *RawExpr:
		p.print(n.Text)
	default:
		panic(fmt.Sprintf("jsast: cannot print %T", n))
	}
}

func (p *printer) block(b *BlockStmt, indent string) {
	if len(b.List) == 0 {
		p.print("{}")
		return
	}
	inner := indent + p.unit
	p.print("{\n")
	for _, s := range b.List {
		p.print(inner)
		p.node(s, inner)
		p.print("\n")
	}
	p.print(indent, "}")
}

func (p *printer) ifStmt(s *IfStmt, indent string) {
	p.print("if (")
	p.node(s.Test, indent)
	p.print(")")
	p.branch(s.Consequent, indent)
	if s.Alternate == nil {
		return
	}
	if IsBlock(s.Consequent) {
		p.print(" else")
	} else {
		p.print("\n", indent, "else")
	}
	if IsIfStatement(s.Alternate) {
		p.print(" ")
		p.node(s.Alternate, indent)
		return
	}
	p.branch(s.Alternate, indent)
}

// branch prints the body of an if or else:
// a block on the same line, anything else on a line of its own.
func (p *printer) branch(s Stmt, indent string) {
	if IsBlock(s) {
		p.print(" ")
		p.node(s, indent)
		return
	}
	inner := indent + p.unit
	p.print("\n", inner)
	p.node(s, inner)
}

// operand prints x as an operand of op, parenthesized if it binds more loosely.
func (p *printer) operand(x Expr, op, indent string) {
	if needsParens(x, op) {
		p.print("(")
		p.node(x, indent)
		p.print(")")
		return
	}
	p.node(x, indent)
}

func needsParens(x Expr, op string) bool {
	switch x := x.(type) {
	case *LogicalExpr:
		// ?? cannot be mixed with && or || without parentheses.
		return x.Op != op && !(x.Op == "&&" && op == "||")
	case *RawExpr:
		switch x.Kind {
		case "assignment_expression", "augmented_assignment_expression",
			"ternary_expression", "sequence_expression",
			"yield_expression", "arrow_function":
			return true
		}
	}
	return false
}

// source prints the text at loc, re-indenting every line but the first
// from the indentation of loc's first line to indent.
func (p *printer) source(loc Location, indent string) {
	base := p.f.LineIndent(loc.Start.Line)
	off := loc.Offset
	for i, line := range strings.SplitAfter(p.f.Text(loc), "\n") {
		start := off
		off += len(line)
		if i == 0 || p.f.inVerbatim(start) {
			p.print(line)
			continue
		}
		text, nl := strings.CutSuffix(line, "\n")
		if strings.TrimSpace(text) == "" {
			if nl {
				p.print("\n")
			}
			continue
		}
		p.print(indent, text[commonPrefix(text, base):])
		if nl {
			p.print("\n")
		}
	}
}

func commonPrefix(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}
