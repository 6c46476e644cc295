// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintSynthetic(t *testing.T) {
	id := func(name string) *Ident { return &Ident{Name: name} }
	call := func(name string) *ExprStmt { return &ExprStmt{X: &RawExpr{Kind: "call_expression", Text: name + "()"}} }

	tests := []struct {
		name string
		node Node
		want string
	}{
		{"empty block", &BlockStmt{}, "{}"},
		{"block", &BlockStmt{List: []Stmt{call("f"), call("g")}}, "{\n  f();\n  g();\n}"},
		{
			"if else",
			&IfStmt{Test: id("a"), Consequent: &BlockStmt{List: []Stmt{call("f")}}, Alternate: &BlockStmt{List: []Stmt{call("g")}}},
			"if (a) {\n  f();\n} else {\n  g();\n}",
		},
		{
			"else if",
			&IfStmt{Test: id("a"), Consequent: &BlockStmt{}, Alternate: &IfStmt{Test: id("b"), Consequent: call("g")}},
			"if (a) {} else if (b)\n  g();",
		},
		{
			"bare branches",
			&IfStmt{Test: id("a"), Consequent: call("f"), Alternate: call("g")},
			"if (a)\n  f();\nelse\n  g();",
		},
		{
			"precedence",
			&LogicalExpr{Op: "&&",
				X: &LogicalExpr{Op: "||", X: id("a"), Y: id("b")},
				Y: &LogicalExpr{Op: "&&", X: id("c"), Y: &RawExpr{Kind: "ternary_expression", Text: "d ? e : f"}}},
			"(a || b) && c && (d ? e : f)",
		},
		{
			"and under or",
			&LogicalExpr{Op: "||", X: &LogicalExpr{Op: "&&", X: id("a"), Y: id("b")}, Y: &LogicalExpr{Op: "??", X: id("c"), Y: id("d")}},
			"a && b || (c ?? d)",
		},
		{
			"declaration",
			&VarDecl{Kind: "let", Decls: []*VarDeclarator{
				{Name: id("x"), Type: ": T", Init: &ObjectExpr{Props: []Node{
					&Property{Key: id("a"), Value: id("a"), Shorthand: true},
					&Property{Key: id("b"), Value: &ParenExpr{X: id("c")}},
				}}},
				{Name: id("y")},
			}},
			"let x: T = { a, b: (c) }, y;",
		},
		{"empty object", &ObjectExpr{}, "{}"},
		{"program", &Program{Body: []Stmt{&Comment{Text: "// hi"}, &EmptyStmt{}, &RawStmt{Text: "return;"}}}, "// hi\n;\nreturn;"},
	}
	p := &Printer{}
	for _, tt := range tests {
		assert.Equal(t, tt.want, p.Sprint(nil, tt.node, ""), tt.name)
	}
}

func TestPrintIndentUnit(t *testing.T) {
	p := &Printer{Indent: "\t"}
	b := &BlockStmt{List: []Stmt{&BlockStmt{List: []Stmt{&EmptyStmt{}}}}}
	assert.Equal(t, "{\n\t{\n\t\t;\n\t}\n}", p.Sprint(nil, b, ""))
	assert.Equal(t, "{\n  \t{\n  \t\t;\n  \t}\n  }", p.Sprint(nil, b, "  "))
}

func TestPrintReindents(t *testing.T) {
	src := "function f() {\n" +
		"    if (a) {\n" +
		"        g(`x\n" +
		"    y`);\n" +
		"\n" +
		"        h();\n" +
		"    }\n" +
		"}\n"
	f := parse(t, JavaScript, src)
	ifs := EnclosingIfs(f.Program, Cursor(1, 8))
	if !assert.Len(t, ifs, 1) {
		return
	}
	s := ifs[0].Node()
	p := &Printer{Indent: "  "}

	assert.Equal(t, "if (a) {\n    g(`x\n    y`);\n\n    h();\n}", p.Sprint(f, s, ""), "shallower")
	assert.Equal(t, "if (a) {\n          g(`x\n    y`);\n\n          h();\n      }", p.Sprint(f, s, "      "), "deeper")

	merged := &IfStmt{
		Test:       &LogicalExpr{Op: "&&", X: s.Test, Y: &Ident{Name: "b"}},
		Consequent: s.Consequent,
	}
	assert.Equal(t, "if (a && b) {\n    g(`x\n    y`);\n\n    h();\n}", p.Sprint(f, merged, ""))
}
