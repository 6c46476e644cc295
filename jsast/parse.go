// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsast

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"unsafe"

	"github.com/alexaandru/go-sitter-forest/javascript"
	"github.com/alexaandru/go-sitter-forest/tsx"
	"github.com/alexaandru/go-sitter-forest/typescript"
	sitter "github.com/alexaandru/go-tree-sitter-bare"
)

// Supported languages.
const (
	JavaScript = "javascript"
	TypeScript = "typescript"
	TSX        = "tsx"
)

var grammars = map[string]func() unsafe.Pointer{
	JavaScript: javascript.GetLanguage,
	TypeScript: typescript.GetLanguage,
	TSX:        tsx.GetLanguage,
}

var extensions = map[string]string{
	".js":  JavaScript,
	".jsx": JavaScript,
	".mjs": JavaScript,
	".cjs": JavaScript,
	".ts":  TypeScript,
	".mts": TypeScript,
	".cts": TypeScript,
	".tsx": TSX,
}

var (
	ErrUnknownLanguage = errors.New("unknown language")
	errNoRootNode      = errors.New("parser returned no root node")
)

// Languages returns the names of the supported languages, sorted.
func Languages() []string {
	var list []string
	for name := range grammars {
		list = append(list, name)
	}
	slices.Sort(list)
	return list
}

func IsLanguage(name string) bool {
	return grammars[name] != nil
}

// LanguageFor returns the language of filename judging by its extension,
// or "" if there is none.
func LanguageFor(filename string) string {
	return extensions[strings.ToLower(filepath.Ext(filename))]
}

// A SyntaxError reports input the parser could not make sense of.
type SyntaxError struct {
	File string
	Pos  Position
}

func (e *SyntaxError) Error() string {
	pos := fmt.Sprintf("%d:%d", e.Pos.Line+1, e.Pos.Column+1)
	if e.File != "" {
		pos = e.File + ":" + pos
	}
	return pos + ": syntax error"
}

// Parse parses src, the contents of the named file, as language.
// Each call uses its own parser; nothing is shared between calls.
func Parse(ctx context.Context, language, name string, src []byte) (*File, error) {
	grammar := grammars[language]
	if grammar == nil {
		return nil, fmt.Errorf("%w %q", ErrUnknownLanguage, language)
	}

	parser := sitter.NewParser()
	parser.SetLanguage(sitter.NewLanguage(grammar()))

	tree, err := parser.ParseString(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.IsNull() {
		return nil, errNoRootNode
	}

	f := NewFile(name, src)
	f.Language = language
	c := &converter{f: f}
	if bad, ok := c.scan(root); ok {
		return nil, &SyntaxError{File: name, Pos: c.loc(bad).Start}
	}
	// The program spans the whole text, blank lines and comments included.
	whole := &Location{End: f.Position(len(src)), EndOffset: len(src)}
	f.Program = &Program{Body: c.stmts(root), Location: whole}
	return f, nil
}

// A converter turns a tree-sitter tree into jsast nodes.
type converter struct {
	f *File
}

// scan records the template strings and multi-line strings of the tree
// and returns the first node the parser could not make sense of:
// an ERROR node, or a token it assumed missing.
func (c *converter) scan(n sitter.Node) (sitter.Node, bool) {
	switch {
	case n.Type() == "ERROR" || n.IsMissing():
		return n, true
	case n.Type() == "template_string":
		c.f.verbatim = append(c.f.verbatim, *c.loc(n))
	case n.Type() == "string" && n.StartPoint().Row != n.EndPoint().Row:
		// A backslash-newline continues the string onto the next line.
		c.f.verbatim = append(c.f.verbatim, *c.loc(n))
	}
	for i := range n.ChildCount() {
		if bad, ok := c.scan(n.Child(i)); ok {
			return bad, true
		}
	}
	return sitter.Node{}, false
}

func (c *converter) loc(n sitter.Node) *Location {
	start, end := n.StartPoint(), n.EndPoint()
	return &Location{
		Start:     Position{Line: int(start.Row), Column: int(start.Column)},
		End:       Position{Line: int(end.Row), Column: int(end.Column)},
		Offset:    int(n.StartByte()),
		EndOffset: int(n.EndByte()),
	}
}

func (c *converter) text(n sitter.Node) string {
	return string(c.f.Src[n.StartByte():n.EndByte()])
}

// firstNamed returns the first named child of n that is not a comment.
func firstNamed(n sitter.Node) sitter.Node {
	for i := range n.NamedChildCount() {
		if child := n.NamedChild(i); child.Type() != "comment" {
			return child
		}
	}
	return sitter.Node{}
}

func (c *converter) stmts(n sitter.Node) []Stmt {
	var list []Stmt
	for i := range n.NamedChildCount() {
		list = append(list, c.stmt(n.NamedChild(i)))
	}
	return list
}

func (c *converter) stmt(n sitter.Node) Stmt {
	switch n.Type() {
	case "statement_block":
		return &BlockStmt{List: c.stmts(n), Location: c.loc(n)}
	case "if_statement":
		return c.ifStmt(n)
	case "expression_statement":
		if x := firstNamed(n); !x.IsNull() {
			return &ExprStmt{X: c.expr(x), Location: c.loc(n)}
		}
	case "lexical_declaration", "variable_declaration":
		return c.varDecl(n)
	case "empty_statement":
		return &EmptyStmt{Location: c.loc(n)}
	case "comment":
		return &Comment{Text: c.text(n), Location: c.loc(n)}
	}
	return &RawStmt{Kind: n.Type(), Text: c.text(n), Nested: c.nested(n), Location: c.loc(n)}
}

// nested returns the statements inside n, outermost only.
func (c *converter) nested(n sitter.Node) []Stmt {
	var list []Stmt
	for i := range n.NamedChildCount() {
		child := n.NamedChild(i)
		if isStatement(child.Type()) {
			list = append(list, c.stmt(child))
			continue
		}
		list = append(list, c.nested(child)...)
	}
	return list
}

func isStatement(kind string) bool {
	return kind == "statement_block" || strings.HasSuffix(kind, "_statement")
}

func (c *converter) ifStmt(n sitter.Node) *IfStmt {
	s := &IfStmt{Location: c.loc(n)}
	s.Comments = c.comments(s.Comments, n)
	if cond := n.ChildByFieldName("condition"); !cond.IsNull() {
		if cond.Type() == "parenthesized_expression" {
			s.Comments = c.comments(s.Comments, cond)
		}
		s.Test = c.condition(cond)
	}
	if cons := n.ChildByFieldName("consequence"); !cons.IsNull() {
		s.Consequent = c.stmt(cons)
	}
	if alt := n.ChildByFieldName("alternative"); !alt.IsNull() {
		if alt.Type() == "else_clause" {
			s.Comments = c.comments(s.Comments, alt)
			alt = firstNamed(alt)
		}
		if !alt.IsNull() {
			s.Alternate = c.stmt(alt)
		}
	}
	return s
}

// comments appends the comments that are direct children of n to list.
func (c *converter) comments(list []*Comment, n sitter.Node) []*Comment {
	for i := range n.NamedChildCount() {
		if child := n.NamedChild(i); child.Type() == "comment" {
			list = append(list, &Comment{Text: c.text(child), Location: c.loc(child)})
		}
	}
	return list
}

// condition returns the test of an if statement without its parentheses.
func (c *converter) condition(n sitter.Node) Expr {
	if n.Type() != "parenthesized_expression" {
		return c.expr(n)
	}
	if x := firstNamed(n); !x.IsNull() {
		return c.expr(x)
	}
	return &RawExpr{Kind: n.Type(), Text: c.text(n), Location: c.loc(n)}
}

func (c *converter) varDecl(n sitter.Node) *VarDecl {
	d := &VarDecl{Kind: "var", Location: c.loc(n)}
	if n.ChildCount() > 0 {
		d.Kind = c.text(n.Child(0))
	}
	for i := range n.NamedChildCount() {
		child := n.NamedChild(i)
		if child.Type() != "variable_declarator" {
			continue
		}
		v := &VarDeclarator{Location: c.loc(child)}
		if name := child.ChildByFieldName("name"); !name.IsNull() {
			v.Name = c.expr(name)
		}
		if typ := child.ChildByFieldName("type"); !typ.IsNull() {
			v.Type = c.text(typ)
		}
		if val := child.ChildByFieldName("value"); !val.IsNull() {
			v.Init = c.expr(val)
		}
		d.Decls = append(d.Decls, v)
	}
	return d
}

func (c *converter) expr(n sitter.Node) Expr {
	if n.IsNull() {
		return nil
	}
	switch n.Type() {
	case "identifier", "property_identifier", "shorthand_property_identifier":
		return &Ident{Name: c.text(n), Location: c.loc(n)}
	case "parenthesized_expression":
		if x := firstNamed(n); !x.IsNull() {
			return &ParenExpr{X: c.expr(x), Location: c.loc(n)}
		}
	case "binary_expression":
		op := n.ChildByFieldName("operator")
		if op.IsNull() {
			break
		}
		switch op.Type() {
		case "&&", "||", "??":
			return &LogicalExpr{
				Op:       op.Type(),
				X:        c.expr(n.ChildByFieldName("left")),
				Y:        c.expr(n.ChildByFieldName("right")),
				Location: c.loc(n),
			}
		}
	case "object":
		return c.object(n)
	}
	return &RawExpr{Kind: n.Type(), Text: c.text(n), Nested: c.nested(n), Location: c.loc(n)}
}

func (c *converter) object(n sitter.Node) *ObjectExpr {
	obj := &ObjectExpr{Location: c.loc(n)}
	for i := range n.NamedChildCount() {
		child := n.NamedChild(i)
		switch child.Type() {
		case "comment":
			continue
		case "pair":
			obj.Props = append(obj.Props, &Property{
				Key:      c.expr(child.ChildByFieldName("key")),
				Value:    c.expr(child.ChildByFieldName("value")),
				Location: c.loc(child),
			})
		case "shorthand_property_identifier":
			id := &Ident{Name: c.text(child), Location: c.loc(child)}
			obj.Props = append(obj.Props, &Property{Key: id, Value: id, Shorthand: true, Location: c.loc(child)})
		default:
			obj.Props = append(obj.Props, c.expr(child))
		}
	}
	return obj
}
