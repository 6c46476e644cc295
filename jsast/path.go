// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsast

// Children returns the direct children of n in source order.
func Children(n Node) []Node {
	var list []Node
	add := func(c Node) {
		if c != nil {
			list = append(list, c)
		}
	}
	switch n := n.(type) {
	case *Program:
		for _, s := range n.Body {
			add(s)
		}
	case *BlockStmt:
		for _, s := range n.List {
			add(s)
		}
	case *IfStmt:
		add(n.Test)
		add(n.Consequent)
		if n.Alternate != nil {
			add(n.Alternate)
		}
	case *ExprStmt:
		add(n.X)
	case *VarDecl:
		for _, d := range n.Decls {
			add(d)
		}
	case *VarDeclarator:
		add(n.Name)
		if n.Init != nil {
			add(n.Init)
		}
	case *LogicalExpr:
		add(n.X)
		add(n.Y)
	case *ParenExpr:
		add(n.X)
	case *ObjectExpr:
		for _, p := range n.Props {
			add(p)
		}
	case *Property:
		add(n.Key)
		if !n.Shorthand && n.Value != nil {
			add(n.Value)
		}
	case *RawStmt:
		for _, s := range n.Nested {
			add(s)
		}
	case *RawExpr:
		for _, s := range n.Nested {
			add(s)
		}
	}
	return list
}

// Inspect traverses the tree rooted at n in depth-first order.
// It calls f(n) and, if f returns true, inspects n's children.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	for _, c := range Children(n) {
		Inspect(c, f)
	}
}

// PathEnclosing returns the selectable nodes whose span contains sel,
// innermost first, ending with root.
// Nodes without a location are neither returned nor descended into.
func PathEnclosing(root Node, sel Selection) []SelectableNode {
	var stack []SelectableNode
	var visit func(Node)
	visit = func(n Node) {
		sn, ok := AsSelectable(n)
		if !ok || !sel.IsInside(sn.Location()) {
			return
		}
		stack = append(stack, sn)
		// A cursor on the boundary between two siblings
		// lies in both. Take the first.
		for _, c := range Children(n) {
			if sel.IsInsideNode(c) {
				visit(c)
				return
			}
		}
	}
	visit(root)
	for i, j := 0, len(stack)-1; i < j; i, j = i+1, j-1 {
		stack[i], stack[j] = stack[j], stack[i]
	}
	return stack
}

// EnclosingIfs returns the if statements on the path from sel up to root,
// innermost first. The first element, if any, is the anchor.
func EnclosingIfs(root Node, sel Selection) []SelectableIf {
	var ifs []SelectableIf
	for _, sn := range PathEnclosing(root, sel) {
		if s, ok := sn.Node().(*IfStmt); ok {
			ifs = append(ifs, SelectableIf{node: s, loc: sn.Location()})
		}
	}
	return ifs
}
