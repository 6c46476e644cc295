// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsast

// A Selectable is a node known to carry a source location.
// The only way to get one is AsSelectable, so Location never fails.
type Selectable[N Node] struct {
	node N
	loc  Location
}

type (
	SelectableNode               = Selectable[Node]
	SelectableIf                 = Selectable[*IfStmt]
	SelectableIdentifier         = Selectable[*Ident]
	SelectableProperty           = Selectable[*Property]
	SelectableVariableDeclarator = Selectable[*VarDeclarator]
)

// AsSelectable returns n wrapped as a Selectable,
// or false if n is nil or has no location.
func AsSelectable[N Node](n N) (Selectable[N], bool) {
	if any(n) == nil {
		return Selectable[N]{}, false
	}
	loc := n.Loc()
	if loc == nil {
		return Selectable[N]{}, false
	}
	return Selectable[N]{node: n, loc: *loc}, true
}

func (s Selectable[N]) Node() N            { return s.node }
func (s Selectable[N]) Location() Location { return s.loc }

// Generic drops the static node type.
func (s Selectable[N]) Generic() SelectableNode {
	return SelectableNode{node: s.node, loc: s.loc}
}

// IsSelectableNode reports whether n is non-nil and has a location.
func IsSelectableNode(n Node) bool {
	_, ok := AsSelectable(n)
	return ok
}

func IsSelectableIdentifier(n Node) bool {
	id, ok := n.(*Ident)
	return ok && IsSelectableNode(id)
}

func IsSelectableProperty(n Node) bool {
	p, ok := n.(*Property)
	return ok && IsSelectableNode(p)
}

func IsSelectableVariableDeclarator(d *VarDeclarator) bool {
	return IsSelectableNode(d)
}
