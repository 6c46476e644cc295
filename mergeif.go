// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"strings"

	"rsc.io/jsrf/jsast"
	"rsc.io/jsrf/refactor"
)

// cmdMergeIf merges a pair of nested if statements into one:
//
//	mergeif file:addr
func cmdMergeIf(snap *refactor.Snapshot, args string) error {
	args = strings.TrimSpace(args)
	if args == "" {
		return newErrUsage("mergeif file:addr")
	}
	name, addr, err := refactor.SplitAddr(args)
	if err != nil {
		return newErrUsage("mergeif file:addr: %v", err)
	}
	f, err := snap.File(name)
	if err != nil {
		return newErrPrecondition("%v", err)
	}
	sel, err := snap.Selection(f.Name, addr)
	if err != nil {
		return newErrUsage("mergeif %s: %v", args, err)
	}
	e, err := snap.Refactor().Engine(f.Name)
	if err != nil {
		return newErrPrecondition("%v", err)
	}

	ed := &fileEditor{snap: snap, file: f, sel: sel}
	if err := e.MergeIfStatements(ed.Code(), ed.Selection(), ed); err != nil {
		var se *jsast.SyntaxError
		if errors.As(err, &se) {
			se.File = f.Name
		}
		return err
	}
	return nil
}

// A fileEditor edits one file of a Snapshot.
// Errors it is shown are reported at the start of its selection.
type fileEditor struct {
	snap *refactor.Snapshot
	file *refactor.File
	sel  jsast.Selection
}

func (e *fileEditor) Code() refactor.Code {
	return refactor.Code(e.file.Text)
}

func (e *fileEditor) Selection() jsast.Selection {
	return e.sel
}

func (e *fileEditor) Write(code refactor.Code) error {
	return e.snap.ReplaceAt(e.file.Name, 0, len(e.file.Text), code)
}

func (e *fileEditor) ShowError(reason refactor.ErrorReason) {
	e.snap.ErrorAt(e.file.Name, e.sel.Start(), "%v", reason)
}
