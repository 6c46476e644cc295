// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refactor

import (
	"context"
	"io"
	"log/slog"

	"rsc.io/jsrf/jsast"
	"rsc.io/jsrf/stats"
)

// An Engine runs refactorings over program text.
// Its fields are read-only once it is in use,
// and it is then safe for concurrent use.
type Engine struct {
	Language string         // grammar to parse with; JavaScript if empty
	Printer  *jsast.Printer // nil means the default indent
	Log      *slog.Logger   // nil discards
	Stats    *stats.Recorder
}

var defaultEngine = &Engine{Language: jsast.JavaScript}

// MergeIfStatements merges the if statements at sel in code,
// writing the result to ed. See Engine.MergeIfStatements.
func MergeIfStatements(code Code, sel jsast.Selection, ed Editor) error {
	return defaultEngine.MergeIfStatements(code, sel, ed)
}

// MergeIfStatements merges the pair of nested if statements found at sel
// in code into one and writes the new code to ed.
//
// If there is no pair to merge, it shows DidNotFoundIfStatementsToMerge
// on ed, leaves ed's code alone and returns nil.
// If code does not parse, it returns a *jsast.SyntaxError.
func (e *Engine) MergeIfStatements(code Code, sel jsast.Selection, ed Editor) error {
	const name = "merge if statements"
	log := e.logger().With("refactoring", name, "pos", sel.String())

	f, err := jsast.Parse(context.Background(), e.language(), "", []byte(code))
	if err != nil {
		log.Debug("parse failed", "err", err)
		e.Stats.Record(name, stats.SyntaxError)
		return err
	}

	m, fail := MatchIfStatements(f.Program, sel)
	if fail != MatchOK {
		kind := "resolution"
		if fail.Eligibility() {
			kind = "eligibility"
		}
		log.Debug("no match", "failure", fail.String(), "kind", kind)
		e.Stats.Record(name, fail.String())
		ed.ShowError(DidNotFoundIfStatementsToMerge)
		return nil
	}

	log.Debug("merge", "shape", m.Shape.String(), "outer", m.Outer.Location().String())
	e.Stats.Record(name, stats.Merged)
	return ed.Write(Code(Rewrite(f, m, e.printer())))
}

func (e *Engine) language() string {
	if e.Language == "" {
		return jsast.JavaScript
	}
	return e.Language
}

func (e *Engine) printer() *jsast.Printer {
	if e.Printer == nil {
		return &jsast.Printer{Indent: jsast.DefaultIndent}
	}
	return e.Printer
}

func (e *Engine) logger() *slog.Logger {
	if e.Log == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return e.Log
}
