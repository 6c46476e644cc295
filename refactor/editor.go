// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refactor

import (
	"sync"

	"rsc.io/jsrf/jsast"
)

// Code is the full text of a program.
type Code = string

// An Editor is where a refactoring gets its input and sends its output.
type Editor interface {
	Code() Code
	Selection() jsast.Selection
	Write(Code) error
	ShowError(ErrorReason)
}

// An InMemoryEditor is an Editor holding its code in memory.
// It records the errors it is shown.
type InMemoryEditor struct {
	mu     sync.Mutex
	code   Code
	sel    jsast.Selection
	errors []ErrorReason
}

func NewInMemoryEditor(code Code, sel jsast.Selection) *InMemoryEditor {
	return &InMemoryEditor{code: code, sel: sel}
}

func (e *InMemoryEditor) Code() Code {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.code
}

func (e *InMemoryEditor) Selection() jsast.Selection {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sel
}

func (e *InMemoryEditor) Write(code Code) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.code = code
	return nil
}

func (e *InMemoryEditor) ShowError(reason ErrorReason) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.errors = append(e.errors, reason)
}

// Errors returns the reasons shown so far, oldest first.
func (e *InMemoryEditor) Errors() []ErrorReason {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]ErrorReason(nil), e.errors...)
}
