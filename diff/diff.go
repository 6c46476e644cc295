// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diff implements a Diff function that compares two inputs
// line by line and reports the result in unified diff format.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// context is the number of unchanged lines shown around each change.
const context = 3

type line struct {
	op   byte // ' ', '-' or '+'
	text string
}

// Diff returns a unified diff of old and new, or nil if they are equal.
func Diff(oldName string, old []byte, newName string, new []byte) ([]byte, error) {
	if bytes.Equal(old, new) {
		return nil, nil
	}
	lines := lineDiff(string(old), string(new))

	// oldN[k] and newN[k] count the old and new lines before lines[k].
	oldN := make([]int, len(lines)+1)
	newN := make([]int, len(lines)+1)
	for k, l := range lines {
		oldN[k+1], newN[k+1] = oldN[k], newN[k]
		if l.op != '+' {
			oldN[k+1]++
		}
		if l.op != '-' {
			newN[k+1]++
		}
	}

	var out bytes.Buffer
	fmt.Fprintf(&out, "diff %s %s\n--- %s\n+++ %s\n", oldName, newName, oldName, newName)
	prevEnd := 0
	for k := 0; k < len(lines); {
		if lines[k].op == ' ' {
			k++
			continue
		}
		start := max(prevEnd, k-context)
		end := k
		for {
			for end < len(lines) && lines[end].op != ' ' {
				end++
			}
			e := end
			for e < len(lines) && lines[e].op == ' ' {
				e++
			}
			if e < len(lines) && e-end <= 2*context {
				end = e
				continue
			}
			end = min(end+context, e)
			break
		}

		fmt.Fprintf(&out, "@@ -%s +%s @@\n",
			hunkRange(oldN[start], oldN[end]-oldN[start]),
			hunkRange(newN[start], newN[end]-newN[start]))
		for _, l := range lines[start:end] {
			out.WriteByte(l.op)
			out.WriteString(l.text)
			if !strings.HasSuffix(l.text, "\n") {
				out.WriteString("\n\\ No newline at end of file\n")
			}
		}
		prevEnd = end
		k = end
	}
	return out.Bytes(), nil
}

// hunkRange formats the line range of a hunk side
// that starts after line n and has count lines.
func hunkRange(n, count int) string {
	switch count {
	case 0:
		return fmt.Sprintf("%d,0", n)
	case 1:
		return fmt.Sprintf("%d", n+1)
	}
	return fmt.Sprintf("%d,%d", n+1, count)
}

// lineDiff returns the lines of the edit script turning old into new.
// Within each run of changes, deletions come before insertions.
func lineDiff(old, new string) []line {
	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(old, new)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	var lines, dels, ins []line
	flush := func() {
		lines = append(lines, dels...)
		lines = append(lines, ins...)
		dels, ins = dels[:0], ins[:0]
	}
	for _, d := range diffs {
		for _, text := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				dels = append(dels, line{'-', text})
			case diffmatchpatch.DiffInsert:
				ins = append(ins, line{'+', text})
			default:
				flush()
				lines = append(lines, line{' ', text})
			}
		}
	}
	flush()
	return lines
}

func splitLines(s string) []string {
	list := strings.SplitAfter(s, "\n")
	if list[len(list)-1] == "" {
		list = list[:len(list)-1]
	}
	return list
}
