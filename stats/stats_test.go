// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	r := New()
	r.Record("merge if statements", Merged)
	r.Record("merge if statements", Merged)
	r.Record("merge if statements", "no nested if")
	r.Record("extract variable", SyntaxError)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.outcomes.WithLabelValues("merge if statements", Merged)))

	rows, err := r.Rows()
	require.NoError(t, err)
	assert.Equal(t, []Row{
		{"extract variable", SyntaxError, 1},
		{"merge if statements", Merged, 2},
		{"merge if statements", "no nested if", 1},
	}, rows)

	want := `
# HELP jsrf_refactorings_total Refactorings run, by refactoring and outcome.
# TYPE jsrf_refactorings_total counter
jsrf_refactorings_total{outcome="merged",refactoring="merge if statements"} 2
`
	r2 := New()
	r2.Record("merge if statements", Merged)
	r2.Record("merge if statements", Merged)
	assert.NoError(t, testutil.GatherAndCompare(r2.Registry(), strings.NewReader(want), metricName))
}

func TestNilRecorder(t *testing.T) {
	var r *Recorder
	r.Record("merge if statements", Merged)
	rows, err := r.Rows()
	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestWriteTable(t *testing.T) {
	r := New()
	r.Record("merge if statements", Merged)
	r.Record("merge if statements", "nested if has an alternate")

	var b strings.Builder
	require.NoError(t, r.WriteTable(&b))
	out := b.String()
	for _, s := range []string{"REFACTORING", "OUTCOME", "merged", "nested if has an alternate", "TOTAL", "2"} {
		assert.Contains(t, out, s)
	}
	assert.True(t, strings.HasSuffix(out, "\n"))
}
