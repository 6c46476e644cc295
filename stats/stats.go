// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats counts the outcomes of refactorings.
//
// A Recorder keeps its counters in a registry of its own,
// so any number of Recorders can live in one process.
package stats

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/prometheus/client_golang/prometheus"
)

// Outcomes other than a failure category.
const (
	Merged      = "merged"
	SyntaxError = "syntax error"
)

const metricName = "jsrf_refactorings_total"

// A Recorder counts refactoring outcomes.
// A nil *Recorder records nothing.
type Recorder struct {
	reg      *prometheus.Registry
	outcomes *prometheus.CounterVec
}

func New() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metricName,
			Help: "Refactorings run, by refactoring and outcome.",
		}, []string{"refactoring", "outcome"}),
	}
	r.reg.MustRegister(r.outcomes)
	return r
}

// Record counts one run of refactoring that ended with outcome.
func (r *Recorder) Record(refactoring, outcome string) {
	if r == nil {
		return
	}
	r.outcomes.WithLabelValues(refactoring, outcome).Inc()
}

// Registry returns the registry holding r's counters.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.reg
}

// A Row is the count of one refactoring outcome.
type Row struct {
	Refactoring string
	Outcome     string
	Count       int
}

// Rows returns the nonzero counts, sorted by refactoring and outcome.
func (r *Recorder) Rows() ([]Row, error) {
	if r == nil {
		return nil, nil
	}
	families, err := r.reg.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather stats: %w", err)
	}
	var rows []Row
	for _, mf := range families {
		if mf.GetName() != metricName {
			continue
		}
		for _, m := range mf.GetMetric() {
			var row Row
			for _, l := range m.GetLabel() {
				switch l.GetName() {
				case "refactoring":
					row.Refactoring = l.GetValue()
				case "outcome":
					row.Outcome = l.GetValue()
				}
			}
			row.Count = int(m.GetCounter().GetValue())
			if row.Count > 0 {
				rows = append(rows, row)
			}
		}
	}
	slices.SortFunc(rows, func(a, b Row) int {
		if a.Refactoring != b.Refactoring {
			return strings.Compare(a.Refactoring, b.Refactoring)
		}
		return strings.Compare(a.Outcome, b.Outcome)
	})
	return rows, nil
}

// WriteTable writes the counts to w as a table.
func (r *Recorder) WriteTable(w io.Writer) error {
	rows, err := r.Rows()
	if err != nil {
		return err
	}
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Refactoring", "Outcome", "Count"})
	total := 0
	for _, row := range rows {
		tbl.AppendRow(table.Row{row.Refactoring, row.Outcome, row.Count})
		total += row.Count
	}
	tbl.AppendFooter(table.Row{"", "Total", total})
	_, err = fmt.Fprintln(w, tbl.Render())
	return err
}
