// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rsc.io/jsrf/refactor"
	"rsc.io/jsrf/stats"
)

var (
	showDiff  bool
	showStats bool
	verbose   bool
	cfgFile   string
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "jsrf: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jsrf [--diff] script",
		Short: "Refactor JavaScript and TypeScript programs",
		Long: `Jsrf applies a script of refactoring commands to the JavaScript
and TypeScript files in the current directory.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			rf, err := newRefactor()
			if err != nil {
				return err
			}
			err = run(rf, args[0])
			if rf.Stats != nil {
				if err := rf.Stats.WriteTable(rf.Stderr); err != nil {
					return err
				}
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&showDiff, "diff", false, "show diff instead of writing files")
	cmd.Flags().BoolVar(&showStats, "stats", false, "print a table of refactoring outcomes")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log each refactoring")
	cmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is .jsrf.yaml here or in $HOME)")
	return cmd
}

func newRefactor() (*refactor.Refactor, error) {
	cfg, err := refactor.LoadConfig(cfgFile)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}

	rf, err := refactor.New(".", cfg)
	if err != nil {
		return nil, err
	}
	rf.ShowDiff = showDiff
	rf.Log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	if showStats {
		rf.Stats = stats.New()
	}
	return rf, nil
}

var cmds = map[string]func(*refactor.Snapshot, string) error{
	"mergeif": cmdMergeIf,
}

func run(rf *refactor.Refactor, script string) error {
	var snap *refactor.Snapshot

	text := script
	for text != "" {
		var line string
		line, text, _ = cut(text, "\n")
		line = trimComments(line)
		for strings.HasSuffix(line, `\`) && text != "" {
			var l string
			l, text, _ = cut(text, "\n")
			line = line[:len(line)-1] + "\n" + l
			line = trimComments(line)
		}
		line = strings.TrimLeft(line, " \t\n")
		if line == "" {
			continue
		}
		cmd, args, _ := cutAny(line, " \t")

		fn := cmds[cmd]
		if fn == nil {
			return fmt.Errorf("unknown command %s", cmd)
		}

		snap = rf.Load()
		snap.Errors.Add(fn(snap, args))
		if err := snap.Errors.Err(); err != nil {
			return err
		}
	}

	if snap == nil {
		// Did nothing.
		return nil
	}

	// Show diff before final check, so that it's easier to understand errors.
	if rf.ShowDiff {
		d, err := snap.Diff()
		if err != nil {
			return err
		}
		rf.Stdout.Write(d)
	}

	// Parse the rewritten files one last time before writing,
	// to make sure the rewrites are valid.
	check := rf.Load()
	for _, name := range snap.Modified() {
		if _, err := check.Parse(context.Background(), name); err != nil {
			check.Errors.Add(err)
		}
	}
	if err := check.Errors.Err(); err != nil {
		return fmt.Errorf("checking rewritten files: %v", err)
	}

	if rf.ShowDiff {
		return nil
	}
	return snap.Write()
}

func trimComments(line string) string {
	// Cut line at # comment, being careful not to cut inside quoted text
	// or at the # of a character address like a.js:#120.
	var q byte
	for i := 0; i < len(line); i++ {
		switch c := line[i]; c {
		case q:
			q = 0
		case '\'', '"', '`':
			q = c
		case '\\':
			if q == '\'' || q == '"' {
				i++
			}
		case '#':
			if q == 0 && (i == 0 || line[i-1] == ' ' || line[i-1] == '\t') {
				line = line[:i]
			}
		}
	}
	return strings.TrimSpace(line)
}

func cut(s, sep string) (before, after string, ok bool) {
	if i := strings.Index(s, sep); i >= 0 {
		return s[:i], s[i+len(sep):], true
	}
	return s, "", false
}

func cutAny(s, any string) (before, after string, ok bool) {
	if i := strings.IndexAny(s, any); i >= 0 {
		_, size := utf8.DecodeRuneInString(s[i:])
		return s[:i], s[i+size:], true
	}
	return s, "", false
}
