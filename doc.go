// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Jsrf refactors JavaScript and TypeScript programs.
//
// Usage:
//
//	jsrf [--diff] [--stats] [-v] [--config file] script
//
// Jsrf applies a script of refactoring commands to the files in the current directory.
// For example, to merge two nested conditionals into one:
//
//	jsrf 'mergeif app.js:12:5'
//
// By default, jsrf writes changes back to the disk.
// The --diff flag causes jsrf to print a diff of the intended changes instead.
// The --stats flag prints a table counting how each refactoring ended.
// The -v flag logs each refactoring as it runs.
//
// A script is a sequence of commands, one per line.
// Comments are introduced by # and extend to the end of the line.
// Commands may be broken across lines by ending all but the last
// with a trailing backslash (before any comment), as in:
//
//	jsrf '
//		# command
//		mergeif \ # file
//		   app.js:12:5  # position
//	'
//
// Each command sees the files as the commands before it left them.
// Nothing is written unless every command succeeds and every
// rewritten file still parses.
//
// # Languages
//
// The grammar for a file is chosen by its extension:
// .js, .jsx, .mjs and .cjs are JavaScript,
// .ts, .mts and .cts are TypeScript,
// and .tsx is TypeScript with JSX.
// The language setting (see Configuration) overrides the extension.
//
// # Code addresses
//
// Commands take “code addresses” as arguments.
// A code address has the form file:addr, where addr selects some text in the file.
//
// The most common form of addr is a position line:col,
// or a range of positions line:col,line:col,
// counting lines and columns from 1 the way compilers print them.
// A position selects the empty text before it.
//
// Any other addr uses the syntax of the Acme and Sam text editors.
// The most common forms are the line range “N,M”, the byte range “#N,M”,
// and the regular expression range “/re1/,/re2/”. For example:
//
//	app.js:12:5               # line 12, column 5
//	app.js:12:5,14:2          # from there to line 14, column 2
//	app.js:12                 # all of line 12
//	app.js:/if \(ready\)/     # the first if (ready)
//
// A range ending at a newline stops just before it.
// See http://9p.io/sys/doc/sam/sam.html Table II for details on the syntax.
//
// # The mergeif command
//
// The mergeif command merges two nested if statements into one.
//
//	mergeif address
//
// The address must touch an if statement whose only statement is another
// if statement, as in:
//
//	if (a) {
//		if (b) {
//			f();
//		}
//	}
//
// which becomes
//
//	if (a && b) {
//		f();
//	}
//
// The address may be anywhere in either if statement. When it is in a more
// deeply nested one, the innermost pair around it is merged. Operands that
// bind more loosely than && are parenthesized.
//
// An else block whose only statement is an if statement is merged as well:
//
//	if (a) {
//		f();
//	} else {
//		if (b) {
//			g();
//		}
//	}
//
// becomes
//
//	if (a) {
//		f();
//	} else if (b) {
//		g();
//	}
//
// Neither form applies when the inner if statement has an else branch,
// since the merged condition would change which branch runs.
// Nor does the first apply when the outer one does.
// A comment the merge would have to drop, such as one between the
// parenthesized condition and the brace, or after else, also prevents it.
//
// # Configuration
//
// Jsrf reads settings from the file named by --config, or else from
// .jsrf.yaml in the current directory or in $HOME:
//
//	indent: "  "        # one level of indentation in rewritten code
//	language: ""        # javascript, typescript or tsx; empty means by extension
//	logging:
//	  level: info       # debug, info, warn or error
//
// The environment variables JSRF_INDENT, JSRF_LANGUAGE and
// JSRF_LOGGING_LEVEL override the file.
package main
