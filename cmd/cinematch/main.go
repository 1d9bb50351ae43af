// Cinematch - Genre Similarity Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Command cinematch queries a movie catalog from the command line, using
// the same engine as the server without starting it.
//
//	cinematch --path movies.csv recommend "Heat" -k 3
//	cinematch --path movies.csv search --genre comedy --sort az
//	cinematch --source duckdb --path movies.duckdb genres
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
