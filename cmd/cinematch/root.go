// Cinematch - Genre Similarity Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/search"
)

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	source   string
	path     string
	table    string
	logLevel string
	json     bool

	out io.Writer
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	opts := &rootOptions{out: out}

	rootCmd := &cobra.Command{
		Use:          "cinematch",
		Short:        "Genre similarity movie recommendations",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Init(logging.Config{
				Level:  opts.logLevel,
				Format: "console",
				Output: errOut,
			})
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.source, "source", catalog.SourceCSV, "Catalog source: csv or duckdb")
	pf.StringVar(&opts.path, "path", "movies.csv", "Catalog file path")
	pf.StringVar(&opts.table, "table", "movies", "Table to read from a .duckdb database")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "Log level: trace, debug, info, warn, error")
	pf.BoolVar(&opts.json, "json", false, "Print results as JSON")

	rootCmd.AddCommand(
		newRecommendCmd(opts),
		newSearchCmd(opts),
		newGenresCmd(opts),
		newScoreCmd(opts),
	)
	return rootCmd
}

// loadService reads the catalog and builds the engine and search service.
func (o *rootOptions) loadService(ctx context.Context) (*search.Service, error) {
	src, err := catalog.NewSource(o.source, o.path, o.table)
	if err != nil {
		return nil, err
	}
	cat, err := catalog.Load(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", src, err)
	}
	engine, err := recommend.NewEngine(cat, recommend.DefaultConfig(), logging.WithComponent("recommend"))
	if err != nil {
		return nil, fmt.Errorf("build engine: %w", err)
	}
	return search.NewService(engine, search.Options{})
}

func (o *rootOptions) printJSON(v any) error {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
