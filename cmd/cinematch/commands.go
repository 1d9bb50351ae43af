// Cinematch - Genre Similarity Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/search"
	"github.com/tomtom215/cinematch/internal/validation"
)

// errNoMatch is returned by recommend when no title contains the fragment.
var errNoMatch = errors.New("no movie matched")

// recommendArgs mirrors the limits of the recommendations API.
type recommendArgs struct {
	Title string `query:"title" validate:"required,max=200"`
	K     int    `query:"k" validate:"min=1,max=50"`
}

// scoreArgs holds the two title fragments of the score command.
type scoreArgs struct {
	TitleA string `query:"title_a" validate:"required,max=200"`
	TitleB string `query:"title_b" validate:"required,max=200"`
}

// argError reports validation failures by the flag or argument that
// carried each field. It unwraps to the validation error.
type argError struct {
	verr  *validation.RequestValidationError
	names map[string]string
}

func newArgError(verr *validation.RequestValidationError, names map[string]string) error {
	return &argError{verr: verr, names: names}
}

func (e *argError) Error() string {
	errs := e.verr.Errors()
	msgs := make([]string, len(errs))
	for i, fe := range errs {
		name, ok := e.names[fe.Field()]
		if !ok {
			name = "--" + fe.Field()
		}
		msgs[i] = fmt.Sprintf("invalid %s: %s", name, fe.Error())
	}
	return strings.Join(msgs, "; ")
}

func (e *argError) Unwrap() error {
	return e.verr
}

// searchArgs mirrors the limits of the search API, with a strict sort.
type searchArgs struct {
	Movie string `query:"movie" validate:"max=200"`
	Genre string `query:"genre" validate:"max=100"`
	Sort  string `query:"sort" validate:"sortorder"`
}

func newRecommendCmd(opts *rootOptions) *cobra.Command {
	var k int

	cmd := &cobra.Command{
		Use:   "recommend <title>",
		Short: "List the movies whose genres are most similar to a title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := recommendArgs{Title: strings.TrimSpace(args[0]), K: k}
			if verr := validation.ValidateStruct(&req); verr != nil {
				return newArgError(verr, map[string]string{"title": "<title>", "k": "-k"})
			}

			svc, err := opts.loadService(cmd.Context())
			if err != nil {
				return err
			}
			base, recs, ok, err := svc.Recommend(cmd.Context(), req.Title, req.K)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: %q", errNoMatch, req.Title)
			}

			if opts.json {
				return opts.printJSON(struct {
					BaseMovie       catalog.Movie           `json:"base_movie"`
					Recommendations []recommend.ScoredMovie `json:"recommendations"`
				}{base, recs})
			}
			fmt.Fprintf(opts.out, "Because you searched for %s (%s):\n\n", base.Title, base.GenreString())
			return writeScored(opts.out, recs)
		},
	}
	cmd.Flags().IntVarP(&k, "k", "k", search.DefaultRecommendLimit, "Number of recommendations (1-50)")
	return cmd
}

func newSearchCmd(opts *rootOptions) *cobra.Command {
	var args searchArgs

	cmd := &cobra.Command{
		Use:   "search",
		Short: "List movies filtered by title and genre, with recommendations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if verr := validation.ValidateStruct(&args); verr != nil {
				return newArgError(verr, nil)
			}

			svc, err := opts.loadService(cmd.Context())
			if err != nil {
				return err
			}
			res, err := svc.Search(cmd.Context(), search.ParseRequest(args.Movie, args.Genre, args.Sort))
			if err != nil {
				return err
			}

			if opts.json {
				return opts.printJSON(res)
			}
			if res.BaseMovie != "" {
				fmt.Fprintf(opts.out, "Recommendations for %s:\n\n", res.BaseMovie)
				if err := writeScored(opts.out, res.Recommendations); err != nil {
					return err
				}
				fmt.Fprintln(opts.out)
			} else if args.Movie != "" {
				fmt.Fprintf(opts.out, "No movie matched %q.\n\n", args.Movie)
			}
			fmt.Fprintf(opts.out, "Movies (%d of %d):\n\n", len(res.Movies), res.Total)
			return writeMovies(opts.out, res.Movies)
		},
	}
	f := cmd.Flags()
	f.StringVar(&args.Movie, "movie", "", "Title fragment; also selects the base movie")
	f.StringVar(&args.Genre, "genre", "", "Genre fragment")
	f.StringVar(&args.Sort, "sort", "", "Title order: az, za or empty for catalog order")
	return cmd
}

func newGenresCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "genres",
		Short: "List the genre vocabulary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := opts.loadService(cmd.Context())
			if err != nil {
				return err
			}
			genres := svc.Genres()
			if opts.json {
				return opts.printJSON(genres)
			}
			for _, g := range genres {
				fmt.Fprintln(opts.out, g)
			}
			return nil
		},
	}
}

func newScoreCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "score <title-a> <title-b>",
		Short: "Print the genre similarity of two titles",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := scoreArgs{TitleA: strings.TrimSpace(args[0]), TitleB: strings.TrimSpace(args[1])}
			if verr := validation.ValidateStruct(&req); verr != nil {
				return newArgError(verr, map[string]string{"title_a": "<title-a>", "title_b": "<title-b>"})
			}

			svc, err := opts.loadService(cmd.Context())
			if err != nil {
				return err
			}
			a, b, score, ok, err := svc.Similarity(cmd.Context(), req.TitleA, req.TitleB)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: %q or %q", errNoMatch, req.TitleA, req.TitleB)
			}

			if opts.json {
				return opts.printJSON(struct {
					MovieA catalog.Movie `json:"movie_a"`
					MovieB catalog.Movie `json:"movie_b"`
					Score  float64       `json:"score"`
				}{a, b, score})
			}
			fmt.Fprintf(opts.out, "%s (%s)\n%s (%s)\nSimilarity: %.3f\n",
				a.Title, a.GenreString(), b.Title, b.GenreString(), score)
			return nil
		},
	}
}

func writeScored(w io.Writer, recs []recommend.ScoredMovie) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TITLE\tGENRES\tSCORE")
	for _, r := range recs {
		fmt.Fprintf(tw, "%s\t%s\t%.3f\n", r.Movie.Title, r.Movie.GenreString(), r.Score)
	}
	return tw.Flush()
}

func writeMovies(w io.Writer, movies []catalog.Movie) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TITLE\tGENRES")
	for _, m := range movies {
		fmt.Fprintf(tw, "%s\t%s\n", m.Title, m.GenreString())
	}
	return tw.Flush()
}
