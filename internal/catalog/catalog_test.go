// Cinematch - Genre Similarity Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"errors"
	"reflect"
	"testing"
)

func testMovies() []Movie {
	return []Movie{
		{ID: "1", Title: "Toy Story (1995)", Genres: []string{"Adventure", "Animation", "Children", "Comedy", "Fantasy"}},
		{ID: "2", Title: "Jumanji (1995)", Genres: []string{"Adventure", "Children", "Fantasy"}},
		{ID: "3", Title: "TOYS (1992)", Genres: []string{"Comedy", "Fantasy"}},
		{ID: "4", Title: "Heat (1995)", Genres: []string{"Action", "Crime", "Thriller"}},
		{ID: "5", Title: "Unknown Film", Genres: []string{"(no genres listed)"}},
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	c, err := New(testMovies())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if c.Len() != 5 {
		t.Errorf("Len() = %d, want 5", c.Len())
	}

	m, ok := c.Movie(3)
	if !ok || m.Title != "Heat (1995)" {
		t.Errorf("Movie(3) = %+v, %v", m, ok)
	}
	if _, ok := c.Movie(5); ok {
		t.Error("Movie(5) should be out of range")
	}
	if _, ok := c.Movie(-1); ok {
		t.Error("Movie(-1) should be out of range")
	}
}

func TestNew_EmptyTitle(t *testing.T) {
	t.Parallel()

	_, err := New([]Movie{{Title: "A"}, {Title: "  "}})
	if !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("New() error = %v, want ErrEmptyTitle", err)
	}
}

func TestNew_Empty(t *testing.T) {
	t.Parallel()

	c, err := New(nil)
	if err != nil {
		t.Fatalf("New(nil) error = %v", err)
	}
	if c.Len() != 0 || len(c.Genres()) != 0 || len(c.Documents()) != 0 {
		t.Error("empty catalog should have no movies, genres or documents")
	}
	if _, ok := c.FindTitle("x"); ok {
		t.Error("FindTitle on empty catalog should not match")
	}
}

func TestNew_CopiesInput(t *testing.T) {
	t.Parallel()

	movies := testMovies()
	c, err := New(movies)
	if err != nil {
		t.Fatal(err)
	}
	movies[0].Title = "changed"
	movies[1].Genres[0] = "changed"

	m0, _ := c.Movie(0)
	m1, _ := c.Movie(1)
	if m0.Title != "Toy Story (1995)" || m1.Genres[0] != "Adventure" {
		t.Error("catalog observed changes to the caller's slice")
	}
}

func TestFindTitle(t *testing.T) {
	t.Parallel()

	c, _ := New(testMovies())
	tests := []struct {
		query string
		want  int
		found bool
	}{
		{"toy", 0, true},
		{"TOYS", 2, true},
		{"jumanji", 1, true},
		{"1995", 0, true},
		{"", 0, true},
		{"matrix", -1, false},
	}
	for _, tt := range tests {
		got, ok := c.FindTitle(tt.query)
		if got != tt.want || ok != tt.found {
			t.Errorf("FindTitle(%q) = %d, %v; want %d, %v", tt.query, got, ok, tt.want, tt.found)
		}
	}
}

func TestMatchTitles(t *testing.T) {
	t.Parallel()

	c, _ := New(testMovies())
	if got := c.MatchTitles("toy"); !reflect.DeepEqual(got, []int{0, 2}) {
		t.Errorf("MatchTitles(toy) = %v, want [0 2]", got)
	}
	if got := c.MatchTitles(""); len(got) != 5 {
		t.Errorf("MatchTitles(\"\") = %v, want all", got)
	}
	if got := c.MatchTitles("zzz"); len(got) != 0 {
		t.Errorf("MatchTitles(zzz) = %v, want none", got)
	}
}

func TestGenres(t *testing.T) {
	t.Parallel()

	c, _ := New(testMovies())
	want := []string{"(no", "Action", "Adventure", "Animation", "Children", "Comedy", "Crime", "Fantasy", "Thriller", "genres", "listed)"}
	if got := c.Genres(); !reflect.DeepEqual(got, want) {
		t.Errorf("Genres() = %v, want %v", got, want)
	}
}

func TestMovie_HasGenre(t *testing.T) {
	t.Parallel()

	m := Movie{Title: "X", Genres: []string{"Sci-Fi Comedy", "Drama"}}
	tests := []struct {
		fragment string
		want     bool
	}{
		{"com", true},
		{"COMEDY", true},
		{"sci-fi", true},
		{"dram", true},
		{"", true},
		{"horror", false},
		// fragments never span two tags
		{"comedy drama", false},
		{"comedy|drama", false},
	}
	for _, tt := range tests {
		if got := m.HasGenre(tt.fragment); got != tt.want {
			t.Errorf("HasGenre(%q) = %v, want %v", tt.fragment, got, tt.want)
		}
	}
}

func TestMovie_GenreString(t *testing.T) {
	t.Parallel()

	m := Movie{Genres: []string{"Action", "Sci-Fi"}}
	if got := m.GenreString(); got != "Action Sci-Fi" {
		t.Errorf("GenreString() = %q", got)
	}
}
