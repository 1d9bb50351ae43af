// Cinematch - Genre Similarity Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// tokenPattern matches runs of two or more Unicode word characters.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Tokenize lowercases doc and splits it into vocabulary candidates,
// dropping English stop words. Order and duplicates are preserved.
//
//	Tokenize("Sci-Fi (no genres listed)") // [sci fi genres listed]
func Tokenize(doc string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(doc), -1)
	tokens := raw[:0]
	for _, tok := range raw {
		if _, stop := englishStopWords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// Vector is a sparse row. Indices are strictly increasing feature
// positions; Values holds the matching weights.
type Vector struct {
	Indices []int
	Values  []float64
}

// Dot returns the inner product of two sparse vectors.
func (v Vector) Dot(o Vector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(v.Indices) && j < len(o.Indices) {
		switch {
		case v.Indices[i] == o.Indices[j]:
			sum += v.Values[i] * o.Values[j]
			i++
			j++
		case v.Indices[i] < o.Indices[j]:
			i++
		default:
			j++
		}
	}
	return sum
}

// Norm returns the Euclidean length of v.
func (v Vector) Norm() float64 {
	var sum float64
	for _, x := range v.Values {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// IsZero reports whether v has no non-zero weights.
func (v Vector) IsZero() bool {
	return len(v.Indices) == 0
}

// Model is a fitted TF-IDF model: a fixed vocabulary, its IDF weights, and
// one L2-normalized vector per input document.
type Model struct {
	vocabulary []string
	index      map[string]int
	idf        []float64
	vectors    []Vector
}

// Fit builds the vocabulary from docs and vectorizes every document.
// An empty docs slice yields an empty vocabulary and no vectors.
func Fit(docs []string) *Model {
	tokenized := make([][]string, len(docs))
	df := make(map[string]int)
	for i, doc := range docs {
		toks := Tokenize(doc)
		tokenized[i] = toks
		seen := make(map[string]struct{}, len(toks))
		for _, tok := range toks {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	vocab := make([]string, 0, len(df))
	for tok := range df {
		vocab = append(vocab, tok)
	}
	sort.Strings(vocab)

	m := &Model{
		vocabulary: vocab,
		index:      make(map[string]int, len(vocab)),
		idf:        make([]float64, len(vocab)),
		vectors:    make([]Vector, len(docs)),
	}

	n := float64(len(docs))
	for i, tok := range vocab {
		m.index[tok] = i
		m.idf[i] = math.Log((1+n)/(1+float64(df[tok]))) + 1
	}

	for i, toks := range tokenized {
		m.vectors[i] = m.weigh(toks)
	}
	return m
}

// weigh turns tokens into a normalized TF-IDF vector. Tokens outside the
// vocabulary are ignored.
func (m *Model) weigh(tokens []string) Vector {
	counts := make(map[int]int, len(tokens))
	for _, tok := range tokens {
		if idx, ok := m.index[tok]; ok {
			counts[idx]++
		}
	}
	if len(counts) == 0 {
		return Vector{}
	}

	v := Vector{
		Indices: make([]int, 0, len(counts)),
		Values:  make([]float64, 0, len(counts)),
	}
	for idx := range counts {
		v.Indices = append(v.Indices, idx)
	}
	sort.Ints(v.Indices)
	for _, idx := range v.Indices {
		v.Values = append(v.Values, float64(counts[idx])*m.idf[idx])
	}

	if norm := v.Norm(); norm > 0 {
		for k := range v.Values {
			v.Values[k] /= norm
		}
	}
	return v
}

// Vocabulary returns the sorted feature names.
func (m *Model) Vocabulary() []string {
	return append([]string(nil), m.vocabulary...)
}

// Len returns the number of fitted documents.
func (m *Model) Len() int {
	return len(m.vectors)
}

// Vector returns the fitted vector of document i.
func (m *Model) Vector(i int) Vector {
	return m.vectors[i]
}
