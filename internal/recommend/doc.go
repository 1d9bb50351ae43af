// Cinematch - Genre Similarity Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package recommend ranks movies by genre similarity.
//
// # Vectorization
//
// Each movie's genre tags are joined into one document and turned into a
// TF-IDF vector. Tokenization is lowercase, tokens are runs of two or more
// Unicode letters, digits or underscores, and English stop words are
// dropped. The vocabulary is the sorted set
// of remaining tokens. Weights are raw term counts times the smoothed IDF
//
//	idf(t) = ln((1 + n) / (1 + df(t))) + 1
//
// and every row is L2-normalized. A row with no vocabulary terms stays zero.
//
// # Ranking
//
// Similar computes the cosine similarity (a dot product, since rows are
// normalized) between one movie and every other, sorts by score descending
// with ties kept in catalog order, drops the query movie, and keeps the
// first topN.
//
//	engine, err := recommend.NewEngine(cat, recommend.DefaultConfig(), logger)
//	recs, err := engine.Similar(idx, 6)
//
// # Thread Safety
//
// Vectors are built once in NewEngine and never mutated. The only shared
// mutable state is the result cache, which has its own lock.
package recommend
