// Package benchmark contains Go benchmarks for the inverted index, the query
// pipeline and the tokenizer, measuring throughput and allocation behaviour.
package benchmark

import (
	"fmt"
	"io"
	"testing"

	"github.com/Adithya-Monish-Kumar-K/wordindex/internal/indexer/index"
	"github.com/Adithya-Monish-Kumar-K/wordindex/internal/indexer/tokenizer"
	"github.com/Adithya-Monish-Kumar-K/wordindex/internal/jsonwriter"
)

var benchWords = tokenizer.Tokenize("this is a benchmark document with several terms for testing the indexing performance of our memory index")

func buildIndex(b *testing.B, docs int) *index.InvertedIndex {
	b.Helper()
	idx := index.NewInvertedIndex()
	terms := []string{"distributed", "search", "analytics", "platform", "indexing", "query", "engine", "ranking"}
	for i := 0; i < docs; i++ {
		words := []string{
			terms[i%len(terms)], terms[(i+1)%len(terms)], "document", "about",
			terms[(i+2)%len(terms)], fmt.Sprintf("term%c%c", 'a'+i%26, 'a'+(i/26)%26),
		}
		if err := idx.AddAll(words, fmt.Sprintf("doc-%d.html", i)); err != nil {
			b.Fatal(err)
		}
	}
	return idx
}

// BenchmarkIndexAddAll measures per-document insert throughput.
func BenchmarkIndexAddAll(b *testing.B) {
	idx := index.NewInvertedIndex()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := idx.AddAll(benchWords, fmt.Sprintf("doc-%d", i)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkIndexAddAllParallel measures insert throughput when documents
// arrive from several goroutines and contend on the write lock.
func BenchmarkIndexAddAllParallel(b *testing.B) {
	idx := index.NewInvertedIndex()
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_ = idx.AddAll(benchWords, fmt.Sprintf("doc-%p-%d", pb, i))
			i++
		}
	})
}

// BenchmarkIndexSnapshot measures the cost of ordering the whole index for
// serialization.
func BenchmarkIndexSnapshot(b *testing.B) {
	idx := buildIndex(b, 5000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = idx.Snapshot()
	}
}

// BenchmarkWriteIndex measures JSON rendering of a 5 000 document index.
func BenchmarkWriteIndex(b *testing.B) {
	idx := buildIndex(b, 5000)
	w := jsonwriter.New(jsonwriter.DefaultIndent)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := w.WriteIndex(io.Discard, idx); err != nil {
			b.Fatal(err)
		}
	}
}
