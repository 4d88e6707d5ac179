package parser

import (
	"strings"

	"github.com/Adithya-Monish-Kumar-K/wordindex/internal/indexer/tokenizer"
)

// QueryPlan is a query line reduced to its distinct words.
type QueryPlan struct {
	// Words are distinct and ascending.
	Words []string
	// Key is Words joined by single spaces. Lines with the same word set
	// share a key.
	Key      string
	RawQuery string
}

// Parse normalises a raw query line the same way documents are normalised.
func Parse(query string) *QueryPlan {
	words := tokenizer.Unique(tokenizer.Tokenize(query))
	return &QueryPlan{
		Words:    words,
		Key:      strings.Join(words, " "),
		RawQuery: query,
	}
}

// Empty reports whether the line produced no words and should be skipped.
func (p *QueryPlan) Empty() bool {
	return len(p.Words) == 0
}
