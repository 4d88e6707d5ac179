// Package index implements the in-memory inverted index that maps each word
// to the locations it occurs in and the 1-based positions of every
// occurrence.
package index

import (
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/Adithya-Monish-Kumar-K/wordindex/internal/searcher/ranker"
	apperrors "github.com/Adithya-Monish-Kumar-K/wordindex/pkg/errors"
)

// InvertedIndex stores word -> location -> positions. Entries are only ever
// added. Writers take a single coarse lock; searches only read.
type InvertedIndex struct {
	mu        sync.RWMutex
	index     map[string]map[string]*positionSet
	locations map[string]struct{}

	// sorted is a lazily rebuilt ascending snapshot of the words in index.
	// Partial search depends on its order to stop a prefix scan early.
	keysMu sync.Mutex
	sorted []string
	dirty  bool
}

func NewInvertedIndex() *InvertedIndex {
	return &InvertedIndex{
		index:     make(map[string]map[string]*positionSet),
		locations: make(map[string]struct{}),
	}
}

// Add records that word occurs at position in location. Adding the same
// triple twice has no further effect.
func (m *InvertedIndex) Add(word string, location string, position int) error {
	if err := validate(word, location, position); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.add(word, location, position)
	return nil
}

// AddAll records words as one document's token stream, numbering positions
// from 1. Nothing is stored if any word is malformed.
func (m *InvertedIndex) AddAll(words []string, location string) error {
	for i, word := range words {
		if err := validate(word, location, i+1); err != nil {
			return err
		}
	}
	if len(words) == 0 && location == "" {
		return apperrors.New(apperrors.ErrInvalidInput, "location must not be empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, word := range words {
		m.add(word, location, i+1)
	}
	return nil
}

func (m *InvertedIndex) add(word string, location string, position int) {
	docs, exists := m.index[word]
	if !exists {
		docs = make(map[string]*positionSet)
		m.index[word] = docs
		m.dirty = true
	}
	ps, exists := docs[location]
	if !exists {
		ps = &positionSet{}
		docs[location] = ps
	}
	ps.insert(position)
	m.locations[location] = struct{}{}
}

func validate(word string, location string, position int) error {
	switch {
	case word == "":
		return apperrors.Newf(apperrors.ErrInvalidInput, "empty word at position %d of %q", position, location)
	case location == "":
		return apperrors.Newf(apperrors.ErrInvalidInput, "empty location for word %q", word)
	case position < 1:
		return apperrors.Newf(apperrors.ErrInvalidInput, "position %d of word %q must be at least 1", position, word)
	case !utf8.ValidString(word):
		return apperrors.Newf(apperrors.ErrInvalidInput, "word %q is not valid UTF-8", word)
	case !utf8.ValidString(location):
		return apperrors.Newf(apperrors.ErrInvalidInput, "location %q is not valid UTF-8", location)
	}
	return nil
}

// ExactSearch ranks every location containing at least one of words.
func (m *InvertedIndex) ExactSearch(words []string) []ranker.Result {
	m.mu.RLock()
	defer m.mu.RUnlock()
	acc := make(map[string]*ranker.Result)
	for _, word := range uniqueWords(words) {
		if docs, exists := m.index[word]; exists {
			merge(acc, docs)
		}
	}
	return ranker.Collect(acc)
}

// PartialSearch ranks every location containing an indexed word that starts
// with one of words.
func (m *InvertedIndex) PartialSearch(words []string) []ranker.Result {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := m.sortedWords()
	acc := make(map[string]*ranker.Result)
	for _, prefix := range uniqueWords(words) {
		for i := sort.SearchStrings(keys, prefix); i < len(keys); i++ {
			if !strings.HasPrefix(keys[i], prefix) {
				break
			}
			merge(acc, m.index[keys[i]])
		}
	}
	return ranker.Collect(acc)
}

func merge(acc map[string]*ranker.Result, docs map[string]*positionSet) {
	for location, ps := range docs {
		if r, seen := acc[location]; seen {
			r.Update(len(*ps), ps.first())
			continue
		}
		acc[location] = ranker.NewResult(location, len(*ps), ps.first())
	}
}

func uniqueWords(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// sortedWords must be called with mu held for reading.
func (m *InvertedIndex) sortedWords() []string {
	m.keysMu.Lock()
	defer m.keysMu.Unlock()
	if m.dirty || len(m.sorted) != len(m.index) {
		keys := make([]string, 0, len(m.index))
		for word := range m.index {
			keys = append(keys, word)
		}
		sort.Strings(keys)
		m.sorted = keys
		m.dirty = false
	}
	return m.sorted
}

// Words returns every indexed word in ascending order.
func (m *InvertedIndex) Words() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := m.sortedWords()
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

// Locations returns the locations containing word in ascending order.
func (m *InvertedIndex) Locations(word string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	docs := m.index[word]
	out := make([]string, 0, len(docs))
	for location := range docs {
		out = append(out, location)
	}
	sort.Strings(out)
	return out
}

// Positions returns a copy of the ascending positions of word in location.
func (m *InvertedIndex) Positions(word string, location string) []int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ps, exists := m.index[word][location]
	if !exists {
		return nil
	}
	out := make([]int, len(*ps))
	copy(out, *ps)
	return out
}

func (m *InvertedIndex) Contains(word string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, exists := m.index[word]
	return exists
}

func (m *InvertedIndex) ContainsLocation(word string, location string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, exists := m.index[word][location]
	return exists
}

func (m *InvertedIndex) WordCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.index)
}

func (m *InvertedIndex) LocationCount(word string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.index[word])
}

// DocCount is the number of distinct locations that have at least one word.
func (m *InvertedIndex) DocCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.locations)
}

// Snapshot copies the index into word order with postings in location order.
func (m *InvertedIndex) Snapshot() []TermEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := m.sortedWords()
	entries := make([]TermEntry, 0, len(keys))
	for _, word := range keys {
		docs := m.index[word]
		postings := make(PostingList, 0, len(docs))
		for location, ps := range docs {
			positions := make([]int, len(*ps))
			copy(positions, *ps)
			postings = append(postings, Posting{
				Location:  location,
				Positions: positions,
			})
		}
		sort.Slice(postings, func(i, j int) bool {
			return postings[i].Location < postings[j].Location
		})
		entries = append(entries, TermEntry{
			Word:     word,
			Postings: postings,
		})
	}
	return entries
}
