// Package ranker holds the per-document match statistics produced by a search
// and the rule used to order them.
package ranker

import "sort"

// Result is one document's match against one query. Count and Position may
// change while postings from several matched words are merged; after Sort
// they are treated as frozen.
type Result struct {
	Location string `json:"where"`
	Count    int    `json:"count"`
	Position int    `json:"index"`
}

func NewResult(location string, count int, position int) *Result {
	return &Result{
		Location: location,
		Count:    count,
		Position: position,
	}
}

// Update folds another matched word's postings for the same location into r.
func (r *Result) Update(count int, position int) {
	r.Count += count
	if position < r.Position {
		r.Position = position
	}
}

// Less reports whether a ranks before b: higher count first, then earlier
// position, then smaller location.
func Less(a, b Result) bool {
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	if a.Position != b.Position {
		return a.Position < b.Position
	}
	return a.Location < b.Location
}

// Collect converts a merge accumulator into a rank-ordered slice.
func Collect(acc map[string]*Result) []Result {
	results := make([]Result, 0, len(acc))
	for _, r := range acc {
		results = append(results, *r)
	}
	Sort(results)
	return results
}

func Sort(results []Result) {
	sort.Slice(results, func(i, j int) bool {
		return Less(results[i], results[j])
	})
}
