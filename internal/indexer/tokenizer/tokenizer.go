// Package tokenizer turns free text into the normalised word stream stored in
// the index. It lower-cases input and treats every rune that is not a letter
// as a separator, so digits and punctuation never reach the index.
package tokenizer

import (
	"sort"
	"strings"
	"unicode"
)

// Tokenize returns the normalised words of text in reading order. The
// position of a word is its 1-based index in the returned slice.
func Tokenize(text string) []string {
	text = strings.ToLower(text)
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

// Unique returns the distinct words of words in ascending order.
func Unique(words []string) []string {
	if len(words) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
