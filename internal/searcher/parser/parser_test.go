package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCanonicalKey(t *testing.T) {
	tests := []struct {
		query string
		key   string
		words []string
	}{
		{"dog cat", "cat dog", []string{"cat", "dog"}},
		{"cat dog", "cat dog", []string{"cat", "dog"}},
		{"  Dog, CAT dog!! ", "cat dog", []string{"cat", "dog"}},
		{"single", "single", []string{"single"}},
		{"x1y", "x y", []string{"x", "y"}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			plan := Parse(tt.query)
			assert.Equal(t, tt.key, plan.Key)
			assert.Equal(t, tt.words, plan.Words)
			assert.Equal(t, tt.query, plan.RawQuery)
			assert.False(t, plan.Empty())
		})
	}
}

func TestParseEmpty(t *testing.T) {
	for _, q := range []string{"", "   ", "123 456", "?!"} {
		plan := Parse(q)
		assert.True(t, plan.Empty(), q)
		assert.Equal(t, "", plan.Key)
	}
}
