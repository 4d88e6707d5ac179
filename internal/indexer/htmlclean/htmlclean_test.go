package htmlclean

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrip(t *testing.T) {
	doc := `<!DOCTYPE html>
<html>
<head><title>Ignored Title</title><style>body { color: red; }</style></head>
<body>
<!-- hidden comment -->
<h1>Hello</h1><p>big&amp;small <b>bold</b>word</p>
<script>var hidden = "text";</script>
<p>caf&eacute;</p>
</body>
</html>`
	got, err := StripString(doc)
	require.NoError(t, err)

	fields := strings.Fields(got)
	assert.Equal(t, []string{"Hello", "big&small", "bold", "word", "café"}, fields)
	assert.NotContains(t, got, "Ignored")
	assert.NotContains(t, got, "hidden")
	assert.NotContains(t, got, "color")
}

func TestStripPlainText(t *testing.T) {
	got, err := StripString("no markup here")
	require.NoError(t, err)
	assert.Equal(t, "no markup here", strings.TrimSpace(got))
}

func TestStripEmpty(t *testing.T) {
	got, err := StripString("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStripImpliedEndTags(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{"no head end tag", "<html><head><title>T</title><body><p>visible words here</p></body></html>", []string{"visible", "words", "here"}},
		{"no body tag", "<head><title>T</title><p>just a paragraph", []string{"just", "a", "paragraph"}},
		{"unclosed style in head", "<head><style>p{}</style><body>kept", []string{"kept"}},
		{"unclosed paragraphs", "<p>one<p>two", []string{"one", "two"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StripString(tt.doc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.Fields(got))
		})
	}
}
