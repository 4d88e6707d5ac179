// Package htmlclean extracts the visible text of an HTML document.
package htmlclean

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// skipped elements contribute no text, including everything nested in them.
var skipped = map[atom.Atom]struct{}{
	atom.Head:   {},
	atom.Script: {},
	atom.Style:  {},
}

// Strip reads HTML from r and returns its text with tags, comments and
// skipped elements removed. Entities are decoded. The document is parsed
// into a tree, so end tags HTML lets authors omit (such as </head>) are
// implied the way a browser would. Adjacent text nodes are separated by a
// space so words on either side of a tag never merge.
func Strip(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("parsing html: %w", err)
	}
	var sb strings.Builder
	collectText(doc, &sb)
	return sb.String(), nil
}

// StripString is Strip over an in-memory document.
func StripString(doc string) (string, error) {
	return Strip(strings.NewReader(doc))
}

func collectText(n *html.Node, sb *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		sb.WriteByte(' ')
		return
	case html.ElementNode:
		if _, skip := skipped[n.DataAtom]; skip {
			return
		}
	case html.CommentNode:
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}
