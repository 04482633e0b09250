// Package dom turns raw HTML text into traversable trees and the shape
// fingerprints the structural comparator works on.
package dom

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Document wraps one parsed HTML sample. It is created fresh per fetch and
// discarded after fingerprint and metrics extraction.
type Document struct {
	doc *goquery.Document
}

// Parse builds a Document from raw HTML. The html5 parser is forgiving, so
// malformed input still yields a usable tree.
func Parse(rawHTML string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return &Document{doc: doc}, nil
}

// Selection exposes the underlying goquery document for selector queries.
func (d *Document) Selection() *goquery.Document {
	return d.doc
}

// Body returns the body element node, or nil when the document has none.
func (d *Document) Body() *html.Node {
	sel := d.doc.Find("body")
	if sel.Length() == 0 {
		return nil
	}
	return sel.Get(0)
}
