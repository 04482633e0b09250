package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// NormalizedNode is a shape-only fingerprint of a document: the body tag and
// the ordered tags of its direct element children. Equality is deliberately
// shallow; changes below the first child level are invisible to it.
type NormalizedNode struct {
	Tag       string   `json:"tag"`
	ChildTags []string `json:"child_tags"`
}

// Normalize reduces a document to the shape fingerprint of its body element.
// Documents without a body normalize to an empty root, so repeated fetches
// of a degenerate page still compare equal.
func Normalize(d *Document) *NormalizedNode {
	body := d.Body()
	if body == nil {
		return &NormalizedNode{Tag: "body"}
	}

	node := &NormalizedNode{Tag: strings.ToLower(body.Data)}
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		node.ChildTags = append(node.ChildTags, strings.ToLower(c.Data))
	}
	return node
}

// Equal reports shallow structural equality: same tag and the same ordered
// child tag list, element-wise.
func (n *NormalizedNode) Equal(other *NormalizedNode) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Tag != other.Tag || len(n.ChildTags) != len(other.ChildTags) {
		return false
	}
	for i := range n.ChildTags {
		if n.ChildTags[i] != other.ChildTags[i] {
			return false
		}
	}
	return true
}
