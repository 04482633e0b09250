package dom

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/domlens/domlens/models"
)

// skipTags are non-content subtrees the metrics walk never descends into.
var skipTags = map[string]struct{}{
	"script":   {},
	"style":    {},
	"noscript": {},
	"svg":      {},
	"path":     {},
}

// sectionTags count as top-level sections when they are direct children of body.
var sectionTags = map[string]struct{}{
	"header":  {},
	"nav":     {},
	"main":    {},
	"section": {},
	"article": {},
	"aside":   {},
	"footer":  {},
}

// ComputeDomMetrics parses one HTML sample and counts element nodes, maximum
// nesting depth, and top-level sections. A document without a body yields
// all-zero metrics rather than an error.
func ComputeDomMetrics(rawHTML string) models.DomMetrics {
	d, err := Parse(rawHTML)
	if err != nil {
		return models.DomMetrics{}
	}

	body := d.Body()
	if body == nil {
		return models.DomMetrics{}
	}

	var m models.DomMetrics
	countNodes(body, 1, &m)

	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if _, ok := sectionTags[strings.ToLower(c.Data)]; ok {
			m.TopLevelSections++
		}
	}

	return m
}

func countNodes(n *html.Node, depth int, m *models.DomMetrics) {
	if n.Type != html.ElementNode {
		return
	}
	if _, skip := skipTags[strings.ToLower(n.Data)]; skip {
		return
	}

	m.DomNodes++
	if depth > m.MaxDepth {
		m.MaxDepth = depth
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		countNodes(c, depth+1, m)
	}
}

// CountCustomElements counts likely shadow-DOM hosts: elements with a
// hyphenated tag name (custom elements) plus declarative shadow roots
// (template elements carrying a shadowrootmode attribute). A static fetch
// cannot see attached shadow trees, so hosts are the observable proxy.
func CountCustomElements(d *Document) int {
	count := 0
	d.Selection().Find("*").Each(func(_ int, s *goquery.Selection) {
		tag := goquery.NodeName(s)
		if strings.Contains(tag, "-") {
			count++
			return
		}
		if tag == "template" {
			if _, ok := s.Attr("shadowrootmode"); ok {
				count++
			}
		}
	})
	return count
}
