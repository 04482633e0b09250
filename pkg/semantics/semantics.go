// Package semantics extracts machine-readability signals from one HTML
// sample and derives a classification from a fixed weighted rubric.
package semantics

import (
	"math"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/domlens/domlens/models"
	"github.com/domlens/domlens/pkg/dom"
)

// landmarkTags are the region elements whose presence and text coverage are
// measured. Order here fixes the order of the found list.
var landmarkTags = []string{"main", "nav", "header", "footer", "aside", "article"}

// landmarkSelector matches any landmark element.
var landmarkSelector = strings.Join(landmarkTags, ", ")

// semanticTags weigh against generic containers in the div ratio.
var semanticTags = []string{"main", "nav", "header", "footer", "aside", "article", "section", "figure"}

var semanticSelector = strings.Join(semanticTags, ", ")

// genericLinkPhrases flag anchors whose entire text is boilerplate that tells
// a machine reader nothing about the destination.
var genericLinkPhrases = map[string]struct{}{
	"click here": {},
	"here":       {},
	"read more":  {},
	"more":       {},
	"learn more": {},
	"link":       {},
}

// Scoring rubric: four independent gates summing to 100. The weights and
// thresholds are fixed, not configuration.
const (
	weightHeadings  = 25
	weightLandmarks = 30
	weightDivRatio  = 25
	weightLinks     = 20

	landmarkCoverageGoal = 80
	divRatioCeiling      = 0.6

	scoreExplicit = 75
	scorePartial  = 40
)

// CheckSemantics computes every semantic signal from one HTML sample and
// classifies the document. It is a pure function of its input and is total:
// degenerate documents produce zeroed signals, never an error.
func CheckSemantics(rawHTML string) models.SemanticResult {
	d, err := dom.Parse(rawHTML)
	if err != nil {
		return models.SemanticResult{Classification: models.SemanticOpaque}
	}
	doc := d.Selection()

	result := models.SemanticResult{
		Headings:      checkHeadings(doc),
		Landmarks:     checkLandmarks(doc),
		DivRatio:      genericContainerRatio(doc),
		LinkIssues:    countLinkIssues(doc),
		TimeElements:  checkTimeElements(doc),
		Lists:         checkLists(doc),
		Tables:        checkTables(doc),
		LangAttribute: hasLangAttribute(doc),
		Images:        checkImages(doc),
	}
	result.Classification = classify(result)
	return result
}

// checkHeadings collects h1..h6 in document order and flags level skips. A
// skip is any adjacent pair jumping more than one level down; the scan
// short-circuits on the first violation.
func checkHeadings(doc *goquery.Document) models.HeadingResult {
	var levels []int
	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		tag := goquery.NodeName(s)
		level, err := strconv.Atoi(tag[1:])
		if err != nil {
			return
		}
		levels = append(levels, level)
	})

	result := models.HeadingResult{}
	for _, level := range levels {
		if level == 1 {
			result.H1Count++
		}
	}
	for i := 1; i < len(levels); i++ {
		if levels[i] > levels[i-1]+1 {
			result.HasSkips = true
			break
		}
	}
	return result
}

// checkLandmarks records which landmark tags exist and what fraction of the
// body text lives inside a landmark. Only topmost landmarks are summed so
// nested regions are not double counted.
func checkLandmarks(doc *goquery.Document) models.LandmarkResult {
	result := models.LandmarkResult{Found: []string{}}
	for _, tag := range landmarkTags {
		if doc.Find(tag).Length() > 0 {
			result.Found = append(result.Found, tag)
		}
	}

	landmarkLen := 0
	doc.Find(landmarkSelector).Each(func(_ int, s *goquery.Selection) {
		if s.ParentsFiltered(landmarkSelector).Length() > 0 {
			return
		}
		landmarkLen += textLength(s.Text())
	})

	bodyLen := textLength(doc.Find("body").Text())
	if bodyLen < 1 {
		bodyLen = 1
	}

	coverage := int(math.Round(100 * float64(landmarkLen) / float64(bodyLen)))
	if coverage < 0 {
		coverage = 0
	}
	if coverage > 100 {
		coverage = 100
	}
	result.CoveragePercent = coverage
	return result
}

// genericContainerRatio compares generic containers against semantic
// elements. The +1 denominator term guards division by zero and biases the
// ratio downward for tiny documents, so the result is always below 1.
func genericContainerRatio(doc *goquery.Document) float64 {
	divCount := doc.Find("div, span").Length()
	semanticCount := doc.Find(semanticSelector).Length()
	return float64(divCount) / float64(divCount+semanticCount+1)
}

// countLinkIssues flags anchors that a machine reader cannot interpret:
// empty text without an alt-bearing image, boilerplate phrases, and
// javascript: pseudo-links.
func countLinkIssues(doc *goquery.Document) int {
	issues := 0
	doc.Find("a").Each(func(_ int, s *goquery.Selection) {
		text := strings.ToLower(strings.TrimSpace(s.Text()))

		if text == "" && s.Find("img[alt]").Length() == 0 {
			issues++
			return
		}
		if _, generic := genericLinkPhrases[text]; generic {
			issues++
			return
		}
		href, _ := s.Attr("href")
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(href)), "javascript:") {
			issues++
		}
	})
	return issues
}

func checkTimeElements(doc *goquery.Document) models.TimeResult {
	result := models.TimeResult{}
	doc.Find("time").Each(func(_ int, s *goquery.Selection) {
		result.Total++
		if _, ok := s.Attr("datetime"); ok {
			result.WithDatetime++
		}
	})
	return result
}

func checkLists(doc *goquery.Document) models.ListResult {
	result := models.ListResult{
		Ordered:     doc.Find("ol").Length(),
		Unordered:   doc.Find("ul").Length(),
		Description: doc.Find("dl").Length(),
	}
	result.Total = result.Ordered + result.Unordered + result.Description
	return result
}

// checkTables counts tables and how many declare headers via thead or th.
func checkTables(doc *goquery.Document) models.TableResult {
	result := models.TableResult{}
	doc.Find("table").Each(func(_ int, s *goquery.Selection) {
		result.Total++
		if s.Find("thead").Length() > 0 || s.Find("th").Length() > 0 {
			result.WithHeaders++
		}
	})
	return result
}

func hasLangAttribute(doc *goquery.Document) bool {
	_, ok := doc.Find("html").Attr("lang")
	return ok
}

// checkImages classifies every img by alt state and independently counts
// markup quality signals. An absent alt attribute is missing; an empty one
// marks the image as intentionally decorative.
func checkImages(doc *goquery.Document) models.ImageResult {
	result := models.ImageResult{}
	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		result.Total++

		alt, ok := s.Attr("alt")
		switch {
		case !ok:
			result.MissingAlt++
		case alt == "":
			result.EmptyAlt++
		default:
			result.WithAlt++
		}

		if s.ParentsFiltered("figure").Length() > 0 {
			result.InFigure++
		}
		_, hasWidth := s.Attr("width")
		_, hasHeight := s.Attr("height")
		if hasWidth && hasHeight {
			result.WithDimensions++
		}
		if _, ok := s.Attr("srcset"); ok {
			result.WithSrcset++
		}
		if loading, ok := s.Attr("loading"); ok && strings.EqualFold(strings.TrimSpace(loading), "lazy") {
			result.WithLazyLoading++
		}
	})
	return result
}

// classify accumulates the four rubric gates and maps the score to a
// classification.
func classify(r models.SemanticResult) models.SemanticClassification {
	score := 0
	if r.Headings.H1Count == 1 && !r.Headings.HasSkips {
		score += weightHeadings
	}
	if r.Landmarks.CoveragePercent >= landmarkCoverageGoal {
		score += weightLandmarks
	}
	if r.DivRatio < divRatioCeiling {
		score += weightDivRatio
	}
	if r.LinkIssues == 0 {
		score += weightLinks
	}

	switch {
	case score >= scoreExplicit:
		return models.SemanticExplicit
	case score >= scorePartial:
		return models.SemanticPartial
	default:
		return models.SemanticOpaque
	}
}

// textLength measures visible text with whitespace runs collapsed, so
// indentation does not distort coverage ratios.
func textLength(s string) int {
	return len([]rune(strings.Join(strings.Fields(s), " ")))
}
