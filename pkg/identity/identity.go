// Package identity extracts page identity metadata (title, excerpt, author,
// content language) from the first fetched sample. The output is purely
// informational and never feeds the semantic rubric.
package identity

import (
	"net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"
	"github.com/pemistahl/lingua-go"

	"github.com/domlens/domlens/models"
	"github.com/domlens/domlens/pkg/dom"
)

// detectionLanguages limits the lingua model set to keep detector startup
// reasonable while covering the common web languages.
var detectionLanguages = []lingua.Language{
	lingua.English,
	lingua.Spanish,
	lingua.French,
	lingua.German,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Dutch,
	lingua.Russian,
	lingua.Japanese,
	lingua.Chinese,
}

// minDetectionTextLength is the minimum content length before language
// detection is attempted; shorter samples give unreliable guesses.
const minDetectionTextLength = 40

type Extractor struct {
	detector lingua.LanguageDetector
}

func NewExtractor() *Extractor {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(detectionLanguages...).
		Build()
	return &Extractor{detector: detector}
}

// Extract pulls identity metadata from one HTML sample. Every step degrades
// gracefully: a page readability cannot distill still yields the declared
// language and whatever fields were found.
func (e *Extractor) Extract(rawHTML, rawURL string) models.PageIdentity {
	var identity models.PageIdentity

	if d, err := dom.Parse(rawHTML); err == nil {
		if lang, ok := d.Selection().Find("html").Attr("lang"); ok {
			identity.DeclaredLang = strings.TrimSpace(lang)
		}
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return identity
	}

	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(rawHTML), parsedURL)
	if err != nil {
		return identity
	}

	identity.Title = strings.TrimSpace(article.Title)
	identity.Excerpt = strings.TrimSpace(article.Excerpt)
	identity.SiteName = strings.TrimSpace(article.SiteName)
	identity.Author = strings.TrimSpace(article.Byline)

	text := strings.TrimSpace(article.TextContent)
	if len(text) >= minDetectionTextLength {
		if language, ok := e.detector.DetectLanguageOf(text); ok {
			identity.DetectedLang = strings.ToLower(language.IsoCode639_1().String())
			identity.DetectedLangConfidence = e.detector.ComputeLanguageConfidence(text, language)
		}
	}

	return identity
}
