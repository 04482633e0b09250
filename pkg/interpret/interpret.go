// Package interpret maps measured result fields to cautious, modal
// explanatory statements for automated readers. It measures nothing new and
// never prescribes fixes.
package interpret

import (
	"fmt"

	"github.com/domlens/domlens/models"
)

// Interpretation categories, in emission order.
const (
	categoryStability  = "structural stability"
	categoryShadowDOM  = "shadow DOM"
	categoryHeadings   = "heading outline"
	categoryLandmarks  = "landmarks"
	categoryContainers = "generic containers"
	categoryLinks      = "link text"
	categoryImages     = "image accessibility"
	categoryLanguage   = "language"
	categoryTime       = "time markup"
	categoryTables     = "tables"
)

// Interpret derives an ordered list of finding/implication pairs from the
// already-computed result fields. It is deterministic: the same inputs
// always produce the same statements in the same order.
func Interpret(structure models.StructureResult, semantics models.SemanticResult, fetchCount int) []models.Interpretation {
	var out []models.Interpretation

	out = append(out, interpretStability(structure, fetchCount))

	if structure.CustomElements > 0 {
		out = append(out, models.Interpretation{
			Category: categoryShadowDOM,
			Finding:  fmt.Sprintf("%d custom elements were found", structure.CustomElements),
			Implication: "content rendered inside shadow roots may be invisible to a " +
				"single static fetch, so extractors can see less than a browser does",
		})
	}

	out = append(out, interpretHeadings(semantics.Headings)...)
	out = append(out, interpretLandmarks(semantics.Landmarks)...)

	if semantics.DivRatio >= 0.6 {
		out = append(out, models.Interpretation{
			Category: categoryContainers,
			Finding:  fmt.Sprintf("generic containers make up a ratio of %.2f of the markup", semantics.DivRatio),
			Implication: "machine readers may be unable to distinguish content regions " +
				"from layout scaffolding without rendering the page",
		})
	}

	if semantics.LinkIssues > 0 {
		out = append(out, models.Interpretation{
			Category: categoryLinks,
			Finding:  fmt.Sprintf("%d links carry no descriptive text", semantics.LinkIssues),
			Implication: "crawlers and assistive technology may require surrounding " +
				"context to guess where these links lead",
		})
	}

	if semantics.Images.MissingAlt > 0 {
		out = append(out, models.Interpretation{
			Category: categoryImages,
			Finding: fmt.Sprintf("%d of %d images lack an alt attribute",
				semantics.Images.MissingAlt, semantics.Images.Total),
			Implication: "non-visual readers can only identify these images by file " +
				"name or surrounding text",
		})
	}

	if !semantics.LangAttribute {
		out = append(out, models.Interpretation{
			Category: categoryLanguage,
			Finding:  "the root element declares no lang attribute",
			Implication: "language-dependent processing such as hyphenation, " +
				"pronunciation, and translation may fall back to guesswork",
		})
	}

	if missing := semantics.TimeElements.Total - semantics.TimeElements.WithDatetime; missing > 0 {
		out = append(out, models.Interpretation{
			Category: categoryTime,
			Finding: fmt.Sprintf("%d of %d time elements omit a datetime attribute",
				missing, semantics.TimeElements.Total),
			Implication: "dates on this page may only be readable in their " +
				"human-formatted form",
		})
	}

	if missing := semantics.Tables.Total - semantics.Tables.WithHeaders; missing > 0 {
		out = append(out, models.Interpretation{
			Category: categoryTables,
			Finding: fmt.Sprintf("%d of %d tables declare no header cells",
				missing, semantics.Tables.Total),
			Implication: "tabular data extraction may have to infer column meaning " +
				"from cell position alone",
		})
	}

	return out
}

func interpretStability(structure models.StructureResult, fetchCount int) models.Interpretation {
	if fetchCount <= 1 {
		return models.Interpretation{
			Category: categoryStability,
			Finding:  "only one fetch was performed",
			Implication: "structural determinism cannot be verified from a single " +
				"sample; the deterministic classification is a default, not a measurement",
		}
	}

	switch structure.Classification {
	case models.StructureDeterministic:
		return models.Interpretation{
			Category: categoryStability,
			Finding:  fmt.Sprintf("%d fetches produced identical top-level structure", fetchCount),
			Implication: "cached or repeated crawls can expect to see the same " +
				"document shape each time",
		}
	case models.StructureMostlyDeterministic:
		return models.Interpretation{
			Category: categoryStability,
			Finding:  fmt.Sprintf("1 of the fetch pairs differed across %d fetches", fetchCount),
			Implication: "small server-side variations may appear between visits; " +
				"extractors can usually rely on the overall shape",
		}
	default:
		return models.Interpretation{
			Category: categoryStability,
			Finding: fmt.Sprintf("%d fetch pairs differed across %d fetches",
				structure.DifferenceCount, fetchCount),
			Implication: "each visit may yield a different document shape, so " +
				"selectors anchored to structure can break between fetches",
		}
	}
}

func interpretHeadings(headings models.HeadingResult) []models.Interpretation {
	var out []models.Interpretation

	switch {
	case headings.H1Count == 0:
		out = append(out, models.Interpretation{
			Category: categoryHeadings,
			Finding:  "no h1 heading is present",
			Implication: "outline-based navigation may have no entry point for the " +
				"main topic of the page",
		})
	case headings.H1Count > 1:
		out = append(out, models.Interpretation{
			Category: categoryHeadings,
			Finding:  fmt.Sprintf("%d h1 headings are present", headings.H1Count),
			Implication: "machine readers may be unable to determine which heading " +
				"names the document",
		})
	}

	if headings.HasSkips {
		out = append(out, models.Interpretation{
			Category: categoryHeadings,
			Finding:  "the heading outline skips levels",
			Implication: "section hierarchy reconstructed from headings may not " +
				"match the visual hierarchy",
		})
	}

	return out
}

func interpretLandmarks(landmarks models.LandmarkResult) []models.Interpretation {
	var out []models.Interpretation

	if len(landmarks.Found) == 0 {
		out = append(out, models.Interpretation{
			Category: categoryLandmarks,
			Finding:  "no landmark elements are present",
			Implication: "assistive technology may have to linearize the whole page " +
				"instead of jumping between regions",
		})
		return out
	}

	if landmarks.CoveragePercent < 80 {
		out = append(out, models.Interpretation{
			Category: categoryLandmarks,
			Finding: fmt.Sprintf("landmarks cover %d%% of the body text",
				landmarks.CoveragePercent),
			Implication: "content outside landmark regions may be skipped by " +
				"region-aware readers",
		})
	}

	return out
}
