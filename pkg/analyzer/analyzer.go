// Package analyzer sequences the per-sample extractors into one combined
// result. It performs no I/O: callers hand it already-fetched HTML samples.
package analyzer

import (
	"github.com/domlens/domlens/models"
	"github.com/domlens/domlens/pkg/dom"
	"github.com/domlens/domlens/pkg/semantics"
	"github.com/domlens/domlens/pkg/structure"
)

// Analyze normalizes every sample into a shape fingerprint, computes DOM
// metrics and semantic signals from the first sample only, and runs the
// structural comparison across all fingerprints. Samples must arrive in
// fetch order; repeated fetching exists solely to detect non-determinism,
// so semantics never look past samples[0].
//
// An empty sample slice is a contract violation and panics.
func Analyze(samples []string, url string) models.AnalysisResult {
	if len(samples) == 0 {
		panic("analyzer: at least one HTML sample is required")
	}

	fingerprints := make([]*dom.NormalizedNode, 0, len(samples))
	for _, sample := range samples {
		d, err := dom.Parse(sample)
		if err != nil {
			fingerprints = append(fingerprints, &dom.NormalizedNode{Tag: "body"})
			continue
		}
		fingerprints = append(fingerprints, dom.Normalize(d))
	}

	metrics := dom.ComputeDomMetrics(samples[0])

	customElements := 0
	if d, err := dom.Parse(samples[0]); err == nil {
		customElements = dom.CountCustomElements(d)
	}

	return models.AnalysisResult{
		URL:       url,
		Structure: structure.Compare(fingerprints, metrics, customElements),
		Semantics: semantics.CheckSemantics(samples[0]),
	}
}
