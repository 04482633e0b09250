// Package structure classifies cross-fetch structural determinism from
// normalized shape fingerprints.
package structure

import (
	"github.com/domlens/domlens/models"
	"github.com/domlens/domlens/pkg/dom"
)

// Difference-count thresholds for the determinism classification. The count
// is an absolute number of unequal pairs, not a ratio.
const (
	maxDifferencesDeterministic = 0
	maxDifferencesMostly        = 1
)

// Compare tests every unordered fingerprint pair for shallow equality and
// classifies the result. It is total over any number of fingerprints: a
// single fetch produces zero pairs and is trivially deterministic, which is
// a documented limitation of single-fetch runs rather than a verdict on the
// page itself.
func Compare(fingerprints []*dom.NormalizedNode, metrics models.DomMetrics, customElements int) models.StructureResult {
	differenceCount := 0
	for i := 0; i < len(fingerprints); i++ {
		for j := i + 1; j < len(fingerprints); j++ {
			if !fingerprints[i].Equal(fingerprints[j]) {
				differenceCount++
			}
		}
	}

	classification := models.StructureUnstable
	switch {
	case differenceCount <= maxDifferencesDeterministic:
		classification = models.StructureDeterministic
	case differenceCount <= maxDifferencesMostly:
		classification = models.StructureMostlyDeterministic
	}

	return models.StructureResult{
		Classification:   classification,
		DifferenceCount:  differenceCount,
		DomNodes:         metrics.DomNodes,
		MaxDepth:         metrics.MaxDepth,
		TopLevelSections: metrics.TopLevelSections,
		CustomElements:   customElements,
	}
}
