package structure

import (
	"testing"

	"github.com/domlens/domlens/models"
	"github.com/domlens/domlens/pkg/dom"
)

func fp(childTags ...string) *dom.NormalizedNode {
	return &dom.NormalizedNode{Tag: "body", ChildTags: childTags}
}

func TestCompare_Classification(t *testing.T) {
	stable := fp("header", "main", "footer")
	variantA := fp("header", "main", "aside", "footer")
	variantB := fp("main")

	tests := []struct {
		name         string
		fingerprints []*dom.NormalizedNode
		wantClass    models.StructureClassification
		wantDiffs    int
	}{
		{
			name:         "all identical",
			fingerprints: []*dom.NormalizedNode{stable, fp("header", "main", "footer"), fp("header", "main", "footer")},
			wantClass:    models.StructureDeterministic,
			wantDiffs:    0,
		},
		{
			name:         "one odd sample out of three",
			fingerprints: []*dom.NormalizedNode{stable, fp("header", "main", "footer"), variantA},
			wantClass:    models.StructureUnstable,
			wantDiffs:    2,
		},
		{
			name:         "every fetch different",
			fingerprints: []*dom.NormalizedNode{stable, variantA, variantB},
			wantClass:    models.StructureUnstable,
			wantDiffs:    3,
		},
		{
			name:         "two samples identical",
			fingerprints: []*dom.NormalizedNode{stable, stable},
			wantClass:    models.StructureDeterministic,
			wantDiffs:    0,
		},
		{
			name:         "two samples different",
			fingerprints: []*dom.NormalizedNode{stable, variantA},
			wantClass:    models.StructureMostlyDeterministic,
			wantDiffs:    1,
		},
		{
			name:         "single sample is trivially deterministic",
			fingerprints: []*dom.NormalizedNode{variantB},
			wantClass:    models.StructureDeterministic,
			wantDiffs:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compare(tt.fingerprints, models.DomMetrics{}, 0)
			if got.Classification != tt.wantClass {
				t.Errorf("Classification = %q, want %q", got.Classification, tt.wantClass)
			}
			if got.DifferenceCount != tt.wantDiffs {
				t.Errorf("DifferenceCount = %d, want %d", got.DifferenceCount, tt.wantDiffs)
			}
		})
	}
}

func TestCompare_CarriesMetrics(t *testing.T) {
	metrics := models.DomMetrics{DomNodes: 42, MaxDepth: 7, TopLevelSections: 3}
	got := Compare([]*dom.NormalizedNode{fp("main")}, metrics, 2)

	if got.DomNodes != 42 || got.MaxDepth != 7 || got.TopLevelSections != 3 {
		t.Errorf("metrics not carried through: %+v", got)
	}
	if got.CustomElements != 2 {
		t.Errorf("CustomElements = %d, want 2", got.CustomElements)
	}
}

func TestCompare_OrderInsensitiveCount(t *testing.T) {
	a := fp("main")
	b := fp("main", "aside")
	c := fp("main")

	forward := Compare([]*dom.NormalizedNode{a, b, c}, models.DomMetrics{}, 0)
	reversed := Compare([]*dom.NormalizedNode{c, b, a}, models.DomMetrics{}, 0)

	if forward.DifferenceCount != reversed.DifferenceCount {
		t.Errorf("DifferenceCount depends on sample order: %d vs %d",
			forward.DifferenceCount, reversed.DifferenceCount)
	}
	if forward.DifferenceCount != 2 {
		t.Errorf("DifferenceCount = %d, want 2", forward.DifferenceCount)
	}
}
