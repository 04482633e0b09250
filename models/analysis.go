// Package models defines the data structures shared across the analysis pipeline.
package models

// StructureClassification labels how stable a page's DOM shape is across
// repeated fetches.
type StructureClassification string

const (
	StructureDeterministic       StructureClassification = "deterministic"
	StructureMostlyDeterministic StructureClassification = "mostly-deterministic"
	StructureUnstable            StructureClassification = "unstable"
)

// SemanticClassification labels how much meaning a page's markup exposes to
// machine readers.
type SemanticClassification string

const (
	SemanticExplicit SemanticClassification = "explicit"
	SemanticPartial  SemanticClassification = "partial"
	SemanticOpaque   SemanticClassification = "opaque"
)

// DomMetrics holds exact element counts from a single document instance.
type DomMetrics struct {
	DomNodes         int `json:"dom_nodes" yaml:"dom_nodes"`
	MaxDepth         int `json:"max_depth" yaml:"max_depth"`
	TopLevelSections int `json:"top_level_sections" yaml:"top_level_sections"`
}

// StructureResult combines the determinism classification with the DOM
// metrics of the first fetched sample.
type StructureResult struct {
	Classification   StructureClassification `json:"classification" yaml:"classification"`
	DifferenceCount  int                     `json:"difference_count" yaml:"difference_count"`
	DomNodes         int                     `json:"dom_nodes" yaml:"dom_nodes"`
	MaxDepth         int                     `json:"max_depth" yaml:"max_depth"`
	TopLevelSections int                     `json:"top_level_sections" yaml:"top_level_sections"`
	CustomElements   int                     `json:"custom_elements" yaml:"custom_elements"`
}

// HeadingResult summarizes the heading outline of a document.
type HeadingResult struct {
	H1Count  int  `json:"h1_count" yaml:"h1_count"`
	HasSkips bool `json:"has_skips" yaml:"has_skips"`
}

// LandmarkResult records which landmark elements exist and how much of the
// body text they cover.
type LandmarkResult struct {
	Found           []string `json:"found" yaml:"found"`
	CoveragePercent int      `json:"coverage_percent" yaml:"coverage_percent"`
}

// TimeResult counts time elements and how many carry machine-readable dates.
type TimeResult struct {
	Total        int `json:"total" yaml:"total"`
	WithDatetime int `json:"with_datetime" yaml:"with_datetime"`
}

// ListResult counts list elements by kind.
type ListResult struct {
	Total       int `json:"total" yaml:"total"`
	Ordered     int `json:"ordered" yaml:"ordered"`
	Unordered   int `json:"unordered" yaml:"unordered"`
	Description int `json:"description" yaml:"description"`
}

// TableResult counts tables and how many declare header cells.
type TableResult struct {
	Total       int `json:"total" yaml:"total"`
	WithHeaders int `json:"with_headers" yaml:"with_headers"`
}

// ImageResult classifies images by alt-text state plus independent markup
// quality counts. Invariant: WithAlt + EmptyAlt + MissingAlt == Total.
type ImageResult struct {
	Total           int `json:"total" yaml:"total"`
	WithAlt         int `json:"with_alt" yaml:"with_alt"`
	EmptyAlt        int `json:"empty_alt" yaml:"empty_alt"`
	MissingAlt      int `json:"missing_alt" yaml:"missing_alt"`
	InFigure        int `json:"in_figure" yaml:"in_figure"`
	WithDimensions  int `json:"with_dimensions" yaml:"with_dimensions"`
	WithSrcset      int `json:"with_srcset" yaml:"with_srcset"`
	WithLazyLoading int `json:"with_lazy_loading" yaml:"with_lazy_loading"`
}

// SemanticResult aggregates every semantic signal extracted from the first
// fetched sample.
type SemanticResult struct {
	Classification SemanticClassification `json:"classification" yaml:"classification"`
	Headings       HeadingResult          `json:"headings" yaml:"headings"`
	Landmarks      LandmarkResult         `json:"landmarks" yaml:"landmarks"`
	DivRatio       float64                `json:"div_ratio" yaml:"div_ratio"`
	LinkIssues     int                    `json:"link_issues" yaml:"link_issues"`
	TimeElements   TimeResult             `json:"time_elements" yaml:"time_elements"`
	Lists          ListResult             `json:"lists" yaml:"lists"`
	Tables         TableResult            `json:"tables" yaml:"tables"`
	LangAttribute  bool                   `json:"lang_attribute" yaml:"lang_attribute"`
	Images         ImageResult            `json:"images" yaml:"images"`
}

// AnalysisResult is the terminal artifact of one orchestrated run. It is
// never mutated after construction.
type AnalysisResult struct {
	URL       string          `json:"url" yaml:"url"`
	Structure StructureResult `json:"structure" yaml:"structure"`
	Semantics SemanticResult  `json:"semantics" yaml:"semantics"`
}
