package semantics

import (
	"testing"

	"github.com/domlens/domlens/models"
)

func TestCheckSemantics_WellStructuredPage(t *testing.T) {
	html := `<html lang="en"><body>
		<header><nav><a href="/docs">Documentation</a></nav></header>
		<main>
			<h1>Release Notes</h1>
			<h2>Changes</h2>
			<article><p>The release ships several parser fixes.</p></article>
		</main>
		<footer><p>Published by the project.</p></footer>
	</body></html>`
	got := CheckSemantics(html)

	if got.Classification != models.SemanticExplicit {
		t.Errorf("Classification = %q, want %q", got.Classification, models.SemanticExplicit)
	}
	if got.Headings.H1Count != 1 {
		t.Errorf("H1Count = %d, want 1", got.Headings.H1Count)
	}
	if got.Headings.HasSkips {
		t.Error("HasSkips = true, want false")
	}
	if got.Landmarks.CoveragePercent != 100 {
		t.Errorf("CoveragePercent = %d, want 100", got.Landmarks.CoveragePercent)
	}
	if got.DivRatio != 0 {
		t.Errorf("DivRatio = %v, want 0", got.DivRatio)
	}
	if got.LinkIssues != 0 {
		t.Errorf("LinkIssues = %d, want 0", got.LinkIssues)
	}
	if !got.LangAttribute {
		t.Error("LangAttribute = false, want true")
	}
}

func TestCheckSemantics_DivSoup(t *testing.T) {
	html := `<html><body>
		<div class="hd"><div class="logo">Site</div></div>
		<div class="content">
			<div class="post">Some text</div>
			<a href="/a">click here</a>
			<a href="/b">read more</a>
			<a href="/c">here</a>
		</div>
	</body></html>`
	got := CheckSemantics(html)

	if got.Classification != models.SemanticOpaque {
		t.Errorf("Classification = %q, want %q", got.Classification, models.SemanticOpaque)
	}
	if got.Headings.H1Count != 0 {
		t.Errorf("H1Count = %d, want 0", got.Headings.H1Count)
	}
	if len(got.Landmarks.Found) != 0 {
		t.Errorf("Landmarks.Found = %v, want empty", got.Landmarks.Found)
	}
	if got.Landmarks.CoveragePercent != 0 {
		t.Errorf("CoveragePercent = %d, want 0", got.Landmarks.CoveragePercent)
	}
	if got.LinkIssues != 3 {
		t.Errorf("LinkIssues = %d, want 3", got.LinkIssues)
	}
	// 4 generic containers, 0 semantic: 4/5
	if got.DivRatio < 0.6 {
		t.Errorf("DivRatio = %v, want >= 0.6", got.DivRatio)
	}
}

func TestCheckSemantics_EmptyDocument(t *testing.T) {
	got := CheckSemantics("")

	if got.Classification != models.SemanticPartial {
		// Empty pages have no violations to flag: the div-ratio and link
		// gates pass vacuously while the heading and coverage gates fail.
		t.Errorf("Classification = %q, want %q", got.Classification, models.SemanticPartial)
	}
	if got.Landmarks.CoveragePercent != 0 {
		t.Errorf("CoveragePercent = %d, want 0", got.Landmarks.CoveragePercent)
	}
	if got.DivRatio != 0 {
		t.Errorf("DivRatio = %v, want 0", got.DivRatio)
	}
}

func TestCheckSemantics_RatioBounds(t *testing.T) {
	pages := []string{
		"",
		`<body><div>x</div></body>`,
		`<body><main>y</main></body>`,
		`<body><main><div><span>mix</span></div></main><div>out</div></body>`,
	}
	for _, page := range pages {
		got := CheckSemantics(page)
		if got.DivRatio < 0 || got.DivRatio >= 1 {
			t.Errorf("DivRatio = %v, want in [0,1)", got.DivRatio)
		}
		if got.Landmarks.CoveragePercent < 0 || got.Landmarks.CoveragePercent > 100 {
			t.Errorf("CoveragePercent = %d, want in [0,100]", got.Landmarks.CoveragePercent)
		}
	}
}

func TestCheckHeadings_Skips(t *testing.T) {
	tests := []struct {
		name      string
		html      string
		wantH1    int
		wantSkips bool
	}{
		{"ordered", `<body><h1>a</h1><h2>b</h2><h3>c</h3></body>`, 1, false},
		{"skip h1 to h3", `<body><h1>a</h1><h3>b</h3></body>`, 1, true},
		{"going back up is fine", `<body><h1>a</h1><h2>b</h2><h2>c</h2><h1>d</h1></body>`, 2, false},
		{"no headings", `<body><p>text</p></body>`, 0, false},
		{"starts below h1", `<body><h2>a</h2><h3>b</h3></body>`, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckSemantics(tt.html).Headings
			if got.H1Count != tt.wantH1 {
				t.Errorf("H1Count = %d, want %d", got.H1Count, tt.wantH1)
			}
			if got.HasSkips != tt.wantSkips {
				t.Errorf("HasSkips = %v, want %v", got.HasSkips, tt.wantSkips)
			}
		})
	}
}

func TestCheckLandmarks_NestedNotDoubleCounted(t *testing.T) {
	// nav inside header: only the header's text counts toward coverage, so
	// the total cannot exceed the body's and the percentage stays clamped.
	html := `<body>
		<header><nav>navigation links</nav><p>header text</p></header>
		<main>main content body text</main>
	</body>`
	got := CheckSemantics(html)

	if got.Landmarks.CoveragePercent != 100 {
		t.Errorf("CoveragePercent = %d, want 100", got.Landmarks.CoveragePercent)
	}
	want := []string{"main", "nav", "header"}
	if len(got.Landmarks.Found) != len(want) {
		t.Fatalf("Found = %v, want %v", got.Landmarks.Found, want)
	}
	for i := range want {
		if got.Landmarks.Found[i] != want[i] {
			t.Errorf("Found[%d] = %q, want %q", i, got.Landmarks.Found[i], want[i])
		}
	}
}

func TestCheckLandmarks_PartialCoverage(t *testing.T) {
	// Half the collapsed body text is inside main.
	html := `<body><main>aaaa bbbb</main><div>cccc dddd</div></body>`
	got := CheckSemantics(html)

	if got.Landmarks.CoveragePercent < 40 || got.Landmarks.CoveragePercent > 60 {
		t.Errorf("CoveragePercent = %d, want roughly 50", got.Landmarks.CoveragePercent)
	}
}

func TestCountLinkIssues(t *testing.T) {
	tests := []struct {
		name string
		html string
		want int
	}{
		{"descriptive", `<body><a href="/guide">Installation guide</a></body>`, 0},
		{"empty text", `<body><a href="/x"></a></body>`, 1},
		{"empty text with alt image", `<body><a href="/x"><img src="i.png" alt="Project logo"></a></body>`, 0},
		{"empty text with altless image", `<body><a href="/x"><img src="i.png"></a></body>`, 1},
		{"generic phrase case-insensitive", `<body><a href="/x">Click Here</a></body>`, 1},
		{"javascript href", `<body><a href="javascript:void(0)">Open menu</a></body>`, 1},
		{"phrase inside longer text ok", `<body><a href="/x">Read more about the parser design</a></body>`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckSemantics(tt.html).LinkIssues; got != tt.want {
				t.Errorf("LinkIssues = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCheckTimeElements(t *testing.T) {
	html := `<body>
		<time datetime="2026-03-01">March 1</time>
		<time>sometime later</time>
	</body>`
	got := CheckSemantics(html).TimeElements

	if got.Total != 2 {
		t.Errorf("Total = %d, want 2", got.Total)
	}
	if got.WithDatetime != 1 {
		t.Errorf("WithDatetime = %d, want 1", got.WithDatetime)
	}
}

func TestCheckLists(t *testing.T) {
	html := `<body>
		<ul><li>a</li></ul>
		<ul><li>b</li></ul>
		<ol><li>c</li></ol>
		<dl><dt>d</dt><dd>e</dd></dl>
	</body>`
	got := CheckSemantics(html).Lists

	if got.Total != 4 || got.Unordered != 2 || got.Ordered != 1 || got.Description != 1 {
		t.Errorf("Lists = %+v, want total 4, 2 unordered, 1 ordered, 1 description", got)
	}
}

func TestCheckTables(t *testing.T) {
	html := `<body>
		<table><thead><tr><td>h</td></tr></thead><tbody><tr><td>1</td></tr></tbody></table>
		<table><tr><th>h</th></tr><tr><td>2</td></tr></table>
		<table><tr><td>3</td></tr></table>
	</body>`
	got := CheckSemantics(html).Tables

	if got.Total != 3 {
		t.Errorf("Total = %d, want 3", got.Total)
	}
	if got.WithHeaders != 2 {
		t.Errorf("WithHeaders = %d, want 2", got.WithHeaders)
	}
}

func TestCheckImages(t *testing.T) {
	html := `<body>
		<img src="a.png" alt="Architecture diagram" width="640" height="480" srcset="a-2x.png 2x">
		<figure><img src="b.png" alt="" loading="lazy"></figure>
		<img src="c.png">
	</body>`
	got := CheckSemantics(html).Images

	if got.Total != 3 {
		t.Errorf("Total = %d, want 3", got.Total)
	}
	if got.WithAlt != 1 || got.EmptyAlt != 1 || got.MissingAlt != 1 {
		t.Errorf("alt split = %d/%d/%d, want 1/1/1", got.WithAlt, got.EmptyAlt, got.MissingAlt)
	}
	if got.WithAlt+got.EmptyAlt+got.MissingAlt != got.Total {
		t.Errorf("alt states sum to %d, want Total %d",
			got.WithAlt+got.EmptyAlt+got.MissingAlt, got.Total)
	}
	if got.InFigure != 1 {
		t.Errorf("InFigure = %d, want 1", got.InFigure)
	}
	if got.WithDimensions != 1 {
		t.Errorf("WithDimensions = %d, want 1", got.WithDimensions)
	}
	if got.WithSrcset != 1 {
		t.Errorf("WithSrcset = %d, want 1", got.WithSrcset)
	}
	if got.WithLazyLoading != 1 {
		t.Errorf("WithLazyLoading = %d, want 1", got.WithLazyLoading)
	}
}

func TestClassify_Boundaries(t *testing.T) {
	base := models.SemanticResult{
		Headings:  models.HeadingResult{H1Count: 1},
		Landmarks: models.LandmarkResult{CoveragePercent: 100},
		DivRatio:  0.2,
	}

	if got := classify(base); got != models.SemanticExplicit {
		t.Errorf("all gates pass: classify() = %q, want %q", got, models.SemanticExplicit)
	}

	// Dropping the landmark gate leaves 70, below the explicit cutoff.
	noLandmarks := base
	noLandmarks.Landmarks.CoveragePercent = 79
	if got := classify(noLandmarks); got != models.SemanticPartial {
		t.Errorf("coverage below goal: classify() = %q, want %q", got, models.SemanticPartial)
	}

	// Only the link gate passes: 20 is below the partial cutoff.
	weak := models.SemanticResult{
		Headings:  models.HeadingResult{H1Count: 2},
		Landmarks: models.LandmarkResult{CoveragePercent: 10},
		DivRatio:  0.8,
	}
	if got := classify(weak); got != models.SemanticOpaque {
		t.Errorf("single gate: classify() = %q, want %q", got, models.SemanticOpaque)
	}

	// Heading and div-ratio gates alone reach 50, exactly partial territory.
	mid := models.SemanticResult{
		Headings:   models.HeadingResult{H1Count: 1},
		Landmarks:  models.LandmarkResult{CoveragePercent: 0},
		DivRatio:   0.5,
		LinkIssues: 3,
	}
	if got := classify(mid); got != models.SemanticPartial {
		t.Errorf("two mid gates: classify() = %q, want %q", got, models.SemanticPartial)
	}
}
