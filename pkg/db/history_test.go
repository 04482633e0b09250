package db

import (
	"strings"
	"testing"
	"time"

	"github.com/domlens/domlens/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	// Use in-memory database for tests
	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

func testRecord(url string) models.AnalysisRecord {
	return models.AnalysisRecord{
		AnalyzedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		FetchCount: 3,
		Identity: models.PageIdentity{
			Title:        "Example Page",
			DetectedLang: "en",
		},
		Result: models.AnalysisResult{
			URL: url,
			Structure: models.StructureResult{
				Classification:   models.StructureDeterministic,
				DomNodes:         88,
				MaxDepth:         6,
				TopLevelSections: 3,
			},
			Semantics: models.SemanticResult{
				Classification: models.SemanticExplicit,
				Headings:       models.HeadingResult{H1Count: 1},
				Landmarks:      models.LandmarkResult{Found: []string{"main"}, CoveragePercent: 95},
				DivRatio:       0.3,
				LangAttribute:  true,
			},
		},
	}
}

func TestSaveAndGetAnalysis(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	id, err := db.SaveAnalysis(testRecord("https://example.com/"))
	if err != nil {
		t.Fatalf("SaveAnalysis() error = %v", err)
	}
	if id == 0 {
		t.Fatal("SaveAnalysis() returned zero ID")
	}

	got, err := db.GetAnalysis(id)
	if err != nil {
		t.Fatalf("GetAnalysis() error = %v", err)
	}
	if got.ID != id {
		t.Errorf("ID = %d, want %d", got.ID, id)
	}
	if got.Result.URL != "https://example.com/" {
		t.Errorf("URL = %q, want %q", got.Result.URL, "https://example.com/")
	}
	if got.Result.Structure.Classification != models.StructureDeterministic {
		t.Errorf("Classification = %q, want %q",
			got.Result.Structure.Classification, models.StructureDeterministic)
	}
	if got.Result.Semantics.Landmarks.CoveragePercent != 95 {
		t.Errorf("CoveragePercent = %d, want 95", got.Result.Semantics.Landmarks.CoveragePercent)
	}
	if !got.AnalyzedAt.Equal(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("AnalyzedAt = %v, want 2026-03-01T12:00:00Z", got.AnalyzedAt)
	}
}

func TestGetAnalysis_NotFound(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	_, err := db.GetAnalysis(999)
	if err == nil {
		t.Fatal("GetAnalysis() for missing ID returned no error")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error = %q, want mention of not found", err)
	}
}

func TestListAnalyses_NewestFirst(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	urls := []string{"https://a.example/", "https://b.example/", "https://c.example/"}
	for _, url := range urls {
		if _, err := db.SaveAnalysis(testRecord(url)); err != nil {
			t.Fatalf("SaveAnalysis(%q) error = %v", url, err)
		}
	}

	records, err := db.ListAnalyses(10)
	if err != nil {
		t.Fatalf("ListAnalyses() error = %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if records[0].Result.URL != "https://c.example/" {
		t.Errorf("first record URL = %q, want most recent %q",
			records[0].Result.URL, "https://c.example/")
	}
}

func TestListAnalyses_Limit(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	for i := 0; i < 5; i++ {
		if _, err := db.SaveAnalysis(testRecord("https://example.com/")); err != nil {
			t.Fatalf("SaveAnalysis() error = %v", err)
		}
	}

	records, err := db.ListAnalyses(2)
	if err != nil {
		t.Fatalf("ListAnalyses() error = %v", err)
	}
	if len(records) != 2 {
		t.Errorf("got %d records, want 2", len(records))
	}
}

func TestDeleteAnalysis(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	id, err := db.SaveAnalysis(testRecord("https://example.com/"))
	if err != nil {
		t.Fatalf("SaveAnalysis() error = %v", err)
	}

	if err := db.DeleteAnalysis(id); err != nil {
		t.Fatalf("DeleteAnalysis() error = %v", err)
	}
	if _, err := db.GetAnalysis(id); err == nil {
		t.Error("GetAnalysis() after delete returned no error")
	}

	if err := db.DeleteAnalysis(id); err == nil {
		t.Error("DeleteAnalysis() of missing ID returned no error")
	}
}

func TestCountAnalyses(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	count, err := db.CountAnalyses()
	if err != nil {
		t.Fatalf("CountAnalyses() error = %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}

	if _, err := db.SaveAnalysis(testRecord("https://example.com/")); err != nil {
		t.Fatalf("SaveAnalysis() error = %v", err)
	}

	count, err = db.CountAnalyses()
	if err != nil {
		t.Fatalf("CountAnalyses() error = %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}
