package history

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/domlens/domlens/models"
	"github.com/domlens/domlens/pkg/db"
	"github.com/domlens/domlens/pkg/export"
)

func ListAction(c *cli.Context) error {
	database, err := db.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	records, err := database.ListAnalyses(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list analyses: %w", err)
	}

	if len(records) == 0 {
		fmt.Println("No analyses found")
		return nil
	}

	fmt.Printf("%-6s %-20s %-22s %-10s %-40s\n",
		"ID", "Analyzed", "Structure", "Semantics", "URL")
	fmt.Println(strings.Repeat("-", 100))

	for _, r := range records {
		fmt.Printf("%-6d %-20s %-22s %-10s %-40s\n",
			r.ID,
			r.AnalyzedAt.Format("2006-01-02 15:04:05"),
			r.Result.Structure.Classification,
			r.Result.Semantics.Classification,
			r.Result.URL,
		)
	}

	fmt.Printf("\nTotal: %d analyses shown\n", len(records))
	fmt.Printf("\nTip: Use 'domlens history show <id>' to see details\n")

	return nil
}

func ShowAction(c *cli.Context) error {
	database, err := db.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	id, err := resolveID(c, database)
	if err != nil {
		return err
	}

	record, err := database.GetAnalysis(id)
	if err != nil {
		return err
	}

	printRecord(record)
	return nil
}

func DeleteAction(c *cli.Context) error {
	database, err := db.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	if c.NArg() == 0 {
		return fmt.Errorf("no analysis ID provided")
	}
	id, err := strconv.ParseInt(c.Args().First(), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid analysis ID: %s", c.Args().First())
	}

	if err := database.DeleteAnalysis(id); err != nil {
		return err
	}
	fmt.Printf("Deleted analysis %d\n", id)
	return nil
}

func ExportAction(c *cli.Context) error {
	database, err := db.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	var records []models.AnalysisRecord
	if c.IsSet("id") {
		record, err := database.GetAnalysis(c.Int64("id"))
		if err != nil {
			return err
		}
		records = []models.AnalysisRecord{*record}
	} else {
		records, err = database.ListAnalyses(c.Int("limit"))
		if err != nil {
			return fmt.Errorf("failed to list analyses: %w", err)
		}
	}

	out := os.Stdout
	if path := c.String("out"); path != "" {
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		out = file
	}

	switch strings.ToLower(c.String("format")) {
	case "csv":
		return export.WriteCSV(out, records)
	default:
		return export.WriteJSON(out, records)
	}
}

// resolveID returns the analysis ID from args, or the latest analysis when
// none is given.
func resolveID(c *cli.Context, database *db.DB) (int64, error) {
	if c.NArg() == 0 {
		records, err := database.ListAnalyses(1)
		if err != nil {
			return 0, fmt.Errorf("failed to get latest analysis: %w", err)
		}
		if len(records) == 0 {
			return 0, fmt.Errorf("no analyses found. Run 'domlens analyze --url \"...\"' first")
		}
		return records[0].ID, nil
	}

	id, err := strconv.ParseInt(c.Args().First(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid analysis ID: %s", c.Args().First())
	}
	return id, nil
}

func printRecord(r *models.AnalysisRecord) {
	fmt.Printf("Analysis %d\n", r.ID)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("URL:         %s\n", r.Result.URL)
	fmt.Printf("Analyzed:    %s\n", r.AnalyzedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Fetches:     %d\n", r.FetchCount)
	if r.Identity.Title != "" {
		fmt.Printf("Title:       %s\n", r.Identity.Title)
	}
	if r.Identity.DetectedLang != "" {
		fmt.Printf("Language:    %s (confidence %.2f)\n", r.Identity.DetectedLang, r.Identity.DetectedLangConfidence)
	}

	s := r.Result.Structure
	fmt.Printf("\nStructure: %s\n", s.Classification)
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("Differing pairs:    %d\n", s.DifferenceCount)
	fmt.Printf("DOM nodes:          %d\n", s.DomNodes)
	fmt.Printf("Max depth:          %d\n", s.MaxDepth)
	fmt.Printf("Top-level sections: %d\n", s.TopLevelSections)
	fmt.Printf("Custom elements:    %d\n", s.CustomElements)

	sem := r.Result.Semantics
	fmt.Printf("\nSemantics: %s\n", sem.Classification)
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("Headings:           h1=%d skips=%t\n", sem.Headings.H1Count, sem.Headings.HasSkips)
	fmt.Printf("Landmarks:          %s (%d%% coverage)\n", strings.Join(sem.Landmarks.Found, ", "), sem.Landmarks.CoveragePercent)
	fmt.Printf("Div ratio:          %.3f\n", sem.DivRatio)
	fmt.Printf("Link issues:        %d\n", sem.LinkIssues)
	fmt.Printf("Images:             %d total (%d alt, %d decorative, %d missing alt)\n",
		sem.Images.Total, sem.Images.WithAlt, sem.Images.EmptyAlt, sem.Images.MissingAlt)
	fmt.Printf("Lang attribute:     %t\n", sem.LangAttribute)
}
