// Package export flattens analysis records into fixed-column CSV rows or
// JSON documents. The record schema lives in models; only formatting lives
// here.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/domlens/domlens/models"
)

// csvColumns is the fixed export column order. Changing it breaks consumers,
// so additions go at the end.
var csvColumns = []string{
	"id",
	"url",
	"analyzed_at",
	"fetch_count",
	"structure_classification",
	"difference_count",
	"dom_nodes",
	"max_depth",
	"top_level_sections",
	"custom_elements",
	"semantic_classification",
	"h1_count",
	"has_skips",
	"landmarks_found",
	"landmark_coverage_percent",
	"div_ratio",
	"link_issues",
	"time_total",
	"time_with_datetime",
	"lists_total",
	"tables_total",
	"tables_with_headers",
	"lang_attribute",
	"images_total",
	"images_with_alt",
	"images_empty_alt",
	"images_missing_alt",
	"page_title",
	"detected_lang",
}

// CSVHeader returns the fixed column header row.
func CSVHeader() []string {
	header := make([]string, len(csvColumns))
	copy(header, csvColumns)
	return header
}

// CSVRow flattens one record into the fixed column order.
func CSVRow(record models.AnalysisRecord) []string {
	s := record.Result.Structure
	sem := record.Result.Semantics

	return []string{
		fmt.Sprintf("%d", record.ID),
		record.Result.URL,
		record.AnalyzedAt.UTC().Format(time.RFC3339),
		fmt.Sprintf("%d", record.FetchCount),
		string(s.Classification),
		fmt.Sprintf("%d", s.DifferenceCount),
		fmt.Sprintf("%d", s.DomNodes),
		fmt.Sprintf("%d", s.MaxDepth),
		fmt.Sprintf("%d", s.TopLevelSections),
		fmt.Sprintf("%d", s.CustomElements),
		string(sem.Classification),
		fmt.Sprintf("%d", sem.Headings.H1Count),
		fmt.Sprintf("%t", sem.Headings.HasSkips),
		strings.Join(sem.Landmarks.Found, "|"),
		fmt.Sprintf("%d", sem.Landmarks.CoveragePercent),
		fmt.Sprintf("%.3f", sem.DivRatio),
		fmt.Sprintf("%d", sem.LinkIssues),
		fmt.Sprintf("%d", sem.TimeElements.Total),
		fmt.Sprintf("%d", sem.TimeElements.WithDatetime),
		fmt.Sprintf("%d", sem.Lists.Total),
		fmt.Sprintf("%d", sem.Tables.Total),
		fmt.Sprintf("%d", sem.Tables.WithHeaders),
		fmt.Sprintf("%t", sem.LangAttribute),
		fmt.Sprintf("%d", sem.Images.Total),
		fmt.Sprintf("%d", sem.Images.WithAlt),
		fmt.Sprintf("%d", sem.Images.EmptyAlt),
		fmt.Sprintf("%d", sem.Images.MissingAlt),
		record.Identity.Title,
		record.Identity.DetectedLang,
	}
}

// WriteCSV writes a header row plus one row per record.
func WriteCSV(w io.Writer, records []models.AnalysisRecord) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(CSVHeader()); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, record := range records {
		if err := writer.Write(CSVRow(record)); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteJSON writes the records as an indented JSON array.
func WriteJSON(w io.Writer, records []models.AnalysisRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}
