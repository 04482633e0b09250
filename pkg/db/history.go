package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/domlens/domlens/models"
)

// SaveAnalysis inserts one analysis record and returns its ID. The full
// record is stored as JSON alongside denormalized summary columns.
func (db *DB) SaveAnalysis(record models.AnalysisRecord) (int64, error) {
	resultJSON, err := json.Marshal(record)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal analysis record: %w", err)
	}

	res, err := db.Exec(`
		INSERT INTO analyses (
			url, analyzed_at, fetch_count,
			structure_classification, difference_count, dom_nodes, max_depth,
			semantic_classification, div_ratio, link_issues,
			page_title, detected_lang, result_json
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		record.Result.URL,
		record.AnalyzedAt.UTC().Format(time.RFC3339),
		record.FetchCount,
		string(record.Result.Structure.Classification),
		record.Result.Structure.DifferenceCount,
		record.Result.Structure.DomNodes,
		record.Result.Structure.MaxDepth,
		string(record.Result.Semantics.Classification),
		record.Result.Semantics.DivRatio,
		record.Result.Semantics.LinkIssues,
		record.Identity.Title,
		record.Identity.DetectedLang,
		string(resultJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert analysis: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get analysis ID: %w", err)
	}
	return id, nil
}

// ListAnalyses returns the most recent analyses, newest first.
func (db *DB) ListAnalyses(limit int) ([]models.AnalysisRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.Query(`
		SELECT analysis_id, result_json
		FROM analyses
		ORDER BY analysis_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var records []models.AnalysisRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// GetAnalysis returns one analysis by ID.
func (db *DB) GetAnalysis(id int64) (*models.AnalysisRecord, error) {
	row := db.QueryRow(`
		SELECT analysis_id, result_json
		FROM analyses
		WHERE analysis_id = ?
	`, id)

	var (
		analysisID int64
		resultJSON string
	)
	if err := row.Scan(&analysisID, &resultJSON); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("analysis %d not found", id)
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	var record models.AnalysisRecord
	if err := json.Unmarshal([]byte(resultJSON), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis record: %w", err)
	}
	record.ID = analysisID
	return &record, nil
}

// DeleteAnalysis removes one analysis by ID.
func (db *DB) DeleteAnalysis(id int64) error {
	res, err := db.Exec("DELETE FROM analyses WHERE analysis_id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("analysis %d not found", id)
	}
	return nil
}

// CountAnalyses returns the total number of stored analyses.
func (db *DB) CountAnalyses() (int, error) {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM analyses").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count analyses: %w", err)
	}
	return count, nil
}

func scanRecord(rows *sql.Rows) (models.AnalysisRecord, error) {
	var (
		analysisID int64
		resultJSON string
	)
	if err := rows.Scan(&analysisID, &resultJSON); err != nil {
		return models.AnalysisRecord{}, fmt.Errorf("failed to scan analysis row: %w", err)
	}

	var record models.AnalysisRecord
	if err := json.Unmarshal([]byte(resultJSON), &record); err != nil {
		return models.AnalysisRecord{}, fmt.Errorf("failed to unmarshal analysis record: %w", err)
	}
	record.ID = analysisID
	return record, nil
}
