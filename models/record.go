package models

import "time"

// AnalysisRecord wraps one AnalysisResult with the bookkeeping fields the
// history store and exporters need.
type AnalysisRecord struct {
	ID         int64          `json:"id" yaml:"id"`
	AnalyzedAt time.Time      `json:"analyzed_at" yaml:"analyzed_at"`
	FetchCount int            `json:"fetch_count" yaml:"fetch_count"`
	Identity   PageIdentity   `json:"identity" yaml:"identity"`
	Result     AnalysisResult `json:"result" yaml:"result"`
}
