package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Analyses table: one row per orchestrated run. Summary columns are
-- denormalized for listing and export; result_json keeps the full record.
CREATE TABLE IF NOT EXISTS analyses (
    analysis_id INTEGER PRIMARY KEY AUTOINCREMENT,
    url TEXT NOT NULL,
    analyzed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    fetch_count INTEGER NOT NULL,

    -- Structure summary
    structure_classification TEXT NOT NULL,
    difference_count INTEGER NOT NULL,
    dom_nodes INTEGER NOT NULL,
    max_depth INTEGER NOT NULL,

    -- Semantics summary
    semantic_classification TEXT NOT NULL,
    div_ratio REAL NOT NULL,
    link_issues INTEGER NOT NULL,

    -- Identity summary
    page_title TEXT,
    detected_lang TEXT,

    -- Full record as JSON
    result_json TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_analyses_url ON analyses(url);
CREATE INDEX IF NOT EXISTS idx_analyses_analyzed_at ON analyses(analyzed_at);
CREATE INDEX IF NOT EXISTS idx_analyses_structure ON analyses(structure_classification);
CREATE INDEX IF NOT EXISTS idx_analyses_semantic ON analyses(semantic_classification);
`
