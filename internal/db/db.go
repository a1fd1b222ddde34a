package db

import _ "github.com/mattn/go-sqlite3"

const schemaVersion = 1

// 카탈로그 스키마 (SQLite / DuckDB 공용)
const catalogSchema = `
-- 메타데이터
CREATE TABLE IF NOT EXISTS metadata (
    key TEXT PRIMARY KEY,
    value TEXT,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- 대시보드
CREATE TABLE IF NOT EXISTS boards (
    dashboard TEXT PRIMARY KEY,
    title TEXT,
    default_kind TEXT NOT NULL
);

-- 분류 규칙 (seq 순서가 곧 평가 순서)
CREATE TABLE IF NOT EXISTS rules (
    dashboard TEXT NOT NULL,
    seq INTEGER NOT NULL,
    pattern TEXT NOT NULL,
    kind TEXT NOT NULL,
    PRIMARY KEY (dashboard, seq)
);

-- Tier 3 카테고리
CREATE TABLE IF NOT EXISTS categories (
    dashboard TEXT NOT NULL,
    seq INTEGER NOT NULL,
    category_id TEXT NOT NULL,
    title TEXT,
    PRIMARY KEY (dashboard, seq)
);

-- KPI 카드 (category_id가 빈 문자열이면 Tier 1 카드)
CREATE TABLE IF NOT EXISTS cards (
    dashboard TEXT NOT NULL,
    category_id TEXT NOT NULL DEFAULT '',
    seq INTEGER NOT NULL,
    label TEXT NOT NULL,
    value TEXT,
    unit TEXT,
    series TEXT,
    PRIMARY KEY (dashboard, category_id, seq)
);

-- 인사이트
CREATE TABLE IF NOT EXISTS insights (
    kind TEXT PRIMARY KEY,
    narrative TEXT NOT NULL,
    financial TEXT,
    operational TEXT,
    recommended_action TEXT NOT NULL
);

-- 영향 항목 (seq 순서 유지)
CREATE TABLE IF NOT EXISTS affected_items (
    kind TEXT NOT NULL,
    seq INTEGER NOT NULL,
    item_id TEXT,
    name TEXT,
    location TEXT,
    status TEXT,
    PRIMARY KEY (kind, seq)
);

CREATE INDEX IF NOT EXISTS idx_cards_category ON cards(dashboard, category_id);
`

// CatalogTables lists the content tables in dependency order
var CatalogTables = []string{
	"boards",
	"rules",
	"categories",
	"cards",
	"insights",
	"affected_items",
}

// DB is a SQLite catalog database
type DB struct {
	*conn
}

var sqliteDialect = dialect{
	driver: "sqlite3",
	label:  "SQLite",
	dsn: func(path string) string {
		return path + "?_foreign_keys=on&_journal_mode=WAL"
	},
	stampVersion: `INSERT OR REPLACE INTO metadata (key, value, updated_at) VALUES ('schema_version', ?, CURRENT_TIMESTAMP)`,
}

// Open opens or creates a SQLite catalog database and applies the schema
func Open(path string) (*DB, error) {
	c, err := openConn(path, sqliteDialect)
	if err != nil {
		return nil, err
	}
	return &DB{conn: c}, nil
}
