package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
)

// dialect holds what differs between the SQLite and DuckDB drivers
type dialect struct {
	driver       string
	label        string
	dsn          func(path string) string
	stampVersion string
}

// conn is an open catalog database of either dialect
type conn struct {
	*sql.DB
	path    string
	dialect dialect
}

func openConn(path string, d dialect) (*conn, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("디렉토리 생성 실패: %w", err)
	}

	dsn := path
	if d.dsn != nil {
		dsn = d.dsn(path)
	}

	sqlDB, err := sql.Open(d.driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s 열기 실패: %w", d.label, err)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("%s 연결 실패: %w", d.label, err)
	}

	c := &conn{DB: sqlDB, path: path, dialect: d}
	if err := c.Init(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("스키마 초기화 실패: %w", err)
	}

	return c, nil
}

// Init applies the catalog schema and stamps its version. Safe to repeat.
func (c *conn) Init() error {
	if _, err := c.Exec(catalogSchema); err != nil {
		return fmt.Errorf("스키마 적용 실패: %w", err)
	}
	if _, err := c.Exec(c.dialect.stampVersion, schemaVersion); err != nil {
		return fmt.Errorf("버전 저장 실패: %w", err)
	}
	return nil
}

// Path returns the database file path
func (c *conn) Path() string {
	return c.path
}

// GetDB returns the underlying sql.DB
func (c *conn) GetDB() *sql.DB {
	return c.DB
}

// GetVersion returns the stamped schema version, or 0 before Init
func (c *conn) GetVersion() (int, error) {
	var version int
	err := c.QueryRow(`SELECT CAST(value AS INTEGER) FROM metadata WHERE key = 'schema_version'`).Scan(&version)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return version, err
}

// execer is satisfied by both *sql.DB and *sql.Tx
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// SetMeta upserts a metadata row. The statement is valid on both SQLite and DuckDB.
func SetMeta(e execer, key, value string) error {
	_, err := e.Exec(`INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}
