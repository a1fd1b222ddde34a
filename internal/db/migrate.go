package db

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
)

// MigrationResult reports what MigrateSQLiteToDuckDB copied
type MigrationResult struct {
	TablesProcessed int            `json:"tables_processed"`
	RowsMigrated    map[string]int `json:"rows_migrated"`
	Errors          []string       `json:"errors,omitempty"`
}

// MigrateSQLiteToDuckDB copies every catalog table and the metadata rows
// from a SQLite file into a DuckDB file. An existing DuckDB file is renamed
// to <path>.backup first. A table that fails is recorded in Errors and the rest still run.
func MigrateSQLiteToDuckDB(sqlitePath, duckdbPath string) (*MigrationResult, error) {
	if _, err := os.Stat(sqlitePath); err != nil {
		return nil, fmt.Errorf("SQLite 파일 확인 실패: %w", err)
	}

	src, err := Open(sqlitePath)
	if err != nil {
		return nil, fmt.Errorf("SQLite 열기 실패: %w", err)
	}
	defer src.Close()

	if _, err := os.Stat(duckdbPath); err == nil {
		if err := os.Rename(duckdbPath, duckdbPath+".backup"); err != nil {
			return nil, fmt.Errorf("DuckDB 백업 실패: %w", err)
		}
	}

	dst, err := OpenDuckDB(duckdbPath)
	if err != nil {
		return nil, fmt.Errorf("DuckDB 열기 실패: %w", err)
	}
	defer dst.Close()

	result := &MigrationResult{RowsMigrated: make(map[string]int, len(CatalogTables))}
	for _, table := range CatalogTables {
		n, err := copyTable(src.GetDB(), dst.GetDB(), table)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", table, err))
			continue
		}
		result.RowsMigrated[table] = n
		result.TablesProcessed++
	}

	if err := copyMetadata(src.GetDB(), dst.GetDB()); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("metadata: %v", err))
	}

	return result, nil
}

// copyMetadata copies metadata rows except schema_version, which the
// destination stamped itself on Init.
func copyMetadata(src, dst *sql.DB) error {
	rows, err := src.Query(`SELECT key, value FROM metadata WHERE key <> 'schema_version'`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var value sql.NullString
		if err := rows.Scan(&key, &value); err != nil {
			return err
		}
		if err := SetMeta(dst, key, value.String); err != nil {
			return err
		}
	}
	return rows.Err()
}

// copyTable copies one table inside a single destination transaction.
// Column names come from the source result set, so both sides must share the schema.
func copyTable(src, dst *sql.DB, table string) (int, error) {
	rows, err := src.Query(fmt.Sprintf(`SELECT * FROM %s`, table))
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return 0, err
	}

	tx, err := dst.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(insertStatement(table, columns))
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	values := make([]any, len(columns))
	dest := make([]any, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}

	n := 0
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return n, err
		}
		if _, err := stmt.Exec(values...); err != nil {
			return n, err
		}
		n++
	}
	if err := rows.Err(); err != nil {
		return n, err
	}

	return n, tx.Commit()
}

func insertStatement(table string, columns []string) string {
	marks := make([]string, len(columns))
	for i := range marks {
		marks[i] = "?"
	}
	return fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		table, strings.Join(columns, ", "), strings.Join(marks, ", "))
}

// GetDuckDBPath returns the sibling .duckdb path of a catalog path
func GetDuckDBPath(basePath string) string {
	return strings.TrimSuffix(basePath, ".db") + ".duckdb"
}
