package db

import (
	"database/sql"
	"os"
)

// Database is what the catalog store needs from either backend
type Database interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
	Begin() (*sql.Tx, error)
	Close() error
	Path() string
	GetVersion() (int, error)
	GetDB() *sql.DB
}

var (
	_ Database = (*DB)(nil)
	_ Database = (*DuckDB)(nil)
)

// DBType names a backend
type DBType string

const (
	TypeSQLite DBType = "sqlite"
	TypeDuckDB DBType = "duckdb"
)

// EnvDBType forces a backend when set to "duckdb"
const EnvDBType = "OPSDASH_DB_TYPE"

// OpenAuto picks the backend for a catalog path. DuckDB is used when forced by
// EnvDBType, or when only the sibling .duckdb file exists. Otherwise SQLite.
func OpenAuto(basePath string) (Database, DBType, error) {
	duckPath := GetDuckDBPath(basePath)

	if DBType(os.Getenv(EnvDBType)) == TypeDuckDB {
		d, err := OpenDuckDB(duckPath)
		if err != nil {
			return nil, "", err
		}
		return d, TypeDuckDB, nil
	}

	if _, err := os.Stat(basePath); os.IsNotExist(err) && IsDuckDB(duckPath) {
		if d, err := OpenDuckDB(duckPath); err == nil {
			return d, TypeDuckDB, nil
		}
	}

	d, err := Open(basePath)
	if err != nil {
		return nil, "", err
	}
	return d, TypeSQLite, nil
}
