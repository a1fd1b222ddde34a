package db

import (
	"bytes"
	"io"
	"os"

	_ "github.com/marcboeker/go-duckdb/v2"
)

// DuckDB is a DuckDB catalog database
type DuckDB struct {
	*conn
}

// DuckDB has no INSERT OR REPLACE
var duckDialect = dialect{
	driver: "duckdb",
	label:  "DuckDB",
	stampVersion: `INSERT INTO metadata (key, value, updated_at) VALUES ('schema_version', ?, now())
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = now()`,
}

// OpenDuckDB opens or creates a DuckDB catalog database and applies the schema
func OpenDuckDB(path string) (*DuckDB, error) {
	c, err := openConn(path, duckDialect)
	if err != nil {
		return nil, err
	}
	return &DuckDB{conn: c}, nil
}

// duckMagic sits at byte offset 8 of every DuckDB file
var duckMagic = []byte("DUCK")

// IsDuckDB reports whether path holds a DuckDB file
func IsDuckDB(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	header := make([]byte, 12)
	if _, err := io.ReadFull(f, header); err != nil {
		return false
	}
	return bytes.Equal(header[8:12], duckMagic)
}
