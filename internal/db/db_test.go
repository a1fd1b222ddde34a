package db

import (
	"os"
	"path/filepath"
	"testing"
)

// 테스트용 임시 DB 생성 헬퍼
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("DB 열기 실패: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func TestOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "catalog.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("DB 열기 실패: %v", err)
	}
	defer db.Close()

	// 파일이 생성되었는지 확인
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("DB 파일이 생성되지 않음")
	}
	if db.Path() != dbPath {
		t.Errorf("Path() = %s, want %s", db.Path(), dbPath)
	}
}

func TestInit(t *testing.T) {
	db := setupTestDB(t)

	tables := append([]string{"metadata"}, CatalogTables...)
	for _, table := range tables {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		if err != nil {
			t.Errorf("테이블 %s가 존재하지 않음: %v", table, err)
		}
	}
}

func TestInitIsIdempotent(t *testing.T) {
	db := setupTestDB(t)

	if err := db.Init(); err != nil {
		t.Fatalf("두 번째 Init 실패: %v", err)
	}
}

func TestGetVersion(t *testing.T) {
	db := setupTestDB(t)

	version, err := db.GetVersion()
	if err != nil {
		t.Fatalf("버전 조회 실패: %v", err)
	}

	if version != schemaVersion {
		t.Errorf("version = %d, want %d", version, schemaVersion)
	}
}

func TestRulesKeepSeqOrder(t *testing.T) {
	db := setupTestDB(t)

	db.Exec(`INSERT INTO rules (dashboard, seq, pattern, kind) VALUES (?, ?, ?, ?)`, "biomedical", 1, "Repair", "maintenance")
	db.Exec(`INSERT INTO rules (dashboard, seq, pattern, kind) VALUES (?, ?, ?, ?)`, "biomedical", 0, "Lost", "lost")

	rows, err := db.Query(`SELECT pattern FROM rules WHERE dashboard = ? ORDER BY seq`, "biomedical")
	if err != nil {
		t.Fatalf("Query 실패: %v", err)
	}
	defer rows.Close()

	var patterns []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			t.Fatalf("Scan 실패: %v", err)
		}
		patterns = append(patterns, p)
	}

	if len(patterns) != 2 || patterns[0] != "Lost" || patterns[1] != "Repair" {
		t.Errorf("patterns = %v, want [Lost Repair]", patterns)
	}
}

func TestDuplicateSeqRejected(t *testing.T) {
	db := setupTestDB(t)

	if _, err := db.Exec(`INSERT INTO rules (dashboard, seq, pattern, kind) VALUES ('biomedical', 0, 'Lost', 'lost')`); err != nil {
		t.Fatalf("INSERT 실패: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO rules (dashboard, seq, pattern, kind) VALUES ('biomedical', 0, 'Repair', 'maintenance')`); err == nil {
		t.Error("같은 seq 중복 삽입이 허용됨")
	}
}

func TestOpenAutoDefaultsToSQLite(t *testing.T) {
	t.Setenv(EnvDBType, "")
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	database, dbType, err := OpenAuto(dbPath)
	if err != nil {
		t.Fatalf("OpenAuto 실패: %v", err)
	}
	defer database.Close()

	if dbType != TypeSQLite {
		t.Errorf("dbType = %s, want %s", dbType, TypeSQLite)
	}
}

func TestGetDuckDBPath(t *testing.T) {
	if got := GetDuckDBPath("/tmp/catalog.db"); got != "/tmp/catalog.duckdb" {
		t.Errorf("GetDuckDBPath = %s", got)
	}
}

func TestClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("DB 열기 실패: %v", err)
	}

	if err := db.Close(); err != nil {
		t.Errorf("Close 실패: %v", err)
	}

	// 닫힌 DB에 쿼리 시 에러
	if _, err := db.Exec(`SELECT 1`); err == nil {
		t.Error("닫힌 DB에서 쿼리가 성공함")
	}
}

func TestIsDuckDBRejectsSQLite(t *testing.T) {
	db := setupTestDB(t)

	if IsDuckDB(db.Path()) {
		t.Error("SQLite 파일을 DuckDB로 판별함")
	}
	if IsDuckDB(filepath.Join(t.TempDir(), "missing.duckdb")) {
		t.Error("없는 파일을 DuckDB로 판별함")
	}
}

func TestInsertStatement(t *testing.T) {
	got := insertStatement("rules", []string{"dashboard", "seq", "pattern", "kind"})
	want := `INSERT INTO rules (dashboard, seq, pattern, kind) VALUES (?, ?, ?, ?)`
	if got != want {
		t.Errorf("insertStatement = %s, want %s", got, want)
	}
}

// 테스트용 DuckDB 생성 헬퍼 (닫힌 상태로 경로 반환)
func createDuckDB(t *testing.T, path string) {
	t.Helper()

	d, err := OpenDuckDB(path)
	if err != nil {
		t.Fatalf("DuckDB 열기 실패: %v", err)
	}
	if err := d.Close(); err != nil {
		t.Fatalf("DuckDB 닫기 실패: %v", err)
	}
}

func TestOpenDuckDB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.duckdb")

	d, err := OpenDuckDB(path)
	if err != nil {
		t.Fatalf("DuckDB 열기 실패: %v", err)
	}
	defer d.Close()

	version, err := d.GetVersion()
	if err != nil {
		t.Fatalf("버전 조회 실패: %v", err)
	}
	if version != schemaVersion {
		t.Errorf("version = %d, want %d", version, schemaVersion)
	}

	// 재초기화해도 버전 행이 하나뿐이어야 함
	if err := d.Init(); err != nil {
		t.Fatalf("두 번째 Init 실패: %v", err)
	}
	var n int
	if err := d.QueryRow(`SELECT COUNT(*) FROM metadata WHERE key = 'schema_version'`).Scan(&n); err != nil {
		t.Fatalf("COUNT 실패: %v", err)
	}
	if n != 1 {
		t.Errorf("schema_version 행 = %d, want 1", n)
	}
}

func TestIsDuckDBDetectsDuckDBFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.duckdb")
	createDuckDB(t, path)

	if !IsDuckDB(path) {
		t.Error("DuckDB 파일을 판별하지 못함")
	}
}

func TestOpenAutoDuckDBFromEnv(t *testing.T) {
	t.Setenv(EnvDBType, string(TypeDuckDB))
	base := filepath.Join(t.TempDir(), "catalog.db")

	database, dbType, err := OpenAuto(base)
	if err != nil {
		t.Fatalf("OpenAuto 실패: %v", err)
	}
	defer database.Close()

	if dbType != TypeDuckDB {
		t.Errorf("dbType = %s, want %s", dbType, TypeDuckDB)
	}
	if database.Path() != GetDuckDBPath(base) {
		t.Errorf("Path() = %s, want %s", database.Path(), GetDuckDBPath(base))
	}
}

func TestOpenAutoPrefersExistingDuckDBFile(t *testing.T) {
	t.Setenv(EnvDBType, "")
	base := filepath.Join(t.TempDir(), "catalog.db")
	createDuckDB(t, GetDuckDBPath(base))

	database, dbType, err := OpenAuto(base)
	if err != nil {
		t.Fatalf("OpenAuto 실패: %v", err)
	}
	defer database.Close()

	if dbType != TypeDuckDB {
		t.Errorf("dbType = %s, want %s", dbType, TypeDuckDB)
	}
	if _, err := os.Stat(base); !os.IsNotExist(err) {
		t.Error("SQLite 파일이 생성됨")
	}
}

func TestMigrateKeepsCatalogVersion(t *testing.T) {
	dir := t.TempDir()
	sqlitePath := filepath.Join(dir, "catalog.db")

	src, err := Open(sqlitePath)
	if err != nil {
		t.Fatalf("DB 열기 실패: %v", err)
	}
	if err := SetMeta(src, "catalog_version", "7"); err != nil {
		t.Fatalf("버전 저장 실패: %v", err)
	}
	if _, err := src.Exec(`INSERT INTO rules (dashboard, seq, pattern, kind) VALUES ('biomedical', 0, 'Lost', 'lost')`); err != nil {
		t.Fatalf("INSERT 실패: %v", err)
	}
	src.Close()

	duckPath := GetDuckDBPath(sqlitePath)
	result, err := MigrateSQLiteToDuckDB(sqlitePath, duckPath)
	if err != nil {
		t.Fatalf("마이그레이션 실패: %v", err)
	}
	if len(result.Errors) > 0 {
		t.Fatalf("마이그레이션 경고: %v", result.Errors)
	}
	if result.TablesProcessed != len(CatalogTables) {
		t.Errorf("TablesProcessed = %d, want %d", result.TablesProcessed, len(CatalogTables))
	}
	if result.RowsMigrated["rules"] != 1 {
		t.Errorf("rules = %d, want 1", result.RowsMigrated["rules"])
	}

	dst, err := OpenDuckDB(duckPath)
	if err != nil {
		t.Fatalf("DuckDB 열기 실패: %v", err)
	}
	defer dst.Close()

	var version string
	if err := dst.QueryRow(`SELECT value FROM metadata WHERE key = 'catalog_version'`).Scan(&version); err != nil {
		t.Fatalf("catalog_version 조회 실패: %v", err)
	}
	if version != "7" {
		t.Errorf("catalog_version = %s, want 7", version)
	}

	schema, err := dst.GetVersion()
	if err != nil || schema != schemaVersion {
		t.Errorf("schema_version = %d (%v), want %d", schema, err, schemaVersion)
	}
}

func TestMigrateBacksUpExistingDuckDB(t *testing.T) {
	dir := t.TempDir()
	sqlitePath := filepath.Join(dir, "catalog.db")
	src, err := Open(sqlitePath)
	if err != nil {
		t.Fatalf("DB 열기 실패: %v", err)
	}
	src.Close()

	duckPath := GetDuckDBPath(sqlitePath)
	createDuckDB(t, duckPath)

	if _, err := MigrateSQLiteToDuckDB(sqlitePath, duckPath); err != nil {
		t.Fatalf("마이그레이션 실패: %v", err)
	}
	if _, err := os.Stat(duckPath + ".backup"); err != nil {
		t.Errorf("백업 파일이 없음: %v", err)
	}
}
