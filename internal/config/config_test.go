package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/n0roo/opsdash/internal/classifier"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Catalog.Source != SourceBuiltin {
		t.Errorf("기본 source는 builtin이어야 합니다, got %s", cfg.Catalog.Source)
	}
	if cfg.UI.DefaultDashboard != classifier.DashboardBiomedical {
		t.Errorf("기본 대시보드 불일치: %s", cfg.UI.DefaultDashboard)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("기본 설정 검증 실패: %v", err)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	root := t.TempDir()

	cfg := DefaultConfig()
	cfg.Catalog.Source = SourceYAML
	cfg.UI.DefaultDashboard = classifier.DashboardTransfusion
	cfg.Log.File = "opsdash.log"

	if err := SaveConfig(root, cfg); err != nil {
		t.Fatalf("설정 저장 실패: %v", err)
	}
	if !HasConfig(root) {
		t.Fatalf("설정 파일이 생성되지 않았습니다: %s", ConfigPath(root))
	}

	loaded, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("설정 로드 실패: %v", err)
	}

	if loaded.Catalog.Source != SourceYAML {
		t.Errorf("source 불일치: %s", loaded.Catalog.Source)
	}
	if loaded.UI.DefaultDashboard != classifier.DashboardTransfusion {
		t.Errorf("대시보드 불일치: %s", loaded.UI.DefaultDashboard)
	}
	if got := loaded.LogFile(root); got != filepath.Join(root, "opsdash.log") {
		t.Errorf("로그 파일 경로 불일치: %s", got)
	}
}

func TestLoadConfigNotExists(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	if !errors.Is(err, ErrNoConfig) {
		t.Errorf("ErrNoConfig 기대, got %v", err)
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(t.TempDir())
	if err != nil {
		t.Fatalf("기본 설정 로드 실패: %v", err)
	}
	if cfg.Catalog.Source != SourceBuiltin {
		t.Errorf("기본 source 불일치: %s", cfg.Catalog.Source)
	}
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	root := t.TempDir()
	if err := EnsureDir(root); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(ConfigPath(root), []byte("catalog:\n  source: db\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("설정 로드 실패: %v", err)
	}
	if cfg.Catalog.Source != SourceDB {
		t.Errorf("source 불일치: %s", cfg.Catalog.Source)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("기본 로그 레벨이 유지되어야 합니다: %s", cfg.Log.Level)
	}
	if got := cfg.DBPath(root); got != filepath.Join(root, ".opsdash", "catalog.db") {
		t.Errorf("DB 경로 불일치: %s", got)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"source":    "catalog:\n  source: ftp\n",
		"dashboard": "ui:\n  default_dashboard: radiology\n",
		"yaml":      "catalog: [",
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			root := t.TempDir()
			if err := EnsureDir(root); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(ConfigPath(root), []byte(content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadConfig(root); err == nil {
				t.Error("에러가 발생해야 합니다")
			}
		})
	}
}

func TestAbsolutePathsKept(t *testing.T) {
	cfg := DefaultConfig()
	abs := filepath.Join(t.TempDir(), "elsewhere.yaml")
	cfg.Catalog.Path = abs

	if got := cfg.CatalogPath("/project"); got != abs {
		t.Errorf("절대 경로가 유지되어야 합니다: %s", got)
	}
}

func TestFindRootFrom(t *testing.T) {
	root := t.TempDir()
	if err := EnsureDir(root); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	if got := findRootFrom(nested); got != root {
		t.Errorf("프로젝트 루트 불일치: expected %s, got %s", root, got)
	}
}

func TestRootOf(t *testing.T) {
	if got := RootOf(filepath.Join("proj", ".opsdash", "config.yaml")); got != "proj" {
		t.Errorf("루트 불일치: %s", got)
	}
	if got := RootOf(filepath.Join("etc", "opsdash.yaml")); got != "etc" {
		t.Errorf("루트 불일치: %s", got)
	}
}
