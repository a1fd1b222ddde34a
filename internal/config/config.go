package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/n0roo/opsdash/internal/classifier"
)

// Source selects where the dashboard catalog is read from
type Source string

const (
	SourceBuiltin Source = "builtin" // 내장 카탈로그
	SourceYAML    Source = "yaml"    // catalog 파일
	SourceDB      Source = "db"      // 카탈로그 데이터베이스
)

// ErrNoConfig is returned when .opsdash/config.yaml does not exist
var ErrNoConfig = errors.New("설정 파일이 없습니다. 'opsdash catalog init'으로 생성하세요")

// Config represents .opsdash/config.yaml
type Config struct {
	Version string        `yaml:"version"`
	Catalog CatalogConfig `yaml:"catalog"`
	UI      UIConfig      `yaml:"ui"`
	Log     LogConfig     `yaml:"log"`
}

// CatalogConfig holds the catalog source settings. Relative paths are
// resolved against the project root.
type CatalogConfig struct {
	Source Source `yaml:"source"`
	Path   string `yaml:"path,omitempty"`
	DBPath string `yaml:"db_path,omitempty"`
}

// UIConfig holds TUI settings
type UIConfig struct {
	DefaultDashboard classifier.DashboardID `yaml:"default_dashboard"`
	Watch            bool                   `yaml:"watch"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `yaml:"level"`          // debug | info | warn | error
	File  string `yaml:"file,omitempty"` // TUI 로그 파일, 비어 있으면 로그 안 함
}

// DefaultConfig returns a default config
func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Catalog: CatalogConfig{
			Source: SourceBuiltin,
			Path:   filepath.Join(DirName, "catalog.yaml"),
			DBPath: filepath.Join(DirName, "catalog.db"),
		},
		UI: UIConfig{
			DefaultDashboard: classifier.DashboardBiomedical,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Sources returns all catalog sources
func Sources() []Source {
	return []Source{SourceBuiltin, SourceYAML, SourceDB}
}

// Valid reports whether s is a known source
func (s Source) Valid() bool {
	switch s {
	case SourceBuiltin, SourceYAML, SourceDB:
		return true
	}
	return false
}

// LoadConfig loads config from .opsdash/config.yaml. Missing fields keep
// their defaults.
func LoadConfig(projectRoot string) (*Config, error) {
	return LoadFile(ConfigPath(projectRoot))
}

// LoadFile loads config from an explicit path
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoConfig
		}
		return nil, fmt.Errorf("설정 파일 읽기 실패: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("설정 파일 파싱 실패: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault loads the config, falling back to defaults when none exists
func LoadOrDefault(projectRoot string) (*Config, error) {
	cfg, err := LoadConfig(projectRoot)
	if errors.Is(err, ErrNoConfig) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// SaveConfig saves config to .opsdash/config.yaml
func SaveConfig(projectRoot string, cfg *Config) error {
	if err := EnsureDir(projectRoot); err != nil {
		return fmt.Errorf("디렉토리 생성 실패: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("설정 직렬화 실패: %w", err)
	}

	if err := os.WriteFile(ConfigPath(projectRoot), data, 0644); err != nil {
		return fmt.Errorf("설정 파일 저장 실패: %w", err)
	}

	return nil
}

// RootOf returns the project root a config file belongs to
func RootOf(configPath string) string {
	dir := filepath.Dir(configPath)
	if filepath.Base(dir) == DirName {
		return filepath.Dir(dir)
	}
	return dir
}

// HasConfig checks if the project config exists
func HasConfig(projectRoot string) bool {
	_, err := os.Stat(ConfigPath(projectRoot))
	return err == nil
}

// Validate checks enum fields
func (c *Config) Validate() error {
	if !c.Catalog.Source.Valid() {
		return fmt.Errorf("알 수 없는 catalog source: %q", c.Catalog.Source)
	}
	if c.UI.DefaultDashboard != "" && !c.UI.DefaultDashboard.Valid() {
		return fmt.Errorf("default_dashboard: %w", classifier.ErrUnknownDashboard)
	}
	return nil
}

// CatalogPath returns the catalog file path resolved against projectRoot
func (c *Config) CatalogPath(projectRoot string) string {
	return resolve(projectRoot, c.Catalog.Path, DefaultCatalogPath(projectRoot))
}

// DBPath returns the catalog database path resolved against projectRoot
func (c *Config) DBPath(projectRoot string) string {
	return resolve(projectRoot, c.Catalog.DBPath, DefaultDBPath(projectRoot))
}

// LogFile returns the log file path resolved against projectRoot, or ""
func (c *Config) LogFile(projectRoot string) string {
	if c.Log.File == "" {
		return ""
	}
	return resolve(projectRoot, c.Log.File, "")
}

func resolve(root, path, fallback string) string {
	if path == "" {
		return fallback
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
