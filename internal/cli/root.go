package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/n0roo/opsdash/internal/catalog"
	"github.com/n0roo/opsdash/internal/config"
	"github.com/n0roo/opsdash/internal/db"
)

// Build info, set with -ldflags
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var (
	configPath  string
	catalogPath string
	dbPath      string
	verbose     bool
	jsonOut     bool

	logger      *zap.Logger
	cfg         *config.Config
	projectRoot string
)

var rootCmd = &cobra.Command{
	Use:   "opsdash",
	Short: "병원 운영 대시보드",
	Long: `opsdash - 병원 운영 대시보드

의료기기, 수혈, 검사, 공급망, 인프라 대시보드의 KPI를 보여주고
지표를 클릭하면 원인 분석과 권장 조치를 제시합니다.

주요 기능:
  - 분류: 지표 라벨을 인사이트 종류로 매핑
  - 인사이트: 원인, 영향 항목, 영향, 권장 조치
  - 드릴다운: 상세 분석(tier 2)과 카테고리(tier 3)
  - 카탈로그: YAML 또는 SQLite/DuckDB에서 로드`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx, cancelled on shutdown signals
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "설정 파일 경로 (기본: .opsdash/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "카탈로그 YAML 경로 (설정의 source 무시)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "카탈로그 DB 경로 (설정의 source 무시)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "상세 출력")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "JSON 출력")
}

func setup(cmd *cobra.Command, args []string) error {
	if configPath != "" {
		c, err := config.LoadFile(configPath)
		if errors.Is(err, config.ErrNoConfig) && cmd == catalogInitCmd {
			c, err = config.DefaultConfig(), nil
		}
		if err != nil {
			return err
		}
		cfg, projectRoot = c, config.RootOf(configPath)
	} else {
		projectRoot = config.FindProjectRoot()
		c, err := config.LoadOrDefault(projectRoot)
		if err != nil {
			return err
		}
		cfg = c
	}

	l, err := buildLogger(cmd.Name() == "tui")
	if err != nil {
		return fmt.Errorf("로거 초기화 실패: %w", err)
	}
	logger = l
	logger.Debug("Config loaded", zap.String("root", projectRoot), zap.String("source", string(cfg.Catalog.Source)))

	return nil
}

// buildLogger writes JSON logs to stderr. The TUI owns the terminal, so it
// logs to the configured file or not at all.
func buildLogger(forTUI bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()

	level := zapcore.WarnLevel
	if cfg.Log.Level != "" {
		if err := level.Set(cfg.Log.Level); err != nil {
			return nil, fmt.Errorf("로그 레벨 파싱 실패: %w", err)
		}
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	if forTUI {
		file := cfg.LogFile(projectRoot)
		if file == "" {
			return zap.NewNop(), nil
		}
		zc.OutputPaths = []string{file}
		zc.ErrorOutputPaths = []string{file}
	}

	return zc.Build()
}

// loadCatalog reads the catalog from the flag-selected or configured source
func loadCatalog() (*catalog.Catalog, error) {
	switch {
	case catalogPath != "":
		return catalog.Load(catalogPath)
	case dbPath != "":
		return exportFromDB(dbPath)
	}

	switch cfg.Catalog.Source {
	case config.SourceYAML:
		return catalog.Load(cfg.CatalogPath(projectRoot))
	case config.SourceDB:
		return exportFromDB(cfg.DBPath(projectRoot))
	default:
		return catalog.Default(), nil
	}
}

// watchablePath returns the catalog file a --watch can follow
func watchablePath() (string, error) {
	if catalogPath != "" {
		return catalogPath, nil
	}
	if dbPath == "" && cfg.Catalog.Source == config.SourceYAML {
		return cfg.CatalogPath(projectRoot), nil
	}
	return "", errors.New("--watch는 YAML 카탈로그에서만 사용할 수 있습니다")
}

func exportFromDB(path string) (*catalog.Catalog, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if _, err := os.Stat(db.GetDuckDBPath(path)); os.IsNotExist(err) {
			return nil, fmt.Errorf("카탈로그 DB가 없습니다: %s ('opsdash catalog import' 먼저 실행)", path)
		}
	}

	database, dbType, err := db.OpenAuto(path)
	if err != nil {
		return nil, fmt.Errorf("DB 열기 실패: %w", err)
	}
	defer database.Close()

	logger.Debug("Catalog database", zap.String("path", database.Path()), zap.String("type", string(dbType)))
	return catalog.NewStore(database).Export()
}

// resolveDBPath returns the catalog database path for import/export
func resolveDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	return cfg.DBPath(projectRoot)
}
