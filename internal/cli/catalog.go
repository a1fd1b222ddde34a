package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/n0roo/opsdash/internal/catalog"
	"github.com/n0roo/opsdash/internal/config"
	"github.com/n0roo/opsdash/internal/db"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "카탈로그 관리",
	Long: `대시보드 카탈로그(분류 규칙, 인사이트, KPI 보드)를 관리합니다.

카탈로그는 읽기 전용 콘텐츠입니다. 운영자 상태는 저장하지 않습니다.`,
}

var catalogInitCmd = &cobra.Command{
	Use:   "init",
	Short: "설정과 기본 카탈로그 생성",
	Long: `.opsdash/config.yaml 과 .opsdash/catalog.yaml 을 생성합니다.
생성된 설정은 YAML 카탈로그를 사용합니다.`,
	Args: cobra.NoArgs,
	RunE: runCatalogInit,
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate [file...]",
	Short: "카탈로그 검증",
	Long: `카탈로그의 완전성을 검사합니다.

에러: 알 수 없는 종류, 빈 규칙, 앞선 규칙에 가려진 규칙, 누락된 대시보드
경고: 작성되지 않은 종류(일반 인사이트로 대체), 다른 도메인을 가리키는 규칙

파일을 지정하지 않으면 현재 설정의 카탈로그를 검사합니다.`,
	RunE: runCatalogValidate,
}

var catalogImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "카탈로그를 DB로 가져오기",
	Long: `YAML 카탈로그를 카탈로그 DB에 저장합니다. 기존 내용은 교체됩니다.
파일을 지정하지 않으면 현재 설정의 카탈로그를 사용합니다.

OPSDASH_DB_TYPE=duckdb 이면 DuckDB 파일에 저장합니다.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalogImport,
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "카탈로그를 YAML로 내보내기",
	Long:  `현재 설정의 카탈로그를 YAML로 출력합니다.`,
	Args:  cobra.NoArgs,
	RunE:  runCatalogExport,
}

var catalogMigrateCmd = &cobra.Command{
	Use:   "migrate-db",
	Short: "SQLite → DuckDB 마이그레이션",
	Long: `SQLite 카탈로그 DB를 DuckDB로 복사합니다.

예시:
  opsdash catalog migrate-db
  opsdash catalog migrate-db --db ./catalog.db --force`,
	Args: cobra.NoArgs,
	RunE: runCatalogMigrate,
}

var (
	initForce    bool
	exportOutput string
	migrateForce bool
)

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogInitCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogImportCmd)
	catalogCmd.AddCommand(catalogExportCmd)
	catalogCmd.AddCommand(catalogMigrateCmd)

	catalogInitCmd.Flags().BoolVar(&initForce, "force", false, "기존 파일 덮어쓰기")
	catalogExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "출력 파일 (기본: stdout)")
	catalogMigrateCmd.Flags().BoolVar(&migrateForce, "force", false, "기존 DuckDB 파일 덮어쓰기")
}

func runCatalogInit(cmd *cobra.Command, args []string) error {
	root := projectRoot
	if configPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		root = cwd
	}

	if config.HasConfig(root) && !initForce {
		return fmt.Errorf("설정 파일이 이미 존재합니다: %s\n--force 옵션으로 덮어쓸 수 있습니다", config.ConfigPath(root))
	}

	c := config.DefaultConfig()
	c.Catalog.Source = config.SourceYAML
	if err := config.SaveConfig(root, c); err != nil {
		return err
	}

	catalogFile := c.CatalogPath(root)
	if err := catalog.Save(catalogFile, catalog.Default()); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOut {
		return printJSON(out, map[string]string{
			"config":  config.ConfigPath(root),
			"catalog": catalogFile,
		})
	}

	printf(out, "✅ 초기화 완료\n")
	printf(out, "   설정:     %s\n", config.ConfigPath(root))
	printf(out, "   카탈로그: %s\n", catalogFile)
	return nil
}

type validation struct {
	Source string          `json:"source"`
	Issues []catalog.Issue `json:"issues"`
	Valid  bool            `json:"valid"`
}

func runCatalogValidate(cmd *cobra.Command, args []string) error {
	results := make([]validation, max(len(args), 1))

	if len(args) == 0 {
		c, err := loadCatalog()
		if err != nil {
			return err
		}
		results[0] = validate("current", c)
	} else {
		g, _ := errgroup.WithContext(context.Background())
		for i, path := range args {
			g.Go(func() error {
				c, err := catalog.Load(path)
				if err != nil {
					return err
				}
				results[i] = validate(path, c)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	failed := false
	for _, r := range results {
		if !r.Valid {
			failed = true
		}
	}

	if jsonOut {
		if err := printJSON(out, results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			icon := "✅"
			if !r.Valid {
				icon = "❌"
			}
			printf(out, "%s %s\n", icon, r.Source)
			for _, issue := range r.Issues {
				printf(out, "   %s\n", issue)
			}
		}
	}

	if failed {
		return errors.New("카탈로그 검증 실패")
	}
	return nil
}

func validate(source string, c *catalog.Catalog) validation {
	report := c.Validate()
	logger.Debug("Validated catalog",
		zap.String("source", source),
		zap.Int("errors", len(report.Errors())),
		zap.Int("warnings", len(report.Warnings())))

	issues := report.Issues
	if issues == nil {
		issues = []catalog.Issue{}
	}
	return validation{Source: source, Issues: issues, Valid: !report.HasErrors()}
}

func runCatalogImport(cmd *cobra.Command, args []string) error {
	var (
		c   *catalog.Catalog
		err error
	)
	switch {
	case len(args) == 1:
		c, err = catalog.Load(args[0])
	case catalogPath != "":
		c, err = catalog.Load(catalogPath)
	case cfg.Catalog.Source == config.SourceYAML:
		c, err = catalog.Load(cfg.CatalogPath(projectRoot))
	default:
		c = catalog.Default()
	}
	if err != nil {
		return err
	}

	if err := c.Validate().Err(); err != nil {
		return fmt.Errorf("유효하지 않은 카탈로그: %w", err)
	}

	path := resolveDBPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("디렉토리 생성 실패: %w", err)
	}

	database, dbType, err := db.OpenAuto(path)
	if err != nil {
		return fmt.Errorf("DB 열기 실패: %w", err)
	}
	defer database.Close()

	if err := catalog.NewStore(database).Import(c); err != nil {
		return err
	}
	logger.Info("Catalog imported", zap.String("path", database.Path()), zap.String("type", string(dbType)))

	out := cmd.OutOrStdout()
	if jsonOut {
		return printJSON(out, map[string]any{
			"path":       database.Path(),
			"type":       dbType,
			"dashboards": len(c.Boards),
			"insights":   len(c.Insights),
		})
	}

	printf(out, "✅ 가져오기 완료 (%s)\n", dbType)
	printf(out, "   DB:       %s\n", database.Path())
	printf(out, "   대시보드: %d개, 인사이트: %d개\n", len(c.Boards), len(c.Insights))
	return nil
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog()
	if err != nil {
		return err
	}

	if exportOutput != "" {
		if err := catalog.Save(exportOutput, c); err != nil {
			return err
		}
		printf(cmd.ErrOrStderr(), "✅ 내보내기 완료: %s\n", exportOutput)
		return nil
	}

	out := cmd.OutOrStdout()
	if jsonOut {
		return printJSON(out, c)
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("카탈로그 직렬화 실패: %w", err)
	}
	return enc.Close()
}

func runCatalogMigrate(cmd *cobra.Command, args []string) error {
	sqlitePath := resolveDBPath()
	if _, err := os.Stat(sqlitePath); os.IsNotExist(err) {
		return fmt.Errorf("SQLite 파일이 없습니다: %s", sqlitePath)
	}

	duckdbPath := db.GetDuckDBPath(sqlitePath)
	if _, err := os.Stat(duckdbPath); err == nil {
		if !migrateForce {
			return fmt.Errorf("DuckDB 파일이 이미 존재합니다: %s\n--force 옵션으로 덮어쓸 수 있습니다", duckdbPath)
		}
		if err := os.Remove(duckdbPath); err != nil {
			return fmt.Errorf("기존 DuckDB 파일 삭제 실패: %w", err)
		}
	}

	result, err := db.MigrateSQLiteToDuckDB(sqlitePath, duckdbPath)
	if err != nil {
		return fmt.Errorf("마이그레이션 실패: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOut {
		return printJSON(out, result)
	}

	printf(out, "✅ 마이그레이션 완료!\n\n")
	printf(out, "   소스: %s\n", sqlitePath)
	printf(out, "   대상: %s\n", duckdbPath)
	printf(out, "   처리된 테이블: %d개\n", result.TablesProcessed)

	totalRows := 0
	for _, table := range db.CatalogTables {
		if n := result.RowsMigrated[table]; n > 0 {
			printf(out, "   - %s: %d행\n", table, n)
			totalRows += n
		}
	}
	printf(out, "\n   총 %d행 마이그레이션됨\n", totalRows)

	if len(result.Errors) > 0 {
		printf(out, "\n⚠️  경고:\n")
		for _, e := range result.Errors {
			printf(out, "   - %s\n", e)
		}
	}

	printf(out, "\n💡 DuckDB를 사용하려면 환경변수를 설정하세요:\n")
	printf(out, "   export %s=duckdb\n", db.EnvDBType)
	return nil
}
