package cli

import (
	"github.com/spf13/cobra"

	"github.com/n0roo/opsdash/internal/classifier"
	"github.com/n0roo/opsdash/internal/tui"
)

var (
	tuiWatch     bool
	tuiDashboard string
	tuiPlain     bool
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "대시보드 TUI 실행",
	Long: `터미널 기반 대시보드를 실행합니다.

키:
  1-5, Tab      대시보드 전환
  j/k           이동
  Enter, i      지표 인사이트 열기
  d             상세 분석(tier 2) 토글
  Enter         카테고리(tier 3) 열기
  Esc           가장 안쪽 패널 닫기
  r             카탈로그 다시 로드`,
	RunE: runTui,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	tuiCmd.Flags().BoolVarP(&tuiWatch, "watch", "w", false, "카탈로그 파일 변경 시 자동 재로드")
	tuiCmd.Flags().StringVarP(&tuiDashboard, "dashboard", "d", "", "처음 표시할 대시보드")
	tuiCmd.Flags().BoolVar(&tuiPlain, "plain", false, "인사이트를 스타일 없이 렌더링")
}

func runTui(cmd *cobra.Command, args []string) error {
	start := cfg.UI.DefaultDashboard
	if tuiDashboard != "" {
		d, err := classifier.ParseDashboard(tuiDashboard)
		if err != nil {
			return err
		}
		start = d
	}

	opts := tui.Options{
		Loader: loadCatalog,
		Logger: logger,
		Start:  start,
		Plain:  tuiPlain,
	}

	if tuiWatch || cfg.UI.Watch {
		path, err := watchablePath()
		if err != nil {
			if tuiWatch {
				return err
			}
		} else {
			opts.WatchPath = path
		}
	}

	return tui.Run(cmd.Context(), opts)
}
