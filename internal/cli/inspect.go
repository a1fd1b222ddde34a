package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/n0roo/opsdash/internal/classifier"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <label>",
	Short: "지표 클릭 시뮬레이션",
	Long: `지표 라벨을 분류하고 해당 인사이트를 출력합니다.
TUI에서 KPI 카드를 선택한 것과 같습니다.

예시:
  opsdash inspect "Needs Repair" --dashboard biomedical --value 14`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVarP(&dashboardFlag, "dashboard", "d", "", "대시보드 ID")
	inspectCmd.Flags().StringVar(&valueFlag, "value", "", "지표 값")
	inspectCmd.Flags().BoolVar(&plainOut, "plain", false, "마크다운 그대로 출력")
	inspectCmd.MarkFlagRequired("dashboard")
}

func runInspect(cmd *cobra.Command, args []string) error {
	board, err := classifier.ParseDashboard(dashboardFlag)
	if err != nil {
		return err
	}

	engine, err := newEngine()
	if err != nil {
		return err
	}

	p, err := engine.Inspect(args[0], board)
	if err != nil {
		return err
	}
	logger.Info("Inspect",
		zap.String("label", args[0]),
		zap.String("dashboard", string(board)),
		zap.String("kind", string(p.Kind)),
		zap.Bool("fallback", p.Fallback))

	return printPayload(cmd, args[0], valueFlag, p)
}
