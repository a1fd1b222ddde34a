package cli

import (
	"github.com/spf13/cobra"

	"github.com/n0roo/opsdash/internal/classifier"
	"github.com/n0roo/opsdash/internal/dashboard"
)

var dashboardFlag string

var classifyCmd = &cobra.Command{
	Use:   "classify <label>",
	Short: "지표 라벨 분류",
	Long: `지표 라벨을 인사이트 종류로 분류합니다.

규칙은 순서대로 대소문자를 구분해 부분 문자열로 비교하며
처음 일치한 규칙이 적용됩니다. 일치하는 규칙이 없으면 대시보드 기본값을 사용합니다.

예시:
  opsdash classify "Needs Repair" --dashboard biomedical`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().StringVarP(&dashboardFlag, "dashboard", "d", "", "대시보드 ID")
	classifyCmd.MarkFlagRequired("dashboard")
}

func newEngine() (*dashboard.Engine, error) {
	c, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	return dashboard.NewEngine(c)
}

func runClassify(cmd *cobra.Command, args []string) error {
	board, err := classifier.ParseDashboard(dashboardFlag)
	if err != nil {
		return err
	}

	engine, err := newEngine()
	if err != nil {
		return err
	}

	res, err := engine.Explain(args[0], board)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOut {
		return printJSON(out, map[string]any{
			"label":      args[0],
			"dashboard":  board,
			"kind":       res.Kind,
			"domain":     res.Domain,
			"rule_index": res.RuleIndex,
			"defaulted":  res.Defaulted(),
		})
	}

	printf(out, "%s\n", res.Kind)
	if verbose {
		if res.Defaulted() {
			printf(out, "  규칙 없음, %s 기본값 사용\n", board)
		} else {
			printf(out, "  규칙 #%d: %q\n", res.RuleIndex, res.Rule.Match)
		}
	}
	return nil
}
