package cli

import (
	"github.com/spf13/cobra"

	"github.com/n0roo/opsdash/internal/insight"
)

var (
	plainOut  bool
	titleFlag string
	valueFlag string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <kind>",
	Short: "인사이트 조회",
	Long: `인사이트 종류의 원인, 영향 항목, 영향, 권장 조치를 출력합니다.
작성되지 않은 종류는 일반 인사이트로 대체됩니다.

예시:
  opsdash resolve maintenance
  opsdash resolve hvac --plain`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().BoolVar(&plainOut, "plain", false, "마크다운 그대로 출력")
	resolveCmd.Flags().StringVar(&titleFlag, "title", "", "제목")
	resolveCmd.Flags().StringVar(&valueFlag, "value", "", "지표 값")
}

func runResolve(cmd *cobra.Command, args []string) error {
	kind, err := insight.ParseKind(args[0])
	if err != nil {
		return err
	}

	engine, err := newEngine()
	if err != nil {
		return err
	}

	return printPayload(cmd, titleFlag, valueFlag, engine.Resolve(kind))
}

func printPayload(cmd *cobra.Command, title, value string, p insight.Payload) error {
	out := cmd.OutOrStdout()
	if jsonOut {
		return printJSON(out, p)
	}

	if title == "" {
		title = p.Domain.Title() + " / " + string(p.Kind)
	}
	printf(out, "%s", renderMarkdown(insight.Markdown(title, value, p), plainOut))
	return nil
}
