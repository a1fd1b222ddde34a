package cli

import (
	"github.com/spf13/cobra"

	"github.com/n0roo/opsdash/internal/insight"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "인사이트 종류 목록",
	Long:  `도메인별 인사이트 종류와 작성 여부를 출력합니다.`,
	Args:  cobra.NoArgs,
	RunE:  runKinds,
}

func init() {
	rootCmd.AddCommand(kindsCmd)
}

type kindInfo struct {
	Kind     insight.Kind   `json:"kind"`
	Domain   insight.Domain `json:"domain"`
	Authored bool           `json:"authored"`
}

func runKinds(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog()
	if err != nil {
		return err
	}
	resolver := c.Resolver()

	var list []kindInfo
	for _, d := range insight.Domains() {
		for _, k := range insight.KindsOf(d) {
			list = append(list, kindInfo{Kind: k, Domain: d, Authored: resolver.Authored(k)})
		}
	}

	out := cmd.OutOrStdout()
	if jsonOut {
		return printJSON(out, list)
	}

	var current insight.Domain
	for _, k := range list {
		if k.Domain != current {
			current = k.Domain
			printf(out, "%s (%s)\n", current.Title(), insight.Noun(current))
		}
		mark := "✅"
		if !k.Authored {
			mark = "⚪ fallback"
		}
		printf(out, "  %-24s %s\n", k.Kind, mark)
	}
	return nil
}
