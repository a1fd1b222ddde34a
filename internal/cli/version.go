package cli

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/n0roo/opsdash/internal/catalog"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "버전 정보 출력",
	Long:  `opsdash 버전 및 빌드 정보를 출력합니다.`,
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := map[string]any{
		"version": Version,
		"commit":  Commit,
		"date":    Date,
		"catalog": catalog.CurrentVersion,
		"source":  cfg.Catalog.Source,
		"go":      runtime.Version(),
		"os":      runtime.GOOS,
		"arch":    runtime.GOARCH,
	}

	out := cmd.OutOrStdout()
	if jsonOut {
		return printJSON(out, info)
	}

	printf(out, "opsdash %s\n\n", Version)
	printf(out, "  Commit:    %s\n", Commit)
	printf(out, "  Built:     %s\n", Date)
	printf(out, "  Catalog:   v%s (%s)\n", catalog.CurrentVersion, cfg.Catalog.Source)
	printf(out, "  Go:        %s\n", runtime.Version())
	printf(out, "  OS/Arch:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
	return nil
}
