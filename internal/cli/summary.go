package cli

import (
	"github.com/spf13/cobra"

	"github.com/quillfox/dreambuild/internal/compare"
)

func init() {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Catalog-wide build summary",
		Run:   runSummary,
	}

	RootCmd.AddCommand(cmd)
}

func runSummary(cmd *cobra.Command, args []string) {
	cat := openCatalog()
	printJSON(compare.New(cat).AllBuildsSummary())
}
