package cli

import (
	"github.com/spf13/cobra"

	"github.com/quillfox/dreambuild/internal/compare"
)

func init() {
	cmd := &cobra.Command{
		Use:   "compare <character>",
		Short: "Compare a character's builds",
		Long:  "Rank every build for a character by weighted synergy metric, with complexity, rarity, and validation detail.",
		Args:  cobra.ExactArgs(1),
		Run:   runCompare,
	}

	RootCmd.AddCommand(cmd)
}

func runCompare(cmd *cobra.Command, args []string) {
	cat := openCatalog()

	comparison, err := compare.New(cat).CompareBuilds(args[0])
	if err != nil {
		exitErr("compare", err)
	}
	printJSON(comparison)
}
