package cli

import (
	"github.com/spf13/cobra"

	"github.com/quillfox/dreambuild/internal/compare"
)

func init() {
	cmd := &cobra.Command{
		Use:   "find <essence>",
		Short: "Find builds using an essence",
		Args:  cobra.ExactArgs(1),
		Run:   runFind,
	}

	RootCmd.AddCommand(cmd)
}

func runFind(cmd *cobra.Command, args []string) {
	cat := openCatalog()

	usages := compare.New(cat).FindBuildsWithEssence(args[0])
	if len(usages) == 0 {
		printNotFound("No builds use essence '%s'", args[0])
		return
	}
	printJSON(usages)
}
