package cli

import (
	"github.com/spf13/cobra"

	"github.com/quillfox/dreambuild/internal/score"
)

func init() {
	cmd := &cobra.Command{
		Use:   "suggest <memory> [essence]...",
		Short: "Suggest essence upgrades for a memory",
		Long:  "Rank reference essences against a memory's synergy keywords and the essences already slotted.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runSuggest,
	}

	RootCmd.AddCommand(cmd)
}

func runSuggest(cmd *cobra.Command, args []string) {
	cat := openCatalog()
	engine := score.NewEngine(cat)

	suggestions, err := engine.SuggestUpgrades(args[0], args[1:])
	if err != nil {
		exitErr("suggest", err)
	}
	if suggestions == nil {
		printNotFound("Memory '%s' not found", args[0])
		return
	}
	printJSON(suggestions)
}
