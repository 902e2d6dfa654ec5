package cli

import (
	"github.com/spf13/cobra"

	"github.com/quillfox/dreambuild/internal/score"
)

func init() {
	cmd := &cobra.Command{
		Use:   "subs <essence>",
		Short: "Suggest substitute essences",
		Long:  "Rank essences that fill a similar role, by shared synergy types and rarity. Useful when a recommended essence is not available.",
		Args:  cobra.ExactArgs(1),
		Run:   runSubs,
	}

	RootCmd.AddCommand(cmd)
}

func runSubs(cmd *cobra.Command, args []string) {
	cat := openCatalog()
	engine := score.NewEngine(cat)

	substitutes, err := engine.SuggestSubstitutes(args[0])
	if err != nil {
		exitErr("subs", err)
	}
	if substitutes == nil {
		printNotFound("Essence '%s' not found or has no synergy types", args[0])
		return
	}
	printJSON(substitutes)
}
