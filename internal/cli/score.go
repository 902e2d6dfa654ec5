package cli

import (
	"github.com/spf13/cobra"

	"github.com/quillfox/dreambuild/internal/score"
)

func init() {
	cmd := &cobra.Command{
		Use:   "score <character> <build>",
		Short: "Score one build",
		Long:  "Print the full scorecard for a build: unified score, grade, archetypes, and improvement suggestions. The build name matches by case-insensitive substring.",
		Args:  cobra.ExactArgs(2),
		Run:   runScore,
	}

	RootCmd.AddCommand(cmd)
}

func runScore(cmd *cobra.Command, args []string) {
	cat := openCatalog()
	engine := score.NewEngine(cat)

	card, err := engine.Scorecard(args[0], args[1])
	if err != nil {
		exitErr("score", err)
	}
	if card == nil {
		printNotFound("Build '%s' not found for character '%s'", args[1], args[0])
		return
	}
	printJSON(card)
}
