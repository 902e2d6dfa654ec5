package cli

import (
	"github.com/spf13/cobra"

	"github.com/quillfox/dreambuild/internal/archetype"
	"github.com/quillfox/dreambuild/internal/compare"
)

func init() {
	cmd := &cobra.Command{
		Use:   "gaps [character]",
		Short: "Report archetype coverage gaps",
		Long:  "Report which playstyle archetypes a character's builds cover and which are missing. Without a character, compare coverage across the whole catalog.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runGaps,
	}

	RootCmd.AddCommand(cmd)
}

func runGaps(cmd *cobra.Command, args []string) {
	cat := openCatalog()

	if len(args) == 0 {
		insights, err := compare.New(cat).CrossCharacterComparison()
		if err != nil {
			exitErr("gaps", err)
		}
		printJSON(insights)
		return
	}

	report := archetype.GapAnalysis(cat, args[0])
	if report == nil {
		printNotFound("Character '%s' not found", args[0])
		return
	}
	printJSON(report)
}
