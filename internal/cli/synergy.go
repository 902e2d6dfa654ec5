package cli

import (
	"github.com/spf13/cobra"

	"github.com/quillfox/dreambuild/internal/synergy"
)

func init() {
	cmd := &cobra.Command{
		Use:   "synergy <essence>...",
		Short: "Score an essence set against the synergy table",
		Long:  "Sum every known synergy set contained in the given essences. Quote multi-word names.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runSynergy,
	}

	RootCmd.AddCommand(cmd)
}

func runSynergy(cmd *cobra.Command, args []string) {
	printJSON(struct {
		Essences  []string       `json:"essences"`
		Score     int            `json:"score"`
		Synergies []synergy.Info `json:"synergies"`
	}{
		Essences:  args,
		Score:     synergy.ScoreEssenceSet(args),
		Synergies: synergy.FindAllInSet(args),
	})
}
