package cli

import (
	"github.com/spf13/cobra"

	"github.com/quillfox/dreambuild/internal/meta"
)

func init() {
	cmd := &cobra.Command{
		Use:   "meta",
		Short: "Essence usage report across the whole catalog",
		Run:   runMeta,
	}

	RootCmd.AddCommand(cmd)
}

func runMeta(cmd *cobra.Command, args []string) {
	cat := openCatalog()

	report, err := meta.Generate(cat)
	if err != nil {
		exitErr("meta", err)
	}
	printJSON(report)
}
