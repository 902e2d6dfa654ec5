package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rm <character> <build>",
		Short: "Delete a custom build",
		Long:  "Delete a custom build by exact name. Bundled builds cannot be deleted.",
		Args:  cobra.ExactArgs(2),
		Run:   runRm,
	}

	RootCmd.AddCommand(cmd)
}

func runRm(cmd *cobra.Command, args []string) {
	cat := openCatalog()

	deleted, err := cat.DeleteCustomBuild(args[0], args[1])
	if err != nil {
		exitErr("rm", err)
	}
	printJSON(map[string]bool{"deleted": deleted})
}
