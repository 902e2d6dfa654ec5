package cli

import (
	"github.com/spf13/cobra"

	"github.com/quillfox/dreambuild/internal/export"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export [path]",
		Short: "Export an evaluated catalog snapshot to SQLite",
		Long:  "Evaluate every build and write one row per build (score components, grade, weighted synergy, complexity) to a SQLite database for downstream tooling.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runExport,
	}

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	path := "dreambuild_snapshot.db"
	if len(args) == 1 {
		path = args[0]
	}

	cat := openCatalog()
	rows, err := export.Snapshot(cat, path)
	if err != nil {
		exitErr("export", err)
	}
	printJSON(struct {
		Path string `json:"path"`
		Rows int    `json:"rows"`
	}{Path: path, Rows: rows})
}
