package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/quillfox/dreambuild/internal/validate"
)

func init() {
	cmd := &cobra.Command{
		Use:   "validate <character> <build>",
		Short: "Validate a stored build",
		Long:  "Run the schema, duplicate-essence, and reference checks on a stored build. The build name matches by case-insensitive substring.",
		Args:  cobra.ExactArgs(2),
		Run:   runValidate,
	}

	RootCmd.AddCommand(cmd)
}

func runValidate(cmd *cobra.Command, args []string) {
	cat := openCatalog()

	needle := strings.ToLower(args[1])
	for _, b := range cat.BuildsFor(args[0]) {
		if !strings.Contains(strings.ToLower(b.Name), needle) {
			continue
		}
		result, err := validate.Full(b, cat)
		if err != nil {
			exitErr("validate", err)
		}
		printJSON(struct {
			Build      string                   `json:"build"`
			Result     validate.Result          `json:"result"`
			Duplicates validate.DuplicateReport `json:"duplicates"`
		}{Build: b.Name, Result: result, Duplicates: validate.NoDuplicateEssences(b)})
		return
	}
	printNotFound("Build '%s' not found for character '%s'", args[1], args[0])
}
