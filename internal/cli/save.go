package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/quillfox/dreambuild/internal/model"
	"github.com/quillfox/dreambuild/internal/validate"
)

func init() {
	cmd := &cobra.Command{
		Use:   "save <character> [file]",
		Short: "Save a custom build",
		Long:  "Save a custom build from a JSON file or stdin. An existing custom build with the same name is replaced. The build is validated first; hard findings block the save unless --force is set.",
		Args:  cobra.RangeArgs(1, 2),
		Run:   runSave,
	}

	cmd.Flags().Bool("force", false, "Save even when validation finds hard errors")

	RootCmd.AddCommand(cmd)
}

func runSave(cmd *cobra.Command, args []string) {
	force, _ := cmd.Flags().GetBool("force")

	var data []byte
	var err error
	if len(args) == 2 {
		data, err = os.ReadFile(args[1])
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		exitErr("read build", err)
	}

	build := &model.Build{}
	if err := sonic.Unmarshal(data, build); err != nil {
		exitErr("decode build", err)
	}
	build.Raw = data
	if build.Name == "" {
		exitErr("save", fmt.Errorf("build has no name"))
	}

	cat := openCatalog()
	result, err := validate.Full(build, cat)
	if err != nil {
		exitErr("validate", err)
	}
	if !result.Valid && !force {
		printJSON(result)
		os.Exit(1)
	}

	path, err := cat.SaveCustomBuild(args[0], build)
	if err != nil {
		exitErr("save", err)
	}
	printJSON(struct {
		Saved      string          `json:"saved"`
		Path       string          `json:"path"`
		Validation validate.Result `json:"validation"`
	}{Saved: build.Name, Path: path, Validation: result})
}
