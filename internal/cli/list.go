package cli

import (
	"github.com/spf13/cobra"

	"github.com/quillfox/dreambuild/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list [character]",
		Short: "List characters and their builds",
		Args:  cobra.MaximumNArgs(1),
		Run:   runList,
	}

	RootCmd.AddCommand(cmd)
}

type listedBuild struct {
	Name      string `json:"name"`
	Playstyle string `json:"playstyle"`
	Memories  int    `json:"memories"`
	Source    string `json:"source"`
}

func listBuilds(builds []*model.Build) []listedBuild {
	out := make([]listedBuild, 0, len(builds))
	for _, b := range builds {
		out = append(out, listedBuild{
			Name:      b.Name,
			Playstyle: b.Playstyle,
			Memories:  len(b.Memories),
			Source:    b.Source.String(),
		})
	}
	return out
}

func runList(cmd *cobra.Command, args []string) {
	cat := openCatalog()

	if len(args) == 1 {
		builds := cat.BuildsFor(args[0])
		if len(builds) == 0 {
			printNotFound("Character '%s' not found", args[0])
			return
		}
		printJSON(listBuilds(builds))
		return
	}

	all := make(map[string][]listedBuild)
	for _, character := range cat.CharacterNames() {
		all[character] = listBuilds(cat.BuildsFor(character))
	}
	printJSON(all)
}
