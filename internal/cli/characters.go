package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "characters",
		Short: "List playable characters",
		Long:  "List every character from the reference data with bundled and custom build counts.",
		Run:   runCharacters,
	}

	RootCmd.AddCommand(cmd)
}

type characterEntry struct {
	Name          string `json:"name"`
	BundledBuilds int    `json:"bundled_builds"`
	CustomBuilds  int    `json:"custom_builds"`
}

func runCharacters(cmd *cobra.Command, args []string) {
	cat := openCatalog()

	characters, err := cat.Characters()
	if err != nil {
		exitErr("characters", err)
	}

	out := make([]characterEntry, 0, len(characters))
	for _, ch := range characters {
		out = append(out, characterEntry{
			Name:          ch.Name,
			BundledBuilds: len(cat.BundledFor(ch.Name)),
			CustomBuilds:  len(cat.CustomFor(ch.Name)),
		})
	}
	printJSON(out)
}
