package cli

import (
	"github.com/spf13/cobra"

	"github.com/quillfox/dreambuild/internal/compare"
)

func init() {
	cmd := &cobra.Command{
		Use:   "recommend <character>",
		Short: "Recommend a build for stated preferences",
		Args:  cobra.ExactArgs(1),
		Run:   runRecommend,
	}

	cmd.Flags().StringP("playstyle", "p", "", "Preferred playstyle: aggressive, defensive, support, mobile, automated")
	cmd.Flags().String("complexity", "any", "Preferred complexity: low, medium, high, any")
	cmd.Flags().String("focus", "", "Preferred focus: damage, survivability, utility, scaling")

	RootCmd.AddCommand(cmd)
}

func runRecommend(cmd *cobra.Command, args []string) {
	playstyle, _ := cmd.Flags().GetString("playstyle")
	complexity, _ := cmd.Flags().GetString("complexity")
	focus, _ := cmd.Flags().GetString("focus")

	cat := openCatalog()
	result, err := compare.New(cat).RecommendBuild(args[0], compare.Preferences{
		Playstyle:  playstyle,
		Complexity: complexity,
		Focus:      focus,
	})
	if err != nil {
		exitErr("recommend", err)
	}
	printJSON(result)
}
