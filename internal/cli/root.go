// Package cli implements the dreambuild CLI commands.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/quillfox/dreambuild/internal/catalog"
	"github.com/quillfox/dreambuild/internal/config"
)

var (
	dataDirFlag   string
	customDirFlag string
	debugFlag     bool
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "dreambuild",
	Short: "Evaluate and rank Shape of Dreams builds",
	Long: "A CLI for scoring, comparing, and recommending Shape of Dreams builds\n" +
		"against the curated synergy knowledge base. JSON in, JSON out.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
		if debugFlag {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dataDirFlag, "data-dir", "d", "", "Game data root (default: $DREAMBUILD_DATA_DIR or .)")
	RootCmd.PersistentFlags().StringVarP(&customDirFlag, "custom-dir", "c", "", "Custom builds root (default: $DREAMBUILD_CUSTOM_DIR or <data-dir>/custom_builds)")
	RootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Verbose logging")
}

func openCatalog() *catalog.Catalog {
	cfg, err := config.Load()
	if err != nil {
		exitErr("load config", err)
	}
	if dataDirFlag != "" {
		cfg.DataDir = dataDirFlag
		if customDirFlag == "" && os.Getenv("DREAMBUILD_CUSTOM_DIR") == "" {
			cfg.CustomDir = filepath.Join(cfg.DataDir, "custom_builds")
		}
	}
	if customDirFlag != "" {
		cfg.CustomDir = customDirFlag
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	return catalog.New(cfg.DataDir, cfg.CustomDir, logger)
}

func printJSON(v any) {
	b, err := sonic.MarshalIndent(v, "", "  ")
	if err != nil {
		exitErr("encode output", err)
	}
	fmt.Println(string(b))
}

func printNotFound(format string, args ...any) {
	printJSON(map[string]string{"error": fmt.Sprintf(format, args...)})
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
