package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/skillify/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "skillify",
	Short: "Generate agent skills from source repositories",
	Long: `skillify inspects a source repository and produces a self-contained
skill bundle that lets an orchestrator invoke the repository uniformly,
regardless of its original language or build system.

A bundle contains:
  - SKILL.md with front-matter and usage instructions
  - references/ with normalized documentation
  - scripts/ implementing the wrapper contract (with --with-wrapper)
  - vendor/ with a copy of the source tree (with --vendor)`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, os.Stderr)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		logging.UserError("%v", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
)
