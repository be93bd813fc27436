package commands

import (
	hatch "github.com/simonhull/firebird-suite/hatch"
	"github.com/simonhull/firebird-suite/hatch/internal/output"
	"github.com/spf13/cobra"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	verbose    bool
	configPath string
}

// RootCmd creates and returns the root command for the hatch CLI
func RootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "hatch",
		Short: "Scaffold npm packages with batteries included",
		Long: `Hatch creates a ready-to-publish npm package with:
• CommonJS or ES module layout
• ESLint, Prettier, Husky, lint-staged and commitlint
• Jest, Babel, TypeScript declarations and a Rollup build
• An optional MIT license

Learn more: https://github.com/simonhull/firebird-suite`,
		Version:       hatch.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetWriter(cmd.OutOrStdout())
			output.SetVerbose(opts.verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output for debugging")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default $HOME/.config/hatch/hatch.yml)")

	cmd.AddCommand(NewCmd(opts))
	cmd.AddCommand(QuestionsCmd())

	return cmd
}
