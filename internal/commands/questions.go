package commands

import (
	"github.com/simonhull/firebird-suite/hatch/internal/answers"
	"github.com/spf13/cobra"
)

// QuestionsCmd prints the question schema. Its keys are the ones answer
// files and the config's answers section accept.
func QuestionsCmd() *cobra.Command {
	var appName string

	cmd := &cobra.Command{
		Use:   "questions",
		Short: "Print the question schema as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := answers.SchemaYAML(appName)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&appName, "name", "my-package", "Default package name shown in the schema")
	return cmd
}
