package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cmmoran/luastubgen/pkg/action/generate"
)

func init() {
	rootCmd.AddCommand(NewGenerateCommand())
}

func NewGenerateCommand() *cobra.Command {
	// generateCmd represents the luastubgen generate command
	var generateCmd = &cobra.Command{
		Use:     "generate [manifest...]",
		Aliases: []string{"gen"},
		Short:   "generate Lua stubs",
		Long:    "Generate one Lua stub per manifest into <output-directory>/<subdir>/<name><extension>",
		RunE: func(c *cobra.Command, args []string) error {
			opts, err := resolveOptions(c, args)
			if err != nil {
				return err
			}
			results, err := generate.Run(c.Context(), opts)
			for _, r := range results {
				fmt.Fprintf(c.OutOrStdout(), "Stub generated at: %s\n", r.Output)
			}
			return err
		},
	}
	addOptionFlags(generateCmd)

	return generateCmd
}
