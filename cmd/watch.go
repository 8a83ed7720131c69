package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cmmoran/luastubgen/pkg/action/generate"
	"github.com/cmmoran/luastubgen/pkg/action/watch"
)

func init() {
	rootCmd.AddCommand(NewWatchCommand())
}

func NewWatchCommand() *cobra.Command {
	var watchCmd = &cobra.Command{
		Use:   "watch [manifest...]",
		Short: "regenerate stubs when manifests change",
		Long:  "Generate stubs, then regenerate each one whenever its manifest is saved. Existing stubs are replaced.",
		RunE: func(c *cobra.Command, args []string) error {
			opts, err := resolveOptions(c, args)
			if err != nil {
				return err
			}
			return watch.Run(c.Context(), opts, func(res generate.Result, err error) {
				if err != nil {
					printOne(c, err)
					return
				}
				fmt.Fprintf(c.OutOrStdout(), "Stub generated at: %s\n", res.Output)
			})
		},
	}
	addOptionFlags(watchCmd)

	return watchCmd
}
