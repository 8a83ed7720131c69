package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cmmoran/luastubgen/pkg/action/verify"
)

func init() {
	rootCmd.AddCommand(NewVerifyCommand())
}

func NewVerifyCommand() *cobra.Command {
	var verifyCmd = &cobra.Command{
		Use:   "verify [manifest...]",
		Short: "check that generated stubs are up to date",
		Long:  "Regenerate stubs in memory and fail if any stub on disk is missing or differs",
		RunE: func(c *cobra.Command, args []string) error {
			opts, err := resolveOptions(c, args)
			if err != nil {
				return err
			}
			if err = verify.Run(c.Context(), opts); err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "%d stub(s) up to date\n", len(opts.Manifests))
			return nil
		},
	}
	addOptionFlags(verifyCmd)

	return verifyCmd
}
