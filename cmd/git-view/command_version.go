package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/git-view/pkg/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print git-view version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := version.Print(cmd.OutOrStdout()); err != nil {
				return &CLIError{Code: ExitGenericError, Message: "failed to print version", Cause: err}
			}
			return nil
		},
	}
}
