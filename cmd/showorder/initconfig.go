package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/showorder/config"
)

func newInitConfigCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init-config [PATH]",
		Short: "Write the default configuration file",
		Args:  cobra.MaximumNArgs(1),
		// Writing a fresh file must work even when the existing one is invalid.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.LocalPath
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.WriteDefault(path); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return err
		},
	}
}
