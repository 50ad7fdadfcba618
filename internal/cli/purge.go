package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewPurgeCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete leftover files from the audio and report scratch areas",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := deps.load(); err != nil {
				return err
			}
			if err := deps.App.PurgeScratch(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Scratch areas purged")
			return nil
		},
	}

	return cmd
}
