package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func NewProcessCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "process <audio-file>",
		Short: "Run one local audio file through the pipeline and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := deps.load(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			res, err := deps.App.ProcessFile(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}

	return cmd
}
