package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/meeting-agent/internal/meeting"
)

type searchOutput struct {
	Query   string              `json:"query"`
	Results []meeting.SearchHit `json:"results"`
}

func NewSearchCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Find stored meetings whose transcript or summary contains the query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			if query == "" {
				return errors.New("search query cannot be empty")
			}

			if err := deps.load(); err != nil {
				return err
			}

			hits, err := deps.App.Repo.Search(cmd.Context(), query)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), searchOutput{Query: query, Results: hits})
		},
	}

	return cmd
}
