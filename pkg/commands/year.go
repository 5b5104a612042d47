package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/yeargrid/pkg/runner/year"
	"tableflip.dev/yeargrid/pkg/store"
)

func addYear(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "year",
		Short: "Render the year grid with the countdown.",
		Example: `
yeargrid year
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := year.Year{
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
