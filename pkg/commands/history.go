package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/yeargrid/pkg/runner/history"
	"tableflip.dev/yeargrid/pkg/store"
)

func addHistory(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List logged days, newest first.",
		Example: `
yeargrid history
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := history.History{
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
