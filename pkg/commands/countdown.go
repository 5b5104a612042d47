package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/yeargrid/pkg/runner/countdown"
	"tableflip.dev/yeargrid/pkg/store"
)

func addCountdown(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "countdown",
		Short: "Show how many days are left in the year.",
		Example: `
yeargrid countdown
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := countdown.Countdown{
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
