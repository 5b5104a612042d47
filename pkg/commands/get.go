package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/yeargrid/pkg/commands/options"
	"tableflip.dev/yeargrid/pkg/runner/get"
	"tableflip.dev/yeargrid/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	do := &options.DateOptions{}

	cmd := &cobra.Command{
		Use:   "get [date]",
		Short: "Show what was logged for a day.",
		Example: `
yeargrid get
yeargrid get 2026-03-05
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("at most one date expected")
			}
			if len(args) == 1 {
				do.Date = args[0]
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := get.Get{
				Date:        do.Date,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
