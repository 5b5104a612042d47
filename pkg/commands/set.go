package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/yeargrid/pkg/commands/options"
	"tableflip.dev/yeargrid/pkg/runner/set"
	"tableflip.dev/yeargrid/pkg/store"
)

func addSet(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	ro := &options.RecordOptions{}

	cmd := &cobra.Command{
		Use:   "set [date]",
		Short: "Log a level and note for a day.",
		Example: `
yeargrid set --level 3 --note "ran 5k"
yeargrid set 2026-03-05 -l 3 -n "ran 5k"
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
			s := set.Set{
				Date:        do.Date,
				Level:       ro.Level,
				Note:        ro.Note,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)
	options.AddRecordArgs(cmd, ro)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
