package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/yeargrid/pkg/app"
	"tableflip.dev/yeargrid/pkg/store"
	tuiapp "tableflip.dev/yeargrid/pkg/tui/app"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Browse and edit the year grid interactively.",
		Example: `
yeargrid ui
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			svc := &app.Service{Persistence: p}
			return tuiapp.Run(svc)
		},
	}

	topLevel.AddCommand(cmd)
}
