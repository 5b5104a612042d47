package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/yeargrid/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "yeargrid",
		Short: base.Wrap80("Track one habit across a whole year, one day at a time."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addSet(topLevel)
	addGet(topLevel)
	addYear(topLevel)
	addHistory(topLevel)
	addCountdown(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
}
