// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// DateOptions captures the target date for day-level commands.
type DateOptions struct {
	Date string
}

// AddDateArgs wires the date flag on the provided command.
func AddDateArgs(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().StringVarP(&o.Date, "date", "d", "today",
		"Day to operate on, YYYY-MM-DD or 'today'.")
}
