package options

import (
	"github.com/spf13/cobra"
)

// RecordOptions captures the level and note inputs for the set command.
// Both are kept as raw strings; validation coerces them.
type RecordOptions struct {
	Level string
	Note  string
}

// AddRecordArgs wires the record flags on the provided command.
func AddRecordArgs(cmd *cobra.Command, o *RecordOptions) {
	cmd.Flags().StringVarP(&o.Level, "level", "l", "0",
		"Intensity level for the day, 0 to 4.")
	cmd.Flags().StringVarP(&o.Note, "note", "n", "",
		"Free-text note for the day.")
}
