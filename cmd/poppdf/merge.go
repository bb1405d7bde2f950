package main

import (
	"github.com/spf13/cobra"
)

var mergeCmd = &cobra.Command{
	Use:   "merge <out> <pdf>...",
	Short: "Concatenate documents with pdfunite",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newRunner().Merge(cmd.Context(), args[0], args[1:]...); err != nil {
			return err
		}
		okColor.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}
