package main

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/gardar/poppdf/pkg/poppler"
)

var infoValidate bool

var infoCmd = &cobra.Command{
	Use:   "info <pdf>",
	Short: "Print document information from pdfinfo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		runner := newRunner()
		w := cmd.OutOrStdout()

		info, err := runner.Info(cmd.Context(), args[0])
		if errors.Is(err, poppler.ErrPDFInfoNotInstalled) {
			// page count still works through the native fallback
			count, cerr := runner.PageCount(cmd.Context(), args[0])
			if cerr != nil {
				return cerr
			}
			labelColor.Fprint(w, "Pages: ")
			fmt.Fprintln(w, count)
			return nil
		}
		if err != nil {
			return err
		}

		for _, key := range slices.Sorted(maps.Keys(info.Fields)) {
			labelColor.Fprintf(w, "%-16s", key+":")
			fmt.Fprintln(w, info.Fields[key])
		}

		if infoValidate {
			if err := runner.Validate(args[0]); err != nil {
				return err
			}
			okColor.Fprintln(w, "Structure is valid")
		}
		return nil
	},
}

func init() {
	infoCmd.Flags().BoolVar(&infoValidate, "validate", false, "Also validate the document structure")
	rootCmd.AddCommand(infoCmd)
}
