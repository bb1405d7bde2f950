package main

import (
	"github.com/spf13/cobra"

	"github.com/gardar/poppdf/pkg/poppler"
)

var (
	textMode   string
	textLayout bool
	textOut    string
)

var textCmd = &cobra.Command{
	Use:   "text <pdf>",
	Short: "Extract text with pdftotext",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := poppler.ParseTextMode(textMode)
		if err != nil {
			return err
		}
		if textLayout {
			mode = poppler.TextLayout
		}

		text, err := newRunner().Text(cmd.Context(), args[0], firstPage, lastPage, mode)
		if err != nil {
			return err
		}
		return writeOutput(cmd, textOut, []byte(text))
	},
}

func init() {
	textCmd.Flags().StringVarP(&textMode, "mode", "m", "plain", "Output mode: plain, raw, layout, bbox or bbox-layout")
	textCmd.Flags().BoolVar(&textLayout, "layout", false, "Shorthand for --mode layout")
	textCmd.Flags().StringVarP(&textOut, "out", "o", "-", "Output file (- = stdout)")
	rootCmd.AddCommand(textCmd)
}
