package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gardar/poppdf/pkg/ocr"
	"github.com/gardar/poppdf/pkg/pdfdoc"
)

var (
	ocrOut   string
	ocrLangs []string
	ocrDebug bool
)

var ocrCmd = &cobra.Command{
	Use:   "ocr <pdf>",
	Short: "Rebuild the PDF from page images with an OCR text layer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if ocrOut == "" {
			return fmt.Errorf("--out is required")
		}

		client, err := ocr.New()
		if err != nil {
			return err
		}
		defer client.Close()

		langs := cfg.Languages
		if len(ocrLangs) > 0 {
			langs = ocrLangs
		}
		if err := client.SetLanguage(langs...); err != nil {
			return err
		}
		client.MinConfidence = cfg.MinConfidence

		opts := pdfdoc.DefaultOptions()
		opts.First, opts.Last = firstPage, lastPage
		opts.Text = false
		opts.Logger = cfg.Poppler.Logger

		doc, err := pdfdoc.Open(cmd.Context(), newRunner(), args[0], opts)
		if err != nil {
			return err
		}

		ocfg := cfg.Overlay
		ocfg.Debug = ocrDebug
		out, err := doc.Rebuild(cmd.Context(), client, ocfg)
		if err != nil {
			return err
		}
		if err := writeOutput(cmd, ocrOut, out); err != nil {
			return err
		}
		if ocrOut != "-" {
			okColor.Fprintf(cmd.ErrOrStderr(), "Wrote %d pages to %s\n", len(doc.Pages), ocrOut)
		}
		return nil
	},
}

func init() {
	ocrCmd.Flags().StringVarP(&ocrOut, "out", "o", "", "Output PDF (- = stdout)")
	ocrCmd.Flags().StringSliceVar(&ocrLangs, "lang", nil, "Tesseract languages (default from config)")
	ocrCmd.Flags().BoolVar(&ocrDebug, "debug", false, "Draw recognized text and boxes visibly")
	rootCmd.AddCommand(ocrCmd)
}
