package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gardar/poppdf/pkg/hocr"
	"github.com/gardar/poppdf/pkg/layout"
	"github.com/gardar/poppdf/pkg/overlay"
	"github.com/gardar/poppdf/pkg/pdfdoc"
)

var (
	overlayOut   string
	overlayDebug bool
	overlayForce bool
	overlayLayer string
	overlayDump  bool
	overlayHOCR  string
)

var overlayCmd = &cobra.Command{
	Use:   "overlay <pdf>",
	Short: "Draw the extracted text boxes onto the PDF as a layer",
	Long: `Draw the text boxes poppler reports onto the document as an optional
content layer. With --debug the text and boxes are drawn visibly, which shows
how well the layout matches the page.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if overlayOut == "" {
			return fmt.Errorf("--out is required")
		}

		opts := pdfdoc.DefaultOptions()
		opts.First, opts.Last = firstPage, lastPage
		opts.Images = false
		opts.Text = false
		opts.Logger = cfg.Poppler.Logger

		doc, err := pdfdoc.Open(cmd.Context(), newRunner(), args[0], opts)
		if err != nil {
			return err
		}
		if len(doc.Pages) == 0 {
			return fmt.Errorf("no pages in %s", args[0])
		}

		pdfData, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		ocfg := cfg.Overlay
		ocfg.Debug = overlayDebug
		ocfg.Force = overlayForce
		ocfg.DumpPDF = overlayDump
		ocfg.StartPage = doc.Pages[0].Number
		if overlayLayer != "" {
			ocfg.LayerName = overlayLayer
		}

		pages := doc.Layouts()
		if overlayHOCR != "" {
			if pages, err = hocrPages(overlayHOCR, doc); err != nil {
				return err
			}
		}

		out, err := overlay.Apply(pdfData, pages, ocfg)
		if err != nil {
			return err
		}
		if err := writeOutput(cmd, overlayOut, out); err != nil {
			return err
		}
		if overlayOut != "-" {
			okColor.Fprintf(cmd.ErrOrStderr(), "Wrote %d pages to %s\n", len(doc.Pages), overlayOut)
		}
		return nil
	},
}

// hocrPages reads recognized text from an hOCR file and scales each page
// onto the matching page of doc.
func hocrPages(path string, doc *pdfdoc.Document) ([]*layout.Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	parsed, err := hocr.Parse(data, cfg.MinConfidence)
	if err != nil {
		return nil, err
	}

	pages := make([]*layout.Page, 0, len(parsed))
	for i, p := range parsed {
		if i >= len(doc.Pages) {
			break
		}
		target := doc.Pages[i].Layout
		scaled := p.Rescale(target.Width, target.Height)
		scaled.Number = target.Number
		pages = append(pages, scaled)
	}
	return pages, nil
}

func init() {
	overlayCmd.Flags().StringVarP(&overlayOut, "out", "o", "", "Output PDF (- = stdout)")
	overlayCmd.Flags().BoolVar(&overlayDebug, "debug", false, "Draw text and boxes visibly")
	overlayCmd.Flags().BoolVar(&overlayForce, "force", false, "Apply even if the layer already exists")
	overlayCmd.Flags().StringVar(&overlayLayer, "layer", "", "Layer name (default from config)")
	overlayCmd.Flags().BoolVar(&overlayDump, "dump-pdf", false, "Dump the start of the input PDF structure")
	overlayCmd.Flags().StringVar(&overlayHOCR, "hocr", "", "Draw the words of this hOCR file instead of the PDF's own text")
	rootCmd.AddCommand(overlayCmd)
}
