package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gardar/poppdf/pkg/hocr"
	"github.com/gardar/poppdf/pkg/layout"
	"github.com/gardar/poppdf/pkg/pdfdoc"
)

var (
	layoutSource string
	layoutFormat string
	layoutRegion string
	layoutLoose  bool
)

type boxJSON struct {
	Index  int     `json:"index"`
	Text   string  `json:"text"`
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Font   string  `json:"font,omitempty"`
	Bold   bool    `json:"bold"`
}

type pageJSON struct {
	Number int       `json:"number"`
	Width  float64   `json:"width"`
	Height float64   `json:"height"`
	Boxes  []boxJSON `json:"boxes"`
}

var layoutCmd = &cobra.Command{
	Use:   "layout <pdf>",
	Short: "Print the text boxes of each page",
	Long: `Print the text boxes of each page with their position in points.
With --region only the boxes inside the region are listed, or with --loose
the boxes touching it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := pdfdoc.ParseSource(layoutSource)
		if err != nil {
			return err
		}
		var region *layout.BoundingBox
		if layoutRegion != "" {
			if region, err = parseRegion(layoutRegion); err != nil {
				return err
			}
		}

		opts := pdfdoc.DefaultOptions()
		opts.First, opts.Last = firstPage, lastPage
		opts.Source = source
		opts.Images = false
		opts.Text = false
		opts.Logger = cfg.Poppler.Logger

		doc, err := pdfdoc.Open(cmd.Context(), newRunner(), args[0], opts)
		if err != nil {
			return err
		}

		selected := make([][]*layout.TextBox, len(doc.Pages))
		for i, p := range doc.Pages {
			switch {
			case region == nil:
				selected[i] = p.Boxes()
			case layoutLoose:
				selected[i] = p.Overlapping(region)
			default:
				selected[i] = p.Within(region)
			}
		}

		switch layoutFormat {
		case "json":
			return writeLayoutJSON(cmd.OutOrStdout(), doc, selected)
		case "hocr":
			pages := make([]*layout.Page, len(doc.Pages))
			for i, p := range doc.Pages {
				pages[i] = layout.NewPage(p.Number, p.Layout.Width, p.Layout.Height)
				pages[i].Boxes = selected[i]
			}
			return hocr.Write(cmd.OutOrStdout(), pages)
		case "text":
			for i, p := range doc.Pages {
				printBoxes(cmd.OutOrStdout(), p.Layout, selected[i])
			}
			return nil
		}
		return fmt.Errorf("unknown output format %q", layoutFormat)
	},
}

func writeLayoutJSON(w io.Writer, doc *pdfdoc.Document, selected [][]*layout.TextBox) error {
	pages := make([]pageJSON, 0, len(doc.Pages))
	for i, p := range doc.Pages {
		pj := pageJSON{Number: p.Number, Width: p.Layout.Width, Height: p.Layout.Height, Boxes: []boxJSON{}}
		for _, tb := range selected[i] {
			font, bold := boxFont(tb)
			pj.Boxes = append(pj.Boxes, boxJSON{
				Index:  tb.Index(),
				Text:   tb.Text(),
				Left:   tb.Left(),
				Top:    tb.Top(),
				Right:  tb.Right(),
				Bottom: tb.Bottom(),
				Font:   font,
				Bold:   bold,
			})
		}
		pages = append(pages, pj)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(pages)
}

func init() {
	layoutCmd.Flags().StringVar(&layoutSource, "source", "xml", "Layout source: xml (pdftohtml) or bbox (pdftotext)")
	layoutCmd.Flags().StringVar(&layoutFormat, "output", "text", "Output format: text, json or hocr")
	layoutCmd.Flags().StringVarP(&layoutRegion, "region", "r", "", "Only boxes inside left,top,right,bottom")
	layoutCmd.Flags().BoolVar(&layoutLoose, "loose", false, "With --region, include boxes that only touch it")
	rootCmd.AddCommand(layoutCmd)
}
