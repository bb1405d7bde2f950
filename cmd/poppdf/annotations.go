package main

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gardar/poppdf/pkg/pdfdoc"
)

var (
	annotFlows  bool
	annotRemove string
)

var annotationsCmd = &cobra.Command{
	Use:   "annotations <pdf>",
	Short: "List rectangle, oval and note annotations with the text they mark",
	Long: `List the rectangle, oval and note annotations of a document. Rectangle
annotations are matched against the text boxes of their page.

With --flows the layout is read with pdftotext -bbox-layout and the words
each annotation marks are printed within their flow. With --remove a copy of
the document without any annotations is written.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()

		if annotRemove != "" {
			if err := pdfdoc.RemoveAnnotationsFile(args[0], annotRemove, cfg.Poppler); err != nil {
				return err
			}
			okColor.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", annotRemove)
			return nil
		}

		opts := pdfdoc.DefaultOptions()
		opts.First, opts.Last = firstPage, lastPage
		opts.Images = false
		opts.Text = false
		opts.Logger = cfg.Poppler.Logger
		if annotFlows {
			opts.Source = pdfdoc.SourceBBox
		}

		doc, err := pdfdoc.Open(cmd.Context(), newRunner(), args[0], opts)
		if err != nil {
			return err
		}
		annots, err := doc.Annotations()
		if err != nil {
			return err
		}

		if annotFlows {
			flows, err := doc.AnnotatedFlows(annots, strings.TrimSpace)
			if err != nil {
				return err
			}
			printFlows(w, flows)
			return nil
		}

		printAnnotations(w, annots, doc.Enrich(annots))
		return nil
	},
}

func printAnnotations(w io.Writer, annots []pdfdoc.Annotation, enriched []pdfdoc.EnrichedAnnotation) {
	next := 0
	for _, a := range annots {
		headerColor.Fprintf(w, "Page %d %s", a.Page, a.Kind)
		dimColor.Fprintf(w, "  %s\n", a.Box)
		if a.Content != "" {
			labelColor.Fprint(w, "  content: ")
			fmt.Fprintln(w, a.Content)
		}
		if a.Kind != pdfdoc.AnnotRectangle || next >= len(enriched) {
			continue
		}
		// Enrich keeps the order of the rectangle annotations
		for _, m := range enriched[next].Matches {
			dimColor.Fprintf(w, "  %.2f  ", m.Score)
			fmt.Fprintln(w, m.Box.Text())
		}
		next++
	}
}

func printFlows(w io.Writer, flows map[int]*pdfdoc.Flow) {
	for _, id := range slices.Sorted(maps.Keys(flows)) {
		f := flows[id]
		if len(f.Annotated) == 0 {
			continue
		}
		headerColor.Fprintf(w, "Flow %d (page %d)\n", f.Index, f.Page)
		fmt.Fprintf(w, "  %s\n", strings.Join(f.Words, " "))
		for _, desc := range slices.Sorted(maps.Keys(f.Annotated)) {
			words := make([]string, 0, len(f.Annotated[desc]))
			for _, i := range f.Annotated[desc] {
				words = append(words, f.Words[i])
			}
			labelColor.Fprintf(w, "  %s: ", desc)
			boldColor.Fprintln(w, strings.Join(words, " "))
		}
	}
}

func init() {
	annotationsCmd.Flags().BoolVar(&annotFlows, "flows", false, "Group annotated words by pdftotext flow")
	annotationsCmd.Flags().StringVar(&annotRemove, "remove", "", "Write a copy without annotations to this file")
	rootCmd.AddCommand(annotationsCmd)
}
