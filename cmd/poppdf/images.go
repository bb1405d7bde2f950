package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var imagesOut string

var imagesCmd = &cobra.Command{
	Use:   "images <pdf>",
	Short: "Rasterize pages with pdftoppm",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		images, err := newRunner().Images(cmd.Context(), args[0], firstPage, lastPage)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(imagesOut, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		for _, img := range images {
			cfg, err := img.Config()
			if err != nil {
				return fmt.Errorf("page %d: %w", img.Page, err)
			}
			name := filepath.Join(imagesOut, fmt.Sprintf("page-%03d.%s", img.Page, img.Format))
			if err := os.WriteFile(name, img.Data, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %dx%d\n", name, cfg.Width, cfg.Height)
		}
		return nil
	},
}

func init() {
	imagesCmd.Flags().StringVarP(&imagesOut, "out", "o", ".", "Output directory")
	rootCmd.AddCommand(imagesCmd)
}
