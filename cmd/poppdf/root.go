package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gardar/poppdf/pkg/poppler"
)

var (
	configPath string
	noColor    bool
	firstPage  int
	lastPage   int

	cfg settings
)

var rootCmd = &cobra.Command{
	Use:   "poppdf",
	Short: "Read PDF layout with the poppler utilities",
	Long: `poppdf shells out to pdfinfo, pdftoppm, pdftotext, pdftohtml and pdfunite
and turns their output into page images, text and positioned text boxes.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			color.NoColor = true
		}

		cfg = defaultSettings()
		if configPath != "" {
			var err error
			if cfg, err = loadConfig(configPath); err != nil {
				return err
			}
		}
		cfg.Poppler.Logger = os.Stderr
		cfg.Overlay.Logger = os.Stderr
		return applyFlags(cmd.Flags(), &cfg)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Path to a YAML config file")
	flags.BoolVar(&noColor, "no-color", false, "Disable colored output")
	flags.IntVarP(&firstPage, "first", "f", 0, "First page to process (0 = start of document)")
	flags.IntVarP(&lastPage, "last", "l", 0, "Last page to process (0 = end of document)")

	flags.String("poppler-path", "", "Directory holding the poppler binaries")
	flags.Int("dpi", 200, "Rasterization resolution")
	flags.String("format", "png", "Image format: png, jpeg or tiff")
	flags.Int("threads", 1, "Number of concurrent poppler processes")
	flags.Duration("timeout", 0, "Per process timeout (0 = none)")
	flags.Bool("strict", false, "Fail on PDF syntax errors")
	flags.String("password", "", "PDF user password")
	flags.String("owner-password", "", "PDF owner password")
	flags.BoolP("verbose", "v", false, "Print poppler's warnings")
}

func newRunner() *poppler.Runner {
	return poppler.New(cfg.Poppler)
}

// writeOutput writes data to path, or to stdout when path is "-"
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
