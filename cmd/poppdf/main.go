// poppdf is a command-line tool for reading PDF layout through the poppler
// utilities and writing searchable PDFs from it.
//
// Configuration:
//
// Settings can be kept in a YAML file passed with --config; flags override it:
//
//	poppler:
//	  path: /usr/local/bin
//	  dpi: 300
//	  format: png
//	  threads: 4
//	  timeout: 2m
//	  strict: false
//	overlay:
//	  layer_name: "Text Layer"
//	  font: Helvetica
//	ocr:
//	  languages: [eng]
//	  min_confidence: 30
//
// Usage:
//
//	poppdf info document.pdf
//	poppdf text document.pdf --mode layout
//	poppdf images document.pdf --out pages/ --dpi 150
//	poppdf layout document.pdf --output json --region 0,0,300,100
//	poppdf overlay document.pdf --out checked.pdf --debug
//	poppdf ocr scan.pdf --out searchable.pdf --lang eng
//	poppdf merge combined.pdf a.pdf b.pdf
//	poppdf annotations reviewed.pdf --flows
//	poppdf annotations reviewed.pdf --remove clean.pdf
//
// OCR requires a build with the "ocr" tag and tesseract installed.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
)

func main() {
	log.SetFlags(0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		log.Fatalf("Error: %v", err)
	}
}
