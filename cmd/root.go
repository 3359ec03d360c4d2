package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kmehta-dev/w2-review-agent/client"
	"github.com/kmehta-dev/w2-review-agent/config"
	"github.com/kmehta-dev/w2-review-agent/service"
)

var rootCmd = &cobra.Command{
	Use:   "w2agent",
	Short: "W-2 review agent: extract, validate, and answer questions about W-2 documents",
	Long: `w2agent extracts structured field values from W-2 documents (.pdf, .txt,
.md), flags implausible values for review, and answers W-2 questions grounded
in a local document corpus.

Example usage:
  w2agent summary --w2-file data/w2/2025-w2.pdf
  w2agent validate --w2-file data/w2/2025-w2.pdf --show-parsed
  w2agent ingest data/docs
  w2agent ask "What does Box 12 code DD mean?"
  w2agent serve`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command. Called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newDocumentService wires the PDF processor and the optional OCR clients
// from configuration. The remote sidecar is preferred when configured, with
// local tesseract behind it.
func newDocumentService(cfg *config.Config) *service.DocumentService {
	return service.NewDocumentService(
		service.NewPDFProcessor(),
		client.NewRemoteOCRClient(cfg.OCRServerURL),
		client.NewTesseractClient(cfg.TessdataPrefix),
	)
}
