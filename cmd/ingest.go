package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kmehta-dev/w2-review-agent/config"
	"github.com/kmehta-dev/w2-review-agent/store"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [docs-dir]",
	Short: "Ingest .txt/.md/.pdf docs into the local document store",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		docsDir := cfg.DocsDir
		if len(args) > 0 {
			docsDir = args[0]
		}

		info, err := os.Stat(docsDir)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("docs directory not found: %s", docsDir)
		}

		documentStore, err := store.Open(cfg.StorePath)
		if err != nil {
			return err
		}
		defer documentStore.Close()

		files, chunks, err := documentStore.IngestDirectory(docsDir, newDocumentService(cfg))
		if err != nil {
			return err
		}
		if files == 0 {
			return fmt.Errorf("no supported docs found in %s (supported file types: .txt, .md, .pdf)", docsDir)
		}

		fmt.Println("Ingestion complete.")
		fmt.Printf("Loaded docs: %d\n", files)
		fmt.Printf("Chunks stored: %d\n", chunks)
		fmt.Printf("Store path: %s\n", cfg.StorePath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}
