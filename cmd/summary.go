package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kmehta-dev/w2-review-agent/config"
	"github.com/kmehta-dev/w2-review-agent/service"
)

var summaryW2File string

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show a quick W-2 summary (tax year + Box 1 wages)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		w2Service := service.NewW2Service(newDocumentService(cfg))

		response, err := w2Service.Summarize(summaryW2File)
		if err != nil {
			return fmt.Errorf("could not read W-2 file: %w", err)
		}

		fmt.Println("W-2 Summary")
		fmt.Printf("File: %s\n", response.File)
		if response.TaxYear != nil {
			fmt.Printf("Tax year: %d\n", *response.TaxYear)
		} else {
			fmt.Println("Tax year: unknown")
		}
		if response.Box1Wages != nil {
			fmt.Printf("Box 1 wages: $%.2f\n", *response.Box1Wages)
		} else {
			fmt.Println("Box 1 wages: not detected")
		}
		fmt.Println("Informational only, not tax advice.")
		return nil
	},
}

func init() {
	summaryCmd.Flags().StringVar(&summaryW2File, "w2-file", "", "Path to the W-2 file (.pdf, .txt, or .md)")
	summaryCmd.MarkFlagRequired("w2-file")
	rootCmd.AddCommand(summaryCmd)
}
