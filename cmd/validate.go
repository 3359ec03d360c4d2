package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kmehta-dev/w2-review-agent/config"
	"github.com/kmehta-dev/w2-review-agent/dto"
	"github.com/kmehta-dev/w2-review-agent/service"
)

var (
	validateW2File     string
	validateShowParsed bool
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a W-2 file and report practical review warnings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		w2Service := service.NewW2Service(newDocumentService(cfg))

		response, err := w2Service.Validate(validateW2File)
		if err != nil {
			return fmt.Errorf("could not read W-2 file: %w", err)
		}

		fmt.Println("Validation Summary")
		fmt.Printf("File: %s\n", response.File)
		fmt.Printf("Issues found: %d\n", response.IssueCount)

		if validateShowParsed {
			fmt.Println("\nParsed Fields")
			printParsedRecord(response.Record)
		}

		if len(response.Issues) == 0 {
			fmt.Println("\nNo validation issues detected.")
			fmt.Println("Informational only, not tax advice.")
			return nil
		}

		fmt.Println("\nReview Warnings")
		for _, issue := range response.Issues {
			fmt.Printf("- [%s] %s: %s\n", strings.ToUpper(string(issue.Level)), issue.Code, issue.Message)
		}
		fmt.Println("\nInformational only, not tax advice.")
		return nil
	},
}

func printParsedRecord(record dto.W2Record) {
	printField := func(name string, value *float64) {
		if value != nil {
			fmt.Printf("- %s: %.2f\n", name, *value)
		} else {
			fmt.Printf("- %s: not detected\n", name)
		}
	}
	printField("box1_wages", record.Box1Wages)
	printField("box2_fed_withholding", record.Box2FedWithholding)
	printField("box3_ss_wages", record.Box3SSWages)
	printField("box5_medicare_wages", record.Box5MedicareWages)
	printField("state_wages", record.StateWages)
	printField("state_withholding", record.StateWithholding)
	printField("local_wages", record.LocalWages)
	printField("local_withholding", record.LocalWithholding)

	if len(record.Box12Codes) == 0 {
		fmt.Println("- box12_codes: (none)")
		return
	}
	rendered := make([]string, 0, len(record.Box12Codes))
	for _, code := range record.Box12Codes {
		rendered = append(rendered, fmt.Sprintf("%s=%.2f", code.Code, code.Amount))
	}
	fmt.Printf("- box12_codes: %s\n", strings.Join(rendered, ", "))
}

func init() {
	validateCmd.Flags().StringVar(&validateW2File, "w2-file", "", "Path to the W-2 file (.pdf, .txt, or .md)")
	validateCmd.Flags().BoolVar(&validateShowParsed, "show-parsed", false, "Print every parsed field before the warnings")
	validateCmd.MarkFlagRequired("w2-file")
	rootCmd.AddCommand(validateCmd)
}
