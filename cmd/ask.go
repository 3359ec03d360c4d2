package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kmehta-dev/w2-review-agent/config"
	"github.com/kmehta-dev/w2-review-agent/rag"
	"github.com/kmehta-dev/w2-review-agent/store"
)

var (
	askTopK         int
	askMinRelevance float64
	askShowContext  bool
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a W-2 question grounded in the ingested document corpus",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := args[0]
		if askTopK < 1 {
			return fmt.Errorf("--top-k must be at least 1")
		}
		if askMinRelevance < 0 || askMinRelevance > 1 {
			return fmt.Errorf("--min-relevance must be between 0 and 1")
		}

		cfg := config.Load()
		if _, err := os.Stat(cfg.StorePath); err != nil {
			return fmt.Errorf("document store not found at %s; run `w2agent ingest` first", cfg.StorePath)
		}

		documentStore, err := store.Open(cfg.StorePath)
		if err != nil {
			return err
		}
		defer documentStore.Close()

		hits, err := documentStore.Search(question, askTopK)
		if err != nil {
			return err
		}
		if len(hits) == 0 {
			return fmt.Errorf("no matching context found; try ingesting more docs")
		}

		ctx := context.Background()
		answerer, err := rag.NewAnswerer(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return err
		}
		defer answerer.Close()

		answer, err := answerer.Answer(ctx, question, hits, askMinRelevance)
		if errors.Is(err, rag.ErrInsufficientContext) {
			return fmt.Errorf("insufficient context quality for a grounded answer; try lowering --min-relevance or adding better source docs")
		}
		if err != nil {
			return err
		}

		fmt.Println("Answer")
		fmt.Println(answer.Text)
		fmt.Println("\nConfidence")
		fmt.Printf("%s (top relevance: %.3f, avg relevance: %.3f)\n",
			answer.Confidence, answer.TopRelevance, answer.AvgRelevance)

		if askShowContext {
			fmt.Println("\nRetrieved Context")
			for i, hit := range hits {
				fmt.Printf("[%d] Source: %s (relevance=%.3f)\n%s\n\n", i+1, hit.Chunk.Source, hit.Score, hit.Chunk.Text)
			}
		}

		fmt.Println("\nSources")
		for _, source := range answer.Sources {
			fmt.Printf("- %s (relevance=%.3f)\n", source.Path, source.Score)
			fmt.Printf("  snippet: %s\n", source.Snippet)
		}
		return nil
	},
}

func init() {
	askCmd.Flags().IntVar(&askTopK, "top-k", config.DefaultTopK, "Number of context chunks to retrieve")
	askCmd.Flags().Float64Var(&askMinRelevance, "min-relevance", config.DefaultMinRelevance, "Minimum relevance score for usable context")
	askCmd.Flags().BoolVar(&askShowContext, "show-context", false, "Print the retrieved context chunks")
	rootCmd.AddCommand(askCmd)
}
