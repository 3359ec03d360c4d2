package rag

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/kmehta-dev/w2-review-agent/store"
)

const systemPrompt = "You are a W-2 assistant. Answer using only the provided context. " +
	"If context is insufficient, say so clearly. Keep the response concise and factual."

const snippetChars = 240

// ErrInsufficientContext signals that no retrieved chunk cleared the
// minimum-relevance gate, so a grounded answer is not possible.
var ErrInsufficientContext = fmt.Errorf("insufficient context quality for a grounded answer")

// Source is one cited document with its relevance score and a short snippet.
type Source struct {
	Path    string  `json:"path"`
	Score   float64 `json:"score"`
	Snippet string  `json:"snippet"`
}

// Answer is a grounded answer with its confidence label and citations.
type Answer struct {
	Text         string   `json:"text"`
	Confidence   string   `json:"confidence"`
	TopRelevance float64  `json:"top_relevance"`
	AvgRelevance float64  `json:"avg_relevance"`
	Sources      []Source `json:"sources"`
}

// Answerer synthesizes grounded answers over retrieved chunks using the
// Gemini API.
type Answerer struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewAnswerer creates an Answerer. The API key is required; the model name
// defaults to gemini-2.5-pro.
func NewAnswerer(ctx context.Context, apiKey, modelName string) (*Answerer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if modelName == "" {
		modelName = "gemini-2.5-pro"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &Answerer{
		client: client,
		model:  client.GenerativeModel(modelName),
	}, nil
}

// Close closes the underlying Gemini client.
func (a *Answerer) Close() error {
	return a.client.Close()
}

// Answer filters hits below minRelevance, builds the grounded prompt, and
// asks the model. Returns ErrInsufficientContext when nothing clears the
// gate.
func (a *Answerer) Answer(ctx context.Context, question string, hits []store.SearchHit, minRelevance float64) (*Answer, error) {
	filtered := make([]store.SearchHit, 0, len(hits))
	for _, hit := range hits {
		if hit.Score >= minRelevance {
			filtered = append(filtered, hit)
		}
	}
	if len(filtered) == 0 {
		return nil, ErrInsufficientContext
	}

	scores := make([]float64, len(filtered))
	for i, hit := range filtered {
		scores[i] = hit.Score
	}

	prompt := buildPrompt(question, filtered)

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	resp, err := a.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("generating content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			responseText.WriteString(string(text))
		}
	}

	top, avg := topAndAvg(scores)
	return &Answer{
		Text:         strings.TrimSpace(responseText.String()),
		Confidence:   confidenceLabel(scores, minRelevance),
		TopRelevance: top,
		AvgRelevance: avg,
		Sources:      citations(filtered),
	}, nil
}

func buildPrompt(question string, hits []store.SearchHit) string {
	var b strings.Builder
	b.WriteString(systemPrompt)
	b.WriteString("\n\nQuestion: ")
	b.WriteString(question)
	b.WriteString("\n\nContext documents:\n")
	b.WriteString(formatContext(hits))
	b.WriteString("\n\nRespond using this structure exactly:\n")
	b.WriteString("Answer: <concise answer>\n")
	b.WriteString("Why: <brief grounding in context>\n")
	b.WriteString("Limits: <what is uncertain or missing>\n\n")
	b.WriteString("Stay grounded in the provided context. ")
	b.WriteString("If unsure, state insufficient context instead of guessing. ")
	b.WriteString("End with: 'Informational only, not tax advice.'")
	return b.String()
}

func formatContext(hits []store.SearchHit) string {
	sections := make([]string, 0, len(hits))
	for i, hit := range hits {
		sections = append(sections, fmt.Sprintf("[%d] Source: %s\n%s", i+1, hit.Chunk.Source, strings.TrimSpace(hit.Chunk.Text)))
	}
	return strings.Join(sections, "\n\n")
}

// citations deduplicates hits by source, keeping the best-scored snippet per
// document.
func citations(hits []store.SearchHit) []Source {
	seen := make(map[string]bool)
	var sources []Source
	for _, hit := range hits {
		if seen[hit.Chunk.Source] {
			continue
		}
		seen[hit.Chunk.Source] = true

		snippet := strings.Join(strings.Fields(hit.Chunk.Text), " ")
		if len(snippet) > snippetChars {
			snippet = strings.TrimSpace(snippet[:snippetChars]) + "..."
		}
		sources = append(sources, Source{
			Path:    hit.Chunk.Source,
			Score:   hit.Score,
			Snippet: snippet,
		})
	}
	return sources
}

// confidenceLabel grades retrieval quality relative to the minimum-relevance
// gate: comfortably above it on both the top and average score is high,
// moderately above on the top score is medium, anything else is low.
func confidenceLabel(scores []float64, minRelevance float64) string {
	if len(scores) == 0 {
		return "low"
	}
	top, avg := topAndAvg(scores)
	if top >= minRelevance+0.30 && avg >= minRelevance+0.20 {
		return "high"
	}
	if top >= minRelevance+0.15 {
		return "medium"
	}
	return "low"
}

func topAndAvg(scores []float64) (top, avg float64) {
	if len(scores) == 0 {
		return 0, 0
	}
	var sum float64
	for _, score := range scores {
		sum += score
		if score > top {
			top = score
		}
	}
	return top, sum / float64(len(scores))
}
