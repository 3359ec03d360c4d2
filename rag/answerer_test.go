package rag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmehta-dev/w2-review-agent/store"
)

func TestConfidenceLabel(t *testing.T) {
	tests := []struct {
		name         string
		scores       []float64
		minRelevance float64
		want         string
	}{
		{"no scores", nil, 0.30, "low"},
		{"high on top and average", []float64{0.90, 0.80}, 0.30, "high"},
		{"strong top, weak average", []float64{0.90, 0.05}, 0.30, "medium"},
		{"moderately above gate", []float64{0.50}, 0.30, "medium"},
		{"barely above gate", []float64{0.35}, 0.30, "low"},
		{"boundary of medium", []float64{0.45}, 0.30, "medium"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, confidenceLabel(tt.scores, tt.minRelevance))
		})
	}
}

func TestTopAndAvg(t *testing.T) {
	top, avg := topAndAvg([]float64{0.2, 0.8, 0.5})
	assert.InDelta(t, 0.8, top, 0.0001)
	assert.InDelta(t, 0.5, avg, 0.0001)

	top, avg = topAndAvg(nil)
	assert.Zero(t, top)
	assert.Zero(t, avg)
}

func TestBuildPromptStructure(t *testing.T) {
	hits := []store.SearchHit{
		{Chunk: store.Chunk{Source: "irs-w2.md", Text: "Box 12 code DD reports employer health coverage."}, Score: 0.9},
	}
	prompt := buildPrompt("What is code DD?", hits)

	assert.Contains(t, prompt, "Question: What is code DD?")
	assert.Contains(t, prompt, "[1] Source: irs-w2.md")
	assert.Contains(t, prompt, "Answer: <concise answer>")
	assert.Contains(t, prompt, "Limits: <what is uncertain or missing>")
	assert.Contains(t, prompt, "Informational only, not tax advice.")
}

func TestFormatContextNumbersSections(t *testing.T) {
	hits := []store.SearchHit{
		{Chunk: store.Chunk{Source: "a.md", Text: "  first chunk  "}},
		{Chunk: store.Chunk{Source: "b.md", Text: "second chunk"}},
	}
	formatted := formatContext(hits)

	assert.Contains(t, formatted, "[1] Source: a.md\nfirst chunk")
	assert.Contains(t, formatted, "[2] Source: b.md\nsecond chunk")
}

func TestCitationsDeduplicateBySource(t *testing.T) {
	hits := []store.SearchHit{
		{Chunk: store.Chunk{Source: "a.md", Ordinal: 0, Text: "best chunk"}, Score: 0.9},
		{Chunk: store.Chunk{Source: "a.md", Ordinal: 1, Text: "second chunk"}, Score: 0.6},
		{Chunk: store.Chunk{Source: "b.md", Ordinal: 0, Text: "other doc"}, Score: 0.5},
	}
	sources := citations(hits)

	require.Len(t, sources, 2)
	assert.Equal(t, "a.md", sources[0].Path)
	assert.InDelta(t, 0.9, sources[0].Score, 0.0001)
	assert.Equal(t, "best chunk", sources[0].Snippet)
	assert.Equal(t, "b.md", sources[1].Path)
}

func TestCitationsTruncateSnippets(t *testing.T) {
	hits := []store.SearchHit{
		{Chunk: store.Chunk{Source: "long.md", Text: strings.Repeat("wages ", 100)}, Score: 0.8},
	}
	sources := citations(hits)

	require.Len(t, sources, 1)
	assert.LessOrEqual(t, len(sources[0].Snippet), snippetChars+3)
	assert.True(t, strings.HasSuffix(sources[0].Snippet, "..."))
}
