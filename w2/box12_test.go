package w2

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kmehta-dev/w2-review-agent/dto"
)

func TestExtractBox12SlotNotation(t *testing.T) {
	codes := ExtractBox12Codes("12a D 2,000.00\n12b DD 426.83")

	assert.Equal(t, []dto.Box12Code{
		{Code: "D", Amount: 2000.00},
		{Code: "DD", Amount: 426.83},
	}, codes)
}

func TestExtractBox12InlineNotation(t *testing.T) {
	codes := ExtractBox12Codes("DD - Box 12 employer health coverage 9,210.55")

	assert.Equal(t, []dto.Box12Code{
		{Code: "DD", Amount: 9210.55},
	}, codes)
}

func TestExtractBox12LooseFallback(t *testing.T) {
	codes := ExtractBox12Codes("Box 12 entries: W 1,500.00")

	assert.Contains(t, codes, dto.Box12Code{Code: "W", Amount: 1500.00})
}

func TestExtractBox12DeduplicatesAcrossHeuristics(t *testing.T) {
	// The slot line also satisfies the loose fallback; the pair counts once.
	codes := ExtractBox12Codes("12a: D 5,000.00")

	assert.Equal(t, []dto.Box12Code{
		{Code: "D", Amount: 5000.00},
	}, codes)
}

func TestExtractBox12Idempotent(t *testing.T) {
	text := "12a D 2,000.00\n12b DD 426.83\nD in box 12 is 2,000.00"
	first := ExtractBox12Codes(text)
	second := ExtractBox12Codes(text)

	assert.Equal(t, first, second)
}

func TestExtractBox12Empty(t *testing.T) {
	codes := ExtractBox12Codes("no compensation codes anywhere")

	assert.NotNil(t, codes)
	assert.Empty(t, codes)
}

func TestExtractBox12UppercasesCodes(t *testing.T) {
	codes := ExtractBox12Codes("12c dd 1,234.00")

	assert.Equal(t, []dto.Box12Code{
		{Code: "DD", Amount: 1234.00},
	}, codes)
}
