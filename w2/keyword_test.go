package w2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wagesKeywords = NewKeywordSet(
	`(?:box\s*1|\b1\b)\s*wages(?:,?\s*tips)?(?:,?\s*other\s*compensation)?`,
	`box\s*1\s*of\s*w-?2`,
)

func TestKeywordExtractLabelFirst(t *testing.T) {
	value := wagesKeywords.Extract("1 Wages, tips, other compensation 52,345.67")
	require.NotNil(t, value)
	assert.InDelta(t, 52345.67, *value, 0.0001)
}

func TestKeywordExtractWithDollarSign(t *testing.T) {
	value := wagesKeywords.Extract("Box 1 Wages: $52,345.67")
	require.NotNil(t, value)
	assert.InDelta(t, 52345.67, *value, 0.0001)
}

func TestKeywordExtractValueFirst(t *testing.T) {
	// Some PDFs render the numeric column before the wrapped label text.
	value := wagesKeywords.Extract("52,345.67\nBox 1 Wages")
	require.NotNil(t, value)
	assert.InDelta(t, 52345.67, *value, 0.0001)
}

func TestKeywordExtractNormalizedFallback(t *testing.T) {
	// Split-thousands artifact from PDF extraction.
	value := wagesKeywords.Extract("Box 1 Wages\n5 262 70")
	require.NotNil(t, value)
	assert.InDelta(t, 5262.70, *value, 0.0001)
}

func TestKeywordExtractAlternativePhrasing(t *testing.T) {
	value := wagesKeywords.Extract("The amount in box 1 of W-2 is 41,000.00 this year")
	require.NotNil(t, value)
	assert.InDelta(t, 41000.00, *value, 0.0001)
}

func TestKeywordExtractNoMatch(t *testing.T) {
	assert.Nil(t, wagesKeywords.Extract("no amounts or labels here"))
	assert.Nil(t, wagesKeywords.Extract("wages mentioned but no number follows"))
}
