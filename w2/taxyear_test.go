package w2

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectTaxYearFromFilename(t *testing.T) {
	// Filename signal wins over anything in the body.
	year := DetectTaxYear("2025 Employer 2025 W-2.pdf", "Tax Year: 2019")
	assert.Equal(t, 2025, year)
}

func TestDetectTaxYearIgnoresDigitRuns(t *testing.T) {
	// 120251 is not a bare year token.
	year := DetectTaxYear("scan-120251.pdf", "W-2 for 2024")
	assert.Equal(t, 2024, year)
}

func TestDetectTaxYearHeaderPhrases(t *testing.T) {
	assert.Equal(t, 2023, DetectTaxYear("w2.txt", "2023 W-2 Wage and Tax Statement"))
	assert.Equal(t, 2022, DetectTaxYear("w2.txt", "Form W-2 for 2022"))
	assert.Equal(t, 2021, DetectTaxYear("w2.txt", "Employer Copy\nTax Year: 2021"))
}

func TestDetectTaxYearMostFrequent(t *testing.T) {
	text := "issued 2020 covering 2024 and 2024 again 2024"
	assert.Equal(t, 2024, DetectTaxYear("w2.txt", text))
}

func TestDetectTaxYearHeaderWindowOnly(t *testing.T) {
	// A year beyond the header window does not count.
	text := strings.Repeat("x", headerWindow) + " Tax Year: 2024"
	assert.Equal(t, 0, DetectTaxYear("w2.txt", text))
}

func TestDetectTaxYearNone(t *testing.T) {
	assert.Equal(t, 0, DetectTaxYear("w2.txt", "no year tokens at all"))
}
