package w2

import "regexp"

// KeywordSet is the compiled search strategy for one logical W-2 field.
// Each label fragment contributes three patterns, in priority order:
//
//  1. label followed by a nearby amount (same line or close by in raw text)
//  2. amount followed by the label, for PDFs where the numeric column
//     renders before the wrapped label text
//  3. label followed by an amount with a bigger gap, for heavily reflowed text
//
// Extraction tries every pattern against the raw text first, then against the
// normalized text. Raw text preserves currency symbols and punctuation that
// sometimes disambiguate; normalized text recovers cases PDF extraction
// scrambled.
type KeywordSet struct {
	patterns []*regexp.Regexp
}

// NewKeywordSet compiles the given case-insensitive label regex fragments
// into a KeywordSet. Fragments must not contain capturing groups.
func NewKeywordSet(labels ...string) KeywordSet {
	ks := KeywordSet{}
	for _, label := range labels {
		ks.patterns = append(ks.patterns,
			regexp.MustCompile(`(?i)(?:`+label+`)[^0-9$]{0,120}\$?`+amountPattern),
			regexp.MustCompile(`(?i)\$?`+amountPattern+`[^0-9A-Za-z]{0,120}(?:`+label+`)`),
			regexp.MustCompile(`(?i)(?:`+label+`)[^0-9$]{0,180}\$?`+amountPattern),
		)
	}
	return ks
}

// Extract returns the first amount associated with any of the set's labels,
// or nil when no pattern matches in either the raw or normalized pass.
// A matched span whose amount token fails to parse is treated as a non-match.
func (ks KeywordSet) Extract(text string) *float64 {
	if value := firstAmountMatch(text, ks.patterns); value != nil {
		return value
	}
	return firstAmountMatch(Normalize(text), ks.patterns)
}

func firstAmountMatch(text string, patterns []*regexp.Regexp) *float64 {
	for _, re := range patterns {
		match := re.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		if value, ok := ParseAmount(match[1]); ok {
			return &value
		}
	}
	return nil
}
