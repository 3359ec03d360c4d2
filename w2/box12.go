package w2

import (
	"regexp"
	"strings"

	"github.com/kmehta-dev/w2-review-agent/dto"
)

var (
	// Strong signal: explicit box slot labels, e.g. "12a D 5000.00".
	box12SlotRe = regexp.MustCompile(`\b12[abcd]?\s*[:\-]?\s*([A-Za-z]{1,2})\s+\$?` + amountPattern)
	// Inline mentions like "D - Box 12 ... 2,000.00".
	box12InlineRe = regexp.MustCompile(`(?i)\b([A-Za-z]{1,2})\s*[-:]?\s*box\s*12[^0-9$]{0,50}\$?` + amountPattern)
	// Loose fallback for any line that references box 12 at all.
	box12PairRe = regexp.MustCompile(`\b([A-Za-z]{1,2})\s+\$?` + amountPattern)
)

// ExtractBox12Codes scans the text line by line for Box 12 compensation
// code/amount pairs. Candidates from all heuristics are deduplicated by
// exact (code, amount) identity, preserving first-seen order. Returns an
// empty slice, never nil, when nothing is found: "no codes present" is a
// valid, reportable state.
func ExtractBox12Codes(text string) []dto.Box12Code {
	var candidates []dto.Box12Code
	lines := strings.Split(text, "\n")

	for _, line := range lines {
		for _, match := range box12SlotRe.FindAllStringSubmatch(line, -1) {
			if value, ok := ParseAmount(match[2]); ok {
				candidates = append(candidates, dto.Box12Code{Code: strings.ToUpper(match[1]), Amount: value})
			}
		}
		for _, match := range box12InlineRe.FindAllStringSubmatch(line, -1) {
			if value, ok := ParseAmount(match[2]); ok {
				candidates = append(candidates, dto.Box12Code{Code: strings.ToUpper(match[1]), Amount: value})
			}
		}
	}

	for _, line := range lines {
		if !strings.Contains(strings.ToLower(line), "box 12") && !strings.Contains(line, "12") {
			continue
		}
		for _, match := range box12PairRe.FindAllStringSubmatch(line, -1) {
			if value, ok := ParseAmount(match[2]); ok {
				candidates = append(candidates, dto.Box12Code{Code: strings.ToUpper(match[1]), Amount: value})
			}
		}
	}

	deduped := make([]dto.Box12Code, 0, len(candidates))
	seen := make(map[dto.Box12Code]bool)
	for _, candidate := range candidates {
		if seen[candidate] {
			continue
		}
		seen[candidate] = true
		deduped = append(deduped, candidate)
	}
	return deduped
}
