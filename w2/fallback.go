package w2

import (
	"regexp"
	"sort"
	"strings"
)

var (
	amountTokenRe   = regexp.MustCompile(amountPattern)
	reportedWagesRe = regexp.MustCompile(`(?i)reported\s+w-?2\s+wages[^0-9$]{0,40}\$?` + amountPattern)
)

// IsSubstituteForm reports whether the text looks like a simplified
// "reference copy" reissue of a W-2, where the standard box layout is gone
// and wage/tax labels are not adjacent to their values.
func IsSubstituteForm(text string) bool {
	lower := strings.ToLower(text)
	if !strings.Contains(lower, "w-2") {
		return false
	}
	return strings.Contains(lower, "copy b") || strings.Contains(lower, "employee reference copy")
}

// SubstituteFormCandidates infers wage and withholding candidates for a
// substitute-form document from the multiset of repeated amount tokens.
// Substitute forms typically repeat each headline figure across several
// summary lines, so values appearing three or more times are ranked by
// (frequency desc, value desc): the top entry is the wage candidate, and the
// withholding candidate is the first later entry under 80% of it. Either or
// both results may be nil. The withholding pick is a heuristic: nothing
// verifies the chosen value actually represents withholding.
func SubstituteFormCandidates(text string) (wage, withholding *float64) {
	if !IsSubstituteForm(text) {
		return nil, nil
	}

	counts := make(map[float64]int)
	for _, token := range amountTokenRe.FindAllString(text, -1) {
		if value, ok := ParseAmount(token); ok && value > 0 {
			counts[value]++
		}
	}

	type repeatedValue struct {
		value float64
		count int
	}
	var repeated []repeatedValue
	for value, count := range counts {
		if count >= 3 {
			repeated = append(repeated, repeatedValue{value: value, count: count})
		}
	}
	if len(repeated) == 0 {
		return nil, nil
	}

	sort.Slice(repeated, func(i, j int) bool {
		if repeated[i].count != repeated[j].count {
			return repeated[i].count > repeated[j].count
		}
		return repeated[i].value > repeated[j].value
	})

	wageValue := repeated[0].value
	wage = &wageValue
	for _, candidate := range repeated[1:] {
		if candidate.value < wageValue*0.80 {
			withholdingValue := candidate.value
			withholding = &withholdingValue
			break
		}
	}
	return wage, withholding
}

// ReportedWages looks for an explicit "Reported W-2 Wages" summary line.
// Substitute-form issuers print this as the authoritative Box 1 figure, so
// when present it overrides any keyword-extracted value.
func ReportedWages(text string) *float64 {
	for _, candidate := range []string{text, Normalize(text)} {
		match := reportedWagesRe.FindStringSubmatch(candidate)
		if match == nil {
			continue
		}
		if value, ok := ParseAmount(match[1]); ok {
			return &value
		}
	}
	return nil
}
