package w2

import (
	"path/filepath"
	"regexp"
	"strconv"
)

// headerWindow bounds how far into the document the year search looks;
// the tax year appears near the top of every W-2 layout seen so far.
const headerWindow = 3000

var (
	yearTokenRe   = regexp.MustCompile(`20[0-9]{2}`)
	yearPhraseRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(20[0-9]{2})\s+W-?2\b`),
		regexp.MustCompile(`(?i)\bW-?2\s+(?:for\s+)?(20[0-9]{2})\b`),
		regexp.MustCompile(`(?i)\btax\s*year\s*:?\s*(20[0-9]{2})\b`),
	}
)

// DetectTaxYear infers the applicable tax year from the source filename and
// document text. A bare year token in the filename wins outright; failing
// that, ordered header phrases are tried within the first headerWindow
// characters, then the most frequent bare year token in that window (ties
// broken by first-seen order). Returns 0 when no year-shaped token appears
// anywhere in the filename or header window.
func DetectTaxYear(filename, text string) int {
	if years := bareYearTokens(filepath.Base(filename)); len(years) > 0 {
		return mustAtoi(years[0])
	}

	header := text
	if len(header) > headerWindow {
		header = header[:headerWindow]
	}

	for _, re := range yearPhraseRes {
		if match := re.FindStringSubmatch(header); match != nil {
			return mustAtoi(match[1])
		}
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, year := range bareYearTokens(header) {
		if _, ok := firstSeen[year]; !ok {
			firstSeen[year] = i
		}
		counts[year]++
	}
	best := ""
	for year := range counts {
		if best == "" ||
			counts[year] > counts[best] ||
			(counts[year] == counts[best] && firstSeen[year] < firstSeen[best]) {
			best = year
		}
	}
	if best == "" {
		return 0
	}
	return mustAtoi(best)
}

// bareYearTokens returns 20NN tokens that are not adjacent to other digits,
// in order of appearance.
func bareYearTokens(s string) []string {
	var years []string
	for _, loc := range yearTokenRe.FindAllStringIndex(s, -1) {
		if loc[0] > 0 && isASCIIDigit(s[loc[0]-1]) {
			continue
		}
		if loc[1] < len(s) && isASCIIDigit(s[loc[1]]) {
			continue
		}
		years = append(years, s[loc[0]:loc[1]])
	}
	return years
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func mustAtoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
