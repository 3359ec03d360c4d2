package w2

import (
	"regexp"
	"strconv"
	"strings"
)

// amountPattern matches dollar amounts the way they come out of PDF text
// extraction: standard decimals with optional comma grouping ("52,345.67"),
// or split-thousands sequences where the groups are separated by spaces
// ("5 262 70"). The pattern carries exactly one capturing group so it can be
// embedded in larger label patterns.
const amountPattern = `([0-9][0-9,]*(?:\.[0-9]{2})|[0-9]{1,3}\s+[0-9]{3}\s+[0-9]{2})`

var (
	splitThousandsRe = regexp.MustCompile(`^[0-9]{1,3}\s+[0-9]{3}\s+[0-9]{2}$`)
	splitGroupsRe    = regexp.MustCompile(`\b([0-9]{1,3})\s+([0-9]{3})\s+([0-9]{2})\b`)
	controlSpaceRe   = regexp.MustCompile(`[\t\r\f\v]+`)
	whitespaceRe     = regexp.MustCompile(`\s+`)
)

// ParseAmount converts a matched amount token into a float64. Split-thousands
// tokens are rewritten to decimal form first, then comma separators are
// stripped. Returns false for anything that is not a valid number after those
// transforms; callers treat that as "no value found".
func ParseAmount(raw string) (float64, bool) {
	token := strings.TrimSpace(raw)
	if splitThousandsRe.MatchString(token) {
		parts := whitespaceRe.Split(token, -1)
		token = parts[0] + parts[1] + "." + parts[2]
	}
	cleaned := strings.ReplaceAll(token, ",", "")
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// Normalize collapses whitespace noise common in PDF extraction and rewrites
// split-money sequences into comma-grouped decimal form so downstream amount
// matching treats them as ordinary numbers. Idempotent.
func Normalize(text string) string {
	squashed := controlSpaceRe.ReplaceAllString(text, " ")
	squashed = whitespaceRe.ReplaceAllString(squashed, " ")
	squashed = splitGroupsRe.ReplaceAllString(squashed, "$1,$2.$3")
	return strings.TrimSpace(squashed)
}
