package w2

import "github.com/kmehta-dev/w2-review-agent/dto"

// Label fragment tables per logical field. Each fragment is an alternative
// phrasing of the field's label as it appears across W-2 layouts; fragments
// are tried in order, so put the most specific phrasing first.
var (
	box1Keywords = NewKeywordSet(
		`(?:box\s*1|\b1\b)\s*wages(?:,?\s*tips)?(?:,?\s*other\s*compensation)?`,
		`box\s*1\s*of\s*w-?2`,
	)
	box2Keywords = NewKeywordSet(
		`(?:box\s*2|\b2\b)\s*federal\s*income\s*tax\s*withheld`,
		`box\s*2\s*of\s*w-?2`,
	)
	box3Keywords = NewKeywordSet(
		`(?:box\s*3|\b3\b)\s*social\s*security\s*wages`,
		`box\s*3\s*of\s*w-?2`,
	)
	box5Keywords = NewKeywordSet(
		`(?:box\s*5|\b5\b)\s*medicare\s*wages(?:\s*and\s*tips)?`,
		`box\s*5\s*of\s*w-?2`,
	)
	stateWagesKeywords = NewKeywordSet(
		`state\s*wages(?:,?\s*tips)?(?:,?\s*etc\.?)*`,
		`(?:box\s*16|\b16\b)\s*state\s*wages`,
	)
	stateWithholdingKeywords = NewKeywordSet(
		`state\s*income\s*tax`,
		`(?:box\s*17|\b17\b)\s*state\s*income\s*tax`,
	)
	localWagesKeywords = NewKeywordSet(
		`local\s*wages(?:,?\s*tips)?(?:,?\s*etc\.?)*`,
		`(?:box\s*18|\b18\b)\s*local\s*wages`,
	)
	localWithholdingKeywords = NewKeywordSet(
		`local\s*income\s*tax`,
		`(?:box\s*19|\b19\b)\s*local\s*income\s*tax`,
	)
)

// ParseFields extracts every logical W-2 field from the text and returns a
// complete record. Absent fields are nil, never an error. Substitute-form
// candidates backfill Social Security and Medicare wages (wage candidate)
// and federal withholding (withholding candidate) only where keyword
// extraction came up empty; an explicit "Reported W-2 Wages" line replaces
// Box 1 unconditionally.
func ParseFields(text string) dto.W2Record {
	record := dto.W2Record{
		Box1Wages:          box1Keywords.Extract(text),
		Box2FedWithholding: box2Keywords.Extract(text),
		Box3SSWages:        box3Keywords.Extract(text),
		Box5MedicareWages:  box5Keywords.Extract(text),
		StateWages:         stateWagesKeywords.Extract(text),
		StateWithholding:   stateWithholdingKeywords.Extract(text),
		LocalWages:         localWagesKeywords.Extract(text),
		LocalWithholding:   localWithholdingKeywords.Extract(text),
		Box12Codes:         ExtractBox12Codes(text),
	}

	wage, withholding := SubstituteFormCandidates(text)
	if wage != nil {
		if record.Box3SSWages == nil {
			record.Box3SSWages = cloneFloat(wage)
		}
		if record.Box5MedicareWages == nil {
			record.Box5MedicareWages = cloneFloat(wage)
		}
	}
	if withholding != nil && record.Box2FedWithholding == nil {
		record.Box2FedWithholding = cloneFloat(withholding)
	}

	if reported := ReportedWages(text); reported != nil {
		record.Box1Wages = reported
	}

	return record
}

func cloneFloat(v *float64) *float64 {
	value := *v
	return &value
}
