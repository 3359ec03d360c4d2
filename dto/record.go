package dto

// W2Record is the structured result of parsing one W-2 document. Numeric
// fields are nil when extraction found no value; values are taken verbatim
// from the source text except for the substitute-form fallback, which is an
// explicit heuristic estimate. Box12Codes entries are unique by
// (code, amount) and ordered by first appearance in the text.
type W2Record struct {
	Box1Wages          *float64    `json:"box1_wages"`
	Box2FedWithholding *float64    `json:"box2_fed_withholding"`
	Box3SSWages        *float64    `json:"box3_ss_wages"`
	Box5MedicareWages  *float64    `json:"box5_medicare_wages"`
	StateWages         *float64    `json:"state_wages"`
	StateWithholding   *float64    `json:"state_withholding"`
	LocalWages         *float64    `json:"local_wages"`
	LocalWithholding   *float64    `json:"local_withholding"`
	Box12Codes         []Box12Code `json:"box12_codes"`
}

// Box12Code is one compensation code/amount pair from Box 12.
type Box12Code struct {
	Code   string  `json:"code"`
	Amount float64 `json:"amount"`
}

// IssueLevel ranks validation issues. There is no hard error level: the
// validator never asserts ground truth, it only raises review flags.
type IssueLevel string

const (
	LevelInfo IssueLevel = "info"
	LevelWarn IssueLevel = "warn"
)

// ValidationIssue is one plausibility finding. Code is a stable
// machine-readable identifier; Message is human-readable guidance.
type ValidationIssue struct {
	Level   IssueLevel `json:"level"`
	Code    string     `json:"code"`
	Message string     `json:"message"`
}
