package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// W2SummaryResponse is the quick-summary payload: tax year and Box 1 wages.
type W2SummaryResponse struct {
	File      string   `json:"file"`
	TaxYear   *int     `json:"tax_year,omitempty"`
	Box1Wages *float64 `json:"box1_wages,omitempty"`
}

// W2ValidationResponse carries the full parsed record and its review flags.
type W2ValidationResponse struct {
	File       string            `json:"file"`
	Record     W2Record          `json:"record"`
	Issues     []ValidationIssue `json:"issues"`
	IssueCount int               `json:"issue_count"`
}
