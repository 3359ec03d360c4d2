package w2

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kmehta-dev/w2-review-agent/dto"
)

func fptr(v float64) *float64 {
	return &v
}

func issueCodes(issues []dto.ValidationIssue) []string {
	codes := make([]string, 0, len(issues))
	for _, issue := range issues {
		codes = append(codes, issue.Code)
	}
	return codes
}

func completeRecord() dto.W2Record {
	return dto.W2Record{
		Box1Wages:          fptr(52345.67),
		Box2FedWithholding: fptr(6789.01),
		Box3SSWages:        fptr(52345.67),
		Box5MedicareWages:  fptr(52345.67),
		Box12Codes:         []dto.Box12Code{{Code: "D", Amount: 2000.00}},
	}
}

func TestValidateFieldsCleanRecord(t *testing.T) {
	issues := ValidateFields(completeRecord())
	assert.Empty(t, issues)
}

func TestValidateFieldsHighWithholdingRatio(t *testing.T) {
	record := completeRecord()
	record.Box1Wages = fptr(1000.00)
	record.Box2FedWithholding = fptr(800.00)
	record.Box3SSWages = fptr(1000.00)
	record.Box5MedicareWages = fptr(1000.00)

	codes := issueCodes(ValidateFields(record))
	assert.Contains(t, codes, "HIGH_WITHHOLDING_RATIO")
	assert.NotContains(t, codes, "ZERO_WITHHOLDING")
}

func TestValidateFieldsZeroWithholding(t *testing.T) {
	record := completeRecord()
	record.Box1Wages = fptr(1000.00)
	record.Box2FedWithholding = fptr(0.00)
	record.Box3SSWages = fptr(1000.00)
	record.Box5MedicareWages = fptr(1000.00)

	codes := issueCodes(ValidateFields(record))
	assert.Contains(t, codes, "ZERO_WITHHOLDING")
	assert.NotContains(t, codes, "HIGH_WITHHOLDING_RATIO")
}

func TestValidateFieldsAllMissing(t *testing.T) {
	record := dto.W2Record{Box12Codes: []dto.Box12Code{}}
	issues := ValidateFields(record)

	codes := issueCodes(issues)
	assert.Contains(t, codes, "MISSING_FIELD")
	assert.Contains(t, codes, "BOX12_NOT_FOUND")
	assert.NotContains(t, codes, "ZERO_WITHHOLDING")
	assert.NotContains(t, codes, "HIGH_WITHHOLDING_RATIO")
	assert.NotContains(t, codes, "LOW_BOX3_VS_BOX1")
	assert.NotContains(t, codes, "LOW_BOX5_VS_BOX1")

	missing := 0
	for _, issue := range issues {
		if issue.Code == "MISSING_FIELD" {
			missing++
			assert.Equal(t, dto.LevelWarn, issue.Level)
		}
	}
	assert.Equal(t, 4, missing)
}

func TestValidateFieldsNegativeAmount(t *testing.T) {
	record := completeRecord()
	record.Box2FedWithholding = fptr(-10.00)

	codes := issueCodes(ValidateFields(record))
	assert.Contains(t, codes, "NEGATIVE_AMOUNT")
}

func TestValidateFieldsLowSSAndMedicareWages(t *testing.T) {
	record := completeRecord()
	record.Box1Wages = fptr(100000.00)
	record.Box3SSWages = fptr(20000.00)
	record.Box5MedicareWages = fptr(20000.00)

	codes := issueCodes(ValidateFields(record))
	assert.Contains(t, codes, "LOW_BOX3_VS_BOX1")
	assert.Contains(t, codes, "LOW_BOX5_VS_BOX1")
}

func TestValidateFieldsStateAndLocalMissingWages(t *testing.T) {
	record := completeRecord()
	record.StateWithholding = fptr(2100.00)
	record.LocalWithholding = fptr(523.45)

	codes := issueCodes(ValidateFields(record))
	assert.Contains(t, codes, "STATE_MISSING_WAGES")
	assert.Contains(t, codes, "LOCAL_MISSING_WAGES")
}

func TestValidateFieldsBox12InfoLevel(t *testing.T) {
	record := completeRecord()
	record.Box12Codes = []dto.Box12Code{}

	issues := ValidateFields(record)
	assert.Equal(t, []dto.ValidationIssue{{
		Level:   dto.LevelInfo,
		Code:    "BOX12_NOT_FOUND",
		Message: "No Box 12 codes were detected. This may be normal for some employees.",
	}}, issues)
}

func TestValidateFieldsOrderIsRuleDeclarationOrder(t *testing.T) {
	record := dto.W2Record{
		Box1Wages:          fptr(1000.00),
		Box2FedWithholding: fptr(800.00),
		Box3SSWages:        fptr(100.00),
		Box5MedicareWages:  nil,
		Box12Codes:         []dto.Box12Code{},
	}

	codes := issueCodes(ValidateFields(record))
	assert.Equal(t, []string{
		"MISSING_FIELD",
		"HIGH_WITHHOLDING_RATIO",
		"LOW_BOX3_VS_BOX1",
		"BOX12_NOT_FOUND",
	}, codes)
}
