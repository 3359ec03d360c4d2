package w2

import (
	"fmt"

	"github.com/kmehta-dev/w2-review-agent/dto"
)

// ValidateFields applies the plausibility rule battery to a parsed record
// and returns review flags in rule-declaration order. Rules are evaluated
// independently; ratio and comparison rules only fire when both operands
// were detected, so a missing field suppresses those without suppressing
// MISSING_FIELD itself.
func ValidateFields(record dto.W2Record) []dto.ValidationIssue {
	issues := []dto.ValidationIssue{}

	requiredNumeric := []struct {
		name  string
		value *float64
	}{
		{"box1_wages", record.Box1Wages},
		{"box2_fed_withholding", record.Box2FedWithholding},
		{"box3_ss_wages", record.Box3SSWages},
		{"box5_medicare_wages", record.Box5MedicareWages},
	}
	for _, field := range requiredNumeric {
		if field.value == nil {
			issues = append(issues, dto.ValidationIssue{
				Level:   dto.LevelWarn,
				Code:    "MISSING_FIELD",
				Message: fmt.Sprintf("%s was not detected. Verify OCR/parsing and source document quality.", field.name),
			})
		} else if *field.value < 0 {
			issues = append(issues, dto.ValidationIssue{
				Level:   dto.LevelWarn,
				Code:    "NEGATIVE_AMOUNT",
				Message: fmt.Sprintf("%s is negative (%.2f), which is unusual for W-2 summary fields.", field.name, *field.value),
			})
		}
	}

	box1 := record.Box1Wages
	box2 := record.Box2FedWithholding
	box3 := record.Box3SSWages
	box5 := record.Box5MedicareWages

	if box1 != nil && box2 != nil {
		if *box1 > 0 && *box2 == 0 {
			issues = append(issues, dto.ValidationIssue{
				Level:   dto.LevelWarn,
				Code:    "ZERO_WITHHOLDING",
				Message: "Box 2 is 0 while Box 1 is positive. Confirm withholding setup and payroll records.",
			})
		}
		if *box1 > 0 && *box2 / *box1 > 0.60 {
			issues = append(issues, dto.ValidationIssue{
				Level:   dto.LevelWarn,
				Code:    "HIGH_WITHHOLDING_RATIO",
				Message: "Federal withholding appears very high relative to wages. Review for possible data issues.",
			})
		}
	}

	if box1 != nil && box3 != nil && *box1 > 0 && *box3 < *box1*0.50 {
		issues = append(issues, dto.ValidationIssue{
			Level:   dto.LevelWarn,
			Code:    "LOW_BOX3_VS_BOX1",
			Message: "Box 3 is much lower than Box 1. Confirm Social Security wage treatment.",
		})
	}

	if box1 != nil && box5 != nil && *box1 > 0 && *box5 < *box1*0.50 {
		issues = append(issues, dto.ValidationIssue{
			Level:   dto.LevelWarn,
			Code:    "LOW_BOX5_VS_BOX1",
			Message: "Box 5 is much lower than Box 1. Confirm Medicare wage treatment.",
		})
	}

	if record.StateWithholding != nil && *record.StateWithholding > 0 && record.StateWages == nil {
		issues = append(issues, dto.ValidationIssue{
			Level:   dto.LevelWarn,
			Code:    "STATE_MISSING_WAGES",
			Message: "State withholding is present but state wages were not detected.",
		})
	}
	if record.LocalWithholding != nil && *record.LocalWithholding > 0 && record.LocalWages == nil {
		issues = append(issues, dto.ValidationIssue{
			Level:   dto.LevelWarn,
			Code:    "LOCAL_MISSING_WAGES",
			Message: "Local withholding is present but local wages were not detected.",
		})
	}

	if record.Box12Codes != nil && len(record.Box12Codes) == 0 {
		issues = append(issues, dto.ValidationIssue{
			Level:   dto.LevelInfo,
			Code:    "BOX12_NOT_FOUND",
			Message: "No Box 12 codes were detected. This may be normal for some employees.",
		})
	}

	return issues
}
