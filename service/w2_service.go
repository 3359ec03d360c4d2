package service

import (
	"path/filepath"

	"github.com/kmehta-dev/w2-review-agent/dto"
	"github.com/kmehta-dev/w2-review-agent/w2"
)

// W2Service runs the extraction and validation pipeline over loaded
// documents. It owns no state beyond its collaborators; every call is a
// fresh parse of the file's text.
type W2Service struct {
	documents *DocumentService
}

func NewW2Service(documents *DocumentService) *W2Service {
	return &W2Service{
		documents: documents,
	}
}

// Summarize loads a W-2 file and reports its tax year and Box 1 wages.
func (s *W2Service) Summarize(path string) (*dto.W2SummaryResponse, error) {
	text, err := s.documents.LoadText(path)
	if err != nil {
		return nil, err
	}

	record := w2.ParseFields(text)
	response := &dto.W2SummaryResponse{
		File:      path,
		Box1Wages: record.Box1Wages,
	}
	if year := w2.DetectTaxYear(filepath.Base(path), text); year != 0 {
		response.TaxYear = &year
	}
	return response, nil
}

// Validate loads a W-2 file, parses every field, and applies the
// plausibility rule battery.
func (s *W2Service) Validate(path string) (*dto.W2ValidationResponse, error) {
	text, err := s.documents.LoadText(path)
	if err != nil {
		return nil, err
	}

	record := w2.ParseFields(text)
	issues := w2.ValidateFields(record)

	return &dto.W2ValidationResponse{
		File:       path,
		Record:     record,
		Issues:     issues,
		IssueCount: len(issues),
	}, nil
}
