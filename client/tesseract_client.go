package client

import (
	"fmt"
	"os"

	"github.com/otiai10/gosseract/v2"
)

// TesseractClient runs local OCR through the tesseract library. It is an
// optional capability: callers check Available before invoking extraction
// instead of catching failures.
type TesseractClient struct {
	tessdataPrefix string
}

func NewTesseractClient(tessdataPrefix string) *TesseractClient {
	return &TesseractClient{
		tessdataPrefix: tessdataPrefix,
	}
}

// Available reports whether the configured tessdata directory exists.
func (tc *TesseractClient) Available() bool {
	if tc == nil {
		return false
	}
	if tc.tessdataPrefix == "" {
		return true
	}
	info, err := os.Stat(tc.tessdataPrefix)
	return err == nil && info.IsDir()
}

// ExtractTextFromImage extracts text from an image file using Tesseract OCR.
func (tc *TesseractClient) ExtractTextFromImage(filePath string) (string, error) {
	text, _, err := tc.ExtractTextAndQuality(filePath)
	return text, err
}

// ExtractTextAndQuality extracts text plus an average word-confidence score.
func (tc *TesseractClient) ExtractTextAndQuality(filePath string) (string, float64, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if tc.tessdataPrefix != "" {
		client.SetTessdataPrefix(tc.tessdataPrefix)
	}
	if err := client.SetLanguage("eng"); err != nil {
		return "", 0, fmt.Errorf("failed to set language: %w", err)
	}

	if err := client.SetImage(filePath); err != nil {
		return "", 0, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", 0, fmt.Errorf("failed to extract text: %w", err)
	}

	// Bounding boxes give per-word confidence; if they fail, keep the text.
	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return text, 0, nil
	}

	var totalConf float64
	var count int
	for _, box := range boxes {
		totalConf += box.Confidence
		count++
	}

	avgConf := 0.0
	if count > 0 {
		avgConf = totalConf / float64(count)
	}

	return text, avgConf, nil
}
