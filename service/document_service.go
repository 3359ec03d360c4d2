package service

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/kmehta-dev/w2-review-agent/w2"
)

// ErrUnsupportedFileType is returned for paths whose extension the loader
// does not handle.
var ErrUnsupportedFileType = errors.New("unsupported file type: use .pdf, .txt, or .md")

// OCRClient is an optional text-recognition capability. Implementations
// report availability up front; extraction errors on an available client are
// still treated as "fallback unavailable" by the document service.
type OCRClient interface {
	Available() bool
	ExtractTextFromImage(filePath string) (string, error)
}

// Anchor phrases used to judge whether a text extraction plausibly came from
// a W-2. Fewer than two of these present means the extraction is suspect.
var anchorPhrases = []string{
	"wages",
	"federal income tax",
	"social security",
	"medicare",
	"employer",
	"employee",
	"w-2",
	"box",
}

// minNormalizedLength is the normalized-text size below which a PDF
// extraction is considered low quality.
const minNormalizedLength = 400

// DocumentService loads document text for the extraction core. PDF text
// extraction is primary; when its quality looks poor, page images are OCRed
// through the configured clients and the OCR text is substituted only if it
// recovers at least 75% of the primary's normalized length. Every failure on
// the OCR path degrades silently to the primary text.
type DocumentService struct {
	pdfProcessor PDFProcessor
	ocrClients   []OCRClient
}

func NewDocumentService(pdfProcessor PDFProcessor, ocrClients ...OCRClient) *DocumentService {
	return &DocumentService{
		pdfProcessor: pdfProcessor,
		ocrClients:   ocrClients,
	}
}

// LoadText returns the text content of the file at path. Plain text and
// markdown files are returned as-is; PDFs are extracted page by page with
// pages joined by newlines. Any other extension is an ErrUnsupportedFileType.
func (s *DocumentService) LoadText(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		return string(data), nil
	case ".pdf":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		text, err := s.pdfProcessor.ExtractText(data)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from %s: %w", path, err)
		}
		if isLowQuality(text) {
			if ocrText := s.ocrPDF(data); acceptOCRText(text, ocrText) {
				log.Printf("Using OCR text for %s: primary extraction looked low quality", path)
				return ocrText, nil
			}
		}
		return text, nil
	default:
		return "", ErrUnsupportedFileType
	}
}

// isLowQuality flags extractions that are too short or missing the label
// vocabulary a W-2 always carries.
func isLowQuality(text string) bool {
	normalized := w2.Normalize(text)
	if len(normalized) < minNormalizedLength {
		return true
	}
	lower := strings.ToLower(normalized)
	found := 0
	for _, phrase := range anchorPhrases {
		if strings.Contains(lower, phrase) {
			found++
		}
	}
	return found < 2
}

// acceptOCRText decides whether OCR output should replace the primary
// extraction: it must recover at least 75% of the primary's normalized
// length, so a failed OCR run never displaces partial-but-real text.
func acceptOCRText(primary, ocrText string) bool {
	if strings.TrimSpace(ocrText) == "" {
		return false
	}
	return float64(len(w2.Normalize(ocrText))) >= 0.75*float64(len(w2.Normalize(primary)))
}

// ocrPDF extracts page images and runs them through the OCR clients in
// order, first available client per image wins. Returns "" when nothing
// could be recognized; errors are logged and swallowed.
func (s *DocumentService) ocrPDF(pdfData []byte) string {
	images, err := s.pdfProcessor.ExtractImages(pdfData)
	if err != nil || len(images) == 0 {
		if err != nil {
			log.Printf("Failed to extract images from PDF: %v", err)
		}
		return ""
	}

	var combined strings.Builder
	for _, img := range images {
		tempImgFile, err := saveImageToTempFile(img)
		if err != nil {
			log.Printf("Failed to save temporary image for OCR: %v", err)
			continue
		}

		pageText := s.ocrImageFile(tempImgFile)
		os.Remove(tempImgFile)

		if strings.TrimSpace(pageText) == "" {
			continue
		}
		combined.WriteString(pageText)
		combined.WriteString("\n")
	}
	return combined.String()
}

func (s *DocumentService) ocrImageFile(path string) string {
	for _, ocrClient := range s.ocrClients {
		if ocrClient == nil || !ocrClient.Available() {
			continue
		}
		text, err := ocrClient.ExtractTextFromImage(path)
		if err != nil {
			log.Printf("OCR failed for %s: %v", path, err)
			continue
		}
		if strings.TrimSpace(text) != "" {
			return text
		}
	}
	return ""
}

// saveImageToTempFile saves an image.Image to a temporary PNG file.
func saveImageToTempFile(img image.Image) (string, error) {
	tempFile, err := os.CreateTemp("", "ocr-img-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp image file: %w", err)
	}
	defer tempFile.Close()

	if err := png.Encode(tempFile, img); err != nil {
		os.Remove(tempFile.Name())
		return "", fmt.Errorf("failed to encode image to PNG: %w", err)
	}

	return tempFile.Name(), nil
}
