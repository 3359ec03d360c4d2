package client

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// RemoteOCRClient calls an OCR sidecar over HTTP (PaddleOCR-compatible REST
// API: a base64-encoded image in, recognized lines out). It is an optional
// capability like TesseractClient; an unconfigured client reports itself
// unavailable rather than failing per call.
type RemoteOCRClient struct {
	apiURL     string
	httpClient *http.Client
}

func NewRemoteOCRClient(apiURL string) *RemoteOCRClient {
	return &RemoteOCRClient{
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// Available reports whether a sidecar endpoint was configured.
func (c *RemoteOCRClient) Available() bool {
	return c != nil && c.apiURL != ""
}

// ExtractTextFromImage sends an image file to the OCR sidecar and returns
// the recognized text, one line per detected text region.
func (c *RemoteOCRClient) ExtractTextFromImage(filePath string) (string, error) {
	imageBytes, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read image file: %w", err)
	}

	payload := map[string]interface{}{
		"images": []string{base64.StdEncoding.EncodeToString(imageBytes)},
	}
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request payload: %w", err)
	}

	resp, err := c.httpClient.Post(c.apiURL, "application/json", bytes.NewBuffer(payloadBytes))
	if err != nil {
		return "", fmt.Errorf("failed to call OCR API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("OCR API returned status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Results [][]struct {
			Text       string  `json:"text"`
			Confidence float64 `json:"confidence"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode OCR response: %w", err)
	}

	var textBuilder strings.Builder
	if len(result.Results) > 0 {
		for _, line := range result.Results[0] {
			textBuilder.WriteString(line.Text)
			textBuilder.WriteString("\n")
		}
	}

	extracted := textBuilder.String()
	if strings.TrimSpace(extracted) == "" {
		return "", fmt.Errorf("OCR API extracted no text from image")
	}
	return extracted, nil
}
