package handler

import (
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/kmehta-dev/w2-review-agent/dto"
	"github.com/kmehta-dev/w2-review-agent/service"
)

type W2Handler struct {
	w2Service *service.W2Service
}

func NewW2Handler(w2Service *service.W2Service) *W2Handler {
	return &W2Handler{
		w2Service: w2Service,
	}
}

// SummarizeW2 handles the POST /w2/summary endpoint
func (h *W2Handler) SummarizeW2(c *gin.Context) {
	log.Println("Received W-2 summary request")

	tempPath, cleanup, ok := h.receiveUpload(c)
	if !ok {
		return
	}
	defer cleanup()

	response, err := h.w2Service.Summarize(tempPath)
	if err != nil {
		h.sendLoadError(c, err)
		return
	}

	// Reflect the uploaded filename rather than the temp path.
	response.File = uploadedFilename(c)
	c.JSON(http.StatusOK, response)
}

// ValidateW2 handles the POST /w2/validate endpoint
func (h *W2Handler) ValidateW2(c *gin.Context) {
	log.Println("Received W-2 validation request")

	tempPath, cleanup, ok := h.receiveUpload(c)
	if !ok {
		return
	}
	defer cleanup()

	response, err := h.w2Service.Validate(tempPath)
	if err != nil {
		h.sendLoadError(c, err)
		return
	}

	response.File = uploadedFilename(c)
	log.Printf("W-2 validation completed with %d issues", response.IssueCount)
	c.JSON(http.StatusOK, response)
}

// receiveUpload saves the multipart "file" field to a temp file carrying the
// original extension, so the loader can dispatch on it. The uploaded
// filename is stashed on the context for tax-year detection and responses.
func (h *W2Handler) receiveUpload(c *gin.Context) (string, func(), bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "No file provided", err)
		return "", nil, false
	}

	// The temp copy keeps the uploaded base name so filename-based tax-year
	// detection and extension dispatch both work.
	dir, err := os.MkdirTemp("", "w2-upload")
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to store upload", err)
		return "", nil, false
	}
	tempPath := filepath.Join(dir, filepath.Base(fileHeader.Filename))

	if err := c.SaveUploadedFile(fileHeader, tempPath); err != nil {
		os.RemoveAll(dir)
		h.sendError(c, http.StatusInternalServerError, "Failed to store upload", err)
		return "", nil, false
	}

	c.Set("uploaded_filename", fileHeader.Filename)
	return tempPath, func() { os.RemoveAll(dir) }, true
}

func uploadedFilename(c *gin.Context) string {
	if name, ok := c.Get("uploaded_filename"); ok {
		if s, ok := name.(string); ok {
			return s
		}
	}
	return ""
}

// sendLoadError maps loader failures onto HTTP statuses: unsupported or
// unreadable input is the client's problem, anything else is ours.
func (h *W2Handler) sendLoadError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrUnsupportedFileType) {
		h.sendError(c, http.StatusBadRequest, "Unsupported file type", err)
		return
	}
	h.sendError(c, http.StatusUnprocessableEntity, "Could not read W-2 file", err)
}

// sendError sends a structured error response
func (h *W2Handler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "W2_REVIEW_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
