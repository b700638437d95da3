package resumes

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/extract"
	"resume-builder/internal/llm"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
)

const maxUploadBytes = 10 << 20

// Handler wires HTTP handlers to the resume import service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes/upload", h.upload)
}

func (h *Handler) upload(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	data, fileName, mimeType, ok := readUpload(c)
	if !ok {
		return
	}

	rec, err := h.Svc.Import(c.Request.Context(), userID, fileName, mimeType, data)
	if err != nil {
		respondPipelineError(c, err)
		return
	}

	respond.Data(c, rec)
}

// readUpload pulls the multipart "resume" field, enforcing the size cap.
func readUpload(c *gin.Context) (data []byte, fileName, mimeType string, ok bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume file is required", nil)
		return nil, "", "", false
	}
	if fileHeader.Size > maxUploadBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "resume file exceeds the 10MB limit", nil)
		return nil, "", "", false
	}

	f, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "could not read resume file", nil)
		return nil, "", "", false
	}
	defer f.Close()

	data, err = io.ReadAll(f)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "could not read resume file", nil)
		return nil, "", "", false
	}

	return data, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), true
}

// respondPipelineError maps pipeline failures onto the error envelope without
// leaking provider detail.
func respondPipelineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, extract.ErrUnsupportedType):
		respond.Error(c, http.StatusBadRequest, "unsupported_file_type", "only PDF, DOC and DOCX files are supported", nil)
	case errors.Is(err, extract.ErrExtractFailed):
		respond.Error(c, http.StatusBadRequest, "extraction_failed", "could not extract text from the file", nil)
	case errors.Is(err, extract.ErrNoText):
		respond.Error(c, http.StatusBadRequest, "no_text_extracted", "the file contains no extractable text", nil)
	case errors.Is(err, llm.ErrGenerationFailed), errors.Is(err, llm.ErrNotConfigured):
		respond.Error(c, http.StatusBadGateway, "generation_failed", "the AI service is currently unavailable", nil)
	case errors.Is(err, llm.ErrInvalidResponse):
		respond.Error(c, http.StatusBadGateway, "invalid_ai_response", "the AI service returned an unusable response", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to process resume", nil)
	}
}
