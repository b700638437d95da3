package analyses

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

// Handler wires HTTP handlers to the analysis service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes/analyze", h.analyze)
}

func (h *Handler) analyze(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume file is required", nil)
		return
	}
	if fileHeader.Size > maxUploadBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "resume file exceeds the 10MB limit", nil)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "could not read resume file", nil)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "could not read resume file", nil)
		return
	}

	result, err := h.Svc.Analyze(c.Request.Context(), userID, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		respondAnalysisError(c, err)
		return
	}

	respond.Data(c, result)
}

func respondAnalysisError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, extract.ErrUnsupportedType):
		respond.Error(c, http.StatusBadRequest, "unsupported_file_type", "only PDF, DOC and DOCX files are supported", nil)
	case errors.Is(err, extract.ErrExtractFailed):
		respond.Error(c, http.StatusBadRequest, "extraction_failed", "could not extract text from the file", nil)
	case errors.Is(err, extract.ErrNoText):
		respond.Error(c, http.StatusBadRequest, "no_text_extracted", "the file contains no extractable text", nil)
	case errors.Is(err, ErrInvalidShape):
		respond.Error(c, http.StatusBadGateway, "invalid_analysis_shape", "the AI service returned an unusable analysis", nil)
	case errors.Is(err, llm.ErrGenerationFailed), errors.Is(err, llm.ErrNotConfigured):
		respond.Error(c, http.StatusBadGateway, "generation_failed", "the AI service is currently unavailable", nil)
	case errors.Is(err, llm.ErrInvalidResponse):
		respond.Error(c, http.StatusBadGateway, "invalid_ai_response", "the AI service returned an unusable response", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze resume", nil)
	}
}
