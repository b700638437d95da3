package resumes

import (
	"context"
	"time"

	"resume-builder/internal/documents"
	"resume-builder/internal/extract"
	"resume-builder/internal/llm"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/telemetry"
)

// Service runs the resume import pipeline: extract text, prompt the model,
// decode the JSON reply, normalize into a ResumeRecord.
type Service struct {
	LLM  llm.Client
	Docs *documents.Service
}

// NewService constructs a Service. Docs may be nil when document persistence
// is not configured.
func NewService(client llm.Client, docs *documents.Service) *Service {
	return &Service{LLM: client, Docs: docs}
}

// Import extracts structured resume data from an uploaded file.
func (s *Service) Import(ctx context.Context, userID, fileName, mimeType string, data []byte) (ResumeRecord, error) {
	metrics.IncImportStarted()
	started := time.Now()

	text, err := extract.Text(ctx, data, mimeType)
	if err != nil {
		metrics.IncImportFailed()
		return ResumeRecord{}, err
	}
	if text == "" {
		metrics.IncImportFailed()
		return ResumeRecord{}, extract.ErrNoText
	}

	raw, err := s.LLM.GenerateJSON(ctx, llm.ResumeExtractPrompt(text))
	if err != nil {
		metrics.IncImportFailed()
		return ResumeRecord{}, err
	}

	obj, err := llm.DecodeObject(raw)
	if err != nil {
		metrics.IncImportFailed()
		return ResumeRecord{}, err
	}

	rec := Normalize(obj)

	// Persistence is best effort; the extracted record is the product.
	if s.Docs != nil {
		if _, err := s.Docs.Save(ctx, userID, fileName, mimeType, documents.KindResume, data); err != nil {
			telemetry.Error("resume_document_save_failed", map[string]any{"error": err.Error()})
		}
	}

	metrics.IncImportCompleted()
	metrics.ObservePipelineDurationMs(float64(time.Since(started).Milliseconds()))
	return rec, nil
}
