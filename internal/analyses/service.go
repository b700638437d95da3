package analyses

import (
	"context"
	"time"

	"resume-builder/internal/documents"
	"resume-builder/internal/extract"
	"resume-builder/internal/llm"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/telemetry"
)

// Service runs the resume analysis pipeline: extract text, prompt the model
// for a score, decode and validate the reply. Unlike the import pipeline this
// one fails closed: a malformed reply aborts the request.
type Service struct {
	LLM  llm.Client
	Docs *documents.Service
}

// NewService constructs a Service. Docs may be nil when document persistence
// is not configured.
func NewService(client llm.Client, docs *documents.Service) *Service {
	return &Service{LLM: client, Docs: docs}
}

// Analyze scores an uploaded resume file.
func (s *Service) Analyze(ctx context.Context, userID, fileName, mimeType string, data []byte) (AnalysisResult, error) {
	metrics.IncAnalysisStarted()
	started := time.Now()

	text, err := extract.Text(ctx, data, mimeType)
	if err != nil {
		metrics.IncAnalysisFailed()
		return AnalysisResult{}, err
	}
	if text == "" {
		metrics.IncAnalysisFailed()
		return AnalysisResult{}, extract.ErrNoText
	}

	raw, err := s.LLM.GenerateJSON(ctx, llm.ResumeAnalyzePrompt(text))
	if err != nil {
		metrics.IncAnalysisFailed()
		return AnalysisResult{}, err
	}

	obj, err := llm.DecodeObject(raw)
	if err != nil {
		metrics.IncAnalysisFailed()
		return AnalysisResult{}, err
	}

	result, err := ValidateShape(obj)
	if err != nil {
		metrics.IncAnalysisFailed()
		return AnalysisResult{}, err
	}

	if s.Docs != nil {
		if _, err := s.Docs.Save(ctx, userID, fileName, mimeType, documents.KindAnalysis, data); err != nil {
			telemetry.Error("analysis_document_save_failed", map[string]any{"error": err.Error()})
		}
	}

	metrics.IncAnalysisCompleted()
	metrics.ObservePipelineDurationMs(float64(time.Since(started).Milliseconds()))
	return result, nil
}
