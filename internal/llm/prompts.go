package llm

import (
	_ "embed"
	"strings"
)

var (
	//go:embed prompts/resume_extract.txt
	resumeExtractPrompt string
	//go:embed prompts/resume_analyze.txt
	resumeAnalyzePrompt string
)

// ResumeExtractPrompt builds the instruction for structured resume extraction.
func ResumeExtractPrompt(resumeText string) string {
	return strings.ReplaceAll(resumeExtractPrompt, "{{RESUME_TEXT}}", resumeText)
}

// ResumeAnalyzePrompt builds the instruction for resume scoring.
func ResumeAnalyzePrompt(resumeText string) string {
	return strings.ReplaceAll(resumeAnalyzePrompt, "{{RESUME_TEXT}}", resumeText)
}
