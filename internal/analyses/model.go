package analyses

// AnalysisResult scores a resume and lists its strengths and weaknesses.
type AnalysisResult struct {
	Points   int      `json:"points"`
	Positive []string `json:"positive"`
	Negative []string `json:"negative"`
}
