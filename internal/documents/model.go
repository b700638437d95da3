package documents

import "time"

const (
	KindResume   = "resume"
	KindAnalysis = "analysis"
)

// Document represents an uploaded file owned by a user.
type Document struct {
	ID         string
	UserID     string
	FileName   string
	MimeType   string
	SizeBytes  int64
	StorageKey string
	Kind       string
	CreatedAt  time.Time
}
