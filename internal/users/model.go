package users

import "time"

const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// User is an account that owns resumes and documents.
type User struct {
	ID           string
	Email        string
	FullName     string
	PasswordHash string
	Provider     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
