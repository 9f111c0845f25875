package domain

import "context"

// ErrorRecord is the boundary type handed to the memory service. The service
// owns it after submission and assigns the creation timestamp itself.
type ErrorRecord struct {
	SessionID        string   `json:"session_id"`
	ErrorMessage     string   `json:"error_message"`
	ErrorType        string   `json:"error_type"`
	Keywords         []string `json:"keywords"`
	FilePath         string   `json:"file_path,omitempty"`
	Command          string   `json:"command"`
	WorkingDirectory string   `json:"working_directory"`
}

// SimilarError is a historical record returned by a similarity query.
type SimilarError struct {
	Title string `json:"title,omitempty"`
}

// ErrorMemoryService is the contract with the external memory collaborator.
// Implementations perform network calls; callers bound them with the context.
type ErrorMemoryService interface {
	SubmitError(ctx context.Context, record ErrorRecord) error
	QuerySimilarErrors(ctx context.Context, errorMessage string) ([]SimilarError, error)
}
