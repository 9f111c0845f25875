// Package contextmem provides a Go SDK for the context-mem memory service
// API. This package is designed for standalone use and has no internal
// dependencies.
package contextmem

import "time"

// SubmitErrorRequest represents the request to store an error record
type SubmitErrorRequest struct {
	SessionID        string   `json:"session_id"`
	ErrorMessage     string   `json:"error_message"`
	ErrorType        string   `json:"error_type"`
	Keywords         []string `json:"keywords"`
	FilePath         string   `json:"file_path,omitempty"`
	Command          string   `json:"command"`
	WorkingDirectory string   `json:"working_directory"`
}

// SubmitErrorResponse represents the response to a submit request
type SubmitErrorResponse struct {
	Success bool   `json:"success"`
	ErrorID string `json:"error_id,omitempty"`
}

// SimilarErrorRecord represents a historical error returned by a similarity
// query. Title may be empty.
type SimilarErrorRecord struct {
	ID        string    `json:"id,omitempty"`
	Title     string    `json:"title,omitempty"`
	ErrorType string    `json:"error_type,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// QuerySimilarErrorsResponse represents the response to a similarity query
type QuerySimilarErrorsResponse struct {
	Errors []SimilarErrorRecord `json:"errors"`
}

// HealthResponse represents the memory service health check response
type HealthResponse struct {
	Status string `json:"status"`
}
