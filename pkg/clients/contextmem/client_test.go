package contextmem

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SubmitError(t *testing.T) {
	var received SubmitErrorRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/v1/errors", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(SubmitErrorResponse{Success: true, ErrorID: "err_1"})
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	resp, err := client.SubmitError(context.Background(), &SubmitErrorRequest{
		SessionID:        "sess_1",
		ErrorMessage:     "npm ERR! code ENOENT",
		ErrorType:        "npm",
		Keywords:         []string{"ENOENT"},
		Command:          "npm install",
		WorkingDirectory: "/home/dev/app",
	})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "err_1", resp.ErrorID)
	assert.Equal(t, "sess_1", received.SessionID)
	assert.Equal(t, "npm", received.ErrorType)
	assert.Equal(t, []string{"ENOENT"}, received.Keywords)
}

func TestClient_SubmitError_NilRequest(t *testing.T) {
	client := NewClient()

	_, err := client.SubmitError(context.Background(), nil)

	assert.Error(t, err)
}

func TestClient_QuerySimilarErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/v1/errors/similar", r.URL.Path)
		assert.Equal(t, "npm ERR! code ENOENT", r.URL.Query().Get("error_message"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(QuerySimilarErrorsResponse{
			Errors: []SimilarErrorRecord{
				{ID: "err_1", Title: "npm install failed with ENOENT"},
				{ID: "err_2"},
			},
		})
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	resp, err := client.QuerySimilarErrors(context.Background(), "npm ERR! code ENOENT")

	require.NoError(t, err)
	require.Len(t, resp.Errors, 2)
	assert.Equal(t, "npm install failed with ENOENT", resp.Errors[0].Title)
	assert.Empty(t, resp.Errors[1].Title)
}

func TestClient_QuerySimilarErrors_EmptyMessage(t *testing.T) {
	client := NewClient()

	_, err := client.QuerySimilarErrors(context.Background(), "")

	assert.Error(t, err)
}

func TestClient_QuerySimilarErrors_ClientError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "error_message query parameter is required"})
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	_, err := client.QuerySimilarErrors(context.Background(), "anything")

	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsClientError())
	assert.Equal(t, "error_message query parameter is required", apiErr.Message)
}

func TestClient_RetriesServerErrors(t *testing.T) {
	attempts := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(HealthResponse{Status: "ok"})
	}))
	defer server.Close()

	client := NewClient(
		WithBaseURL(server.URL),
		WithRetry(2, 10*time.Millisecond),
	)

	resp, err := client.Health(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 2, attempts)
}

func TestClient_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.QuerySimilarErrors(ctx, "slow query")

	assert.Error(t, err)
}
