package detection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cylnet/claude-context-mem/pkg/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		toolName     string
		response     domain.ToolResponse
		wantError    bool
		wantExitCode *int
	}{
		{
			name:         "exit code with error keyword",
			toolName:     "Bash",
			response:     domain.NewTextResponse("Error: command not found\nExit code: 1"),
			wantError:    true,
			wantExitCode: intPtr(1),
		},
		{
			name:      "zero exit code is success",
			toolName:  "Bash",
			response:  domain.NewTextResponse("Success\nExit code: 0"),
			wantError: false,
		},
		{
			name:      "non shell tool never flagged",
			toolName:  "Read",
			response:  domain.NewTextResponse("Error: file not found"),
			wantError: false,
		},
		{
			name:         "exited with code phrasing",
			toolName:     "Bash",
			response:     domain.NewTextResponse("process exited with code 127"),
			wantError:    true,
			wantExitCode: intPtr(127),
		},
		{
			name:         "returned phrasing",
			toolName:     "Bash",
			response:     domain.NewTextResponse("command returned 2"),
			wantError:    true,
			wantExitCode: intPtr(2),
		},
		{
			name:      "error marker without exit code",
			toolName:  "Bash",
			response:  domain.NewTextResponse("error: something broke"),
			wantError: true,
		},
		{
			name:      "npm failure marker",
			toolName:  "Bash",
			response:  domain.NewTextResponse("npm ERR! code ENOENT"),
			wantError: true,
		},
		{
			name:      "task failed phrase",
			toolName:  "Bash",
			response:  domain.NewTextResponse("Build failed with 3 warnings"),
			wantError: true,
		},
		{
			name:      "exception marker",
			toolName:  "Bash",
			response:  domain.NewTextResponse("Unhandled exception in thread main"),
			wantError: true,
		},
		{
			name:      "zero exit code falls through to keywords",
			toolName:  "Bash",
			response:  domain.NewTextResponse("Exit code: 0\nerror: lint violations found"),
			wantError: true,
		},
		{
			name:      "clean output",
			toolName:  "Bash",
			response:  domain.NewTextResponse("all 42 tests passed"),
			wantError: false,
		},
		{
			name:      "absent response",
			toolName:  "Bash",
			response:  domain.ToolResponse{},
			wantError: false,
		},
		{
			name:      "structured response with failure text",
			toolName:  "Bash",
			response:  domain.NewStructuredResponse(map[string]any{"stderr": "error: not found"}),
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Classify(tt.toolName, tt.response)

			assert.Equal(t, tt.wantError, result.IsError)

			if !tt.wantError {
				assert.Empty(t, result.ErrorMessage)
				assert.Nil(t, result.ExitCode)
				return
			}

			assert.Equal(t, tt.response.Text(), result.ErrorMessage)

			if tt.wantExitCode == nil {
				assert.Nil(t, result.ExitCode)
			} else {
				require.NotNil(t, result.ExitCode)
				assert.Equal(t, *tt.wantExitCode, *result.ExitCode)
			}
		})
	}
}

func TestClassify_FirstExitPatternWins(t *testing.T) {
	result := Classify("Bash", domain.NewTextResponse("exit code: 3 but later returned 7"))

	assert.True(t, result.IsError)
	require.NotNil(t, result.ExitCode)
	assert.Equal(t, 3, *result.ExitCode)
}

func TestClassify_IsDeterministic(t *testing.T) {
	response := domain.NewTextResponse("npm ERR! build failed\nExit code: 1")

	first := Classify("Bash", response)
	second := Classify("Bash", response)

	assert.Equal(t, first, second)
}

func intPtr(v int) *int {
	return &v
}
