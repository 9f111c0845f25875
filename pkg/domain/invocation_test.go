package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolResponse_Text(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		expected string
	}{
		{
			name:     "plain text",
			json:     `"Exit code: 1"`,
			expected: "Exit code: 1",
		},
		{
			name:     "structured value",
			json:     `{"stdout": "", "stderr": "error: nope"}`,
			expected: `{"stdout":"","stderr":"error: nope"}`,
		},
		{
			name:     "array value",
			json:     `[1, 2, 3]`,
			expected: `[1,2,3]`,
		},
		{
			name:     "null",
			json:     `null`,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp ToolResponse
			require.NoError(t, json.Unmarshal([]byte(tt.json), &resp))

			assert.Equal(t, tt.expected, resp.Text())
		})
	}
}

func TestToolResponse_AbsentYieldsEmptyText(t *testing.T) {
	var resp ToolResponse

	assert.True(t, resp.IsAbsent())
	assert.Equal(t, "", resp.Text())
}

func TestToolInvocation_Unmarshal(t *testing.T) {
	payload := `{
		"session_id": "sess_1",
		"cwd": "/home/dev/app",
		"tool_name": "Bash",
		"tool_input": {"command": "npm install", "timeout": 120000},
		"tool_response": "npm ERR! code ENOENT"
	}`

	var inv ToolInvocation
	require.NoError(t, json.Unmarshal([]byte(payload), &inv))

	assert.Equal(t, "sess_1", inv.SessionID)
	assert.Equal(t, "/home/dev/app", inv.WorkingDirectory)
	assert.Equal(t, "Bash", inv.ToolName)
	assert.Equal(t, "npm install", inv.Command())
	assert.Equal(t, "npm ERR! code ENOENT", inv.ToolResponse.Text())
}

func TestToolInvocation_CommandFallsBackToRawInput(t *testing.T) {
	inv := ToolInvocation{ToolInput: json.RawMessage(`"ls -la"`)}

	assert.Equal(t, `"ls -la"`, inv.Command())
}

func TestToolInvocation_MissingResponse(t *testing.T) {
	var inv ToolInvocation
	require.NoError(t, json.Unmarshal([]byte(`{"tool_name": "Bash"}`), &inv))

	assert.True(t, inv.ToolResponse.IsAbsent())
	assert.Equal(t, "", inv.ToolResponse.Text())
}
