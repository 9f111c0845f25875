package domain

import (
	"bytes"
	"encoding/json"
)

// ToolInvocation is a single PostToolUse hook event as delivered on stdin.
// It is constructed once per tool call and consumed by the classifier.
type ToolInvocation struct {
	ToolName         string          `json:"tool_name"`
	ToolInput        json.RawMessage `json:"tool_input,omitempty"`
	ToolResponse     ToolResponse    `json:"tool_response,omitempty"`
	SessionID        string          `json:"session_id"`
	WorkingDirectory string          `json:"cwd"`
}

// Command returns the command text from the tool input, if present.
func (inv ToolInvocation) Command() string {
	if len(inv.ToolInput) == 0 {
		return ""
	}

	var input struct {
		Command string `json:"command"`
	}
	if err := json.Unmarshal(inv.ToolInput, &input); err == nil && input.Command != "" {
		return input.Command
	}

	return string(inv.ToolInput)
}

// ToolResponse is the raw tool output: plain text, a structured value, or
// absent. It keeps the original JSON so the normalization rule stays explicit
// instead of relying on implicit stringification.
type ToolResponse struct {
	raw json.RawMessage
}

// NewTextResponse wraps plain text as a tool response.
func NewTextResponse(text string) ToolResponse {
	raw, _ := json.Marshal(text)
	return ToolResponse{raw: raw}
}

// NewStructuredResponse wraps an arbitrary value as a tool response.
func NewStructuredResponse(value any) ToolResponse {
	raw, _ := json.Marshal(value)
	return ToolResponse{raw: raw}
}

// UnmarshalJSON stores the raw value without interpreting it.
func (r *ToolResponse) UnmarshalJSON(data []byte) error {
	r.raw = append(r.raw[:0], data...)
	return nil
}

// MarshalJSON returns the original value, or JSON null when absent.
func (r ToolResponse) MarshalJSON() ([]byte, error) {
	if len(r.raw) == 0 {
		return []byte("null"), nil
	}
	return r.raw, nil
}

// IsAbsent reports whether no response value was provided at all.
func (r ToolResponse) IsAbsent() bool {
	return len(r.raw) == 0 || bytes.Equal(bytes.TrimSpace(r.raw), []byte("null"))
}

// Text normalizes the response to text. A JSON string yields the string
// itself, an absent value yields "", and any other value yields its compact
// JSON serialization. Normalization never fails.
func (r ToolResponse) Text() string {
	if r.IsAbsent() {
		return ""
	}

	var s string
	if err := json.Unmarshal(r.raw, &s); err == nil {
		return s
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, r.raw); err != nil {
		return string(r.raw)
	}

	return compact.String()
}
