package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json code block",
			input:    "```json\n{\"summary\": \"Designer\"}\n```",
			expected: `{"summary": "Designer"}`,
		},
		{
			name:     "generic code block",
			input:    "```\n{\"summary\": \"Designer\"}\n```",
			expected: `{"summary": "Designer"}`,
		},
		{
			name:     "code block with language",
			input:    "```javascript\n{\"summary\": \"Designer\"}\n```",
			expected: `{"summary": "Designer"}`,
		},
		{
			name:     "plain JSON",
			input:    `{"skills": ["Go"]}`,
			expected: `{"skills": ["Go"]}`,
		},
		{
			name:     "preamble before object",
			input:    "Here is the improved text:\n{\"improvedDescription\": \"Led a team\"}",
			expected: `{"improvedDescription": "Led a team"}`,
		},
		{
			name:     "preamble before array",
			input:    "Suggestions:\n[\"Go\", \"SQL\"]",
			expected: `["Go", "SQL"]`,
		},
		{
			name:     "trailing text",
			input:    "{\"intent\": \"ADD_SKILL\"}\n\nLet me know if you need anything else!",
			expected: `{"intent": "ADD_SKILL"}`,
		},
		{
			name:     "escaped quotes",
			input:    "Result: {\"summary\": \"He said \\\"hello\\\"\"}",
			expected: `{"summary": "He said \"hello\""}`,
		},
		{
			name:     "not JSON",
			input:    "no json here",
			expected: "no json here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple object", `{"key": "value"}`, `{"key": "value"}`},
		{"nested objects", `{"data": {"name": "Go"}}`, `{"data": {"name": "Go"}}`},
		{"trailing text", `{"key": "value"} and more`, `{"key": "value"}`},
		{"braces inside string", `{"summary": "Hello {name}!"}`, `{"summary": "Hello {name}!"}`},
		{"unterminated", `{"key": "value"`, ""},
		{"empty input", "", ""},
		{"not starting with brace", "not json", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractJSONObject(tt.input))
		})
	}
}

func TestExtractJSONArray(t *testing.T) {
	assert.Equal(t, `["a", "b"]`, extractJSONArray(`["a", "b"] extra`))
	assert.Equal(t, `[[1, 2], [3]]`, extractJSONArray(`[[1, 2], [3]]`))
	assert.Equal(t, `["]"]`, extractJSONArray(`["]"]`))
	assert.Equal(t, "", extractJSONArray("not array"))
}

func TestDecodeJSON(t *testing.T) {
	type summary struct {
		Summary string `json:"summary"`
	}

	got, err := DecodeJSON[summary]("```json\n{\"summary\": \"Designer\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, "Designer", got.Summary)

	_, err = DecodeJSON[summary]("")
	assert.Error(t, err)

	_, err = DecodeJSON[summary]("{not json}")
	assert.Error(t, err)
}
