package prompt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ilkoid/hadikit/pkg/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePrompt = `
config:
  temperature: 0.4
  max_tokens: 300
messages:
  - role: system
    content: "You are a stylist."
  - role: user
    content: "Ask: {{.Question}}. Products: {{join .Products \", \"}}"
`

func TestLoadAndRender(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stylist.yaml")
	require.NoError(t, os.WriteFile(path, []byte(samplePrompt), 0o644))

	pf, err := Load(path)
	require.NoError(t, err)

	msgs, err := pf.RenderMessages(map[string]any{
		"Question": "retro",
		"Products": []string{"A", "B"},
	})
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, llm.RoleSystem, msgs[0].Role)
	assert.Equal(t, "Ask: retro. Products: A, B", msgs[1].Content)

	o := llm.Apply(llm.GenerateOptions{Model: "base", TopP: 0.9}, pf.Options()...)
	assert.Equal(t, llm.GenerateOptions{Model: "base", Temperature: 0.4, TopP: 0.9, MaxTokens: 300}, o)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		errPart string
	}{
		{name: "no messages", data: "config: {}\n", errPart: "no messages"},
		{name: "bad role", data: "messages:\n  - role: tool\n    content: x\n", errPart: "unknown role"},
		{name: "bad yaml", data: "messages: [", errPart: "yaml parse error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "prompt file not found")
}

func TestRenderMessages_TemplateError(t *testing.T) {
	pf := &PromptFile{Messages: []Message{{Role: "user", Content: "{{.Broken"}}}
	_, err := pf.RenderMessages(nil)
	assert.ErrorContains(t, err, "template parse error")
}
