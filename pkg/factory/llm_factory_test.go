package factory

import (
	"context"
	"testing"

	"github.com/ilkoid/hadikit/pkg/config"
	"github.com/ilkoid/hadikit/pkg/llm/gemini"
	"github.com/ilkoid/hadikit/pkg/llm/openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLLMProvider(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		def      config.ModelDef
		wantErr  string
		isGemini bool
	}{
		{name: "gemini", def: config.ModelDef{Provider: "gemini", APIKey: "k", ModelName: "gemini-3-flash-preview"}, isGemini: true},
		{name: "empty provider is gemini", def: config.ModelDef{APIKey: "k", ModelName: "gemini-3-flash-preview"}, isGemini: true},
		{name: "openai", def: config.ModelDef{Provider: "openai", APIKey: "k", ModelName: "gpt-4o-mini"}},
		{name: "zai", def: config.ModelDef{Provider: "zai", APIKey: "k", ModelName: "glm-4.5", BaseURL: "https://api.z.ai/api/paas/v4"}},
		{name: "openrouter", def: config.ModelDef{Provider: "openrouter", APIKey: "k", ModelName: "x"}},
		{name: "openai without key", def: config.ModelDef{Provider: "openai", ModelName: "gpt-4o-mini"}, wantErr: "api_key is empty"},
		{name: "gemini without key", def: config.ModelDef{Provider: "gemini"}, wantErr: "API key"},
		{name: "unknown", def: config.ModelDef{Provider: "llama", APIKey: "k"}, wantErr: "unknown provider type: llama"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewLLMProvider(ctx, tt.def)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.isGemini {
				assert.IsType(t, &gemini.Client{}, p)
			} else {
				assert.IsType(t, &openai.Client{}, p)
			}
		})
	}
}
