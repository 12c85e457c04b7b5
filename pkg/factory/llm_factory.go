package factory

import (
	"context"
	"fmt"

	"github.com/ilkoid/hadikit/pkg/config"
	"github.com/ilkoid/hadikit/pkg/llm"
	"github.com/ilkoid/hadikit/pkg/llm/gemini"
	"github.com/ilkoid/hadikit/pkg/llm/openai"
)

// NewLLMProvider создает провайдера на основе конфигурации модели
func NewLLMProvider(ctx context.Context, modelDef config.ModelDef) (llm.Provider, error) {
	switch modelDef.Provider {
	case "gemini", "":
		return gemini.NewClient(ctx, modelDef)

	case "zai", "openai", "deepseek", "openrouter":
		if modelDef.APIKey == "" {
			return nil, fmt.Errorf("api_key is empty for provider %s", modelDef.Provider)
		}
		return openai.NewClient(modelDef), nil

	default:
		return nil, fmt.Errorf("unknown provider type: %s", modelDef.Provider)
	}
}
