// Package openai реализует адаптер LLM провайдера для OpenAI-совместимых API.
//
// Подходит для OpenAI, Zai, DeepSeek, OpenRouter: отличается только BaseURL.
// Работает только через интерфейс llm.Provider.
package openai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ilkoid/hadikit/pkg/config"
	"github.com/ilkoid/hadikit/pkg/llm"
	"github.com/ilkoid/hadikit/pkg/utils"
	openai "github.com/sashabaranov/go-openai"
)

// Client реализует интерфейс llm.Provider для OpenAI-совместимых API.
type Client struct {
	api      *openai.Client
	defaults llm.GenerateOptions
}

// NewClient создает OpenAI клиент на основе конфигурации модели.
//
// Все настройки из конфигурации, никакого хардкода.
func NewClient(modelDef config.ModelDef) *Client {
	// Поддержка custom BaseURL для non-OpenAI провайдеров (Zai, DeepSeek и т.д.)
	cfg := openai.DefaultConfig(modelDef.APIKey)
	if modelDef.BaseURL != "" {
		cfg.BaseURL = modelDef.BaseURL
	}

	return &Client{
		api: openai.NewClientWithConfig(cfg),
		defaults: llm.GenerateOptions{
			Model:       modelDef.ModelName,
			Temperature: modelDef.Temperature,
			TopP:        modelDef.TopP,
			MaxTokens:   modelDef.MaxTokens,
		},
	}
}

// Generate выполняет запрос к API и возвращает ответ модели.
//
// Алгоритм:
//  1. Накладывает опции вызова на дефолты из config.yaml
//  2. Конвертирует внутренние сообщения в формат OpenAI SDK
//  3. Вызывает API
//  4. Конвертирует первый choice обратно в наш формат
//
// Все ошибки возвращаются, никаких panic.
func (c *Client) Generate(ctx context.Context, messages []llm.Message, opts ...llm.GenerateOption) (llm.Message, error) {
	startTime := time.Now()
	o := llm.Apply(c.defaults, opts...)

	utils.Debug("LLM request started",
		"provider", "openai",
		"model", o.Model,
		"messages_count", len(messages))

	req := openai.ChatCompletionRequest{
		Model:       o.Model,
		Messages:    mapToOpenAI(messages),
		Temperature: float32(o.Temperature),
		TopP:        float32(o.TopP),
		MaxTokens:   o.MaxTokens,
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		utils.Error("LLM API request failed",
			"error", err,
			"model", o.Model,
			"duration_ms", time.Since(startTime).Milliseconds())
		return llm.Message{}, fmt.Errorf("openai api error: %w", err)
	}

	// Проверяем что есть хотя бы один выбор
	if len(resp.Choices) == 0 {
		return llm.Message{}, fmt.Errorf("no choices in response: %w", llm.ErrEmptyResponse)
	}

	choice := resp.Choices[0].Message
	if strings.TrimSpace(choice.Content) == "" {
		return llm.Message{}, llm.ErrEmptyResponse
	}

	utils.Info("LLM response received",
		"provider", "openai",
		"model", o.Model,
		"content_length", len(choice.Content),
		"duration_ms", time.Since(startTime).Milliseconds())

	return llm.Message{
		Role:    llm.RoleAssistant,
		Content: choice.Content,
	}, nil
}

// mapToOpenAI конвертирует наши сообщения в формат SDK.
func mapToOpenAI(messages []llm.Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, len(messages))
	for i, m := range messages {
		out[i] = openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		}
	}
	return out
}
