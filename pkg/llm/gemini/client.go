// Package gemini реализует адаптер llm.Provider для Google Gemini API.
//
// Использует официальный SDK google.golang.org/genai. Системные сообщения
// передаются через SystemInstruction, ответы ассистента - с ролью "model".
package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ilkoid/hadikit/pkg/config"
	"github.com/ilkoid/hadikit/pkg/llm"
	"github.com/ilkoid/hadikit/pkg/utils"
	"google.golang.org/genai"
)

// Client реализует llm.Provider поверх genai.Client.
type Client struct {
	api      *genai.Client
	defaults llm.GenerateOptions
}

// NewClient создает Gemini клиент на основе конфигурации модели.
//
// Возвращает ошибку, если API ключ не задан.
func NewClient(ctx context.Context, modelDef config.ModelDef) (*Client, error) {
	if modelDef.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	cc := &genai.ClientConfig{
		APIKey:  modelDef.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if modelDef.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: modelDef.BaseURL}
	}

	api, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &Client{
		api: api,
		defaults: llm.GenerateOptions{
			Model:       modelDef.ModelName,
			Temperature: modelDef.Temperature,
			TopP:        modelDef.TopP,
			MaxTokens:   modelDef.MaxTokens,
		},
	}, nil
}

// Generate выполняет GenerateContent и возвращает текст ответа.
func (c *Client) Generate(ctx context.Context, messages []llm.Message, opts ...llm.GenerateOption) (llm.Message, error) {
	startTime := time.Now()
	o := llm.Apply(c.defaults, opts...)

	contents, system := toContents(messages)
	gc := buildConfig(o, system)

	utils.Debug("LLM request started",
		"provider", "gemini",
		"model", o.Model,
		"messages_count", len(messages))

	resp, err := c.api.Models.GenerateContent(ctx, o.Model, contents, gc)
	if err != nil {
		utils.Error("LLM API request failed",
			"error", err,
			"model", o.Model,
			"duration_ms", time.Since(startTime).Milliseconds())
		return llm.Message{}, fmt.Errorf("gemini generate failed: %w", err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return llm.Message{}, llm.ErrEmptyResponse
	}

	utils.Info("LLM response received",
		"provider", "gemini",
		"model", o.Model,
		"content_length", len(text),
		"duration_ms", time.Since(startTime).Milliseconds())

	return llm.Message{Role: llm.RoleAssistant, Content: text}, nil
}

// toContents раскладывает историю на contents и system instruction.
func toContents(messages []llm.Message) ([]*genai.Content, *genai.Content) {
	var (
		contents []*genai.Content
		system   []string
	)
	for _, m := range messages {
		switch m.Role {
		case llm.RoleSystem:
			system = append(system, m.Content)
		case llm.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}
	if len(system) == 0 {
		return contents, nil
	}
	return contents, genai.NewContentFromText(strings.Join(system, "\n\n"), genai.RoleUser)
}

// buildConfig переводит наши опции в GenerateContentConfig. Нули = дефолт модели.
func buildConfig(o llm.GenerateOptions, system *genai.Content) *genai.GenerateContentConfig {
	gc := &genai.GenerateContentConfig{SystemInstruction: system}
	if o.Temperature > 0 {
		gc.Temperature = genai.Ptr(float32(o.Temperature))
	}
	if o.TopP > 0 {
		gc.TopP = genai.Ptr(float32(o.TopP))
	}
	if o.MaxTokens > 0 {
		gc.MaxOutputTokens = int32(o.MaxTokens)
	}
	return gc
}
