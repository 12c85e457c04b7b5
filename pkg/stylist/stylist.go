// Package stylist - клиент AI стилиста магазина.
//
// RequestAdvice никогда не возвращает ошибку: любой сбой провайдера,
// пустой ответ, таймаут или отказ rate limiter'а превращаются в
// fallback-текст из конфигурации. Повторов нет, отмены тоже.
package stylist

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ilkoid/hadikit/pkg/config"
	"github.com/ilkoid/hadikit/pkg/llm"
	"github.com/ilkoid/hadikit/pkg/prompt"
	"github.com/ilkoid/hadikit/pkg/utils"
	"golang.org/x/time/rate"
)

// Advisor - то, что нужно интерфейсу от стилиста.
type Advisor interface {
	RequestAdvice(ctx context.Context, userText string, transcript []llm.Message, catalogNames []string) string
}

// Client - стилист поверх llm.Provider.
type Client struct {
	provider llm.Provider
	cfg      config.StylistConfig
	prompt   *prompt.PromptFile
	limiter  *rate.Limiter
}

// New создает стилиста.
//
// Если в cfg задан prompt_file, промпт берется из него, иначе встроенный.
// Ошибка возвращается для битого prompt_file и отрицательных лимитов.
func New(provider llm.Provider, cfg config.StylistConfig) (*Client, error) {
	cfg = cfg.GetDefaults()
	if cfg.RateLimit < 0 || cfg.BurstLimit < 0 {
		return nil, fmt.Errorf("stylist limits must be >= 0: rate_limit=%d burst_limit=%d", cfg.RateLimit, cfg.BurstLimit)
	}

	pf, err := loadPrompt(cfg.PromptFile)
	if err != nil {
		return nil, err
	}

	return &Client{
		provider: provider,
		cfg:      cfg,
		prompt:   pf,
		limiter:  rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RateLimit)), cfg.BurstLimit),
	}, nil
}

// Fallback возвращает текст, которым стилист отвечает при сбое.
func (c *Client) Fallback() string {
	return c.cfg.Fallback
}

// RequestAdvice отправляет один запрос и возвращает текст ответа как есть.
//
// transcript - предыдущие реплики чата (без userText); в запрос попадают
// последние history_turns из них. catalogNames обрезаются до catalog_limit.
func (c *Client) RequestAdvice(ctx context.Context, userText string, transcript []llm.Message, catalogNames []string) string {
	requestID := uuid.NewString()
	startTime := time.Now()

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	utils.Info("Stylist request started",
		"request_id", requestID,
		"text_length", len(userText),
		"products", len(catalogNames))

	if err := c.limiter.Wait(ctx); err != nil {
		utils.Warn("Stylist request rate limited",
			"request_id", requestID,
			"error", err)
		return c.cfg.Fallback
	}

	messages, err := c.buildMessages(userText, transcript, catalogNames)
	if err != nil {
		utils.Error("Stylist prompt render failed",
			"request_id", requestID,
			"error", err)
		return c.cfg.Fallback
	}

	resp, err := c.provider.Generate(ctx, messages, c.prompt.Options()...)
	if err != nil {
		utils.Error("Stylist request failed",
			"request_id", requestID,
			"error", err,
			"duration_ms", time.Since(startTime).Milliseconds())
		return c.cfg.Fallback
	}
	if strings.TrimSpace(resp.Content) == "" {
		utils.Warn("Stylist returned empty advice", "request_id", requestID)
		return c.cfg.Fallback
	}

	utils.Info("Stylist request completed",
		"request_id", requestID,
		"content_length", len(resp.Content),
		"duration_ms", time.Since(startTime).Milliseconds())

	return resp.Content
}

// buildMessages собирает запрос: история, затем промпт.
func (c *Client) buildMessages(userText string, transcript []llm.Message, catalogNames []string) ([]llm.Message, error) {
	names := catalogNames
	if c.cfg.CatalogLimit > 0 && len(names) > c.cfg.CatalogLimit {
		names = names[:c.cfg.CatalogLimit]
	}

	rendered, err := c.prompt.RenderMessages(promptData{
		UserText: userText,
		Products: names,
	})
	if err != nil {
		return nil, fmt.Errorf("render stylist prompt: %w", err)
	}

	history := recentTurns(transcript, c.cfg.HistoryTurns)
	out := make([]llm.Message, 0, len(history)+len(rendered))
	out = append(out, history...)
	out = append(out, rendered...)
	return out, nil
}

// recentTurns возвращает последние n реплик, n <= 0 - ни одной.
func recentTurns(transcript []llm.Message, n int) []llm.Message {
	if n <= 0 || len(transcript) == 0 {
		return nil
	}
	if n > len(transcript) {
		n = len(transcript)
	}
	return transcript[len(transcript)-n:]
}
