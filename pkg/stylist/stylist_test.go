package stylist

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/ilkoid/hadikit/pkg/config"
	"github.com/ilkoid/hadikit/pkg/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// recorder запоминает последний запрос и отвечает заданным образом.
type recorder struct {
	mu       sync.Mutex
	calls    int
	messages []llm.Message
	options  llm.GenerateOptions
	reply    string
	err      error
}

func (r *recorder) Generate(ctx context.Context, messages []llm.Message, opts ...llm.GenerateOption) (llm.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	r.messages = messages
	r.options = llm.Apply(llm.GenerateOptions{}, opts...)
	if r.err != nil {
		return llm.Message{}, r.err
	}
	return llm.Message{Role: llm.RoleAssistant, Content: r.reply}, nil
}

func fastConfig() config.StylistConfig {
	return config.StylistConfig{RateLimit: 60000, BurstLimit: 10}
}

func newClient(t *testing.T, p llm.Provider, cfg config.StylistConfig) *Client {
	t.Helper()
	c, err := New(p, cfg)
	require.NoError(t, err)
	return c
}

func TestRequestAdvice_ReturnsTextVerbatim(t *testing.T) {
	rec := &recorder{reply: "  Try the **Brazil Retro 2002 Home** with white sneakers.\n"}
	c := newClient(t, rec, fastConfig())

	got := c.RequestAdvice(context.Background(), "need a retro kit", nil, []string{"Brazil Retro 2002 Home", "Italy Retro 1990"})
	assert.Equal(t, "  Try the **Brazil Retro 2002 Home** with white sneakers.\n", got)

	require.Len(t, rec.messages, 1)
	assert.Equal(t, llm.RoleUser, rec.messages[0].Role)
	body := rec.messages[0].Content
	assert.Contains(t, body, `"need a retro kit"`)
	assert.Contains(t, body, "Brazil Retro 2002 Home, Italy Retro 1990")
	assert.Contains(t, body, "high-end sports stylist")
	assert.Contains(t, body, "Suggest 1-2 jerseys")

	assert.InDelta(t, 0.7, rec.options.Temperature, 1e-9)
	assert.InDelta(t, 0.95, rec.options.TopP, 1e-9)
}

func TestRequestAdvice_FallbackPaths(t *testing.T) {
	tests := []struct {
		name     string
		provider llm.Provider
	}{
		{name: "service error", provider: &recorder{err: errors.New("503 unavailable")}},
		{name: "empty response error", provider: &recorder{err: llm.ErrEmptyResponse}},
		{name: "blank text", provider: &recorder{reply: " \n\t"}},
		{name: "unavailable provider", provider: llm.Unavailable(errors.New("no api key"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newClient(t, tt.provider, fastConfig())
			got := c.RequestAdvice(context.Background(), "need a retro kit", nil, []string{"A"})
			assert.Equal(t, config.DefaultFallback, got)
			assert.Equal(t, config.DefaultFallback, c.Fallback())
		})
	}
}

func TestRequestAdvice_CustomFallback(t *testing.T) {
	cfg := fastConfig()
	cfg.Fallback = "Service temporarily down. Try our new Barca drop!"
	c := newClient(t, llm.Unavailable(errors.New("down")), cfg)

	assert.Equal(t, cfg.Fallback, c.RequestAdvice(context.Background(), "hi", nil, nil))
}

func TestRequestAdvice_Timeout(t *testing.T) {
	blocking := llm.ProviderFunc(func(ctx context.Context, _ []llm.Message, _ ...llm.GenerateOption) (llm.Message, error) {
		<-ctx.Done()
		return llm.Message{}, ctx.Err()
	})
	cfg := fastConfig()
	cfg.Timeout = 30 * time.Millisecond
	c := newClient(t, blocking, cfg)

	start := time.Now()
	got := c.RequestAdvice(context.Background(), "hi", nil, nil)
	assert.Equal(t, config.DefaultFallback, got)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestRequestAdvice_RateLimited(t *testing.T) {
	rec := &recorder{reply: "ok"}
	cfg := config.StylistConfig{RateLimit: 1, BurstLimit: 1, Timeout: 50 * time.Millisecond}
	c := newClient(t, rec, cfg)

	assert.Equal(t, "ok", c.RequestAdvice(context.Background(), "first", nil, nil))
	assert.Equal(t, config.DefaultFallback, c.RequestAdvice(context.Background(), "second", nil, nil))
	assert.Equal(t, 1, rec.calls, "limited request never reaches provider")
}

func TestBuildMessages_LimitsAndHistory(t *testing.T) {
	cfg := fastConfig()
	cfg.CatalogLimit = 2
	cfg.HistoryTurns = 2
	c := newClient(t, &recorder{}, cfg)

	transcript := []llm.Message{
		{Role: llm.RoleUser, Content: "old question"},
		{Role: llm.RoleAssistant, Content: "old answer"},
		{Role: llm.RoleUser, Content: "second question"},
		{Role: llm.RoleAssistant, Content: "second answer"},
	}
	msgs, err := c.buildMessages("now", transcript, []string{"A", "B", "C"})
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "second question", msgs[0].Content)
	assert.Equal(t, "second answer", msgs[1].Content)
	assert.Contains(t, msgs[2].Content, "A, B.")
	assert.NotContains(t, msgs[2].Content, "A, B, C")
}

func TestBuildMessages_NoHistoryByDefault(t *testing.T) {
	c := newClient(t, &recorder{}, fastConfig())
	msgs, err := c.buildMessages("now", []llm.Message{llm.UserMessage("earlier")}, nil)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.NotContains(t, msgs[0].Content, "earlier")
}

func TestNew_RejectsNegativeLimits(t *testing.T) {
	rec := &recorder{reply: "ok"}

	_, err := New(rec, config.StylistConfig{BurstLimit: -1})
	assert.ErrorContains(t, err, "stylist limits must be >= 0")

	_, err = New(rec, config.StylistConfig{RateLimit: -3})
	assert.ErrorContains(t, err, "stylist limits must be >= 0")
}

func TestNew_PromptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stylist.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
messages:
  - role: system
    content: "Be a kit expert."
  - role: user
    content: "Q: {{.UserText}}"
`), 0o644))

	rec := &recorder{reply: "ok"}
	cfg := fastConfig()
	cfg.PromptFile = path
	c := newClient(t, rec, cfg)

	c.RequestAdvice(context.Background(), "hi", nil, nil)
	require.Len(t, rec.messages, 2)
	assert.Equal(t, llm.RoleSystem, rec.messages[0].Role)
	assert.Equal(t, "Q: hi", rec.messages[1].Content)

	cfg.PromptFile = filepath.Join(dir, "missing.yaml")
	_, err := New(rec, cfg)
	assert.ErrorContains(t, err, "stylist prompt")
}
