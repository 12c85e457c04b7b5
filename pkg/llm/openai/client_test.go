package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ilkoid/hadikit/pkg/config"
	"github.com/ilkoid/hadikit/pkg/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeServer поднимает OpenAI-совместимый /chat/completions.
func fakeServer(t *testing.T, status int, content string, seen *map[string]any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			http.NotFound(w, r)
			return
		}
		if seen != nil {
			body := map[string]any{}
			_ = json.NewDecoder(r.Body).Decode(&body)
			*seen = body
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1,
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": content},
			}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

// TestNewClient тестирует создание клиента.
func TestNewClient(t *testing.T) {
	tests := []struct {
		name     string
		modelDef config.ModelDef
	}{
		{
			name:     "minimal config",
			modelDef: config.ModelDef{APIKey: "test-key", ModelName: "gpt-4o-mini"},
		},
		{
			name:     "with custom base url",
			modelDef: config.ModelDef{APIKey: "test-key", ModelName: "glm-4.5", BaseURL: "https://api.z.ai/v4", Temperature: 0.3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(tt.modelDef)
			require.NotNil(t, client)
			assert.NotNil(t, client.api)
			assert.Equal(t, tt.modelDef.ModelName, client.defaults.Model)
			assert.Equal(t, tt.modelDef.Temperature, client.defaults.Temperature)
		})
	}
}

func TestGenerate_Success(t *testing.T) {
	var seen map[string]any
	srv := fakeServer(t, http.StatusOK, "Try the Barcelona Away Black 25/26 with black jeans.", &seen)

	client := NewClient(config.ModelDef{APIKey: "k", ModelName: "gpt-4o-mini", BaseURL: srv.URL, Temperature: 0.7})
	msg, err := client.Generate(context.Background(),
		[]llm.Message{llm.UserMessage("need a black kit")},
		llm.WithModel("gpt-4o"))
	require.NoError(t, err)

	assert.Equal(t, llm.RoleAssistant, msg.Role)
	assert.Equal(t, "Try the Barcelona Away Black 25/26 with black jeans.", msg.Content)

	// Опция вызова перекрывает модель из конфига
	assert.Equal(t, "gpt-4o", seen["model"])
	msgs, ok := seen["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 1)
	assert.Equal(t, "user", msgs[0].(map[string]any)["role"])
}

func TestGenerate_EmptyContent(t *testing.T) {
	srv := fakeServer(t, http.StatusOK, "   ", nil)
	client := NewClient(config.ModelDef{APIKey: "k", ModelName: "m", BaseURL: srv.URL})

	_, err := client.Generate(context.Background(), []llm.Message{llm.UserMessage("hi")})
	assert.True(t, errors.Is(err, llm.ErrEmptyResponse))
}

func TestGenerate_ServerError(t *testing.T) {
	srv := fakeServer(t, http.StatusInternalServerError, "", nil)
	client := NewClient(config.ModelDef{APIKey: "k", ModelName: "m", BaseURL: srv.URL})

	_, err := client.Generate(context.Background(), []llm.Message{llm.UserMessage("hi")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "openai api error")
}

// TestMapToOpenAI тестирует конвертацию сообщений.
func TestMapToOpenAI(t *testing.T) {
	out := mapToOpenAI([]llm.Message{
		{Role: llm.RoleSystem, Content: "be brief"},
		{Role: llm.RoleUser, Content: "hello"},
		{Role: llm.RoleAssistant, Content: "hi"},
	})
	require.Len(t, out, 3)
	assert.Equal(t, "system", out[0].Role)
	assert.Equal(t, "hello", out[1].Content)
	assert.Equal(t, "assistant", out[2].Role)
}
