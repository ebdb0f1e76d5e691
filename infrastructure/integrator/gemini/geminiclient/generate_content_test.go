package geminiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/price-monitor-api/internal/config"
)

func newTestClient(baseURL string) Client {
	return NewClient(&config.Config{
		Gemini: config.Gemini{
			BaseURL: baseURL,
			Model:   "gemini-1.5-flash",
			APIKey:  "test-key",
		},
	})
}

func TestGeminiClient_GenerateContent(t *testing.T) {
	t.Run("Envia os prompts e retorna o texto do primeiro candidato", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/models/gemini-1.5-flash:generateContent", r.URL.Path)
			assert.Equal(t, "test-key", r.URL.Query().Get("key"))

			var payload map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Contains(t, payload, "system_instruction")
			assert.Contains(t, payload, "contents")

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"{\"ok\":true}"}]}}]}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		text, err := client.GenerateContent(context.Background(), "system", "user")
		require.NoError(t, err)
		assert.Equal(t, `{"ok":true}`, text)
	})

	t.Run("Sem chave de API configurada retorna erro imediatamente", func(t *testing.T) {
		client := NewClient(&config.Config{})

		_, err := client.GenerateContent(context.Background(), "system", "user")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingAPIKey)
	})

	t.Run("Erro retornado pela API vira erro com código e mensagem", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":{"code":400,"message":"API key not valid"}}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.GenerateContent(context.Background(), "system", "user")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "API key not valid")
	})

	t.Run("Resposta sem candidatos é erro", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"candidates":[]}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.GenerateContent(context.Background(), "system", "user")
		require.Error(t, err)
	})
}
