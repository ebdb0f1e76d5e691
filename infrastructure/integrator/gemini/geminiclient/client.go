package geminiclient

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/price-monitor-api/internal/config"
)

// Client é o transporte para a API generateContent do Gemini
type Client interface {
	GenerateContent(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type GeminiClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente HTTP do Gemini
func NewClient(cfg *config.Config) Client {
	return &GeminiClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
