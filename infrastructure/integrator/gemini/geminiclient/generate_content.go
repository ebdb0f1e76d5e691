package geminiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
)

// ErrMissingAPIKey indica que a chave de API do Gemini não foi configurada
var ErrMissingAPIKey = errors.New("gemini API key is not configured")

type generateContentRequest struct {
	SystemInstruction *content         `json:"system_instruction,omitempty"`
	Contents          []content        `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
	Role  string `json:"role,omitempty"`
}

type part struct {
	Text string `json:"text"`
}

// responseMimeType application/json obriga o modelo a devolver JSON puro,
// dispensando limpeza de blocos markdown na resposta
type generationConfig struct {
	ResponseMIMEType string  `json:"responseMimeType"`
	Temperature      float32 `json:"temperature"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateContent envia os prompts ao modelo configurado e retorna o texto do
// primeiro candidato. Não há retry nem cache: uma falha sobe direto ao caller.
func (c *GeminiClient) GenerateContent(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c.config.Gemini.APIKey == "" {
		return "", ErrMissingAPIKey
	}

	payload := generateContentRequest{
		SystemInstruction: &content{
			Parts: []part{{Text: systemPrompt}},
		},
		Contents: []content{
			{
				Role:  "user",
				Parts: []part{{Text: userPrompt}},
			},
		},
		GenerationConfig: generationConfig{
			ResponseMIMEType: "application/json",
			Temperature:      0.4,
			MaxOutputTokens:  1024,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf(
		"%s/models/%s:generateContent?key=%s",
		c.config.Gemini.BaseURL,
		c.config.Gemini.Model,
		c.config.Gemini.APIKey,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição para o Gemini")
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao chamar a API do Gemini")
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var response generateContentResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar resposta do Gemini")
		return "", err
	}

	if response.Error != nil {
		return "", fmt.Errorf("gemini API error %d: %s", response.Error.Code, response.Error.Message)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini API returned status %s", resp.Status)
	}

	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini API returned no candidates")
	}

	return response.Candidates[0].Content.Parts[0].Text, nil
}
