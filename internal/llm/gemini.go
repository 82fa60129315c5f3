package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

type GeminiClient struct {
	apiKey string
	model  string
	models []string
	http   *http.Client
}

// NewGeminiClient configures the Gemini provider from the
// environment. A missing key just makes the provider
// unavailable; it is never a startup error.
func NewGeminiClient() *GeminiClient {
	model := os.Getenv("GEMINI_MODEL")
	models := splitModels(os.Getenv("GEMINI_MODELS"))
	if len(models) == 0 && model != "" {
		models = []string{model}
	}
	return &GeminiClient{
		apiKey: os.Getenv("GEMINI_API_KEY"),
		model:  model,
		models: models,
		http:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (g *GeminiClient) Name() string { return "gemini" }

func (g *GeminiClient) Available() bool {
	return g.apiKey != "" && g.model != ""
}

func (g *GeminiClient) Models() []string { return g.models }

func (g *GeminiClient) Generate(ctx context.Context, prompt, model string) (string, error) {
	if g.apiKey == "" {
		return "", errors.New("missing GEMINI_API_KEY")
	}
	if model == "" {
		model = g.model
	}
	if model == "" {
		return "", errors.New("missing GEMINI_MODEL")
	}

	url := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s",
		model,
		g.apiKey,
	)

	payload := map[string]any{
		"contents": []map[string]any{
			{
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]any{
			"temperature":     0.2,
			"maxOutputTokens": 1024,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini api error: %s", string(raw))
	}

	// Gemini response shape
	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return "", err
	}

	if len(result.Candidates) == 0 ||
		len(result.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty gemini response")
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}
