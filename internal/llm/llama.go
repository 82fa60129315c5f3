package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"time"
)

type LLaMAClient struct {
	apiKey string
	model  string
	models []string
	apiURL string
	http   *http.Client
}

func NewLLaMAClient() *LLaMAClient {
	model := os.Getenv("LLAMA_MODEL")
	models := splitModels(os.Getenv("LLAMA_MODELS"))
	if len(models) == 0 && model != "" {
		models = []string{model}
	}
	return &LLaMAClient{
		apiKey: os.Getenv("LLAMA_API_KEY"),
		model:  model,
		models: models,
		apiURL: os.Getenv("LLAMA_API_URL"),
		http:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (l *LLaMAClient) Name() string { return "llama" }

func (l *LLaMAClient) Available() bool {
	return l.apiKey != "" && l.apiURL != ""
}

func (l *LLaMAClient) Models() []string { return l.models }

func (l *LLaMAClient) Generate(ctx context.Context, prompt, model string) (string, error) {
	if l.apiKey == "" {
		return "", errors.New("missing LLAMA_API_KEY")
	}
	if l.apiURL == "" {
		return "", errors.New("missing LLAMA_API_URL")
	}
	if model == "" {
		model = l.model
	}

	payload := map[string]any{
		"model":       model,
		"input":       prompt,
		"temperature": 0.2,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.apiURL, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+l.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	jsonText := ExtractJSON(string(raw))
	if jsonText == "" {
		return "", errors.New("llama did not return valid JSON")
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(jsonText), &parsed); err != nil {
		return "", err
	}

	// Meta has shipped several response shapes; accept all of them.
	if v, ok := parsed["output_text"].(string); ok && v != "" {
		return v, nil
	}
	if v, ok := parsed["generated_text"].(string); ok && v != "" {
		return v, nil
	}
	if gen, ok := parsed["generation"].(map[string]any); ok {
		if txt, ok := gen["text"].(string); ok && txt != "" {
			return txt, nil
		}
	}

	return "", errors.New("empty llama response")
}
