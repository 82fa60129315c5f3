package llm

import (
	"context"
	"strings"
)

// Client is one external text-generation provider. Callers pick
// a provider by Name and may override the model per request; an
// empty model means the provider's configured default.
type Client interface {
	Name() string
	Available() bool
	Models() []string
	Generate(ctx context.Context, prompt, model string) (string, error)
}

// ExtractJSON pulls the outermost JSON object out of free-form
// model output. Providers wrap JSON in prose or markdown fences
// often enough that strict unmarshalling alone is not workable.
func ExtractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")

	if start == -1 || end == -1 || end <= start {
		return ""
	}

	return text[start : end+1]
}

func splitModels(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
