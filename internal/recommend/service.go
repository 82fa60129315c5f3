package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"sipstation/internal/catalog"
	"sipstation/internal/llm"
	"sipstation/internal/order"
)

const providerTimeout = 30 * time.Second

// Result is a recommendation plus where it came from. When the
// delegated path degrades to the heuristic, FallbackReason says
// why; it is diagnostic metadata, never an error.
type Result struct {
	Recommendation Recommendation `json:"recommendation"`
	Source         string         `json:"source"` // "history", "default", or a provider name
	Model          string         `json:"model,omitempty"`
	FallbackReason string         `json:"fallback_reason,omitempty"`
}

// Service produces recommendations, delegating to an external
// provider when one is configured and falling back to the local
// heuristic on any failure.
type Service struct {
	catalog   *catalog.Catalog
	registry  *llm.Registry
	heuristic *Heuristic
	timeout   time.Duration
}

func NewService(cat *catalog.Catalog, registry *llm.Registry) *Service {
	return &Service{
		catalog:   cat,
		registry:  registry,
		heuristic: NewHeuristic(),
		timeout:   providerTimeout,
	}
}

// Heuristic runs the local frequency-based recommendation.
func (s *Service) Heuristic(history []*order.Order) Result {
	rec := s.heuristic.Recommend(history)
	source := "history"
	if len(history) == 0 {
		source = "default"
	}
	return Result{Recommendation: rec, Source: source}
}

// Delegated asks an external provider for a suggestion. Provider
// failures never surface: the heuristic result is returned with
// the failure reason attached as metadata.
func (s *Service) Delegated(ctx context.Context, preference, provider, model, template string, history []*order.Order) Result {
	client, ok := s.registry.Select(provider)
	if !ok {
		return s.fallback(history, "no provider configured")
	}

	prompt := BuildPrompt(preference, s.catalog.BeverageIDs(), s.catalog.CondimentIDs())
	if template != "" {
		prompt = RenderTemplate(template, preference)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := client.Generate(ctx, prompt, model)
	if err != nil {
		return s.fallback(history, err.Error())
	}

	rec, err := s.parseSuggestion(raw)
	if err != nil {
		return s.fallback(history, err.Error())
	}

	return Result{
		Recommendation: rec,
		Source:         client.Name(),
		Model:          model,
	}
}

func (s *Service) fallback(history []*order.Order, reason string) Result {
	res := s.Heuristic(history)
	res.FallbackReason = reason
	return res
}

// parseSuggestion maps free-form model output back onto a
// catalog-valid recommendation. An unknown beverage id rejects
// the whole suggestion; unknown condiment ids are dropped.
func (s *Service) parseSuggestion(raw string) (Recommendation, error) {
	jsonText := llm.ExtractJSON(raw)
	if jsonText == "" {
		return Recommendation{}, errors.New("provider returned no JSON")
	}

	var rec Recommendation
	if err := json.Unmarshal([]byte(jsonText), &rec); err != nil {
		return Recommendation{}, errors.New("provider returned malformed JSON")
	}

	if _, ok := s.catalog.Beverage(rec.Beverage); !ok {
		return Recommendation{}, errors.New("provider suggested an unknown beverage")
	}

	condiments := make([]string, 0, len(rec.Condiments))
	for _, id := range rec.Condiments {
		if _, ok := s.catalog.Condiment(id); ok {
			condiments = append(condiments, id)
		}
	}
	rec.Condiments = condiments

	if rec.Reason == "" {
		rec.Reason = "Suggested for your preference"
	}
	return rec, nil
}
