package chat

import (
	"context"
	"strings"
	"time"

	"sipstation/internal/llm"
)

const providerTimeout = 30 * time.Second

// Result is a chat reply plus where it came from. As with
// recommendations, a provider failure shows up only as metadata
// on a successful canned reply.
type Result struct {
	Content        string `json:"content"`
	Source         string `json:"source"` // "bot" or a provider name
	Model          string `json:"model,omitempty"`
	FallbackReason string `json:"fallback_reason,omitempty"`
}

type Service struct {
	bot      *Bot
	registry *llm.Registry
	timeout  time.Duration
}

func NewService(registry *llm.Registry) *Service {
	return &Service{
		bot:      NewBot(),
		registry: registry,
		timeout:  providerTimeout,
	}
}

// Chat answers a customer message. With useAI set, a provider is
// consulted opportunistically and its reply passed through
// verbatim; any failure falls back silently to the keyword bot.
func (s *Service) Chat(ctx context.Context, message string, useAI bool, provider, model string) Result {
	if !useAI {
		return Result{Content: s.bot.Reply(message), Source: "bot"}
	}

	client, ok := s.registry.Select(provider)
	if !ok {
		return s.fallback(message, "no provider configured")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reply, err := client.Generate(ctx, buildChatPrompt(message), model)
	if err != nil {
		return s.fallback(message, err.Error())
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return s.fallback(message, "empty provider response")
	}

	return Result{Content: reply, Source: client.Name(), Model: model}
}

func (s *Service) fallback(message, reason string) Result {
	return Result{
		Content:        s.bot.Reply(message),
		Source:         "bot",
		FallbackReason: reason,
	}
}

func buildChatPrompt(message string) string {
	return `You are a friendly assistant at a self-service beverage kiosk.
Answer the customer in one or two short sentences. The kiosk serves
coffee, tea, soda, and juice with condiments like milk, sugar, and
syrups. Stay on the topic of drinks.

Customer message:
` + message
}
