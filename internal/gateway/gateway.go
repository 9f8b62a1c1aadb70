// Package gateway wraps an LLM provider with the fail-soft contract the UI
// relies on: Generate always returns renderable text, never an error.
package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sozercan/misinfo-mole/internal/llm"
)

type Gateway struct {
	provider llm.Provider
}

func New(provider llm.Provider) *Gateway {
	return &Gateway{provider: provider}
}

// Generate sends one prompt to the provider. A failed call is converted
// into an error-tagged string in place of the output, so one bad section
// never takes down the others. Single best-effort attempt, no retries.
func (g *Gateway) Generate(ctx context.Context, prompt string, maxTokens int64) string {
	text, err := g.provider.Generate(ctx, prompt, llm.WithMaxTokens(maxTokens))
	if err != nil {
		slog.Warn("generation failed", "provider", g.provider.Name(), "error", err)
		return fmt.Sprintf("[ERROR calling %s API] %v", g.provider.Name(), err)
	}
	return text
}
