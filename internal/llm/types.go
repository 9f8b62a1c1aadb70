package llm

import "context"

type Provider interface {
	// Name identifies the upstream service, e.g. "Gemini". It appears in
	// the error strings the gateway renders.
	Name() string

	// Generate sends one prompt and returns the generated text.
	Generate(ctx context.Context, prompt string, opts ...Option) (string, error)
}

type Option func(*Options)

type Options struct {
	Model     string
	MaxTokens int64
}

func WithModel(model string) Option {
	return func(o *Options) { o.Model = model }
}

func WithMaxTokens(n int64) Option {
	return func(o *Options) { o.MaxTokens = n }
}
