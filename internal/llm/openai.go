package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/sozercan/misinfo-mole/internal/config"
)

const openAIName = "OpenAI"

// OpenAI is an alternate provider for OpenAI-compatible endpoints, selected
// with LLM_PROVIDER=openai.
type OpenAI struct {
	client *openai.Client
	model  string
}

func NewOpenAI(cfg *config.LLMConfig) *OpenAI {
	client := openai.NewClient(
		option.WithAPIKey(cfg.OpenAIAPIKey),
		option.WithBaseURL(cfg.OpenAIEndpoint),
	)

	return &OpenAI{
		client: client,
		model:  cfg.OpenAIModel,
	}
}

func (o *OpenAI) Name() string { return openAIName }

func (o *OpenAI) Generate(ctx context.Context, prompt string, opts ...Option) (string, error) {
	options := &Options{
		Model:     o.model,
		MaxTokens: 1000,
	}
	for _, opt := range opts {
		opt(options)
	}

	resp, err := o.client.Chat.Completions.New(
		ctx,
		openai.ChatCompletionNewParams{
			Model: openai.F(options.Model),
			Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
				openai.UserMessage(prompt),
			}),
			MaxTokens:   openai.F(options.MaxTokens),
			Temperature: openai.F(0.0),
		},
	)
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
