package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sozercan/misinfo-mole/internal/config"
)

const geminiName = "Gemini"

// Gemini calls the generateContent REST endpoint directly. The wire
// contract is small enough to carry by hand, so there is no SDK dependency.
type Gemini struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewGemini(cfg *config.LLMConfig) *Gemini {
	return &Gemini{
		apiKey:  cfg.GeminiAPIKey,
		model:   cfg.GeminiModel,
		baseURL: cfg.GeminiEndpoint,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (g *Gemini) Name() string { return geminiName }

func (g *Gemini) Generate(ctx context.Context, prompt string, opts ...Option) (string, error) {
	options := &Options{Model: g.model}
	for _, opt := range opts {
		opt(options)
	}

	reqBody := generateContentRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
	}
	if options.MaxTokens > 0 {
		reqBody.GenerationConfig = &generationConfig{
			MaxOutputTokens: options.MaxTokens,
			CandidateCount:  1,
		}
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.baseURL, options.Model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp geminiErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
			return "", fmt.Errorf("%s: %s", resp.Status, errResp.Error.Message)
		}
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}

	var genResp generateContentResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	return extractText(genResp, body), nil
}

// extractText picks the first available text payload: the direct text
// field, then the first candidate's content, then the raw body as a last
// resort.
func extractText(resp generateContentResponse, raw []byte) string {
	if resp.Text != "" {
		return strings.TrimSpace(resp.Text)
	}
	if len(resp.Candidates) > 0 {
		var parts []string
		for _, p := range resp.Candidates[0].Content.Parts {
			parts = append(parts, p.Text)
		}
		return strings.TrimSpace(strings.Join(parts, ""))
	}
	return string(raw)
}

// SetBaseURL points the client at a different endpoint (for testing).
func (g *Gemini) SetBaseURL(url string) {
	g.baseURL = url
}
