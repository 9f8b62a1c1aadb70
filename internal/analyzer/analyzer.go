package analyzer

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/sozercan/misinfo-mole/apimodels"
	"github.com/sozercan/misinfo-mole/internal/config"
	"github.com/sozercan/misinfo-mole/internal/gateway"
	"github.com/sozercan/misinfo-mole/internal/prompt"
)

// ErrEmptyInput is returned when the submitted text is empty or whitespace
// only. No model call is made in that case.
var ErrEmptyInput = errors.New("no text to analyze")

type Analyzer struct {
	gateway *gateway.Gateway
	model   string
	mode    config.Mode
}

func New(gw *gateway.Gateway, model string, mode config.Mode) *Analyzer {
	return &Analyzer{
		gateway: gw,
		model:   model,
		mode:    mode,
	}
}

// Analyze runs one interaction: validate the input, then make the three
// model calls strictly sequentially. Each call is individually guarded by
// the gateway, so every section always renders something.
func (a *Analyzer) Analyze(ctx context.Context, req apimodels.AnalysisRequest) (*apimodels.AnalysisResponse, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrEmptyInput
	}

	slog.Info("starting analysis", "chars", len(req.Text))
	startTime := time.Now()

	redFlags := a.gateway.Generate(ctx, prompt.RedFlags(req.Text), prompt.RedFlagsMaxTokens)
	summary := a.gateway.Generate(ctx, prompt.Summary(req.Text), prompt.SummaryMaxTokens)
	insights := a.gateway.Generate(ctx, prompt.Insights(req.Text), prompt.InsightsMaxTokens)

	return &apimodels.AnalysisResponse{
		RedFlags: redFlags,
		Summary:  summary,
		Insights: insights,
		Metadata: apimodels.AnalysisMetadata{
			Duration: time.Since(startTime).String(),
			Model:    a.model,
			Mode:     string(a.mode),
		},
	}, nil
}
