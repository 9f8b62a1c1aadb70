package main

import (
	"fmt"
	"log"
	"log/slog"

	"github.com/sozercan/misinfo-mole/internal/analyzer"
	"github.com/sozercan/misinfo-mole/internal/config"
	"github.com/sozercan/misinfo-mole/internal/gateway"
	"github.com/sozercan/misinfo-mole/internal/llm"
	"github.com/sozercan/misinfo-mole/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	provider, err := newProvider(cfg)
	if err != nil {
		log.Fatalf("failed to create LLM provider: %v", err)
	}

	analyzer := analyzer.New(gateway.New(provider), cfg.LLM.Model(), cfg.LLM.Mode)

	srv := server.New(*cfg, analyzer)
	slog.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
	if err := srv.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

func newProvider(cfg *config.Config) (llm.Provider, error) {
	if cfg.LLM.Mode == config.ModeMock {
		slog.Info("no API key configured, running in mock mode")
		return llm.NewMock(), nil
	}

	switch cfg.LLM.Provider {
	case "gemini":
		return llm.NewGemini(&cfg.LLM), nil
	case "openai":
		return llm.NewOpenAI(&cfg.LLM), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLM.Provider)
	}
}
